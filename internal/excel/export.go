package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/in-nis/studytrack/internal/models"
)

const (
	sheetName  = "Study log"
	dateLayout = "2006-01-02 15:04"
)

var header = []interface{}{"Date", "Subject", "Duration (min)", "Notes"}

// WriteStudyLog writes sessions as a single-sheet xlsx workbook to w, one
// row per session under a header row, in the order given.
func WriteStudyLog(w io.Writer, sessions []models.StudySession) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, s := range sessions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			s.CreatedAt.UTC().Format(dateLayout),
			s.Subject,
			s.DurationMinutes,
			s.Notes,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "D", "D", 40); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}
