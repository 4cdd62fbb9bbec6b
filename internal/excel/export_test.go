package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/in-nis/studytrack/internal/excel"
	"github.com/in-nis/studytrack/internal/models"
)

func TestWriteStudyLog(t *testing.T) {
	at := time.Date(2026, 2, 3, 18, 30, 0, 0, time.UTC)
	sessions := []models.StudySession{
		{Subject: "Math", DurationMinutes: 45, Notes: "algebra drills", CreatedAt: at},
		{Subject: "History", DurationMinutes: 20, Notes: "dates", CreatedAt: at.Add(-24 * time.Hour)},
	}

	var buf bytes.Buffer
	if err := excel.WriteStudyLog(&buf, sessions); err != nil {
		t.Fatalf("WriteStudyLog() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{"Study log"}, f.GetSheetList()); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows("Study log")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	want := [][]string{
		{"Date", "Subject", "Duration (min)", "Notes"},
		{"2026-02-03 18:30", "Math", "45", "algebra drills"},
		{"2026-02-02 18:30", "History", "20", "dates"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStudyLogEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := excel.WriteStudyLog(&buf, nil); err != nil {
		t.Fatalf("WriteStudyLog(nil) error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Study log")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("GetRows() = %d rows, want header only", len(rows))
	}
}
