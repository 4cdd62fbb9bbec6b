package api

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/go-cmp/cmp"
)

func TestParseDateTime(t *testing.T) {
	tests := map[string]struct {
		raw    string
		want   time.Time
		wantOK bool
	}{
		"space separated": {raw: "2026-03-01 18:30", want: time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC), wantOK: true},
		"datetime-local":  {raw: "2026-03-01T18:30", want: time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC), wantOK: true},
		"padded":          {raw: "  2026-03-01 08:05 ", want: time.Date(2026, 3, 1, 8, 5, 0, 0, time.UTC), wantOK: true},
		"date only":       {raw: "2026-03-01"},
		"seconds":         {raw: "2026-03-01 18:30:00"},
		"empty":           {raw: ""},
		"garbage":         {raw: "tomorrow"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := parseDateTime(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("parseDateTime(%q) ok = %v, want %v", tc.raw, ok, tc.wantOK)
			}
			if !got.Equal(tc.want) {
				t.Errorf("parseDateTime(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, ok := parseDate("")
	if !ok || got != nil {
		t.Errorf("parseDate(\"\") = %v, %v; want nil, true", got, ok)
	}

	got, ok = parseDate("2026-06-15")
	if !ok || got == nil || !got.Equal(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("parseDate(2026-06-15) = %v, %v", got, ok)
	}

	if _, ok := parseDate("15/06/2026"); ok {
		t.Error("parseDate accepted a non-ISO date")
	}
}

func TestParseMinutes(t *testing.T) {
	type result struct {
		N   int
		Msg string
	}
	tests := map[string]struct {
		raw  string
		want result
	}{
		"valid":    {raw: "45", want: result{N: 45}},
		"trimmed":  {raw: " 90 ", want: result{N: 90}},
		"zero":     {raw: "0", want: result{Msg: msgNotPositive}},
		"negative": {raw: "-5", want: result{Msg: msgNotPositive}},
		"fraction": {raw: "1.5", want: result{Msg: msgInvalidInteger}},
		"word":     {raw: "abc", want: result{Msg: msgInvalidInteger}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n, msg := parseMinutes(tc.raw)
			if diff := cmp.Diff(tc.want, result{N: n, Msg: msg}); diff != "" {
				t.Errorf("parseMinutes(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestRememberMe(t *testing.T) {
	tests := map[string]bool{
		"":     false,
		"off":  false,
		"n":    false,
		"y":    true,
		"on":   true,
		"true": true,
	}
	for raw, want := range tests {
		if got := (LoginForm{Remember: raw}).RememberMe(); got != want {
			t.Errorf("RememberMe(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestBlankFieldsAreRequired(t *testing.T) {
	registerValidators()

	tests := map[string]struct {
		form interface{}
		want map[string]string
	}{
		"subject name": {
			form: SubjectForm{Name: "   "},
			want: map[string]string{"Name": "This field is required."},
		},
		"topic title": {
			form: TopicForm{Title: "\t\n"},
			want: map[string]string{"Title": "This field is required."},
		},
		"study subject": {
			form: StudySessionForm{Subject: " ", DurationMinutes: "30"},
			want: map[string]string{"Subject": "This field is required."},
		},
		"reminder title": {
			form: ReminderForm{Title: "  ", RemindTime: "2026-01-01 10:00"},
			want: map[string]string{"Title": "This field is required."},
		},
		"padded value is kept": {
			form: SubjectForm{Name: " Math "},
			want: nil,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.form)
			var got map[string]string
			if err != nil {
				got = fieldErrors(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("fieldErrors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
