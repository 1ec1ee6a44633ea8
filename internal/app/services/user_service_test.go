package services

import (
	"strings"
	"testing"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/app/models/dto"
)

func TestParseUserImportCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"email,name,role,department",
		"a.sharma@iitmandi.ac.in,Aarav Sharma,student,CSE",
		"b.rao@iitmandi.ac.in,Bhavna Rao,faculty,EE",
		",No Email,student",
		"c.iyer@iitmandi.ac.in,,student",
		"d.mehta@iitmandi.ac.in,Dev Mehta,wizard",
		"e.nair@iitmandi.ac.in,Esha Nair",
	}, "\n")

	rows, skips, err := ParseUserImportCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("expected 4 importable rows, got %d", len(rows))
	}
	if len(skips) != 2 {
		t.Fatalf("expected 2 skips, got %d", len(skips))
	}

	if rows[0].Email != "a.sharma@iitmandi.ac.in" || rows[0].Role != models.RoleStudent {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Department == nil || *rows[0].Department != "CSE" {
		t.Errorf("expected department CSE, got %v", rows[0].Department)
	}
	if rows[1].Role != models.RoleFaculty {
		t.Errorf("expected faculty role, got %s", rows[1].Role)
	}

	// Unknown role falls back to student
	if rows[2].Role != models.RoleStudent {
		t.Errorf("expected wizard to default to student, got %s", rows[2].Role)
	}
	// Missing role column also defaults to student
	if rows[3].Role != models.RoleStudent {
		t.Errorf("expected missing role to default to student, got %s", rows[3].Role)
	}

	if skips[0].Reason != "missing email" {
		t.Errorf("expected missing email skip, got %q", skips[0].Reason)
	}
	if skips[1].Reason != "missing name" || skips[1].Email != "c.iyer@iitmandi.ac.in" {
		t.Errorf("unexpected second skip: %+v", skips[1])
	}
}

func TestParseUserImportCSVNoHeader(t *testing.T) {
	rows, skips, err := ParseUserImportCSV(strings.NewReader("x.yadav@iitmandi.ac.in,Xavi Yadav,student\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || len(skips) != 0 {
		t.Fatalf("expected the single data row to import, got %d rows %d skips", len(rows), len(skips))
	}
}

func TestParseUserImportCSVEmpty(t *testing.T) {
	rows, skips, err := ParseUserImportCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 || len(skips) != 0 {
		t.Fatalf("expected nothing from an empty file, got %d rows %d skips", len(rows), len(skips))
	}
}

func TestParseUserImportCSVNormalizesEmail(t *testing.T) {
	rows, _, err := ParseUserImportCSV(strings.NewReader("  MIXED.Case@IITMandi.AC.in , Mixed Case ,student\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0].Email != "mixed.case@iitmandi.ac.in" {
		t.Errorf("expected lowercased trimmed email, got %q", rows[0].Email)
	}
	if rows[0].Name != "Mixed Case" {
		t.Errorf("expected trimmed name, got %q", rows[0].Name)
	}
}

func TestBuildImportReport(t *testing.T) {
	rows := []ImportRow{
		{Line: 2, Email: "a.sharma@iitmandi.ac.in", Name: "Aarav Sharma", Role: models.RoleStudent},
		{Line: 3, Email: "b.rao@iitmandi.ac.in", Name: "Bhavna Rao", Role: models.RoleFaculty},
		{Line: 5, Email: "c.iyer@iitmandi.ac.in", Name: "Chitra Iyer", Role: models.RoleStudent},
	}
	parseSkips := []dto.ImportSkip{{Row: 4, Reason: "missing name"}}

	report := buildImportReport(rows, parseSkips, []int{1})
	if report.Imported != 2 {
		t.Errorf("Imported = %d, want 2", report.Imported)
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("expected 2 skips, got %d", len(report.Skipped))
	}
	dup := report.Skipped[1]
	if dup.Row != 3 || dup.Email != "b.rao@iitmandi.ac.in" || dup.Reason != "email already registered" {
		t.Errorf("unexpected duplicate skip: %+v", dup)
	}
}

func TestBuildImportReportEmpty(t *testing.T) {
	report := buildImportReport(nil, nil, nil)
	if report.Imported != 0 {
		t.Errorf("Imported = %d, want 0", report.Imported)
	}
	if report.Skipped == nil || len(report.Skipped) != 0 {
		t.Errorf("Skipped should be an empty non-nil slice, got %v", report.Skipped)
	}
}
