package services

import (
	"testing"

	"github.com/aegisone/campus/internal/app/models"
)

func TestAnonymizeHidesSubmitterName(t *testing.T) {
	name := "Asha Verma"
	g := &models.Grievance{IsAnonymous: true, SubmittedBy: 7, SubmitterName: &name}

	anonymize(g)

	if g.SubmitterName == nil || *g.SubmitterName != "Anonymous" {
		t.Errorf("expected submitter name to be Anonymous, got %v", g.SubmitterName)
	}
	// The owning row is untouched; only the display name is scrubbed.
	if g.SubmittedBy != 7 {
		t.Errorf("expected submittedBy to survive, got %d", g.SubmittedBy)
	}
}

func TestAnonymizeLeavesNamedGrievances(t *testing.T) {
	name := "Asha Verma"
	g := &models.Grievance{IsAnonymous: false, SubmitterName: &name}

	anonymize(g)

	if g.SubmitterName == nil || *g.SubmitterName != "Asha Verma" {
		t.Errorf("expected submitter name to survive, got %v", g.SubmitterName)
	}
}

func TestAnonymizeNil(t *testing.T) {
	if anonymize(nil) != nil {
		t.Error("expected nil in, nil out")
	}
}
