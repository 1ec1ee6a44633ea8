package policy

import (
	"fmt"

	"github.com/aegisone/campus/internal/app/models"
	"github.com/aegisone/campus/internal/pkg/apperrors"
)

// Machine is a closed status set with explicit legal edges. A transition to
// the current state is accepted as a no-op so concurrent last-write-wins
// updates stay tolerable for callers.
type Machine struct {
	name  string
	edges map[string][]string
}

// Valid reports whether state belongs to the machine's status set.
func (m Machine) Valid(state string) bool {
	_, ok := m.edges[state]
	return ok
}

// CanTransition returns nil when from → to is a legal edge (or a no-op),
// apperrors.ErrInvalidState otherwise.
func (m Machine) CanTransition(from, to string) error {
	if !m.Valid(to) {
		return fmt.Errorf("%w: %q is not a valid %s status", apperrors.ErrInvalidState, to, m.name)
	}
	if !m.Valid(from) {
		return fmt.Errorf("%w: %q is not a valid %s status", apperrors.ErrInvalidState, from, m.name)
	}
	if from == to {
		return nil
	}
	for _, next := range m.edges[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot move from %q to %q", apperrors.ErrInvalidState, m.name, from, to)
}

// Grievances advance pending → in_review → in_progress → resolved, with
// forward jumps allowed and rejected reachable from any state, resolved
// included.
var GrievanceMachine = Machine{
	name: "grievance",
	edges: map[string][]string{
		string(models.GrievancePending):    {string(models.GrievanceInReview), string(models.GrievanceInProgress), string(models.GrievanceResolved), string(models.GrievanceRejected)},
		string(models.GrievanceInReview):   {string(models.GrievanceInProgress), string(models.GrievanceResolved), string(models.GrievanceRejected)},
		string(models.GrievanceInProgress): {string(models.GrievanceResolved), string(models.GrievanceRejected)},
		string(models.GrievanceResolved):   {string(models.GrievanceRejected)},
		string(models.GrievanceRejected):   {},
	},
}

// Applications advance submitted → under_review → shortlisted → accepted,
// with forward jumps allowed and rejected reachable from any non-terminal state.
var ApplicationMachine = Machine{
	name: "application",
	edges: map[string][]string{
		string(models.ApplicationSubmitted):   {string(models.ApplicationUnderReview), string(models.ApplicationShortlisted), string(models.ApplicationAccepted), string(models.ApplicationRejected)},
		string(models.ApplicationUnderReview): {string(models.ApplicationShortlisted), string(models.ApplicationAccepted), string(models.ApplicationRejected)},
		string(models.ApplicationShortlisted): {string(models.ApplicationAccepted), string(models.ApplicationRejected)},
		string(models.ApplicationAccepted):    {},
		string(models.ApplicationRejected):    {},
	},
}

// Lost-and-found items are claimed exactly once from open; open or claimed
// items can be closed.
var ItemMachine = Machine{
	name: "item",
	edges: map[string][]string{
		string(models.ItemOpen):    {string(models.ItemClaimed), string(models.ItemClosed)},
		string(models.ItemClaimed): {string(models.ItemClosed)},
		string(models.ItemClosed):  {},
	},
}

// Incidents move active → investigating → {resolved, false_alarm}, with
// direct resolution from active allowed.
var IncidentMachine = Machine{
	name: "incident",
	edges: map[string][]string{
		string(models.IncidentActive):        {string(models.IncidentInvestigating), string(models.IncidentResolved), string(models.IncidentFalseAlarm)},
		string(models.IncidentInvestigating): {string(models.IncidentResolved), string(models.IncidentFalseAlarm)},
		string(models.IncidentResolved):      {},
		string(models.IncidentFalseAlarm):    {},
	},
}

// Gigs move open → assigned → completed.
var GigMachine = Machine{
	name: "gig",
	edges: map[string][]string{
		string(models.GigOpen):      {string(models.GigAssigned), string(models.GigCompleted)},
		string(models.GigAssigned):  {string(models.GigCompleted)},
		string(models.GigCompleted): {},
	},
}

// Caravan pools move open → {full, completed}; full pools can complete.
var CaravanMachine = Machine{
	name: "caravan",
	edges: map[string][]string{
		string(models.CaravanOpen):      {string(models.CaravanFull), string(models.CaravanCompleted)},
		string(models.CaravanFull):      {string(models.CaravanCompleted)},
		string(models.CaravanCompleted): {},
	},
}
