package invitation

import (
	"fmt"
	"strconv"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

// Action names an invitee decision.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
)

// Transition is one legal edge of the invitation lifecycle.
type Transition struct {
	Action Action
	From   Status
	To     Status
}

// Machine is a stateless description of the invitation lifecycle. It only
// computes next states; callers own the records.
type Machine struct {
	Transitions []Transition
}

// DefaultMachine is the lifecycle every invitation follows: PENDING moves
// once to ACCEPTED or REJECTED.
var DefaultMachine = Machine{
	Transitions: []Transition{
		{Action: ActionAccept, From: StatusPending, To: StatusAccepted},
		{Action: ActionDecline, From: StatusPending, To: StatusRejected},
	},
}

// AvailableActions lists the actions that may leave from.
func (m Machine) AvailableActions(from Status) []Action {
	var actions []Action
	for _, t := range m.Transitions {
		if t.From == from {
			actions = append(actions, t.Action)
		}
	}
	return actions
}

// Next returns the state reached by applying action to an invitation in from.
// An action with no edge out of from is a *domain.ConflictError.
func (m Machine) Next(id int64, from Status, action Action) (Status, error) {
	for _, t := range m.Transitions {
		if t.From == from && t.Action == action {
			return t.To, nil
		}
	}
	return "", &domain.ConflictError{
		Resource:   "invitation",
		ResourceID: strconv.FormatInt(id, 10),
		Message:    fmt.Sprintf("cannot %s: already decided (%s)", action, from),
	}
}
