package domain

import "fmt"

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionSubmit Action = "submit"
	ActionDecide Action = "decide"
	ActionClone  Action = "clone"
)

// Authorize is the single permission rule set for lifecycle operations.
// ev may be nil for ActionCreate.
func Authorize(action Action, actor Actor, ev *Event) error {
	if actor.ID == "" {
		return ErrUnauthenticated
	}
	if actor.Role == RoleCentralPlanner {
		return nil
	}

	switch action {
	case ActionCreate:
		if actor.Role == RoleVenueManager {
			return nil
		}
	case ActionUpdate, ActionSubmit:
		if actor.Role == RoleVenueManager && ev != nil && ev.CreatedBy == actor.ID {
			return nil
		}
	case ActionDecide:
		if ev != nil && ev.AssignedReviewerID != nil && *ev.AssignedReviewerID == actor.ID {
			return nil
		}
	}
	// ActionClone is planner-only.

	return fmt.Errorf("%w: %s may not %s this event", ErrForbidden, actor.Role, action)
}
