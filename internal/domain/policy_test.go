package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	reviewer := "r1"
	ev := &Event{ID: "e1", CreatedBy: "m1", AssignedReviewerID: &reviewer}

	tests := []struct {
		name    string
		action  Action
		actor   Actor
		wantErr error
	}{
		{"planner clones", ActionClone, Actor{ID: "p1", Role: RoleCentralPlanner}, nil},
		{"planner decides unassigned", ActionDecide, Actor{ID: "p1", Role: RoleCentralPlanner}, nil},
		{"manager creates", ActionCreate, Actor{ID: "m2", Role: RoleVenueManager}, nil},
		{"owner updates", ActionUpdate, Actor{ID: "m1", Role: RoleVenueManager}, nil},
		{"owner submits", ActionSubmit, Actor{ID: "m1", Role: RoleVenueManager}, nil},
		{"other manager updates", ActionUpdate, Actor{ID: "m2", Role: RoleVenueManager}, ErrForbidden},
		{"owner decides", ActionDecide, Actor{ID: "m1", Role: RoleVenueManager}, ErrForbidden},
		{"owner clones", ActionClone, Actor{ID: "m1", Role: RoleVenueManager}, ErrForbidden},
		{"assigned reviewer decides", ActionDecide, Actor{ID: "r1", Role: RoleReviewer}, nil},
		{"other reviewer decides", ActionDecide, Actor{ID: "r2", Role: RoleReviewer}, ErrForbidden},
		{"reviewer creates", ActionCreate, Actor{ID: "r1", Role: RoleReviewer}, ErrForbidden},
		{"anonymous", ActionCreate, Actor{}, ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.action, tt.actor, ev)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthorize_DecideWithoutReviewer(t *testing.T) {
	err := Authorize(ActionDecide, Actor{ID: "r1", Role: RoleReviewer}, &Event{ID: "e1"})

	assert.ErrorIs(t, err, ErrForbidden)
}
