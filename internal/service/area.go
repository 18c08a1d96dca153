package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
)

const areaSelectionMessage = "select at least one venue area"

type AreaValidator struct {
	venues ports.VenueRepo
}

func NewAreaValidator(venues ports.VenueRepo) *AreaValidator {
	return &AreaValidator{venues: venues}
}

// ValidateOwnership checks every id resolves to an area of venueID.
func (v *AreaValidator) ValidateOwnership(ctx context.Context, venueID string, areaIDs []string) error {
	ids := uniqueIDs(areaIDs)
	if len(ids) == 0 {
		return nil
	}

	areas, err := v.venues.ListAreasByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load areas: %w", err)
	}
	if len(areas) != len(ids) {
		return domain.ErrAreaNotFound
	}
	for _, a := range areas {
		if a.VenueID != venueID {
			return domain.ErrAreaVenueMismatch
		}
	}

	return nil
}

// SelectionAllowedEmpty reports whether an event at venueID may have no areas,
// which holds only while the venue has none configured.
func (v *AreaValidator) SelectionAllowedEmpty(ctx context.Context, venueID string) (bool, error) {
	n, err := v.venues.CountAreas(ctx, venueID)
	if err != nil {
		return false, fmt.Errorf("count venue areas: %w", err)
	}
	return n == 0, nil
}

// Validate applies the full selection rule used by create and update.
func (v *AreaValidator) Validate(ctx context.Context, venueID string, areaIDs []string) error {
	if len(areaIDs) == 0 {
		ok, err := v.SelectionAllowedEmpty(ctx, venueID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewFieldError("area_ids", areaSelectionMessage)
		}
		return nil
	}
	return v.ValidateOwnership(ctx, venueID, areaIDs)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
