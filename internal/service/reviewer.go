package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReviewerResolution struct {
	ReviewerID       *string
	WasNewlyAssigned bool
}

// ReviewerResolver picks the decision-maker for a submission:
// the existing assignment, then the venue's first default reviewer,
// then the oldest central planner. Having nobody is not an error.
type ReviewerResolver struct {
	events        ports.EventRepo
	venues        ports.VenueRepo
	users         ports.UserRepo
	audit         *AuditRecorder
	notifications *NotificationQueue
	logger        logger.Logger
}

func NewReviewerResolver(
	events ports.EventRepo,
	venues ports.VenueRepo,
	users ports.UserRepo,
	audit *AuditRecorder,
	notifications *NotificationQueue,
	logger logger.Logger,
) *ReviewerResolver {
	return &ReviewerResolver{
		events:        events,
		venues:        venues,
		users:         users,
		audit:         audit,
		notifications: notifications,
		logger:        logger,
	}
}

// Resolve assigns a reviewer to event when it has none. On a new assignment
// event.AssignedReviewerID is updated in place.
func (r *ReviewerResolver) Resolve(ctx context.Context, event *domain.Event, actorID string) (ReviewerResolution, error) {
	if event.AssignedReviewerID != nil && *event.AssignedReviewerID != "" {
		return ReviewerResolution{ReviewerID: event.AssignedReviewerID}, nil
	}

	reviewerID, source, err := r.candidate(ctx, event.VenueID)
	if err != nil {
		return ReviewerResolution{}, err
	}
	if reviewerID == "" {
		r.logger.LogAttrs(ctx, logger.WarnLevel, "no reviewer available for submission",
			logger.String("event_id", event.ID),
			logger.String("venue_id", event.VenueID),
		)
		return ReviewerResolution{}, nil
	}

	if err = r.events.AssignReviewer(ctx, event.ID, reviewerID); err != nil {
		return ReviewerResolution{}, fmt.Errorf("assign reviewer: %w", err)
	}
	event.AssignedReviewerID = &reviewerID

	r.logger.LogAttrs(ctx, logger.InfoLevel, "reviewer assigned",
		logger.String("event_id", event.ID),
		logger.String("reviewer_id", reviewerID),
		logger.String("source", source),
	)

	r.audit.Record(ctx, actorID, domain.AuditEventReviewerAssigned, event.ID, map[string]any{
		"reviewer_id": reviewerID,
		"source":      source,
	})
	r.notifications.NotifyReviewerAssigned(ctx, reviewerID, event)

	return ReviewerResolution{ReviewerID: &reviewerID, WasNewlyAssigned: true}, nil
}

func (r *ReviewerResolver) candidate(ctx context.Context, venueID string) (string, string, error) {
	defaults, err := r.venues.ListDefaultReviewers(ctx, venueID)
	if err != nil {
		return "", "", fmt.Errorf("list venue default reviewers: %w", err)
	}
	if len(defaults) > 0 {
		return defaults[0], "venue_default", nil
	}

	planners, err := r.users.ListByRole(ctx, domain.RoleCentralPlanner)
	if err != nil {
		return "", "", fmt.Errorf("list central planners: %w", err)
	}
	if len(planners) > 0 {
		return planners[0].ID, "central_planner", nil
	}

	return "", "", nil
}
