package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultEventDuration = 2 * time.Hour
	cloneTitleSuffix     = " (Copy)"
	reminderWarning      = "draft reminder could not be queued"
)

type LifecycleOptions struct {
	// DefaultDuration sets the end time when a draft omits it.
	DefaultDuration time.Duration
	// AllowDecisionOnRevisions lets reviewers decide again on needs_revisions events.
	AllowDecisionOnRevisions bool
}

// EventLifecycle drives events through draft, submission and review.
type EventLifecycle struct {
	events        ports.EventRepo
	venues        ports.VenueRepo
	approvals     ports.ApprovalRepo
	listing       ports.ListingPublisher
	areas         *AreaValidator
	versions      *VersionStore
	reviewers     *ReviewerResolver
	audit         *AuditRecorder
	notifications *NotificationQueue
	validator     *inputValidator
	opts          LifecycleOptions
	logger        logger.Logger
	now           func() time.Time
	wg            sync.WaitGroup
}

func NewEventLifecycle(
	events ports.EventRepo,
	venues ports.VenueRepo,
	approvals ports.ApprovalRepo,
	listing ports.ListingPublisher,
	versions *VersionStore,
	reviewers *ReviewerResolver,
	audit *AuditRecorder,
	notifications *NotificationQueue,
	opts LifecycleOptions,
	logger logger.Logger,
) *EventLifecycle {
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = defaultEventDuration
	}
	return &EventLifecycle{
		events:        events,
		venues:        venues,
		approvals:     approvals,
		listing:       listing,
		areas:         NewAreaValidator(venues),
		versions:      versions,
		reviewers:     reviewers,
		audit:         audit,
		notifications: notifications,
		validator:     newInputValidator(),
		opts:          opts,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *EventLifecycle) CreateDraft(ctx context.Context, in domain.DraftInput, actor domain.Actor) (*domain.TransitionResult, error) {
	if err := domain.Authorize(domain.ActionCreate, actor, nil); err != nil {
		return nil, err
	}

	in = normalizeDraft(in)
	endAt, err := s.validateDraft(in, s.validator.check(in))
	if err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, in.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if err = s.areas.Validate(ctx, venue.ID, in.AreaIDs); err != nil {
		return nil, err
	}

	now := s.now()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		VenueID:     venue.ID,
		Venue:       &domain.VenueRef{ID: venue.ID, Name: venue.Name},
		AreaIDs:     in.AreaIDs,
		StartAt:     in.StartAt,
		EndAt:       endAt,
		Status:      domain.EventStatusDraft,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	tx := newSaga("create_draft", event.ID, s.logger)
	tx.onFailure("delete event", func(ctx context.Context) error {
		return s.events.Delete(ctx, event.ID)
	})

	if len(event.AreaIDs) > 0 {
		if err = s.events.ReplaceAreas(ctx, event.ID, event.AreaIDs); err != nil {
			return nil, tx.abort(ctx, fmt.Errorf("link areas: %w", err))
		}
	}

	version, err := s.versions.Append(ctx, event.ID, domain.EditableSnapshot(event), domain.VersionMeta{ActorID: actor.ID})
	if err != nil {
		return nil, tx.abort(ctx, fmt.Errorf("write version snapshot: %w", err))
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "draft created",
		logger.String("event_id", event.ID),
		logger.String("actor_id", actor.ID),
		logger.String("venue_id", event.VenueID),
	)

	res := &domain.TransitionResult{Event: event, Version: version.Version}
	if !s.audit.Record(ctx, actor.ID, domain.AuditEventDraftCreated, event.ID, map[string]any{
		"title":    event.Title,
		"venue_id": event.VenueID,
		"area_ids": event.AreaIDs,
		"version":  version.Version,
	}) {
		res.Warnings = append(res.Warnings, auditWarning)
	}

	if in.Submit {
		return s.chainSubmit(ctx, res, actor, "draft created")
	}

	s.queueReminder(ctx, res, actor.ID)
	return res, nil
}

func (s *EventLifecycle) UpdateDraft(ctx context.Context, in domain.UpdateDraftInput, actor domain.Actor) (*domain.TransitionResult, error) {
	in.DraftInput = normalizeDraft(in.DraftInput)
	endAt, err := s.validateDraft(in.DraftInput, s.validator.check(in))
	if err != nil {
		return nil, err
	}

	current, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err = domain.Authorize(domain.ActionUpdate, actor, current); err != nil {
		return nil, err
	}
	if !current.Status.Editable() {
		return nil, fmt.Errorf("%w: only drafts or revisions can be updated", domain.ErrInvalidStatus)
	}

	venue, err := s.venues.GetByID(ctx, in.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if err = s.areas.Validate(ctx, venue.ID, in.AreaIDs); err != nil {
		return nil, err
	}

	previousAreas, err := s.events.ListAreaIDs(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("list event areas: %w", err)
	}
	previous := current.Clone()
	previous.AreaIDs = previousAreas

	updated := current.Clone()
	updated.Title = in.Title
	updated.Description = in.Description
	updated.VenueID = venue.ID
	updated.Venue = &domain.VenueRef{ID: venue.ID, Name: venue.Name}
	updated.AreaIDs = in.AreaIDs
	updated.StartAt = in.StartAt
	updated.EndAt = endAt
	updated.UpdatedAt = s.now()

	tx := newSaga("update_draft", current.ID, s.logger)

	tx.onFailure("restore area links", func(ctx context.Context) error {
		return s.events.ReplaceAreas(ctx, previous.ID, previous.AreaIDs)
	})
	if err = s.events.ReplaceAreas(ctx, updated.ID, updated.AreaIDs); err != nil {
		return nil, tx.abort(ctx, fmt.Errorf("swap area links: %w", err))
	}

	tx.onFailure("restore event fields", func(ctx context.Context) error {
		return s.events.Update(ctx, previous)
	})
	if err = s.events.Update(ctx, updated); err != nil {
		return nil, tx.abort(ctx, fmt.Errorf("update event: %w", err))
	}

	version, err := s.versions.Append(ctx, updated.ID, domain.EditableSnapshot(updated), domain.VersionMeta{ActorID: actor.ID})
	if err != nil {
		return nil, tx.abort(ctx, fmt.Errorf("write version snapshot: %w", err))
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "draft updated",
		logger.String("event_id", updated.ID),
		logger.String("actor_id", actor.ID),
		logger.Int("version", version.Version),
	)

	res := &domain.TransitionResult{Event: updated, Version: version.Version}
	if !s.audit.Record(ctx, actor.ID, domain.AuditEventDraftUpdated, updated.ID, map[string]any{
		"previous": domain.EditableSnapshot(previous),
		"current":  domain.EditableSnapshot(updated),
		"version":  version.Version,
	}) {
		res.Warnings = append(res.Warnings, auditWarning)
	}

	if in.Submit {
		return s.chainSubmit(ctx, res, actor, "draft updated")
	}

	return res, nil
}

func (s *EventLifecycle) Submit(ctx context.Context, eventID string, actor domain.Actor) (*domain.TransitionResult, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.submit(ctx, event, actor)
}

func (s *EventLifecycle) submit(ctx context.Context, event *domain.Event, actor domain.Actor) (*domain.TransitionResult, error) {
	if err := domain.Authorize(domain.ActionSubmit, actor, event); err != nil {
		return nil, err
	}
	if !event.Status.Editable() {
		return nil, fmt.Errorf("%w: only drafts or revisions can be submitted", domain.ErrInvalidStatus)
	}

	areaIDs, err := s.events.ListAreaIDs(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event areas: %w", err)
	}
	if len(areaIDs) == 0 {
		allowed, err := s.areas.SelectionAllowedEmpty(ctx, event.VenueID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, domain.NewFieldError("area_ids", "assign at least one venue area before submitting")
		}
	}

	resolution, err := s.reviewers.Resolve(ctx, event, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve reviewer: %w", err)
	}

	now := s.now()
	if err = s.events.UpdateStatus(ctx, event.ID, domain.EventStatusSubmitted, now); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	event.Status = domain.EventStatusSubmitted
	event.SubmittedAt = &now
	event.UpdatedAt = now
	event.AreaIDs = areaIDs

	s.logger.LogAttrs(ctx, logger.InfoLevel, "event submitted",
		logger.String("event_id", event.ID),
		logger.String("actor_id", actor.ID),
		logger.Any("reviewer_id", resolution.ReviewerID),
	)

	res := &domain.TransitionResult{Event: event, ReviewerAssigned: resolution.WasNewlyAssigned}

	submittedBy := actor.ID
	fields := domain.EditableSnapshot(event)
	fields[domain.SnapSubmittedAt] = now.Format(time.RFC3339)
	fields[domain.SnapSubmittedBy] = submittedBy
	fields[domain.SnapReviewerID] = optionalString(resolution.ReviewerID)

	var partial error
	version, err := s.versions.Append(ctx, event.ID, fields, domain.VersionMeta{
		ActorID:     actor.ID,
		SubmittedAt: &now,
		SubmittedBy: &submittedBy,
	})
	if err != nil {
		partial = &domain.PartialFailureError{
			EventID:   event.ID,
			Committed: "draft submitted",
			Failed:    "version snapshot",
			Err:       err,
		}
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "submitted but version snapshot failed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	} else {
		res.Version = version.Version
	}

	if !s.audit.Record(ctx, actor.ID, domain.AuditEventSubmitted, event.ID, map[string]any{
		"reviewer_id":  optionalString(resolution.ReviewerID),
		"reviewer_new": resolution.WasNewlyAssigned,
		"area_ids":     areaIDs,
		"version":      res.Version,
		"submitted_at": now.Format(time.RFC3339),
	}) {
		res.Warnings = append(res.Warnings, auditWarning)
	}

	s.notifications.CancelDraftReminders(ctx, event.ID)

	return res, partial
}

func (s *EventLifecycle) Decide(ctx context.Context, in domain.DecideInput, actor domain.Actor) (*domain.TransitionResult, error) {
	if _, err := domain.ParseDecision(string(in.Decision)); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err = domain.Authorize(domain.ActionDecide, actor, event); err != nil {
		return nil, err
	}
	if !s.decidable(event.Status) {
		return nil, fmt.Errorf("%w: only submitted drafts or revisions can receive a new decision", domain.ErrInvalidStatus)
	}

	previousStatus := event.Status
	now := s.now()
	if err = s.events.UpdateStatus(ctx, event.ID, in.Decision.Status(), now); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	event.Status = in.Decision.Status()
	event.DecidedAt = &now
	event.UpdatedAt = now

	s.logger.LogAttrs(ctx, logger.InfoLevel, "decision applied",
		logger.String("event_id", event.ID),
		logger.String("actor_id", actor.ID),
		logger.String("decision", string(in.Decision)),
	)

	res := &domain.TransitionResult{Event: event}
	var failed []string
	var errs []error

	version, err := s.versions.Append(ctx, event.ID, domain.Snapshot{
		domain.SnapStatus:       string(event.Status),
		domain.SnapDecision:     string(in.Decision),
		domain.SnapDecisionNote: in.Note,
		domain.SnapDecidedBy:    actor.ID,
		domain.SnapDecidedAt:    now.Format(time.RFC3339),
	}, domain.VersionMeta{ActorID: actor.ID})
	if err != nil {
		failed = append(failed, "version snapshot")
		errs = append(errs, err)
	} else {
		res.Version = version.Version
	}

	approval := &domain.Approval{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		ReviewerID: actor.ID,
		Decision:   in.Decision,
		Note:       in.Note,
		Version:    res.Version,
		DecidedAt:  now,
	}
	if err = s.approvals.Create(ctx, approval); err != nil {
		failed = append(failed, "approval log")
		errs = append(errs, fmt.Errorf("write approval: %w", err))
	}

	if !s.audit.Record(ctx, actor.ID, in.Decision.AuditAction(), event.ID, map[string]any{
		"decision":        string(in.Decision),
		"note":            in.Note,
		"previous_status": string(previousStatus),
		"version":         res.Version,
	}) {
		res.Warnings = append(res.Warnings, auditWarning)
	}

	s.notifications.NotifyDecision(ctx, event, in.Decision, in.Note)
	if in.Decision != domain.DecisionNeedsRevisions {
		s.publishDecision(ctx, event, in.Decision)
	}

	if len(failed) == 0 {
		return res, nil
	}

	committed := "decision recorded"
	if res.Version == 0 {
		committed = "decision applied"
	}
	s.logger.LogAttrs(ctx, logger.ErrorLevel, committed+" with failed steps",
		logger.String("event_id", event.ID),
		logger.String("failed", strings.Join(failed, ", ")),
	)

	return res, &domain.PartialFailureError{
		EventID:   event.ID,
		Committed: committed,
		Failed:    strings.Join(failed, " and "),
		Err:       errors.Join(errs...),
	}
}

func (s *EventLifecycle) Clone(ctx context.Context, eventID string, actor domain.Actor) (*domain.TransitionResult, error) {
	source, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err = domain.Authorize(domain.ActionClone, actor, source); err != nil {
		return nil, err
	}

	areaIDs, err := s.events.ListAreaIDs(ctx, source.ID)
	if err != nil {
		return nil, fmt.Errorf("list event areas: %w", err)
	}
	latest, err := s.versions.Latest(ctx, source.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	clone := &domain.Event{
		ID:          uuid.New().String(),
		Title:       source.Title + cloneTitleSuffix,
		Description: source.Description,
		VenueID:     source.VenueID,
		AreaIDs:     areaIDs,
		StartAt:     source.StartAt,
		EndAt:       source.EndAt,
		Status:      domain.EventStatusDraft,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if source.Venue != nil {
		v := *source.Venue
		clone.Venue = &v
	}

	if err = s.events.Create(ctx, clone); err != nil {
		return nil, fmt.Errorf("create clone: %w", err)
	}

	tx := newSaga("clone", clone.ID, s.logger)
	tx.onFailure("delete clone", func(ctx context.Context) error {
		return s.events.Delete(ctx, clone.ID)
	})

	if len(areaIDs) > 0 {
		if err = s.events.ReplaceAreas(ctx, clone.ID, areaIDs); err != nil {
			return nil, tx.abort(ctx, fmt.Errorf("copy areas: %w", err))
		}
	}

	base := domain.Snapshot{}
	sourceVersion := 0
	if latest != nil {
		base = latest.Payload
		sourceVersion = latest.Version
	}
	fields := domain.EditableSnapshot(clone)
	fields[domain.SnapReviewerID] = nil
	fields[domain.SnapClonedFrom] = source.ID
	fields[domain.SnapClonedAt] = now.Format(time.RFC3339)
	fields[domain.SnapClonedFromVersion] = sourceVersion

	version, err := s.versions.AppendVersion(ctx, clone.ID, 1, base.Merge(fields), domain.VersionMeta{ActorID: actor.ID})
	if err != nil {
		return nil, tx.abort(ctx, fmt.Errorf("write version snapshot: %w", err))
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "event cloned",
		logger.String("event_id", clone.ID),
		logger.String("source_event_id", source.ID),
		logger.String("actor_id", actor.ID),
	)

	res := &domain.TransitionResult{Event: clone, Version: version.Version}
	if !s.audit.Record(ctx, actor.ID, domain.AuditEventCloned, clone.ID, map[string]any{
		"source_event_id": source.ID,
		"source_version":  sourceVersion,
		"area_ids":        areaIDs,
	}) {
		res.Warnings = append(res.Warnings, auditWarning)
	}

	return res, nil
}

// Wait blocks until background deliveries and publishes finish.
func (s *EventLifecycle) Wait() {
	s.wg.Wait()
	s.notifications.Wait()
}

func (s *EventLifecycle) decidable(status domain.EventStatus) bool {
	if status == domain.EventStatusSubmitted {
		return true
	}
	return s.opts.AllowDecisionOnRevisions && status == domain.EventStatusNeedsRevisions
}

// chainSubmit submits a freshly saved draft. A failed submission leaves the
// saved draft in place and is reported as a partial failure.
func (s *EventLifecycle) chainSubmit(ctx context.Context, saved *domain.TransitionResult, actor domain.Actor, committed string) (*domain.TransitionResult, error) {
	res, err := s.submit(ctx, saved.Event, actor)
	if res == nil {
		return saved, &domain.PartialFailureError{
			EventID:   saved.Event.ID,
			Committed: committed,
			Failed:    "submission",
			Err:       err,
		}
	}

	res.Warnings = append(saved.Warnings, res.Warnings...)
	if res.Version == 0 {
		res.Version = saved.Version
	}
	return res, err
}

func (s *EventLifecycle) queueReminder(ctx context.Context, res *domain.TransitionResult, userID string) {
	if _, err := s.notifications.QueueDraftReminder(ctx, res.Event.ID, userID); err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, reminderWarning,
			logger.String("event_id", res.Event.ID),
			logger.String("error", err.Error()),
		)
		res.Warnings = append(res.Warnings, reminderWarning)
	}
}

func (s *EventLifecycle) publishDecision(ctx context.Context, event *domain.Event, decision domain.Decision) {
	if s.listing == nil {
		return
	}

	ev := event.Clone()
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.listing.PublishDecision(ctx, ev, decision); err != nil {
			s.logger.Error("failed to publish listing update",
				logger.String("event_id", ev.ID),
				logger.String("decision", string(decision)),
				logger.String("error", err.Error()),
			)
		}
	}()
}

func (s *EventLifecycle) validateDraft(in domain.DraftInput, fieldErrs []domain.FieldError) (time.Time, error) {
	if in.StartAt.IsZero() {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "start_at", Message: "is required"})
	}

	endAt := in.StartAt.Add(s.opts.DefaultDuration)
	if in.EndAt != nil {
		endAt = *in.EndAt
		if endAt.Before(in.StartAt) {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: "end_at", Message: "must not be before start_at"})
		}
	}

	if len(fieldErrs) > 0 {
		return time.Time{}, &domain.ValidationError{Fields: fieldErrs}
	}
	return endAt, nil
}

func normalizeDraft(in domain.DraftInput) domain.DraftInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.VenueID = strings.TrimSpace(in.VenueID)
	in.AreaIDs = uniqueIDs(in.AreaIDs)
	return in
}

func optionalString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
