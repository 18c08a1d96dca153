package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPlanner/internal/domain"
	"github.com/stpnv0/EventPlanner/internal/handler/dto"
	"github.com/stpnv0/EventPlanner/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type LifecycleSvc interface {
	CreateDraft(ctx context.Context, in domain.DraftInput, actor domain.Actor) (*domain.TransitionResult, error)
	UpdateDraft(ctx context.Context, in domain.UpdateDraftInput, actor domain.Actor) (*domain.TransitionResult, error)
	Submit(ctx context.Context, eventID string, actor domain.Actor) (*domain.TransitionResult, error)
	Decide(ctx context.Context, in domain.DecideInput, actor domain.Actor) (*domain.TransitionResult, error)
	Clone(ctx context.Context, eventID string, actor domain.Actor) (*domain.TransitionResult, error)
}

type EventSvc interface {
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListVersions(ctx context.Context, id string) ([]*domain.EventVersion, error)
	ListApprovals(ctx context.Context, id string) ([]*domain.Approval, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	lifecycle    LifecycleSvc
	eventService EventSvc
	userService  UserSvc
}

func NewHandler(lifecycle LifecycleSvc, eventService EventSvc, userService UserSvc) *Handler {
	return &Handler{
		lifecycle:    lifecycle,
		eventService: eventService,
		userService:  userService,
	}
}

// Lifecycle

func (h *Handler) CreateEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toDraftInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.lifecycle.CreateDraft(c.Request.Context(), input, actor)
	h.respondTransition(c, http.StatusCreated, res, err)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := toDraftInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.lifecycle.UpdateDraft(c.Request.Context(), domain.UpdateDraftInput{
		EventID:    eventID,
		DraftInput: input,
	}, actor)
	h.respondTransition(c, http.StatusOK, res, err)
}

func (h *Handler) SubmitEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	res, err := h.lifecycle.Submit(c.Request.Context(), eventID, actor)
	h.respondTransition(c, http.StatusOK, res, err)
}

func (h *Handler) DecideEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	decision, err := domain.ParseDecision(req.Decision)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.lifecycle.Decide(c.Request.Context(), domain.DecideInput{
		EventID:  eventID,
		Decision: decision,
		Note:     req.Note,
	}, actor)
	h.respondTransition(c, http.StatusOK, res, err)
}

func (h *Handler) CloneEvent(c *ginext.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	res, err := h.lifecycle.Clone(c.Request.Context(), eventID, actor)
	h.respondTransition(c, http.StatusCreated, res, err)
}

// Events

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{VenueID: c.Query("venue_id")}

	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseEventStatus(raw)
		if err != nil {
			h.handleError(c, err)
			return
		}
		filter.Status = &status
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		filter.Limit = limit
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListVersions(c *ginext.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	versions, err := h.eventService.ListVersions(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VersionResponse, 0, len(versions))
	for _, v := range versions {
		resp = append(resp, dto.ToVersionResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListApprovals(c *ginext.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	approvals, err := h.eventService.ListApprovals(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ApprovalResponse, 0, len(approvals))
	for _, a := range approvals {
		resp = append(resp, dto.ToApprovalResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		Role:           role,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) actor(c *ginext.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		h.handleError(c, domain.ErrUnauthenticated)
	}
	return actor, ok
}

func eventIDParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func toDraftInput(req dto.DraftRequest) (domain.DraftInput, error) {
	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return domain.DraftInput{}, errors.New("invalid start_at format, expected RFC3339")
	}

	input := domain.DraftInput{
		Title:       req.Title,
		Description: req.Description,
		VenueID:     req.VenueID,
		StartAt:     startAt,
		AreaIDs:     req.AreaIDs,
		Submit:      req.Submit,
	}

	if req.EndAt != nil && *req.EndAt != "" {
		endAt, err := time.Parse(time.RFC3339, *req.EndAt)
		if err != nil {
			return domain.DraftInput{}, errors.New("invalid end_at format, expected RFC3339")
		}
		input.EndAt = &endAt
	}

	return input, nil
}

// respondTransition writes a lifecycle result. A partial failure still
// carries whatever was committed so the caller can reconcile.
func (h *Handler) respondTransition(c *ginext.Context, status int, res *domain.TransitionResult, err error) {
	if err != nil {
		var pf *domain.PartialFailureError
		if errors.As(err, &pf) {
			c.Set("error", err.Error())
			resp := dto.ErrorResponse{Error: err.Error(), EventID: pf.EventID}
			if res != nil && res.Event != nil {
				tr := dto.ToTransitionResponse(res)
				resp.Result = &tr
			}
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(status, dto.ToTransitionResponse(res))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	var pf *domain.PartialFailureError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Fields: verr.Fields})

	case errors.Is(err, domain.ErrAreaNotFound),
		errors.Is(err, domain.ErrAreaVenueMismatch):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrVersionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &pf):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), EventID: pf.EventID})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
