package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	schedulingDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/scheduling"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/scheduling"
)

// Scheduling handles meeting scheduling HTTP requests
type Scheduling struct {
	service *scheduling.Service
}

// NewScheduling creates a new scheduling handler
func NewScheduling(service *scheduling.Service) *Scheduling {
	return &Scheduling{
		service: service,
	}
}

// ScheduleMeeting runs the recommendation pipeline for a new meeting request
// POST /v1/meetings/schedule
func (h *Scheduling) ScheduleMeeting(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error": "User not authenticated",
		})
	}

	var req schedulingDTO.ScheduleMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "Invalid meeting request",
			"details": err.Error(),
		})
	}

	result, err := h.service.ScheduleMeeting(ctx, toScheduleInput(user, &req))
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrInvalidMeetingRequest) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "Invalid meeting request",
				"details": err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to schedule meeting",
		})
	}

	return c.JSON(http.StatusOK, presenter.ToScheduleMeetingResponse(result))
}

// ListMeetings returns the authenticated organizer's meeting requests
// GET /v1/meetings
func (h *Scheduling) ListMeetings(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error": "User not authenticated",
		})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	requests, err := h.service.ListMeetings(ctx, user.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to list meeting requests",
		})
	}

	meetings := make([]*schedulingDTO.MeetingResponse, 0, len(requests))
	for _, request := range requests {
		meetings = append(meetings, presenter.ToMeetingResponse(request, nil))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"meetings":  meetings,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetMeeting returns a stored meeting request with its suggested slots
// GET /v1/meetings/:id
func (h *Scheduling) GetMeeting(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid meeting request ID",
		})
	}

	request, slots, err := h.service.GetMeeting(ctx, id)
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrMeetingRequestNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error": "Meeting request not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to get meeting request",
		})
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(request, slots))
}

// ConfirmSlot confirms one of the suggested slots for a pending request
// POST /v1/meetings/:id/confirm
func (h *Scheduling) ConfirmSlot(c echo.Context) error {
	ctx := c.Request().Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error": "User not authenticated",
		})
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid meeting request ID",
		})
	}

	var req schedulingDTO.ConfirmSlotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "Invalid slot ID",
			"details": err.Error(),
		})
	}

	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Invalid slot ID",
		})
	}

	request, err := h.service.ConfirmSlot(ctx, requestID, slotID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, usecaseErrors.ErrMeetingRequestNotFound):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error": "Meeting request not found",
			})
		case errors.Is(err, usecaseErrors.ErrSlotNotFound):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error": "Suggested slot not found",
			})
		case errors.Is(err, usecaseErrors.ErrNotOrganizer):
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"error": "Only the organizer can confirm a slot",
			})
		case errors.Is(err, usecaseErrors.ErrAlreadyConfirmed):
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"error": "Meeting request is already scheduled",
			})
		case errors.Is(err, usecaseErrors.ErrSlotMismatch):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "Slot does not belong to this meeting request",
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"error": "Failed to confirm slot",
			})
		}
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(request, nil))
}

func toScheduleInput(user *entities.User, req *schedulingDTO.ScheduleMeetingRequest) scheduling.ScheduleMeetingInput {
	priority := entities.MeetingPriorityMedium
	if req.Priority != "" {
		priority = entities.MeetingPriority(req.Priority)
	}
	locationType := entities.LocationTypeVirtual
	if req.LocationType != "" {
		locationType = entities.LocationType(req.LocationType)
	}

	input := scheduling.ScheduleMeetingInput{
		OrganizerID:        user.ID,
		OrganizerEmail:     user.Email,
		Title:              req.Title,
		ParticipantEmails:  req.ParticipantEmails,
		DurationMinutes:    req.DurationMinutes,
		MeetingType:        entities.MeetingType(req.MeetingType),
		Priority:           priority,
		LocationType:       locationType,
		LocationDetails:    req.LocationDetails,
		Agenda:             req.Agenda,
		PreparationMinutes: req.PreparationMinutes,
		BufferMinutes:      req.BufferMinutes,
	}

	if req.Preferences != nil {
		input.Preferences = &entities.SchedulingPreferences{
			PreferredTimes:         toTimeWindows(req.Preferences.PreferredTimes),
			AvoidTimes:             toTimeWindows(req.Preferences.AvoidTimes),
			PreferredDays:          req.Preferences.PreferredDays,
			AvoidDays:              req.Preferences.AvoidDays,
			Timezone:               req.Preferences.Timezone,
			MaxParticipants:        req.Preferences.MaxParticipants,
			RequireAllParticipants: req.Preferences.RequireAllParticipants,
		}
	}

	return input
}

func toTimeWindows(windows []schedulingDTO.TimeWindow) []entities.TimeWindow {
	if len(windows) == 0 {
		return nil
	}
	out := make([]entities.TimeWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, entities.TimeWindow{Start: w.Start, End: w.End})
	}
	return out
}
