package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
	"github.com/johnquangdev/meeting-scheduler/pkg/idgen"
)

// Service runs the slot recommendation pipeline: resolve participants,
// generate candidates, score, rank, persist, and assemble the result.
type Service struct {
	meetingRepo repositories.MeetingRequestRepository
	slotRepo    repositories.TimeSlotRepository
	resolver    *Resolver
	ids         idgen.Provider
	cfg         config.SchedulerConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new scheduling service
func NewService(
	meetingRepo repositories.MeetingRequestRepository,
	slotRepo repositories.TimeSlotRepository,
	resolver *Resolver,
	ids idgen.Provider,
	cfg config.SchedulerConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		slotRepo:    slotRepo,
		resolver:    resolver,
		ids:         ids,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// ScheduleMeetingInput represents input for scheduling a meeting
type ScheduleMeetingInput struct {
	OrganizerID        uuid.UUID
	OrganizerEmail     string
	Title              string
	ParticipantEmails  []string
	DurationMinutes    int
	MeetingType        entities.MeetingType
	Priority           entities.MeetingPriority
	LocationType       entities.LocationType
	LocationDetails    *string
	Agenda             *string
	PreparationMinutes int
	BufferMinutes      int
	Preferences        *entities.SchedulingPreferences
}

// ScheduleMeeting runs the full pipeline for one meeting request. Invalid
// input fails fast before any lookup or generation work; any later failure
// surfaces as ErrSchedulingFailed.
func (s *Service) ScheduleMeeting(ctx context.Context, input ScheduleMeetingInput) (*SchedulingResult, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	now := s.now()
	horizonEnd := now.AddDate(0, 0, s.cfg.HorizonDays)

	participants, err := s.resolver.ResolveParticipants(ctx, input.ParticipantEmails, input.OrganizerEmail, now, horizonEnd)
	if err != nil {
		return nil, s.fail("resolve participants", err)
	}

	var preferredDays []int
	if input.Preferences != nil {
		preferredDays = input.Preferences.PreferredDays
	}
	candidates := generateCandidateSlots(now, input.DurationMinutes, preferredDays, s.cfg)

	scored := make([]ScoredSlot, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, scoreSlot(c, &input, participants))
	}

	ranked := rankSlots(scored)
	suggested := ranked
	if len(suggested) > s.cfg.MaxSuggestedSlots {
		suggested = suggested[:s.cfg.MaxSuggestedSlots]
	}

	request, err := s.persistRequest(ctx, &input)
	if err != nil {
		return nil, s.fail("persist meeting request", err)
	}

	for i := range suggested {
		if err := s.persistSlot(ctx, request.ID, &suggested[i]); err != nil {
			return nil, s.fail("persist suggested slot", err)
		}
	}

	outcome := OutcomeOK
	if len(ranked) == 0 {
		outcome = OutcomeNoViableSlots
	}

	result := &SchedulingResult{
		MeetingRequestID:    request.ID,
		Outcome:             outcome,
		SuggestedSlots:      suggested,
		Analysis:            analyze(ranked, len(scored), len(participants)),
		ParticipantFeedback: participantFeedback(participants, scored),
	}

	s.logger.Info("meeting scheduled",
		zap.String("meeting_request_id", request.ID.String()),
		zap.String("outcome", string(outcome)),
		zap.Int("slots_evaluated", len(scored)),
		zap.Int("slots_suggested", len(suggested)),
	)

	return result, nil
}

// GetMeeting returns a stored request and its persisted candidate slots.
func (s *Service) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.MeetingRequest, []*entities.MeetingTimeSlot, error) {
	request, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingRequestNotFound) {
			return nil, nil, usecaseErrors.ErrMeetingRequestNotFound
		}
		return nil, nil, fmt.Errorf("failed to get meeting request: %w", err)
	}

	slots, err := s.slotRepo.FindByMeetingRequestID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get suggested slots: %w", err)
	}

	return request, slots, nil
}

// ListMeetings returns the organizer's meeting requests, newest first.
func (s *Service) ListMeetings(ctx context.Context, organizerID uuid.UUID, limit, offset int) ([]*entities.MeetingRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	requests, err := s.meetingRepo.FindByOrganizerID(ctx, organizerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting requests: %w", err)
	}
	return requests, nil
}

// ConfirmSlot marks a pending request as scheduled with one of its suggested
// slots.
func (s *Service) ConfirmSlot(ctx context.Context, requestID, slotID, organizerID uuid.UUID) (*entities.MeetingRequest, error) {
	request, err := s.meetingRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingRequestNotFound) {
			return nil, usecaseErrors.ErrMeetingRequestNotFound
		}
		return nil, fmt.Errorf("failed to get meeting request: %w", err)
	}

	if request.OrganizerID != organizerID {
		return nil, usecaseErrors.ErrNotOrganizer
	}
	if !request.IsPending() {
		return nil, usecaseErrors.ErrAlreadyConfirmed
	}

	slot, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, entities.ErrTimeSlotNotFound) {
			return nil, usecaseErrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	if slot.MeetingRequestID != requestID {
		return nil, usecaseErrors.ErrSlotMismatch
	}

	selected, err := json.Marshal(map[string]interface{}{
		"slot_id":    slot.ID.String(),
		"start_time": slot.StartTime.Format(time.RFC3339),
		"end_time":   slot.EndTime.Format(time.RFC3339),
		"score":      slot.Score,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selected slot: %w", err)
	}

	request.Confirm(datatypes.JSON(selected))
	if err := s.meetingRepo.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to confirm meeting request: %w", err)
	}

	s.logger.Info("meeting confirmed",
		zap.String("meeting_request_id", requestID.String()),
		zap.String("slot_id", slotID.String()),
	)

	return request, nil
}

func (s *Service) persistRequest(ctx context.Context, input *ScheduleMeetingInput) (*entities.MeetingRequest, error) {
	emails, err := json.Marshal(input.ParticipantEmails)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal participant emails: %w", err)
	}

	preferences := datatypes.JSON([]byte("{}"))
	if input.Preferences != nil {
		raw, err := json.Marshal(input.Preferences)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal preferences: %w", err)
		}
		preferences = datatypes.JSON(raw)
	}

	request := &entities.MeetingRequest{
		ID:                 s.ids.NewID(),
		OrganizerID:        input.OrganizerID,
		Title:              input.Title,
		ParticipantEmails:  datatypes.JSON(emails),
		DurationMinutes:    input.DurationMinutes,
		MeetingType:        input.MeetingType,
		Priority:           input.Priority,
		LocationType:       input.LocationType,
		LocationDetails:    input.LocationDetails,
		Agenda:             input.Agenda,
		PreparationMinutes: input.PreparationMinutes,
		BufferMinutes:      input.BufferMinutes,
		Preferences:        preferences,
		Status:             entities.MeetingRequestStatusPending,
	}

	if err := s.meetingRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *Service) persistSlot(ctx context.Context, requestID uuid.UUID, slot *ScoredSlot) error {
	conflicts, err := json.Marshal(slot.Conflicts)
	if err != nil {
		return fmt.Errorf("failed to marshal conflicts: %w", err)
	}
	summary, err := json.Marshal(slot.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal availability summary: %w", err)
	}
	factors, err := json.Marshal(slot.OptimalFactors)
	if err != nil {
		return fmt.Errorf("failed to marshal optimal factors: %w", err)
	}

	record := &entities.MeetingTimeSlot{
		ID:                  s.ids.NewID(),
		MeetingRequestID:    requestID,
		StartTime:           slot.Start,
		EndTime:             slot.End,
		Score:               slot.Score,
		Confidence:          slot.Confidence,
		Reasoning:           slot.Reasoning,
		Conflicts:           datatypes.JSON(conflicts),
		AvailabilitySummary: datatypes.JSON(summary),
		OptimalFactors:      datatypes.JSON(factors),
	}

	if err := s.slotRepo.Create(ctx, record); err != nil {
		return err
	}
	slot.ID = record.ID
	return nil
}

// validateInput rejects requests that would otherwise fail deep inside the
// pipeline with undefined arithmetic.
func validateInput(input *ScheduleMeetingInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidMeetingRequest, usecaseErrors.ErrBlankTitle)
	}
	if len(input.ParticipantEmails) == 0 {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidMeetingRequest, usecaseErrors.ErrEmptyParticipants)
	}
	if input.DurationMinutes <= 0 {
		return fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidMeetingRequest, usecaseErrors.ErrInvalidDuration)
	}
	if !input.MeetingType.IsValid() {
		return fmt.Errorf("%w: unknown meeting type %q", usecaseErrors.ErrInvalidMeetingRequest, input.MeetingType)
	}
	return nil
}

// fail logs the underlying cause and returns the single opaque scheduling
// error exposed to callers.
func (s *Service) fail(stage string, err error) error {
	s.logger.Error("scheduling pipeline failed",
		zap.String("stage", stage),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %v", usecaseErrors.ErrSchedulingFailed, err)
}
