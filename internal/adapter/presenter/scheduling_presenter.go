package presenter

import (
	"encoding/json"
	"fmt"
	"time"

	schedulingDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/scheduling"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/scheduling"
)

// ToSlotResponse converts a scored slot to its response DTO
func ToSlotResponse(slot *scheduling.ScoredSlot) *schedulingDTO.SlotResponse {
	if slot == nil {
		return nil
	}

	return &schedulingDTO.SlotResponse{
		ID:          slot.ID.String(),
		StartTime:   slot.Start.Format(time.RFC3339),
		EndTime:     slot.End.Format(time.RFC3339),
		DisplayDate: slot.Start.Format("Monday, January 2, 2006"),
		DisplayTime: fmt.Sprintf("%s - %s", slot.Start.Format("3:04 PM"), slot.End.Format("3:04 PM")),
		Score:       slot.Score,
		Confidence:  slot.Confidence,
		Reasoning:   slot.Reasoning,
		Conflicts:   slot.Conflicts,
		AvailabilitySummary: schedulingDTO.AvailabilitySummaryResponse{
			Free:      slot.Summary.Free,
			Busy:      slot.Summary.Busy,
			Tentative: slot.Summary.Tentative,
		},
		OptimalFactors: slot.OptimalFactors,
	}
}

// ToScheduleMeetingResponse converts the engine result to the API response
func ToScheduleMeetingResponse(result *scheduling.SchedulingResult) *schedulingDTO.ScheduleMeetingResponse {
	if result == nil {
		return nil
	}

	slots := make([]*schedulingDTO.SlotResponse, 0, len(result.SuggestedSlots))
	for i := range result.SuggestedSlots {
		slots = append(slots, ToSlotResponse(&result.SuggestedSlots[i]))
	}

	feedback := make(map[string]schedulingDTO.ParticipantFeedbackResponse, len(result.ParticipantFeedback))
	for email, fb := range result.ParticipantFeedback {
		feedback[email] = schedulingDTO.ParticipantFeedbackResponse{
			AvailabilityRate:       fb.AvailabilityRate,
			ConstraintsMet:         fb.ConstraintsMet,
			AlternativeSuggestions: fb.AlternativeSuggestions,
		}
	}

	return &schedulingDTO.ScheduleMeetingResponse{
		MeetingRequestID: result.MeetingRequestID.String(),
		Outcome:          string(result.Outcome),
		SuggestedSlots:   slots,
		Analysis: &schedulingDTO.AnalysisResponse{
			TotalSlotsEvaluated: result.Analysis.TotalSlotsEvaluated,
			BestScore:           result.Analysis.BestScore,
			AverageScore:        result.Analysis.AverageScore,
			Difficulty:          string(result.Analysis.Difficulty),
			Recommendations:     result.Analysis.Recommendations,
		},
		ParticipantFeedback: feedback,
	}
}

// ToStoredSlotResponse converts a persisted slot record to its response DTO
func ToStoredSlotResponse(slot *entities.MeetingTimeSlot) *schedulingDTO.SlotResponse {
	if slot == nil {
		return nil
	}

	var conflicts, factors []string
	var summary schedulingDTO.AvailabilitySummaryResponse
	if slot.Conflicts != nil {
		json.Unmarshal(slot.Conflicts, &conflicts)
	}
	if slot.OptimalFactors != nil {
		json.Unmarshal(slot.OptimalFactors, &factors)
	}
	if slot.AvailabilitySummary != nil {
		json.Unmarshal(slot.AvailabilitySummary, &summary)
	}

	return &schedulingDTO.SlotResponse{
		ID:                  slot.ID.String(),
		StartTime:           slot.StartTime.Format(time.RFC3339),
		EndTime:             slot.EndTime.Format(time.RFC3339),
		DisplayDate:         slot.StartTime.Format("Monday, January 2, 2006"),
		DisplayTime:         fmt.Sprintf("%s - %s", slot.StartTime.Format("3:04 PM"), slot.EndTime.Format("3:04 PM")),
		Score:               slot.Score,
		Confidence:          slot.Confidence,
		Reasoning:           slot.Reasoning,
		Conflicts:           conflicts,
		AvailabilitySummary: summary,
		OptimalFactors:      factors,
	}
}

// ToMeetingResponse converts a stored request and its slots to the API response
func ToMeetingResponse(request *entities.MeetingRequest, slots []*entities.MeetingTimeSlot) *schedulingDTO.MeetingResponse {
	if request == nil {
		return nil
	}

	var emails []string
	if request.ParticipantEmails != nil {
		json.Unmarshal(request.ParticipantEmails, &emails)
	}

	var selected map[string]interface{}
	if request.SelectedSlot != nil {
		json.Unmarshal(request.SelectedSlot, &selected)
	}

	slotResponses := make([]*schedulingDTO.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		slotResponses = append(slotResponses, ToStoredSlotResponse(slot))
	}

	return &schedulingDTO.MeetingResponse{
		ID:                 request.ID.String(),
		OrganizerID:        request.OrganizerID.String(),
		Title:              request.Title,
		ParticipantEmails:  emails,
		DurationMinutes:    request.DurationMinutes,
		MeetingType:        string(request.MeetingType),
		Priority:           string(request.Priority),
		LocationType:       string(request.LocationType),
		LocationDetails:    request.LocationDetails,
		Agenda:             request.Agenda,
		PreparationMinutes: request.PreparationMinutes,
		BufferMinutes:      request.BufferMinutes,
		Status:             string(request.Status),
		SelectedSlot:       selected,
		SuggestedSlots:     slotResponses,
		CreatedAt:          request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          request.UpdatedAt.Format(time.RFC3339),
	}
}
