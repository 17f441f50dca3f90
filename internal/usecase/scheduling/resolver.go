package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
)

// Resolver determines, for each participant email, identity, timezone,
// availability intervals, and constraint defaults. Participants are resolved
// fresh on every scheduling call.
type Resolver struct {
	userRepo    repositories.UserRepository
	patternRepo repositories.AvailabilityPatternRepository
	provider    AvailabilityProvider
	policy      DefaultAvailabilityPolicy
}

// NewResolver creates a new availability resolver
func NewResolver(
	userRepo repositories.UserRepository,
	patternRepo repositories.AvailabilityPatternRepository,
	provider AvailabilityProvider,
	policy DefaultAvailabilityPolicy,
) *Resolver {
	return &Resolver{
		userRepo:    userRepo,
		patternRepo: patternRepo,
		provider:    provider,
		policy:      policy,
	}
}

// ResolveParticipants resolves every email to a participant record. Emails
// matching a registered user get that user's timezone, calendar intervals,
// and learned constraint pattern; unknown emails are treated as external
// contacts with policy-default weekday availability. Any lookup error is
// fatal for the whole call; there is no partial-participant fallback.
func (r *Resolver) ResolveParticipants(ctx context.Context, emails []string, organizerEmail string, from, to time.Time) ([]*entities.Participant, error) {
	participants := make([]*entities.Participant, 0, len(emails))

	for _, email := range emails {
		role := entities.ParticipantRoleRequired
		if email == organizerEmail {
			role = entities.ParticipantRoleOrganizer
		}

		user, err := r.userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				participants = append(participants, r.externalParticipant(email, role, from, to))
				continue
			}
			return nil, fmt.Errorf("failed to resolve participant %s: %w", email, err)
		}

		participant, err := r.registeredParticipant(ctx, user, role, from, to)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	return participants, nil
}

func (r *Resolver) registeredParticipant(ctx context.Context, user *entities.User, role entities.ParticipantRole, from, to time.Time) (*entities.Participant, error) {
	availability, err := r.provider.FetchAvailability(ctx, user, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for %s: %w", user.Email, err)
	}

	constraints := r.defaultConstraints()
	pattern, err := r.patternRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, entities.ErrPatternNotFound) {
			return nil, fmt.Errorf("failed to load availability pattern for %s: %w", user.Email, err)
		}
	} else {
		constraints = entities.ParticipantConstraints{
			NoMeetingsBefore:     pattern.WorkStart,
			NoMeetingsAfter:      pattern.WorkEnd,
			BreakBetweenMeetings: pattern.BufferMinutes,
		}
	}

	return &entities.Participant{
		Email:        user.Email,
		Name:         user.Name,
		Role:         role,
		Timezone:     user.Timezone,
		Availability: availability,
		Constraints:  constraints,
	}, nil
}

// externalParticipant synthesizes availability for an email with no user
// record: one free interval per weekday across the horizon, inside the
// policy's workday window.
func (r *Resolver) externalParticipant(email string, role entities.ParticipantRole, from, to time.Time) *entities.Participant {
	return &entities.Participant{
		Email:        email,
		Role:         role,
		Timezone:     "UTC",
		Availability: r.synthesizeWeekdayAvailability(from, to),
		Constraints:  r.defaultConstraints(),
	}
}

func (r *Resolver) synthesizeWeekdayAvailability(from, to time.Time) []entities.AvailabilitySlot {
	startClock, err := parseClock(r.policy.WorkdayStart)
	if err != nil {
		startClock = 9
	}
	endClock, err := parseClock(r.policy.WorkdayEnd)
	if err != nil {
		endClock = 17
	}

	var slots []entities.AvailabilitySlot
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		slots = append(slots, entities.AvailabilitySlot{
			Start:  clockOnDay(day, startClock),
			End:    clockOnDay(day, endClock),
			Status: entities.AvailabilityStatusFree,
		})
	}
	return slots
}

func (r *Resolver) defaultConstraints() entities.ParticipantConstraints {
	return entities.ParticipantConstraints{
		NoMeetingsBefore:     r.policy.WorkdayStart,
		NoMeetingsAfter:      r.policy.WorkdayEnd,
		BreakBetweenMeetings: r.policy.BufferMinutes,
	}
}

// clockOnDay places an hour-plus-fraction clock value on the given day.
func clockOnDay(day time.Time, clock float64) time.Time {
	hour := int(clock)
	minute := int((clock - float64(hour)) * 60)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
