package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

const freeBusyURL = "https://www.googleapis.com/calendar/v3/freeBusy"

// GoogleProvider fetches busy intervals from the Google Calendar free/busy
// API using the refresh token captured when the user signed in with the
// calendar scope. Users without a stored token resolve as having no calendar
// data.
type GoogleProvider struct {
	oauthConfig *oauth2.Config
	baseURL     string
}

// NewGoogleProvider creates a Google Calendar availability provider
func NewGoogleProvider(oauthConfig *oauth2.Config) *GoogleProvider {
	return &GoogleProvider{
		oauthConfig: oauthConfig,
		baseURL:     freeBusyURL,
	}
}

type freeBusyRequest struct {
	TimeMin string             `json:"timeMin"`
	TimeMax string             `json:"timeMax"`
	Items   []freeBusyCalendar `json:"items"`
}

type freeBusyCalendar struct {
	ID string `json:"id"`
}

type freeBusyResponse struct {
	Calendars map[string]struct {
		Busy []struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
		} `json:"busy"`
	} `json:"calendars"`
}

// FetchAvailability queries the user's primary calendar for busy intervals
// in [from, to).
func (g *GoogleProvider) FetchAvailability(ctx context.Context, user *entities.User, from, to time.Time) ([]entities.AvailabilitySlot, error) {
	if !user.HasCalendarToken() {
		return nil, nil
	}

	token := &oauth2.Token{RefreshToken: *user.OAuthRefreshToken}
	client := g.oauthConfig.Client(ctx, token)

	payload, err := json.Marshal(freeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []freeBusyCalendar{{ID: "primary"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal freebusy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build freebusy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("freebusy query failed: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var parsed freeBusyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode freebusy response: %w", err)
	}

	var slots []entities.AvailabilitySlot
	for _, cal := range parsed.Calendars {
		for _, interval := range cal.Busy {
			slots = append(slots, entities.AvailabilitySlot{
				Start:  interval.Start,
				End:    interval.End,
				Status: entities.AvailabilityStatusBusy,
			})
		}
	}
	return slots, nil
}
