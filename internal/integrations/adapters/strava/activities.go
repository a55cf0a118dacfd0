package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lifeboard-service/internal/integrations/core/domain"
	"lifeboard-service/internal/integrations/core/ports"
)

const defaultBaseURL = "https://www.strava.com/api/v3"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ActivitySource lists finished athlete activities from the Strava API.
type ActivitySource struct {
	client  httpDoer
	baseURL string
}

var _ ports.ActivitySourcePort = (*ActivitySource)(nil)

func NewActivitySource(client httpDoer) *ActivitySource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ActivitySource{client: client, baseURL: defaultBaseURL}
}

type activityPayload struct {
	ID          int64   `json:"id"`
	StartDate   string  `json:"start_date"`
	ElapsedTime float64 `json:"elapsed_time"` // seconds
}

func (s *ActivitySource) FinishedActivities(ctx context.Context, token domain.ProviderToken, since time.Time) ([]domain.Activity, error) {
	url := fmt.Sprintf("%s/athlete/activities?after=%d&per_page=100", s.baseURL, since.Unix())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("strava: list activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("strava: list activities: status %d", resp.StatusCode)
	}

	var payload []activityPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("strava: decode activities: %w", err)
	}

	activities := make([]domain.Activity, 0, len(payload))
	for _, p := range payload {
		startedAt, err := time.Parse(time.RFC3339, p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("strava: activity %d: bad start_date %q", p.ID, p.StartDate)
		}
		activities = append(activities, domain.Activity{
			ExternalID:  strconv.FormatInt(p.ID, 10),
			StartedAt:   startedAt.UTC(),
			CompletedAt: startedAt.UTC().Add(time.Duration(p.ElapsedTime) * time.Second),
		})
	}

	return activities, nil
}
