package vehiclecmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"ev-route-service/internal/domain"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TeslaCommander implements VehicleCommander against the Tesla owner
// API, forwarding a navigation target to the vehicle's command
// endpoint under bearer-token authorization.
type TeslaCommander struct {
	session   *http.Client
	baseURL   string
	token     string
	vehicleID string
}

func NewTeslaCommander(token, vehicleID string) (*TeslaCommander, error) {
	if token == "" {
		return nil, errors.New("tesla bearer token is empty")
	}
	if vehicleID == "" {
		return nil, errors.New("tesla vehicle id is empty")
	}

	return &TeslaCommander{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://owner-api.teslamotors.com",
		token:     token,
		vehicleID: vehicleID,
	}, nil
}

type navigationRequest struct {
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Title     string  `json:"title"`
}

// SendNavigation shares the target with the vehicle's navigation system.
func (t *TeslaCommander) SendNavigation(ctx context.Context, target domain.Coordinate, title string) error {
	if title == "" {
		title = "EV Route Planner"
	}

	payload, err := json.Marshal(navigationRequest{
		Type:      "share_ext_content_raw",
		Latitude:  target.Lat,
		Longitude: target.Lng,
		Title:     title,
	})
	if err != nil {
		return fmt.Errorf("send navigation: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/1/vehicles/%s/command/navigation_request", t.baseURL, t.vehicleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send navigation: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.session.Do(req)
	if err != nil {
		return fmt.Errorf("send navigation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("send navigation: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}
