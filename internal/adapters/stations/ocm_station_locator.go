package stations

import (
	"context"
	"encoding/json"
	"errors"
	"ev-route-service/internal/adapters/cache"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/platform/obs"
	"ev-route-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

// Search parameters fixed by the planner: stations within 50 km of the
// query point, at most 10 results per point.
const (
	searchRadiusKm = 50
	maxResults     = 10
)

// OCMStationLocator implements StationLocator using the OpenChargeMap
// POI API.
//
// It coordinates:
//   - Persistent per-query-point result caching
//   - External API calls with retry/backoff
//   - Validation of upstream coordinates before they enter any math
//
// The locator is safe for concurrent use.
type OCMStationLocator struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   *cache.SqliteStationCache
}

func NewOCMStationLocator(apiKey string, stationCache *cache.SqliteStationCache) (*OCMStationLocator, error) {
	if apiKey == "" {
		return nil, errors.New("OpenChargeMap api key is empty")
	}

	return &OCMStationLocator{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openchargemap.io",
		cache:   stationCache,
	}, nil
}

// Raw POI shape returned by /v3/poi. Coordinates are decoded as
// pointers so records with absent or non-numeric values can be skipped
// instead of flowing a zero or garbage value into distance math.
type ocmPOI struct {
	ID          json.Number `json:"ID"`
	UsageCost   string      `json:"UsageCost"`
	AddressInfo struct {
		Latitude     *float64 `json:"Latitude"`
		Longitude    *float64 `json:"Longitude"`
		Title        string   `json:"Title"`
		AddressLine1 string   `json:"AddressLine1"`
	} `json:"AddressInfo"`
	UsageType *struct {
		Title string `json:"Title"`
	} `json:"UsageType"`
	OperatorInfo *struct {
		Title string `json:"Title"`
	} `json:"OperatorInfo"`
	Connections []struct {
		Level *struct {
			Title string `json:"Title"`
		} `json:"Level"`
	} `json:"Connections"`
}

// NearbyStations returns raw station records near the given point.
func (o *OCMStationLocator) NearbyStations(
	ctx context.Context,
	point domain.Coordinate,
) (_ []ports.RawStationRecord, err error) {
	defer obs.Time(ctx, "ocm.NearbyStations")(&err)

	key := cacheKey(point, searchRadiusKm)

	// An empty cached row set is indistinguishable from a miss, so
	// points with no stations nearby are re-queried. Acceptable: those
	// responses are the cheap ones.
	if o.cache != nil {
		hit, err := o.cache.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("station cache read: %w", err)
		}
		if len(hit) > 0 {
			return hit, nil
		}
	}

	endpoint := o.baseURL + "/v3/poi/"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("output", "json")
		q.Set("latitude", strconv.FormatFloat(point.Lat, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(point.Lng, 'f', -1, 64))
		q.Set("distance", strconv.Itoa(searchRadiusKm))
		q.Set("maxresults", strconv.Itoa(maxResults))
		q.Set("key", o.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("openchargemap poi request: %w", err)
	}
	defer resp.Body.Close()

	var pois []ocmPOI
	if err := json.NewDecoder(resp.Body).Decode(&pois); err != nil {
		return nil, fmt.Errorf("decode openchargemap response: %w", err)
	}

	records := make([]ports.RawStationRecord, 0, len(pois))
	for _, p := range pois {
		if p.AddressInfo.Latitude == nil || p.AddressInfo.Longitude == nil {
			log.Printf("skipping station id=%s: missing coordinates", p.ID.String())
			continue
		}

		rec := ports.RawStationRecord{
			ID: p.ID.String(),
			Location: domain.Coordinate{
				Lat: *p.AddressInfo.Latitude,
				Lng: *p.AddressInfo.Longitude,
			},
			Title:   p.AddressInfo.Title,
			Address: p.AddressInfo.AddressLine1,
			Cost:    p.UsageCost,
		}
		if p.UsageType != nil {
			rec.UsageType = p.UsageType.Title
		}
		if p.OperatorInfo != nil {
			rec.Operator = p.OperatorInfo.Title
		}
		if len(p.Connections) > 0 && p.Connections[0].Level != nil {
			rec.Speed = p.Connections[0].Level.Title
		}

		records = append(records, rec)
	}

	if o.cache != nil && len(records) > 0 {
		if err := o.cache.Put(ctx, key, records); err != nil {
			log.Printf("station cache write failed: %v", err)
		}
	}

	return records, nil
}

// cacheKey buckets query points to four decimal places (~11 m) so
// repeated computations over the same route hit the cache.
func cacheKey(point domain.Coordinate, radiusKm int) string {
	return fmt.Sprintf("%.4f,%.4f|r=%d", point.Lat, point.Lng, radiusKm)
}
