package services

import (
	"context"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/energy"
	"ev-route-service/internal/geo"
	"ev-route-service/internal/ports"
	"log"
	"sync"
	"time"
)

// RouteEnergySimulator walks the ordered route legs, tracks remaining
// state of charge, and annotates every station discovered near the
// route with the charge level the vehicle would have on arrival.
//
// Station lookups are issued for the origin point and for the midpoint
// of each leg. The lookups run concurrently, but results are merged in
// fixed route order (origin batch first, then leg 1..N) so that the
// candidate list reads as if discovered sequentially. The battery
// accumulation itself is strictly leg-by-leg and never parallelized.
type RouteEnergySimulator struct {
	Locator ports.StationLocator
	Detour  DetourStrategy

	// QueryTimeout bounds each station lookup. Expiry is a per-point
	// failure, not a computation failure. Zero means no bound.
	QueryTimeout time.Duration

	// MaxInFlight caps concurrent station lookups. Zero means 5.
	MaxInFlight int
}

// One station lookup alongside the context needed to annotate its hits:
// the battery level at the start of the leg and the leg endpoints used
// for detour estimation.
type queryPoint struct {
	search       domain.Coordinate
	legStart     domain.Coordinate
	legEnd       domain.Coordinate
	batteryAtLeg float64
}

// Simulate runs one pass over the route. It returns the flat ordered
// list of discovered candidates and the battery percentage remaining at
// route end. The only error it can return is context cancellation;
// individual lookup failures degrade to zero candidates for that point.
func (s *RouteEnergySimulator) Simulate(
	ctx context.Context,
	legs []domain.RouteLeg,
	profile domain.VehicleProfile,
	startBatteryPct float64,
) ([]domain.StationCandidate, float64, error) {
	if len(legs) == 0 {
		return []domain.StationCandidate{}, startBatteryPct, nil
	}

	// Battery at the start of each leg is fixed by the leg distances
	// alone (no mid-route recharge is simulated), so it can be computed
	// up front while the lookups fan out.
	points := make([]queryPoint, 0, len(legs)+1)
	points = append(points, queryPoint{
		search:       legs[0].Start,
		legStart:     legs[0].Start,
		legEnd:       legs[0].End,
		batteryAtLeg: startBatteryPct,
	})

	battery := startBatteryPct
	for _, leg := range legs {
		points = append(points, queryPoint{
			search:       leg.Midpoint(),
			legStart:     leg.Start,
			legEnd:       leg.End,
			batteryAtLeg: battery,
		})
		battery -= energy.ConsumptionPercent(leg.DistanceMeters/1000, profile)
	}

	batches := make([][]ports.RawStationRecord, len(points))

	maxInFlight := s.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 5
	}
	sem := make(chan struct{}, maxInFlight)
	var wg sync.WaitGroup

	for i, p := range points {
		wg.Add(1)
		go func(i int, p queryPoint) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			qctx := ctx
			if s.QueryTimeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(ctx, s.QueryTimeout)
				defer cancel()
			}

			records, err := s.Locator.NearbyStations(qctx, p.search)
			if err != nil {
				// Recoverable: this point contributes zero candidates.
				log.Printf("station lookup failed lat=%v lng=%v err=%v", p.search.Lat, p.search.Lng, err)
				return
			}
			batches[i] = records
		}(i, p)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	// Merge in route order, keeping the first occurrence of each
	// station discovered by overlapping radius queries.
	seen := make(map[string]struct{})
	candidates := make([]domain.StationCandidate, 0, 32)
	for i, batch := range batches {
		p := points[i]
		for _, rec := range batch {
			c := NewCandidate(rec)
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}

			distKm := geo.DistanceKm(p.legStart, rec.Location)
			soc := p.batteryAtLeg - energy.ConsumptionPercent(distKm, profile)
			mins := energy.ChargeMinutes(c.Classification, soc, profile)

			c.SoCOnArrival = &soc
			c.ChargeMinutes = &mins
			c.DetourKm = s.Detour.DetourKm(p.legStart, rec.Location, p.legEnd)

			candidates = append(candidates, c)
		}
	}

	return candidates, battery, nil
}
