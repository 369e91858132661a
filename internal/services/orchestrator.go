package services

import (
	"context"
	"errors"
	"ev-route-service/internal/domain"
	"ev-route-service/internal/platform/obs"
	"ev-route-service/internal/ports"
	"fmt"
	"strings"
	"sync"
	"time"
)

// State of one route-computation cycle.
type State string

const (
	StateIdle          State = "Idle"
	StateAwaitingRoute State = "AwaitingRoute"
	StateSimulating    State = "Simulating"
	StateScoring       State = "Scoring"
	StateReady         State = "Ready"
	StateError         State = "Error"
)

// A final battery level below this percentage flags the narrative with
// a charging warning.
const lowBatteryThresholdPct = 10

var (
	// ErrMissingEndpoint reports an empty origin or destination. The
	// request is a no-op: no state changes and no external calls.
	ErrMissingEndpoint = errors.New("origin and destination must be non-empty")

	// ErrNoRoute reports a directions response with zero legs.
	ErrNoRoute = errors.New("directions returned no route legs")

	// ErrSuperseded reports a computation abandoned because a newer
	// request arrived before it finished.
	ErrSuperseded = errors.New("route computation superseded by a newer request")
)

// Immutable input to one route computation.
type RouteComputationRequest struct {
	Origin          string
	Destination     string
	Profile         domain.VehicleProfile
	StartBatteryPct float64
}

// Complete output of one route computation. No field is mutated after
// the result is returned.
type RouteComputationResult struct {
	Origin              string
	Destination         string
	Legs                []domain.RouteLeg
	Stations            []domain.StationCandidate
	Best                *domain.ScoredCandidate
	TotalDistanceKm     float64
	RemainingBatteryPct float64
	LowBattery          bool
	Narrative           string
	NavigationURL       string
}

// Orchestrator sequences directions lookup, energy simulation, and
// waypoint selection into one request/response cycle. It runs a single
// logical computation at a time: a new request supersedes the one in
// flight, whose results are discarded rather than merged.
type Orchestrator struct {
	directions ports.DirectionsProvider
	locator    ports.StationLocator
	detour     DetourStrategy

	// Bound applied to each station lookup.
	queryTimeout time.Duration

	mu         sync.Mutex
	state      State
	result     *RouteComputationResult
	cancel     context.CancelFunc
	generation uint64
}

func NewOrchestrator(
	directions ports.DirectionsProvider,
	locator ports.StationLocator,
	detour DetourStrategy,
	queryTimeout time.Duration,
) *Orchestrator {
	if detour == nil {
		detour = FixedDetour{Km: 5}
	}
	return &Orchestrator{
		directions:   directions,
		locator:      locator,
		detour:       detour,
		queryTimeout: queryTimeout,
		state:        StateIdle,
	}
}

// State returns the state of the most recent computation.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// LastResult returns the most recently committed result, if any.
// A failed computation never overwrites it.
func (o *Orchestrator) LastResult() *RouteComputationResult {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.result
}

// Compute runs one full route-computation cycle. A successful call
// always yields a narrative and a (possibly empty) station list; a
// failed call yields an explicit error, never a silently empty success.
func (o *Orchestrator) Compute(ctx context.Context, req RouteComputationRequest) (_ *RouteComputationResult, err error) {
	defer obs.Time(ctx, "orchestrator.Compute")(&err)

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, ErrMissingEndpoint
	}
	if err := req.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("compute route: %w", err)
	}

	gen, cctx, cancel := o.begin(ctx)
	defer cancel()

	legs, err := o.directions.DrivingRoute(cctx, req.Origin, req.Destination)
	if err != nil {
		o.fail(gen)
		return nil, fmt.Errorf("compute route: directions %q -> %q: %w", req.Origin, req.Destination, err)
	}
	if len(legs) == 0 {
		o.fail(gen)
		return nil, fmt.Errorf("compute route: %q -> %q: %w", req.Origin, req.Destination, ErrNoRoute)
	}

	if !o.transition(gen, StateSimulating) {
		return nil, ErrSuperseded
	}

	sim := &RouteEnergySimulator{
		Locator:      o.locator,
		Detour:       o.detour,
		QueryTimeout: o.queryTimeout,
	}
	stations, remaining, err := sim.Simulate(cctx, legs, req.Profile, req.StartBatteryPct)
	if err != nil {
		// Only cancellation reaches here; lookup failures degrade inside
		// the simulator.
		return nil, ErrSuperseded
	}

	if !o.transition(gen, StateScoring) {
		return nil, ErrSuperseded
	}

	annotated, best := SelectWaypoint(stations)

	totalKm := domain.TotalDistanceMeters(legs) / 1000
	result := &RouteComputationResult{
		Origin:              req.Origin,
		Destination:         req.Destination,
		Legs:                legs,
		Stations:            annotated,
		Best:                best,
		TotalDistanceKm:     totalKm,
		RemainingBatteryPct: remaining,
		LowBattery:          remaining < lowBatteryThresholdPct,
		Narrative:           buildNarrative(totalKm, remaining),
		NavigationURL:       BuildNavigationURL(req.Origin, req.Destination, annotated),
	}

	if !o.commit(gen, result) {
		return nil, ErrSuperseded
	}
	return result, nil
}

// begin restarts the machine for a new request, cancelling any
// computation still in flight so its results are discarded.
func (o *Orchestrator) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	cctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.generation++
	o.state = StateAwaitingRoute
	return o.generation, cctx, cancel
}

// transition advances the machine if the computation is still current.
func (o *Orchestrator) transition(gen uint64, next State) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		return false
	}
	o.state = next
	return true
}

// fail moves a still-current computation to the Error state. The
// previous committed result is left untouched.
func (o *Orchestrator) fail(gen uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		return
	}
	o.state = StateError
}

// commit publishes the result if the computation is still current.
func (o *Orchestrator) commit(gen uint64, result *RouteComputationResult) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		return false
	}
	o.state = StateReady
	o.result = result
	return true
}

func buildNarrative(totalKm, remainingPct float64) string {
	if remainingPct < lowBatteryThresholdPct {
		return fmt.Sprintf("distance %.1f km, remaining battery %.1f%% (charging required)", totalKm, remainingPct)
	}
	return fmt.Sprintf("distance %.1f km, remaining battery %.1f%%", totalKm, remainingPct)
}
