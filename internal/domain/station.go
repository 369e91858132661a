package domain

// Classification of a charging station inferred from its textual
// metadata, not from a measured power rating.
type Classification string

const (
	HighPower Classification = "HighPower"
	Standard  Classification = "Standard"
)

// Represents a charging station discovered near the route during one
// computation. Candidates are built fully annotated by the simulator and
// never mutated afterwards; selection produces a new copy with the
// Selected flag set. The lifetime of a candidate is a single route
// computation.
type StationCandidate struct {
	ID             string
	Location       Coordinate
	Title          string
	Classification Classification
	Cost           string
	Speed          string
	Address        string
	Selected       bool

	// Annotations set by the route energy simulator.
	SoCOnArrival  *float64
	ChargeMinutes *float64
	DetourKm      float64
}

// Pairs a candidate with its suitability score during selection.
type ScoredCandidate struct {
	Candidate StationCandidate
	Score     float64
}
