package dto

type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Either a catalog vehicle name or an inline profile.
	Vehicle    string  `json:"vehicle"`
	BatteryKWh float64 `json:"battery_kwh"`
	WhPerKm    float64 `json:"wh_per_km"`

	// Defaults to 80 when omitted.
	StartBatteryPct *float64 `json:"start_battery_pct"`
}

type LegResponse struct {
	StartLat       float64 `json:"start_lat"`
	StartLng       float64 `json:"start_lng"`
	EndLat         float64 `json:"end_lat"`
	EndLng         float64 `json:"end_lng"`
	DistanceMeters float64 `json:"distance_meters"`
}

type StationResponse struct {
	ID             string   `json:"id"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Title          string   `json:"title"`
	Classification string   `json:"classification"`
	Cost           string   `json:"cost,omitempty"`
	Speed          string   `json:"speed,omitempty"`
	Address        string   `json:"address,omitempty"`
	Selected       bool     `json:"selected"`
	SoCOnArrival   *float64 `json:"soc_on_arrival,omitempty"`
	ChargeMinutes  *float64 `json:"charge_minutes,omitempty"`
	DetourKm       float64  `json:"detour_km"`
}

type RouteResponse struct {
	Origin              string            `json:"origin"`
	Destination         string            `json:"destination"`
	Legs                []LegResponse     `json:"legs"`
	Stations            []StationResponse `json:"stations"`
	SelectedStationID   string            `json:"selected_station_id,omitempty"`
	SelectedScore       *float64          `json:"selected_score,omitempty"`
	TotalDistanceKm     float64           `json:"total_distance_km"`
	RemainingBatteryPct float64           `json:"remaining_battery_pct"`
	LowBattery          bool              `json:"low_battery"`
	Narrative           string            `json:"narrative"`
	NavigationURL       string            `json:"navigation_url"`
}
