package dto

type VehicleResponse struct {
	Name       string  `json:"name"`
	BatteryKWh float64 `json:"battery_kwh"`
	WhPerKm    float64 `json:"wh_per_km"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

type PushRequest struct {
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Title string   `json:"title"`
}
