package domain

import "fmt"

// Represents the energy characteristics of one EV model.
// A VehicleProfile is selected once per route computation and never
// mutated afterwards.
type VehicleProfile struct {
	Name            string
	BatteryKWh      float64
	ConsumptionWhKm float64
}

// Validate rejects profiles that would make the energy math meaningless.
func (p VehicleProfile) Validate() error {
	if p.BatteryKWh <= 0 {
		return fmt.Errorf("vehicle profile %q: battery capacity must be positive, got %v", p.Name, p.BatteryKWh)
	}
	if p.ConsumptionWhKm <= 0 {
		return fmt.Errorf("vehicle profile %q: consumption must be positive, got %v", p.Name, p.ConsumptionWhKm)
	}
	return nil
}
