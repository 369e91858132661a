package energy

import "ev-route-service/internal/domain"

// Charging power assumed per station class, in kW. Charging-curve
// nonlinearity is not modelled.
const (
	highPowerKW = 150
	standardKW  = 50
)

// ConsumptionPercent converts a travelled distance into the state-of-charge
// percentage consumed by the given vehicle. Linear in distance and never
// negative for a non-negative distance.
func ConsumptionPercent(distanceKm float64, profile domain.VehicleProfile) float64 {
	return distanceKm * profile.ConsumptionWhKm / (profile.BatteryKWh * 1000) * 100
}

// ChargeMinutes estimates the time to charge the vehicle from the given
// arrival state of charge to full at a station of the given class.
// Returns 0 when the battery would already be full on arrival.
func ChargeMinutes(class domain.Classification, socOnArrival float64, profile domain.VehicleProfile) float64 {
	if socOnArrival >= 100 {
		return 0
	}

	powerKW := float64(standardKW)
	if class == domain.HighPower {
		powerKW = highPowerKW
	}

	kWhNeeded := profile.BatteryKWh * (100 - socOnArrival) / 100
	return kWhNeeded / powerKW * 60
}
