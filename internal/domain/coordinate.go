package domain

import "strconv"

// Immutable geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Return the coordinate as "lat,lng" for navigation URLs and cache keys.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
