package domain

// Unknown is the placeholder for address parts the provider did not return.
const Unknown = "Unknown"

// Location is a reverse-geocoded place.
type Location struct {
	Barangay  string  `json:"barangay"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the location coordinates.
func (l Location) Point() Point {
	return Point{Lat: l.Latitude, Lon: l.Longitude}
}
