package entities

// AddressCandidate is one geocoder match offered to the booking form.
type AddressCandidate struct {
	Label       string  `json:"label"`
	HouseNumber string  `json:"houseNumber,omitempty"`
	Street      string  `json:"street,omitempty"`
	City        string  `json:"city,omitempty"`
	Province    string  `json:"province,omitempty"`
	PostalCode  string  `json:"postalCode,omitempty"`
	Country     string  `json:"country,omitempty"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
}
