package response

import (
	"cfr_notifier/internal/config"
	"cfr_notifier/internal/domain/entities"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AddressCandidateResponse struct {
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

func FromAddressCandidates(in []entities.AddressCandidate) []AddressCandidateResponse {
	out := make([]AddressCandidateResponse, 0, len(in))
	for _, c := range in {
		out = append(out, AddressCandidateResponse{
			Label:       c.Label,
			HouseNumber: c.HouseNumber,
			Street:      c.Street,
			City:        c.City,
			Province:    c.Province,
			PostalCode:  c.PostalCode,
			Country:     c.Country,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
		})
	}
	return out
}

// FirebaseConfigResponse mirrors the Firebase web SDK config object.
type FirebaseConfigResponse struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
	MeasurementID     string `json:"measurementId"`
}

func FromFirebaseConfig(c config.FirebaseConfig) FirebaseConfigResponse {
	return FirebaseConfigResponse{
		APIKey:            c.APIKey,
		AuthDomain:        c.AuthDomain,
		ProjectID:         c.ProjectID,
		StorageBucket:     c.StorageBucket,
		MessagingSenderID: c.MessagingSenderID,
		AppID:             c.AppID,
		MeasurementID:     c.MeasurementID,
	}
}
