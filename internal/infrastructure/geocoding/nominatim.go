package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	appconfig "cfr_notifier/internal/config"
	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/infrastructure/httpclient"
	"cfr_notifier/internal/usecase/interfaces"
)

type nominatimPlace struct {
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
}

// NominatimGeocoder searches OpenStreetMap Nominatim, restricted to one
// country.
type NominatimGeocoder struct {
	client  *httpclient.Client
	baseURL string
	country string
	limit   int
}

var _ interfaces.IGeocoder = (*NominatimGeocoder)(nil)

func NewNominatimGeocoder(client *httpclient.Client, cfg appconfig.GeocodingConfig) *NominatimGeocoder {
	return &NominatimGeocoder{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		country: strings.ToLower(cfg.Country),
		limit:   cfg.Limit,
	}
}

func (g *NominatimGeocoder) Search(ctx context.Context, query string) ([]entities.AddressCandidate, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("countrycodes", g.country)
	params.Set("limit", strconv.Itoa(g.limit))
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding: unexpected status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("geocoding: decode response: %w", err)
	}

	out := make([]entities.AddressCandidate, 0, len(places))
	for _, p := range places {
		out = append(out, toCandidate(p))
	}
	return out, nil
}

func toCandidate(p nominatimPlace) entities.AddressCandidate {
	lat, _ := strconv.ParseFloat(p.Lat, 64)
	lon, _ := strconv.ParseFloat(p.Lon, 64)

	city := p.Address.City
	if city == "" {
		city = p.Address.Town
	}
	if city == "" {
		city = p.Address.Village
	}

	return entities.AddressCandidate{
		Label:       p.DisplayName,
		HouseNumber: p.Address.HouseNumber,
		Street:      p.Address.Road,
		City:        city,
		Province:    p.Address.State,
		PostalCode:  p.Address.Postcode,
		Country:     p.Address.Country,
		Latitude:    lat,
		Longitude:   lon,
	}
}
