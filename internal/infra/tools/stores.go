package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"huggiesd/internal/domain"
)

// Sample store data anchored near a fixed coordinate. Marker positions get a
// small random offset per call so the map does not render five stacked pins.
const (
	baseLatitude  = 28.65195
	baseLongitude = 77.23149

	retailerPhone   = "1800-555-0123"
	fallbackZipCode = "00000"

	defaultRetailerLimit = 5
)

type retailer struct {
	Name          string
	Address       string
	DistanceMiles float64
}

var exampleRetailers = []retailer{
	{Name: "Target", Address: "123 Main St", DistanceMiles: 1.2},
	{Name: "Walmart", Address: "456 Market Ave", DistanceMiles: 2.1},
	{Name: "Amazon Pickup Point", Address: "789 Commerce Rd", DistanceMiles: 3.8},
	{Name: "Local Pharmacy", Address: "12 Pharmacy Ln", DistanceMiles: 0.6},
	{Name: "Costco", Address: "55 Warehouse Dr", DistanceMiles: 4.5},
}

type storeLocatorArgs struct {
	ZipCode  string `json:"zip_code"`
	Location string `json:"location"`
	Limit    *int   `json:"limit"`
}

// StoreLocator lists nearby retailers as map markers. The zip code, when
// given, is echoed onto every marker; otherwise markers carry a placeholder.
func StoreLocator(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	var in storeLocatorArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.ToolResult{}, err
	}

	limit := defaultRetailerLimit
	if in.Limit != nil {
		limit = *in.Limit
	}
	if limit > len(exampleRetailers) {
		limit = len(exampleRetailers)
	}
	if limit < 0 {
		limit = 0
	}

	zip := in.ZipCode
	if zip == "" {
		zip = fallbackZipCode
	}

	markers := make([]map[string]any, 0, limit)
	for i, r := range exampleRetailers[:limit] {
		spread := 0.02 * float64(i+1)
		lat := baseLatitude + (rand.Float64()-0.5)*spread
		lon := baseLongitude + (rand.Float64()-0.5)*spread
		markers = append(markers, map[string]any{
			"name":           r.Name,
			"address":        r.Address,
			"zip":            zip,
			"distance_miles": r.DistanceMiles,
			"lat":            round6(lat),
			"lon":            round6(lon),
			"phone":          retailerPhone,
		})
	}

	place := in.ZipCode
	if place == "" {
		place = in.Location
	}
	if place == "" {
		place = "your area"
	}

	text := fmt.Sprintf("Found %d retailers near %s.", len(markers), place)
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text":    text,
			"backend": map[string]any{"results": markers},
			"widget": map[string]any{
				"widget_type": "map",
				"markers":     markers,
			},
		},
	}, nil
}
