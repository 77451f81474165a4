package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"huggiesd/internal/domain"
)

// currentOffers returns the promotional catalog. Expiry is nil for
// open-ended offers such as subscriptions.
func currentOffers() []map[string]any {
	return []map[string]any{
		{
			"id":         "offer-001",
			"title":      "Save $2 on Huggies Special Delivery",
			"type":       "manufacturer_coupon",
			"expires":    "2026-01-31",
			"source_url": "https://www.huggies.com/en-us/offers",
		},
		{
			"id":         "offer-002",
			"title":      "Subscribe & Save 10% on monthly diaper delivery",
			"type":       "subscribe",
			"expires":    nil,
			"source_url": "https://www.retailer.example/subscribe",
		},
	}
}

// Coupons lists the current offers. It takes no arguments.
func Coupons(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	offers := currentOffers()
	text := fmt.Sprintf("%d current offers available.", len(offers))
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text":    text,
			"backend": map[string]any{"offers": offers},
			"widget": map[string]any{
				"widget_type": "offers_list",
				"offers":      offers,
			},
		},
	}, nil
}
