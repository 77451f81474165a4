package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"huggiesd/internal/domain"
)

// PoundsPerKilogram converts a kilogram weight to pounds.
const PoundsPerKilogram = 2.2046226218

const sizingAdvice = "If you see red marks around the legs, frequent leaks, or difficulty " +
	"closing tabs, consider sizing up."

// sizeBand is one weight band. Bands overlap at their edges and are checked
// strictly in declaration order: the first match wins even where a later
// band also covers the weight. The ranges match the published chart; do not
// reorder or widen them.
type sizeBand struct {
	min, max float64
	size     string
	desc     string
}

var sizeBands = []sizeBand{
	{min: 0, max: 10, size: "N (Newborn)", desc: "up to 10 lbs"},
	{min: 8, max: 14, size: "1", desc: "8–14 lbs"},
	{min: 12, max: 18, size: "2", desc: "12–18 lbs"},
	{min: 16, max: 28, size: "3", desc: "16–28 lbs"},
	{min: 22, max: 37, size: "4", desc: "22–37 lbs"},
	{min: 27, max: 40, size: "5", desc: "27+ lbs (varies by product)"},
}

type sizingArgs struct {
	WeightKG *float64 `json:"weight_kg"`
	WeightLB *float64 `json:"weight_lb"`
}

// SizeCalc recommends a diaper size from a weight in kilograms or pounds.
func SizeCalc(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	var in sizingArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.ToolResult{}, err
	}

	if in.WeightKG == nil && in.WeightLB == nil {
		return domain.ErrorResult("Please provide weight_kg or weight_lb."), nil
	}

	weightLB := 0.0
	if in.WeightLB != nil {
		weightLB = *in.WeightLB
	} else {
		weightLB = *in.WeightKG * PoundsPerKilogram
	}

	size, desc := matchBand(weightLB)
	rounded := round2(weightLB)
	text := fmt.Sprintf("For approx %s lbs, recommended size: %s (%s). %s", formatWeight(rounded), size, desc, sizingAdvice)

	backend := map[string]any{
		"weight_lb":                rounded,
		"recommended_size":         size,
		"weight_range_description": desc,
		"advice":                   sizingAdvice,
	}
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text":    text,
			"backend": backend,
			"widget": map[string]any{
				"widget_type": "info_card",
				"data":        backend,
			},
		},
	}, nil
}

// formatWeight renders a weight the way a decimal quantity reads: whole
// numbers keep one trailing decimal ("9.0"), fractional values print as-is.
func formatWeight(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func matchBand(weightLB float64) (string, string) {
	if weightLB <= sizeBands[0].max {
		return sizeBands[0].size, sizeBands[0].desc
	}
	for _, band := range sizeBands[1:] {
		if weightLB >= band.min && weightLB <= band.max {
			return band.size, band.desc
		}
	}
	return "6", "35+ lbs"
}
