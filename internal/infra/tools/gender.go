package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"huggiesd/internal/domain"
)

type predictGenderArgs struct {
	DueDate        *string `json:"due_date"`
	ConceptionDate *string `json:"conception_date"`
}

// PredictGender makes a tongue-in-cheek prediction from the due date's day
// of month. Anything unparsable resolves to "unknown" rather than an error.
func PredictGender(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	var in predictGenderArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.ToolResult{}, err
	}

	prediction := "unknown"
	if in.DueDate != nil && *in.DueDate != "" {
		parts := strings.Split(*in.DueDate, "-")
		if day, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if day%2 == 1 {
				prediction = "boy"
			} else {
				prediction = "girl"
			}
		}
	}

	text := fmt.Sprintf("Playful prediction: %s (not medical).", prediction)
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text": text,
			"backend": map[string]any{
				"prediction":      prediction,
				"due_date":        in.DueDate,
				"conception_date": in.ConceptionDate,
			},
			"widget": map[string]any{
				"widget_type": "gender_predictor",
				"prediction":  prediction,
			},
		},
	}, nil
}
