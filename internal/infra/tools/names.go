package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"huggiesd/internal/domain"
)

const defaultNameCount = 10

var baseNames = []string{
	"Aria",
	"Elowen",
	"Kaia",
	"Soren",
	"Zavian",
	"Lumi",
	"Aerin",
	"Mylo",
	"Renley",
	"Zephyr",
	"Mira",
	"Caspian",
	"Nova",
	"Orin",
	"Junia",
}

type suggestNamesArgs struct {
	Prefix string `json:"prefix"`
	Count  *int   `json:"count"`
}

// SuggestNames filters the curated name list by an optional case-insensitive
// prefix and truncates to count. An empty filter result is not an error.
func SuggestNames(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
	var in suggestNamesArgs
	if err := decodeArgs(args, &in); err != nil {
		return domain.ToolResult{}, err
	}

	count := defaultNameCount
	if in.Count != nil {
		count = *in.Count
	}
	if count < 0 {
		count = 0
	}

	prefix := strings.ToLower(in.Prefix)
	filtered := make([]string, 0, len(baseNames))
	for _, name := range baseNames {
		if len(filtered) == count {
			break
		}
		if prefix == "" || strings.HasPrefix(strings.ToLower(name), prefix) {
			filtered = append(filtered, name)
		}
	}

	text := fmt.Sprintf("Here are %d name suggestions.", len(filtered))
	return domain.ToolResult{
		Text: text,
		Structured: map[string]any{
			"text": text,
			"backend": map[string]any{
				"names":  filtered,
				"prefix": in.Prefix,
				"count":  count,
			},
			"widget": map[string]any{
				"widget_type": "names_list",
				"names":       filtered,
			},
		},
	}, nil
}
