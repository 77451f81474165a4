package tools

import (
	"encoding/json"
	"fmt"
	"math"
)

// decodeArgs unmarshals raw tool arguments into out. A nil or empty payload
// leaves out at its zero value so handlers can apply their defaults.
func decodeArgs(args json.RawMessage, out any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, out); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
