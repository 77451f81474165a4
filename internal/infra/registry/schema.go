package registry

import (
	"fmt"

	"huggiesd/internal/domain"
)

// buildInputSchema materializes the object schema advertised for a tool from
// its declared parameters. Runs once at registration, never per call.
func buildInputSchema(params []domain.ParamSpec) map[string]any {
	properties := make(map[string]any, len(params))
	required := make([]string, 0)

	for _, param := range params {
		description := param.Description
		if description == "" {
			description = param.Name
		}
		properties[param.Name] = map[string]any{
			"type":        string(param.Type),
			"description": description,
		}
		if param.Required {
			required = append(required, param.Name)
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

func validateParams(params []domain.ParamSpec) error {
	seen := make(map[string]struct{}, len(params))
	for i, param := range params {
		if param.Name == "" {
			return fmt.Errorf("param %d: name is required", i)
		}
		if _, dup := seen[param.Name]; dup {
			return fmt.Errorf("param %q: duplicate name", param.Name)
		}
		seen[param.Name] = struct{}{}
		switch param.Type {
		case domain.ParamString, domain.ParamNumber, domain.ParamBoolean:
		default:
			return fmt.Errorf("param %q: unknown type %q", param.Name, param.Type)
		}
	}
	return nil
}
