package recipes

import (
	"fmt"
	"strings"
)

// ValidationResult is returned by both validators; they never panic.
type ValidationResult struct {
	Valid   bool
	Message string
}

func invalid(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Message: fmt.Sprintf(format, args...)}
}

var requiredRecipeFields = []string{
	"name",
	"weight",
	"dimensions",
	"yield_percentage",
	"waste_factor",
	"unit_of_measure",
	"inventory_location",
	"parts",
	"labor",
}

// ValidateRecipe checks a decoded create payload: all required fields must be
// present, then dimensions, parts and labor must be well-shaped. Runs on the
// raw decoded JSON so nothing typed is trusted before it passes.
func ValidateRecipe(payload map[string]any) ValidationResult {
	if payload == nil {
		return invalid("Request body is required")
	}

	var missing []string
	for _, field := range requiredRecipeFields {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if res := validateDimensions(payload["dimensions"]); !res.Valid {
		return res
	}
	if res := validateParts(payload["parts"]); !res.Valid {
		return res
	}
	if res := validateLabor(payload["labor"]); !res.Valid {
		return res
	}

	return ValidationResult{Valid: true}
}

// ValidateRecipeUpdate checks a partial payload: every field is optional, but
// a field that is present must be well-shaped, and weight, yield_percentage
// and waste_factor must additionally be in range.
func ValidateRecipeUpdate(payload map[string]any) ValidationResult {
	if payload == nil {
		return invalid("Request body is required")
	}

	if v, ok := payload["name"]; ok && !truthy(v) {
		return invalid("name must not be empty")
	}
	if v, ok := payload["weight"]; ok {
		n, isNum := numeric(v)
		if !isNum || n < 0 {
			return invalid("weight must be a non-negative number")
		}
	}
	if v, ok := payload["dimensions"]; ok {
		if res := validateDimensions(v); !res.Valid {
			return res
		}
	}
	if v, ok := payload["yield_percentage"]; ok {
		n, isNum := numeric(v)
		if !isNum || n < 0 || n > 100 {
			return invalid("yield_percentage must be a number between 0 and 100")
		}
	}
	if v, ok := payload["waste_factor"]; ok {
		n, isNum := numeric(v)
		if !isNum || n < 0 || n >= 1 {
			return invalid("waste_factor must be a number between 0 and 1 (exclusive)")
		}
	}
	if v, ok := payload["parts"]; ok {
		if res := validateParts(v); !res.Valid {
			return res
		}
	}
	if v, ok := payload["labor"]; ok {
		if res := validateLabor(v); !res.Valid {
			return res
		}
	}

	return ValidationResult{Valid: true}
}

// Dimension axes are checked for truthiness, so a zero-length axis is
// rejected as malformed. Kept for compatibility with the existing clients.
func validateDimensions(v any) ValidationResult {
	dims, ok := v.(map[string]any)
	if !ok {
		return invalid("dimensions must be an object with length, width, height and unit")
	}
	if !truthy(dims["length"]) || !truthy(dims["width"]) || !truthy(dims["height"]) || !truthy(dims["unit"]) {
		return invalid("dimensions must include length, width, height and unit")
	}
	return ValidationResult{Valid: true}
}

// Part name must be truthy; quantity and cost_per_unit only have to be
// present, so an explicit 0 is a valid quantity or cost.
func validateParts(v any) ValidationResult {
	parts, ok := v.([]any)
	if !ok {
		return invalid("parts must be an array")
	}
	for i, raw := range parts {
		part, ok := raw.(map[string]any)
		if !ok {
			return invalid("parts[%d] must be an object", i)
		}
		if !truthy(part["name"]) {
			return invalid("parts[%d] must include a name", i)
		}
		if _, ok := part["quantity"]; !ok {
			return invalid("parts[%d] must include quantity", i)
		}
		if _, ok := part["cost_per_unit"]; !ok {
			return invalid("parts[%d] must include cost_per_unit", i)
		}
	}
	return ValidationResult{Valid: true}
}

func validateLabor(v any) ValidationResult {
	labor, ok := v.([]any)
	if !ok {
		return invalid("labor must be an array")
	}
	for i, raw := range labor {
		entry, ok := raw.(map[string]any)
		if !ok {
			return invalid("labor[%d] must be an object", i)
		}
		if !truthy(entry["type"]) {
			return invalid("labor[%d] must include a type", i)
		}
		if _, ok := entry["cost_per_hour"]; !ok {
			return invalid("labor[%d] must include cost_per_hour", i)
		}
		if _, ok := entry["hours_needed"]; !ok {
			return invalid("labor[%d] must include hours_needed", i)
		}
	}
	return ValidationResult{Valid: true}
}

// truthy mirrors the loose presence rules of the original clients: nil, false,
// 0 and "" are all treated as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
