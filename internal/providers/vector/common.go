package vector

import (
	"fmt"

	"github.com/planarkit/planarkit/internal/types"
	"github.com/planarkit/planarkit/vec2"
)

// VectorOps provides shared helpers for the vector tool modules
type VectorOps struct{}

var errMissingB = fmt.Errorf("b parameter required (vector or scalar)")

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// GetOperand extracts a scalar operand: a number in any common width or
// numeral text. The active system normalizes it later.
func GetOperand(params map[string]interface{}, key string) (vec2.Operand, bool) {
	switch v := params[key].(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64, string:
		return v, true
	}
	return nil, false
}

// SystemOf resolves the operator system for a call. A "system" param is
// looked up by name with the registry's permissive fallback; without one
// the process default applies.
func SystemOf(params map[string]interface{}) vec2.System {
	if name, ok := GetString(params, "system"); ok {
		return vec2.SystemByName(name)
	}
	return vec2.Default()
}

// GetVector builds a vector from params under key. Accepted forms: a
// two-element array, or an object with "x" and "y" fields. Missing
// components default to zero.
func GetVector(params map[string]interface{}, key string, sys vec2.System) (vec2.Vector, error) {
	val, ok := params[key]
	if !ok {
		return vec2.Vector{}, fmt.Errorf("%s parameter required", key)
	}

	switch v := val.(type) {
	case []interface{}:
		arr := make([]vec2.Operand, len(v))
		for i, item := range v {
			arr[i] = item
		}
		return vec2.FromArrayIn(sys, arr)
	case map[string]interface{}:
		return vec2.FromObjectIn(sys, vec2.Object{X: v["x"], Y: v["y"]})
	default:
		return vec2.Vector{}, fmt.Errorf("%s must be a [x, y] array or {x, y} object", key)
	}
}

// VectorData renders a vector into a result payload
func VectorData(v vec2.Vector) map[string]interface{} {
	return map[string]interface{}{
		"x":      v.X(),
		"y":      v.Y(),
		"system": v.System().Name(),
	}
}

// ScalarData renders a backend scalar into a result payload
func ScalarData(sys vec2.System, v vec2.Operand) map[string]interface{} {
	return map[string]interface{}{
		"result": sys.Format(v),
		"system": sys.Name(),
	}
}
