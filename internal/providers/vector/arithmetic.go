package vector

import (
	"context"

	"github.com/planarkit/planarkit/internal/types"
	"github.com/planarkit/planarkit/vec2"
)

// ArithmeticOps handles componentwise vector arithmetic
type ArithmeticOps struct {
	*VectorOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	vecParam := func(name, desc string, required bool) types.Parameter {
		return types.Parameter{Name: name, Type: "vector", Description: desc, Required: required}
	}
	sysParam := types.Parameter{Name: "system", Type: "string", Description: "Operator system name (native, precise)", Required: false}

	return []types.Tool{
		{
			ID:          "vector.add",
			Name:        "Add",
			Description: "Add a vector or scalar to a vector",
			Parameters: []types.Parameter{
				vecParam("a", "Base vector [x, y]", true),
				{Name: "b", Type: "vector|number", Description: "Vector or scalar to add", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.subtract",
			Name:        "Subtract",
			Description: "Subtract a vector or scalar from a vector",
			Parameters: []types.Parameter{
				vecParam("a", "Base vector [x, y]", true),
				{Name: "b", Type: "vector|number", Description: "Vector or scalar to subtract", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.multiply",
			Name:        "Multiply",
			Description: "Multiply a vector by a vector (componentwise) or scalar",
			Parameters: []types.Parameter{
				vecParam("a", "Base vector [x, y]", true),
				{Name: "b", Type: "vector|number", Description: "Vector or scalar factor", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.divide",
			Name:        "Divide",
			Description: "Divide a vector by a vector (componentwise) or scalar",
			Parameters: []types.Parameter{
				vecParam("a", "Base vector [x, y]", true),
				{Name: "b", Type: "vector|number", Description: "Vector or scalar divisor", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.invert",
			Name:        "Invert",
			Description: "Negate both components of a vector",
			Parameters: []types.Parameter{
				vecParam("a", "Vector [x, y]", true),
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.normalize",
			Name:        "Normalize",
			Description: "Scale a vector to unit length",
			Parameters: []types.Parameter{
				vecParam("a", "Vector [x, y]", true),
				sysParam,
			},
			Returns: "vector",
		},
	}
}

// binaryArg resolves the "b" param for the binary tools: a vector form if
// present, otherwise a scalar operand.
func (a *ArithmeticOps) binaryArg(params map[string]interface{}, sys vec2.System) (vec2.Operand, error) {
	switch params["b"].(type) {
	case []interface{}, map[string]interface{}:
		w, err := GetVector(params, "b", sys)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		if scalar, ok := GetOperand(params, "b"); ok {
			return scalar, nil
		}
		return nil, errMissingB
	}
}

// Add adds a vector or scalar to a vector
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.binary(params, vec2.Vector.Add)
}

// Subtract subtracts a vector or scalar from a vector
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.binary(params, vec2.Vector.Subtract)
}

// Multiply multiplies a vector by a vector or scalar
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.binary(params, vec2.Vector.Multiply)
}

// Divide divides a vector by a vector or scalar
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return a.binary(params, vec2.Vector.Divide)
}

// Invert negates both components
func (a *ArithmeticOps) Invert(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	out, err := v.Invert()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(out))
}

// Normalize scales a vector to unit length
func (a *ArithmeticOps) Normalize(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	out, err := v.Normalize()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(out))
}

func (a *ArithmeticOps) binary(params map[string]interface{}, op func(vec2.Vector, vec2.Operand) (vec2.Vector, error)) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	arg, err := a.binaryArg(params, sys)
	if err != nil {
		return Failure(err.Error())
	}
	out, err := op(v, arg)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(out))
}
