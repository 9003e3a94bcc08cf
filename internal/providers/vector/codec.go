package vector

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/planarkit/planarkit/internal/types"
	"github.com/planarkit/planarkit/internal/utils"
	"github.com/planarkit/planarkit/vec2"
)

// CodecOps handles vector construction and JSON interchange
type CodecOps struct {
	*VectorOps
}

// GetTools returns construction and codec tool definitions
func (c *CodecOps) GetTools() []types.Tool {
	sysParam := types.Parameter{Name: "system", Type: "string", Description: "Operator system name (native, precise)", Required: false}

	return []types.Tool{
		{
			ID:          "vector.create",
			Name:        "Create",
			Description: "Create a vector from x and y operands; missing components default to zero",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number|string", Description: "X component", Required: false},
				{Name: "y", Type: "number|string", Description: "Y component", Required: false},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.parse",
			Name:        "Parse",
			Description: "Parse a vector from a JSON document with x and y fields",
			Parameters: []types.Parameter{
				{Name: "json", Type: "string", Description: "JSON object with x and y", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.render",
			Name:        "Render",
			Description: "Render a vector as a JSON document and display string",
			Parameters: []types.Parameter{
				{Name: "a", Type: "vector", Description: "Vector [x, y]", Required: true},
				sysParam,
			},
			Returns: "string",
		},
	}
}

// Create builds a vector from x/y params
func (c *CodecOps) Create(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	x, _ := GetOperand(params, "x")
	y, _ := GetOperand(params, "y")
	v, err := vec2.NewIn(sys, x, y)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(v))
}

// Parse builds a vector from a JSON object
func (c *CodecOps) Parse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	doc, ok := GetString(params, "json")
	if !ok {
		return Failure("json parameter required")
	}

	if err := utils.ValidateDocument(doc); err != nil {
		return Failure(err.Error())
	}

	var obj vec2.Object
	if err := sonic.UnmarshalString(doc, &obj); err != nil {
		return Failure("invalid JSON: " + err.Error())
	}

	v, err := vec2.FromObjectIn(SystemOf(params), obj)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(v))
}

// Render serializes a vector to JSON alongside its display string
func (c *CodecOps) Render(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}

	doc, err := sonic.MarshalString(v.ToObject())
	if err != nil {
		return Failure("failed to render vector: " + err.Error())
	}
	return Success(map[string]interface{}{
		"json":   doc,
		"string": v.String(),
		"system": v.System().Name(),
	})
}
