package vector

import (
	"context"
	"fmt"

	"github.com/planarkit/planarkit/internal/types"
)

// Provider exposes the vec2 library as a tool service
type Provider struct {
	codec      *CodecOps
	arithmetic *ArithmeticOps
	geometry   *GeometryOps
}

// NewProvider creates a modular vector provider
func NewProvider() *Provider {
	ops := &VectorOps{}

	return &Provider{
		codec:      &CodecOps{VectorOps: ops},
		arithmetic: &ArithmeticOps{VectorOps: ops},
		geometry:   &GeometryOps{VectorOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.codec.GetTools()...)
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.geometry.GetTools()...)

	return types.Service{
		ID:          "vector",
		Name:        "Vector Service",
		Description: "2D vector math over pluggable numeric backends (native float, precise decimal)",
		Category:    types.CategoryGeometry,
		Capabilities: []string{
			"arithmetic",
			"rotation",
			"products",
			"angles",
			"distances",
			"codec",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Construction and codec
	case "vector.create":
		return p.codec.Create(ctx, params, appCtx)
	case "vector.parse":
		return p.codec.Parse(ctx, params, appCtx)
	case "vector.render":
		return p.codec.Render(ctx, params, appCtx)

	// Arithmetic
	case "vector.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "vector.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "vector.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "vector.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)
	case "vector.invert":
		return p.arithmetic.Invert(ctx, params, appCtx)
	case "vector.normalize":
		return p.arithmetic.Normalize(ctx, params, appCtx)

	// Geometry
	case "vector.rotate":
		return p.geometry.Rotate(ctx, params, appCtx)
	case "vector.rotate_degree":
		return p.geometry.RotateDegree(ctx, params, appCtx)
	case "vector.dot":
		return p.geometry.Dot(ctx, params, appCtx)
	case "vector.cross":
		return p.geometry.Cross(ctx, params, appCtx)
	case "vector.project":
		return p.geometry.Project(ctx, params, appCtx)
	case "vector.angle":
		return p.geometry.Angle(ctx, params, appCtx)
	case "vector.angle_between":
		return p.geometry.AngleBetween(ctx, params, appCtx)
	case "vector.length":
		return p.geometry.Length(ctx, params, appCtx)
	case "vector.length_sq":
		return p.geometry.LengthSq(ctx, params, appCtx)
	case "vector.distance":
		return p.geometry.Distance(ctx, params, appCtx)
	case "vector.distance_sq":
		return p.geometry.DistanceSq(ctx, params, appCtx)
	case "vector.equals":
		return p.geometry.Equals(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
