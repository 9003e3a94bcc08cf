package vector

import (
	"context"

	"github.com/planarkit/planarkit/internal/types"
	"github.com/planarkit/planarkit/vec2"
)

// GeometryOps handles rotation, products, angles and distances
type GeometryOps struct {
	*VectorOps
}

// GetTools returns geometry tool definitions
func (g *GeometryOps) GetTools() []types.Tool {
	vecA := types.Parameter{Name: "a", Type: "vector", Description: "Vector [x, y]", Required: true}
	vecB := types.Parameter{Name: "b", Type: "vector", Description: "Second vector [x, y]", Required: true}
	sysParam := types.Parameter{Name: "system", Type: "string", Description: "Operator system name (native, precise)", Required: false}

	return []types.Tool{
		{
			ID:          "vector.rotate",
			Name:        "Rotate",
			Description: "Rotate a vector counter-clockwise by an angle in radians",
			Parameters: []types.Parameter{
				vecA,
				{Name: "angle", Type: "number", Description: "Angle in radians", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.rotate_degree",
			Name:        "Rotate by Degrees",
			Description: "Rotate a vector counter-clockwise by an angle in degrees",
			Parameters: []types.Parameter{
				vecA,
				{Name: "angle", Type: "number", Description: "Angle in degrees", Required: true},
				sysParam,
			},
			Returns: "vector",
		},
		{
			ID:          "vector.dot",
			Name:        "Dot Product",
			Description: "Dot product of two vectors",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "string",
		},
		{
			ID:          "vector.cross",
			Name:        "Cross Product",
			Description: "2D cross product; negative means b lies clockwise from a",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "string",
		},
		{
			ID:          "vector.project",
			Name:        "Project",
			Description: "Project vector a onto vector b",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "vector",
		},
		{
			ID:          "vector.angle",
			Name:        "Angle",
			Description: "Angle of a vector against the horizontal axis, in radians",
			Parameters:  []types.Parameter{vecA, sysParam},
			Returns:     "number",
		},
		{
			ID:          "vector.angle_between",
			Name:        "Angle Between",
			Description: "Angle between two vectors, in radians",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "number",
		},
		{
			ID:          "vector.length",
			Name:        "Length",
			Description: "Length of a vector",
			Parameters:  []types.Parameter{vecA, sysParam},
			Returns:     "string",
		},
		{
			ID:          "vector.length_sq",
			Name:        "Squared Length",
			Description: "Squared length of a vector (no square root)",
			Parameters:  []types.Parameter{vecA, sysParam},
			Returns:     "string",
		},
		{
			ID:          "vector.distance",
			Name:        "Distance",
			Description: "Distance between two vectors",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "string",
		},
		{
			ID:          "vector.distance_sq",
			Name:        "Squared Distance",
			Description: "Squared distance between two vectors",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "string",
		},
		{
			ID:          "vector.equals",
			Name:        "Equals",
			Description: "Per-axis equality of two vectors under the active system",
			Parameters:  []types.Parameter{vecA, vecB, sysParam},
			Returns:     "boolean",
		},
	}
}

// Rotate rotates a vector by radians
func (g *GeometryOps) Rotate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	angle, ok := GetNumber(params, "angle")
	if !ok {
		return Failure("angle parameter required")
	}
	out, err := v.Rotate(angle)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(out))
}

// RotateDegree rotates a vector by degrees
func (g *GeometryOps) RotateDegree(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	angle, ok := GetOperand(params, "angle")
	if !ok {
		return Failure("angle parameter required")
	}
	out, err := v.RotateDegree(angle)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(out))
}

// Dot computes the dot product
func (g *GeometryOps) Dot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	d, err := v.Dot(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(ScalarData(sys, d))
}

// Cross computes the 2D cross product
func (g *GeometryOps) Cross(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	c, err := v.Cross(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(ScalarData(sys, c))
}

// Project projects a onto b
func (g *GeometryOps) Project(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	out, err := v.ProjectOnto(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(VectorData(out))
}

// Angle returns atan2(y, x) in radians and degrees
func (g *GeometryOps) Angle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	rad, err := v.Angle()
	if err != nil {
		return Failure(err.Error())
	}
	deg, err := v.AngleDegree()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"radians": rad,
		"degrees": deg,
	})
}

// AngleBetween returns the angle between two vectors in radians
func (g *GeometryOps) AngleBetween(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	rad, err := v.AngleBetween(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"radians": rad,
	})
}

// Length returns the vector length
func (g *GeometryOps) Length(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	l, err := v.Length()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(ScalarData(sys, l))
}

// LengthSq returns the squared vector length
func (g *GeometryOps) LengthSq(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return Failure(err.Error())
	}
	sq, err := v.LengthSq()
	if err != nil {
		return Failure(err.Error())
	}
	return Success(ScalarData(sys, sq))
}

// Distance returns the distance between two vectors
func (g *GeometryOps) Distance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	d, err := v.Distance(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(ScalarData(sys, d))
}

// DistanceSq returns the squared distance between two vectors
func (g *GeometryOps) DistanceSq(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sys := SystemOf(params)
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	d, err := v.DistanceSq(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(ScalarData(sys, d))
}

// Equals reports per-axis equality
func (g *GeometryOps) Equals(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, w, err := g.pair(params)
	if err != nil {
		return Failure(err.Error())
	}
	eq, err := v.IsEqualTo(w)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{
		"equal": eq,
	})
}

func (g *GeometryOps) pair(params map[string]interface{}) (vec2.Vector, vec2.Vector, error) {
	sys := SystemOf(params)
	v, err := GetVector(params, "a", sys)
	if err != nil {
		return vec2.Vector{}, vec2.Vector{}, err
	}
	w, err := GetVector(params, "b", sys)
	if err != nil {
		return vec2.Vector{}, vec2.Vector{}, err
	}
	return v, w, nil
}
