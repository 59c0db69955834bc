package operation

import (
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

func boxSpec() params.Spec {
	return params.Spec{
		Aliases: params.BoxAliases,
		Params: []params.ParamSpec{
			{Name: "width", Default: 100, Dimensional: true},
			{Name: "height", Default: 100, Dimensional: true},
			{Name: "depth", Default: 50, Dimensional: true},
			{Name: "plane", Text: true, TextDefault: "Front"},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

// handleBox sketches a corner-aligned rectangle on a reference plane
// and extrudes it by depth.
func handleBox(req *Request) types.OperationResult {
	w := req.Params.Number("width")
	h := req.Params.Number("height")
	d := req.Params.Number("depth")
	plane := req.Params.Text("plane")

	if !req.Ctx.SelectPlane(plane) {
		return types.Errorf("plane %q not found in the active document", plane)
	}
	if err := req.Ctx.SketchOn(plane); err != nil {
		return callFailed("sketch", err)
	}
	if err := req.Ctx.DrawRectangle(0, 0, w, h); err != nil {
		req.Ctx.ExitSketch()
		return callFailed("rectangle", err)
	}
	req.Ctx.ExitSketch()
	if _, err := req.Ctx.Extrude(d, false, false); err != nil {
		return callFailed("extrude", err)
	}
	return types.Successf("Created box %s x %s x %s mm", fmtMM(w), fmtMM(h), fmtMM(d))
}

func cylinderSpec() params.Spec {
	return params.Spec{
		Aliases: params.CylinderAliases,
		Params: []params.ParamSpec{
			{Name: "diameter", Default: 50, Dimensional: true},
			{Name: "radius", Dimensional: true},
			{Name: "height", Default: 100, Dimensional: true},
			{Name: "plane", Text: true, TextDefault: "Top"},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

// handleCylinder extrudes a circle of the given radius; the radius
// derives from the diameter when not supplied directly.
func handleCylinder(req *Request) types.OperationResult {
	radius := req.Params.Number("radius")
	if !req.Params.Has("radius") {
		radius = req.Params.Number("diameter") / 2
	}
	height := req.Params.Number("height")
	plane := req.Params.Text("plane")

	if !req.Ctx.SelectPlane(plane) {
		return types.Errorf("plane %q not found in the active document", plane)
	}
	if err := req.Ctx.SketchOn(plane); err != nil {
		return callFailed("sketch", err)
	}
	if err := req.Ctx.DrawCircle(0, 0, radius); err != nil {
		req.Ctx.ExitSketch()
		return callFailed("circle", err)
	}
	req.Ctx.ExitSketch()
	if _, err := req.Ctx.Extrude(height, false, false); err != nil {
		return callFailed("extrude", err)
	}
	return types.Successf("Created cylinder Ø%s mm x %s mm", fmtMM(radius*2), fmtMM(height))
}
