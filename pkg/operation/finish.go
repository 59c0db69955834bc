package operation

import (
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// Fillet, chamfer, and shell all act on a selection the user must
// make before issuing the command; scripting cannot pick the right
// edges. Fillet and chamfer fail without one, shell degrades to
// guidance because the capability interface exposes no shell call.

func filletSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "radius", Default: 5, Dimensional: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleFillet(req *Request) types.OperationResult {
	if req.Ctx.SelectionCount() == 0 {
		return types.Errorf("no edges selected - select edges or faces to fillet first, then ask again")
	}
	radius := req.Params.Number("radius")
	if _, err := req.Ctx.Fillet(radius); err != nil {
		return callFailed("fillet", err)
	}
	return types.Successf("Created R%s mm fillet on the selected edges", fmtMM(radius))
}

func chamferSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "distance", Default: 2, Dimensional: true},
			{Name: "angle", Default: 45},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleChamfer(req *Request) types.OperationResult {
	if req.Ctx.SelectionCount() == 0 {
		return types.Errorf("no edges selected - select edges to chamfer first, then ask again")
	}
	distance := req.Params.Number("distance")
	angle := req.Params.Number("angle")
	if _, err := req.Ctx.Chamfer(distance, angle); err != nil {
		return callFailed("chamfer", err)
	}
	return types.Successf("Created %s mm x %.0f° chamfer on the selected edges", fmtMM(distance), angle)
}

func shellSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "thickness", Default: 2, Dimensional: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleShell(req *Request) types.OperationResult {
	thickness := req.Params.Number("thickness")
	first := "Select the faces to remove (the openings of the hollowed part)"
	if req.Ctx.SelectionCount() > 0 {
		first = "Keep your current face selection (the openings of the hollowed part)"
	}
	return types.Guidance(
		"Shell cannot be scripted from here. To hollow the part manually:",
		first,
		"Open the Shell tool in the Features toolbar",
		"Set the wall thickness to "+fmtMM(thickness)+" mm",
		"Confirm to hollow the part",
	)
}
