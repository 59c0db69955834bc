package operation

import (
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

func dimensionSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "name", Text: true},
			{Name: "value", Dimensional: true},
			{Name: "delta", Dimensional: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

// handleDimension sets a driving dimension to an absolute value or
// shifts it by a relative delta, then rebuilds.
func handleDimension(req *Request) types.OperationResult {
	name := req.Params.Text("name")
	if name == "" {
		return types.Errorf("no dimension named - provide a dimension name like \"D1@Sketch1\"")
	}
	handle, ok := req.Ctx.FindDimension(name)
	if !ok {
		return types.Errorf("dimension %q not found in the active document", name)
	}

	var target float64
	switch {
	case req.Params.Has("value"):
		target = req.Params.Number("value")
	case req.Params.Has("delta"):
		target = handle.Value() + req.Params.Number("delta")
	default:
		return types.Errorf("nothing to change - provide a value or a delta for %q", name)
	}
	if target <= 0 {
		return types.Errorf("dimension %q cannot be set to %s mm", name, fmtMM(target))
	}

	if err := req.Ctx.SetDimension(handle, target); err != nil {
		return callFailed("set dimension", err)
	}
	if err := req.Ctx.Rebuild(); err != nil {
		return callFailed("rebuild", err)
	}
	return types.Successf("Set %s to %s mm", name, fmtMM(target))
}

func scaleSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "value", Default: 1},
		},
	}
}

// handleScale always declines: uniform scale rescales every driving
// dimension and cannot be applied safely without review.
func handleScale(req *Request) types.OperationResult {
	return types.Guidance(
		"Scaling cannot be applied safely from here. To scale the part manually:",
		"Open the Scale tool (Insert > Features > Scale)",
		"Choose scaling about the centroid",
		"Enter the scale factor and confirm",
		"Check mating dimensions afterwards - scaling changes every one of them",
	)
}

func deleteSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "name", Text: true},
		},
	}
}

// handleDelete removes the currently selected feature. Deletion is
// destructive, so it never falls back to guessing a target.
func handleDelete(req *Request) types.OperationResult {
	if req.Ctx.SelectionCount() == 0 {
		name := req.Params.Text("name")
		if name != "" {
			return types.Errorf("select %q in the feature tree first, then ask again", name)
		}
		return types.Errorf("nothing selected - select the feature to delete first")
	}
	if err := req.Ctx.DeleteSelection(); err != nil {
		return callFailed("delete", err)
	}
	if err := req.Ctx.Rebuild(); err != nil {
		return callFailed("rebuild", err)
	}
	return types.Successf("Deleted the selected feature")
}
