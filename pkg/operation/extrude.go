package operation

import (
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// Bare extrusion and cut act on whatever sketch or face the user has
// selected; without a selection there is nothing to sweep.

func extrusionSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "depth", Default: 25, Dimensional: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleExtrusion(req *Request) types.OperationResult {
	if req.Ctx.SelectionCount() == 0 {
		return types.Errorf("nothing selected - select a sketch or face to extrude first")
	}
	depth := req.Params.Number("depth")
	if _, err := req.Ctx.Extrude(depth, false, false); err != nil {
		return callFailed("extrude", err)
	}
	return types.Successf("Extruded the selection %s mm", fmtMM(depth))
}

func cutSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "depth", Default: 10, Dimensional: true},
			{Name: "through_all", Flag: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleCut(req *Request) types.OperationResult {
	if req.Ctx.SelectionCount() == 0 {
		return types.Errorf("nothing selected - select a sketch or face to cut first")
	}
	depth := req.Params.Number("depth")
	through := req.Params.Flag("through_all")
	if _, err := req.Ctx.Cut(depth, through); err != nil {
		return callFailed("cut", err)
	}
	if through {
		return types.Successf("Cut the selection through all")
	}
	return types.Successf("Cut the selection %s mm deep", fmtMM(depth))
}
