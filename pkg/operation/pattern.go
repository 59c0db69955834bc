package operation

import (
	"fmt"

	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// Patterns need a seed feature picked interactively and a pattern
// primitive the capability interface does not expose, so both pattern
// flavors degrade to step-by-step guidance.

func linearPatternSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "count", Default: 2},
			{Name: "count_x", Default: 0},
			{Name: "count_y", Default: 1},
			{Name: "spacing", Default: 20, Dimensional: true},
			{Name: "spacing_x", Default: 0, Dimensional: true},
			{Name: "spacing_y", Default: 0, Dimensional: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleLinearPattern(req *Request) types.OperationResult {
	count := req.Params.Number("count")
	if req.Params.Has("count_x") {
		count = req.Params.Number("count_x")
	}
	spacing := req.Params.Number("spacing")
	if req.Params.Has("spacing_x") {
		spacing = req.Params.Number("spacing_x")
	}

	first := "Select the feature to pattern in the feature tree"
	if req.Ctx.SelectionCount() > 0 {
		first = "Keep your current feature selection"
	}
	return types.Guidance(
		"Linear patterns cannot be scripted from here. To pattern the feature manually:",
		first,
		"Open Linear Pattern in the Features toolbar",
		"Pick an edge for the pattern direction",
		fmt.Sprintf("Set instances to %.0f and spacing to %s mm", count, fmtMM(spacing)),
		"Confirm to create the pattern",
	)
}

func circularPatternSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "count", Default: 4},
			{Name: "angle", Default: 360},
		},
	}
}

func handleCircularPattern(req *Request) types.OperationResult {
	count := req.Params.Number("count")
	angle := req.Params.Number("angle")

	first := "Select the feature to pattern in the feature tree"
	if req.Ctx.SelectionCount() > 0 {
		first = "Keep your current feature selection"
	}
	return types.Guidance(
		"Circular patterns cannot be scripted from here. To pattern the feature manually:",
		first,
		"Open Circular Pattern in the Features toolbar",
		"Pick a cylindrical face or axis for the pattern axis",
		fmt.Sprintf("Set instances to %.0f over %.0f degrees", count, angle),
		"Confirm to create the pattern",
	)
}
