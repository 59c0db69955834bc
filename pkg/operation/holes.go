package operation

import (
	"sort"
	"strings"

	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

func holeSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "diameter", Default: 10, Dimensional: true},
			{Name: "depth", Default: 20, Dimensional: true},
			{Name: "x", Dimensional: true},
			{Name: "y", Dimensional: true},
			{Name: "face", Text: true, TextDefault: "top"},
			{Name: "through_all", Flag: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func handleHole(req *Request) types.OperationResult {
	face, errRes := selectOrientedFace(req.Ctx, req.Params.Text("face"))
	if errRes != nil {
		return *errRes
	}
	dia := req.Params.Number("diameter")
	x, y := req.Params.Number("x"), req.Params.Number("y")

	if err := req.Ctx.SketchOn(face.ID); err != nil {
		return callFailed("sketch", err)
	}
	if err := req.Ctx.DrawCircle(x, y, dia/2); err != nil {
		req.Ctx.ExitSketch()
		return callFailed("circle", err)
	}
	req.Ctx.ExitSketch()

	through := req.Params.Flag("through_all")
	if _, err := req.Ctx.Cut(req.Params.Number("depth"), through); err != nil {
		return callFailed("cut", err)
	}
	if through {
		return types.Successf("Created Ø%s mm hole through all", fmtMM(dia))
	}
	return types.Successf("Created Ø%s mm hole, %s mm deep", fmtMM(dia), fmtMM(req.Params.Number("depth")))
}

func threadedHoleSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "thread_size", Text: true, TextDefault: "M6"},
			{Name: "depth", Default: 15, Dimensional: true},
			{Name: "count", Default: 1},
			{Name: "spacing", Default: 20, Dimensional: true},
			{Name: "x", Dimensional: true},
			{Name: "y", Dimensional: true},
			{Name: "face", Text: true, TextDefault: "top"},
			{Name: "through_all", Flag: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

// handleThreadedHole bores tap-drill pilot holes for a nominal metric
// thread. Multiple holes share one sketch and one cut: count circles
// along a line from (x, y) spaced by spacing.
func handleThreadedHole(req *Request) types.OperationResult {
	size := req.Params.Text("thread_size")
	tapMM, ok := TapDrill(size)
	if !ok {
		return types.Errorf("unknown thread size %q, supported: %s", size, strings.Join(threadSizes(), ", "))
	}
	tapRadius := tapMM / 1000 / 2

	count := int(req.Params.Number("count"))
	if count < 1 {
		count = 1
	}
	spacing := req.Params.Number("spacing")
	x, y := req.Params.Number("x"), req.Params.Number("y")

	face, errRes := selectOrientedFace(req.Ctx, req.Params.Text("face"))
	if errRes != nil {
		return *errRes
	}
	if err := req.Ctx.SketchOn(face.ID); err != nil {
		return callFailed("sketch", err)
	}
	for i := 0; i < count; i++ {
		if err := req.Ctx.DrawCircle(x+float64(i)*spacing, y, tapRadius); err != nil {
			req.Ctx.ExitSketch()
			return callFailed("circle", err)
		}
	}
	req.Ctx.ExitSketch()

	through := req.Params.Flag("through_all")
	if _, err := req.Ctx.Cut(req.Params.Number("depth"), through); err != nil {
		return callFailed("cut", err)
	}
	size = strings.ToUpper(size)
	if count == 1 {
		return types.Successf("Created %s tapped hole (Ø%.1f mm tap drill)", size, tapMM)
	}
	return types.Successf("Created %dx %s tapped holes (Ø%.1f mm tap drill), %s mm apart",
		count, size, tapMM, fmtMM(spacing))
}

func threadSizes() []string {
	out := make([]string, 0, len(tapDrillMM))
	for s := range tapDrillMM {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func counterboreSpec() params.Spec {
	return params.Spec{
		Params: []params.ParamSpec{
			{Name: "diameter", Default: 6, Dimensional: true},
			{Name: "depth", Default: 20, Dimensional: true},
			{Name: "x", Dimensional: true},
			{Name: "y", Dimensional: true},
			{Name: "face", Text: true, TextDefault: "top"},
			{Name: "through_all", Flag: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

// counterboreCuts performs the shared two-cut sequence: the larger,
// shallower bore first, then the smaller through/blind hole on the
// same axis. Bore proportions follow socket cap screws: 1.6x the
// hole diameter wide, 1x deep.
func counterboreCuts(req *Request, label string) types.OperationResult {
	dia := req.Params.Number("diameter")
	boreDia := dia * 1.6
	boreDepth := dia
	x, y := req.Params.Number("x"), req.Params.Number("y")

	face, errRes := selectOrientedFace(req.Ctx, req.Params.Text("face"))
	if errRes != nil {
		return *errRes
	}
	if err := req.Ctx.SketchOn(face.ID); err != nil {
		return callFailed("sketch", err)
	}
	if err := req.Ctx.DrawCircle(x, y, boreDia/2); err != nil {
		req.Ctx.ExitSketch()
		return callFailed("circle", err)
	}
	req.Ctx.ExitSketch()
	if _, err := req.Ctx.Cut(boreDepth, false); err != nil {
		return callFailed("bore cut", err)
	}

	// second cut: the pilot hole, deeper, same axis
	if !req.Ctx.SelectFace(face.ID) {
		return types.Errorf("could not reselect face %s for the pilot hole", face.ID)
	}
	if err := req.Ctx.SketchOn(face.ID); err != nil {
		return callFailed("sketch", err)
	}
	if err := req.Ctx.DrawCircle(x, y, dia/2); err != nil {
		req.Ctx.ExitSketch()
		return callFailed("circle", err)
	}
	req.Ctx.ExitSketch()
	if _, err := req.Ctx.Cut(req.Params.Number("depth"), req.Params.Flag("through_all")); err != nil {
		return callFailed("hole cut", err)
	}

	return types.Successf("Created %s Ø%s mm (bore Ø%s x %s mm)",
		label, fmtMM(dia), fmtMM(boreDia), fmtMM(boreDepth))
}

func handleCounterbore(req *Request) types.OperationResult {
	return counterboreCuts(req, "counterbore")
}

// handleCountersink reuses the counterbore tool path; a true conical
// profile needs a revolved cut the capability interface does not
// expose yet.
func handleCountersink(req *Request) types.OperationResult {
	return counterboreCuts(req, "countersink")
}
