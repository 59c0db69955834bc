package operation

import (
	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

func onFaceSpec(defaultDepth float64) params.Spec {
	return params.Spec{
		Aliases: params.FaceFeatureAliases,
		Params: []params.ParamSpec{
			{Name: "width", Default: 50, Dimensional: true},
			{Name: "height", Default: 50, Dimensional: true},
			{Name: "depth", Default: defaultDepth, Dimensional: true},
			{Name: "x", Dimensional: true},
			{Name: "y", Dimensional: true},
			{Name: "face", Text: true, TextDefault: "top"},
			{Name: "through_all", Flag: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

// selectOrientedFace runs the oriented face search and carries out
// the documented last resort: when no face matches the orientation,
// the first planar face is taken; when there is no planar face at
// all, the operation fails.
func selectOrientedFace(ctx cad.ModelingContext, faceParam string) (cad.Face, *types.OperationResult) {
	orient, ok := cad.ParseOrientation(faceParam)
	if !ok {
		res := types.Errorf("unknown face %q, supported: top, bottom", faceParam)
		return cad.Face{}, &res
	}
	faces := ctx.PlanarFaces()
	face, found := cad.PickFace(faces, orient)
	if !found {
		face, found = cad.FirstPlanar(faces)
	}
	if !found {
		res := types.Errorf("no planar %s face found on the active body", orient)
		return cad.Face{}, &res
	}
	if !ctx.SelectFace(face.ID) {
		res := types.Errorf("could not select face %s", face.ID)
		return cad.Face{}, &res
	}
	return face, nil
}

// sketchCenteredRectangle draws a w x h rectangle centered at (x, y)
// on the selected face.
func sketchCenteredRectangle(ctx cad.ModelingContext, faceID string, x, y, w, h float64) *types.OperationResult {
	if err := ctx.SketchOn(faceID); err != nil {
		res := callFailed("sketch", err)
		return &res
	}
	if err := ctx.DrawRectangle(x-w/2, y-h/2, x+w/2, y+h/2); err != nil {
		ctx.ExitSketch()
		res := callFailed("rectangle", err)
		return &res
	}
	ctx.ExitSketch()
	return nil
}

func handleBossOnFace(req *Request) types.OperationResult {
	face, errRes := selectOrientedFace(req.Ctx, req.Params.Text("face"))
	if errRes != nil {
		return *errRes
	}
	w, h := req.Params.Number("width"), req.Params.Number("height")
	x, y := req.Params.Number("x"), req.Params.Number("y")
	if errRes := sketchCenteredRectangle(req.Ctx, face.ID, x, y, w, h); errRes != nil {
		return *errRes
	}
	depth := req.Params.Number("depth")
	if _, err := req.Ctx.Extrude(depth, false, false); err != nil {
		return callFailed("extrude", err)
	}
	return types.Successf("Created %s x %s mm boss on the %s face, %s mm tall",
		fmtMM(w), fmtMM(h), req.Params.Text("face"), fmtMM(depth))
}

func handleCutOnFace(req *Request) types.OperationResult {
	face, errRes := selectOrientedFace(req.Ctx, req.Params.Text("face"))
	if errRes != nil {
		return *errRes
	}
	w, h := req.Params.Number("width"), req.Params.Number("height")
	x, y := req.Params.Number("x"), req.Params.Number("y")
	if errRes := sketchCenteredRectangle(req.Ctx, face.ID, x, y, w, h); errRes != nil {
		return *errRes
	}
	depth := req.Params.Number("depth")
	through := req.Params.Flag("through_all")
	if _, err := req.Ctx.Cut(depth, through); err != nil {
		return callFailed("cut", err)
	}
	if through {
		return types.Successf("Cut %s x %s mm pocket through the %s face",
			fmtMM(w), fmtMM(h), req.Params.Text("face"))
	}
	return types.Successf("Cut %s x %s mm pocket on the %s face, %s mm deep",
		fmtMM(w), fmtMM(h), req.Params.Text("face"), fmtMM(depth))
}
