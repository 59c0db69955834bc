package operation

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/types"
)

func newDispatcher() *Dispatcher {
	return NewDispatcher(DefaultRegistry(), slog.Default())
}

func command(action, typ string, p map[string]types.ParamValue) *types.Command {
	return types.NewCommand(types.ActionKind(action), typ, p)
}

func TestDispatchBox(t *testing.T) {
	mem := cad.NewMemContext()
	res := newDispatcher().Dispatch(command("create_feature", "box", map[string]types.ParamValue{
		"width":  types.Number(100),
		"height": types.Number(50),
		"depth":  types.Number(25),
		"units":  types.Text("mm"),
	}), mem)

	if res.Status != types.StatusSuccess {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.Contains(res.Message, "100.0 x 50.0 x 25.0 mm") {
		t.Fatalf("message should report mm dimensions: %q", res.Message)
	}

	calls := strings.Join(mem.Calls(), "\n")
	if !strings.Contains(calls, "select_plane front") {
		t.Fatalf("plane not selected: %v", mem.Calls())
	}
	if !strings.Contains(calls, "sketch_on") || !strings.Contains(calls, "rectangle") {
		t.Fatalf("sketch not drawn: %v", mem.Calls())
	}
	if !strings.Contains(calls, "extrude d=0.0250") {
		t.Fatalf("extrude depth not in base units: %v", mem.Calls())
	}
}

func TestDispatchEveryAliasReachesAHandler(t *testing.T) {
	aliases := []string{
		"box", "rectangular", "rectangle", "block", "cube",
		"cylinder", "cylindrical", "rod", "circle",
		"boss_on_face", "extrude_on_face", "rectangle_on_face",
		"cut_on_face", "pocket_on_face",
		"hole", "simple_hole",
		"threaded_hole", "tapped_hole", "m2", "m6", "m20",
		"counterbore", "counterbore_hole", "countersink", "countersink_hole",
		"fillet", "round", "chamfer",
		"extrusion", "extrude", "boss",
		"cut", "cut_extrude", "pocket",
		"pattern", "linear_pattern", "circular_pattern",
		"shell", "dimension", "size", "length", "scale",
	}
	d := newDispatcher()
	for _, typ := range aliases {
		res := d.Dispatch(command("create_feature", typ, nil), cad.NewMemContext())
		if strings.Contains(res.Message, "unknown type") || strings.Contains(res.Message, "unknown action") {
			t.Fatalf("alias %q did not reach a handler: %+v", typ, res)
		}
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	res := newDispatcher().Dispatch(command("foo", "bar", nil), cad.NewMemContext())
	if res.Status != types.StatusError {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !strings.Contains(res.Message, "unknown action") || !strings.Contains(res.Message, "create_feature") {
		t.Fatalf("error must list supported actions: %q", res.Message)
	}
}

func TestDispatchUnknownType(t *testing.T) {
	res := newDispatcher().Dispatch(command("create_feature", "banana", nil), cad.NewMemContext())
	if res.Status != types.StatusError {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !strings.Contains(res.Message, "unknown type") || !strings.Contains(res.Message, "threaded_hole") {
		t.Fatalf("error must list supported types: %q", res.Message)
	}
}

func TestDispatchFilletWithoutSelection(t *testing.T) {
	mem := cad.NewMemContext()
	res := newDispatcher().Dispatch(command("create_feature", "fillet", map[string]types.ParamValue{
		"radius": types.Number(5),
	}), mem)

	if res.Status != types.StatusError {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !strings.Contains(res.Message, "select edges") {
		t.Fatalf("error should tell the user to select edges: %q", res.Message)
	}
	for _, c := range mem.Calls() {
		if strings.HasPrefix(c, "fillet") || strings.HasPrefix(c, "extrude") || strings.HasPrefix(c, "cut") {
			t.Fatalf("no geometry call may be issued: %v", mem.Calls())
		}
	}
}

func TestDispatchThreadSizeType(t *testing.T) {
	mem := cad.NewMemContext()
	d := newDispatcher()

	// a body must exist before holes can find a face
	if res := d.Dispatch(command("create_feature", "box", nil), mem); res.Status != types.StatusSuccess {
		t.Fatalf("box setup failed: %+v", res)
	}

	res := d.Dispatch(command("create_feature", "m6", map[string]types.ParamValue{
		"count":   types.Number(4),
		"spacing": types.Number(20),
		"units":   types.Text("mm"),
	}), mem)
	if res.Status != types.StatusSuccess {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.Contains(res.Message, "M6") || !strings.Contains(res.Message, "5.0 mm tap drill") {
		t.Fatalf("message should name the thread and tap drill: %q", res.Message)
	}

	var circles []string
	for _, c := range mem.Calls() {
		if strings.HasPrefix(c, "circle") {
			circles = append(circles, c)
		}
	}
	if len(circles) != 4 {
		t.Fatalf("expected 4 hole positions, got %v", circles)
	}
	if circles[1] != "circle 0.0200,0.0000 r=0.0025" {
		t.Fatalf("positions must be spaced 0.02 apart with tap radius 0.0025: %v", circles)
	}
}

func TestDispatchGuidanceForShellWithoutSelection(t *testing.T) {
	res := newDispatcher().Dispatch(command("create_feature", "shell", map[string]types.ParamValue{
		"thickness": types.Number(3),
	}), cad.NewMemContext())
	if res.Status != types.StatusGuidance {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !strings.Contains(res.Message, "3.0 mm") {
		t.Fatalf("guidance should carry the requested thickness: %q", res.Message)
	}
}

func TestDispatchScaleAlwaysGuidance(t *testing.T) {
	mem := cad.NewMemContext()
	mem.SetSelectionCount(1)
	res := newDispatcher().Dispatch(command("modify", "scale", nil), mem)
	if res.Status != types.StatusGuidance {
		t.Fatalf("scale must decline with guidance: %+v", res)
	}
}

func TestDispatchDeleteAction(t *testing.T) {
	mem := cad.NewMemContext()
	d := newDispatcher()

	res := d.Dispatch(command("delete", "fillet", nil), mem)
	if res.Status != types.StatusError || !strings.Contains(res.Message, "select") {
		t.Fatalf("delete without selection must error: %+v", res)
	}

	if r := d.Dispatch(command("create_feature", "box", nil), mem); r.Status != types.StatusSuccess {
		t.Fatalf("box setup failed: %+v", r)
	}
	mem.SetSelectionCount(1)
	res = d.Dispatch(command("remove", "feature", nil), mem)
	if res.Status != types.StatusSuccess {
		t.Fatalf("delete with selection should succeed: %+v", res)
	}
}

func TestDispatchModelingFailureBecomesError(t *testing.T) {
	mem := cad.NewMemContext()
	mem.FailOn("extrude", errors.New("rebuild error 17"))
	res := newDispatcher().Dispatch(command("create_feature", "box", nil), mem)
	if res.Status != types.StatusError || !strings.Contains(res.Message, "rebuild error 17") {
		t.Fatalf("underlying cause must surface: %+v", res)
	}
}

type panickyContext struct{ *cad.MemContext }

func (panickyContext) SketchOn(string) error { panic("COM object disconnected") }

func TestDispatchRecoversPanics(t *testing.T) {
	mem := panickyContext{cad.NewMemContext()}
	res := newDispatcher().Dispatch(command("create_feature", "box", nil), mem)
	if res.Status != types.StatusError || !strings.Contains(res.Message, "COM object disconnected") {
		t.Fatalf("panic must convert to an error result: %+v", res)
	}
}
