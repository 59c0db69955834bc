package params

import (
	"math"
	"testing"

	"github.com/cadagent-org/cadagent/pkg/types"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func boxSpec() Spec {
	return Spec{
		Aliases: BoxAliases,
		Params: []ParamSpec{
			{Name: "width", Default: 100, Dimensional: true},
			{Name: "height", Default: 100, Dimensional: true},
			{Name: "depth", Default: 50, Dimensional: true},
			{Name: "units", Text: true, TextDefault: "mm"},
		},
	}
}

func TestAliasLengthMapsToWidth(t *testing.T) {
	r := Resolve(map[string]types.ParamValue{"length": types.Number(10)}, boxSpec())
	if !approx(r.Number("width"), 0.01) {
		t.Fatalf("width = %v, want 0.01", r.Number("width"))
	}
}

func TestAliasPositionalWins(t *testing.T) {
	raw := map[string]types.ParamValue{
		"length": types.Number(10),
		"x":      types.Number(20),
	}
	r := Resolve(raw, boxSpec())
	if !approx(r.Number("width"), 0.02) {
		t.Fatalf("width = %v, want 0.02 (x must override length)", r.Number("width"))
	}
}

func TestUnitConversion(t *testing.T) {
	cases := []struct {
		unit string
		want float64
	}{
		{"mm", 0.025},
		{"cm", 0.25},
		{"m", 25.0},
		{"in", 0.635},
		{"ft", 7.62},
		{"furlong", 0.025}, // unknown units behave as mm
	}
	for _, tc := range cases {
		raw := map[string]types.ParamValue{
			"width": types.Number(25),
			"units": types.Text(tc.unit),
		}
		r := Resolve(raw, boxSpec())
		if !approx(r.Number("width"), tc.want) {
			t.Fatalf("unit %q: width = %v, want %v", tc.unit, r.Number("width"), tc.want)
		}
	}
}

func TestInchConversion(t *testing.T) {
	raw := map[string]types.ParamValue{
		"width": types.Number(1),
		"units": types.Text("in"),
	}
	r := Resolve(raw, boxSpec())
	if !approx(r.Number("width"), 0.0254) {
		t.Fatalf("width = %v, want 0.0254", r.Number("width"))
	}
}

func TestDefaults(t *testing.T) {
	r := Resolve(nil, boxSpec())
	if !approx(r.Number("width"), 0.1) || !approx(r.Number("height"), 0.1) || !approx(r.Number("depth"), 0.05) {
		t.Fatalf("defaults not applied: w=%v h=%v d=%v", r.Number("width"), r.Number("height"), r.Number("depth"))
	}
	if r.Text("units") != "mm" {
		t.Fatalf("units default = %q", r.Text("units"))
	}
	if r.Has("width") {
		t.Fatalf("defaulted parameter must not report as supplied")
	}
}

func TestTextCoercion(t *testing.T) {
	spec := Spec{Params: []ParamSpec{
		{Name: "depth", Default: 20, Dimensional: true},
		{Name: "through_all", Flag: true},
	}}
	raw := map[string]types.ParamValue{
		"depth":       types.Text("15"),
		"through_all": types.Text("TRUE"),
	}
	r := Resolve(raw, spec)
	if !approx(r.Number("depth"), 0.015) {
		t.Fatalf("text number not coerced: %v", r.Number("depth"))
	}
	if !r.Flag("through_all") {
		t.Fatalf("text bool not coerced")
	}
}

func TestUnparsableFallsBackToDefault(t *testing.T) {
	spec := Spec{Params: []ParamSpec{{Name: "radius", Default: 5, Dimensional: true}}}
	raw := map[string]types.ParamValue{"radius": types.Text("about five")}
	r := Resolve(raw, spec)
	if !approx(r.Number("radius"), 0.005) {
		t.Fatalf("fallback not applied: %v", r.Number("radius"))
	}
	if r.Has("radius") {
		t.Fatalf("unparsable value must count as not supplied")
	}
}

func TestNonDimensionalUntouched(t *testing.T) {
	spec := Spec{Params: []ParamSpec{
		{Name: "count", Default: 1},
		{Name: "angle", Default: 45},
		{Name: "spacing", Default: 20, Dimensional: true},
	}}
	raw := map[string]types.ParamValue{
		"count":   types.Number(4),
		"angle":   types.Number(30),
		"spacing": types.Number(20),
		"units":   types.Text("mm"),
	}
	r := Resolve(raw, spec)
	if r.Number("count") != 4 || r.Number("angle") != 30 {
		t.Fatalf("non-dimensional values must not be scaled: count=%v angle=%v", r.Number("count"), r.Number("angle"))
	}
	if !approx(r.Number("spacing"), 0.02) {
		t.Fatalf("spacing = %v, want 0.02", r.Number("spacing"))
	}
}

func TestCylinderAliases(t *testing.T) {
	spec := Spec{
		Aliases: CylinderAliases,
		Params: []ParamSpec{
			{Name: "height", Default: 100, Dimensional: true},
		},
	}
	r := Resolve(map[string]types.ParamValue{"length": types.Number(80)}, spec)
	if !approx(r.Number("height"), 0.08) {
		t.Fatalf("height = %v, want 0.08", r.Number("height"))
	}
}
