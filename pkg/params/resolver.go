// Package params normalizes raw command parameters into typed,
// unit-converted values. Handlers never read raw maps: after Resolve,
// every declared parameter has a value, every dimensional value is in
// base units (meters), and aliases are collapsed to canonical keys.
package params

import (
	"strconv"
	"strings"

	"github.com/cadagent-org/cadagent/pkg/types"
)

// UnitFactors maps a units string to its multiplicative factor into
// the canonical base unit (meters). Unrecognized units fall back to
// millimeters, the protocol's default.
var UnitFactors = map[string]float64{
	"mm": 0.001,
	"cm": 0.01,
	"m":  1.0,
	"in": 0.0254,
	"ft": 0.3048,
}

const defaultUnitFactor = 0.001 // mm

// AliasRule maps a secondary parameter name to its canonical key.
type AliasRule struct {
	From string
	To   string
}

// AliasTable is an ordered rule list. Rules apply in declaration
// order with last-write-wins, so a later rule overrides an earlier
// one when both source keys are present. The default tables list the
// positional spellings (x/y/z) after the named ones (length), which
// makes the positional alias win; callers needing the opposite order
// supply their own table.
type AliasTable []AliasRule

// BoxAliases is the alias table for rectangular geometry.
var BoxAliases = AliasTable{
	{From: "length", To: "width"},
	{From: "x", To: "width"},
	{From: "y", To: "height"},
	{From: "z", To: "depth"},
}

// FaceFeatureAliases is the alias table for features placed on a
// face. x and y are positions on the face there, never sizes, so
// only the named spelling maps.
var FaceFeatureAliases = AliasTable{
	{From: "length", To: "width"},
}

// CylinderAliases is the alias table for cylindrical geometry.
var CylinderAliases = AliasTable{
	{From: "length", To: "height"},
	{From: "z", To: "height"},
}

// ParamSpec declares one parameter a handler consumes.
type ParamSpec struct {
	Name        string
	Default     float64
	TextDefault string // used when the parameter is textual
	Dimensional bool   // scaled by the unit factor
	Text        bool   // resolved as text, not number
	Flag        bool   // resolved as bool
}

// Spec declares the full parameter contract of one operation.
type Spec struct {
	Params  []ParamSpec
	Aliases AliasTable
}

// Resolved is the output of Resolve: a total map over the declared
// parameter space.
type Resolved struct {
	numbers  map[string]float64
	flags    map[string]bool
	texts    map[string]string
	supplied map[string]bool
}

func (r Resolved) Number(name string) float64 { return r.numbers[name] }
func (r Resolved) Flag(name string) bool      { return r.flags[name] }
func (r Resolved) Text(name string) string    { return r.texts[name] }

// Has reports whether the caller actually supplied the parameter, as
// opposed to it being filled from the declared default.
func (r Resolved) Has(name string) bool { return r.supplied[name] }

// Resolve applies aliasing, coercion, unit conversion, and
// defaulting. It is total: unparsable values silently fall back to
// the declared default rather than failing, a deliberate leniency
// toward sloppy LLM output.
func Resolve(raw map[string]types.ParamValue, spec Spec) Resolved {
	merged := applyAliases(raw, spec.Aliases)
	factor := unitFactor(merged)

	out := Resolved{
		numbers:  make(map[string]float64),
		flags:    make(map[string]bool),
		texts:    make(map[string]string),
		supplied: make(map[string]bool),
	}

	for _, p := range spec.Params {
		v, supplied := merged[p.Name]
		switch {
		case p.Flag:
			out.flags[p.Name] = coerceBool(v, supplied)
			out.supplied[p.Name] = supplied
		case p.Text:
			out.texts[p.Name] = coerceText(v, supplied, p.TextDefault)
			out.supplied[p.Name] = supplied
		default:
			n, ok := coerceNumber(v, supplied)
			if !ok {
				n = p.Default
			}
			if p.Dimensional {
				n *= factor
			}
			out.numbers[p.Name] = n
			out.supplied[p.Name] = ok
		}
	}
	return out
}

func applyAliases(raw map[string]types.ParamValue, table AliasTable) map[string]types.ParamValue {
	merged := make(map[string]types.ParamValue, len(raw))
	for k, v := range raw {
		merged[strings.ToLower(k)] = v
	}
	for _, rule := range table {
		if v, ok := merged[rule.From]; ok {
			merged[rule.To] = v
		}
	}
	return merged
}

func unitFactor(merged map[string]types.ParamValue) float64 {
	v, ok := merged["units"]
	if !ok {
		return defaultUnitFactor
	}
	unit, ok := v.Text()
	if !ok {
		return defaultUnitFactor
	}
	if f, ok := UnitFactors[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return f
	}
	return defaultUnitFactor
}

func coerceNumber(v types.ParamValue, supplied bool) (float64, bool) {
	if !supplied {
		return 0, false
	}
	if n, ok := v.Number(); ok {
		return n, true
	}
	if t, ok := v.Text(); ok {
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func coerceBool(v types.ParamValue, supplied bool) bool {
	if !supplied {
		return false
	}
	if b, ok := v.Bool(); ok {
		return b
	}
	if t, ok := v.Text(); ok {
		return strings.EqualFold(strings.TrimSpace(t), "true")
	}
	return false
}

func coerceText(v types.ParamValue, supplied bool, def string) string {
	if !supplied {
		return def
	}
	if t, ok := v.Text(); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return def
}
