package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cadagent-org/cadagent/pkg/types"
)

// Inference recovers a command from plain prose when no structured
// object was found, e.g. "add 4 M6 tapped holes 15mm deep". Rules are
// ordered; the first match wins.

var (
	threadRE    = regexp.MustCompile(`\b(m\d+(?:\.\d+)?)\b`)
	dimTripleRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:mm|cm|m|in)?\s*[xX×]\s*(\d+(?:\.\d+)?)\s*(?:mm|cm|m|in)?\s*(?:[xX×]\s*(\d+(?:\.\d+)?)\s*(?:mm|cm|m|in)?)?`)
	numUnitRE   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(mm|cm|m|in|inch)`)

	countREs = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:x\s*)?(?:holes?|threaded|tapped)`),
		regexp.MustCompile(`(?:add|create|make)\s+(\d+)`),
		regexp.MustCompile(`count\s*[:=]?\s*(\d+)`),
		regexp.MustCompile(`(\d+)\s*(?:of|x)\s*(?:m\d+)`),
	}
)

// Infer attempts to build a command from natural-language text.
// Returns nil when no rule applies.
func Infer(text string) *types.Command {
	lower := strings.ToLower(text)

	thread := threadRE.FindString(lower)
	if thread != "" && containsAny(lower, "hole", "threaded", "tap", "thread") {
		depth := firstDim(lower, "depth", 15)
		return inferred("threaded_hole", map[string]types.ParamValue{
			"thread_size": types.Text(strings.ToUpper(thread)),
			"depth":       types.Number(depth),
			"count":       types.Number(float64(extractCount(lower))),
			"units":       types.Text("mm"),
		})
	}

	if containsAny(lower, "longer", "shorter", "wider", "narrower", "thicker", "thinner", "taller", "higher", "deeper") {
		if delta, ok := anyDim(lower); ok {
			if containsAny(lower, "shorter", "narrower", "thinner", "smaller") {
				delta = -delta
			}
			return types.NewCommand(types.ActionKind("modify"), "dimension", map[string]types.ParamValue{
				"delta": types.Number(delta),
				"units": types.Text("mm"),
			})
		}
	}

	if containsAny(lower, "box", "cube", "rectangular", "block", "plate") {
		params := extractBoxDimensions(lower)
		if params == nil {
			params = map[string]types.ParamValue{
				"width":  types.Number(100),
				"height": types.Number(100),
				"depth":  types.Number(50),
				"units":  types.Text("mm"),
			}
		}
		return inferred("box", params)
	}

	if containsAny(lower, "cylinder", "rod", "tube", "pipe", "round") {
		return inferred("cylinder", extractCylinderDimensions(lower))
	}

	if thread == "" && containsAny(lower, "hole", "drill", "bore") {
		return inferred("hole", map[string]types.ParamValue{
			"diameter":    types.Number(firstDim(lower, "diameter", 10)),
			"depth":       types.Number(firstDim(lower, "depth", 20)),
			"through_all": types.Bool(strings.Contains(lower, "through")),
			"units":       types.Text("mm"),
		})
	}

	if containsAny(lower, "fillet", "round", "radius") && !strings.Contains(lower, "corner") {
		radius := firstDim(lower, "radius", 0)
		if radius == 0 {
			radius, _ = anyDimOr(lower, 5)
		}
		return inferred("fillet", map[string]types.ParamValue{
			"radius": types.Number(radius),
			"units":  types.Text("mm"),
		})
	}

	if strings.Contains(lower, "chamfer") {
		distance := firstDim(lower, "distance", 0)
		if distance == 0 {
			distance, _ = anyDimOr(lower, 2)
		}
		return inferred("chamfer", map[string]types.ParamValue{
			"distance": types.Number(distance),
			"angle":    types.Number(45),
			"units":    types.Text("mm"),
		})
	}

	if containsAny(lower, "shell", "hollow") {
		thickness := firstDim(lower, "thickness", 0)
		if thickness == 0 {
			thickness = firstDim(lower, "wall", 2)
		}
		return inferred("shell", map[string]types.ParamValue{
			"thickness": types.Number(thickness),
			"units":     types.Text("mm"),
		})
	}

	if containsAny(lower, "extrude", "extrusion", "boss") {
		depth := firstDim(lower, "depth", 0)
		if depth == 0 {
			depth, _ = anyDimOr(lower, 25)
		}
		return inferred("extrusion", map[string]types.ParamValue{
			"depth": types.Number(depth),
			"units": types.Text("mm"),
		})
	}

	if containsAny(lower, "cut", "pocket", "remove") {
		depth := firstDim(lower, "depth", 0)
		if depth == 0 {
			depth, _ = anyDimOr(lower, 10)
		}
		return inferred("cut", map[string]types.ParamValue{
			"depth":       types.Number(depth),
			"through_all": types.Bool(strings.Contains(lower, "through")),
			"units":       types.Text("mm"),
		})
	}

	if strings.Contains(lower, "pattern") {
		count := extractCount(lower)
		if containsAny(lower, "circular", "radial") {
			return inferred("circular_pattern", map[string]types.ParamValue{
				"count": types.Number(float64(count)),
				"angle": types.Number(360),
			})
		}
		spacing := firstDim(lower, "spacing", 20)
		return inferred("linear_pattern", map[string]types.ParamValue{
			"count_x":   types.Number(float64(count)),
			"count_y":   types.Number(1),
			"spacing_x": types.Number(spacing),
			"spacing_y": types.Number(spacing),
			"units":     types.Text("mm"),
		})
	}

	return nil
}

func inferred(typ string, params map[string]types.ParamValue) *types.Command {
	return types.NewCommand(types.ActionKind("create"), typ, params)
}

// extractCount reads a quantity like "10 holes", "add 5", or
// "count: 8". Defaults to 1 when the text names none.
func extractCount(lower string) int {
	for _, re := range countREs {
		if m := re.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 1
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// extractBoxDimensions handles "100x50x25" style triples and falls
// back to individually named dimensions. Returns nil when the text
// names no usable dimension.
func extractBoxDimensions(lower string) map[string]types.ParamValue {
	if m := dimTripleRE.FindStringSubmatch(lower); m != nil {
		width, _ := strconv.ParseFloat(m[1], 64)
		height, _ := strconv.ParseFloat(m[2], 64)
		depth := width
		if m[3] != "" {
			depth, _ = strconv.ParseFloat(m[3], 64)
		}
		return map[string]types.ParamValue{
			"width":  types.Number(width),
			"height": types.Number(height),
			"depth":  types.Number(depth),
			"units":  types.Text(detectUnit(lower)),
		}
	}

	params := map[string]types.ParamValue{}
	for _, name := range []string{"width", "height", "depth", "length"} {
		if v := namedDim(lower, name); v != 0 {
			key := name
			if name == "length" {
				key = "width"
			}
			if _, dup := params[key]; !dup {
				params[key] = types.Number(v)
			}
		}
	}
	if len(params) == 0 {
		return nil
	}
	params["units"] = types.Text("mm")
	return params
}

func extractCylinderDimensions(lower string) map[string]types.ParamValue {
	diameter := namedDim(lower, "diameter")
	radius := namedDim(lower, "radius")
	height := namedDim(lower, "height")
	if height == 0 {
		height = firstDim(lower, "length", 100)
	}
	if diameter == 0 && radius != 0 {
		diameter = radius * 2
	}
	if diameter == 0 {
		diameter = 50
	}
	return map[string]types.ParamValue{
		"diameter": types.Number(diameter),
		"height":   types.Number(height),
		"units":    types.Text("mm"),
	}
}

func detectUnit(lower string) string {
	switch {
	case strings.Contains(lower, "cm"):
		return "cm"
	case strings.Contains(lower, " m ") || strings.HasSuffix(strings.TrimSpace(lower), " m"):
		return "m"
	case strings.Contains(lower, "in"):
		return "in"
	default:
		return "mm"
	}
}

// namedDim looks for "name: 100mm", "100mm name", or "name of 100mm".
func namedDim(lower, name string) float64 {
	patterns := []string{
		name + `\s*[:=]?\s*(\d+(?:\.\d+)?)\s*(?:mm|cm|m|in)?`,
		`(\d+(?:\.\d+)?)\s*(?:mm|cm|m|in)?\s*` + name,
		name + `\s+(?:of\s+)?(\d+(?:\.\d+)?)\s*(?:mm|cm|m|in)?`,
	}
	for _, p := range patterns {
		if m := regexp.MustCompile(p).FindStringSubmatch(lower); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			return v
		}
	}
	return 0
}

// firstDim prefers the named dimension and falls back to the given
// default, never to an unrelated bare number.
func firstDim(lower, name string, def float64) float64 {
	if v := namedDim(lower, name); v != 0 {
		return v
	}
	return def
}

// anyDim returns the first number carrying a unit suffix.
func anyDim(lower string) (float64, bool) {
	if m := numUnitRE.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v, true
	}
	return 0, false
}

func anyDimOr(lower string, def float64) (float64, bool) {
	if v, ok := anyDim(lower); ok {
		return v, true
	}
	return def, false
}
