// Package parser turns one raw AI response body into at most one
// modeling command. The input is untrusted LLM output: the command
// object may be wrapped in prose or markdown fences, partially
// malformed, or absent entirely. Absence is a normal outcome here,
// never an error.
package parser

import (
	"strconv"
	"strings"

	"github.com/cadagent-org/cadagent/pkg/extract"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// parameterKeys is the closed superset of parameter names any
// operation consumes. Keys the AI invents outside this list are
// silently ignored; every handler declares exactly what it reads.
var parameterKeys = []string{
	"width", "height", "depth", "length",
	"x", "y", "z",
	"diameter", "radius",
	"count", "count_x", "count_y",
	"spacing", "spacing_x", "spacing_y",
	"thread_size", "face", "plane", "name",
	"units", "through_all",
	"delta", "value", "thickness", "distance", "angle",
}

// Parsed is the outcome of scanning one response body.
type Parsed struct {
	// Message is the human-readable text, independent of whether a
	// command was recovered.
	Message string

	// Command is the recovered command, nil when the turn carries none.
	Command *types.Command

	// ProviderError is a backend-side failure surfaced in the body's
	// "error" field.
	ProviderError string
}

// Parse scans a response body for a display message and an optional
// embedded command. It is total: malformed input yields a Parsed with
// no command, never a panic or error.
func Parse(body string) Parsed {
	p := Parsed{Message: body}

	if v, ok := extract.Field(body, "error"); ok && isPresent(v) {
		p.ProviderError = v.Text
	}

	if v, ok := extract.Field(body, "response"); ok && v.Shape == extract.ShapeString {
		p.Message = v.Text
	}

	// Preferred path: a top-level "command" object.
	if v, ok := extract.Field(body, "command"); ok && v.Shape == extract.ShapeObject {
		if cmd, ok := decodeCommand(v.Text); ok {
			p.Command = cmd
			return p
		}
	}

	// Fallback: the first balanced object in the message that carries
	// an "action" key, e.g. a fenced JSON block inside the prose.
	if raw, ok := extract.BalancedObject(p.Message, "action"); ok {
		if cmd, ok := decodeCommand(raw); ok {
			p.Command = cmd
		}
	}
	return p
}

// decodeCommand decodes a raw brace-balanced object into a Command.
// action and type are required; parameters are optional.
func decodeCommand(raw string) (*types.Command, bool) {
	action, ok := scalarField(raw, "action")
	if !ok || action == "" {
		return nil, false
	}
	typ, ok := scalarField(raw, "type")
	if !ok || typ == "" {
		return nil, false
	}

	params := map[string]types.ParamValue{}
	if v, ok := extract.Field(raw, "parameters"); ok && v.Shape == extract.ShapeObject {
		params = decodeParameters(v.Text)
	}

	return types.NewCommand(types.ActionKind(strings.ToLower(strings.TrimSpace(action))), typ, params), true
}

// decodeParameters runs the closed key scan over a raw parameter
// object, typing each value by shape.
func decodeParameters(raw string) map[string]types.ParamValue {
	params := make(map[string]types.ParamValue)
	for _, key := range parameterKeys {
		v, ok := extract.Field(raw, key)
		if !ok {
			continue
		}
		if pv, ok := typeValue(v); ok {
			params[key] = pv
		}
	}
	return params
}

func typeValue(v extract.RawValue) (types.ParamValue, bool) {
	switch v.Shape {
	case extract.ShapeObject:
		return types.Nested(decodeParameters(v.Text)), true
	default:
		t := strings.TrimSpace(v.Text)
		if t == "" || strings.EqualFold(t, "null") {
			return types.ParamValue{}, false
		}
		if n, err := strconv.ParseFloat(t, 64); err == nil {
			return types.Number(n), true
		}
		if strings.EqualFold(t, "true") {
			return types.Bool(true), true
		}
		if strings.EqualFold(t, "false") {
			return types.Bool(false), true
		}
		return types.Text(t), true
	}
}

func scalarField(raw, name string) (string, bool) {
	v, ok := extract.Field(raw, name)
	if !ok || v.Shape == extract.ShapeObject {
		return "", false
	}
	t := strings.TrimSpace(v.Text)
	if t == "" || strings.EqualFold(t, "null") {
		return "", false
	}
	return t, true
}

func isPresent(v extract.RawValue) bool {
	t := strings.TrimSpace(v.Text)
	return t != "" && !strings.EqualFold(t, "null")
}
