// Package operation canonicalizes parsed commands against a fixed
// catalog of modeling operations and dispatches each to its handler.
// The vocabulary is synonym-rich on purpose: the AI is free to say
// "cube" or "block", the catalog knows both mean Box.
package operation

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// Operation is the canonical, alias-resolved identifier of one
// modeling operation.
type Operation string

const (
	OpBox             Operation = "box"
	OpCylinder        Operation = "cylinder"
	OpBossOnFace      Operation = "boss_on_face"
	OpCutOnFace       Operation = "cut_on_face"
	OpHole            Operation = "hole"
	OpThreadedHole    Operation = "threaded_hole"
	OpCounterbore     Operation = "counterbore"
	OpCountersink     Operation = "countersink"
	OpFillet          Operation = "fillet"
	OpChamfer         Operation = "chamfer"
	OpExtrusion       Operation = "extrusion"
	OpCut             Operation = "cut"
	OpLinearPattern   Operation = "linear_pattern"
	OpCircularPattern Operation = "circular_pattern"
	OpShell           Operation = "shell"
	OpDimension       Operation = "dimension"
	OpScale           Operation = "scale"
	OpDelete          Operation = "delete"
)

// actionSynonyms reduces the accepted action spellings to the closed
// ActionKind set.
var actionSynonyms = map[string]types.ActionKind{
	"create_part":    types.ActionCreatePart,
	"new_part":       types.ActionCreatePart,
	"create_feature": types.ActionCreateFeature,
	"create":         types.ActionCreateFeature,
	"add":            types.ActionCreateFeature,
	"modify":         types.ActionModify,
	"modify_feature": types.ActionModify,
	"edit":           types.ActionModify,
	"delete":         types.ActionDelete,
	"remove":         types.ActionDelete,
}

// typeSynonyms reduces the accepted type spellings to the canonical
// operation tags. Metric thread sizes are handled separately.
var typeSynonyms = map[string]Operation{
	"box":         OpBox,
	"rectangular": OpBox,
	"rectangle":   OpBox,
	"block":       OpBox,
	"cube":        OpBox,

	"cylinder":    OpCylinder,
	"cylindrical": OpCylinder,
	"rod":         OpCylinder,
	"circle":      OpCylinder,

	"boss_on_face":      OpBossOnFace,
	"extrude_on_face":   OpBossOnFace,
	"rectangle_on_face": OpBossOnFace,

	"cut_on_face":    OpCutOnFace,
	"pocket_on_face": OpCutOnFace,

	"hole":        OpHole,
	"simple_hole": OpHole,

	"threaded_hole": OpThreadedHole,
	"tapped_hole":   OpThreadedHole,

	"counterbore":      OpCounterbore,
	"counterbore_hole": OpCounterbore,
	"countersink":      OpCountersink,
	"countersink_hole": OpCountersink,

	"fillet": OpFillet,
	"round":  OpFillet,

	"chamfer": OpChamfer,

	"extrusion": OpExtrusion,
	"extrude":   OpExtrusion,
	"boss":      OpExtrusion,

	"cut":         OpCut,
	"cut_extrude": OpCut,
	"pocket":      OpCut,

	"pattern":          OpLinearPattern,
	"linear_pattern":   OpLinearPattern,
	"circular_pattern": OpCircularPattern,

	"shell": OpShell,

	"dimension": OpDimension,
	"size":      OpDimension,
	"length":    OpDimension,

	"scale": OpScale,
}

// CanonicalAction resolves an action spelling to the closed set. A
// near-miss spelling (substring containment or edit distance <= 2 on
// reasonably long tokens) is accepted, mirroring the leniency the AI
// input demands.
func CanonicalAction(raw types.ActionKind) (types.ActionKind, bool) {
	s := strings.ToLower(strings.TrimSpace(string(raw)))
	if s == "" {
		return types.ActionUnknown, false
	}
	if a, ok := actionSynonyms[s]; ok {
		return a, true
	}
	if len(s) < 4 {
		return types.ActionUnknown, false
	}
	// Near-miss pass runs in sorted spelling order so ambiguous
	// inputs resolve the same way every time.
	for _, spelling := range SupportedActions() {
		if strings.Contains(s, spelling) || strings.Contains(spelling, s) {
			return actionSynonyms[spelling], true
		}
		if levenshtein.ComputeDistance(s, spelling) <= 2 {
			return actionSynonyms[spelling], true
		}
	}
	return types.ActionUnknown, false
}

// CanonicalType resolves a type spelling to its operation. Metric
// thread sizes (m2..m20) canonicalize to ThreadedHole; the dispatcher
// carries the size over into the thread_size parameter.
func CanonicalType(raw string) (Operation, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	if op, ok := typeSynonyms[s]; ok {
		return op, true
	}
	if _, ok := TapDrill(s); ok {
		return OpThreadedHole, true
	}
	return "", false
}

// SupportedActions lists the accepted action spellings, sorted.
func SupportedActions() []string {
	out := make([]string, 0, len(actionSynonyms))
	for s := range actionSynonyms {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SupportedTypes lists the accepted type spellings, sorted, with the
// thread sizes collapsed to a single m2..m20 entry.
func SupportedTypes() []string {
	out := make([]string, 0, len(typeSynonyms)+1)
	for s := range typeSynonyms {
		out = append(out, s)
	}
	out = append(out, "m2..m20")
	sort.Strings(out)
	return out
}
