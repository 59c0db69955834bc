package operation

import (
	"fmt"

	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// Request carries everything a handler needs for one invocation.
type Request struct {
	Ctx    cad.ModelingContext
	Action types.ActionKind
	Params params.Resolved
}

// Handler executes one canonical operation. It performs zero or more
// modeling calls and returns exactly one result; any failed
// intermediate call aborts the handler and surfaces as an Error
// result carrying the underlying cause.
type Handler func(req *Request) types.OperationResult

type entry struct {
	spec    params.Spec
	handler Handler
}

// Registry maps each canonical operation to its parameter spec and
// handler. Adding an operation means adding one entry here, nothing
// else.
type Registry struct {
	entries map[Operation]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[Operation]entry)}
}

func (r *Registry) Register(op Operation, spec params.Spec, h Handler) error {
	if _, exists := r.entries[op]; exists {
		return fmt.Errorf("operation already registered: %s", op)
	}
	r.entries[op] = entry{spec: spec, handler: h}
	return nil
}

func (r *Registry) get(op Operation) (entry, bool) {
	e, ok := r.entries[op]
	return e, ok
}

// Operations returns the registered operation tags.
func (r *Registry) Operations() []Operation {
	out := make([]Operation, 0, len(r.entries))
	for op := range r.entries {
		out = append(out, op)
	}
	return out
}

// DefaultRegistry builds the full operation catalog.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	register := func(op Operation, spec params.Spec, h Handler) {
		// entries are static; a duplicate here is a programming error
		if err := r.Register(op, spec, h); err != nil {
			panic(err)
		}
	}

	register(OpBox, boxSpec(), handleBox)
	register(OpCylinder, cylinderSpec(), handleCylinder)
	register(OpBossOnFace, onFaceSpec(10), handleBossOnFace)
	register(OpCutOnFace, onFaceSpec(5), handleCutOnFace)
	register(OpHole, holeSpec(), handleHole)
	register(OpThreadedHole, threadedHoleSpec(), handleThreadedHole)
	register(OpCounterbore, counterboreSpec(), handleCounterbore)
	register(OpCountersink, counterboreSpec(), handleCountersink)
	register(OpFillet, filletSpec(), handleFillet)
	register(OpChamfer, chamferSpec(), handleChamfer)
	register(OpExtrusion, extrusionSpec(), handleExtrusion)
	register(OpCut, cutSpec(), handleCut)
	register(OpLinearPattern, linearPatternSpec(), handleLinearPattern)
	register(OpCircularPattern, circularPatternSpec(), handleCircularPattern)
	register(OpShell, shellSpec(), handleShell)
	register(OpDimension, dimensionSpec(), handleDimension)
	register(OpScale, scaleSpec(), handleScale)
	register(OpDelete, deleteSpec(), handleDelete)
	return r
}
