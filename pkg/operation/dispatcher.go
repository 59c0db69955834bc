package operation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/params"
	"github.com/cadagent-org/cadagent/pkg/types"
)

// Dispatcher canonicalizes a parsed command and invokes its handler.
// It never raises: unknown vocabulary, missing selections, and
// modeling failures all come back as OperationResult values, so the
// chat layer is never exposed to a crash from malformed AI output.
//
// Commands must be dispatched one at a time; handlers depend on the
// selection state of the single active CAD session.
type Dispatcher struct {
	registry *Registry
	log      *slog.Logger
}

func NewDispatcher(registry *Registry, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{registry: registry, log: log}
}

// Dispatch runs one command to completion: canonicalize, resolve
// parameters, invoke the handler.
func (d *Dispatcher) Dispatch(cmd *types.Command, mc cad.ModelingContext) (res types.OperationResult) {
	// A concrete ModelingContext wraps a foreign CAD API; anything it
	// throws is converted here, at the handler boundary.
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("modeling call panicked", "type", cmd.Type, "panic", r)
			res = types.Errorf("modeling operation failed: %v", r)
		}
	}()

	action, ok := CanonicalAction(cmd.Action)
	if !ok {
		return types.Errorf("unknown action %q, supported: %s",
			cmd.Action, strings.Join(SupportedActions(), ", "))
	}

	var op Operation
	if action == types.ActionDelete {
		op = OpDelete
	} else {
		op, ok = CanonicalType(cmd.Type)
		if !ok {
			return types.Errorf("unknown type %q, supported: %s",
				cmd.Type, strings.Join(SupportedTypes(), ", "))
		}
	}

	ent, ok := d.registry.get(op)
	if !ok {
		return types.Errorf("operation %s is not available", op)
	}

	raw := cmd.Parameters
	// A bare thread-size type ("m6") doubles as the thread_size
	// parameter unless the command spells one out.
	if op == OpThreadedHole {
		if _, sized := TapDrill(cmd.Type); sized {
			if _, has := raw["thread_size"]; !has {
				raw = cloneParams(raw)
				raw["thread_size"] = types.Text(strings.ToUpper(cmd.Type))
			}
		}
	}

	req := &Request{
		Ctx:    mc,
		Action: action,
		Params: params.Resolve(raw, ent.spec),
	}

	d.log.Info("dispatching command", "action", string(action), "operation", string(op))
	res = ent.handler(req)
	d.log.Info("command finished", "operation", string(op), "status", string(res.Status))
	return res
}

func cloneParams(m map[string]types.ParamValue) map[string]types.ParamValue {
	out := make(map[string]types.ParamValue, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// callFailed wraps a modeling-call error into the uniform Error
// result used by every handler.
func callFailed(what string, err error) types.OperationResult {
	return types.Errorf("%s failed: %v", what, err)
}

// mm renders a base-unit length in millimeters for messages.
func mm(v float64) float64 { return v * 1000 }

func fmtMM(v float64) string { return fmt.Sprintf("%.1f", mm(v)) }
