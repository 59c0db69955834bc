package types

import "strings"

// ActionKind is the closed set of command actions.
type ActionKind string

const (
	ActionCreatePart    ActionKind = "create_part"
	ActionCreateFeature ActionKind = "create_feature"
	ActionModify        ActionKind = "modify"
	ActionDelete        ActionKind = "delete"
	ActionUnknown       ActionKind = "unknown"
)

// Command is one modeling instruction recovered from a single AI turn.
// It is immutable once parsed and carries no identity beyond that turn.
type Command struct {
	Action     ActionKind
	Type       string // open vocabulary, normalized to lowercase
	Parameters map[string]ParamValue
}

// NewCommand builds a command with its type lowercased.
func NewCommand(action ActionKind, typ string, params map[string]ParamValue) *Command {
	if params == nil {
		params = make(map[string]ParamValue)
	}
	return &Command{
		Action:     action,
		Type:       strings.ToLower(strings.TrimSpace(typ)),
		Parameters: params,
	}
}

// ParamKind tags the variant held by a ParamValue.
type ParamKind int

const (
	KindNumber ParamKind = iota
	KindBool
	KindText
	KindNested
)

// ParamValue is a tagged union over the value shapes a command
// parameter can take. The zero value is the number 0.
type ParamValue struct {
	kind   ParamKind
	num    float64
	b      bool
	text   string
	nested map[string]ParamValue
}

func Number(v float64) ParamValue { return ParamValue{kind: KindNumber, num: v} }
func Bool(v bool) ParamValue      { return ParamValue{kind: KindBool, b: v} }
func Text(v string) ParamValue    { return ParamValue{kind: KindText, text: v} }

func Nested(m map[string]ParamValue) ParamValue {
	return ParamValue{kind: KindNested, nested: m}
}

func (p ParamValue) Kind() ParamKind { return p.kind }

// Number returns the numeric value and whether the variant is a number.
func (p ParamValue) Number() (float64, bool) { return p.num, p.kind == KindNumber }

// Bool returns the boolean value and whether the variant is a bool.
func (p ParamValue) Bool() (bool, bool) { return p.b, p.kind == KindBool }

// Text returns the string value and whether the variant is text.
func (p ParamValue) Text() (string, bool) { return p.text, p.kind == KindText }

// Nested returns the nested map and whether the variant is an object.
func (p ParamValue) Nested() (map[string]ParamValue, bool) {
	return p.nested, p.kind == KindNested
}
