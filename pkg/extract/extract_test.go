package extract

import (
	"strings"
	"testing"
)

func TestFieldQuotedString(t *testing.T) {
	v, ok := Field(`{"response": "Creating a box now"}`, "response")
	if !ok || v.Shape != ShapeString || v.Text != "Creating a box now" {
		t.Fatalf("unexpected value: %+v ok=%v", v, ok)
	}
}

func TestFieldEscapes(t *testing.T) {
	v, ok := Field(`{"response": "line1\nline2 \"quoted\" tab\there \\ end"}`, "response")
	if !ok {
		t.Fatalf("expected value")
	}
	want := "line1\nline2 \"quoted\" tab\there \\ end"
	if v.Text != want {
		t.Fatalf("unescape mismatch: %q != %q", v.Text, want)
	}
}

func TestFieldNestedObject(t *testing.T) {
	body := `{"command": {"action": "create", "parameters": {"width": 10}}, "response": "ok"}`
	v, ok := Field(body, "command")
	if !ok || v.Shape != ShapeObject {
		t.Fatalf("unexpected value: %+v ok=%v", v, ok)
	}
	if !strings.HasPrefix(v.Text, "{") || !strings.HasSuffix(v.Text, "}") {
		t.Fatalf("object not raw-braced: %q", v.Text)
	}
	if !strings.Contains(v.Text, `"width": 10`) {
		t.Fatalf("nested content missing: %q", v.Text)
	}
}

func TestFieldBareToken(t *testing.T) {
	for _, tc := range []struct {
		body, field, want string
	}{
		{`{"width": 25, "height": 10}`, "width", "25"},
		{`{"through_all": true}`, "through_all", "true"},
		{`{"count": 4}`, "count", "4"},
		{"{\"depth\": 15\n}", "depth", "15"},
	} {
		v, ok := Field(tc.body, tc.field)
		if !ok || v.Shape != ShapeToken || v.Text != tc.want {
			t.Fatalf("Field(%q, %q) = %+v ok=%v", tc.body, tc.field, v, ok)
		}
	}
}

func TestFieldMalformedNeverPanics(t *testing.T) {
	bad := []string{
		``,
		`{"response": "unterminated`,
		`{"command": {"action": "create"`,
		`{"response": }`,
		`{"response"`,
		`"response"`,
		`{"response": "trailing escape\`,
		strings.Repeat("{", 1000),
	}
	for _, b := range bad {
		if _, ok := Field(b, "response"); ok {
			t.Fatalf("expected not found for %q", b)
		}
	}
	if _, ok := Field(`{"command": {"a": 1}}`, "missing"); ok {
		t.Fatalf("missing field must report not found")
	}
}

func TestFieldSkipsNonKeyOccurrences(t *testing.T) {
	body := `{"response": "the word \"command\" appears here", "command": {"action": "delete"}}`
	v, ok := Field(body, "command")
	if !ok || v.Shape != ShapeObject {
		t.Fatalf("should find the real key, got %+v ok=%v", v, ok)
	}
}

func TestBalancedObject(t *testing.T) {
	text := "Sure, here you go:\n```json\n{\"action\": \"create\", \"type\": \"box\"}\n```\nDone."
	raw, ok := BalancedObject(text, "action")
	if !ok || !strings.Contains(raw, `"type": "box"`) {
		t.Fatalf("unexpected span: %q ok=%v", raw, ok)
	}
}

func TestBalancedObjectSkipsUnrelatedSpans(t *testing.T) {
	text := `{"note": "no command"} and then {"action": "delete", "type": "fillet"}`
	raw, ok := BalancedObject(text, "action")
	if !ok || !strings.Contains(raw, `"action"`) || strings.Contains(raw, "note") {
		t.Fatalf("unexpected span: %q ok=%v", raw, ok)
	}
}

func TestBalancedObjectUnbalancedPrefix(t *testing.T) {
	text := `{ broken { "action": "create", "type": "box" }`
	raw, ok := BalancedObject(text, "action")
	if !ok || !strings.Contains(raw, `"action"`) {
		t.Fatalf("inner balanced span should be found: %q ok=%v", raw, ok)
	}
	if _, ok := BalancedObject("no braces at all", "action"); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := BalancedObject(strings.Repeat("{", 500), "action"); ok {
		t.Fatalf("expected not found for unbalanced input")
	}
}
