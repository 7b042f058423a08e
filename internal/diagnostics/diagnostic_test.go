package diagnostics

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDiagnostic_RenderText(t *testing.T) {
	loc := Location{Filename: "foo.av", Source: "bar baz\n", StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 4}
	d := New(CodeParseUnexpectedToken, SeverityError, loc, nil)

	txt := d.RenderText()
	if !strings.Contains(txt, "[C3001]") {
		t.Fatalf("RenderText missing code: %s", txt)
	}
	if !strings.Contains(txt, "error:") {
		t.Fatalf("RenderText missing severity: %s", txt)
	}
	if !strings.Contains(txt, "bar baz") {
		t.Fatalf("RenderText missing source line: %s", txt)
	}
	if !strings.Contains(txt, "^^^") {
		t.Fatalf("RenderText missing caret underline: %s", txt)
	}
}

func TestDiagnostic_TemplateSubstitution(t *testing.T) {
	d := New(CodeSymbolUnbound, SeverityError, Location{}, map[string]any{"Name": "frobnicate"})
	if !strings.Contains(d.renderMessage(), "frobnicate") {
		t.Fatalf("expected template substitution, got %q", d.renderMessage())
	}
}

func TestDiagnostic_RenderJSON(t *testing.T) {
	d := New(CodeXcodeUninitReg, SeverityError, Location{Filename: "x.av", StartLine: 3, StartCol: 2}, map[string]any{"Class": "d", "Index": 0})
	b, err := d.RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if m["code"] != "C5005" {
		t.Fatalf("expected code C5005, got %v", m["code"])
	}
}

func TestBag_OrderingAndHasErrors(t *testing.T) {
	bag := NewBag()
	if bag.HasErrors() {
		t.Fatal("empty bag should have no errors")
	}
	bag.Add(New(CodeLexIllegalChar, SeverityError, Location{StartLine: 1}, nil))
	bag.Add(New(CodeLexUnterminated, SeverityError, Location{StartLine: 2}, nil))

	all := bag.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(all))
	}
	if all[0].Code != CodeLexIllegalChar || all[1].Code != CodeLexUnterminated {
		t.Fatalf("diagnostics not in discovery order: %+v", all)
	}
	if !bag.HasErrors() {
		t.Fatal("expected HasErrors true")
	}
}
