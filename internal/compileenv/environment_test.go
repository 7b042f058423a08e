package compileenv

import (
	"testing"

	"github.com/thsfranca/avacore/internal/diagnostics"
)

func hasCode(bag *diagnostics.Bag, code diagnostics.Code) bool {
	for _, d := range bag.All() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func readFixed(entries ...SourceEntry) ReadSourceFunc {
	return func(env *Environment, filename string) (bool, []SourceEntry, string) {
		return true, entries, ""
	}
}

func TestCompileFileReportsCannotReadSource(t *testing.T) {
	env := New("", func(env *Environment, filename string) (bool, []SourceEntry, string) {
		return false, nil, "no such file"
	}, nil)

	mod := env.CompileFile("missing.vx")
	if !hasCode(mod.Errors, diagnostics.CodeIOCannotReadSource) {
		t.Fatalf("expected C6001, got %v", mod.Errors.All())
	}
}

func TestCompileFileDetectsCyclicDependency(t *testing.T) {
	env := New("", readFixed(SourceEntry{Filename: "a.vx", Text: ""}), nil)
	env.loading = append(env.loading, "a.vx")

	mod := env.CompileFile("a.vx")
	if !hasCode(mod.Errors, diagnostics.CodeIOCyclicDependency) {
		t.Fatalf("expected C6002, got %v", mod.Errors.All())
	}
}

func TestCompileFileEmptySourceProducesInitOnlyProgram(t *testing.T) {
	env := New("", readFixed(SourceEntry{Filename: "empty.vx", Text: ""}), nil)

	mod := env.CompileFile("empty.vx")
	if mod.Errors.HasErrors() {
		t.Fatalf("expected a clean compile, got %v", mod.Errors.All())
	}
	if len(mod.PCode.Globals) != 2 {
		t.Fatalf("expected an init function plus its GlobalInit entry, got %d globals", len(mod.PCode.Globals))
	}
	if mod.XCode == nil {
		t.Fatal("expected the init function to have been structured into X-code")
	}
}

func TestCompileFileNoOperationStatementReportsDiagnostic(t *testing.T) {
	env := New("", readFixed(SourceEntry{Filename: "f.vx", Text: "(foo bar)\n"}), nil)

	mod := env.CompileFile("f.vx")
	if !hasCode(mod.Errors, diagnostics.CodeMacsubNoOperation) {
		t.Fatalf("expected C-no-operation since no intrinsics are registered, got %v", mod.Errors.All())
	}
	if len(mod.PCode.Globals) != 0 {
		t.Fatal("expected code generation to be skipped when macro substitution already reported an error")
	}
}

func TestCompileFileCachesByFilename(t *testing.T) {
	calls := 0
	env := New("", func(env *Environment, filename string) (bool, []SourceEntry, string) {
		calls++
		return true, []SourceEntry{{Filename: filename, Text: ""}}, ""
	}, nil)

	first := env.CompileFile("once.vx")
	second := env.CompileFile("once.vx")
	if first != second {
		t.Fatal("expected the cached Module to be returned on the second call")
	}
	if calls != 1 {
		t.Fatalf("expected ReadSource to run once, got %d calls", calls)
	}
}
