// Command avac is a thin driver over internal/compileenv: it wires the
// compilation environment's injected source reader to the filesystem,
// runs compile_file, and renders the P-code textual form or the
// accumulated diagnostics. Concrete code generation to machine code,
// packaging, and everything else spec.md §1 names as external-
// collaborator territory stay out of this command.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thsfranca/avacore/internal/compileenv"
	"github.com/thsfranca/avacore/internal/pcode/textform"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "source file to compile")
		outputFile = flag.String("output", "", "P-code text output file (defaults to stdout)")
		prefix     = flag.String("prefix", "", "package prefix prepended to top-level symbol names")
		verbose    = flag.Bool("verbose", false, "print progress to stderr")
	)
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "compiling: %s\n", *inputFile)
	}

	env := compileenv.New(*prefix, readFile, nil)
	mod := env.CompileFile(*inputFile)

	for _, d := range mod.Errors.All() {
		fmt.Fprintln(os.Stderr, d.RenderText())
	}
	if mod.Errors.HasErrors() {
		os.Exit(1)
	}

	text := textform.Serialize(textform.Encode(mod.PCode))
	if *outputFile == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "wrote: %s\n", *outputFile)
	}
}

// readFile is the compileenv.ReadSourceFunc wired to the local
// filesystem: every compile_file call (the entry file, and any future
// module load) reads one file by its requested name.
func readFile(env *compileenv.Environment, filename string) (bool, []compileenv.SourceEntry, string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return false, nil, err.Error()
	}
	return true, []compileenv.SourceEntry{{Filename: filename, Text: string(content)}}, ""
}
