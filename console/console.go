// Package console prints validation reports for people at a terminal.
package console

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/meikuraledutech/decision"
	"github.com/meikuraledutech/decision/logging"
)

const (
	ExitValid   = 0
	ExitInvalid = 1
)

const (
	editorURL      = "https://gorules.io/editor"
	importGuideURL = "https://gorules.io/docs"
)

var separator = strings.Repeat("=", 60)

// Run is the CLI entrypoint. args excludes the program name.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decisionlint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	logLevel := fs.String("log-level", "debug", "narration level (debug, info, warn, disabled)")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stdout)
		return ExitInvalid
	}
	if fs.NArg() < 1 {
		printUsage(stdout)
		return ExitInvalid
	}
	path := fs.Arg(0)

	if *asJSON {
		r := decision.New().ValidateFile(path)
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			fmt.Fprintln(stderr, err)
		}
		return exitCode(r)
	}

	fmt.Fprintf(stdout, "\n🔍 Validating GoRules JSON: %s\n", path)
	fmt.Fprintln(stdout, separator)

	v := decision.New(decision.WithLogger(logging.Narrator(stdout, *logLevel)))
	r := v.ValidateFile(path)

	fmt.Fprintln(stdout, "\n"+separator)
	if r.Valid {
		printPassed(stdout, path)
	} else {
		printFailed(stdout, r)
	}
	return exitCode(r)
}

func exitCode(r *decision.Report) int {
	if r.Valid {
		return ExitValid
	}
	return ExitInvalid
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: decisionlint [-json] [-log-level level] <json_file>")
	fmt.Fprintln(w, "\nExample:")
	fmt.Fprintln(w, "  decisionlint AMB-Rules-GoRules.json")
}

func printPassed(w io.Writer, path string) {
	fmt.Fprintln(w, "\n✅ ✅ ✅  VALIDATION PASSED  ✅ ✅ ✅")
	fmt.Fprintln(w, "\n🎉 Your JSON file is valid and ready to import to GoRules!")
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "1. Go to GoRules editor (%s)\n", editorURL)
	fmt.Fprintln(w, "2. Click 'Import' → 'Import JSON'")
	fmt.Fprintf(w, "3. Select: %s\n", path)
	fmt.Fprintln(w, "4. Click 'Import'")
}

func printFailed(w io.Writer, r *decision.Report) {
	fmt.Fprintln(w, "\n❌ ❌ ❌  VALIDATION FAILED  ❌ ❌ ❌")
	fmt.Fprintf(w, "\n%d error(s) found:\n\n", len(r.Diagnostics))
	for _, m := range r.Messages() {
		fmt.Fprintf(w, "  %s\n", m)
	}
	fmt.Fprintln(w, "\n\n🔧 How to fix:")
	fmt.Fprintln(w, "1. Address the errors listed above")
	fmt.Fprintln(w, "2. Run this validator again")
	fmt.Fprintln(w, "3. Repeat until validation passes")
	fmt.Fprintf(w, "\nSee: %s for detailed help\n", importGuideURL)
}
