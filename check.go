package npmk

import (
	"fmt"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// LintScripts generates the linting script for the package sources.
type LintScripts struct {
	ScriptTool

	// Fix makes the lint script apply automatic fixes.
	Fix bool
}

var _ npmkore.ScriptBuilder = (*LintScripts)(nil)

func (ls *LintScripts) Describe(t *Task, _ *Env) string {
	return ls.describe("lint", t)
}

func (ls *LintScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	sb := ls.newScript()
	if ls.Fix {
		fmt.Fprintf(sb, "npx eslint --fix %s\n", shq(t.SrcDir))
	} else {
		fmt.Fprintf(sb, "npx eslint %s\n", shq(t.SrcDir))
	}
	return ScriptResult{
		Artifacts: []Artifact{ls.artifact(PrioLint, "lint.sh", sb)},
		Deps:      []string{"eslint"},
	}, nil
}

// TestScripts generates the test runner script.
type TestScripts struct {
	ScriptTool

	// Coverage wraps the test run into the c8 coverage tool.
	Coverage bool
}

var _ npmkore.ScriptBuilder = (*TestScripts)(nil)

func (ts *TestScripts) Describe(t *Task, _ *Env) string {
	return ts.describe("test", t)
}

func (ts *TestScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	sb := ts.newScript()
	deps := []string{"mocha"}
	if ts.Coverage {
		fmt.Fprintln(sb, "npx c8 mocha")
		deps = append(deps, "c8")
	} else {
		fmt.Fprintln(sb, "npx mocha")
	}
	return ScriptResult{
		Artifacts: []Artifact{ts.artifact(PrioTest, "test.sh", sb)},
		Deps:      deps,
	}, nil
}

// DocScripts generates the API documentation script.
type DocScripts struct {
	ScriptTool

	// Out is the documentation output directory, "dist/doc" when empty.
	Out string
}

var _ npmkore.ScriptBuilder = (*DocScripts)(nil)

func (ds *DocScripts) Describe(t *Task, _ *Env) string {
	return ds.describe("doc", t)
}

func (ds *DocScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	out := ds.Out
	if out == "" {
		out = "dist/doc"
	}
	sb := ds.newScript()
	fmt.Fprintf(sb, "npx jsdoc -r %s -d %s\n", shq(t.SrcDir), shq(out))
	return ScriptResult{
		Artifacts: []Artifact{ds.artifact(PrioDoc, "doc.sh", sb)},
		Deps:      []string{"jsdoc"},
	}, nil
}
