package npmk

import (
	"fmt"
	"path"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// LibScripts generates the bundling script for the library entry points of
// the package. Packages without library entry points get no script.
type LibScripts struct {
	ScriptTool

	// Format is esbuild's output format, "esm" when empty.
	Format string
}

var _ npmkore.ScriptBuilder = (*LibScripts)(nil)

func (ls *LibScripts) Describe(t *Task, _ *Env) string {
	return ls.describe("lib", t)
}

func (ls *LibScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	if len(t.Libs) == 0 {
		return ScriptResult{}, nil
	}
	format := ls.Format
	if format == "" {
		format = "esm"
	}
	sb := ls.newScript()
	for _, ep := range t.Libs {
		src := path.Join(t.SrcDir, ep.Path)
		out := path.Join("dist", ep.Name)
		tr.Debug("bundle `lib` to `output`", `lib`, src, `output`, out)
		fmt.Fprintf(sb, "npx esbuild %s --bundle --format=%s --outfile=%s\n",
			shq(src), format, shq(out))
	}
	return ScriptResult{
		Artifacts: []Artifact{ls.artifact(PrioBuild, "build-lib.sh", sb)},
		Deps:      []string{"esbuild"},
	}, nil
}

// ExeScripts generates the bundling script for the executable entry points
// of the package. Executables are bundled for node with a shebang banner and
// made executable. Packages without executable entry points get no script.
type ExeScripts struct {
	ScriptTool
}

var _ npmkore.ScriptBuilder = (*ExeScripts)(nil)

func (es *ExeScripts) Describe(t *Task, _ *Env) string {
	return es.describe("exe", t)
}

func (es *ExeScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	if len(t.Exes) == 0 {
		return ScriptResult{}, nil
	}
	sb := es.newScript()
	for _, ep := range t.Exes {
		src := path.Join(t.SrcDir, ep.Path)
		out := path.Join("dist/bin", ep.Name)
		tr.Debug("bundle `exe` to `output`", `exe`, src, `output`, out)
		fmt.Fprintf(sb,
			"npx esbuild %s --bundle --platform=node --banner:js='#!/usr/bin/env node' --outfile=%s\n",
			shq(src), shq(out))
		fmt.Fprintf(sb, "chmod +x %s\n", shq(out))
	}
	return ScriptResult{
		Artifacts: []Artifact{es.artifact(PrioBuild, "build-exe.sh", sb)},
		Deps:      []string{"esbuild"},
	}, nil
}
