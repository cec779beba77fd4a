package npmk

import (
	"fmt"
	"strings"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// ScriptTool carries the conventions shared by the script builders of this
// package.
type ScriptTool struct {
	// Shell is the interpreter line of generated scripts, "#!/bin/sh" when
	// empty.
	Shell string
}

func (t *ScriptTool) shebang() string {
	if t.Shell != "" {
		return t.Shell
	}
	return "#!/bin/sh"
}

func (t *ScriptTool) describe(base string, tsk *Task) string {
	if tsk == nil {
		return base + " scripts"
	}
	return fmt.Sprintf("%s scripts for '%s'", base, tsk.Meta.Name)
}

func (t *ScriptTool) newScript() *strings.Builder {
	var sb strings.Builder
	fmt.Fprintln(&sb, t.shebang())
	fmt.Fprintln(&sb, "set -e")
	return &sb
}

func (t *ScriptTool) artifact(prio int, path string, sb *strings.Builder) Artifact {
	return Artifact{
		Priority: prio,
		Path:     path,
		Body:     []byte(sb.String()),
		Mode:     0755,
	}
}

func shq(s string) string { return "'" + s + "'" }

// InfraScripts generates the plumbing every scaffolded package gets: clean.sh
// removing the build output and all.sh running the enabled steps in order.
type InfraScripts struct {
	ScriptTool

	// Clean lists the directories removed by clean.sh, ["dist"] when empty.
	Clean []string
}

var _ npmkore.ScriptBuilder = (*InfraScripts)(nil)

func (is *InfraScripts) Describe(t *Task, _ *Env) string {
	return is.describe("infra", t)
}

func (is *InfraScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	clean := is.Clean
	if len(clean) == 0 {
		clean = []string{"dist"}
	}
	sb := is.newScript()
	for _, d := range clean {
		fmt.Fprintf(sb, "npx rimraf %s\n", shq(d))
	}

	steps := []string{"clean"}
	if !t.NoLint {
		steps = append(steps, "lint")
	}
	if !t.NoBuild {
		steps = append(steps, "build")
	}
	if !t.NoTest {
		steps = append(steps, "test")
	}
	if !t.NoDoc {
		steps = append(steps, "doc")
	}
	tr.Debug("chain `steps`", `steps`, strings.Join(steps, " "))
	ab := is.newScript()
	fmt.Fprintf(ab, "npx npm-run-all %s\n", strings.Join(steps, " "))

	return ScriptResult{
		Artifacts: []Artifact{
			is.artifact(PrioInfra, "clean.sh", sb),
			is.artifact(PrioInfra, "all.sh", ab),
		},
		Deps: []string{"npm-run-all", "rimraf"},
	}, nil
}

// VarScripts renders package metadata and selected environment tags into
// vars.sh for other scripts to source.
type VarScripts struct {
	ScriptTool

	// Tags names the environment tags exported into vars.sh, e.g. "PREFIX".
	// Tags missing from the environment are warned about and skipped.
	Tags []string
}

var _ npmkore.ScriptBuilder = (*VarScripts)(nil)

func (vs *VarScripts) Describe(t *Task, _ *Env) string {
	return vs.describe("var", t)
}

func (vs *VarScripts) BuildScripts(tr *npmkore.Trace, t *Task, env *Env) (ScriptResult, error) {
	var sb strings.Builder
	fmt.Fprintln(&sb, vs.shebang())
	fmt.Fprintf(&sb, "PKG_NAME=%s\n", shq(t.Meta.Name))
	fmt.Fprintf(&sb, "PKG_VERSION=%s\n", shq(t.Meta.Version))
	fmt.Fprintf(&sb, "SRC_DIR=%s\n", shq(t.SrcDir))
	fmt.Fprintf(&sb, "OUT_DIR=%s\n", shq(t.OutDir))
	for _, tag := range vs.Tags {
		if v, ok := env.Tag(tag); ok {
			fmt.Fprintf(&sb, "%s=%s\n", tag, shq(v))
		} else {
			tr.Warn("no `tag` to export", `tag`, tag)
		}
	}
	return ScriptResult{
		Artifacts: []Artifact{{
			Priority: PrioVars,
			Path:     "vars.sh",
			Body:     []byte(sb.String()),
			Mode:     0644,
		}},
	}, nil
}
