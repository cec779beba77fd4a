package npmk

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/npmk/pkgfs"
)

// DataScripts generates a script copying the data files of the package into
// the build output. Packages without data directory get no script.
type DataScripts struct {
	ScriptTool

	// Dir is the data directory relative to the package root, "data" when
	// empty.
	Dir string

	// Match filters the copied files, "*" when empty.
	Match string
}

var _ npmkore.ScriptBuilder = (*DataScripts)(nil)

func (ds *DataScripts) Describe(t *Task, _ *Env) string {
	return ds.describe("data", t)
}

func (ds *DataScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	dir := ds.Dir
	if dir == "" {
		dir = "data"
	}
	return copyScripts(tr, t, &ds.ScriptTool, dir, ds.Match, "copy-data.sh")
}

// ResourceScripts generates a script copying the resource files of the
// package into the build output. Packages without resource directory get no
// script.
type ResourceScripts struct {
	ScriptTool

	// Dir is the resource directory relative to the package root, "res" when
	// empty.
	Dir string

	// Match filters the copied files, "*" when empty.
	Match string
}

var _ npmkore.ScriptBuilder = (*ResourceScripts)(nil)

func (rs *ResourceScripts) Describe(t *Task, _ *Env) string {
	return rs.describe("resource", t)
}

func (rs *ResourceScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	dir := rs.Dir
	if dir == "" {
		dir = "res"
	}
	return copyScripts(tr, t, &rs.ScriptTool, dir, rs.Match, "copy-res.sh")
}

func copyScripts(
	tr *npmkore.Trace, t *Task,
	tool *ScriptTool,
	dir, match, script string,
) (ScriptResult, error) {
	if match == "" {
		match = "*"
	}
	scan := pkgfs.DirScan{Dir: dir, Filter: pkgfs.All{
		pkgfs.IsDir(false),
		pkgfs.NameMatch(match),
	}}
	if ok, err := scan.Exists(t.Pkg); err != nil {
		return ScriptResult{}, err
	} else if !ok {
		tr.Debug("no `directory` to copy from", `directory`, dir)
		return ScriptResult{}, nil
	}
	files, err := scan.List(t.Pkg)
	if err != nil {
		return ScriptResult{}, err
	}
	if len(files) == 0 {
		return ScriptResult{}, nil
	}
	sb := tool.newScript()
	fmt.Fprintf(sb, "# covers %d file(s)\n", len(files))
	fmt.Fprintf(sb, "npx cpy %s %s --parents\n", shq(path.Join(dir, "**")), shq("dist"))
	return ScriptResult{
		Artifacts: []Artifact{tool.artifact(PrioFiles, script, sb)},
		Deps:      []string{"cpy-cli"},
	}, nil
}

// PlainScripts adopts ready-made script files of the package verbatim into
// the plan, e.g. hand-written maintenance scripts that shall live next to
// the generated ones.
type PlainScripts struct {
	// Dir is relative to the package root, the package root itself when
	// empty.
	Dir string

	// Match filters the adopted files, "*.sh" when empty.
	Match string
}

var _ npmkore.ScriptBuilder = (*PlainScripts)(nil)

func (ps *PlainScripts) Describe(t *Task, _ *Env) string {
	if t == nil {
		return "plain scripts"
	}
	return fmt.Sprintf("plain scripts for '%s'", t.Meta.Name)
}

func (ps *PlainScripts) BuildScripts(tr *npmkore.Trace, t *Task, _ *Env) (ScriptResult, error) {
	match := ps.Match
	if match == "" {
		match = "*.sh"
	}
	scan := pkgfs.DirScan{Dir: ps.Dir, Filter: pkgfs.All{
		pkgfs.IsDir(false),
		pkgfs.NameMatch(match),
	}}
	if ok, err := scan.Exists(t.Pkg); err != nil {
		return ScriptResult{}, err
	} else if !ok {
		return ScriptResult{}, nil
	}
	files, err := scan.List(t.Pkg)
	if err != nil {
		return ScriptResult{}, err
	}
	var res ScriptResult
	for _, f := range files {
		apath, err := t.Pkg.AbsPath(f)
		if err != nil {
			return ScriptResult{}, err
		}
		body, err := os.ReadFile(apath)
		if err != nil {
			return ScriptResult{}, err
		}
		st, err := os.Stat(apath)
		if err != nil {
			return ScriptResult{}, err
		}
		tr.Debug("adopt `script`", `script`, f)
		res.Artifacts = append(res.Artifacts, Artifact{
			Priority: PrioFiles,
			Path:     filepath.Base(f),
			Body:     body,
			Mode:     st.Mode().Perm(),
		})
	}
	return res, nil
}
