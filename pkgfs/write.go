package pkgfs

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// ScriptWriter renders the artifacts of a [npmkore.Plan] below a package's
// output directory.
type ScriptWriter struct {
	// MkDirMode is used to create missing artifact directories. Zero
	// disables directory creation.
	MkDirMode fs.FileMode

	// KeepUnchanged skips artifact files whose content on disk already is
	// the artifact's body. This keeps their timestamps.
	KeepUnchanged bool
}

func (wr *ScriptWriter) Write(
	tr *npmkore.Trace, pkg *npmkore.Package,
	outDir string,
	plan *npmkore.Plan,
) error {
	for i := range plan.Artifacts {
		if err := wr.write(tr, pkg, outDir, &plan.Artifacts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (wr *ScriptWriter) write(
	tr *npmkore.Trace, pkg *npmkore.Package,
	outDir string,
	a *npmkore.Artifact,
) error {
	apath, err := pkg.AbsPath(filepath.Join(outDir, filepath.FromSlash(a.Path)))
	if err != nil {
		return err
	}
	if wr.KeepUnchanged {
		if old, err := os.ReadFile(apath); err == nil && bytes.Equal(old, a.Body) {
			tr.Debug("keep unchanged `artifact`", `artifact`, apath)
			return nil
		}
	}
	if wr.MkDirMode != 0 {
		dir := filepath.Dir(apath)
		tr.Debug("create `directory`", `directory`, dir)
		if err = os.MkdirAll(dir, wr.MkDirMode); err != nil {
			return err
		}
	}
	mode := a.Mode
	if mode == 0 {
		mode = 0644
	}
	tr.Debug("write `artifact`", `artifact`, apath)
	return os.WriteFile(apath, a.Body, mode)
}
