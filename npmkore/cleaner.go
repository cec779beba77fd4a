package npmkore

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Clean removes the artifact files of plan from the package's output
// directory. Missing files are skipped, a remove error is only warned about.
// With dryrun Clean just traces what it would remove.
func Clean(pkg *Package, outDir string, plan *Plan, dryrun bool, tr *Trace) error {
	pkg.LockPlan()
	defer pkg.Unlock()
	start := time.Now()
	tr = tr.pushPackage(pkg)
	tr.startPackage(pkg, "cleaning")
	for i := range plan.Artifacts {
		a := &plan.Artifacts[i]
		apath, err := pkg.AbsPath(filepath.Join(outDir, filepath.FromSlash(a.Path)))
		if err != nil {
			return err
		}
		if _, err := os.Stat(apath); errors.Is(err, os.ErrNotExist) {
			continue
		}
		tr.removeArtifact(a)
		if !dryrun {
			if err := os.Remove(apath); err != nil {
				tr.Warn(err.Error())
			}
		}
	}
	tr.donePackage(pkg, "cleaning", time.Since(start))
	return nil
}

type CleanTracer interface {
	TracerCommon

	RemoveArtifact(*Trace, *Artifact)
}
