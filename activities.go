package npmk

import (
	"context"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/npmk/pkgfs"
)

func NewPlanner(tr *npmkore.Trace, env *npmkore.Env) *npmkore.Planner {
	if tr == nil {
		tr = npmkore.NewTrace(context.Background(), NewDefaultTracer())
	}
	res, _ := npmkore.NewPlanner(tr, env, pkgfs.Detector{}, DefaultScripts()...)
	return res
}

// Scaffold plans the build of the package described by s with the
// [DefaultScripts] builders.
func Scaffold(s *Setup, tr *npmkore.Trace) (*Plan, error) {
	return NewPlanner(tr, nil).Package(s)
}

// WritePlan renders the artifacts of plan below the package's output
// directory outDir. Files whose content is already up to date keep their
// timestamps.
func WritePlan(pkg *Package, outDir string, plan *Plan, tr *npmkore.Trace) error {
	if tr == nil {
		tr = npmkore.NewTrace(context.Background(), NewDefaultTracer())
	}
	wr := pkgfs.ScriptWriter{MkDirMode: 0755, KeepUnchanged: true}
	return wr.Write(tr, pkg, outDir, plan)
}

func Clean(pkg *Package, outDir string, plan *Plan, dryrun bool, tr *npmkore.Trace) error {
	if tr == nil {
		tr = npmkore.NewTrace(context.Background(), NewDefaultTracer())
	}
	return npmkore.Clean(pkg, outDir, plan, dryrun, tr)
}
