package npmkore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// LayoutDetector finds the buildable entry points of a package below its
// source directory. The pkgfs package provides the detector for real file
// systems.
type LayoutDetector interface {
	DetectLayout(tr *Trace, pkg *Package, srcDir, mainEntry string, executable bool) (*Layout, error)
}

// Planner runs the script builders of a [Setup] and merges their results
// into a [Plan]. A Planner must not be used concurrently.
type Planner struct {
	trace   *Trace
	env     *Env
	detect  LayoutDetector
	scripts []Script

	// OutDirMode is used to create missing output directories.
	OutDirMode fs.FileMode
}

func NewPlanner(tr *Trace, env *Env, detect LayoutDetector, scripts ...Script) (*Planner, error) {
	if tr == nil {
		return nil, errors.New("no trace for new planner")
	}
	if detect == nil {
		return nil, errors.New("no layout detector for new planner")
	}
	return &Planner{
		trace:      tr,
		env:        env,
		detect:     detect,
		scripts:    scripts,
		OutDirMode: 0755,
	}, nil
}

func (pl *Planner) Trace() *Trace { return pl.trace }

// Package scaffolds the build of the package described by s. It either
// returns the complete plan or the error of the first thing that went wrong,
// never both.
func (pl *Planner) Package(s *Setup) (*Plan, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	pkg := NewPackage(s.Dir)
	pkg.LockPlan()
	defer pkg.Unlock()
	if pl.env == nil {
		pl.env = DefaultEnv(pl.trace)
	}
	return pl.setupPkg(pl.trace, pkg, s)
}

func (pl *Planner) setupPkg(tr *Trace, pkg *Package, s *Setup) (*Plan, error) {
	start := time.Now()
	tr = tr.pushPackage(pkg)
	tr.startPackage(pkg, "scaffolding")
	task, err := pl.pkgTask(tr, pkg, s)
	if err != nil {
		return nil, err
	}
	outDir, err := pkg.AbsPath(s.OutDir)
	if err != nil {
		return nil, err
	}
	tr.Debug("create output `directory`", `directory`, outDir)
	if err = os.MkdirAll(outDir, pl.OutDirMode); err != nil {
		return nil, err
	}
	plan, err := pl.runScripts(tr, task, s)
	if err != nil {
		return nil, err
	}
	tr.donePackage(pkg, "scaffolding", time.Since(start))
	return plan, nil
}

// pkgTask checks the preconditions of a setup run and assembles the task for
// the script builders. Layout detection only runs when the setup has no
// explicit entry points.
func (pl *Planner) pkgTask(tr *Trace, pkg *Package, s *Setup) (*Task, error) {
	if _, err := os.Stat(pkg.MetaPath()); err != nil {
		return nil, NoMeta{Path: pkg.MetaPath(), Err: err}
	}
	srcDir, err := pkg.AbsPath(s.SrcDir)
	if err != nil {
		return nil, err
	}
	if st, err := os.Stat(srcDir); err != nil || !st.IsDir() {
		return nil, NoSrcDir{Path: srcDir}
	}
	meta, err := pkg.Meta()
	if err != nil {
		return nil, err
	}
	task := &Task{
		Pkg:     pkg,
		Meta:    *meta,
		SrcDir:  s.SrcDir,
		OutDir:  s.OutDir,
		Libs:    s.Libs,
		Exes:    s.Exes,
		NoBuild: s.NoBuild,
		NoLint:  s.NoLint,
		NoTest:  s.NoTest,
		NoDoc:   s.NoDoc,
	}
	if s.Name != "" {
		task.Meta.Name = s.Name
	}
	if s.Version != "" {
		task.Meta.Version = s.Version
	}
	if len(task.Libs) == 0 && len(task.Exes) == 0 {
		if meta.Main == "" {
			return nil, NoMainEntry{Path: pkg.MetaPath()}
		}
		tr.detectLayout(pkg, s.SrcDir)
		lay, err := pl.detect.DetectLayout(tr, pkg, s.SrcDir, meta.Main, s.Executable)
		if err != nil {
			return nil, err
		}
		tr.layoutFound(pkg, lay)
		task.Libs, task.Exes = lay.Libs, lay.Exes
	}
	if len(task.Libs) == 0 && len(task.Exes) == 0 && !s.NoBuild {
		return nil, NoBuildable{Dir: pkg.Dir}
	}
	return task, nil
}

// runScripts fans the enabled script builders out to one goroutine each and
// joins them. The first builder error fails the run, successful results are
// then dropped without aggregation.
func (pl *Planner) runScripts(tr *Trace, task *Task, s *Setup) (*Plan, error) {
	on := bitset.New(uint(len(pl.scripts)))
	for i, sc := range pl.scripts {
		if sc.Gate.enabled(s) {
			on.Set(uint(i))
		} else {
			tr.pushBuilder(sc.Builder).skipScripts(sc.Builder)
		}
	}
	results := make([]ScriptResult, len(pl.scripts))
	grp, ctx := errgroup.WithContext(tr.Ctx())
	for i, ok := on.NextSet(0); ok; i, ok = on.NextSet(i + 1) {
		sc := pl.scripts[i]
		res := &results[i]
		str := tr.pushBuilder(sc.Builder).withCtx(ctx)
		grp.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					switch p := p.(type) {
					case error:
						err = fmt.Errorf("%s: %w", sc.Builder.Describe(nil, nil), p)
					default:
						err = fmt.Errorf("%s: panic: %+v", sc.Builder.Describe(nil, nil), p)
					}
				}
			}()
			str.runScripts(sc.Builder)
			tmp, err := sc.Builder.BuildScripts(str, task, pl.env)
			if err != nil {
				return err
			}
			*res = tmp
			str.scriptsDone(sc.Builder, &tmp)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return Aggregate(results...), nil
}
