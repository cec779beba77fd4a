package npmkore

import (
	"os"
	"path/filepath"
	"sync"
)

type PlanID = uint64

// Package is an npm package rooted at directory Dir. The exported API of
// Package is not synchronized, callers that share a Package between
// goroutines use [Package.LockPlan] or the embedded [sync.Mutex].
type Package struct {
	Dir string

	sync.Mutex

	meta     *Meta
	lastPlan PlanID
}

func NewPackage(dir string) *Package {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Package{Dir: dir}
}

func (pkg *Package) String() string {
	tmp := pkg.Dir
	if tmp == "" || tmp == "." {
		tmp, _ = filepath.Abs(tmp)
	}
	return filepath.Base(tmp)
}

// MetaPath returns the path of the package's metadata file.
func (pkg *Package) MetaPath() string { return filepath.Join(pkg.Dir, MetaFile) }

// Meta reads the package's metadata file on first use and caches it for
// subsequent calls.
func (pkg *Package) Meta() (*Meta, error) {
	if pkg.meta == nil {
		m, err := ReadMeta(pkg.MetaPath())
		if err != nil {
			return nil, err
		}
		pkg.meta = m
	}
	return pkg.meta, nil
}

// AbsPath resolves the package-relative path rel against the package
// directory.
func (pkg *Package) AbsPath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	return filepath.Abs(filepath.Join(pkg.Dir, rel))
}

// RelPath makes p relative to the package directory.
func (pkg *Package) RelPath(p string) string {
	var (
		tmp string
		err error
	)
	if pkg.Dir == "" {
		tmp, err = filepath.Rel(".", p)
	} else {
		tmp, err = filepath.Rel(pkg.Dir, p)
	}
	if err != nil {
		return filepath.Clean(p)
	}
	return tmp
}

// LockPlan locks the package for one scaffolding run and returns the run's
// [PlanID]. The caller has to Unlock the package when done.
func (pkg *Package) LockPlan() PlanID {
	pkg.Lock()
	pkg.lastPlan++
	return pkg.lastPlan
}

func (pkg *Package) Plan() PlanID { return pkg.lastPlan }
