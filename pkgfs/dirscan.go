package pkgfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// DirScan lists the direct entries of one directory of a package that pass
// Filter. Dir is relative to the package root, a nil Filter passes every
// entry.
type DirScan struct {
	Dir    string
	Filter Filter
}

func (d DirScan) Path() string { return d.Dir }

func (d DirScan) List(in *npmkore.Package) (ls []string, err error) {
	pkgDir, err := in.AbsPath(d.Path())
	if err != nil {
		return nil, err
	}
	err = d.ls(pkgDir, func(p string, _ fs.DirEntry) error {
		ls = append(ls, filepath.Join(d.Dir, p))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ls, nil
}

func (d DirScan) Exists(in *npmkore.Package) (bool, error) {
	ap, err := in.AbsPath(d.Path())
	if err != nil {
		return false, err
	}
	st, err := os.Stat(ap)
	switch {
	case err == nil:
		if !st.IsDir() {
			return true, fmt.Errorf("%s is no directory", d.Path())
		}
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	}
	return false, err
}

func (d DirScan) ls(pkgDir string, do func(p string, e fs.DirEntry) error) error {
	rdir, err := os.ReadDir(pkgDir)
	if err != nil {
		return err
	}
	for _, entry := range rdir {
		if d.Filter != nil {
			if ok, err := d.Filter.Ok(entry.Name(), entry); err != nil {
				return err
			} else if !ok {
				continue
			}
		}
		if err := do(entry.Name(), entry); err != nil {
			return err
		}
	}
	return nil
}
