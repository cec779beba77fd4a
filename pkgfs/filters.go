package pkgfs

import (
	"io/fs"
	"path/filepath"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

type Filter interface {
	Ok(path string, entry fs.DirEntry) (bool, error)
}

type FilterFunc func(string, fs.DirEntry) (bool, error)

func (ff FilterFunc) Ok(p string, e fs.DirEntry) (bool, error) {
	return ff(p, e)
}

type IsDir bool

func (d IsDir) Ok(_ string, e fs.DirEntry) (bool, error) {
	return e.IsDir() == bool(d), nil
}

type NameMatch string

func (p NameMatch) Ok(_ string, e fs.DirEntry) (bool, error) {
	return filepath.Match(string(p), e.Name())
}

// IndexFile matches the entry point files of npm packages, see
// [npmkore.IndexNames].
type IndexFile struct{}

func (IndexFile) Ok(_ string, e fs.DirEntry) (bool, error) {
	return !e.IsDir() && npmkore.IsIndex(e.Name()), nil
}

// ExeDir matches the executable convention directories of npm packages, see
// [npmkore.ExeDirNames].
type ExeDir struct{}

func (ExeDir) Ok(_ string, e fs.DirEntry) (bool, error) {
	return e.IsDir() && npmkore.IsExeDir(e.Name()), nil
}

type All []Filter

func (fs All) Ok(p string, e fs.DirEntry) (bool, error) {
	for _, f := range fs {
		if ok, err := f.Ok(p, e); err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

type Any []Filter

func (fs Any) Ok(p string, e fs.DirEntry) (bool, error) {
	for _, f := range fs {
		if ok, err := f.Ok(p, e); err != nil {
			return ok, err
		} else if ok {
			return true, nil
		}
	}
	return false, nil
}
