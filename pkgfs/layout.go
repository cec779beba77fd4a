package pkgfs

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// Detector implements npm's directory conventions as [npmkore.LayoutDetector]
// on the real file system: an index file directly in the source directory
// makes the package a single library or, with the executable hint, a single
// executable. Without a root index the "lib" directory and one of the
// executable convention directories are probed independently, so a package
// can provide a library, an executable, both or neither.
type Detector struct{}

var _ npmkore.LayoutDetector = Detector{}

func (dt Detector) DetectLayout(
	tr *npmkore.Trace, pkg *npmkore.Package,
	srcDir, mainEntry string,
	executable bool,
) (*npmkore.Layout, error) {
	srcAbs, err := pkg.AbsPath(srcDir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(srcAbs)
	if err != nil {
		return nil, err
	}
	lay := new(npmkore.Layout)
	rootIdx, err := LocateIndex(srcDir, entries)
	if err != nil {
		return nil, err
	}
	// A root index takes precedence over any sub-layout.
	if rootIdx != "" {
		ep := npmkore.EntryPoint{Path: rootIdx, Name: mainEntry}
		if executable {
			tr.Debug("root `index` is an executable entry point", `index`, rootIdx)
			lay.Exes = append(lay.Exes, ep)
		} else {
			tr.Debug("root `index` is a library entry point", `index`, rootIdx)
			lay.Libs = append(lay.Libs, ep)
		}
		return lay, nil
	}
	if err = dt.libEntry(tr, lay, srcDir, srcAbs, entries, mainEntry); err != nil {
		return nil, err
	}
	if err = dt.exeEntry(tr, lay, srcDir, srcAbs, entries, mainEntry); err != nil {
		return nil, err
	}
	return lay, nil
}

func (dt Detector) libEntry(
	tr *npmkore.Trace, lay *npmkore.Layout,
	srcDir, srcAbs string,
	entries []fs.DirEntry,
	mainEntry string,
) error {
	var libDir fs.DirEntry
	for _, e := range entries {
		if e.IsDir() && e.Name() == "lib" {
			libDir = e
			break
		}
	}
	if libDir == nil {
		return nil
	}
	subEntries, err := os.ReadDir(filepath.Join(srcAbs, libDir.Name()))
	if err != nil {
		return err
	}
	idx, err := LocateIndex(path.Join(srcDir, libDir.Name()), subEntries)
	if err != nil || idx == "" {
		return err
	}
	ep := npmkore.EntryPoint{Path: libDir.Name() + "/" + idx, Name: mainEntry}
	tr.Debug("found library `entry` point", `entry`, ep.String())
	lay.Libs = append(lay.Libs, ep)
	return nil
}

func (dt Detector) exeEntry(
	tr *npmkore.Trace, lay *npmkore.Layout,
	srcDir, srcAbs string,
	entries []fs.DirEntry,
	mainEntry string,
) error {
	var exeDirs []string
	for _, e := range entries {
		ok, err := ExeDir{}.Ok(e.Name(), e)
		if err != nil {
			return err
		}
		if ok {
			exeDirs = append(exeDirs, e.Name())
		}
	}
	switch len(exeDirs) {
	case 0:
		return nil
	case 1: // the one legal executable directory
	default:
		return npmkore.AmbiguousExeDirs{Dir: srcDir, Names: exeDirs}
	}
	subEntries, err := os.ReadDir(filepath.Join(srcAbs, exeDirs[0]))
	if err != nil {
		return err
	}
	idx, err := LocateIndex(path.Join(srcDir, exeDirs[0]), subEntries)
	if err != nil || idx == "" {
		return err
	}
	name, err := npmkore.ExeScriptName(mainEntry)
	if err != nil {
		return err
	}
	ep := npmkore.EntryPoint{Path: exeDirs[0] + "/" + idx, Name: name}
	tr.Debug("found executable `entry` point", `entry`, ep.String())
	lay.Exes = append(lay.Exes, ep)
	return nil
}
