package npmkore

import (
	"fmt"
	"strings"
)

// NoMeta reports a package without usable metadata file. Err keeps the cause
// when reading or decoding the file failed.
type NoMeta struct {
	Path string
	Err  error
}

func (e NoMeta) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no package metadata %s", e.Path)
	}
	return fmt.Sprintf("package metadata %s: %s", e.Path, e.Err)
}

func (e NoMeta) Unwrap() error { return e.Err }

func (NoMeta) Is(target error) bool {
	_, ok := target.(NoMeta)
	return ok
}

// NoMainEntry reports a package metadata file without main entry while layout
// detection requires one.
type NoMainEntry struct {
	Path string
}

func (e NoMainEntry) Error() string {
	return fmt.Sprintf("package metadata %s without main entry", e.Path)
}

func (NoMainEntry) Is(target error) bool {
	_, ok := target.(NoMainEntry)
	return ok
}

// BadMainEntry reports a main entry that does not name a script file, i.e.
// its last path element has none of the extensions ".js", ".mjs" or ".cjs".
type BadMainEntry struct {
	Main string
}

func (e BadMainEntry) Error() string {
	return fmt.Sprintf("main entry '%s' is no script file", e.Main)
}

func (BadMainEntry) Is(target error) bool {
	_, ok := target.(BadMainEntry)
	return ok
}

// NoSrcDir reports a missing source directory.
type NoSrcDir struct {
	Path string
}

func (e NoSrcDir) Error() string {
	return fmt.Sprintf("no source directory %s", e.Path)
}

func (NoSrcDir) Is(target error) bool {
	_, ok := target.(NoSrcDir)
	return ok
}

// AmbiguousIndex reports a directory with more than one index file, see
// [IndexNames].
type AmbiguousIndex struct {
	Dir   string
	Names []string
}

func (e AmbiguousIndex) Error() string {
	return fmt.Sprintf("ambiguous index files in %s: %s",
		e.Dir,
		strings.Join(e.Names, ", "),
	)
}

func (AmbiguousIndex) Is(target error) bool {
	_, ok := target.(AmbiguousIndex)
	return ok
}

// AmbiguousExeDirs reports a source directory with more than one executable
// directory, see [ExeDirNames].
type AmbiguousExeDirs struct {
	Dir   string
	Names []string
}

func (e AmbiguousExeDirs) Error() string {
	return fmt.Sprintf("ambiguous executable directories in %s: %s",
		e.Dir,
		strings.Join(e.Names, ", "),
	)
}

func (AmbiguousExeDirs) Is(target error) bool {
	_, ok := target.(AmbiguousExeDirs)
	return ok
}

// NoBuildable reports a package that provides neither library nor executable
// entry points while build script generation is requested.
type NoBuildable struct {
	Dir string
}

func (e NoBuildable) Error() string {
	return fmt.Sprintf("nothing buildable in %s: neither library nor executable", e.Dir)
}

func (NoBuildable) Is(target error) bool {
	_, ok := target.(NoBuildable)
	return ok
}
