package npmkore

import (
	"fmt"
	"path"
	"strings"
)

// IndexNames lists the file names that make a directory an entry point of an
// npm package. A directory must not contain more than one of them.
var IndexNames = []string{"index.js", "index.mjs", "index.cjs"}

// IsIndex returns whether name is one of [IndexNames].
func IsIndex(name string) bool {
	switch name {
	case "index.js", "index.mjs", "index.cjs":
		return true
	}
	return false
}

// ExeDirNames lists the directory names that mark the executable part of a
// package's source directory. A source directory must not contain more than
// one of them.
var ExeDirNames = []string{"bin", "cli", "exec", "executable"}

// IsExeDir returns whether name is one of [ExeDirNames].
func IsExeDir(name string) bool {
	switch name {
	case "bin", "cli", "exec", "executable":
		return true
	}
	return false
}

// EntryPoint binds a script file of a package, given by its slash-separated
// path relative to the source directory, to the name its build output shall
// have.
type EntryPoint struct {
	Path string
	Name string
}

func (ep EntryPoint) String() string { return ep.Path + ":" + ep.Name }

// ParseEntryPoint parses the "path:name" form written by
// [EntryPoint.String].
func ParseEntryPoint(s string) (EntryPoint, error) {
	p, n, ok := strings.Cut(s, ":")
	if !ok || p == "" || n == "" {
		return EntryPoint{}, fmt.Errorf("illegal entry point '%s'", s)
	}
	return EntryPoint{Path: p, Name: n}, nil
}

// Layout is what layout detection finds in a package's source directory.
type Layout struct {
	Libs []EntryPoint
	Exes []EntryPoint
}

func (l *Layout) Empty() bool { return len(l.Libs) == 0 && len(l.Exes) == 0 }

// ExeScriptName derives the output name of an executable entry point from
// the main entry of the package metadata: the script extension of main's last
// path element is replaced by "-exec.js". A main entry without script
// extension is a [BadMainEntry] error.
func ExeScriptName(mainEntry string) (string, error) {
	base := path.Base(mainEntry)
	switch ext := path.Ext(base); ext {
	case ".js", ".mjs", ".cjs":
		return strings.TrimSuffix(base, ext) + "-exec.js", nil
	}
	return "", BadMainEntry{Main: mainEntry}
}
