package pkgfs

import (
	"io/fs"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

// LocateIndex finds the index file among the direct entries of a directory.
// No index file yields the empty name, which is not an error. More than one
// index file is an [npmkore.AmbiguousIndex] error naming all of them. dir is
// only used to give errors context.
func LocateIndex(dir string, entries []fs.DirEntry) (string, error) {
	var names []string
	for _, e := range entries {
		ok, err := IndexFile{}.Ok(e.Name(), e)
		if err != nil {
			return "", err
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	switch len(names) {
	case 0:
		return "", nil
	case 1:
		return names[0], nil
	}
	return "", npmkore.AmbiguousIndex{Dir: dir, Names: names}
}
