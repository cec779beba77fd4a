package npmkore

import (
	"encoding/json"
	"os"
)

// MetaFile is the name of the metadata file that every npm package must have
// in its root directory.
const MetaFile = "package.json"

// Meta holds the part of a package's metadata that is relevant for
// scaffolding its build.
type Meta struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	License     string `json:"license,omitempty"`

	// Main is the slash-separated path of the package's main script, relative
	// to the package root.
	Main string `json:"main,omitempty"`
}

// ReadMeta reads the metadata file at path. Failures to read or decode the
// file are returned as [NoMeta].
func ReadMeta(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NoMeta{Path: path, Err: err}
	}
	m := new(Meta)
	if err = json.Unmarshal(data, m); err != nil {
		return nil, NoMeta{Path: path, Err: err}
	}
	return m, nil
}
