package npmkore

import (
	"fmt"
	"path/filepath"
)

// Setup configures one [Planner.Package] run.
type Setup struct {
	// Dir is the package root. Empty for the current working directory.
	Dir string

	// SrcDir is the source directory relative to Dir, "src" by default.
	SrcDir string

	// OutDir is the directory for generated scripts relative to Dir,
	// "scripts" by default. It is created if it does not exist.
	OutDir string

	// Name and Version override the package metadata for script builders.
	Name, Version string

	// Executable makes layout detection treat an index file found directly
	// in SrcDir as executable instead of library entry point.
	Executable bool

	// Libs and Exes, when not both empty, skip layout detection.
	Libs, Exes []EntryPoint

	NoBuild, NoLint, NoTest, NoDoc bool
}

// Check fills in the setup's defaults and validates it. [Planner.Package]
// calls Check before anything else.
func (s *Setup) Check() error {
	if s.SrcDir == "" {
		s.SrcDir = "src"
	}
	if s.OutDir == "" {
		s.OutDir = "scripts"
	}
	if filepath.IsAbs(s.SrcDir) {
		return fmt.Errorf("source directory %s is not package-relative", s.SrcDir)
	}
	if filepath.IsAbs(s.OutDir) {
		return fmt.Errorf("output directory %s is not package-relative", s.OutDir)
	}
	for _, ep := range s.Libs {
		if ep.Path == "" || ep.Name == "" {
			return fmt.Errorf("incomplete library entry point '%s'", ep)
		}
	}
	for _, ep := range s.Exes {
		if ep.Path == "" || ep.Name == "" {
			return fmt.Errorf("incomplete executable entry point '%s'", ep)
		}
	}
	return nil
}
