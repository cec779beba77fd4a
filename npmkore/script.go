package npmkore

import "fmt"

// Feature gates a [Script] on one of the feature toggles of a [Setup].
type Feature int

const (
	// FeatAlways runs the script builder regardless of any setup toggle.
	FeatAlways Feature = iota
	FeatBuild
	FeatLint
	FeatTest
	FeatDoc
)

func (f Feature) String() string {
	switch f {
	case FeatAlways:
		return "always"
	case FeatBuild:
		return "build"
	case FeatLint:
		return "lint"
	case FeatTest:
		return "test"
	case FeatDoc:
		return "doc"
	}
	return fmt.Sprintf("feature-%d", int(f))
}

func (f Feature) enabled(s *Setup) bool {
	switch f {
	case FeatBuild:
		return !s.NoBuild
	case FeatLint:
		return !s.NoLint
	case FeatTest:
		return !s.NoTest
	case FeatDoc:
		return !s.NoDoc
	}
	return true
}

// Task is the shared input all script builders of a setup run work on. The
// task must be treated as read-only, builders of one run receive the same
// task concurrently.
type Task struct {
	Pkg  *Package
	Meta Meta

	// SrcDir and OutDir are relative to Pkg.Dir.
	SrcDir, OutDir string

	// Libs and Exes are the buildable entry points of the package, either
	// detected or taken verbatim from the setup.
	Libs, Exes []EntryPoint

	NoBuild, NoLint, NoTest, NoDoc bool
}

// ScriptBuilder generates the build scripts of one concern, e.g. bundling
// libraries or linting sources. Builders contribute their artifacts and npm
// dev dependencies to the plan of a setup run, they do not write files
// themselves.
type ScriptBuilder interface {
	// Describe must also work with nil task and env.
	Describe(t *Task, env *Env) string

	// BuildScripts returns the builder's contribution for task t. Returning
	// an error makes the whole setup run fail with exactly that error.
	BuildScripts(tr *Trace, t *Task, env *Env) (ScriptResult, error)
}

// Script gates a [ScriptBuilder] so that a [Planner] knows when to run it.
type Script struct {
	Gate    Feature
	Builder ScriptBuilder
}
