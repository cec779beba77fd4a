package npmkore

import (
	"cmp"
	"io/fs"
	"slices"
)

// Script priorities group the artifacts of a [Plan] into phases. Plans order
// artifacts by ascending priority. Script builders are free to use priorities
// between the predefined ones.
const (
	PrioInfra = 0
	PrioVars  = 10
	PrioLint  = 20
	PrioFiles = 30
	PrioBuild = 40
	PrioTest  = 50
	PrioDoc   = 60
)

// Artifact is one generated file of a [Plan]. Path is slash-separated and
// relative to the setup's output directory.
type Artifact struct {
	Priority int
	Path     string
	Body     []byte
	Mode     fs.FileMode
}

// ScriptResult is the contribution of one [ScriptBuilder] to a [Plan]. Empty
// slices simply contribute nothing.
type ScriptResult struct {
	Artifacts []Artifact
	Deps      []string
}

// Plan is the merged result of all script builders of a setup run.
type Plan struct {
	// Deps names the npm dev dependencies required by the plan's artifacts,
	// lexically sorted and without duplicates.
	Deps []string

	// Artifacts are stably sorted by ascending priority, i.e. artifacts of
	// equal priority keep the order in which their builders were set up.
	Artifacts []Artifact
}

// Aggregate merges script builder results into one [Plan].
func Aggregate(results ...ScriptResult) *Plan {
	plan := new(Plan)
	deps := make(map[string]bool)
	for _, res := range results {
		for _, d := range res.Deps {
			if !deps[d] {
				deps[d] = true
				plan.Deps = append(plan.Deps, d)
			}
		}
		plan.Artifacts = append(plan.Artifacts, res.Artifacts...)
	}
	slices.Sort(plan.Deps)
	slices.SortStableFunc(plan.Artifacts, func(l, r Artifact) int {
		return cmp.Compare(l.Priority, r.Priority)
	})
	return plan
}
