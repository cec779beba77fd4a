package npmk

import (
	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

type (
	Env          = npmkore.Env
	Package      = npmkore.Package
	Setup        = npmkore.Setup
	Task         = npmkore.Task
	Script       = npmkore.Script
	ScriptResult = npmkore.ScriptResult
	Artifact     = npmkore.Artifact
	Plan         = npmkore.Plan
	EntryPoint   = npmkore.EntryPoint
	Layout       = npmkore.Layout
)

func DefaultEnv(tr *npmkore.Trace) *Env { return npmkore.DefaultEnv(tr) }

func NewPackage(dir string) *Package { return npmkore.NewPackage(dir) }

const (
	FeatAlways = npmkore.FeatAlways
	FeatBuild  = npmkore.FeatBuild
	FeatLint   = npmkore.FeatLint
	FeatTest   = npmkore.FeatTest
	FeatDoc    = npmkore.FeatDoc
)

const (
	PrioInfra = npmkore.PrioInfra
	PrioVars  = npmkore.PrioVars
	PrioLint  = npmkore.PrioLint
	PrioFiles = npmkore.PrioFiles
	PrioBuild = npmkore.PrioBuild
	PrioTest  = npmkore.PrioTest
	PrioDoc   = npmkore.PrioDoc
)

// DefaultScripts is the script builder set of [NewPlanner] and [Scaffold].
// Copy and vars builders run for every setup, the rest is gated by the
// setup's feature toggles.
func DefaultScripts() []Script {
	return []Script{
		{Gate: FeatAlways, Builder: new(InfraScripts)},
		{Gate: FeatAlways, Builder: new(VarScripts)},
		{Gate: FeatLint, Builder: new(LintScripts)},
		{Gate: FeatAlways, Builder: new(DataScripts)},
		{Gate: FeatAlways, Builder: new(ResourceScripts)},
		{Gate: FeatBuild, Builder: new(LibScripts)},
		{Gate: FeatBuild, Builder: new(ExeScripts)},
		{Gate: FeatTest, Builder: &TestScripts{Coverage: true}},
		{Gate: FeatDoc, Builder: new(DocScripts)},
	}
}

// ScriptFunc makes a [npmkore.ScriptBuilder] from function f, e.g. for
// one-off builders in a scaffold program.
func ScriptFunc(desc string, f func(*npmkore.Trace, *Task, *Env) (ScriptResult, error)) npmkore.ScriptBuilder {
	return funcScripts{desc: desc, f: f}
}

type funcScripts struct {
	desc string
	f    func(*npmkore.Trace, *Task, *Env) (ScriptResult, error)
}

func (fo funcScripts) Describe(*Task, *Env) string {
	return fo.desc
}

func (fo funcScripts) BuildScripts(tr *npmkore.Trace, t *Task, env *Env) (ScriptResult, error) {
	tr.Debug("call `function`", `function`, fo.desc)
	return fo.f(tr, t, env)
}
