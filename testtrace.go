package npmk

import (
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

type TestTracer struct{ t *testing.T }

var _ npmkore.Tracer = TestTracer{}

func (tr TestTracer) Debug(t *npmkore.Trace, msg string, args ...any) {
	tr.t.Logf("npmk-DEBUG: "+msg, args...)
}

func (tr TestTracer) Info(t *npmkore.Trace, msg string, args ...any) {
	tr.t.Logf("npmk-INFO: "+msg, args...)
}

func (tr TestTracer) Warn(t *npmkore.Trace, msg string, args ...any) {
	tr.t.Logf("npmk-WARN: "+msg, args...)
}

func (tr TestTracer) StartPackage(t *npmkore.Trace, p *npmkore.Package, activity string) {
	tr.t.Logf("npmk-StartPackage: %s %s", p, activity)
}

func (tr TestTracer) DonePackage(t *npmkore.Trace, p *npmkore.Package, activity string, dt time.Duration) {
	tr.t.Logf("npmk-DonePackage: %s %s %s", p, activity, dt)
}

func (tr TestTracer) DetectLayout(t *npmkore.Trace, p *npmkore.Package, srcDir string) {
	tr.t.Logf("npmk-DetectLayout: %s %s", p, srcDir)
}

func (tr TestTracer) LayoutFound(t *npmkore.Trace, p *npmkore.Package, lay *npmkore.Layout) {
	tr.t.Logf("npmk-LayoutFound: %s %d libs %d exes", p, len(lay.Libs), len(lay.Exes))
}

func (tr TestTracer) SkipScripts(t *npmkore.Trace, b npmkore.ScriptBuilder) {
	tr.t.Logf("npmk-SkipScripts: %s", b.Describe(nil, nil))
}

func (tr TestTracer) RunScripts(t *npmkore.Trace, b npmkore.ScriptBuilder) {
	tr.t.Logf("npmk-RunScripts: %s", b.Describe(nil, nil))
}

func (tr TestTracer) ScriptsDone(t *npmkore.Trace, b npmkore.ScriptBuilder, res *npmkore.ScriptResult) {
	tr.t.Logf("npmk-ScriptsDone: %s %d artifacts %d deps",
		b.Describe(nil, nil), len(res.Artifacts), len(res.Deps))
}

func (tr TestTracer) RemoveArtifact(t *npmkore.Trace, a *npmkore.Artifact) {
	tr.t.Logf("npmk-RemoveArtifact: %s", a.Path)
}
