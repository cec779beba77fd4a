package npmk

import (
	"log/slog"
	"time"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/qblog"
)

// SlogTracer forwards trace events to a [slog.Logger]. The event messages
// keep their sllm templates, so an sllm-aware handler such as qblog renders
// the same lines as [WriteTracer].
type SlogTracer struct {
	Log *slog.Logger
}

var _ npmkore.Tracer = (*SlogTracer)(nil)

// NewSlogTracer creates a SlogTracer on log. A nil log is replaced by the
// qblog default logger.
func NewSlogTracer(log *slog.Logger) *SlogTracer {
	if log == nil {
		log = qblog.New(&qblog.DefaultConfig).Logger
	}
	return &SlogTracer{Log: log}
}

func (tr *SlogTracer) Debug(t *npmkore.Trace, msg string, args ...any) {
	tr.Log.Debug(msg, args...)
}

func (tr *SlogTracer) Info(t *npmkore.Trace, msg string, args ...any) {
	tr.Log.Info(msg, args...)
}

func (tr *SlogTracer) Warn(t *npmkore.Trace, msg string, args ...any) {
	tr.Log.Warn(msg, args...)
}

func (tr *SlogTracer) StartPackage(t *npmkore.Trace, p *npmkore.Package, activity string) {
	tr.Log.Info("start `activity` of `package`",
		`activity`, activity,
		`package`, p.String(),
	)
}

func (tr *SlogTracer) DonePackage(t *npmkore.Trace, p *npmkore.Package, activity string, dt time.Duration) {
	tr.Log.Info("`activity` of `package` took `duration`",
		`activity`, activity,
		`package`, p.String(),
		`duration`, dt,
	)
}

func (tr *SlogTracer) DetectLayout(t *npmkore.Trace, p *npmkore.Package, srcDir string) {
	tr.Log.Debug("detect layout beneath `dir`", `dir`, srcDir)
}

func (tr *SlogTracer) LayoutFound(t *npmkore.Trace, p *npmkore.Package, lay *npmkore.Layout) {
	tr.Log.Info("layout has `libs` and `exes`",
		`libs`, len(lay.Libs),
		`exes`, len(lay.Exes),
	)
}

func (tr *SlogTracer) SkipScripts(t *npmkore.Trace, b npmkore.ScriptBuilder) {
	tr.Log.Debug("skip `scripts`", `scripts`, b.Describe(nil, nil))
}

func (tr *SlogTracer) RunScripts(t *npmkore.Trace, b npmkore.ScriptBuilder) {
	tr.Log.Debug("run `scripts`", `scripts`, b.Describe(nil, nil))
}

func (tr *SlogTracer) ScriptsDone(t *npmkore.Trace, b npmkore.ScriptBuilder, res *npmkore.ScriptResult) {
	tr.Log.Debug("done `scripts` with `artifacts` and `deps`",
		`scripts`, b.Describe(nil, nil),
		`artifacts`, len(res.Artifacts),
		`deps`, len(res.Deps),
	)
}

func (tr *SlogTracer) RemoveArtifact(t *npmkore.Trace, a *npmkore.Artifact) {
	tr.Log.Info("remove `artifact`", `artifact`, a.Path)
}
