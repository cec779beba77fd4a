package npmkore

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

type TracerCommon interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	StartPackage(t *Trace, p *Package, activity string)
	DonePackage(t *Trace, p *Package, activity string, dt time.Duration)
}

// SetupTracer receives the events of a [Planner] setup run.
type SetupTracer interface {
	TracerCommon

	DetectLayout(t *Trace, p *Package, srcDir string)
	LayoutFound(t *Trace, p *Package, lay *Layout)

	SkipScripts(t *Trace, b ScriptBuilder)
	RunScripts(t *Trace, b ScriptBuilder)
	ScriptsDone(t *Trace, b ScriptBuilder, res *ScriptResult)
}

type Tracer interface {
	SetupTracer
	CleanTracer
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

type Trace struct {
	root *traceRoot
	up   *Trace
	obj  any
	id   uint64
	ctx  context.Context
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	root := &traceRoot{ctx: ctx, tr: t}
	return &Trace{root: root}
}

func (t *Trace) Ctx() context.Context {
	if t.ctx != nil {
		return t.ctx
	}
	return t.root.ctx
}

func (t *Trace) Debug(msg string, args ...any) { t.root.tr.Debug(t, msg, args...) }
func (t *Trace) Info(msg string, args ...any)  { t.root.tr.Info(t, msg, args...) }
func (t *Trace) Warn(msg string, args ...any)  { t.root.tr.Warn(t, msg, args...) }

func (t *Trace) startPackage(p *Package, activity string) {
	t.root.pkg = p
	t.root.tr.StartPackage(t, p, activity)
}

func (t *Trace) donePackage(p *Package, activity string, dt time.Duration) {
	t.root.tr.DonePackage(t, p, activity, dt)
	t.root.pkg = nil
}

func (t *Trace) detectLayout(p *Package, srcDir string) {
	t.root.tr.DetectLayout(t, p, srcDir)
}

func (t *Trace) layoutFound(p *Package, lay *Layout) {
	t.root.tr.LayoutFound(t, p, lay)
}

func (t *Trace) skipScripts(b ScriptBuilder) {
	t.root.tr.SkipScripts(t, b)
}

func (t *Trace) runScripts(b ScriptBuilder) {
	t.root.tr.RunScripts(t, b)
}

func (t *Trace) scriptsDone(b ScriptBuilder, res *ScriptResult) {
	t.root.tr.ScriptsDone(t, b, res)
}

func (t *Trace) removeArtifact(a *Artifact) {
	t.root.tr.RemoveArtifact(t, a)
}

func (t *Trace) Plan() PlanID {
	if t.root == nil || t.root.pkg == nil {
		return 0
	}
	return t.root.pkg.Plan()
}

func (t *Trace) TopID() uint64 { return t.id }

func (t *Trace) TopTag() string {
	switch t.obj.(type) {
	case *Package:
		return fmt.Sprintf("{%d}", t.id)
	case ScriptBuilder:
		return fmt.Sprintf("(%d)", t.id)
	case nil:
		return ""
	}
	return fmt.Sprintf("!%T!", t.obj)
}

func (t *Trace) Path() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for ; t != nil; t = t.up {
		sb.WriteString(t.TopTag())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *Trace) String() string {
	if t.root.pkg == nil {
		return t.Path()
	}
	return fmt.Sprintf("%d@%s", t.root.pkg.Plan(), t.Path())
}

func (t *Trace) pushPackage(p *Package) *Trace {
	return &Trace{
		root: t.root,
		up:   t,
		obj:  p,
		id:   t.root.idSeq.Add(1),
	}
}

func (t *Trace) pushBuilder(b ScriptBuilder) *Trace {
	return &Trace{
		root: t.root,
		up:   t,
		obj:  b,
		id:   t.root.idSeq.Add(1),
	}
}

func (t *Trace) withCtx(ctx context.Context) *Trace {
	sub := *t
	sub.ctx = ctx
	return &sub
}

type traceRoot struct {
	ctx   context.Context
	tr    Tracer
	pkg   *Package
	idSeq atomic.Uint64
}
