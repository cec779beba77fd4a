package npmk

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/sllm/v3"
)

type WriteTracer struct {
	W   io.Writer
	Log npmkore.TraceLog
}

func NewDefaultTracer() *WriteTracer {
	return &WriteTracer{W: os.Stderr, Log: npmkore.TraceWarn}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = npmkore.TraceWarn
	case "info", "i":
		tr.Log = npmkore.TraceWarn | npmkore.TraceInfo
	case "debug", "d":
		tr.Log = npmkore.TraceWarn | npmkore.TraceInfo | npmkore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr WriteTracer) Debug(t *npmkore.Trace, msg string, args ...any) {
	if tr.Log&npmkore.TraceDebug == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  DEBUG ", t.Plan(), t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) Info(t *npmkore.Trace, msg string, args ...any) {
	if tr.Log&(npmkore.TraceInfo|npmkore.TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  INFO  ", t.Plan(), t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) Warn(t *npmkore.Trace, msg string, args ...any) {
	if tr.Log&(npmkore.TraceWarn|npmkore.TraceInfo|npmkore.TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  WARN  ", t.Plan(), t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) StartPackage(t *npmkore.Trace, p *npmkore.Package, activity string) {
	fmt.Fprintf(tr.W, "%d@%s\t{ %s package '%s' in %s\n",
		t.Plan(),
		t.TopTag(),
		activity,
		p,
		p.Dir,
	)
}

func (tr WriteTracer) DonePackage(t *npmkore.Trace, p *npmkore.Package, activity string, dt time.Duration) {
	fmt.Fprintf(tr.W, "%d@%s\t} %s package '%s' took %s\n",
		t.Plan(),
		t.TopTag(),
		activity,
		p,
		dt,
	)
}

func (tr WriteTracer) logLayout() bool {
	return tr.Log&(npmkore.TraceWarn|npmkore.TraceInfo|npmkore.TraceDebug) != 0
}

func (tr WriteTracer) logScripts() bool {
	return tr.Log&(npmkore.TraceInfo|npmkore.TraceDebug) != 0
}

func (tr WriteTracer) DetectLayout(t *npmkore.Trace, p *npmkore.Package, srcDir string) {
	if !tr.logLayout() {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t? detect layout beneath '%s' %s\n",
		t.Plan(),
		t.TopTag(),
		srcDir,
		t.Path(),
	)
}

func (tr WriteTracer) LayoutFound(t *npmkore.Trace, p *npmkore.Package, lay *npmkore.Layout) {
	if !tr.logLayout() {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t! layout has %d libs and %d exes\n",
		t.Plan(),
		t.TopTag(),
		len(lay.Libs),
		len(lay.Exes),
	)
}

func (tr WriteTracer) SkipScripts(t *npmkore.Trace, b npmkore.ScriptBuilder) {
	if tr.Log&npmkore.TraceDebug != 0 {
		fmt.Fprintf(tr.W, "%d@%s\t  skip (%s)\n", t.Plan(), t.TopTag(), b.Describe(nil, nil))
	}
}

func (tr WriteTracer) RunScripts(t *npmkore.Trace, b npmkore.ScriptBuilder) {
	if tr.logScripts() {
		fmt.Fprintf(tr.W, "%d@%s\t  run (%s)\n", t.Plan(), t.TopTag(), b.Describe(nil, nil))
	}
}

func (tr WriteTracer) ScriptsDone(t *npmkore.Trace, b npmkore.ScriptBuilder, res *npmkore.ScriptResult) {
	if !tr.logScripts() {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  done (%s): %d artifacts, %d deps\n",
		t.Plan(),
		t.TopTag(),
		b.Describe(nil, nil),
		len(res.Artifacts),
		len(res.Deps),
	)
}

func (tr WriteTracer) RemoveArtifact(t *npmkore.Trace, a *npmkore.Artifact) {
	if !tr.logLayout() {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t! remove artifact [%s]\n",
		t.Plan(),
		t.TopTag(),
		a.Path,
	)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
