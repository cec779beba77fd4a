package npmk

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/testerr"
)

func TestWriteTracer_ParseLogFlag(t *testing.T) {
	tests := []struct {
		flag string
		want npmkore.TraceLog
	}{
		{"off", 0},
		{"w", npmkore.TraceWarn},
		{"warn", npmkore.TraceWarn},
		{"i", npmkore.TraceWarn | npmkore.TraceInfo},
		{"info", npmkore.TraceWarn | npmkore.TraceInfo},
		{"d", npmkore.TraceWarn | npmkore.TraceInfo | npmkore.TraceDebug},
		{"debug", npmkore.TraceWarn | npmkore.TraceInfo | npmkore.TraceDebug},
	}
	for _, tt := range tests {
		wt := NewDefaultTracer()
		testerr.Shall(wt.ParseLogFlag(tt.flag)).BeNil(t)
		if wt.Log != tt.want {
			t.Errorf("flag '%s' sets log %x, want %x", tt.flag, wt.Log, tt.want)
		}
	}
	wt := NewDefaultTracer()
	testerr.Shall(wt.ParseLogFlag("")).BeNil(t)
	if wt.Log != npmkore.TraceWarn {
		t.Error("empty flag changes the log level")
	}
	testerr.Shall(wt.ParseLogFlag("loud")).
		Check(t, testerr.Msg("write tracer: illegal log flag 'loud'"))
}

func writeTracer(t *testing.T, logFlag string) (*WriteTracer, *npmkore.Trace, *strings.Builder) {
	var buf strings.Builder
	wt := &WriteTracer{W: &buf, Log: npmkore.DefaultTraceLog}
	testerr.Shall(wt.ParseLogFlag(logFlag)).BeNil(t)
	return wt, npmkore.NewTrace(context.Background(), wt), &buf
}

func TestWriteTracer_gating(t *testing.T) {
	wt, tr, buf := writeTracer(t, "warn")
	wt.Debug(tr, "detect `directory`", `directory`, "/tmp/x")
	wt.Info(tr, "detect `directory`", `directory`, "/tmp/x")
	wt.SkipScripts(tr, new(LintScripts))
	if buf.Len() != 0 {
		t.Errorf("warn level writes:\n%s", buf)
	}
	wt.Warn(tr, "detect `directory`", `directory`, "/tmp/x")
	if buf.Len() == 0 {
		t.Error("warn level drops warnings")
	}

	wt, tr, buf = writeTracer(t, "off")
	wt.Warn(tr, "detect `directory`", `directory`, "/tmp/x")
	if buf.Len() != 0 {
		t.Errorf("off level writes:\n%s", buf)
	}
}

func TestWriteTracer_Debug(t *testing.T) {
	wt, tr, buf := writeTracer(t, "debug")
	wt.Debug(tr, "detect `directory`", `directory`, "/tmp/x")
	out := buf.String()
	for _, want := range []string{"DEBUG", "directory", "/tmp/x"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug line misses %s: %s", want, out)
		}
	}
}

func TestWriteTracer_events(t *testing.T) {
	pkg := npmkore.NewPackage("testdata/acme")
	wt, tr, buf := writeTracer(t, "debug")

	wt.StartPackage(tr, pkg, "scaffolding")
	wt.DetectLayout(tr, pkg, "src")
	wt.LayoutFound(tr, pkg, &npmkore.Layout{
		Libs: []npmkore.EntryPoint{{Path: "lib/index.mjs"}},
	})
	wt.SkipScripts(tr, new(DocScripts))
	wt.RunScripts(tr, new(LintScripts))
	wt.ScriptsDone(tr, new(LintScripts), &npmkore.ScriptResult{
		Artifacts: []npmkore.Artifact{{Path: "lint.sh"}},
		Deps:      []string{"eslint"},
	})
	wt.RemoveArtifact(tr, &npmkore.Artifact{Path: "lint.sh"})
	wt.DonePackage(tr, pkg, "scaffolding", time.Second)

	out := buf.String()
	for _, want := range []string{
		"{ scaffolding package 'acme' in testdata/acme",
		"? detect layout beneath 'src'",
		"! layout has 1 libs and 0 exes",
		"  skip (doc scripts)",
		"  run (lint scripts)",
		"  done (lint scripts): 1 artifacts, 1 deps",
		"! remove artifact [lint.sh]",
		"} scaffolding package 'acme' took 1s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("event log misses %s:\n%s", want, out)
		}
	}
}

func TestSlogTracer(t *testing.T) {
	var buf bytes.Buffer
	st := NewSlogTracer(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	tr := npmkore.NewTrace(context.Background(), st)

	st.StartPackage(tr, npmkore.NewPackage("testdata/acme"), "scaffolding")
	st.RunScripts(tr, new(LintScripts))
	st.RemoveArtifact(tr, &npmkore.Artifact{Path: "lint.sh"})

	out := buf.String()
	for _, want := range []string{
		"activity=scaffolding",
		"package=acme",
		`scripts="lint scripts"`,
		"artifact=lint.sh",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("slog output misses %s:\n%s", want, out)
		}
	}
}
