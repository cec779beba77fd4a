package npmk

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/testerr"
)

func testTrace(t *testing.T) *npmkore.Trace {
	return npmkore.NewTrace(context.Background(), TestTracer{t})
}

func testTask() *Task {
	return &Task{
		Pkg: NewPackage("testdata/acme"),
		Meta: npmkore.Meta{
			Name:    "acme",
			Version: "1.2.3",
			Main:    "src/index.js",
		},
		SrcDir: "src",
		OutDir: "scripts",
		Libs:   []EntryPoint{{Path: "lib/index.mjs", Name: "src/index.js"}},
		Exes:   []EntryPoint{{Path: "cli/index.cjs", Name: "index-exec.js"}},
	}
}

func TestInfraScripts(t *testing.T) {
	task := testTask()
	task.NoTest = true
	res := testerr.Shall1(
		new(InfraScripts).BuildScripts(testTrace(t), task, nil),
	).BeNil(t)
	if l := len(res.Artifacts); l != 2 {
		t.Fatalf("infra yields %d artifacts", l)
	}
	if body := string(res.Artifacts[0].Body); !strings.Contains(body, "npx rimraf 'dist'") {
		t.Errorf("clean.sh body:\n%s", body)
	}
	if body := string(res.Artifacts[1].Body); !strings.Contains(body, "npx npm-run-all clean lint build doc") {
		t.Errorf("all.sh body:\n%s", body)
	}
	if want := []string{"npm-run-all", "rimraf"}; !reflect.DeepEqual(res.Deps, want) {
		t.Errorf("infra deps %q", res.Deps)
	}
}

func TestVarScripts(t *testing.T) {
	env := new(Env)
	env.SetTag("PREFIX", "/usr/local")
	vs := &VarScripts{Tags: []string{"PREFIX", "MISSING"}}
	res := testerr.Shall1(vs.BuildScripts(testTrace(t), testTask(), env)).BeNil(t)
	if l := len(res.Artifacts); l != 1 {
		t.Fatalf("vars yields %d artifacts", l)
	}
	body := string(res.Artifacts[0].Body)
	for _, want := range []string{
		"PKG_NAME='acme'",
		"PKG_VERSION='1.2.3'",
		"SRC_DIR='src'",
		"OUT_DIR='scripts'",
		"PREFIX='/usr/local'",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("vars.sh misses %s:\n%s", want, body)
		}
	}
	if strings.Contains(body, "MISSING") {
		t.Errorf("vars.sh exports missing tag:\n%s", body)
	}
	if res.Artifacts[0].Mode != 0644 {
		t.Errorf("vars.sh mode %o", res.Artifacts[0].Mode)
	}
}

func TestLibScripts(t *testing.T) {
	res := testerr.Shall1(
		new(LibScripts).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if l := len(res.Artifacts); l != 1 {
		t.Fatalf("lib yields %d artifacts", l)
	}
	body := string(res.Artifacts[0].Body)
	want := "npx esbuild 'src/lib/index.mjs' --bundle --format=esm --outfile='dist/src/index.js'"
	if !strings.Contains(body, want) {
		t.Errorf("build-lib.sh body:\n%s", body)
	}
	if !reflect.DeepEqual(res.Deps, []string{"esbuild"}) {
		t.Errorf("lib deps %q", res.Deps)
	}

	task := testTask()
	task.Libs = nil
	res = testerr.Shall1(new(LibScripts).BuildScripts(testTrace(t), task, nil)).BeNil(t)
	if len(res.Artifacts) != 0 || len(res.Deps) != 0 {
		t.Error("lib contributes without library entry points")
	}
}

func TestExeScripts(t *testing.T) {
	res := testerr.Shall1(
		new(ExeScripts).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if l := len(res.Artifacts); l != 1 {
		t.Fatalf("exe yields %d artifacts", l)
	}
	body := string(res.Artifacts[0].Body)
	for _, want := range []string{
		"npx esbuild 'src/cli/index.cjs' --bundle --platform=node",
		"--outfile='dist/bin/index-exec.js'",
		"chmod +x 'dist/bin/index-exec.js'",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("build-exe.sh misses %s:\n%s", want, body)
		}
	}

	task := testTask()
	task.Exes = nil
	res = testerr.Shall1(new(ExeScripts).BuildScripts(testTrace(t), task, nil)).BeNil(t)
	if len(res.Artifacts) != 0 {
		t.Error("exe contributes without executable entry points")
	}
}

func TestLintScripts(t *testing.T) {
	res := testerr.Shall1(
		(&LintScripts{Fix: true}).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if body := string(res.Artifacts[0].Body); !strings.Contains(body, "npx eslint --fix 'src'") {
		t.Errorf("lint.sh body:\n%s", body)
	}
}

func TestTestScripts(t *testing.T) {
	res := testerr.Shall1(
		(&TestScripts{Coverage: true}).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if body := string(res.Artifacts[0].Body); !strings.Contains(body, "npx c8 mocha") {
		t.Errorf("test.sh body:\n%s", body)
	}
	if want := []string{"mocha", "c8"}; !reflect.DeepEqual(res.Deps, want) {
		t.Errorf("test deps %q", res.Deps)
	}

	res = testerr.Shall1(
		new(TestScripts).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if want := []string{"mocha"}; !reflect.DeepEqual(res.Deps, want) {
		t.Errorf("test deps without coverage %q", res.Deps)
	}
}

func TestDocScripts(t *testing.T) {
	res := testerr.Shall1(
		new(DocScripts).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if body := string(res.Artifacts[0].Body); !strings.Contains(body, "npx jsdoc -r 'src' -d 'dist/doc'") {
		t.Errorf("doc.sh body:\n%s", body)
	}
}

func TestDataScripts(t *testing.T) {
	res := testerr.Shall1(
		new(DataScripts).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if l := len(res.Artifacts); l != 1 {
		t.Fatalf("data yields %d artifacts", l)
	}
	body := string(res.Artifacts[0].Body)
	for _, want := range []string{
		"# covers 1 file(s)",
		"npx cpy 'data/**' 'dist' --parents",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("copy-data.sh misses %s:\n%s", want, body)
		}
	}
	if !reflect.DeepEqual(res.Deps, []string{"cpy-cli"}) {
		t.Errorf("data deps %q", res.Deps)
	}
}

func TestDataScripts_noDir(t *testing.T) {
	task := testTask()
	task.Pkg = NewPackage(t.TempDir())
	res := testerr.Shall1(
		new(DataScripts).BuildScripts(testTrace(t), task, nil),
	).BeNil(t)
	if len(res.Artifacts) != 0 || len(res.Deps) != 0 {
		t.Error("data contributes without data directory")
	}
}

func TestResourceScripts_noDir(t *testing.T) {
	res := testerr.Shall1(
		new(ResourceScripts).BuildScripts(testTrace(t), testTask(), nil),
	).BeNil(t)
	if len(res.Artifacts) != 0 || len(res.Deps) != 0 {
		t.Error("resource contributes without resource directory")
	}
}

func TestPlainScripts(t *testing.T) {
	ps := &PlainScripts{Dir: "tools"}
	res := testerr.Shall1(ps.BuildScripts(testTrace(t), testTask(), nil)).BeNil(t)
	if l := len(res.Artifacts); l != 1 {
		t.Fatalf("plain yields %d artifacts", l)
	}
	a := res.Artifacts[0]
	if a.Path != "pack.sh" {
		t.Errorf("adopted artifact is '%s'", a.Path)
	}
	if !strings.Contains(string(a.Body), "npm pack") {
		t.Errorf("pack.sh body:\n%s", a.Body)
	}
	if a.Mode&0100 == 0 {
		t.Error("adopted script lost its executable bit")
	}
}

func TestScriptFunc(t *testing.T) {
	called := false
	b := ScriptFunc("demo scripts", func(
		tr *npmkore.Trace, tsk *Task, env *Env,
	) (ScriptResult, error) {
		called = true
		return ScriptResult{Deps: []string{"demo"}}, nil
	})
	if d := b.Describe(nil, nil); d != "demo scripts" {
		t.Errorf("describes as '%s'", d)
	}
	res := testerr.Shall1(b.BuildScripts(testTrace(t), testTask(), nil)).BeNil(t)
	if !called {
		t.Error("function was not called")
	}
	if !reflect.DeepEqual(res.Deps, []string{"demo"}) {
		t.Errorf("result deps %q", res.Deps)
	}
}
