package npmkore

import (
	"errors"
	"testing"
)

func TestParseEntryPoint(t *testing.T) {
	ep, err := ParseEntryPoint("lib/index.mjs:src/index.js")
	if err != nil {
		t.Fatal(err)
	}
	if ep.Path != "lib/index.mjs" || ep.Name != "src/index.js" {
		t.Errorf("parsed entry point %+v", ep)
	}
	if s := ep.String(); s != "lib/index.mjs:src/index.js" {
		t.Errorf("entry point prints as '%s'", s)
	}
	for _, bad := range []string{"", "lib/index.js", ":name", "path:"} {
		if _, err := ParseEntryPoint(bad); err == nil {
			t.Errorf("parsing '%s' succeeds", bad)
		}
	}
}

func TestExeScriptName(t *testing.T) {
	tests := []struct{ main, want string }{
		{"src/index.js", "index-exec.js"},
		{"src/tool.mjs", "tool-exec.js"},
		{"run.cjs", "run-exec.js"},
		{"a/b/c/acme.js", "acme-exec.js"},
	}
	for _, tc := range tests {
		got, err := ExeScriptName(tc.main)
		if err != nil {
			t.Errorf("'%s': %s", tc.main, err)
		} else if got != tc.want {
			t.Errorf("'%s' derives '%s', want '%s'", tc.main, got, tc.want)
		}
	}
	for _, bad := range []string{"", "src/index", "src/index.ts", "index.json"} {
		if _, err := ExeScriptName(bad); !errors.Is(err, BadMainEntry{}) {
			t.Errorf("'%s': unexpected error %+v", bad, err)
		}
	}
}

func TestIsIndex(t *testing.T) {
	for _, n := range IndexNames {
		if !IsIndex(n) {
			t.Errorf("'%s' is no index name", n)
		}
	}
	for _, n := range []string{"index.ts", "index", "main.js", "Index.js"} {
		if IsIndex(n) {
			t.Errorf("'%s' is an index name", n)
		}
	}
}

func TestIsExeDir(t *testing.T) {
	for _, n := range ExeDirNames {
		if !IsExeDir(n) {
			t.Errorf("'%s' is no executable directory name", n)
		}
	}
	for _, n := range []string{"lib", "bins", "Bin", "cmd"} {
		if IsExeDir(n) {
			t.Errorf("'%s' is an executable directory name", n)
		}
	}
}
