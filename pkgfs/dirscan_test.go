package pkgfs

import (
	"testing"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/testerr"
)

func TestDirScan_List(t *testing.T) {
	pkg := npmkore.NewPackage("testdata/subidx")
	d := DirScan{Dir: "src/lib", Filter: IndexFile{}}
	ls := testerr.Shall1(d.List(pkg)).BeNil(t)
	if l := len(ls); l != 1 {
		t.Fatalf("ls len: %d", l)
	}
	if e := ls[0]; e != "src/lib/index.mjs" { // Rel to package
		t.Fatalf("ls: %s", e)
	}
}

func TestDirScan_List_filtered(t *testing.T) {
	pkg := npmkore.NewPackage("testdata/rootidx")
	d := DirScan{Dir: "src", Filter: All{IsDir(false), Any{NameMatch("*.mjs"), NameMatch("*.js")}}}
	ls := testerr.Shall1(d.List(pkg)).BeNil(t)
	if l := len(ls); l != 1 {
		t.Fatalf("ls len: %d", l)
	}
	if e := ls[0]; e != "src/index.js" {
		t.Fatalf("ls: %s", e)
	}
}

func TestDirScan_Exists(t *testing.T) {
	pkg := npmkore.NewPackage("testdata/subidx")
	if ok := testerr.Shall1(DirScan{Dir: "src/lib"}.Exists(pkg)).BeNil(t); !ok {
		t.Error("src/lib does not exist")
	}
	if ok := testerr.Shall1(DirScan{Dir: "src/void"}.Exists(pkg)).BeNil(t); ok {
		t.Error("src/void exists")
	}
	ok, err := DirScan{Dir: "src/lib/index.mjs"}.Exists(pkg)
	if !ok || err == nil {
		t.Errorf("file as dir: ok=%t err=%+v", ok, err)
	}
}
