package npmk

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"git.fractalqb.de/fractalqb/npmk/npmkore"
)

type Diagrammer struct {
	RankDir string
}

// WriteDot writes plan as a graphviz dot graph: the package node starts a
// chain of artifact nodes in run order, the npm dev dependencies hang off
// the package node.
func (dia *Diagrammer) WriteDot(w io.Writer, pkg *npmkore.Package, plan *npmkore.Plan) (err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()

	dia.startDot(w, pkg)
	for _, d := range plan.Deps {
		dia.dep(w, pkg, d)
	}
	dia.artifacts(w, pkg, plan)
	dia.endDot(w)
	return nil
}

func (dia *Diagrammer) startDot(w io.Writer, pkg *npmkore.Package) {
	fmt.Fprintf(w, "digraph \"%s\" {\n", escDotID(pkg.String()))
	if dia.RankDir != "" {
		fmt.Fprintf(w, "\trankdir=\"%s\"\n", escDotID(dia.RankDir))
	}
	fmt.Fprintf(w, "\t\"%p\" [shape=box,style=bold,label=\"%s\"];\n",
		pkg,
		escDotID(pkg.String()),
	)
}

func (dia *Diagrammer) endDot(w io.Writer) {
	fmt.Fprintln(w, "}")
}

func (dia *Diagrammer) dep(w io.Writer, pkg *npmkore.Package, dep string) {
	fmt.Fprintf(w, "\t\"dep:%s\" [shape=box,style=dashed,label=\"%s\"];\n",
		escDotID(dep),
		escDotID(dep),
	)
	fmt.Fprintf(w, "\t\"%p\" -> \"dep:%s\" [style=dashed,arrowhead=none];\n",
		pkg,
		escDotID(dep),
	)
}

func (dia *Diagrammer) artifacts(w io.Writer, pkg *npmkore.Package, plan *npmkore.Plan) {
	last := fmt.Sprintf("%p", pkg)
	for i := range plan.Artifacts {
		a := &plan.Artifacts[i]
		fmt.Fprintf(w, "\t\"%p\" [shape=record,label=\"{%d|%s}\"];\n",
			a,
			a.Priority,
			escDotID(a.Path),
		)
		fmt.Fprintf(w, "\t\"%s\" -> \"%p\";\n", last, a)
		last = fmt.Sprintf("%p", a)
	}
}

func escDotID(id string) string {
	return strings.ReplaceAll(id, "\"", "\\\"")
}
