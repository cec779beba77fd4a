// This is an example npmk scaffold program that offers you a practical
// approach.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"git.fractalqb.de/fractalqb/npmk"
	"git.fractalqb.de/fractalqb/npmk/npmkore"
	"git.fractalqb.de/fractalqb/npmk/pkgfs"
)

var (
	// The demo package next to this program
	setup = npmk.Setup{Dir: "demo"}

	tracer = npmk.NewDefaultTracer()

	// Some options
	clean, dryrun bool
	writeDot      bool
	noDoc         bool
)

func flags() {
	flag.BoolVar(&writeDot, "dot", writeDot, "Write graphviz file to stdout and exit")
	flag.BoolVar(&clean, "clean", clean, "Remove the generated scripts")
	flag.BoolVar(&dryrun, "n", dryrun, "Dryrun")
	flag.BoolVar(&noDoc, "no-doc", noDoc, "Skip the doc script")
	fTrace := flag.String("trace", "", "Set trace level")
	flag.Parse()

	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flags()
	setup.NoDoc = noDoc

	tr := npmkore.NewTrace(context.Background(), tracer)

	// The demo gets a hand-picked builder set instead of
	// npmk.DefaultScripts()
	scripts := []npmk.Script{
		{Gate: npmk.FeatAlways, Builder: &npmk.InfraScripts{
			Clean: []string{"dist", ".cache"},
		}},
		{Gate: npmk.FeatAlways, Builder: &npmk.VarScripts{
			Tags: []string{"PATH"},
		}},
		{Gate: npmk.FeatLint, Builder: &npmk.LintScripts{Fix: true}},
		{Gate: npmk.FeatAlways, Builder: &npmk.DataScripts{Match: "*.json"}},
		{Gate: npmk.FeatAlways, Builder: &npmk.PlainScripts{Dir: "tools"}},
		{Gate: npmk.FeatBuild, Builder: new(npmk.LibScripts)},
		{Gate: npmk.FeatBuild, Builder: new(npmk.ExeScripts)},
		{Gate: npmk.FeatTest, Builder: &npmk.TestScripts{Coverage: true}},
		{Gate: npmk.FeatDoc, Builder: new(npmk.DocScripts)},
		{Gate: npmk.FeatAlways, Builder: npmk.ScriptFunc("banner scripts",
			func(tr *npmkore.Trace, t *npmk.Task, _ *npmk.Env) (npmk.ScriptResult, error) {
				body := fmt.Sprintf("#!/bin/sh\necho 'building %s %s'\n",
					t.Meta.Name, t.Meta.Version)
				return npmk.ScriptResult{Artifacts: []npmk.Artifact{{
					Priority: npmk.PrioInfra,
					Path:     "banner.sh",
					Body:     []byte(body),
					Mode:     0755,
				}}}, nil
			})},
	}

	pl, err := npmkore.NewPlanner(tr, nil, pkgfs.Detector{}, scripts...)
	if err != nil {
		log.Fatal(err)
	}
	plan, err := pl.Package(&setup)
	if err != nil {
		log.Fatal("scaffolding package:", err)
	}
	pkg := npmk.NewPackage(setup.Dir)

	if clean {
		if err := npmk.Clean(pkg, setup.OutDir, plan, dryrun, tr); err != nil {
			log.Fatal(err)
		}
		return
	}

	if writeDot {
		dia := npmk.Diagrammer{RankDir: "LR"}
		if err := dia.WriteDot(os.Stdout, pkg, plan); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	if err := npmk.WritePlan(pkg, setup.OutDir, plan, tr); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %d scripts, npm dev deps: %v\n", len(plan.Artifacts), plan.Deps)
}
