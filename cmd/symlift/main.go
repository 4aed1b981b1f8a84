// Command symlift drives the type lifter and range algebra from the
// command line: resolve a module's named declarations, run a handful of
// abstract-domain range demonstrations, or check bit-level compatibility
// between two of a module's member types.
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"math/big"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"

	"github.com/symlift/corelift/ada"
	"github.com/symlift/corelift/dlayout"
	"github.com/symlift/corelift/ltl"
	"github.com/symlift/corelift/utils"
	"github.com/symlift/corelift/visualize"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()

	switch {
	case task.IsLift():
		runLift()
	case task.IsRangeDemo():
		runRangeDemo()
	case task.IsCompatCheck():
		runCompatCheck()
	}
}

func loadModule() (dlayout.DataLayout, map[int]ltl.ValMd, []ltl.Decl) {
	if opts.ModulePath() == "" {
		return dlayout.Default(), nil, nil
	}

	raw, err := ioutil.ReadFile(opts.ModulePath())
	if err != nil {
		log.Fatalf("reading %s: %v", opts.ModulePath(), err)
	}

	var mf moduleFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		log.Fatalf("parsing %s: %v", opts.ModulePath(), err)
	}

	dl, metadata, decls, err := mf.load()
	if err != nil {
		log.Fatalf("loading %s: %v", opts.ModulePath(), err)
	}
	return dl, metadata, decls
}

func runLift() {
	dl, metadata, decls := loadModule()
	errs, ctx := ltl.MkContext(dl, metadata, decls)

	bad := color.New(color.FgRed).SprintFunc()
	bad = utils.CanColorize(bad)
	good := color.New(color.FgGreen).SprintFunc()
	good = utils.CanColorize(good)

	for _, d := range decls {
		sym, ok := ltl.LookupAlias(ctx, d.ID)
		if !ok {
			continue
		}
		fmt.Printf("%%%s = %s\n", d.ID, sym.String())
	}

	if len(errs) == 0 {
		fmt.Println(good("resolved cleanly,"), len(decls), "declaration(s)")
	} else {
		for _, e := range errs {
			log.Println(bad(e.String()))
		}
	}

	if opts.Visualize() {
		g := visualize.BuildAliasGraph(ctx)
		format := opts.OutputFormat()
		if format == "" || format == "text" {
			format = "svg"
		}
		out, err := visualize.RenderFile(g, "aliasgraph", format)
		if err != nil {
			log.Println(bad("visualize:"), err)
		} else {
			fmt.Println("wrote", out)
		}
	}

	if len(errs) > 0 {
		os.Exit(1)
	}
}

func runRangeDemo() {
	demos := []struct {
		name string
		a, b ada.Value
	}{
		{
			"join two disjoint integer singletons",
			ada.IntegerValue(ada.IntegerSingle(big.NewInt(1))),
			ada.IntegerValue(ada.IntegerSingle(big.NewInt(5))),
		},
		{
			"join two overlapping integer intervals",
			ada.IntegerValue(ada.IntegerInterval(big.NewInt(0), big.NewInt(10))),
			ada.IntegerValue(ada.IntegerInterval(big.NewInt(5), big.NewInt(20))),
		},
		{
			"join a real singleton with the real top",
			ada.RealValue(ada.RAVOfRat(big.NewRat(3, 2))),
			ada.RealValue(ada.RAVTop()),
		},
	}

	for _, d := range demos {
		joined := ada.Join(d.a, d.b)
		fmt.Printf("%s:\n  %s\n  join %s\n  = %s\n\n", d.name, d.a, d.b, joined)
	}
}

func runCompatCheck() {
	dl, metadata, decls := loadModule()
	if len(decls) < 2 {
		log.Fatalln("compat-check needs a module with at least two declarations")
	}
	_, ctx := ltl.MkContext(dl, metadata, decls)

	a, aOk := ltl.LiftMemType(ctx, ltl.RawAlias{ID: decls[0].ID})
	b, bOk := ltl.LiftMemType(ctx, ltl.RawAlias{ID: decls[1].ID})
	if !aOk || !bOk {
		log.Fatalf("%%%s and %%%s must both lift to member types for compat-check", decls[0].ID, decls[1].ID)
	}

	good := utils.CanColorize(color.New(color.FgGreen).SprintFunc())
	bad := utils.CanColorize(color.New(color.FgRed).SprintFunc())

	if ltl.CompatMemTypes(a, b) {
		fmt.Printf("%%%s and %%%s are bit-level %s\n", decls[0].ID, decls[1].ID, good("compatible"))
	} else {
		fmt.Printf("%%%s and %%%s are bit-level %s\n", decls[0].ID, decls[1].ID, bad("incompatible"))
	}
}
