package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	modulePath string
	format     string
	task       string
	verbose    bool
	noColorize bool
	visualize  bool
}

const (
	_LIFT = iota
	_RANGE_DEMO
	_COMPAT_CHECK
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"lift",
	"Resolve a module's named type declarations into a symbolic type context and print the result",
}, {
	"range-demo",
	"Run a handful of range-algebra operations from the abstract domain algebra and print the results",
}, {
	"compat-check",
	"Check bit-level compatibility between two lifted member types",
}}

var opts = &options{}

type optInterface struct{}
type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) ModulePath() string {
	return opts.modulePath
}

func (optInterface) OutputFormat() string {
	return opts.format
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) Visualize() bool {
	return opts.visualize
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}

func (taskInterface) IsLift() bool {
	return opts.task == task[_LIFT].flag
}

func (taskInterface) IsRangeDemo() bool {
	return opts.task == task[_RANGE_DEMO].flag
}

func (taskInterface) IsCompatCheck() bool {
	return opts.task == task[_COMPAT_CHECK].flag
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}

func init() {
	taskFlag := "\n"
	for _, t := range task {
		taskFlag += t.flag + " -- " + t.explanation + "\n"
	}
	taskFlag += "\n"

	flag.StringVar(&(opts.modulePath), "module", "", "path to a YAML file describing named type declarations and a data layout (see cmd/symlift fixtures)")
	flag.StringVar(&(opts.format), "format", "text", "output format [text | dot]")
	flag.StringVar(&(opts.task), "task", task[_LIFT].flag, "set the task to perform. Options:"+taskFlag)
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "disable pretty printer colorization")
	flag.BoolVar(&(opts.visualize), "visualize", false, "additionally render the resolved alias graph with Graphviz to a file in -format (svg when -format is text)")

	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	flag.Parse()

	validTask := false
	for _, t := range task {
		if t.flag == opts.task {
			validTask = true
			break
		}
	}
	if !validTask {
		log.Fatalf("Value %q is not valid for -task", opts.task)
	}
}
