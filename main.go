package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tuannh982/intset/expr"
	"github.com/tuannh982/intset/intset"
	"github.com/tuannh982/intset/utils/metrics"
)

type config struct {
	debug   bool
	metrics bool
}

type app struct {
	cfg      config
	out      io.Writer
	log      *log.Entry
	registry *prometheus.Registry
	counter  intset.Counter
}

func main() {
	logger := log.WithFields(log.Fields{"app": "intset"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	a := &app{out: os.Stdout, log: logger}
	if err := a.run(os.Args[1:]); err != nil {
		a.log.WithError(err).Error("Command failed.")
		fmt.Fprintln(os.Stderr, color.RedString("[ERROR]: %v", err))
		os.Exit(255)
	}
}

func (a *app) run(args []string) error {
	k := kingpin.New("intset", "Evaluate and compare sorted integer sets.")
	k.Flag("debug", "Enable debug logging.").BoolVar(&a.cfg.debug)
	k.Flag("metrics", "Print node allocation metrics after the command.").BoolVar(&a.cfg.metrics)

	evalCmd := k.Command("eval", "Evaluate set expressions in reverse Polish notation, e.g. '{1,3,5} {3,5,7} +'.")
	evalExprs := evalCmd.Arg("expr", "Expression to evaluate.").Required().Strings()

	compareCmd := k.Command("compare", "Print the inclusion ordering of two sets.")
	compareLeft := compareCmd.Arg("left", "Left set, e.g. '{1,2}'.").Required().String()
	compareRight := compareCmd.Arg("right", "Right set, e.g. '{1,2,3}'.").Required().String()

	statsCmd := k.Command("stats", "Print node allocation totals.")

	selected, err := k.Parse(args)
	if err != nil {
		return err
	}
	if a.cfg.debug {
		a.log.Logger.SetLevel(log.DebugLevel)
	}
	if err := a.initMetrics(); err != nil {
		return err
	}

	switch selected {
	case evalCmd.FullCommand():
		err = a.eval(*evalExprs)
	case compareCmd.FullCommand():
		err = a.compare(*compareLeft, *compareRight)
	case statsCmd.FullCommand():
		err = a.stats()
	}
	if err != nil {
		return err
	}
	if a.cfg.metrics {
		return metrics.Dump(a.registry, a.out)
	}
	return nil
}

func (a *app) initMetrics() error {
	a.registry = prometheus.NewRegistry()
	if err := metrics.RegisterDefault(a.registry); err != nil {
		return err
	}
	c, err := metrics.NewNodeCounter(a.registry, "cli")
	if err != nil {
		return err
	}
	a.counter = c
	return nil
}

func (a *app) evaluator() *expr.Evaluator {
	return expr.NewEvaluator(
		expr.WithLogger(a.log.WithField("component", "expr")),
		expr.WithCounter(a.counter),
	)
}

func (a *app) eval(exprs []string) error {
	e := a.evaluator()
	for _, in := range exprs {
		r, err := e.Eval(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s => %s\n", in, r)
	}
	return nil
}

func (a *app) compare(left, right string) error {
	r, err := a.evaluator().Eval(strings.Join([]string{left, right, string(expr.OpCompare)}, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <=> %s: %s\n", left, right, colorize(r.Ordering))
	return nil
}

func colorize(o intset.Ordering) string {
	switch o {
	case intset.Equivalent:
		return color.GreenString("%s", o)
	case intset.Less, intset.Greater:
		return color.YellowString("%s", o)
	default:
		return color.RedString("%s", o)
	}
}

func (a *app) stats() error {
	fmt.Fprintf(a.out, "nodes allocated: %s\n", humanize.Comma(intset.NodesAllocated()))
	return nil
}
