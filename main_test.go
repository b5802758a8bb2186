package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/tuannh982/intset/expr"
)

func newTestApp() (*app, *bytes.Buffer) {
	color.NoColor = true
	var out bytes.Buffer
	logger := log.New()
	logger.SetOutput(&bytes.Buffer{})
	return &app{out: &out, log: log.NewEntry(logger)}, &out
}

func TestRunEval(t *testing.T) {
	a, out := newTestApp()
	err := a.run([]string{"eval", "{1,3,5} {3,5,7} +", "{1,3,5} {3,5,7} -"})
	require.Nil(t, err)
	require.Equal(t, "{1,3,5} {3,5,7} + => { 1 3 5 7 }\n{1,3,5} {3,5,7} - => { 1 }\n", out.String())
}

func TestRunEvalError(t *testing.T) {
	a, _ := newTestApp()
	err := a.run([]string{"eval", "{1} +"})
	require.ErrorIs(t, err, expr.ErrStackUnderflow)
}

func TestRunCompare(t *testing.T) {
	a, out := newTestApp()
	require.Nil(t, a.run([]string{"compare", "{1,2}", "{1,2,3}"}))
	require.Equal(t, "{1,2} <=> {1,2,3}: less\n", out.String())
}

func TestRunStatsWithMetrics(t *testing.T) {
	a, out := newTestApp()
	require.Nil(t, a.run([]string{"--metrics", "eval", "{1} {2} +"}))
	require.Contains(t, out.String(), `intset_nodes_allocated_total{owner="cli"} 7`)
	require.Contains(t, out.String(), "intset_default_nodes_allocated_total")

	out.Reset()
	require.Nil(t, a.run([]string{"stats"}))
	require.Contains(t, out.String(), "nodes allocated: ")
}

func TestRunUnknownCommand(t *testing.T) {
	a, _ := newTestApp()
	require.NotNil(t, a.run([]string{"frobnicate"}))
}
