package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/tuannh982/intset/intset"
)

const namespace = "intset"

// NewNodeCounter registers a counter that can be handed to intset.WithCounter.
// Registering twice on the same registry returns the existing counter.
func NewNodeCounter(reg prometheus.Registerer, name string) (prometheus.Counter, error) {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "nodes_allocated_total",
		Help:        "List nodes allocated by sets, sentinels included.",
		ConstLabels: prometheus.Labels{"owner": name},
	})
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, errors.Wrapf(err, "register node counter %q", name)
	}
	return c, nil
}

// RegisterDefault exposes intset.Allocations on reg.
func RegisterDefault(reg prometheus.Registerer) error {
	f := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "default_nodes_allocated_total",
		Help:      "List nodes allocated by sets using the default counter.",
	}, func() float64 {
		return float64(intset.NodesAllocated())
	})
	if err := reg.Register(f); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return errors.Wrap(err, "register default node counter")
	}
	return nil
}

// Dump writes every metric family gathered from g in the text exposition format.
func Dump(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "write metric family %s", mf.GetName())
		}
	}
	return nil
}
