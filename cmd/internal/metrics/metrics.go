// Package metrics counts password construction outcomes.
//
// Counters are labelled by outcome only. No label or value ever carries input
// or digest material.
package metrics

import (
	"errors"
	"fmt"
	"io"

	"pwtype/cmd/security/password"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Outcome label values.
const (
	OutcomeAccepted        = "accepted"
	OutcomeTooShort        = "too_short"
	OutcomeInvalidEncoding = "invalid_encoding"
	OutcomeOther           = "other"
)

// Recorder owns a private registry so tests and multiple runs never collide
// with the global default registerer.
type Recorder struct {
	reg           *prometheus.Registry
	constructions *prometheus.CounterVec
}

// NewRecorder registers the construction counters on a fresh registry.
func NewRecorder() (*Recorder, error) {
	reg := prometheus.NewRegistry()

	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pwtype",
		Subsystem: "password",
		Name:      "constructions_total",
		Help:      "Password constructions by outcome.",
	}, []string{"outcome"})

	if err := reg.Register(c); err != nil {
		return nil, fmt.Errorf("register constructions counter: %w", err)
	}

	// Pre-create known series so a dump always lists them.
	for _, o := range []string{OutcomeAccepted, OutcomeTooShort, OutcomeInvalidEncoding} {
		c.WithLabelValues(o)
	}

	return &Recorder{reg: reg, constructions: c}, nil
}

// Classify maps a constructor result to its outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, password.ErrTooShort):
		return OutcomeTooShort
	case errors.Is(err, password.ErrInvalidEncoding):
		return OutcomeInvalidEncoding
	default:
		return OutcomeOther
	}
}

// Observe records one construction result and returns its outcome label.
func (r *Recorder) Observe(err error) string {
	o := Classify(err)
	if r != nil {
		r.constructions.WithLabelValues(o).Inc()
	}
	return o
}

// WriteText writes all gathered families in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
