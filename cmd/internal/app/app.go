// Package app wires the pwtype demo runtime: config, logging, metrics, and the
// line-oriented password intake loop.
//
// Plaintext never leaves the intake loop: it is read into the scanner buffer,
// handed to the password constructor, and dropped. Only digests, lengths and
// outcome labels are logged or printed.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"pwtype/cmd/identity/ids"
	"pwtype/cmd/internal/metrics"
	"pwtype/cmd/security/password"
)

// sampleInput is constructed once when the input stream is empty.
// #nosec G101 -- demo literal, not a credential.
const sampleInput = "correct horse battery staple"

// App is the pwtype runtime: it owns the logger and the outcome recorder.
type App struct {
	cfg     Config
	log     Logger
	metrics *metrics.Recorder
	runID   string
}

// Summary counts the outcomes of one run.
type Summary struct {
	Lines    int
	Accepted int
	Rejected int
}

// New constructs a fully wired App instance from config and logger.
func New(cfg Config, log Logger) (*App, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel, cfg.LogFormat, io.Discard)
	}

	rec, err := metrics.NewRecorder()
	if err != nil {
		return nil, err
	}

	runID, err := ids.NewULID(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("run id: %w", err)
	}

	return &App{
		cfg:     cfg,
		log:     log.With("run_id", runID),
		metrics: rec,
		runID:   runID,
	}, nil
}

// RunID returns the ULID attached to every log record of this App.
func (a *App) RunID() string { return a.runID }

// Run reads one candidate password per line from in and writes the debug form
// of every accepted value (digest only) or the rejection reason to out.
// Rejections are reported, not returned; Run fails only on read/write errors
// or context cancellation.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	_, err := a.Process(ctx, in, out)
	return err
}

// Process is Run returning the outcome counts.
func (a *App) Process(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	a.log.Info("run.start")

	type result struct {
		sum Summary
		err error
	}
	done := make(chan result, 1)
	go func() {
		sum, err := a.consume(ctx, in, out)
		done <- result{sum: sum, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		// A blocked read (e.g. a terminal) cannot be interrupted; stop waiting for it.
		a.log.Info("run.stop", "reason", "context_done")
		return Summary{}, ctx.Err()
	}
	if res.err != nil {
		a.log.Error("run.fail", "err", res.err)
		return res.sum, res.err
	}

	if a.cfg.MetricsDump {
		if err := a.metrics.WriteText(out); err != nil {
			return res.sum, fmt.Errorf("metrics dump: %w", err)
		}
	}

	a.log.Info("run.done", "lines", res.sum.Lines, "accepted", res.sum.Accepted, "rejected", res.sum.Rejected)
	return res.sum, nil
}

func (a *App) consume(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	var sum Summary

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Lines++
		ok, err := a.construct(out, sum.Lines, sc.Bytes())
		if err != nil {
			return sum, err
		}
		if ok {
			sum.Accepted++
		} else {
			sum.Rejected++
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return sum, fmt.Errorf("read input line %d: %w", sum.Lines+1, err)
		}
		return sum, fmt.Errorf("read input: %w", err)
	}

	if sum.Lines == 0 {
		ok, err := a.construct(out, 0, []byte(sampleInput))
		if err != nil {
			return sum, err
		}
		if ok {
			sum.Accepted++
		} else {
			sum.Rejected++
		}
	}

	return sum, nil
}

// construct builds one Password from raw. raw is never logged or written.
func (a *App) construct(out io.Writer, line int, raw []byte) (bool, error) {
	p, perr := password.NewFromBytes(raw)
	outcome := a.metrics.Observe(perr)

	if perr != nil {
		a.log.Warn("password.rejected", "line", line, "outcome", outcome, "err", perr)
		if _, err := fmt.Fprintf(out, "line %d: rejected: %v\n", line, perr); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}
		return false, nil
	}

	a.log.Info("password.accepted", "line", line, "password", p)
	if _, err := fmt.Fprintf(out, "line %d: %#v\n", line, p); err != nil {
		return false, fmt.Errorf("write output: %w", err)
	}
	return true, nil
}
