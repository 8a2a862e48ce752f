// Package calc is the service layer shared by the CLI, the watcher and the
// MCP server. It wraps pkg/decimal with logging, metrics and the canonical
// output mode.
package calc

import (
	"context"
	"errors"

	"github.com/bft-labs/bigadd/pkg/decimal"
	"github.com/bft-labs/bigadd/pkg/log"
)

// Operation names passed to Recorder.
const (
	OpAdd = "add"
	OpSum = "sum"
)

// Outcome labels passed to Recorder.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidDigit = "invalid_digit"
	OutcomeEmptyInput   = "empty_input"
	OutcomeNoOperands   = "no_operands"
	OutcomeError        = "error"
)

// Recorder receives one call per operation.
type Recorder interface {
	RecordOperation(op, outcome string, digits int)
}

// Result is the outcome of a successful addition.
type Result struct {
	Sum      string `json:"sum"`
	Operands int    `json:"operands"`
	Digits   int    `json:"digits"`
}

// Calculator adds digit strings. It is safe for concurrent use.
type Calculator struct {
	logger    log.Logger
	recorder  Recorder
	canonical bool
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Calculator) {
		c.logger = log.OrNoop(logger)
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Calculator) {
		c.recorder = r
	}
}

// WithCanonical strips leading zeros from results. Error positions still
// refer to the operands as given.
func WithCanonical(canonical bool) Option {
	return func(c *Calculator) {
		c.canonical = canonical
	}
}

// New creates a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		logger:   log.NoopLogger{},
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.recorder == nil {
		c.recorder = nopRecorder{}
	}
	return c
}

// Add returns a + b.
func (c *Calculator) Add(ctx context.Context, a, b string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	sum, err := decimal.Add(a, b)
	return c.finish(OpAdd, sum, 2, err)
}

// Sum adds all operands.
func (c *Calculator) Sum(ctx context.Context, operands []string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	sum, err := decimal.Sum(operands...)
	return c.finish(OpSum, sum, len(operands), err)
}

func (c *Calculator) finish(op, sum string, operands int, err error) (Result, error) {
	if err != nil {
		c.recorder.RecordOperation(op, Outcome(err), 0)
		c.logger.Warn("addition rejected",
			log.String("op", op),
			log.Int("operands", operands),
			log.Err(err),
		)
		return Result{}, err
	}

	if c.canonical {
		sum = decimal.Normalize(sum)
	}
	res := Result{Sum: sum, Operands: operands, Digits: len(sum)}
	c.recorder.RecordOperation(op, OutcomeSuccess, res.Digits)
	c.logger.Debug("addition complete",
		log.String("op", op),
		log.Int("operands", operands),
		log.Int("digits", res.Digits),
	)
	return res, nil
}

// Outcome maps an error from pkg/decimal to a metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, decimal.ErrInvalidDigit):
		return OutcomeInvalidDigit
	case errors.Is(err, decimal.ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, decimal.ErrNoOperands):
		return OutcomeNoOperands
	default:
		return OutcomeError
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, string, int) {}
