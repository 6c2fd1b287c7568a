package wmassign

import (
	"time"

	"github.com/flowmatic/streaming/operator"
	"github.com/flowmatic/streaming/row"
	"github.com/pkg/errors"
)

type options struct {
	generator             Generator
	idleTimeout           time.Duration
	autoWatermarkInterval time.Duration
}

type WithOptions func(options *options) error

func WithGenerator(generator Generator) WithOptions {
	return func(options *options) error {
		if generator == nil {
			return errors.Errorf("generator can't be nil")
		}
		options.generator = generator
		return nil
	}
}

// WithRowtimeField extracts the event time from the given row field as-is.
func WithRowtimeField(fieldIndex int) WithOptions {
	return func(options *options) error {
		if fieldIndex < 0 {
			return errors.Errorf("fieldIndex should be greater than or equal to 0")
		}
		options.generator = FromField(fieldIndex)
		return nil
	}
}

func WithBoundedOutOfOrder(fieldIndex int, delay time.Duration) WithOptions {
	return func(options *options) error {
		if fieldIndex < 0 {
			return errors.Errorf("fieldIndex should be greater than or equal to 0")
		}
		if delay < 0 {
			return errors.Errorf("delay should not be negative")
		}
		options.generator = BoundedOutOfOrder(fieldIndex, delay)
		return nil
	}
}

// WithIdleTimeout enables idle detection; values <= 0 disable it entirely.
func WithIdleTimeout(timeout time.Duration) WithOptions {
	return func(options *options) error {
		options.idleTimeout = timeout
		return nil
	}
}

// WithAutoWatermarkInterval sets the watermark emission cadence; values <= 0
// disable periodic emission.
func WithAutoWatermarkInterval(interval time.Duration) WithOptions {
	return func(options *options) error {
		options.autoWatermarkInterval = interval
		return nil
	}
}

// New builds a watermark assigner operator for rows.
func New(withOptionsFns ...WithOptions) (operator.NormalOperator, error) {
	o := &options{
		autoWatermarkInterval: time.Duration(DefaultTimerIntervalMillis) * time.Millisecond,
	}
	for _, withOptionsFn := range withOptionsFns {
		if err := withOptionsFn(o); err != nil {
			return nil, err
		}
	}
	if o.generator == nil {
		return nil, errors.Errorf("generator can't be nil")
	}
	return operator.OneInputOperatorToNormal[row.Row, row.Row](&assignerOperator{
		generator:               o.generator,
		watermarkIntervalMillis: o.autoWatermarkInterval.Milliseconds(),
		idleTimeoutMillis:       o.idleTimeout.Milliseconds(),
	}), nil
}
