package operator

import (
	"github.com/flowmatic/streaming/common/executor"
	"github.com/flowmatic/streaming/log"
	"github.com/flowmatic/streaming/metrics"
)

// ExecFn hands fn to the task thread for mutually exclusive execution.
type ExecFn func(fn func()) *executor.Executor

type context struct {
	logger      log.Logger
	ioMetrics   *metrics.IOMetrics
	timeService ProcessingTimeService
	execFn      ExecFn
}

func (c *context) Logger() log.Logger {
	return c.logger
}

func (c *context) IOMetrics() *metrics.IOMetrics {
	return c.ioMetrics
}

func (c *context) TimeService() ProcessingTimeService {
	return c.timeService
}

func (c *context) Exec(fn func()) *executor.Executor {
	return c.execFn(fn)
}

func NewContext(
	logger log.Logger,
	ioMetrics *metrics.IOMetrics,
	timeService ProcessingTimeService,
	execFn ExecFn,
) Context {
	return &context{
		logger:      logger,
		ioMetrics:   ioMetrics,
		timeService: timeService,
		execFn:      execFn,
	}
}
