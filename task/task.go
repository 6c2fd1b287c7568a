package task

import (
	_c "context"

	"github.com/flowmatic/streaming/common/executor"
	"github.com/flowmatic/streaming/common/safe"
	"github.com/flowmatic/streaming/common/status"
	"github.com/flowmatic/streaming/element"
	"github.com/flowmatic/streaming/log"
	"github.com/flowmatic/streaming/metrics"
	"github.com/flowmatic/streaming/operator"
	"github.com/pkg/errors"
)

type internalData struct {
	index   int
	element element.NormalElement
}

// Task runs one operator on a single goroutine. Element processing, timer
// callbacks and close all execute inside the Daemon loop, so the operator
// never sees concurrent calls and needs no internal locking.
type Task struct {
	ctx        _c.Context
	cancelFunc _c.CancelFunc
	logger     log.Logger
	Options

	status   status.Status
	doneChan chan struct{}

	inputChan  chan internalData
	callerChan chan *executor.Executor

	normalOperator operator.NormalOperator
	timeService    operator.ProcessingTimeService
	ioMetrics      *metrics.IOMetrics
	emitNext       element.Emit

	closeErr error
}

func (o *Task) Name() string {
	return o.Options.Name
}

func (o *Task) Running() bool {
	return o.status.Running()
}

// IOMetrics exposes the task's metric group; the output side marks the
// backpressure gauges here.
func (o *Task) IOMetrics() *metrics.IOMetrics {
	return o.ioMetrics
}

func (o *Task) Daemon() error {
	if !status.CAP(&o.status, status.Ready, status.Running) {
		return errors.Errorf("task %s can't start twice", o.Name())
	}
	o.logger.Info("starting...")
	execFn := func(fn func()) *executor.Executor {
		newExecutor := executor.NewExecutor(fn)
		o.callerChan <- newExecutor
		return newExecutor
	}
	o.timeService = operator.NewSystemTimeService(execFn)
	if err := safe.Run(func() error {
		return o.normalOperator.Open(
			operator.NewContext(o.logger.Named("operator"), o.ioMetrics, o.timeService, execFn),
			o.emitNext)
	}); err != nil {
		status.CAP(&o.status, status.Running, status.Closed)
		close(o.doneChan)
		return errors.WithMessage(err, "failed to start task")
	}
	defer close(o.doneChan)
	for {
		select {
		case <-o.ctx.Done():
			o.timeService.Quiesce()
			o.closeErr = safe.Run(o.normalOperator.Close)
			status.CAP(&o.status, status.Running, status.Closed)
			return o.closeErr
		case caller := <-o.callerChan:
			caller.Exec()
		case data := <-o.inputChan:
			o.normalOperator.ProcessElement(data.element, data.index)
			bufferSize := len(o.inputChan)
			for i := 0; i < bufferSize; i++ {
				data = <-o.inputChan
				o.normalOperator.ProcessElement(data.element, data.index)
			}
		}
	}
}

// InitEmit returns the Emit upstream input index uses to push elements into
// this task.
func (o *Task) InitEmit(index int) element.Emit {
	return func(e element.NormalElement) {
		o.inputChan <- internalData{
			index:   index,
			element: e,
		}
	}
}

// Close stops the loop; the operator's Close runs inside the loop before
// Daemon returns. Blocks until the task is fully shut down.
func (o *Task) Close() error {
	o.cancelFunc()
	<-o.doneChan
	return o.closeErr
}

func New(options Options, normalOperator operator.NormalOperator, emitNext element.Emit) *Task {
	ctx, cancelFunc := _c.WithCancel(_c.Background())
	options = options.withDefaults()
	return &Task{
		ctx:            ctx,
		cancelFunc:     cancelFunc,
		logger:         log.Named(options.Name + ".task"),
		Options:        options,
		doneChan:       make(chan struct{}),
		inputChan:      make(chan internalData, options.ChannelSize),
		callerChan:     make(chan *executor.Executor),
		normalOperator: normalOperator,
		ioMetrics:      metrics.NewIOMetrics(options.Scope.SubScope(options.Name)),
		emitNext:       emitNext,
	}
}
