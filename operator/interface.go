package operator

import (
	"github.com/flowmatic/streaming/common/executor"
	"github.com/flowmatic/streaming/element"
	"github.com/flowmatic/streaming/log"
	"github.com/flowmatic/streaming/metrics"
)

type Context interface {
	Logger() log.Logger
	IOMetrics() *metrics.IOMetrics
	TimeService() ProcessingTimeService
	//Exec will call func that are mutually exclusive with element processing
	Exec(func()) *executor.Executor
}

// NormalOperator is the untyped operator driven by a task: records, watermarks
// and watermark statuses all arrive through ProcessElement. Open is called
// exactly once before the first element, Close exactly once after the last.
type NormalOperator interface {
	Open(ctx Context, emit element.Emit) error
	Close() error
	ProcessElement(element element.NormalElement, index int)
}

type OneInputOperator[IN, OUT any] interface {
	Open(ctx Context, collector element.Collector[OUT]) error
	Close() error

	ProcessEvent(event *element.Event[IN])
	ProcessWatermark(watermark element.Watermark)
	ProcessWatermarkStatus(watermarkStatus element.WatermarkStatus)
}

type Source[OUT any] interface {
	Open(ctx Context, collector element.Collector[OUT]) error
	Close() error

	Run()
}

type Sink[IN any] interface {
	Open(ctx Context) error
	Close() error

	ProcessEvent(event *element.Event[IN])
	ProcessWatermark(watermark element.Watermark)
	ProcessWatermarkStatus(watermarkStatus element.WatermarkStatus)
}

// Rich is a user function with a scoped lifecycle: Open before first use,
// Close on every exit path.
type Rich interface {
	Open(ctx Context) error
	Close() error
}
