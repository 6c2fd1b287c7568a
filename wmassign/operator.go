package wmassign

import (
	"math"

	"github.com/flowmatic/streaming/element"
	"github.com/flowmatic/streaming/log"
	"github.com/flowmatic/streaming/metrics"
	"github.com/flowmatic/streaming/operator"
	"github.com/flowmatic/streaming/row"
	"github.com/pkg/errors"
)

// assignerOperator extracts event-time watermarks from the rows flowing
// through it. Rows pass through unchanged and in order; watermarks are
// emitted only from the periodic timer (and a terminal MaxWatermark from
// Close), strictly increasing. When the source stops delivering rows for
// longer than the idle timeout and the task is not back-pressured, the
// operator marks its output idle so downstream watermark merging does not
// stall on this channel; the first row afterwards marks it active again.
//
// The operator is the sole watermark authority on its output: watermarks and
// statuses arriving from upstream are discarded.
type assignerOperator struct {
	operator.BaseOperator[row.Row, row.Row]
	generator               Generator
	watermarkIntervalMillis int64
	idleTimeoutMillis       int64

	logger              log.Logger
	ioMetrics           *metrics.IOMetrics
	timeService         operator.ProcessingTimeService
	tracker             *idleTracker
	timerIntervalMillis int64
	//best candidate seen so far, math.MinInt64 until the first one
	currentWatermark int64
	//high-water mark: last emitted watermark
	lastEmitted int64
	idle        bool
	opened      bool
	closed      bool
}

func (o *assignerOperator) Open(ctx operator.Context, collector element.Collector[row.Row]) error {
	if err := o.BaseOperator.Open(ctx, collector); err != nil {
		return err
	}
	o.logger = ctx.Logger()
	o.ioMetrics = ctx.IOMetrics()
	o.timeService = ctx.TimeService()
	o.currentWatermark = math.MinInt64
	o.lastEmitted = math.MinInt64
	o.timerIntervalMillis = CalculateTimerInterval(o.watermarkIntervalMillis, o.idleTimeoutMillis)
	if err := o.generator.Open(ctx); err != nil {
		return errors.WithMessage(err, "failed to open watermark generator")
	}
	o.opened = true
	now := o.timeService.CurrentProcessingTime()
	o.tracker = &idleTracker{
		timeoutMillis: o.idleTimeoutMillis,
		ioMetrics:     o.ioMetrics,
		lastActivity:  now,
	}
	o.timeService.RegisterTimer(now+o.timerIntervalMillis, o)
	o.logger.Infof("watermark assigner opened, timer interval %dms", o.timerIntervalMillis)
	return nil
}

func (o *assignerOperator) ProcessEvent(event *element.Event[row.Row]) {
	if o.tracker.enabled() {
		if o.idle {
			o.idle = false
			o.Collector.EmitWatermarkStatus(element.ActiveWatermarkStatus)
		}
		o.tracker.activity(o.timeService.CurrentProcessingTime())
	}
	watermark, ok, err := o.generator.CurrentWatermark(event.Value)
	if err != nil {
		//extraction is deterministic user logic, a failure is a bug to surface
		panic(errors.WithMessage(err, "failed to compute watermark candidate"))
	}
	if ok && watermark > o.currentWatermark {
		o.currentWatermark = watermark
	}
	o.ioMetrics.RecordsIn.Inc(1)
	o.Collector.EmitEvent(event)
	o.ioMetrics.RecordsOut.Inc(1)
}

// ProcessWatermark discards upstream watermarks: this operator is the sole
// watermark authority on its output.
func (o *assignerOperator) ProcessWatermark(_ element.Watermark) {}

func (o *assignerOperator) ProcessWatermarkStatus(_ element.WatermarkStatus) {}

func (o *assignerOperator) OnProcessingTime(timestamp int64) {
	if o.closed {
		return
	}
	o.advanceWatermark()
	if o.tracker.enabled() && !o.idle && o.tracker.idle(o.timeService.CurrentProcessingTime()) {
		o.idle = true
		o.Collector.EmitWatermarkStatus(element.IdleWatermarkStatus)
	}
	//re-arm from the scheduled firing time so delayed firings don't skew the cadence
	o.timeService.RegisterTimer(timestamp+o.timerIntervalMillis, o)
}

func (o *assignerOperator) advanceWatermark() {
	if o.currentWatermark > o.lastEmitted {
		o.lastEmitted = o.currentWatermark
		o.Collector.EmitWatermark(element.Watermark(o.currentWatermark))
		o.ioMetrics.WatermarksOut.Inc(1)
	}
}

func (o *assignerOperator) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	//terminal signal: no real watermark may follow
	o.Collector.EmitWatermark(element.MaxWatermark)
	o.ioMetrics.WatermarksOut.Inc(1)
	if o.opened {
		o.opened = false
		if err := o.generator.Close(); err != nil {
			return errors.WithMessage(err, "failed to close watermark generator")
		}
	}
	return nil
}
