// Package harness drives a single operator without a task loop: elements are
// pushed synchronously, processing time is advanced manually and all output
// is captured for assertions.
package harness

import (
	"github.com/flowmatic/streaming/common/executor"
	"github.com/flowmatic/streaming/element"
	"github.com/flowmatic/streaming/log"
	"github.com/flowmatic/streaming/metrics"
	"github.com/flowmatic/streaming/operator"
	"github.com/flowmatic/streaming/row"
	"github.com/uber-go/tally/v4"
)

type OneInputHarness struct {
	op operator.NormalOperator
	//Time and Metrics are exported so tests can move the clock and mark
	//backpressure directly.
	Time    *ManualTimeService
	Metrics *metrics.IOMetrics
	output  []element.NormalElement
}

func NewOneInput(op operator.NormalOperator, startTime int64) *OneInputHarness {
	return &OneInputHarness{
		op:      op,
		Time:    NewManualTimeService(startTime),
		Metrics: metrics.NewIOMetrics(tally.NoopScope),
	}
}

func (h *OneInputHarness) Open() error {
	ctx := operator.NewContext(
		log.Named("harness"),
		h.Metrics,
		h.Time,
		func(fn func()) *executor.Executor {
			newExecutor := executor.NewExecutor(fn)
			newExecutor.Exec()
			return newExecutor
		})
	return h.op.Open(ctx, func(e element.NormalElement) {
		h.output = append(h.output, e)
	})
}

func (h *OneInputHarness) Close() error {
	err := h.op.Close()
	h.Time.Quiesce()
	return err
}

func (h *OneInputHarness) ProcessRow(r row.Row) {
	h.op.ProcessElement(&element.Event[row.Row]{Value: r}, 0)
}

func (h *OneInputHarness) ProcessWatermark(watermark element.Watermark) {
	h.op.ProcessElement(watermark, 0)
}

func (h *OneInputHarness) ProcessWatermarkStatus(watermarkStatus element.WatermarkStatus) {
	h.op.ProcessElement(watermarkStatus, 0)
}

func (h *OneInputHarness) SetProcessingTime(timestamp int64) {
	h.Time.SetProcessingTime(timestamp)
}

func (h *OneInputHarness) Output() []element.NormalElement {
	return h.output
}

func (h *OneInputHarness) ClearOutput() {
	h.output = nil
}

// ControlSignals returns the output with pass-through events filtered out.
func (h *OneInputHarness) ControlSignals() []element.NormalElement {
	var signals []element.NormalElement
	for _, e := range h.output {
		switch e.(type) {
		case element.Watermark, element.WatermarkStatus:
			signals = append(signals, e)
		}
	}
	return signals
}

func (h *OneInputHarness) Watermarks() []element.Watermark {
	var watermarks []element.Watermark
	for _, e := range h.output {
		if watermark, ok := e.(element.Watermark); ok {
			watermarks = append(watermarks, watermark)
		}
	}
	return watermarks
}

func (h *OneInputHarness) Statuses() []element.WatermarkStatus {
	var statuses []element.WatermarkStatus
	for _, e := range h.output {
		if status, ok := e.(element.WatermarkStatus); ok {
			statuses = append(statuses, status)
		}
	}
	return statuses
}

func (h *OneInputHarness) Rows() []row.Row {
	var rows []row.Row
	for _, e := range h.output {
		if event, ok := e.(*element.Event[row.Row]); ok {
			rows = append(rows, event.Value)
		}
	}
	return rows
}
