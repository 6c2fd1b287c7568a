package operator

import (
	"github.com/flowmatic/streaming/element"
)

type collector[T any] struct {
	element.Emit
}

func (c *collector[T]) EmitEvent(event *element.Event[T]) {
	c.Emit(event)
}

func (c *collector[T]) EmitWatermark(watermark element.Watermark) {
	c.Emit(watermark)
}

func (c *collector[T]) EmitWatermarkStatus(watermarkStatus element.WatermarkStatus) {
	c.Emit(watermarkStatus)
}

type oneInputOperator[IN, OUT any] struct {
	OneInputOperator[IN, OUT]
}

func (o *oneInputOperator[IN, OUT]) Open(ctx Context, emit element.Emit) error {
	return o.OneInputOperator.Open(ctx, &collector[OUT]{emit})
}

func (o *oneInputOperator[IN, OUT]) Close() error {
	return o.OneInputOperator.Close()
}

func (o *oneInputOperator[IN, OUT]) ProcessElement(e element.NormalElement, _ int) {
	switch value := e.(type) {
	case *element.Event[IN]:
		o.OneInputOperator.ProcessEvent(value)
	case element.Watermark:
		o.OneInputOperator.ProcessWatermark(value)
	case element.WatermarkStatus:
		o.OneInputOperator.ProcessWatermarkStatus(value)
	}
}

func OneInputOperatorToNormal[IN, OUT any](operator OneInputOperator[IN, OUT]) NormalOperator {
	return &oneInputOperator[IN, OUT]{OneInputOperator: operator}
}
