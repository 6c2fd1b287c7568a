package operator

import (
	"github.com/flowmatic/streaming/element"
)

// BaseOperator is part of the operator's functions to help developers save some work
type BaseOperator[IN, OUT any] struct {
	Ctx       Context
	Collector element.Collector[OUT]
}

func (o *BaseOperator[IN, OUT]) Open(ctx Context, collector element.Collector[OUT]) error {
	o.Ctx = ctx
	o.Collector = collector
	return nil
}

func (o *BaseOperator[IN, OUT]) Close() error {
	return nil
}

func (o *BaseOperator[IN, OUT]) ProcessEvent(event *element.Event[IN]) {
	panic("base operator can't process event")
}

func (o *BaseOperator[IN, OUT]) ProcessWatermark(watermark element.Watermark) {
	o.Collector.EmitWatermark(watermark)
}

func (o *BaseOperator[IN, OUT]) ProcessWatermarkStatus(watermarkStatus element.WatermarkStatus) {
	o.Collector.EmitWatermarkStatus(watermarkStatus)
}
