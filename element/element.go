package element

// NormalElement is anything that travels through an operator chain:
// *Event[T], Watermark or WatermarkStatus.
type NormalElement any

type Emit func(element NormalElement)

type Collector[T any] interface {
	EmitEvent(event *Event[T])
	EmitWatermark(watermark Watermark)
	EmitWatermarkStatus(watermarkStatus WatermarkStatus)
}

type NoopCollector[T any] struct{}

func (n *NoopCollector[T]) EmitEvent(_ *Event[T]) {}

func (n *NoopCollector[T]) EmitWatermark(_ Watermark) {}

func (n *NoopCollector[T]) EmitWatermarkStatus(_ WatermarkStatus) {}
