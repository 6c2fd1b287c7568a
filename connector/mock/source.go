package mock

import (
	"time"

	"github.com/flowmatic/streaming/element"
	"github.com/flowmatic/streaming/row"
)

type GeneratorFn func(i int) row.Row

// Source pushes Count generated rows into emit at a fixed interval.
type Source struct {
	GeneratorFn GeneratorFn
	Count       int
	Interval    time.Duration
}

func (s *Source) RunTo(emit element.Emit) {
	for i := 0; i < s.Count; i++ {
		emit(&element.Event[row.Row]{Value: s.GeneratorFn(i)})
		if s.Interval > 0 {
			time.Sleep(s.Interval)
		}
	}
}
