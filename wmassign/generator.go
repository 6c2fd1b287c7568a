package wmassign

import (
	"time"

	"github.com/flowmatic/streaming/operator"
	"github.com/flowmatic/streaming/row"
)

// Generator computes a per-record watermark candidate from the event time
// carried in the row. ok=false means the row carries no candidate; the
// operator then neither advances nor regresses its watermark.
//
// The operator calls Open exactly once before the first CurrentWatermark and
// Close exactly once after the last one, on every exit path. A generator may
// keep internal state across calls.
type Generator interface {
	Open(ctx operator.Context) error
	Close() error
	CurrentWatermark(r row.Row) (watermark int64, ok bool, err error)
}

type fromField struct {
	fieldIndex int
}

// FromField extracts the raw event-time value of the given row field as the
// watermark candidate. A NULL field yields no candidate.
func FromField(fieldIndex int) Generator {
	return &fromField{fieldIndex: fieldIndex}
}

func (g *fromField) Open(_ operator.Context) error { return nil }

func (g *fromField) Close() error { return nil }

func (g *fromField) CurrentWatermark(r row.Row) (int64, bool, error) {
	if r.IsNullAt(g.fieldIndex) {
		return 0, false, nil
	}
	return r.Int64(g.fieldIndex), true, nil
}

type boundedOutOfOrder struct {
	fieldIndex  int
	delayMillis int64
}

// BoundedOutOfOrder produces candidates lagging the row's event time by the
// given out-of-orderness bound.
func BoundedOutOfOrder(fieldIndex int, delay time.Duration) Generator {
	return &boundedOutOfOrder{
		fieldIndex:  fieldIndex,
		delayMillis: delay.Milliseconds(),
	}
}

func (g *boundedOutOfOrder) Open(_ operator.Context) error { return nil }

func (g *boundedOutOfOrder) Close() error { return nil }

func (g *boundedOutOfOrder) CurrentWatermark(r row.Row) (int64, bool, error) {
	if r.IsNullAt(g.fieldIndex) {
		return 0, false, nil
	}
	return r.Int64(g.fieldIndex) - g.delayMillis, true, nil
}
