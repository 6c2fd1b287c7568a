package mock

import (
	"sync"

	"github.com/flowmatic/streaming/element"
	"github.com/flowmatic/streaming/row"
)

// Sink captures everything emitted to it. Safe for concurrent emitters.
type Sink struct {
	mu       sync.Mutex
	elements []element.NormalElement
}

func (s *Sink) Emit(e element.NormalElement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = append(s.elements, e)
}

func (s *Sink) Elements() []element.NormalElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]element.NormalElement(nil), s.elements...)
}

func (s *Sink) Rows() []row.Row {
	var rows []row.Row
	for _, e := range s.Elements() {
		if event, ok := e.(*element.Event[row.Row]); ok {
			rows = append(rows, event.Value)
		}
	}
	return rows
}

func (s *Sink) Watermarks() []element.Watermark {
	var watermarks []element.Watermark
	for _, e := range s.Elements() {
		if watermark, ok := e.(element.Watermark); ok {
			watermarks = append(watermarks, watermark)
		}
	}
	return watermarks
}

func (s *Sink) Statuses() []element.WatermarkStatus {
	var statuses []element.WatermarkStatus
	for _, e := range s.Elements() {
		if status, ok := e.(element.WatermarkStatus); ok {
			statuses = append(statuses, status)
		}
	}
	return statuses
}
