package operator

import (
	"container/heap"
	"math"
	"time"
)

// ProcessingTimeCallback is fired by a ProcessingTimeService at or after the
// registered timestamp, on the task thread.
type ProcessingTimeCallback interface {
	OnProcessingTime(timestamp int64)
}

// ProcessingTimeService registers single-shot wall-clock timers. A callback
// that wants a fixed cadence must re-register itself before returning.
type ProcessingTimeService interface {
	CurrentProcessingTime() int64
	RegisterTimer(timestamp int64, callback ProcessingTimeCallback)
	//Quiesce drops all pending timers; no callback fires afterwards.
	Quiesce()
}

// Timer is a structure that contains triggering events
type Timer[T comparable] struct {
	Payload   T
	Timestamp int64
}

// timerQueue[T] is a priority queue,
// sorted from smallest to largest according to Timer.Timestamp,
// and use dedupeMap to prevent the same Timer from being inserted.
type timerQueue[T comparable] struct {
	items     []Timer[T]
	dedupeMap map[Timer[T]]struct{}
	nil       Timer[T]
}

//---------------------------------------------------------------------------------
//Warning: Do not call directly, expose the function only for the heap package to use
//---------------------------------------------------------------------------------

func (t *timerQueue[T]) Less(i, j int) bool {
	return t.items[i].Timestamp < t.items[j].Timestamp
}

func (t *timerQueue[T]) Swap(i, j int) {
	t.items[i], t.items[j] = t.items[j], t.items[i]
}

func (t *timerQueue[T]) Push(x any) {
	item := x.(Timer[T])
	t.items = append(t.items, item)
}

func (t *timerQueue[T]) Pop() any {
	old := t.items
	n := len(old)
	x := old[n-1]
	t.items = old[0 : n-1]
	return x
}

//---------------------------------------------------------------------------------

func (t *timerQueue[T]) Len() int {
	return len(t.items)
}

func (t *timerQueue[T]) PushTimer(item Timer[T]) {
	if _, ok := t.dedupeMap[item]; !ok {
		t.dedupeMap[item] = struct{}{}
		heap.Push(t, item)
	}
}

func (t *timerQueue[T]) PopTimer() Timer[T] {
	if len(t.items) == 0 {
		return t.nil
	}
	item := heap.Pop(t).(Timer[T])
	delete(t.dedupeMap, item)
	return item
}

func (t *timerQueue[T]) PeekTimer() Timer[T] {
	return t.items[0]
}

func (t *timerQueue[T]) Remove(timer Timer[T]) bool {
	index := t.index(timer)
	if index != -1 {
		delete(t.dedupeMap, timer)
		heap.Remove(t, index)
		return true
	}
	return false
}

func (t *timerQueue[T]) index(timer Timer[T]) int {
	for index, item := range t.items {
		if item == timer {
			return index
		}
	}
	return -1
}

func newTimerQueue[T comparable]() *timerQueue[T] {
	return &timerQueue[T]{dedupeMap: map[Timer[T]]struct{}{}}
}

// systemTimeService fires timers from wall clock. The time.AfterFunc
// goroutine never runs callbacks itself; it hands them to the task thread
// through execFn, which keeps firing serialized with element processing.
type systemTimeService struct {
	execFn    ExecFn
	queue     *timerQueue[ProcessingTimeCallback]
	nextTimer *time.Timer
	quiesced  bool
}

func NewSystemTimeService(execFn ExecFn) ProcessingTimeService {
	return &systemTimeService{
		execFn: execFn,
		queue:  newTimerQueue[ProcessingTimeCallback](),
	}
}

func (s *systemTimeService) CurrentProcessingTime() int64 {
	return time.Now().UnixMilli()
}

func (s *systemTimeService) RegisterTimer(timestamp int64, callback ProcessingTimeCallback) {
	if s.quiesced {
		return
	}
	s.queue.PushTimer(Timer[ProcessingTimeCallback]{Payload: callback, Timestamp: timestamp})
	if head := s.queue.PeekTimer(); head.Timestamp == timestamp || s.nextTimer == nil {
		s.rearm(head.Timestamp)
	}
}

func (s *systemTimeService) Quiesce() {
	s.quiesced = true
	if s.nextTimer != nil {
		s.nextTimer.Stop()
		s.nextTimer = nil
	}
}

func (s *systemTimeService) rearm(timestamp int64) {
	if s.nextTimer != nil {
		if !s.nextTimer.Stop() {
			//timer has been triggered.
		}
	}
	duration := time.Duration(math.Max(float64(timestamp-time.Now().UnixMilli()), 0)) * time.Millisecond
	s.nextTimer = time.AfterFunc(duration, func() {
		s.advanceProcessingTimestamp(timestamp)
	})
}

func (s *systemTimeService) advanceProcessingTimestamp(timestamp int64) {
	s.execFn(func() {
		if s.quiesced {
			return
		}
		for s.queue.Len() > 0 && s.queue.PeekTimer().Timestamp <= timestamp {
			timer := s.queue.PopTimer()
			timer.Payload.OnProcessingTime(timer.Timestamp)
		}
		if s.queue.Len() > 0 {
			s.rearm(s.queue.PeekTimer().Timestamp)
		}
	})
}
