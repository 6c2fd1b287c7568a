package harness

import (
	"github.com/flowmatic/streaming/operator"
)

type manualTimer struct {
	timestamp int64
	callback  operator.ProcessingTimeCallback
}

// ManualTimeService is a ProcessingTimeService under test control. Time only
// moves when SetProcessingTime is called; due timers then fire synchronously
// on the caller's goroutine, in timestamp order, receiving their scheduled
// timestamps. Timers registered by a firing callback fire in the same call
// when already due.
type ManualTimeService struct {
	now      int64
	timers   []manualTimer
	quiesced bool
}

func NewManualTimeService(now int64) *ManualTimeService {
	return &ManualTimeService{now: now}
}

func (s *ManualTimeService) CurrentProcessingTime() int64 {
	return s.now
}

func (s *ManualTimeService) RegisterTimer(timestamp int64, callback operator.ProcessingTimeCallback) {
	if s.quiesced {
		return
	}
	s.timers = append(s.timers, manualTimer{timestamp: timestamp, callback: callback})
}

func (s *ManualTimeService) Quiesce() {
	s.quiesced = true
	s.timers = nil
}

func (s *ManualTimeService) NumTimers() int {
	return len(s.timers)
}

func (s *ManualTimeService) SetProcessingTime(timestamp int64) {
	if timestamp > s.now {
		s.now = timestamp
	}
	for {
		index := -1
		for i, timer := range s.timers {
			if timer.timestamp <= timestamp && (index == -1 || timer.timestamp < s.timers[index].timestamp) {
				index = i
			}
		}
		if index == -1 {
			return
		}
		timer := s.timers[index]
		s.timers = append(s.timers[:index], s.timers[index+1:]...)
		timer.callback.OnProcessingTime(timer.timestamp)
	}
}
