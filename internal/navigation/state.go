// Package navigation owns the current page index and the on-screen control
// strip that changes it.
package navigation

import (
	"Floatbook/internal/logger"

	"go.uber.org/zap"
)

// PageState is the single owner of the current page index. Valid indices are
// 0 (front cover) through Count() (back cover), inclusive. It is not safe for
// concurrent use; all access happens on the render thread.
type PageState struct {
	index     int
	count     int
	observers []func(index int)
}

func NewPageState(pageCount int) *PageState {
	if pageCount < 0 {
		pageCount = 0
	}
	return &PageState{count: pageCount}
}

func (s *PageState) Current() int {
	return s.index
}

// Count is the number of pages; the back cover index.
func (s *PageState) Count() int {
	return s.count
}

// Set moves to index and notifies observers when it changed. Indices outside
// [0, Count()] are rejected.
func (s *PageState) Set(index int) bool {
	if index < 0 || index > s.count {
		logger.Log.Debug("Page index out of range",
			zap.Int("index", index),
			zap.Int("count", s.count))
		return false
	}
	if index == s.index {
		return true
	}
	s.index = index
	for _, observe := range s.observers {
		observe(index)
	}
	return true
}

// Subscribe registers fn to run synchronously after every change.
func (s *PageState) Subscribe(fn func(index int)) {
	s.observers = append(s.observers, fn)
}
