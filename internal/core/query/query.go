// Package query defines the shared filter and pagination semantics for list
// endpoints: filters compose with AND, the total is counted before the
// skip/limit window is applied, and malformed window parameters are rejected
// rather than clamped.
package query

import (
	"errors"
	"fmt"
)

const (
	// DefaultLimit applies when the caller does not specify a limit.
	DefaultLimit = 100
	// MaxLimit is the upper bound accepted for a single page.
	MaxLimit = 1000
)

var ErrInvalidParam = errors.New("invalid query parameter")

// Window is the pagination slice requested by the caller. Limit zero is a
// legal request for an empty page (the total is still computed).
type Window struct {
	Skip  int
	Limit int
}

// DefaultWindow returns the window used when no parameters are supplied.
func DefaultWindow() Window {
	return Window{Skip: 0, Limit: DefaultLimit}
}

// Validate rejects negative skip/limit and limits beyond MaxLimit.
func (w Window) Validate() error {
	if w.Skip < 0 {
		return fmt.Errorf("%w: skip must be non-negative", ErrInvalidParam)
	}
	if w.Limit < 0 {
		return fmt.Errorf("%w: limit must be non-negative", ErrInvalidParam)
	}
	if w.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be at most %d", ErrInvalidParam, MaxLimit)
	}
	return nil
}

// Bounds converts the window into [lo, hi) slice indexes over a filtered set
// of n items. Skip beyond n yields an empty range.
func (w Window) Bounds(n int) (lo, hi int) {
	lo = w.Skip
	if lo > n {
		lo = n
	}
	hi = lo + w.Limit
	if hi > n {
		hi = n
	}
	return lo, hi
}

// Result is the canonical paginated response: Total reflects the filtered
// (not windowed) count.
type Result[T any] struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Items []T   `json:"items"`
}

// NewResult assembles a Result from an already-windowed item slice.
func NewResult[T any](items []T, total int64, w Window) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Total: total, Skip: w.Skip, Limit: w.Limit, Items: items}
}

// Paginate applies the window to a fully materialized filtered collection.
// Repositories that filter natively use Bounds instead; this is the reference
// engine for in-memory collections.
func Paginate[T any](items []T, w Window) Result[T] {
	lo, hi := w.Bounds(len(items))
	return NewResult(items[lo:hi], int64(len(items)), w)
}
