// Package paging turns marker-paginated listing calls into lazy, flattened
// item sequences. Both remote services cursor the same way: a list call
// returns a page of items plus an opaque continuation marker, and an absent
// marker means the listing is complete.
package paging

import "context"

// FetchPage retrieves one page. A nil or empty next marker ends the
// sequence.
type FetchPage[T any] func(ctx context.Context, marker *string) (items []T, next *string, err error)

// Iterator yields items one at a time, fetching the next page only when the
// current page is drained. Callers can stop early without materializing the
// full listing. Not restartable: each listing builds a fresh Iterator, and
// re-listing issues fresh network calls.
type Iterator[T any] struct {
	fetch  FetchPage[T]
	buf    []T
	marker *string
	done   bool
	err    error
}

func New[T any](fetch FetchPage[T]) *Iterator[T] {
	return &Iterator[T]{fetch: fetch}
}

// Next returns the next item. ok is false when the sequence is exhausted or
// an error occurred; a fetch error is sticky.
func (it *Iterator[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	var zero T
	for len(it.buf) == 0 {
		if it.err != nil {
			return zero, false, it.err
		}
		if it.done {
			return zero, false, nil
		}
		items, next, err := it.fetch(ctx, it.marker)
		if err != nil {
			it.err = err
			return zero, false, err
		}
		it.buf = items
		if next == nil || *next == "" {
			it.done = true
		} else {
			it.marker = next
		}
	}
	item = it.buf[0]
	it.buf = it.buf[1:]
	return item, true, nil
}

// Collect drains the iterator into a slice.
func Collect[T any](ctx context.Context, it *Iterator[T]) ([]T, error) {
	var out []T
	for {
		item, ok, err := it.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, item)
	}
}
