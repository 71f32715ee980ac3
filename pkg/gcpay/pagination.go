package gcpay

import (
	"context"
	"errors"
)

const streamBufferSize = 10

// PageLister issues one list call against a path. Implemented by the
// resource services; mocked in tests.
type PageLister[T any] interface {
	ListWithPath(ctx context.Context, path string, params *ListParams) (*ListResponse[T], error)
}

// PaginationOptions tunes the bulk-fetch helpers.
type PaginationOptions struct {
	// PageSize overrides the per-page limit.
	PageSize int

	// MaxPages bounds how many pages are fetched. Zero means no bound.
	MaxPages int
}

// PageIterator lazily walks a cursor-paginated list one item at a
// time. A page is fetched only when the buffered items run out, so a
// partially consumed iterator never touches pages beyond what has
// been consumed.
type PageIterator[T any] struct {
	ctx    context.Context
	client PageLister[T]
	path   string
	params *ListParams

	buffer []T
	done   bool
}

// NewPageIterator creates an iterator over path using client.
func NewPageIterator[T any](ctx context.Context, client PageLister[T], path string, params *ListParams) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		params: params.clone(),
	}
}

// HasNext reports whether another item may be available. Before the
// first fetch it optimistically returns true; after that the previous
// page's after cursor makes the answer exact without fetching ahead.
func (it *PageIterator[T]) HasNext() bool {
	return len(it.buffer) > 0 || !it.done
}

// Next returns the next item, fetching the next page when needed.
// Returns ErrNoMoreItems once the sequence is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if len(it.buffer) == 0 {
		if it.done {
			return zero, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			return zero, err
		}

		if len(it.buffer) == 0 {
			return zero, ErrNoMoreItems
		}
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// fetch pulls the next page and advances the cursor. The iteration is
// done exactly when the server returns no after cursor.
func (it *PageIterator[T]) fetch() error {
	page, err := it.client.ListWithPath(it.ctx, it.path, it.params)
	if err != nil {
		return err
	}

	it.buffer = append(it.buffer, page.Items...)

	if page.Meta.Cursors.After != nil {
		it.params.After = *page.Meta.Cursors.After
	} else {
		it.done = true
	}

	return nil
}

// All drains the iterator and returns every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for {
		if len(it.buffer) == 0 && it.done {
			return items, nil
		}

		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return items, nil
			}

			return nil, err
		}

		items = append(items, item)
	}
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for {
		if len(it.buffer) == 0 && it.done {
			return nil
		}

		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// FetchAllPages eagerly collects items across pages, honoring the
// MaxPages bound when options are provided.
func FetchAllPages[T any](ctx context.Context, client PageLister[T], path string, params *ListParams, options *PaginationOptions) ([]T, error) {
	params = params.clone()
	if options != nil && options.PageSize > 0 {
		params.Limit = options.PageSize
	}

	var items []T

	pages := 0

	for {
		page, err := client.ListWithPath(ctx, path, params)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)
		pages++

		if page.Meta.Cursors.After == nil {
			return items, nil
		}

		if options != nil && options.MaxPages > 0 && pages >= options.MaxPages {
			return items, nil
		}

		params.After = *page.Meta.Cursors.After
	}
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and delivers each on the
// returned channel. The channel closes after the last page, on the
// first error, or when ctx is cancelled.
func StreamPages[T any](ctx context.Context, client PageLister[T], path string, params *ListParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T], streamBufferSize)

	params = params.clone()
	if options != nil && options.PageSize > 0 {
		params.Limit = options.PageSize
	}

	go func() {
		defer close(results)

		pages := 0

		for {
			page, err := client.ListWithPath(ctx, path, params)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Items}:
			case <-ctx.Done():
				return
			}

			pages++

			if page.Meta.Cursors.After == nil {
				return
			}

			if options != nil && options.MaxPages > 0 && pages >= options.MaxPages {
				return
			}

			params.After = *page.Meta.Cursors.After
		}
	}()

	return results
}
