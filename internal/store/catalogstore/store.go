// Package catalogstore owns the product collection snapshot: the visible
// list, the currently inspected product, and pagination state.
//
// Every operation kind tracks its own lifecycle, so a fetch in flight can
// never be stomped by a concurrent delete's status transition. List
// requests additionally enforce last-issued-wins: a slow stale response
// is discarded at reconciliation time rather than overwriting the result
// of a newer request.
package catalogstore

import (
	"catalogctl/internal/core/catalog"
	"catalogctl/internal/core/lifecycle"
	"catalogctl/internal/gateway"
)

// Snapshot is the read-only view of the collection state.
type Snapshot struct {
	Items      []catalog.Product
	Current    *catalog.Product
	Page       int
	TotalPages int
}

// Store reconciles operation outcomes into the collection snapshot.
// Not safe for concurrent use; all calls must happen on the event loop
// that owns the store.
type Store struct {
	items      []catalog.Product
	current    *catalog.Product
	page       int
	totalPages int
	search     string
	pageSize   int

	list   lifecycle.Tracker
	fetch  lifecycle.Tracker
	create lifecycle.Tracker
	update lifecycle.Tracker
	del    lifecycle.Tracker
}

// New creates an empty collection store with the given page size.
func New(pageSize int) *Store {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Store{page: 1, totalPages: 1, pageSize: pageSize}
}

// PageSize returns the configured page size.
func (s *Store) PageSize() int {
	return s.pageSize
}

// BeginList marks a list request for (page, search) as pending and
// returns its sequence. The page and search keys are recorded eagerly so
// the UI reflects the request being made, but Items are untouched until
// the outcome lands.
func (s *Store) BeginList(page int, search string) uint64 {
	if page < 1 {
		page = 1
	}
	s.page = page
	s.search = search
	return s.list.Begin()
}

// ResolveList applies a list outcome. Only the most recently issued list
// request may win; stale results are discarded and the method returns
// false. On success Items are replaced wholesale and TotalPages is
// recomputed from the normalized total count. On failure Items from the
// last successful fetch persist.
func (s *Store) ResolveList(seq uint64, page gateway.ProductPage, err error) bool {
	if err != nil {
		return s.list.Fail(seq, err)
	}
	if !s.list.Succeed(seq) {
		return false
	}
	s.items = page.Items
	s.totalPages = catalog.PageCount(page.TotalCount, s.pageSize)
	if s.page > s.totalPages {
		s.page = s.totalPages
	}
	return true
}

// BeginFetch marks a fetch-one request as pending.
func (s *Store) BeginFetch() uint64 {
	return s.fetch.Begin()
}

// ResolveFetch applies a fetch-one outcome: Current is replaced on
// success and cleared on failure, so a stale product is never shown
// under a new id.
func (s *Store) ResolveFetch(seq uint64, product catalog.Product, err error) bool {
	if err != nil {
		if !s.fetch.Fail(seq, err) {
			return false
		}
		s.current = nil
		return true
	}
	if !s.fetch.Succeed(seq) {
		return false
	}
	s.current = &product
	return true
}

// ClearCurrent drops the currently inspected product. Views call this on
// teardown so the next detail view never flashes stale data.
func (s *Store) ClearCurrent() {
	s.current = nil
	s.fetch.Reset()
}

// BeginCreate marks a create request as pending.
func (s *Store) BeginCreate() uint64 {
	return s.create.Begin()
}

// ResolveCreate applies a create outcome. On success the server-returned
// entity is prepended to Items; the server-assigned id and timestamps
// are authoritative.
func (s *Store) ResolveCreate(seq uint64, product catalog.Product, err error) bool {
	if err != nil {
		return s.create.Fail(seq, err)
	}
	if !s.create.Succeed(seq) {
		return false
	}
	s.items = append([]catalog.Product{product}, s.items...)
	return true
}

// BeginUpdate marks an update request as pending.
func (s *Store) BeginUpdate() uint64 {
	return s.update.Begin()
}

// ResolveUpdate applies an update outcome. On success the matching Items
// entry is replaced by id (a miss is fine: the entity may live on a
// different page), and Current is replaced when its id matches.
func (s *Store) ResolveUpdate(seq uint64, product catalog.Product, err error) bool {
	if err != nil {
		return s.update.Fail(seq, err)
	}
	if !s.update.Succeed(seq) {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i] = product
			break
		}
	}
	if s.current != nil && s.current.ID == product.ID {
		s.current = &product
	}
	return true
}

// BeginDelete marks a delete request as pending. Deletion is not
// optimistic: the entry stays visible until the server confirms.
func (s *Store) BeginDelete() uint64 {
	return s.del.Begin()
}

// ResolveDelete applies a delete outcome. On success the matching entry
// is removed from Items and a matching Current is cleared.
func (s *Store) ResolveDelete(seq uint64, id int64, err error) bool {
	if err != nil {
		return s.del.Fail(seq, err)
	}
	if !s.del.Succeed(seq) {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	return true
}

// Snapshot returns the current collection view state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:      s.items,
		Current:    s.current,
		Page:       s.page,
		TotalPages: s.totalPages,
	}
}

// Items returns the visible product list.
func (s *Store) Items() []catalog.Product {
	return s.items
}

// Current returns the currently inspected product, or nil.
func (s *Store) Current() *catalog.Product {
	return s.current
}

// Page returns the active page number.
func (s *Store) Page() int {
	return s.page
}

// TotalPages returns the page count from the last successful list fetch.
func (s *Store) TotalPages() int {
	return s.totalPages
}

// Search returns the active search term.
func (s *Store) Search() string {
	return s.search
}

// ListState returns the list operation's lifecycle state.
func (s *Store) ListState() lifecycle.State { return s.list.State() }

// FetchState returns the fetch-one operation's lifecycle state.
func (s *Store) FetchState() lifecycle.State { return s.fetch.State() }

// CreateState returns the create operation's lifecycle state.
func (s *Store) CreateState() lifecycle.State { return s.create.State() }

// UpdateState returns the update operation's lifecycle state.
func (s *Store) UpdateState() lifecycle.State { return s.update.State() }

// DeleteState returns the delete operation's lifecycle state.
func (s *Store) DeleteState() lifecycle.State { return s.del.State() }

// Busy returns true if any collection operation is in flight.
func (s *Store) Busy() bool {
	return s.list.Pending() || s.fetch.Pending() || s.create.Pending() || s.update.Pending() || s.del.Pending()
}

// Err returns the most relevant error to surface: the last failure among
// the collection operations, or nil when none failed. The error is held
// until the next successful operation of the same kind.
func (s *Store) Err() error {
	for _, t := range []*lifecycle.Tracker{&s.list, &s.fetch, &s.create, &s.update, &s.del} {
		if t.State() == lifecycle.StateFailed {
			return t.Err()
		}
	}
	return nil
}
