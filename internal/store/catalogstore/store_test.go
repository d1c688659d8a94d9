package catalogstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogctl/internal/core/catalog"
	"catalogctl/internal/core/lifecycle"
	"catalogctl/internal/gateway"
)

func product(id int64, name string) catalog.Product {
	return catalog.Product{ID: id, Name: name}
}

func page(total int, items ...catalog.Product) gateway.ProductPage {
	return gateway.ProductPage{Items: items, TotalCount: total}
}

func TestStore_ListSuccessReplacesItems(t *testing.T) {
	s := New(5)

	seq := s.BeginList(2, "lamp")
	assert.Equal(t, lifecycle.StatePending, s.ListState())
	assert.Equal(t, 2, s.Page())
	assert.Equal(t, "lamp", s.Search())

	require.True(t, s.ResolveList(seq, page(25, product(1, "a"), product(2, "b")), nil))

	assert.Equal(t, lifecycle.StateSucceeded, s.ListState())
	assert.Len(t, s.Items(), 2)
	assert.Equal(t, 2, s.Page())
	assert.Equal(t, 5, s.TotalPages())
}

func TestStore_ListFailurePreservesItems(t *testing.T) {
	s := New(5)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(2, product(1, "a"), product(2, "b")), nil))

	seq = s.BeginList(2, "")
	require.True(t, s.ResolveList(seq, gateway.ProductPage{}, errors.New("network down")))

	assert.Equal(t, lifecycle.StateFailed, s.ListState())
	assert.Len(t, s.Items(), 2, "items from the last successful fetch must persist")
	assert.EqualError(t, s.Err(), "network down")
}

func TestStore_StaleListResponseIsDiscarded(t *testing.T) {
	s := New(10)

	first := s.BeginList(1, "")
	second := s.BeginList(2, "")

	require.True(t, s.ResolveList(second, page(1, product(2, "new")), nil))

	// The slow response for the first request arrives after the second
	// already resolved; it must not overwrite anything.
	assert.False(t, s.ResolveList(first, page(1, product(1, "old")), nil))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, int64(2), s.Items()[0].ID)
	assert.Equal(t, lifecycle.StateSucceeded, s.ListState())
}

func TestStore_ListClampsPageToTotalPages(t *testing.T) {
	s := New(10)

	seq := s.BeginList(9, "")
	require.True(t, s.ResolveList(seq, page(15, product(1, "a")), nil))

	assert.Equal(t, 2, s.TotalPages())
	assert.Equal(t, 2, s.Page())
}

func TestStore_FetchSetsAndClearsCurrent(t *testing.T) {
	s := New(10)

	seq := s.BeginFetch()
	require.True(t, s.ResolveFetch(seq, product(7, "lamp"), nil))
	require.NotNil(t, s.Current())
	assert.Equal(t, int64(7), s.Current().ID)

	// A failed fetch never leaves a stale product behind.
	seq = s.BeginFetch()
	require.True(t, s.ResolveFetch(seq, catalog.Product{}, errors.New("not found")))
	assert.Nil(t, s.Current())
	assert.Equal(t, lifecycle.StateFailed, s.FetchState())
}

func TestStore_StaleFetchIsDiscarded(t *testing.T) {
	s := New(10)

	first := s.BeginFetch()
	second := s.BeginFetch()

	require.True(t, s.ResolveFetch(second, product(2, "wanted"), nil))
	assert.False(t, s.ResolveFetch(first, product(1, "stale"), nil))

	require.NotNil(t, s.Current())
	assert.Equal(t, int64(2), s.Current().ID)
}

func TestStore_ClearCurrent(t *testing.T) {
	s := New(10)

	seq := s.BeginFetch()
	require.True(t, s.ResolveFetch(seq, product(1, "a"), nil))

	s.ClearCurrent()
	assert.Nil(t, s.Current())
	assert.Equal(t, lifecycle.StateIdle, s.FetchState())
}

func TestStore_CreatePrependsServerEntity(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(1, product(1, "old")), nil))

	seq = s.BeginCreate()
	require.True(t, s.ResolveCreate(seq, product(42, "new"), nil))

	require.Len(t, s.Items(), 2)
	assert.Equal(t, int64(42), s.Items()[0].ID, "created entity goes first")
	assert.Equal(t, lifecycle.StateSucceeded, s.CreateState())
}

func TestStore_CreateFailureLeavesItemsUntouched(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(1, product(1, "a")), nil))

	seq = s.BeginCreate()
	require.True(t, s.ResolveCreate(seq, catalog.Product{}, errors.New("validation failed")))

	assert.Len(t, s.Items(), 1)
	assert.EqualError(t, s.Err(), "validation failed")
}

func TestStore_UpdateReplacesByID(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(2, product(1, "a"), product(2, "b")), nil))

	fetchSeq := s.BeginFetch()
	require.True(t, s.ResolveFetch(fetchSeq, product(2, "b"), nil))

	seq = s.BeginUpdate()
	require.True(t, s.ResolveUpdate(seq, product(2, "b-renamed"), nil))

	assert.Equal(t, "b-renamed", s.Items()[1].Name)
	require.NotNil(t, s.Current())
	assert.Equal(t, "b-renamed", s.Current().Name)
}

func TestStore_DeleteRemovesItemAndClearsCurrent(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(2, product(3, "keep"), product(7, "doomed")), nil))

	fetchSeq := s.BeginFetch()
	require.True(t, s.ResolveFetch(fetchSeq, product(7, "doomed"), nil))

	seq = s.BeginDelete()
	require.True(t, s.ResolveDelete(seq, 7, nil))

	require.Len(t, s.Items(), 1)
	assert.Equal(t, int64(3), s.Items()[0].ID)
	assert.Nil(t, s.Current(), "deleting the inspected product clears it")
}

func TestStore_DeleteIsNotOptimistic(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(1, product(7, "doomed")), nil))

	s.BeginDelete()
	assert.Len(t, s.Items(), 1, "entry stays until the server confirms")
	assert.True(t, s.Busy())
}

func TestStore_DeleteFailurePreservesItems(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(1, product(7, "survivor")), nil))

	seq = s.BeginDelete()
	require.True(t, s.ResolveDelete(seq, 7, errors.New("conflict")))

	assert.Len(t, s.Items(), 1)
	assert.EqualError(t, s.Err(), "conflict")
}

func TestStore_IndependentLifecyclesDoNotStompEachOther(t *testing.T) {
	s := New(10)

	fetchSeq := s.BeginFetch()
	delSeq := s.BeginDelete()

	require.True(t, s.ResolveDelete(delSeq, 1, nil))
	assert.Equal(t, lifecycle.StatePending, s.FetchState(), "delete outcome must not touch the fetch lifecycle")

	require.True(t, s.ResolveFetch(fetchSeq, product(1, "a"), nil))
	assert.Equal(t, lifecycle.StateSucceeded, s.FetchState())
	assert.Equal(t, lifecycle.StateSucceeded, s.DeleteState())
}

func TestStore_ErrClearsOnNextSuccessOfSameKind(t *testing.T) {
	s := New(10)

	seq := s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, gateway.ProductPage{}, errors.New("boom")))
	assert.Error(t, s.Err())

	seq = s.BeginList(1, "")
	require.True(t, s.ResolveList(seq, page(0), nil))
	assert.NoError(t, s.Err())
}

func TestNew_PageSizeFloor(t *testing.T) {
	s := New(0)
	assert.Equal(t, 10, s.PageSize())
	assert.Equal(t, 1, s.Page())
	assert.Equal(t, 1, s.TotalPages())
}
