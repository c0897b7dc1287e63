package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFields = Fields{
	Name:        "Kettle",
	Description: "1.7l electric kettle",
	Price:       35.5,
	Category:    "kitchen",
	InStock:     true,
}

func TestMemStore_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(SampleProducts()...)

	created, err := s.Insert(ctx, sampleFields)
	require.NoError(t, err)

	got, err := s.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", created.ID}, ids)
	assert.Equal(t, 4, s.Len(ctx))
}

func TestMemStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(SampleProducts()...)

	got, err := s.List(ctx)
	require.NoError(t, err)
	got[0].Name = "mutated"

	p, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
}

func TestMemStore_InsertAssignsUniqueID(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(SampleProducts()...)

	ids := []string{"1", "2", "fresh"}
	s.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	p, err := s.Insert(ctx, sampleFields)
	require.NoError(t, err)
	assert.Equal(t, "fresh", p.ID)
	assert.Equal(t, sampleFields.product("fresh"), p)
}

func TestMemStore_Replace(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(SampleProducts()...)

	p, err := s.Replace(ctx, "2", sampleFields)
	require.NoError(t, err)
	assert.Equal(t, sampleFields.product("2"), p)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "Kettle", all[1].Name)

	_, err = s.Replace(ctx, "missing", sampleFields)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_Remove(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore(SampleProducts()...)

	p, err := s.Remove(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", p.Name)

	_, err = s.Get(ctx, "2")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Remove(ctx, "2")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[1].ID)
}

func TestMemStore_SeedIsCopied(t *testing.T) {
	seed := SampleProducts()
	s := NewMemStore(seed...)
	seed[0].Name = "changed"

	p, err := s.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
}

func TestMemStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			f := sampleFields
			f.Name = fmt.Sprintf("item-%d", i)
			_, err := s.Insert(ctx, f)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)

	seen := make(map[string]struct{}, n)
	for _, p := range all {
		seen[p.ID] = struct{}{}
	}
	assert.Len(t, seen, n)
}
