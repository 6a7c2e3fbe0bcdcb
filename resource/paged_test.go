package resource

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOf(page, size int) PageData[string] {
	items := make([]string, size)
	for i := range items {
		items[i] = fmt.Sprintf("p%d-i%d", page, i)
	}
	return PageData[string]{Items: items, TotalPages: 5, TotalElements: int64(5 * size)}
}

func TestPaged_PageAndSizeAreFetchDependencies(t *testing.T) {
	var gotPages, gotSizes []int
	p := NewPaged(func(ctx context.Context, page, size int) (PageData[string], error) {
		gotPages = append(gotPages, page)
		gotSizes = append(gotSizes, size)
		return pageOf(page, size), nil
	}, 10)

	st := p.Load(context.Background())
	require.Empty(t, st.Err)
	assert.Equal(t, []int{0}, gotPages)

	st = p.SetPage(context.Background(), 2)
	require.Empty(t, st.Err)
	assert.Equal(t, []int{0, 2}, gotPages)
	assert.Equal(t, 2, p.Page())
	assert.Equal(t, "p2-i0", st.Data.Items[0])

	st = p.SetSize(context.Background(), 25)
	require.Empty(t, st.Err)
	assert.Equal(t, []int{0, 2, 0}, gotPages, "size change resets to the first page")
	assert.Equal(t, []int{10, 10, 25}, gotSizes)
}

func TestPaged_RefetchKeepsPage(t *testing.T) {
	fetches := 0
	p := NewPaged(func(ctx context.Context, page, size int) (PageData[string], error) {
		fetches++
		return pageOf(page, size), nil
	}, 10)

	p.SetPage(context.Background(), 3)
	st := p.Refetch(context.Background())

	assert.Equal(t, 2, fetches)
	assert.Equal(t, 3, p.Page())
	assert.Equal(t, "p3-i0", st.Data.Items[0])
}

func TestPaged_MutateRefetchesCurrentPage(t *testing.T) {
	fetches := 0
	p := NewPaged(func(ctx context.Context, page, size int) (PageData[string], error) {
		fetches++
		return pageOf(page, size), nil
	}, 10)
	p.Load(context.Background())

	err := p.Mutate(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestPaged_ErrorSurfacesTotalsReset(t *testing.T) {
	p := NewPaged(func(ctx context.Context, page, size int) (PageData[string], error) {
		return PageData[string]{}, fmt.Errorf("backend down")
	}, 10)

	st := p.Load(context.Background())
	assert.Equal(t, "backend down", st.Err)
	assert.Empty(t, st.Data.Items)
}
