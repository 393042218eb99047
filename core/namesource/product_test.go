package namesource_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usergen/core/format"
	"github.com/dmitrymomot/usergen/core/namesource"
)

func TestProduct_PairOrder(t *testing.T) {
	t.Parallel()

	t.Run("smaller last side is cached and iterated outer", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.txt", "Ann\nBo\n")
		last := writeFile(t, "last.txt", "Lee\n")

		src, err := namesource.OpenProduct(first, last)
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, 2, src.Len())
		records := drain(t, src)
		require.NoError(t, src.Err())
		assert.Equal(t, []format.Name{
			{First: "Ann", Last: "Lee"},
			{First: "Bo", Last: "Lee"},
		}, records)
	})

	t.Run("smaller last side groups by last name", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.txt", "Ann\nBo\nCy\n")
		last := writeFile(t, "last.txt", "Lee\nPark\n")

		src, err := namesource.OpenProduct(first, last)
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, 6, src.Len())
		records := drain(t, src)
		require.NoError(t, src.Err())
		assert.Equal(t, []format.Name{
			{First: "Ann", Last: "Lee"},
			{First: "Bo", Last: "Lee"},
			{First: "Cy", Last: "Lee"},
			{First: "Ann", Last: "Park"},
			{First: "Bo", Last: "Park"},
			{First: "Cy", Last: "Park"},
		}, records)
	})

	t.Run("equal sizes cache the first side", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.txt", "Ann\nBo\n")
		last := writeFile(t, "last.txt", "Lee\nPark\n")

		src, err := namesource.OpenProduct(first, last)
		require.NoError(t, err)
		defer src.Close()

		records := drain(t, src)
		require.NoError(t, src.Err())
		assert.Equal(t, []format.Name{
			{First: "Ann", Last: "Lee"},
			{First: "Ann", Last: "Park"},
			{First: "Bo", Last: "Lee"},
			{First: "Bo", Last: "Park"},
		}, records)
	})
}

func TestProduct_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	first := writeFile(t, "first.txt", "Ann\n\n  \nBo\n")
	last := writeFile(t, "last.txt", "\nLee\n\n")

	src, err := namesource.OpenProduct(first, last)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 2, src.Len())
	records := drain(t, src)
	require.NoError(t, src.Err())
	assert.Len(t, records, 2)
	for _, rec := range records {
		assert.Empty(t, rec.Middle)
		assert.Equal(t, "Lee", rec.Last)
	}
}

func TestProduct_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty first side", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.txt", "\n\n")
		last := writeFile(t, "last.txt", "Lee\n")

		src, err := namesource.OpenProduct(first, last)
		require.ErrorIs(t, err, namesource.ErrNoRecords)
		assert.Contains(t, err.Error(), first)
		assert.Nil(t, src)
	})

	t.Run("empty last side", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "first.txt", "Ann\n")
		last := writeFile(t, "last.txt", "")

		src, err := namesource.OpenProduct(first, last)
		require.ErrorIs(t, err, namesource.ErrNoRecords)
		assert.Contains(t, err.Error(), last)
		assert.Nil(t, src)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		last := writeFile(t, "last.txt", "Lee\n")
		src, err := namesource.OpenProduct(filepath.Join(t.TempDir(), "nope.txt"), last)
		require.Error(t, err)
		assert.Nil(t, src)
	})
}

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("counts non-blank lines", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "names.txt", "Ann\n\n  \nBo\nCy")
		n, err := namesource.Count(path)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := namesource.Count(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}
