package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdash/internal/app/errors"
)

var plainCatalog = Catalog{
	{Level: LevelInfo, Message: "alpha"},
	{Level: LevelWarn, Message: "beta"},
	{Level: LevelError, Message: "gamma"},
}

func Test_NewSource(t *testing.T) {
	_, err := NewSource(plainCatalog, nil)
	assert.ErrorIs(t, err, errors.ErrNilRandomSource)

	_, err = NewSource(Catalog{}, newStubRandom())
	assert.ErrorIs(t, err, errors.ErrEmptyCatalog)

	src, err := NewSource(plainCatalog, newStubRandom())
	require.NoError(t, err)
	assert.NotNil(t, src)
}

func Test_Source_Next(t *testing.T) {
	src, err := NewSource(plainCatalog, newStubRandom(1, 2, 0))
	require.NoError(t, err)

	first := src.Next(baseTime)
	second := src.Next(baseTime)
	third := src.Next(baseTime)

	assert.Equal(t, Record{Timestamp: baseTime, Level: LevelWarn, Message: "beta"}, first)
	assert.Equal(t, LevelError, second.Level)
	assert.Equal(t, "alpha", third.Message)
}

func Test_Source_Deterministic(t *testing.T) {
	a, err := NewSource(DefaultCatalog(), NewRandom(42))
	require.NoError(t, err)

	b, err := NewSource(DefaultCatalog(), NewRandom(42))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(baseTime), b.Next(baseTime))
	}
}

func Test_Source_SetCatalog(t *testing.T) {
	src, err := NewSource(plainCatalog, newStubRandom(0))
	require.NoError(t, err)

	err = src.SetCatalog(Catalog{})
	assert.ErrorIs(t, err, errors.ErrEmptyCatalog)
	assert.Len(t, src.Catalog(), 3)

	err = src.SetCatalog(Catalog{{Level: LevelError, Message: "only"}})
	require.NoError(t, err)

	assert.Equal(t, "only", src.Next(baseTime).Message)
}

func Test_Source_CatalogIsCopy(t *testing.T) {
	src, err := NewSource(plainCatalog, newStubRandom(0))
	require.NoError(t, err)

	c := src.Catalog()
	c[0].Message = "changed"

	assert.Equal(t, "alpha", src.Next(baseTime).Message)
}

func Test_SeedRecords(t *testing.T) {
	records := SeedRecords(baseTime)

	require.NotEmpty(t, records)

	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Timestamp.Before(records[i].Timestamp))
	}

	assert.True(t, records[len(records)-1].Timestamp.Before(baseTime))
}
