package catalog_test

import (
	"testing"

	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPart(t *testing.T, id string, category catalog.Category, price int64) *catalog.Part {
	t.Helper()
	money, err := kernel.MoneyFromInt(price)
	require.NoError(t, err)
	p, err := catalog.NewPart(id, "part "+id, category, money, catalog.Nutrition{}, catalog.Images{})
	require.NoError(t, err)
	return p
}

func TestNewPart(t *testing.T) {
	price, _ := kernel.MoneyFromInt(1255)
	nutrition := catalog.Nutrition{Calories: 420, Proteins: 80, Fat: 24, Carbohydrates: 53}
	images := catalog.Images{Regular: "https://code.s3.yandex.net/react/code/bun-02.png"}

	t.Run("should create valid part", func(t *testing.T) {
		p, err := catalog.NewPart("643d69a5c3f7b9001cfa093c", "Краторная булка N-200i", catalog.Base, price, nutrition, images)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "643d69a5c3f7b9001cfa093c", p.ID())
		assert.Equal(t, "Краторная булка N-200i", p.Name())
		assert.Equal(t, catalog.Base, p.Category())
		assert.True(t, p.Price().IsEqual(price))
		assert.Equal(t, nutrition, p.Nutrition())
		assert.Equal(t, images, p.Images())
		assert.True(t, p.IsBase())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		p, err := catalog.NewPart("", "", catalog.Unknown, price, catalog.Nutrition{Fat: -1}, images)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, catalog.ErrCatalogIDIsRequired)
		require.ErrorIs(t, err, catalog.ErrNameIsRequired)
		assert.Contains(t, err.Error(), "category is invalid")
		assert.Contains(t, err.Error(), "fat")
	})
}

func TestPart_Validate(t *testing.T) {
	t.Run("should fail for nil part", func(t *testing.T) {
		var p *catalog.Part

		assert.Equal(t, catalog.ErrPartIsNotConstructed, p.Validate())
	})

	t.Run("should fail for zero value part", func(t *testing.T) {
		var p catalog.Part

		assert.Equal(t, catalog.ErrPartIsNotConstructed, p.Validate())
	})
}

func TestFilter(t *testing.T) {
	bun := mustPart(t, "bun-1", catalog.Base, 1255)
	cutlet := mustPart(t, "main-1", catalog.FillingSolid, 3000)
	sauce := mustPart(t, "sauce-1", catalog.FillingLiquid, 90)
	otherBun := mustPart(t, "bun-2", catalog.Base, 988)
	parts := []*catalog.Part{bun, cutlet, nil, sauce, otherBun}

	t.Run("should keep order within a category", func(t *testing.T) {
		assert.Equal(t, []*catalog.Part{bun, otherBun}, catalog.Filter(parts, catalog.Base))
		assert.Equal(t, []*catalog.Part{cutlet}, catalog.Filter(parts, catalog.FillingSolid))
		assert.Equal(t, []*catalog.Part{sauce}, catalog.Filter(parts, catalog.FillingLiquid))
	})

	t.Run("should return empty slice when nothing matches", func(t *testing.T) {
		filtered := catalog.Filter([]*catalog.Part{cutlet}, catalog.Base)

		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}
