package assembly_test

import (
	"math/rand/v2"
	"testing"

	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPart(t *testing.T, id string, category catalog.Category, price int64) *catalog.Part {
	t.Helper()
	money, err := kernel.MoneyFromInt(price)
	require.NoError(t, err)
	p, err := catalog.NewPart(id, "part "+id, category, money, catalog.Nutrition{}, catalog.Images{})
	require.NoError(t, err)
	return p
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func instanceIDs(fillings []assembly.SelectedPart) []string {
	ids := make([]string, len(fillings))
	for i, f := range fillings {
		ids[i] = f.InstanceID().String()
	}
	return ids
}

func TestNewAssembly(t *testing.T) {
	a := assembly.NewAssembly()

	require.NoError(t, a.Validate())
	assert.True(t, a.IsEmpty())
	assert.True(t, a.Price().IsZero())
	assert.Empty(t, a.Fillings())
	assert.Empty(t, a.Counters())
	_, hasBase := a.Base()
	assert.False(t, hasBase)
}

func TestAssembly_Validate(t *testing.T) {
	var zero assembly.Assembly
	var nilAssembly *assembly.Assembly

	assert.Equal(t, assembly.ErrAssemblyIsNotConstructed, zero.Validate())
	assert.Equal(t, assembly.ErrAssemblyIsNotConstructed, nilAssembly.Validate())
}

func TestAssembly_AddPart(t *testing.T) {
	bun := newPart(t, "643d69a5c3f7b9001cfa093c", catalog.Base, 1255)
	otherBun := newPart(t, "643d69a5c3f7b9001cfa093d", catalog.Base, 988)
	cutlet := newPart(t, "643d69a5c3f7b9001cfa0941", catalog.FillingSolid, 3000)
	sauce := newPart(t, "643d69a5c3f7b9001cfa0942", catalog.FillingLiquid, 80)

	t.Run("should put base part into base slot", func(t *testing.T) {
		a := assembly.NewAssembly()

		selected, err := a.AddPart(bun)

		require.NoError(t, err)
		require.NoError(t, selected.Validate())
		base, ok := a.Base()
		require.True(t, ok)
		assert.True(t, base.InstanceID().IsEqual(selected.InstanceID()))
		assert.Equal(t, bun, base.Part())
		assert.Zero(t, a.FillingCount())
	})

	t.Run("should replace base without growing fillings", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(bun)
		_, _ = a.AddPart(cutlet)

		_, err := a.AddPart(otherBun)

		require.NoError(t, err)
		base, _ := a.Base()
		assert.Equal(t, otherBun.ID(), base.CatalogID())
		assert.Equal(t, 1, a.FillingCount())
	})

	t.Run("should append fillings in order", func(t *testing.T) {
		a := assembly.NewAssembly()

		first, _ := a.AddPart(cutlet)
		second, _ := a.AddPart(sauce)

		fillings := a.Fillings()
		require.Len(t, fillings, 2)
		assert.True(t, fillings[0].InstanceID().IsEqual(first.InstanceID()))
		assert.True(t, fillings[1].InstanceID().IsEqual(second.InstanceID()))
	})

	t.Run("should give the same catalog part distinct instance ids", func(t *testing.T) {
		a := assembly.NewAssembly()

		first, _ := a.AddPart(cutlet)
		second, _ := a.AddPart(cutlet)

		assert.Equal(t, first.CatalogID(), second.CatalogID())
		assert.False(t, first.InstanceID().IsEqual(second.InstanceID()))
	})

	t.Run("should reject parts not built by the catalog", func(t *testing.T) {
		a := assembly.NewAssembly()

		_, err := a.AddPart(&catalog.Part{})

		require.ErrorIs(t, err, catalog.ErrPartIsNotConstructed)
		assert.True(t, a.IsEmpty())
	})

	t.Run("should never reissue an instance id", func(t *testing.T) {
		repeated := kernel.NewUUID()
		fresh := kernel.NewUUID()
		calls := 0
		a := assembly.NewAssembly(assembly.WithInstanceIDs(func() kernel.UUID {
			calls++
			if calls <= 3 {
				return repeated
			}
			return fresh
		}))

		first, _ := a.AddPart(cutlet)
		require.True(t, a.RemovePart(first.InstanceID()))
		second, _ := a.AddPart(cutlet)

		assert.True(t, first.InstanceID().IsEqual(repeated))
		assert.True(t, second.InstanceID().IsEqual(fresh))
	})

	t.Run("should skip invalid generated ids", func(t *testing.T) {
		valid := kernel.NewUUID()
		calls := 0
		a := assembly.NewAssembly(assembly.WithInstanceIDs(func() kernel.UUID {
			calls++
			if calls == 1 {
				return kernel.UUID{}
			}
			return valid
		}))

		selected, err := a.AddPart(sauce)

		require.NoError(t, err)
		assert.True(t, selected.InstanceID().IsEqual(valid))
	})
}

func TestAssembly_RemovePart(t *testing.T) {
	bun := newPart(t, "bun", catalog.Base, 1255)
	cutlet := newPart(t, "cutlet", catalog.FillingSolid, 3000)
	sauce := newPart(t, "sauce", catalog.FillingLiquid, 500)

	t.Run("should remove exactly the matching filling", func(t *testing.T) {
		a := assembly.NewAssembly()
		first, _ := a.AddPart(cutlet)
		second, _ := a.AddPart(cutlet)
		third, _ := a.AddPart(sauce)

		removed := a.RemovePart(first.InstanceID())

		assert.True(t, removed)
		assert.Equal(t,
			[]string{second.InstanceID().String(), third.InstanceID().String()},
			instanceIDs(a.Fillings()))
	})

	t.Run("should leave state unchanged for unknown id", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(bun)
		_, _ = a.AddPart(cutlet)
		before := a.Fillings()
		priceBefore := a.Price()

		removed := a.RemovePart(kernel.NewUUID())

		assert.False(t, removed)
		assert.Equal(t, before, a.Fillings())
		assert.True(t, priceBefore.IsEqual(a.Price()))
	})

	t.Run("should not remove the base", func(t *testing.T) {
		a := assembly.NewAssembly()
		base, _ := a.AddPart(bun)

		removed := a.RemovePart(base.InstanceID())

		assert.False(t, removed)
		_, ok := a.Base()
		assert.True(t, ok)
	})
}

func TestAssembly_MoveFilling(t *testing.T) {
	cutlet := newPart(t, "643d69a5c3f7b9001cfa0941", catalog.FillingSolid, 3000)
	sauce := newPart(t, "643d69a5c3f7b9001cfa0945", catalog.FillingLiquid, 500)
	cheese := newPart(t, "643d69a5c3f7b9001cfa094a", catalog.FillingSolid, 4142)

	setup := func() (*assembly.Assembly, []string) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(cutlet)
		_, _ = a.AddPart(sauce)
		_, _ = a.AddPart(cheese)
		return a, instanceIDs(a.Fillings())
	}

	t.Run("should move a later filling to the front", func(t *testing.T) {
		a, ids := setup()

		a.MoveFilling(1, 0)

		assert.Equal(t, []string{ids[1], ids[0], ids[2]}, instanceIDs(a.Fillings()))
	})

	t.Run("should move the first filling to the end", func(t *testing.T) {
		a, ids := setup()

		a.MoveFilling(0, 2)

		assert.Equal(t, []string{ids[1], ids[2], ids[0]}, instanceIDs(a.Fillings()))
	})

	t.Run("should move one step down", func(t *testing.T) {
		a, ids := setup()

		a.MoveFilling(0, 1)

		assert.Equal(t, []string{ids[1], ids[0], ids[2]}, instanceIDs(a.Fillings()))
	})

	t.Run("should be a no-op for equal indices", func(t *testing.T) {
		a, ids := setup()

		for i := range ids {
			a.MoveFilling(i, i)
		}

		assert.Equal(t, ids, instanceIDs(a.Fillings()))
	})

	t.Run("should not change price", func(t *testing.T) {
		a, _ := setup()
		before := a.Price()

		a.MoveFilling(2, 0)

		assert.True(t, before.IsEqual(a.Price()))
	})
}

func TestAssembly_Clear(t *testing.T) {
	a := assembly.NewAssembly()
	_, _ = a.AddPart(newPart(t, "bun", catalog.Base, 1255))
	_, _ = a.AddPart(newPart(t, "cutlet", catalog.FillingSolid, 3000))

	a.Clear()

	assert.True(t, a.IsEmpty())
	assert.True(t, a.Price().IsZero())
	assert.Empty(t, a.Fillings())
}

func TestAssembly_Price(t *testing.T) {
	t.Run("should charge the base twice", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(newPart(t, "A", catalog.Base, 1255))
		_, _ = a.AddPart(newPart(t, "B", catalog.FillingSolid, 3000))

		assert.True(t, a.Price().IsEqual(money(t, 5510)), "got %s", a.Price())
	})

	t.Run("should sum fillings without a base", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(newPart(t, "B", catalog.FillingSolid, 3000))
		_, _ = a.AddPart(newPart(t, "C", catalog.FillingLiquid, 90))

		assert.True(t, a.Price().IsEqual(money(t, 3090)))
	})

	t.Run("should hold for random operation sequences", func(t *testing.T) {
		parts := []*catalog.Part{
			newPart(t, "bun-1", catalog.Base, 1255),
			newPart(t, "bun-2", catalog.Base, 988),
			newPart(t, "main-1", catalog.FillingSolid, 3000),
			newPart(t, "main-2", catalog.FillingSolid, 424),
			newPart(t, "sauce-1", catalog.FillingLiquid, 90),
		}
		rng := rand.New(rand.NewPCG(1, 2))
		a := assembly.NewAssembly()

		for step := range 2000 {
			switch op := rng.IntN(3); {
			case op == 0:
				_, err := a.AddPart(parts[rng.IntN(len(parts))])
				require.NoError(t, err)
			case op == 1 && a.FillingCount() > 0:
				fillings := a.Fillings()
				a.RemovePart(fillings[rng.IntN(len(fillings))].InstanceID())
			case op == 2 && a.FillingCount() > 0:
				a.MoveFilling(rng.IntN(a.FillingCount()), rng.IntN(a.FillingCount()))
			}

			expected := kernel.Zero()
			seen := make(map[string]struct{})
			if base, ok := a.Base(); ok {
				expected = expected.Add(base.Price()).Add(base.Price())
				seen[base.InstanceID().String()] = struct{}{}
			}
			for _, f := range a.Fillings() {
				expected = expected.Add(f.Price())
				_, dup := seen[f.InstanceID().String()]
				require.False(t, dup, "duplicate instance id at step %d", step)
				seen[f.InstanceID().String()] = struct{}{}
			}
			require.True(t, expected.IsEqual(a.Price()), "step %d: want %s, got %s", step, expected, a.Price())
		}
	})
}

func TestAssembly_Counters(t *testing.T) {
	bun := newPart(t, "bun", catalog.Base, 1255)
	cutlet := newPart(t, "cutlet", catalog.FillingSolid, 3000)
	sauce := newPart(t, "sauce", catalog.FillingLiquid, 90)
	a := assembly.NewAssembly()
	_, _ = a.AddPart(cutlet)
	_, _ = a.AddPart(bun)
	_, _ = a.AddPart(cutlet)
	_, _ = a.AddPart(sauce)

	assert.Equal(t, map[string]int{"bun": 2, "cutlet": 2, "sauce": 1}, a.Counters())
}

func TestAssembly_OrderRequest(t *testing.T) {
	bun := newPart(t, "643d69a5c3f7b9001cfa093c", catalog.Base, 1255)
	cutlet := newPart(t, "643d69a5c3f7b9001cfa0941", catalog.FillingSolid, 3000)
	sauce := newPart(t, "643d69a5c3f7b9001cfa0942", catalog.FillingLiquid, 90)

	t.Run("should wrap fillings with the base id", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(sauce)
		_, _ = a.AddPart(bun)
		_, _ = a.AddPart(cutlet)

		req, err := a.OrderRequest()

		require.NoError(t, err)
		assert.Equal(t, []string{bun.ID(), sauce.ID(), cutlet.ID(), bun.ID()}, req.IngredientIDs())
		assert.Equal(t, 4, req.Len())
	})

	t.Run("should accept a base without fillings", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(bun)

		req, err := a.OrderRequest()

		require.NoError(t, err)
		assert.Equal(t, []string{bun.ID(), bun.ID()}, req.IngredientIDs())
	})

	t.Run("should fail without a base", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(cutlet)

		_, err := a.OrderRequest()

		require.ErrorIs(t, err, assembly.ErrBaseIsRequired)
	})

	t.Run("returned ids should be a copy", func(t *testing.T) {
		a := assembly.NewAssembly()
		_, _ = a.AddPart(bun)
		req, _ := a.OrderRequest()

		ids := req.IngredientIDs()
		ids[0] = "mutated"

		assert.Equal(t, bun.ID(), req.IngredientIDs()[0])
	})
}
