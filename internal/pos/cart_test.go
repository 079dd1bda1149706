package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ventapos/internal/domain"
)

func sellable(id string, price int64, stock int) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     id,
		Category: "test",
		Price:    domain.KnownPrice(decimal.NewFromInt(price)),
		Stock:    domain.KnownStock(stock),
	}
}

func TestAddRejectsIncompleteCatalogData(t *testing.T) {
	var c Cart

	noPrice := domain.Product{ID: "p1", Name: "p1", Stock: domain.KnownStock(5)}
	require.Equal(t, AddNoPrice, c.Add(noPrice))
	require.True(t, c.Empty())

	noStock := domain.Product{ID: "p2", Name: "p2", Price: domain.KnownPrice(decimal.NewFromInt(100))}
	require.Equal(t, AddNoStockInfo, c.Add(noStock))
	require.True(t, c.Empty())
}

func TestAddAccumulatesUpToStockCeiling(t *testing.T) {
	var c Cart
	p := sellable("p1", 1190, 1)

	require.Equal(t, AddOK, c.Add(p))
	require.Equal(t, AddStockLimit, c.Add(p))
	require.Equal(t, 1, c.Quantity("p1"))
	require.Len(t, c.Items(), 1)
}

func TestAddZeroStockNeverEntersCart(t *testing.T) {
	var c Cart
	require.Equal(t, AddStockLimit, c.Add(sellable("p1", 500, 0)))
	require.True(t, c.Empty())
}

func TestAddKeepsOneLinePerProduct(t *testing.T) {
	var c Cart
	p := sellable("p1", 1000, 10)
	q := sellable("p2", 2000, 10)

	require.Equal(t, AddOK, c.Add(p))
	require.Equal(t, AddOK, c.Add(q))
	require.Equal(t, AddOK, c.Add(p))

	items := c.Items()
	require.Len(t, items, 2)
	// insertion order is display order
	require.Equal(t, "p1", items[0].Product.ID)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, "p2", items[1].Product.ID)
}

func TestDecrease(t *testing.T) {
	var c Cart
	p := sellable("p1", 1000, 10)

	require.Equal(t, DecreaseAbsent, c.Decrease(p))

	c.Add(p)
	c.Add(p)
	require.Equal(t, DecreaseReduced, c.Decrease(p))
	require.Equal(t, 1, c.Quantity("p1"))
	require.Equal(t, DecreaseRemoved, c.Decrease(p))
	require.True(t, c.Empty())
}

func TestSetQuantityClamps(t *testing.T) {
	var c Cart
	c.Add(sellable("p1", 1000, 5))

	c.SetQuantity("p1", -3)
	require.Equal(t, 1, c.Quantity("p1"))

	c.SetQuantity("p1", 99)
	require.Equal(t, 5, c.Quantity("p1"))

	c.SetQuantity("p1", 3)
	require.Equal(t, 3, c.Quantity("p1"))

	// unknown product: no-op
	c.SetQuantity("ghost", 2)
	require.Len(t, c.Items(), 1)
}

func TestSetQuantityRemovesWhenCeilingDropsToZero(t *testing.T) {
	var c Cart
	c.Add(sellable("p1", 1000, 5))

	// stock refreshed upstream to 0 since the line was created
	c.items[0].Product.Stock = domain.KnownStock(0)
	c.SetQuantity("p1", 2)
	require.True(t, c.Empty())
}

func TestRemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(sellable("p1", 1000, 5))
	c.Add(sellable("p2", 2000, 5))

	c.Remove("p1")
	require.Equal(t, 0, c.Quantity("p1"))
	require.Len(t, c.Items(), 1)

	c.Clear()
	require.True(t, c.Empty())
}

// Quantity never exceeds stock and is never observed <= 0 across arbitrary
// add/decrease sequences.
func TestQuantityInvariantUnderMixedOps(t *testing.T) {
	var c Cart
	p := sellable("p1", 750, 4)

	ops := []func(){
		func() { c.Add(p) },
		func() { c.Add(p) },
		func() { c.Decrease(p) },
		func() { c.Add(p) },
		func() { c.Add(p) },
		func() { c.Add(p) },
		func() { c.Add(p) }, // over ceiling, rejected
		func() { c.Decrease(p) },
		func() { c.Decrease(p) },
		func() { c.Decrease(p) },
		func() { c.Decrease(p) }, // removed by now
		func() { c.Add(p) },
	}
	for _, op := range ops {
		op()
		for _, it := range c.Items() {
			require.GreaterOrEqual(t, it.Quantity, 1)
			require.LessOrEqual(t, it.Quantity, 4)
		}
	}
}
