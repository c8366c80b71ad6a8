package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mandihub/mandi/internal/checkout/domain"
)

func product(id, vendorID string, amount int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "product " + id,
		VendorID: vendorID,
		Price:    domain.Money{Currency: "INR", Amount: amount},
	}
}

func TestSplitGroupsByVendorInCartOrder(t *testing.T) {
	lines := []domain.Line{
		{ProductID: "p1", Quantity: 2}, // vendor A
		{ProductID: "p2", Quantity: 1}, // vendor B
		{ProductID: "p3", Quantity: 4}, // vendor A again
	}
	products := []domain.Product{
		product("p3", "vendor-a", 1000),
		product("p1", "vendor-a", 5000),
		product("p2", "vendor-b", 3000),
	}

	groups := Split(lines, products)
	require.Len(t, groups, 2)

	require.Equal(t, "vendor-a", groups[0].VendorID)
	require.Len(t, groups[0].Lines, 2)
	require.Equal(t, "p1", groups[0].Lines[0].Product.ID)
	require.Equal(t, "p3", groups[0].Lines[1].Product.ID)
	require.Equal(t, int64(2*5000+4*1000), groups[0].Total.Amount)
	require.Equal(t, "INR", groups[0].Total.Currency)

	require.Equal(t, "vendor-b", groups[1].VendorID)
	require.Equal(t, int64(3000), groups[1].Total.Amount)
}

func TestSplitSkipsUnresolvedLines(t *testing.T) {
	lines := []domain.Line{
		{ProductID: "gone", Quantity: 9},
		{ProductID: "p1", Quantity: 1},
	}
	products := []domain.Product{product("p1", "vendor-a", 100)}

	groups := Split(lines, products)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Lines, 1)
	require.Equal(t, int64(100), groups[0].Total.Amount)
}

func TestSplitEmpty(t *testing.T) {
	require.Empty(t, Split(nil, nil))
	require.Empty(t, Split([]domain.Line{{ProductID: "p1", Quantity: 1}}, nil))
}

func TestSplitDeterministic(t *testing.T) {
	lines := []domain.Line{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 7},
		{ProductID: "p3", Quantity: 1},
	}
	products := []domain.Product{
		product("p1", "vendor-a", 19999),
		product("p2", "vendor-b", 101),
		product("p3", "vendor-a", 250),
	}

	first := Split(lines, products)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Split(lines, products))
	}
}
