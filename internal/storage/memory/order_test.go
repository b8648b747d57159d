package memory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/payment-console/internal/domain/order"
)

func TestOrderRepository_Empty(t *testing.T) {
	repo := NewOrderRepository(&bytes.Buffer{})

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Zero(t, repo.Len())
}

func TestOrderRepository_SaveKeepsInsertionOrder(t *testing.T) {
	var out bytes.Buffer
	repo := NewOrderRepository(&out)
	ctx := context.Background()

	saved := []order.Order{
		{Amount: decimal.NewFromInt(10), PaymentType: "PayPal"},
		{Amount: decimal.NewFromInt(20), PaymentType: "CreditCard"},
		{Amount: decimal.NewFromInt(10), PaymentType: "PayPal"},
	}
	for i := range saved {
		require.NoError(t, repo.Save(ctx, &saved[i]))
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, orders)
	assert.Equal(t, 3, strings.Count(out.String(), "Order saved successfully.\n"))
}

func TestOrderRepository_ListReturnsSnapshot(t *testing.T) {
	repo := NewOrderRepository(&bytes.Buffer{})
	ctx := context.Background()
	o := &order.Order{Amount: decimal.NewFromInt(5), PaymentType: "PayPal"}
	require.NoError(t, repo.Save(ctx, o))

	o.PaymentType = "changed after save"
	orders, err := repo.List(ctx)
	require.NoError(t, err)
	orders[0].PaymentType = "changed through view"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PayPal", again[0].PaymentType)
}

func TestOrderRepository_SaveNil(t *testing.T) {
	var out bytes.Buffer
	repo := NewOrderRepository(&out)

	require.Error(t, repo.Save(context.Background(), nil))
	assert.Zero(t, repo.Len())
	assert.Empty(t, out.String())
}
