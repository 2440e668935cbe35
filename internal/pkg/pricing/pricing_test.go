package pricing_test

import (
	"testing"
	"time"

	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		err      error
	}{
		{"integer", "5000", "5000", nil},
		{"decimal", "149.99", "149.99", nil},
		{"quoted", `"250"`, "250", nil},
		{"zero", "0", "0", nil},
		{"empty", "", "", errors.ErrInvalidAmount},
		{"not a number", "abc", "", errors.ErrInvalidAmount},
		{"nan", "NaN", "", errors.ErrInvalidAmount},
		{"infinity", "Infinity", "", errors.ErrInvalidAmount},
		{"negative", "-10", "", errors.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := pricing.ParseAmount(tc.raw)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tc.expected, amount)
		})
	}
}

func TestCalculateFee(t *testing.T) {
	t.Run("default percentage", func(t *testing.T) {
		fee := pricing.CalculateFee(dec("5000"), nil)
		assertDecimal(t, "3", fee.FeePercentage)
		assertDecimal(t, "150", fee.FeeAmount)
		assertDecimal(t, "5150", fee.AmountWithFee)
		assertDecimal(t, "5150", fee.CustomerTotal)
		assertDecimal(t, "5000", fee.OriginalAmount)
	})

	t.Run("fee equals amount times percentage over hundred", func(t *testing.T) {
		amounts := []string{"0", "1", "99.99", "1234.56", "100000"}
		percentages := []string{"0", "1.5", "3", "7.25", "100"}
		for _, a := range amounts {
			for _, p := range percentages {
				fee := pricing.CalculateFee(dec(a), ptr(dec(p)))
				assertDecimal(t, dec(a).Mul(dec(p)).Div(decimal.NewFromInt(100)).String(), fee.FeeAmount)
				assert.True(t, fee.AmountWithFee.Equal(dec(a).Add(fee.FeeAmount)))
				assert.True(t, fee.CustomerTotal.Equal(fee.AmountWithFee))
			}
		}
	})
}

func TestResolveDiscount(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	testCases := []struct {
		name     string
		subtotal string
		quantity int
		cfg      pricing.DiscountConfig
		applied  string
		kind     string
	}{
		{
			name:     "no discounts configured",
			subtotal: "10000",
			quantity: 3,
			cfg:      pricing.DiscountConfig{},
			applied:  "0",
			kind:     pricing.DiscountNone,
		},
		{
			name:     "volume beats early bird",
			subtotal: "10000",
			quantity: 3,
			cfg: pricing.DiscountConfig{
				EarlyBirdEnabled:  true,
				EarlyBirdPercent:  dec("10"),
				EarlyBirdStart:    &yesterday,
				EarlyBirdEnd:      &tomorrow,
				VolumeEnabled:     true,
				VolumePercent:     dec("20"),
				VolumeMinQuantity: 2,
			},
			applied: "2000",
			kind:    pricing.DiscountVolume,
		},
		{
			name:     "early bird beats volume",
			subtotal: "10000",
			quantity: 5,
			cfg: pricing.DiscountConfig{
				EarlyBirdEnabled: true,
				EarlyBirdPercent: dec("25"),
				VolumeEnabled:    true,
				VolumePercent:    dec("5"),
			},
			applied: "2500",
			kind:    pricing.DiscountEarlyBird,
		},
		{
			name:     "early bird window not started",
			subtotal: "10000",
			quantity: 1,
			cfg: pricing.DiscountConfig{
				EarlyBirdEnabled: true,
				EarlyBirdPercent: dec("10"),
				EarlyBirdStart:   &tomorrow,
			},
			applied: "0",
			kind:    pricing.DiscountNone,
		},
		{
			name:     "early bird window closed",
			subtotal: "10000",
			quantity: 1,
			cfg: pricing.DiscountConfig{
				EarlyBirdEnabled: true,
				EarlyBirdPercent: dec("10"),
				EarlyBirdEnd:     &yesterday,
			},
			applied: "0",
			kind:    pricing.DiscountNone,
		},
		{
			name:     "early bird flag off ignores percentage",
			subtotal: "10000",
			quantity: 1,
			cfg: pricing.DiscountConfig{
				EarlyBirdPercent: dec("10"),
			},
			applied: "0",
			kind:    pricing.DiscountNone,
		},
		{
			name:     "volume minimum defaults to two",
			subtotal: "4000",
			quantity: 2,
			cfg: pricing.DiscountConfig{
				VolumeEnabled: true,
				VolumePercent: dec("10"),
			},
			applied: "400",
			kind:    pricing.DiscountVolume,
		},
		{
			name:     "volume below minimum",
			subtotal: "4000",
			quantity: 4,
			cfg: pricing.DiscountConfig{
				VolumeEnabled:     true,
				VolumePercent:     dec("10"),
				VolumeMinQuantity: 5,
			},
			applied: "0",
			kind:    pricing.DiscountNone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := pricing.ResolveDiscount(dec(tc.subtotal), tc.quantity, tc.cfg, now)
			assertDecimal(t, tc.applied, d.Applied)
			assert.Equal(t, tc.kind, d.Kind)
			assert.True(t, d.Applied.Equal(decimal.Max(d.EarlyBird, d.Volume)), "discounts must not stack")
		})
	}
}

func TestQuoteOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	t.Run("best of early bird and volume", func(t *testing.T) {
		cfg := pricing.DiscountConfig{
			EarlyBirdEnabled:  true,
			EarlyBirdPercent:  dec("10"),
			EarlyBirdStart:    &yesterday,
			EarlyBirdEnd:      &tomorrow,
			VolumeEnabled:     true,
			VolumePercent:     dec("20"),
			VolumeMinQuantity: 2,
		}
		items := []pricing.CartItem{
			{TierID: "regular", UnitPrice: dec("2000"), Quantity: 2},
			{TierID: "vip", UnitPrice: dec("6000"), Quantity: 1},
		}

		q := pricing.QuoteOrder(items, cfg, now)
		assertDecimal(t, "10000", q.Subtotal)
		assert.Equal(t, 3, q.Quantity)
		assertDecimal(t, "1000", q.Discount.EarlyBird)
		assertDecimal(t, "2000", q.Discount.Volume)
		assertDecimal(t, "2000", q.Discount.Applied)
		assertDecimal(t, "8000", q.DiscountedSubtotal)
		// 3% of the highest unit price, once per order
		assertDecimal(t, "180", q.ServiceFee)
		assertDecimal(t, "8180", q.Total)
		assert.False(t, q.IsFree)
	})

	t.Run("service fee is not per unit", func(t *testing.T) {
		items := []pricing.CartItem{{TierID: "regular", UnitPrice: dec("1000"), Quantity: 10}}
		q := pricing.QuoteOrder(items, pricing.DiscountConfig{}, now)
		assertDecimal(t, "30", q.ServiceFee)
		assertDecimal(t, "10030", q.Total)
	})

	t.Run("full discount makes the order free", func(t *testing.T) {
		cfg := pricing.DiscountConfig{EarlyBirdEnabled: true, EarlyBirdPercent: dec("100")}
		items := []pricing.CartItem{{TierID: "regular", UnitPrice: dec("1500"), Quantity: 1}}
		q := pricing.QuoteOrder(items, cfg, now)
		assert.True(t, q.IsFree)
		assertDecimal(t, "0", q.ServiceFee)
		assertDecimal(t, "0", q.Total)
	})

	t.Run("discount larger than subtotal is clamped", func(t *testing.T) {
		cfg := pricing.DiscountConfig{VolumeEnabled: true, VolumePercent: dec("150")}
		items := []pricing.CartItem{{TierID: "regular", UnitPrice: dec("100"), Quantity: 2}}
		q := pricing.QuoteOrder(items, cfg, now)
		assertDecimal(t, "0", q.DiscountedSubtotal)
		assert.True(t, q.IsFree)
	})

	t.Run("free tiers", func(t *testing.T) {
		items := []pricing.CartItem{{TierID: "rsvp", UnitPrice: decimal.Zero, Quantity: 1}}
		q := pricing.QuoteOrder(items, pricing.DiscountConfig{}, now)
		assert.True(t, q.IsFree)
		assertDecimal(t, "0", q.Total)
	})
}

func TestRefundAmount(t *testing.T) {
	t.Run("retains processing fee by default", func(t *testing.T) {
		amount, err := pricing.RefundAmount(dec("5000"), nil)
		require.NoError(t, err)
		assertDecimal(t, "4850", amount)
	})

	t.Run("rounds to kobo", func(t *testing.T) {
		amount, err := pricing.RefundAmount(dec("99.99"), nil)
		require.NoError(t, err)
		assertDecimal(t, "96.99", amount)
	})

	t.Run("override within price", func(t *testing.T) {
		amount, err := pricing.RefundAmount(dec("5000"), ptr(dec("2500")))
		require.NoError(t, err)
		assertDecimal(t, "2500", amount)
	})

	t.Run("override above price", func(t *testing.T) {
		_, err := pricing.RefundAmount(dec("5000"), ptr(dec("5150")))
		assert.Error(t, err)
	})

	t.Run("not paid", func(t *testing.T) {
		_, err := pricing.RefundAmount(decimal.Zero, nil)
		assert.ErrorIs(t, err, errors.ErrNotPaid)
	})
}

func TestSubunit(t *testing.T) {
	assert.Equal(t, int64(485000), pricing.ToSubunit(dec("4850")))
	assert.Equal(t, int64(9699), pricing.ToSubunit(dec("96.99")))
	assertDecimal(t, "5150", pricing.FromSubunit(515000))
}
