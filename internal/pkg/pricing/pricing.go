// Package pricing holds the checkout arithmetic: platform fees, early-bird and
// volume discounts, the per-order service fee and refund amounts. Every value
// is a decimal so kobo rounding never drifts.
package pricing

import (
	"strings"
	"time"

	"ticketing-service/internal/pkg/errors"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// DefaultFeePercent is the platform fee and the per-order service fee rate.
	DefaultFeePercent = decimal.NewFromInt(3)
	// RefundRetainPercent is kept back from every refund as a processing fee.
	RefundRetainPercent = decimal.NewFromInt(3)
)

const DefaultVolumeMinQuantity = 2

type FeeBreakdown struct {
	OriginalAmount decimal.Decimal
	FeePercentage  decimal.Decimal
	FeeAmount      decimal.Decimal
	AmountWithFee  decimal.Decimal
	CustomerTotal  decimal.Decimal
}

type DiscountConfig struct {
	EarlyBirdEnabled  bool
	EarlyBirdPercent  decimal.Decimal
	EarlyBirdStart    *time.Time
	EarlyBirdEnd      *time.Time
	VolumeEnabled     bool
	VolumePercent     decimal.Decimal
	VolumeMinQuantity int
}

type Discount struct {
	EarlyBird decimal.Decimal
	Volume    decimal.Decimal
	Applied   decimal.Decimal
	Kind      string
}

const (
	DiscountNone      = "none"
	DiscountEarlyBird = "early_bird"
	DiscountVolume    = "volume"
)

type CartItem struct {
	TierID    string
	UnitPrice decimal.Decimal
	Quantity  int
}

type Quote struct {
	Subtotal           decimal.Decimal
	Quantity           int
	Discount           Discount
	DiscountedSubtotal decimal.Decimal
	ServiceFee         decimal.Decimal
	Total              decimal.Decimal
	IsFree             bool
}

// ParseAmount accepts a plain or quoted decimal string.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return decimal.Zero, errors.ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, errors.ErrInvalidAmount
	}

	return amount, nil
}

// CalculateFee applies percentage (DefaultFeePercent when nil) on top of amount.
func CalculateFee(amount decimal.Decimal, percentage *decimal.Decimal) FeeBreakdown {
	pct := DefaultFeePercent
	if percentage != nil {
		pct = *percentage
	}

	fee := amount.Mul(pct).Div(hundred)
	withFee := amount.Add(fee)

	return FeeBreakdown{
		OriginalAmount: amount,
		FeePercentage:  pct,
		FeeAmount:      fee,
		AmountWithFee:  withFee,
		CustomerTotal:  withFee,
	}
}

// ResolveDiscount picks the larger of the early-bird and volume discounts. They never stack.
func ResolveDiscount(subtotal decimal.Decimal, quantity int, cfg DiscountConfig, now time.Time) Discount {
	d := Discount{
		EarlyBird: decimal.Zero,
		Volume:    decimal.Zero,
		Applied:   decimal.Zero,
		Kind:      DiscountNone,
	}

	if cfg.EarlyBirdEnabled && withinWindow(now, cfg.EarlyBirdStart, cfg.EarlyBirdEnd) {
		d.EarlyBird = subtotal.Mul(cfg.EarlyBirdPercent).Div(hundred)
	}

	minQty := cfg.VolumeMinQuantity
	if minQty <= 0 {
		minQty = DefaultVolumeMinQuantity
	}
	if cfg.VolumeEnabled && quantity >= minQty {
		d.Volume = subtotal.Mul(cfg.VolumePercent).Div(hundred)
	}

	switch {
	case d.Volume.GreaterThan(d.EarlyBird):
		d.Applied, d.Kind = d.Volume, DiscountVolume
	case d.EarlyBird.IsPositive():
		d.Applied, d.Kind = d.EarlyBird, DiscountEarlyBird
	}

	return d
}

func withinWindow(now time.Time, start, end *time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}

// QuoteOrder prices a cart. The service fee is charged once per order on the
// highest unit price, and is waived when the discounted subtotal reaches zero.
func QuoteOrder(items []CartItem, cfg DiscountConfig, now time.Time) Quote {
	subtotal := decimal.Zero
	highest := decimal.Zero
	quantity := 0

	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		quantity += item.Quantity
		if item.UnitPrice.GreaterThan(highest) {
			highest = item.UnitPrice
		}
	}

	discount := ResolveDiscount(subtotal, quantity, cfg, now)
	discounted := decimal.Max(decimal.Zero, subtotal.Sub(discount.Applied))

	q := Quote{
		Subtotal:           subtotal,
		Quantity:           quantity,
		Discount:           discount,
		DiscountedSubtotal: discounted,
		ServiceFee:         decimal.Zero,
		IsFree:             discounted.IsZero(),
	}

	if !q.IsFree {
		q.ServiceFee = highest.Mul(DefaultFeePercent).Div(hundred).Round(2)
	}
	q.Total = discounted.Add(q.ServiceFee)

	return q
}

// RefundAmount returns override when given, otherwise the price paid minus the
// retained processing fee.
func RefundAmount(pricePaid decimal.Decimal, override *decimal.Decimal) (decimal.Decimal, error) {
	if !pricePaid.IsPositive() {
		return decimal.Zero, errors.ErrNotPaid
	}

	if override != nil {
		if !override.IsPositive() || override.GreaterThan(pricePaid) {
			return decimal.Zero, errors.BadRequest("refund amount must be greater than zero and no more than the price paid")
		}
		return *override, nil
	}

	keep := hundred.Sub(RefundRetainPercent)
	return pricePaid.Mul(keep).Div(hundred).Round(2), nil
}

// ToSubunit converts naira to kobo as expected by the payment provider.
func ToSubunit(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func FromSubunit(subunit int64) decimal.Decimal {
	return decimal.NewFromInt(subunit).Div(hundred)
}
