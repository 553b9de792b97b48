package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_manager/model"

	"github.com/shopspring/decimal"
)

var (
	ErrPromotionInvalid = errors.New("invalid or expired promotion code")
	ErrInvalidDiscount  = errors.New("invalid discount amount")
)

// legacyItemSuffix marks codes such as PASTAHOUR that predate the RequiredItem field.
const legacyItemSuffix = "HOUR"

type RequiredItemError struct {
	Item string
}

func (e *RequiredItemError) Error() string {
	return fmt.Sprintf("requires %s in cart", e.Item)
}

// Discount is a parsed discountAmount: either a percentage or a flat amount.
type Discount struct {
	Percent bool
	Value   decimal.Decimal
}

// ParseDiscount accepts "20%", "12.5 %" or a flat "5" / "5.00".
func ParseDiscount(raw string) (Discount, error) {
	s := strings.TrimSpace(raw)
	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	value, err := decimal.NewFromString(s)
	if err != nil || value.IsNegative() {
		return Discount{}, ErrInvalidDiscount
	}
	if percent && value.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{Percent: percent, Value: value}, nil
}

// Apply returns the discount for total, clamped to [0, total].
func (d Discount) Apply(total decimal.Decimal) decimal.Decimal {
	if total.IsNegative() || total.IsZero() {
		return decimal.Zero
	}
	amount := d.Value
	if d.Percent {
		amount = total.Mul(d.Value).Div(decimal.NewFromInt(100))
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(total) {
		return total
	}
	return amount.Round(2)
}

// ParseValidUntil accepts RFC 3339 or a bare date; a bare date stays valid through
// the end of that day (UTC).
func ParseValidUntil(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid validUntil %q", raw)
	}
	return day.Add(24*time.Hour - time.Second), nil
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LegacyRequiredItem derives the required item from the old "<ITEM>HOUR" naming.
func LegacyRequiredItem(code string) string {
	code = NormalizeCode(code)
	if !strings.HasSuffix(code, legacyItemSuffix) || len(code) == len(legacyItemSuffix) {
		return ""
	}
	return strings.ToLower(strings.TrimSuffix(code, legacyItemSuffix))
}

// EvaluatePromotion checks that promo may be applied to cart at now and computes the
// discount on total. It never mutates promo.
func EvaluatePromotion(promo *model.Promotion, total decimal.Decimal, cart []model.CartLine, now time.Time) (decimal.Decimal, error) {
	if promo == nil || !promo.IsActive || promo.ValidUntil.Before(now) {
		return decimal.Zero, ErrPromotionInvalid
	}

	if item := strings.TrimSpace(promo.RequiredItem); item != "" {
		if !cartContains(cart, item) {
			return decimal.Zero, &RequiredItemError{Item: strings.ToLower(item)}
		}
	}

	discount, err := ParseDiscount(promo.DiscountAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return discount.Apply(total), nil
}

func cartContains(cart []model.CartLine, item string) bool {
	item = strings.ToLower(item)
	for _, line := range cart {
		if strings.Contains(strings.ToLower(line.Name), item) {
			return true
		}
	}
	return false
}
