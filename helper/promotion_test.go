package helper

import (
	"testing"
	"time"

	"restaurant_manager/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func promo(code, amount string) *model.Promotion {
	return &model.Promotion{
		Code:           code,
		DiscountAmount: amount,
		IsActive:       true,
		ValidUntil:     now.Add(24 * time.Hour),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluatePromotionPercentage(t *testing.T) {
	discount, err := EvaluatePromotion(promo("SAVE20", "20%"), dec("100"), nil, now)
	require.NoError(t, err)
	assert.True(t, discount.Equal(dec("20")), "got %s", discount)
	assert.True(t, dec("100").Sub(discount).Equal(dec("80")))
}

func TestEvaluatePromotionBounds(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		total  string
		want   string
	}{
		{"flat below total", "5", "42.50", "5"},
		{"flat above total is clamped", "50", "30", "30"},
		{"percent rounds to cents", "15%", "33.33", "5"},
		{"hundred percent", "100%", "18.40", "18.40"},
		{"zero total", "10", "0", "0"},
		{"spaced percent", "12.5 %", "80", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, err := EvaluatePromotion(promo("CODE", tt.amount), dec(tt.total), nil, now)
			require.NoError(t, err)
			assert.True(t, discount.Equal(dec(tt.want)), "got %s want %s", discount, tt.want)
			assert.False(t, discount.IsNegative())
			assert.True(t, discount.LessThanOrEqual(dec(tt.total)))
		})
	}
}

func TestEvaluatePromotionRejectsInactiveOrExpired(t *testing.T) {
	expired := promo("OLD", "10%")
	expired.ValidUntil = now.Add(-time.Minute)
	_, err := EvaluatePromotion(expired, dec("10"), nil, now)
	assert.ErrorIs(t, err, ErrPromotionInvalid)

	inactive := promo("OFF", "10%")
	inactive.IsActive = false
	_, err = EvaluatePromotion(inactive, dec("10"), nil, now)
	assert.ErrorIs(t, err, ErrPromotionInvalid)

	_, err = EvaluatePromotion(nil, dec("10"), nil, now)
	assert.ErrorIs(t, err, ErrPromotionInvalid)
}

func TestEvaluatePromotionRequiredItem(t *testing.T) {
	p := promo("PASTAHOUR", "10%")
	p.RequiredItem = "Pasta"

	_, err := EvaluatePromotion(p, dec("20"), []model.CartLine{{Name: "Tiramisu"}}, now)
	var reqErr *RequiredItemError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "requires pasta in cart", reqErr.Error())

	discount, err := EvaluatePromotion(p, dec("20"), []model.CartLine{{Name: "Creamy PASTA Carbonara"}}, now)
	require.NoError(t, err)
	assert.True(t, discount.Equal(dec("2")))
}

func TestParseDiscount(t *testing.T) {
	d, err := ParseDiscount("20%")
	require.NoError(t, err)
	assert.True(t, d.Percent)

	d, err = ParseDiscount("7.50")
	require.NoError(t, err)
	assert.False(t, d.Percent)
	assert.True(t, d.Value.Equal(dec("7.5")))

	for _, bad := range []string{"", "abc", "-5", "120%", "%"} {
		_, err := ParseDiscount(bad)
		assert.ErrorIs(t, err, ErrInvalidDiscount, bad)
	}
}

func TestLegacyRequiredItem(t *testing.T) {
	assert.Equal(t, "cake", LegacyRequiredItem("cakehour"))
	assert.Equal(t, "", LegacyRequiredItem("HOUR"))
	assert.Equal(t, "", LegacyRequiredItem("SAVE20"))
}

func TestParseValidUntil(t *testing.T) {
	end, err := ParseValidUntil("2026-10-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 14, 23, 59, 59, 0, time.UTC), end)

	exact, err := ParseValidUntil("2026-10-14T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 12, exact.Hour())

	_, err = ParseValidUntil("next week")
	assert.Error(t, err)
}
