package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money value as sent by clients: a JSON number, a numeric string or a
// form value. It keeps the raw text so validation can reject it with a field error
// instead of failing the whole body parse.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}
	*a = Amount(data)
	return nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	*a = Amount(strings.TrimSpace(string(text)))
	return nil
}

func (a Amount) IsZero() bool {
	return a == ""
}

func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(a))
}

// DecimalOrZero is for amounts that already passed the "amount" validation tag.
func (a Amount) DecimalOrZero() decimal.Decimal {
	d, err := a.Decimal()
	if err != nil {
		return decimal.Zero
	}
	return d
}
