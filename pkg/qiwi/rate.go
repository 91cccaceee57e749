package qiwi

import (
	"github.com/shopspring/decimal"
)

// Rate is a currency conversion rate between two ISO-4217 numeric codes.
type Rate struct {
	Set  *string
	From string
	To   string
	Rate decimal.Decimal
}

// RatesFromJSON reads the "result" list of a cross rates response.
func RatesFromJSON(in RawInput) ([]Rate, error) {
	o, err := in.object("Rates")
	if err != nil {
		return nil, err
	}
	items, err := o.objects("result", "Rate")
	if err != nil {
		return nil, err
	}

	res := make([]Rate, 0, len(items))
	for _, item := range items {
		var r Rate
		if r.From, err = item.str("from"); err != nil {
			return nil, err
		}
		if r.To, err = item.str("to"); err != nil {
			return nil, err
		}
		if r.Rate, err = item.amount("rate"); err != nil {
			return nil, err
		}
		if r.Set, err = item.optStr("set"); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
