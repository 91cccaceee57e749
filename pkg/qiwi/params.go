package qiwi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Dates sent to the history endpoints are expressed in Moscow time.
var apiZone = time.FixedZone("MSK", 3*60*60)

const apiDateLayout = "2006-01-02T15:04:05-07:00"

// FormatDate renders t the way the history endpoints expect it, for example
// 2024-01-31T12:00:00+03:00.
func FormatDate(t time.Time) string {
	return t.In(apiZone).Format(apiDateLayout)
}

// SourcesParams adds the payment source filters as sources[0], sources[1]...
// in the given order.
func SourcesParams(sources []string, params map[string]string) map[string]string {
	if params == nil {
		params = make(map[string]string, len(sources))
	}
	for i, src := range sources {
		params["sources["+strconv.Itoa(i)+"]"] = src
	}
	return params
}

// dateRangeParams adds startDate and endDate. Both ends must be given or
// neither.
func dateRangeParams(start, end *time.Time, params map[string]string) error {
	switch {
	case start == nil && end == nil:
		return nil
	case start == nil || end == nil:
		return invalidArgument("start and end dates must be given together")
	case end.Before(*start):
		return invalidArgument("end date %s is before start date %s", FormatDate(*end), FormatDate(*start))
	}
	params["startDate"] = FormatDate(*start)
	params["endDate"] = FormatDate(*end)
	return nil
}

// SplitAmount splits a payment amount into its integer and fractional parts
// as used by the payment form. fraction is empty for whole amounts.
func SplitAmount(amount decimal.Decimal) (integer, fraction string, err error) {
	if amount.IsNegative() {
		return "", "", invalidArgument("amount %s is negative", amount)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return "", "", invalidArgument("amount %s has more than two fractional digits", amount)
	}
	integer, fraction, _ = strings.Cut(amount.String(), ".")
	return integer, fraction, nil
}

// apiAmount is the JSON form of a payment amount, truncated to kopecks.
func apiAmount(amount decimal.Decimal) json.Number {
	return json.Number(amount.Truncate(2).String())
}
