package qiwi

import (
	"github.com/shopspring/decimal"
)

// Commission is the standard commission schedule of a provider.
type Commission struct {
	Ranges []CommissionRange
}

// CommissionRange is one tier of the schedule. Any subset of the fields may
// be absent.
type CommissionRange struct {
	Bound *decimal.Decimal
	Rate  *decimal.Decimal
	Min   *decimal.Decimal
	Max   *decimal.Decimal
	Fixed *decimal.Decimal
}

func CommissionFromJSON(in RawInput) (*Commission, error) {
	o, err := in.object("Commission")
	if err != nil {
		return nil, err
	}
	for _, key := range []string{"content", "terms", "commission"} {
		if o, err = o.obj(key); err != nil {
			return nil, err
		}
	}
	items, err := o.objects("ranges", "CommissionRange")
	if err != nil {
		return nil, err
	}

	c := Commission{Ranges: make([]CommissionRange, 0, len(items))}
	for _, item := range items {
		var r CommissionRange
		for _, f := range []struct {
			key string
			dst **decimal.Decimal
		}{
			{"bound", &r.Bound},
			{"rate", &r.Rate},
			{"min", &r.Min},
			{"max", &r.Max},
			{"fixed", &r.Fixed},
		} {
			if *f.dst, err = item.optAmount(f.key); err != nil {
				return nil, err
			}
		}
		c.Ranges = append(c.Ranges, r)
	}
	return &c, nil
}

// OnlineCommission is the commission computed for one prospective payment.
type OnlineCommission struct {
	ProviderID               int64
	WithdrawSum              TransactionSum
	EnrollmentSum            TransactionSum
	QwCommission             TransactionSum
	FundingSourceCommission  TransactionSum
	WithdrawToEnrollmentRate decimal.Decimal
}

func OnlineCommissionFromJSON(in RawInput) (*OnlineCommission, error) {
	o, err := in.object("OnlineCommission")
	if err != nil {
		return nil, err
	}

	var c OnlineCommission
	if c.ProviderID, err = o.integer("providerId"); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		dst *TransactionSum
	}{
		{"withdrawSum", &c.WithdrawSum},
		{"enrollmentSum", &c.EnrollmentSum},
		{"qwCommission", &c.QwCommission},
		{"fundingSourceCommission", &c.FundingSourceCommission},
	} {
		if *f.dst, err = o.sum(f.key); err != nil {
			return nil, err
		}
	}
	if c.WithdrawToEnrollmentRate, err = o.amount("withdrawToEnrollmentRate"); err != nil {
		return nil, err
	}
	return &c, nil
}
