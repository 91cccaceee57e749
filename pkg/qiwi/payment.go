package qiwi

import (
	"encoding/json"
)

// Payment is the receipt of a submitted payment.
type Payment struct {
	ID          string
	Terms       string
	Fields      PaymentFields
	Sum         TransactionSum
	Transaction PaymentTransaction
	Source      any
	Comment     *string
}

type PaymentTransaction struct {
	ID    string
	State string
}

// PaymentFields holds provider specific payment details. Only "account" is
// present for every provider.
type PaymentFields struct {
	account string
	fields  map[string]any
}

func NewPaymentFields(account string, extra map[string]any) PaymentFields {
	fields := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		fields[k] = v
	}
	fields["account"] = account
	return PaymentFields{account: account, fields: fields}
}

func (f PaymentFields) Account() string {
	return f.account
}

func (f PaymentFields) Get(key string) (any, bool) {
	v, ok := f.fields[key]
	return v, ok
}

// Map returns a copy of all fields.
func (f PaymentFields) Map() map[string]any {
	m := make(map[string]any, len(f.fields))
	for k, v := range f.fields {
		m[k] = v
	}
	return m
}

func (f PaymentFields) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.fields)
}

func PaymentFromJSON(in RawInput) (*Payment, error) {
	o, err := in.object("Payment")
	if err != nil {
		return nil, err
	}

	var p Payment
	if p.ID, err = o.str("id"); err != nil {
		return nil, err
	}
	if p.Terms, err = o.str("terms"); err != nil {
		return nil, err
	}
	if p.Sum, err = o.sum("sum"); err != nil {
		return nil, err
	}
	if p.Comment, err = o.optStr("comment"); err != nil {
		return nil, err
	}
	p.Source = o.service("source")

	fields, err := o.obj("fields")
	if err != nil {
		return nil, err
	}
	account, err := fields.as("PaymentFields").str("account")
	if err != nil {
		return nil, err
	}
	p.Fields = PaymentFields{account: account, fields: cloneValue(fields.fields).(map[string]any)}

	txn, err := o.obj("transaction")
	if err != nil {
		return nil, err
	}
	txn = txn.as("PaymentTransaction")
	if p.Transaction.ID, err = txn.str("id"); err != nil {
		return nil, err
	}
	state, err := txn.obj("state")
	if err != nil {
		return nil, err
	}
	if p.Transaction.State, err = state.str("code"); err != nil {
		return nil, err
	}
	return &p, nil
}
