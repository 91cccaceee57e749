package qiwi

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusWaiting TransactionStatus = "WAITING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusError   TransactionStatus = "ERROR"
)

type TransactionType string

const (
	TypeIn       TransactionType = "IN"
	TypeOut      TransactionType = "OUT"
	TypeQiwiCard TransactionType = "QIWI_CARD"
	TypeAll      TransactionType = "ALL"
)

// Transaction is one record of the payment history.
type Transaction struct {
	TxnID        int64
	PersonID     int64
	Date         *time.Time
	ErrorCode    *int64
	Error        *string
	Status       TransactionStatus
	Type         TransactionType
	StatusText   *string
	TrmTxnID     *string
	Account      *string
	Sum          TransactionSum
	Commission   TransactionSum
	Total        TransactionSum
	Provider     *TransactionProvider
	Source       any
	Comment      *string
	CurrencyRate *decimal.Decimal
	Features     any
	View         any
}

type TransactionSum struct {
	Amount   decimal.Decimal
	Currency int64
}

type TransactionProvider struct {
	ID          int64
	ShortName   *string
	LongName    *string
	LogoURL     *string
	Description *string
	Keys        *string
	SiteURL     *string
}

func TransactionFromJSON(in RawInput) (*Transaction, error) {
	o, err := in.object("Transaction")
	if err != nil {
		return nil, err
	}
	return parseTransaction(o)
}

func parseTransaction(o object) (*Transaction, error) {
	var (
		t   Transaction
		err error
	)
	if t.TxnID, err = o.integer("txnId"); err != nil {
		return nil, err
	}
	if t.PersonID, err = o.integer("personId"); err != nil {
		return nil, err
	}
	status, err := o.str("status")
	if err != nil {
		return nil, err
	}
	t.Status = TransactionStatus(status)
	typ, err := o.str("type")
	if err != nil {
		return nil, err
	}
	t.Type = TransactionType(typ)

	if t.Date, err = o.optTime("date"); err != nil {
		return nil, err
	}
	if t.ErrorCode, err = o.optInt("errorCode"); err != nil {
		return nil, err
	}
	if t.Error, err = o.optStr("error"); err != nil {
		return nil, err
	}
	if t.StatusText, err = o.optStr("statusText"); err != nil {
		return nil, err
	}
	if t.TrmTxnID, err = o.optStr("trmTxnId"); err != nil {
		return nil, err
	}
	if t.Account, err = o.optStr("account"); err != nil {
		return nil, err
	}
	if t.Comment, err = o.optStr("comment"); err != nil {
		return nil, err
	}
	if t.CurrencyRate, err = o.optAmount("currencyRate"); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		key string
		dst *TransactionSum
	}{
		{"sum", &t.Sum},
		{"commission", &t.Commission},
		{"total", &t.Total},
	} {
		if *f.dst, err = o.sum(f.key); err != nil {
			return nil, err
		}
	}

	if p, ok, err := o.optObj("provider"); err != nil {
		return nil, err
	} else if ok {
		if t.Provider, err = parseProvider(p.as("TransactionProvider")); err != nil {
			return nil, err
		}
	}

	t.Source = o.service("source")
	t.Features = o.service("features")
	t.View = o.service("view")
	return &t, nil
}

// sum reads a required nested TransactionSum.
func (o object) sum(key string) (TransactionSum, error) {
	nested, err := o.obj(key)
	if err != nil {
		return TransactionSum{}, err
	}
	return parseSum(nested.as("TransactionSum"))
}

func parseSum(o object) (TransactionSum, error) {
	amount, err := o.amount("amount")
	if err != nil {
		return TransactionSum{}, err
	}
	currency, err := o.integer("currency")
	if err != nil {
		return TransactionSum{}, err
	}
	return TransactionSum{Amount: amount, Currency: currency}, nil
}

func TransactionSumFromJSON(in RawInput) (*TransactionSum, error) {
	o, err := in.object("TransactionSum")
	if err != nil {
		return nil, err
	}
	s, err := parseSum(o)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func parseProvider(o object) (*TransactionProvider, error) {
	var (
		p   TransactionProvider
		err error
	)
	if p.ID, err = o.integer("id"); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		dst **string
	}{
		{"shortName", &p.ShortName},
		{"longName", &p.LongName},
		{"logoUrl", &p.LogoURL},
		{"description", &p.Description},
		{"keys", &p.Keys},
		{"siteUrl", &p.SiteURL},
	} {
		if *f.dst, err = o.optStr(f.key); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func TransactionProviderFromJSON(in RawInput) (*TransactionProvider, error) {
	o, err := in.object("TransactionProvider")
	if err != nil {
		return nil, err
	}
	return parseProvider(o)
}

// HistoryPage is one page of the payment history. NextTxnDate and NextTxnID
// point at the next page and are nil on the last one.
type HistoryPage struct {
	Transactions []Transaction
	NextTxnDate  *time.Time
	NextTxnID    *int64
}

// Cursor reports where the next page starts.
func (p *HistoryPage) Cursor() (date time.Time, txnID int64, ok bool) {
	if p.NextTxnDate == nil || p.NextTxnID == nil {
		return time.Time{}, 0, false
	}
	return *p.NextTxnDate, *p.NextTxnID, true
}

func HistoryPageFromJSON(in RawInput) (*HistoryPage, error) {
	o, err := in.object("HistoryPage")
	if err != nil {
		return nil, err
	}
	items, err := o.objects("data", "Transaction")
	if err != nil {
		return nil, err
	}

	page := HistoryPage{Transactions: make([]Transaction, 0, len(items))}
	for _, item := range items {
		t, err := parseTransaction(item)
		if err != nil {
			return nil, err
		}
		page.Transactions = append(page.Transactions, *t)
	}
	if page.NextTxnDate, err = o.optTime("nextTxnDate"); err != nil {
		return nil, err
	}
	if page.NextTxnID, err = o.optInt("nextTxnId"); err != nil {
		return nil, err
	}
	return &page, nil
}

// Statistics holds payment totals for a period, one entry per currency.
type Statistics struct {
	IncomingTotal []TransactionSum
	OutgoingTotal []TransactionSum
}

func StatisticsFromJSON(in RawInput) (*Statistics, error) {
	o, err := in.object("Statistics")
	if err != nil {
		return nil, err
	}
	incoming, err := o.sums("incomingTotal")
	if err != nil {
		return nil, err
	}
	outgoing, err := o.sums("outgoingTotal")
	if err != nil {
		return nil, err
	}
	return &Statistics{IncomingTotal: incoming, OutgoingTotal: outgoing}, nil
}

func (o object) sums(key string) ([]TransactionSum, error) {
	items, err := o.objects(key, "TransactionSum")
	if err != nil {
		return nil, err
	}
	res := make([]TransactionSum, 0, len(items))
	for _, item := range items {
		s, err := parseSum(item)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}
