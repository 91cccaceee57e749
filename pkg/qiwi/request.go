package qiwi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPromoComment = "Отправлено с помощью pyQiwi"
	DefaultFormURL      = "https://qiwi.com/payment/form/"

	// QiwiWalletProvider is the provider id of transfers between wallets.
	QiwiWalletProvider = "99"
	// RubleCode is the ISO-4217 numeric code of the Russian ruble.
	RubleCode = 643

	defaultRows = 20
	maxRows     = 50
)

// Request describes one call to the API. Path is relative to the API base URL.
type Request struct {
	Method string
	Path   string
	Params map[string]string
	Body   map[string]any
	// Raw requests return the response body as is instead of JSON.
	Raw bool
}

// Query renders Params as a URL query string.
func (r *Request) Query() string {
	if len(r.Params) == 0 {
		return ""
	}
	q := make(url.Values, len(r.Params))
	for k, v := range r.Params {
		q.Set(k, v)
	}
	return q.Encode()
}

// RequestBuilder composes the requests of every remote operation. It holds no
// mutable state and is safe for concurrent use.
type RequestBuilder struct {
	// Advertising attaches PromoComment to payments sent without a comment.
	Advertising  bool
	PromoComment string
	FormURL      string

	now func() time.Time
}

func NewRequestBuilder(advertising bool) *RequestBuilder {
	return &RequestBuilder{
		Advertising:  advertising,
		PromoComment: DefaultPromoComment,
		FormURL:      DefaultFormURL,
		now:          time.Now,
	}
}

func (b *RequestBuilder) clock() time.Time {
	if b.now == nil {
		return time.Now()
	}
	return b.now()
}

// ProfileFlags select the parts of the profile to return.
type ProfileFlags struct {
	AuthInfo     bool
	ContractInfo bool
	UserInfo     bool
}

func (b *RequestBuilder) PersonProfile(flags ProfileFlags) *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   "person-profile/v1/profile/current",
		Params: map[string]string{
			"authInfoEnabled":     strconv.FormatBool(flags.AuthInfo),
			"contractInfoEnabled": strconv.FormatBool(flags.ContractInfo),
			"userInfoEnabled":     strconv.FormatBool(flags.UserInfo),
		},
	}
}

func (b *RequestBuilder) FundingSources() *Request {
	return &Request{Method: http.MethodGet, Path: "funding-sources/v1/accounts/current"}
}

// FundingSourcesV2 lists the accounts of a person through the v2 API.
func (b *RequestBuilder) FundingSourcesV2(personID string) *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("funding-sources/v2/persons/%s/accounts", url.PathEscape(personID)),
	}
}

func (b *RequestBuilder) AccountsOffer(personID string) *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("funding-sources/v2/persons/%s/accounts/offer", url.PathEscape(personID)),
	}
}

func (b *RequestBuilder) CreateAccount(personID, alias string) (*Request, error) {
	if alias == "" {
		return nil, invalidArgument("account alias is empty")
	}
	return &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("funding-sources/v2/persons/%s/accounts", url.PathEscape(personID)),
		Body:   map[string]any{"accountAlias": alias},
	}, nil
}

// HistoryOptions filter the payment history. Date bounds and the page cursor
// each go in pairs.
type HistoryOptions struct {
	// Rows is the page size, 1 to 50. Zero means 20.
	Rows        int
	Operation   TransactionType
	Sources     []string
	StartDate   *time.Time
	EndDate     *time.Time
	NextTxnDate *time.Time
	NextTxnID   *int64
}

func (b *RequestBuilder) PaymentHistory(number string, opts HistoryOptions) (*Request, error) {
	rows := opts.Rows
	if rows == 0 {
		rows = defaultRows
	}
	if rows < 1 || rows > maxRows {
		return nil, invalidArgument("rows must be between 1 and %d, got %d", maxRows, rows)
	}

	params := map[string]string{"rows": strconv.Itoa(rows)}
	if opts.Operation != "" {
		params["operation"] = string(opts.Operation)
	}
	SourcesParams(opts.Sources, params)
	if err := dateRangeParams(opts.StartDate, opts.EndDate, params); err != nil {
		return nil, err
	}
	switch {
	case opts.NextTxnDate != nil && opts.NextTxnID != nil:
		params["nextTxnDate"] = FormatDate(*opts.NextTxnDate)
		params["nextTxnId"] = strconv.FormatInt(*opts.NextTxnID, 10)
	case opts.NextTxnDate != nil || opts.NextTxnID != nil:
		return nil, invalidArgument("next transaction date and id must be given together")
	}

	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("payment-history/v2/persons/%s/payments", url.PathEscape(number)),
		Params: params,
	}, nil
}

// StatOptions select the period and payments to total.
type StatOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	Operation TransactionType
	Sources   []string
}

func (b *RequestBuilder) TotalPaymentHistory(number string, opts StatOptions) (*Request, error) {
	if opts.StartDate == nil || opts.EndDate == nil {
		return nil, invalidArgument("start and end dates must be given together")
	}
	params := make(map[string]string)
	if opts.Operation != "" {
		params["operation"] = string(opts.Operation)
	}
	SourcesParams(opts.Sources, params)
	if err := dateRangeParams(opts.StartDate, opts.EndDate, params); err != nil {
		return nil, err
	}
	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("payment-history/v2/persons/%s/payments/total", url.PathEscape(number)),
		Params: params,
	}, nil
}

func paymentMethod() map[string]any {
	return map[string]any{"type": "Account", "accountId": strconv.Itoa(RubleCode)}
}

func (b *RequestBuilder) OnlineCommission(pid, recipient string, amount decimal.Decimal) (*Request, error) {
	if err := checkProvider(pid); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, invalidArgument("amount must be positive, got %s", amount)
	}
	return &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("sinap/providers/%s/onlineCommission", url.PathEscape(pid)),
		Body: map[string]any{
			"account":       recipient,
			"paymentMethod": paymentMethod(),
			"purchaseTotals": map[string]any{
				"total": map[string]any{
					"amount":   apiAmount(amount),
					"currency": strconv.Itoa(RubleCode),
				},
			},
		},
	}, nil
}

// PaymentRequest describes a payment to submit.
type PaymentRequest struct {
	ProviderID string
	Recipient  string
	Amount     decimal.Decimal
	Comment    string
	// Fields replaces the default {"account": Recipient} field set.
	Fields map[string]any
}

func (b *RequestBuilder) Payment(p PaymentRequest) (*Request, error) {
	if err := checkProvider(p.ProviderID); err != nil {
		return nil, err
	}
	if !p.Amount.IsPositive() {
		return nil, invalidArgument("amount must be positive, got %s", p.Amount)
	}

	fields := p.Fields
	if len(fields) == 0 {
		if p.Recipient == "" {
			return nil, invalidArgument("recipient is empty")
		}
		fields = map[string]any{"account": p.Recipient}
	}

	body := map[string]any{
		"id": strconv.FormatInt(b.clock().UnixMilli(), 10),
		"sum": map[string]any{
			"amount":   apiAmount(p.Amount),
			"currency": strconv.Itoa(RubleCode),
		},
		"paymentMethod": paymentMethod(),
		"fields":        fields,
	}
	switch {
	case p.Comment != "":
		body["comment"] = p.Comment
	case b.Advertising:
		body["comment"] = b.PromoComment
	}

	return &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("sinap/api/v2/terms/%s/payments", url.PathEscape(p.ProviderID)),
		Body:   body,
	}, nil
}

func (b *RequestBuilder) LocalCommission(pid string) (*Request, error) {
	if err := checkProvider(pid); err != nil {
		return nil, err
	}
	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("sinap/providers/%s/form", url.PathEscape(pid)),
	}, nil
}

func (b *RequestBuilder) Transaction(txnID int64, typ TransactionType) *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("payment-history/v2/transactions/%d", txnID),
		Params: map[string]string{"type": string(typ)},
	}
}

// IdentificationRequest carries the personal data to verify. BirthDate is
// formatted as YYYY-MM-DD.
type IdentificationRequest struct {
	BirthDate  string
	FirstName  string
	MiddleName string
	LastName   string
	Passport   string
	INN        string
	Snils      string
	Oms        string
}

func (b *RequestBuilder) Identification(wallet string, r IdentificationRequest) (*Request, error) {
	if r.BirthDate != "" {
		if _, err := time.Parse(time.DateOnly, r.BirthDate); err != nil {
			return nil, invalidArgument("birth date %q is not in YYYY-MM-DD format", r.BirthDate)
		}
	}
	return &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("identification/v1/persons/%s/identification", url.PathEscape(wallet)),
		Body: map[string]any{
			"birthDate":  r.BirthDate,
			"firstName":  r.FirstName,
			"middleName": r.MiddleName,
			"lastName":   r.LastName,
			"passport":   r.Passport,
			"inn":        r.INN,
			"snils":      r.Snils,
			"oms":        r.Oms,
		},
	}, nil
}

// ChequeFile requests the receipt of a transaction as a file, PDF by default.
func (b *RequestBuilder) ChequeFile(txnID int64, typ TransactionType, format string) *Request {
	if format == "" {
		format = "PDF"
	}
	return &Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("payment-history/v1/transactions/%d/cheque/file", txnID),
		Params: map[string]string{"type": string(typ), "format": strings.ToUpper(format)},
		Raw:    true,
	}
}

func (b *RequestBuilder) ChequeSend(txnID int64, typ TransactionType, email string) (*Request, error) {
	if email == "" {
		return nil, invalidArgument("email is empty")
	}
	return &Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("payment-history/v1/transactions/%d/cheque/send", txnID),
		Params: map[string]string{"type": string(typ)},
		Body:   map[string]any{"email": email},
	}, nil
}

func (b *RequestBuilder) CrossRates() *Request {
	return &Request{Method: http.MethodGet, Path: "sinap/crossRates"}
}

// FormLink builds a link to a prefilled payment form. Account and comment are
// optional and go out as extra['account'] and extra['comment'], the keys the
// payment form prefills from. Plain account and comment keys are not sent.
func (b *RequestBuilder) FormLink(pid, account string, amount decimal.Decimal, comment string) (string, error) {
	if err := checkProvider(pid); err != nil {
		return "", err
	}
	integer, fraction, err := SplitAmount(amount)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("currency", strconv.Itoa(RubleCode))
	q.Set("amountInteger", integer)
	if fraction != "" {
		q.Set("amountFraction", fraction)
	}
	if comment != "" {
		q.Set("extra['comment']", comment)
	}
	if account != "" {
		q.Set("extra['account']", account)
	}

	base := b.FormURL
	if base == "" {
		base = DefaultFormURL
	}
	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(pid) + "?" + q.Encode(), nil
}

func checkProvider(pid string) error {
	if pid == "" {
		return invalidArgument("provider id is empty")
	}
	return nil
}
