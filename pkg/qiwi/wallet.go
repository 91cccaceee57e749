package qiwi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/pkg/clients"
)

const (
	DefaultBaseURL   = "https://edge.qiwi.com/"
	DefaultDetectURL = "https://qiwi.com/"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qiwi_api_requests_total",
		Help: "Total requests sent to the QIWI API, labeled by endpoint category and status code",
	}, []string{"category", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qiwi_api_request_duration_seconds",
		Help:    "Latency distribution of QIWI API requests",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"category"})
)

// Wallet is a client of one QIWI wallet. Its configuration is fixed at
// construction, so a Wallet may be shared between goroutines.
type Wallet struct {
	token     string
	number    string
	baseURL   string
	detectURL string
	flags     ProfileFlags
	client    clients.HTTPClientI
	builder   *RequestBuilder
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*Wallet)

// WithNumber sets the wallet number, e.g. 79991234567.
func WithNumber(number string) Option {
	return func(w *Wallet) {
		w.number = NormalizeNumber(number)
	}
}

func WithHTTPClient(client clients.HTTPClientI) Option {
	return func(w *Wallet) {
		w.client = client
	}
}

func WithBaseURL(baseURL string) Option {
	return func(w *Wallet) {
		w.baseURL = withTrailingSlash(baseURL)
	}
}

// WithDetectURL sets the site the provider detection endpoints live on.
func WithDetectURL(detectURL string) Option {
	return func(w *Wallet) {
		w.detectURL = withTrailingSlash(detectURL)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Wallet) {
		w.logger = logger
	}
}

// WithAdvertising attaches a promotional comment to payments sent without one.
func WithAdvertising(enabled bool) Option {
	return func(w *Wallet) {
		w.builder.Advertising = enabled
	}
}

// WithProfileFlags selects the profile parts Profile returns. All are
// requested by default.
func WithProfileFlags(flags ProfileFlags) Option {
	return func(w *Wallet) {
		w.flags = flags
	}
}

func WithClock(now func() time.Time) Option {
	return func(w *Wallet) {
		w.now = now
		w.builder.now = now
	}
}

// NewWallet creates a client for the wallet the token belongs to. No request
// is made; use Connect to resolve the wallet number from the profile.
func NewWallet(token string, opts ...Option) *Wallet {
	w := &Wallet{
		token:     token,
		baseURL:   DefaultBaseURL,
		detectURL: DefaultDetectURL,
		flags:     ProfileFlags{AuthInfo: true, ContractInfo: true, UserInfo: true},
		builder:   NewRequestBuilder(false),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.client == nil {
		w.client = clients.NewHTTPClient()
	}
	if w.logger == nil {
		w.logger = zap.L()
	}
	return w
}

// Connect creates a client and, unless WithNumber is given, fetches the wallet
// number from the contract info of the profile.
func Connect(ctx context.Context, token string, opts ...Option) (*Wallet, error) {
	w := NewWallet(token, opts...)
	if w.number != "" {
		return w, nil
	}

	profile, err := w.profile(ctx, ProfileFlags{ContractInfo: true})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wallet number: %w", err)
	}
	if profile.ContractInfo == nil {
		return nil, malformed("Profile", "contractInfo", "required field is missing")
	}
	w.number = strconv.FormatInt(profile.ContractInfo.ContractID, 10)
	w.logger.Info("Wallet connected", zap.String("number", w.number))
	return w, nil
}

// NormalizeNumber strips the leading plus and rewrites the domestic 8 prefix
// to the international 7.
func NormalizeNumber(number string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if strings.HasPrefix(number, "8") {
		number = "7" + number[1:]
	}
	return number
}

func (w *Wallet) Number() string {
	return w.number
}

func (w *Wallet) String() string {
	return "Wallet(" + w.number + ")"
}

func (w *Wallet) requireNumber() error {
	if w.number == "" {
		return invalidArgument("wallet number is not set")
	}
	return nil
}

// Accounts lists the funding sources of the wallet.
func (w *Wallet) Accounts(ctx context.Context) ([]Account, error) {
	body, err := w.call(ctx, w.builder.FundingSources())
	if err != nil {
		return nil, err
	}
	return AccountsFromJSON(FromBytes(body))
}

// Balance returns the balance of the first account in the given currency
// that reports one.
// AccountsV2 is Accounts read through the per-person v2 endpoint.
func (w *Wallet) AccountsV2(ctx context.Context) ([]Account, error) {
	if err := w.requireNumber(); err != nil {
		return nil, err
	}
	body, err := w.call(ctx, w.builder.FundingSourcesV2(w.number))
	if err != nil {
		return nil, err
	}
	return AccountsFromJSON(FromBytes(body))
}

func (w *Wallet) Balance(ctx context.Context, currency int64) (decimal.Decimal, error) {
	accounts, err := w.Accounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return findBalance(accounts, currency)
}

func (w *Wallet) Profile(ctx context.Context) (*Profile, error) {
	return w.profile(ctx, w.flags)
}

func (w *Wallet) profile(ctx context.Context, flags ProfileFlags) (*Profile, error) {
	body, err := w.call(ctx, w.builder.PersonProfile(flags))
	if err != nil {
		return nil, err
	}
	return ProfileFromJSON(FromBytes(body))
}

// History returns one page of the payment history. Pass the page cursor as
// NextTxnDate and NextTxnID to continue.
func (w *Wallet) History(ctx context.Context, opts HistoryOptions) (*HistoryPage, error) {
	if err := w.requireNumber(); err != nil {
		return nil, err
	}
	req, err := w.builder.PaymentHistory(w.number, opts)
	if err != nil {
		return nil, err
	}
	body, err := w.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return HistoryPageFromJSON(FromBytes(body))
}

func (w *Wallet) Transaction(ctx context.Context, txnID int64, typ TransactionType) (*Transaction, error) {
	body, err := w.call(ctx, w.builder.Transaction(txnID, typ))
	if err != nil {
		return nil, err
	}
	return TransactionFromJSON(FromBytes(body))
}

// Stat totals the payments of a period. The period starts on the first day
// of the current month and ends now unless given.
func (w *Wallet) Stat(ctx context.Context, opts StatOptions) (*Statistics, error) {
	if err := w.requireNumber(); err != nil {
		return nil, err
	}
	now := w.now().UTC()
	if opts.StartDate == nil {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 1, 0, time.UTC)
		opts.StartDate = &start
	}
	if opts.EndDate == nil {
		opts.EndDate = &now
	}

	req, err := w.builder.TotalPaymentHistory(w.number, opts)
	if err != nil {
		return nil, err
	}
	body, err := w.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return StatisticsFromJSON(FromBytes(body))
}

// Commission computes the commission of a payment to recipient.
func (w *Wallet) Commission(ctx context.Context, pid, recipient string, amount decimal.Decimal) (*OnlineCommission, error) {
	req, err := w.builder.OnlineCommission(pid, recipient, amount)
	if err != nil {
		return nil, err
	}
	body, err := w.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return OnlineCommissionFromJSON(FromBytes(body))
}

// LocalCommission returns the standard commission schedule of a provider.
func (w *Wallet) LocalCommission(ctx context.Context, pid string) (*Commission, error) {
	req, err := w.builder.LocalCommission(pid)
	if err != nil {
		return nil, err
	}
	body, err := w.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return CommissionFromJSON(FromBytes(body))
}

func (w *Wallet) Send(ctx context.Context, p PaymentRequest) (*Payment, error) {
	req, err := w.builder.Payment(p)
	if err != nil {
		return nil, err
	}
	body, err := w.call(ctx, req)
	if err != nil {
		return nil, err
	}
	return PaymentFromJSON(FromBytes(body))
}

// QiwiTransfer sends money to another QIWI wallet.
func (w *Wallet) QiwiTransfer(ctx context.Context, account string, amount decimal.Decimal, comment string) (*Payment, error) {
	return w.Send(ctx, PaymentRequest{
		ProviderID: QiwiWalletProvider,
		Recipient:  account,
		Amount:     amount,
		Comment:    comment,
	})
}

// Mobile tops up a phone, detecting its carrier first.
func (w *Wallet) Mobile(ctx context.Context, phone string, amount decimal.Decimal) (*Payment, error) {
	pid, err := w.DetectMobile(ctx, phone)
	if err != nil {
		return nil, err
	}
	return w.Send(ctx, PaymentRequest{ProviderID: pid, Recipient: phone, Amount: amount})
}

// CardTransfer sends money to a bank card, detecting its issuer first.
func (w *Wallet) CardTransfer(ctx context.Context, card string, amount decimal.Decimal) (*Payment, error) {
	pid, err := w.DetectCard(ctx, card)
	if err != nil {
		return nil, err
	}
	return w.Send(ctx, PaymentRequest{ProviderID: pid, Recipient: card, Amount: amount})
}

func (w *Wallet) Identification(ctx context.Context, r IdentificationRequest) (*Identity, error) {
	if err := w.requireNumber(); err != nil {
		return nil, err
	}
	req, err := w.builder.Identification(w.number, r)
	if err != nil {
		return nil, err
	}
	body, err := w.call(ctx, req)
	if err != nil {
		return nil, err
	}
	identity, err := IdentityFromJSON(FromBytes(body))
	if err != nil {
		return nil, err
	}
	identity.SubmittedINN = r.INN
	return identity, nil
}

// OfferedAccounts lists the account types the wallet may open.
func (w *Wallet) OfferedAccounts(ctx context.Context) ([]OfferedAccount, error) {
	if err := w.requireNumber(); err != nil {
		return nil, err
	}
	body, err := w.call(ctx, w.builder.AccountsOffer(w.number))
	if err != nil {
		return nil, err
	}
	return OfferedAccountsFromJSON(FromBytes(body))
}

// CreateAccount opens an account, alias being one of the offered ones, e.g.
// qw_wallet_usd.
func (w *Wallet) CreateAccount(ctx context.Context, alias string) error {
	if err := w.requireNumber(); err != nil {
		return err
	}
	req, err := w.builder.CreateAccount(w.number, alias)
	if err != nil {
		return err
	}
	_, err = w.call(ctx, req)
	return err
}

// Cheque downloads the receipt of a transaction. format is PDF or JPEG.
func (w *Wallet) Cheque(ctx context.Context, txnID int64, typ TransactionType, format string) ([]byte, error) {
	return w.call(ctx, w.builder.ChequeFile(txnID, typ, format))
}

// SendCheque emails the receipt of a transaction.
func (w *Wallet) SendCheque(ctx context.Context, txnID int64, typ TransactionType, email string) error {
	req, err := w.builder.ChequeSend(txnID, typ, email)
	if err != nil {
		return err
	}
	_, err = w.call(ctx, req)
	return err
}

func (w *Wallet) CrossRates(ctx context.Context) ([]Rate, error) {
	body, err := w.call(ctx, w.builder.CrossRates())
	if err != nil {
		return nil, err
	}
	return RatesFromJSON(FromBytes(body))
}

// GenerateFormLink builds a link to a prefilled QIWI payment form.
func GenerateFormLink(pid, account string, amount decimal.Decimal, comment string) (string, error) {
	return NewRequestBuilder(false).FormLink(pid, account, amount, comment)
}

// call performs r and returns the checked response body. The body is nil for
// a 201 answer without JSON.
func (w *Wallet) call(ctx context.Context, r *Request) ([]byte, error) {
	method := r.Path
	if q := r.Query(); q != "" {
		method += "?" + q
	}
	category := CategoryOf(r.Path)

	var body io.Reader = http.NoBody
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, w.baseURL+method, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.token)

	w.logger.Debug("Request",
		zap.String("method", r.Method),
		zap.String("path", r.Path),
		zap.Any("params", r.Params))

	timer := prometheus.NewTimer(apiRequestDuration.WithLabelValues(category))
	status, respBody, _, err := w.client.Fetch(req)
	timer.ObserveDuration()
	if err != nil {
		apiRequestsTotal.WithLabelValues(category, "error").Inc()
		w.logger.Error("Request failed", zap.String("path", r.Path), zap.Error(err))
		return nil, fmt.Errorf("request %s failed: %w", r.Path, err)
	}
	apiRequestsTotal.WithLabelValues(category, strconv.Itoa(status)).Inc()

	if r.Raw {
		w.logger.Debug("The server returned", zap.Int("status", status), zap.Int("bytes", len(respBody)))
	} else {
		w.logger.Debug("The server returned", zap.Int("status", status), zap.ByteString("body", respBody))
	}

	res, err := checkResult(category, method, r, status, respBody)
	if err != nil {
		w.logger.Error("API call failed", zap.String("path", r.Path), zap.Error(err))
		return nil, err
	}
	return res, nil
}

func checkResult(category, method string, r *Request, status int, body []byte) ([]byte, error) {
	if len(body) == 0 || (status != http.StatusOK && status != http.StatusCreated) {
		return nil, newAPIError(status, category, string(body), method, r.Params)
	}
	if r.Raw || json.Valid(body) {
		return body, nil
	}
	if status == http.StatusCreated {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: the server returned an invalid JSON response. Response body: [%s]",
		ErrMalformedResponse, body)
}

func withTrailingSlash(s string) string {
	if !strings.HasSuffix(s, "/") {
		return s + "/"
	}
	return s
}
