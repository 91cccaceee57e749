package history

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/internal/service/historyservice"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

func NewMock(t *testing.T) (*HistoryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func ptr[T any](v T) *T { return &v }

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func rubles(amount string) qiwi.TransactionSum {
	return qiwi.TransactionSum{Amount: decimal.RequireFromString(amount), Currency: 643}
}

func TestGetHistory(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2018, 4, 2, 23, 11, 4, 0, time.FixedZone("", 3*60*60))

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "Page with cursor",
			query: "?rows=1&operation=out&sources=QW_RUB,CARD",
			prepareMock: func() {
				service.EXPECT().History(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
						assert.Equal(t, 1, opts.Rows)
						assert.Equal(t, qiwi.TypeOut, opts.Operation)
						assert.Equal(t, []string{"QW_RUB", "CARD"}, opts.Sources)
						assert.Nil(t, opts.NextTxnID)
						return &qiwi.HistoryPage{
							Transactions: []qiwi.Transaction{{
								TxnID:      11181101215,
								Date:       &date,
								Type:       qiwi.TypeOut,
								Status:     qiwi.StatusSuccess,
								Account:    ptr("+79112223344"),
								Sum:        rubles("70"),
								Commission: rubles("0"),
								Total:      rubles("70"),
								Provider:   &qiwi.TransactionProvider{ID: 99, ShortName: ptr("QIWI Wallet")},
							}},
							NextTxnDate: &date,
							NextTxnID:   ptr(int64(11181101200)),
						}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"transactions": [{
					"txn_id": 11181101215, "date": "2018-04-02T23:11:04+03:00", "type": "OUT", "status": "SUCCESS",
					"account": "+79112223344", "provider": "QIWI Wallet",
					"amount": "70", "commission": "0", "total": "70", "currency": 643
				}],
				"next_txn_date": "2018-04-02T23:11:04+03:00",
				"next_txn_id": 11181101200
			}`,
		},
		{
			name:  "Continuation",
			query: "?next_txn_date=2018-04-02T23:11:04%2B03:00&next_txn_id=11181101200",
			prepareMock: func() {
				service.EXPECT().History(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
						require.NotNil(t, opts.NextTxnDate)
						assert.True(t, date.Equal(*opts.NextTxnDate))
						assert.Equal(t, ptr(int64(11181101200)), opts.NextTxnID)
						return &qiwi.HistoryPage{}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"transactions": []}`,
		},
		{
			name:         "Invalid rows",
			query:        "?rows=many",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid rows"}`,
		},
		{
			name:         "Invalid period",
			query:        "?start=yesterday",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid period"}`,
		},
		{
			name:         "Invalid cursor id",
			query:        "?next_txn_id=x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid next_txn_id"}`,
		},
		{
			name:  "Rejected by the client",
			query: "?rows=80",
			prepareMock: func() {
				service.EXPECT().History(gomock.Any(), gomock.Any()).Return(nil, qiwi.ErrInvalidArgument)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/wallet/history"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetHistory(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetArchive(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2018, 4, 2, 20, 11, 4, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "Archived entries",
			query: "?limit=10",
			prepareMock: func() {
				service.EXPECT().Archive(gomock.Any(), 10).Return([]domain.ArchivedTransaction{{
					TxnID:        11181101215,
					Wallet:       "79112223344",
					Date:         date,
					Type:         "IN",
					Status:       "SUCCESS",
					ProviderName: ptr("QIWI Wallet"),
					Amount:       decimal.NewFromInt(100),
					Commission:   decimal.Zero,
					Total:        decimal.NewFromInt(100),
					Currency:     643,
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{
				"txn_id": 11181101215, "date": "2018-04-02T20:11:04Z", "type": "IN", "status": "SUCCESS",
				"provider": "QIWI Wallet", "amount": "100", "commission": "0", "total": "100", "currency": 643
			}]`,
		},
		{
			name: "Archive disabled",
			prepareMock: func() {
				service.EXPECT().Archive(gomock.Any(), 0).Return(nil, historyservice.ErrArchiveDisabled)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"message":"history archive is disabled"}`,
		},
		{
			name: "Database error",
			prepareMock: func() {
				service.EXPECT().Archive(gomock.Any(), 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
		{
			name:         "Invalid limit",
			query:        "?limit=all",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/wallet/archive"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetArchive(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetTransaction(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "Incoming transaction",
			id:    "11181101215",
			query: "?type=in",
			prepareMock: func() {
				service.EXPECT().Transaction(gomock.Any(), int64(11181101215), qiwi.TypeIn).Return(&qiwi.Transaction{
					TxnID:      11181101215,
					Type:       qiwi.TypeIn,
					Status:     qiwi.StatusWaiting,
					StatusText: ptr("В обработке"),
					Sum:        rubles("12.5"),
					Commission: rubles("0"),
					Total:      rubles("12.5"),
					Comment:    ptr("rent"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"txn_id": 11181101215, "type": "IN", "status": "WAITING", "status_text": "В обработке",
				"amount": "12.5", "commission": "0", "total": "12.5", "currency": 643, "comment": "rent"
			}`,
		},
		{
			name: "Outgoing by default",
			id:   "42",
			prepareMock: func() {
				service.EXPECT().Transaction(gomock.Any(), int64(42), qiwi.TypeOut).
					Return(nil, &qiwi.APIError{StatusCode: 404, Description: "Transaction not found"})
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: `{"message":"Transaction not found"}`,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid transaction id"}`,
		},
		{
			name:         "Negative id",
			id:           "-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/wallet/transactions/"+tt.id+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetTransaction(w, withID(req, tt.id))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetCheque(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name                string
		query               string
		prepareMock         func()
		expectedCode        int
		expectedContentType string
		expectedBody        string
	}{
		{
			name: "Pdf by default",
			prepareMock: func() {
				service.EXPECT().Cheque(gomock.Any(), int64(42), qiwi.TypeOut, "PDF").Return([]byte("%PDF-1.4"), nil)
			},
			expectedCode:        http.StatusOK,
			expectedContentType: "application/pdf",
			expectedBody:        "%PDF-1.4",
		},
		{
			name:  "Jpeg",
			query: "?format=jpeg&type=in",
			prepareMock: func() {
				service.EXPECT().Cheque(gomock.Any(), int64(42), qiwi.TypeIn, "JPEG").Return([]byte{0xff, 0xd8}, nil)
			},
			expectedCode:        http.StatusOK,
			expectedContentType: "image/jpeg",
			expectedBody:        string([]byte{0xff, 0xd8}),
		},
		{
			name:                "Unknown format",
			query:               "?format=png",
			prepareMock:         func() {},
			expectedCode:        http.StatusBadRequest,
			expectedContentType: "application/json",
			expectedBody:        "{\"message\":\"Invalid format\"}\n",
		},
		{
			name: "Api error",
			prepareMock: func() {
				service.EXPECT().Cheque(gomock.Any(), int64(42), qiwi.TypeOut, "PDF").
					Return(nil, &qiwi.APIError{StatusCode: 500, Description: "Internal error"})
			},
			expectedCode:        http.StatusBadGateway,
			expectedContentType: "application/json",
			expectedBody:        "{\"message\":\"Internal error\"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/wallet/transactions/42/cheque"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetCheque(w, withID(req, "42"))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedContentType, w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSendCheque(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Sent",
			body: `{"email":"user@example.com"}`,
			prepareMock: func() {
				service.EXPECT().SendCheque(gomock.Any(), int64(42), qiwi.TypeOut, "user@example.com").Return(nil)
			},
			expectedCode: http.StatusAccepted,
			expectedBody: `{"message":"Cheque sent"}`,
		},
		{
			name:         "Broken body",
			body:         `{"email":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name: "Empty email",
			body: `{"email":""}`,
			prepareMock: func() {
				service.EXPECT().SendCheque(gomock.Any(), int64(42), qiwi.TypeOut, "").Return(qiwi.ErrInvalidArgument)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/wallet/transactions/42/cheque", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.SendCheque(w, withID(req, "42"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestGetStat(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "Period given",
			query: "?start=2018-04-01T00:00:00Z&end=2018-04-30T00:00:00Z",
			prepareMock: func() {
				service.EXPECT().Stat(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, opts qiwi.StatOptions) (*qiwi.Statistics, error) {
						require.NotNil(t, opts.StartDate)
						require.NotNil(t, opts.EndDate)
						assert.Equal(t, 2018, opts.StartDate.Year())
						assert.Equal(t, 30, opts.EndDate.Day())
						return &qiwi.Statistics{
							IncomingTotal: []qiwi.TransactionSum{rubles("3500")},
							OutgoingTotal: []qiwi.TransactionSum{rubles("70"), {Amount: decimal.NewFromInt(5), Currency: 840}},
						}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"incoming": [{"amount": "3500", "currency": 643}],
				"outgoing": [{"amount": "70", "currency": 643}, {"amount": "5", "currency": 840}]
			}`,
		},
		{
			name: "Current month",
			prepareMock: func() {
				service.EXPECT().Stat(gomock.Any(), qiwi.StatOptions{}).Return(&qiwi.Statistics{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"incoming": [], "outgoing": []}`,
		},
		{
			name:         "Invalid end",
			query:        "?end=tomorrow",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid end"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/wallet/stat"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetStat(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
