package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/internal/dto"
	"github.com/GlebRadaev/qiwi/internal/handlers/errmap"
	"github.com/GlebRadaev/qiwi/internal/service/historyservice"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
	"github.com/GlebRadaev/qiwi/pkg/utils"
)

type Service interface {
	History(ctx context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error)
	Transaction(ctx context.Context, txnID int64, typ qiwi.TransactionType) (*qiwi.Transaction, error)
	Stat(ctx context.Context, opts qiwi.StatOptions) (*qiwi.Statistics, error)
	Cheque(ctx context.Context, txnID int64, typ qiwi.TransactionType, format string) ([]byte, error)
	SendCheque(ctx context.Context, txnID int64, typ qiwi.TransactionType, email string) error
	Archive(ctx context.Context, limit int) ([]domain.ArchivedTransaction, error)
}

type HistoryHandler struct {
	historyService Service
}

func New(historyService Service) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

var chequeTypes = map[string]string{
	"PDF":  "application/pdf",
	"JPEG": "image/jpeg",
}

// GetHistory godoc
//
//	@Summary		Get payment history
//	@Description	One page of the wallet history. Pass next_txn_date and next_txn_id from the previous page to continue.
//	@Tags			History
//	@Produce		json
//	@Param			rows			query	int		false	"Page size, 1 to 50"	default(20)
//	@Param			operation		query	string	false	"IN, OUT, QIWI_CARD or ALL"
//	@Param			sources			query	string	false	"Comma separated funding sources"
//	@Param			start			query	string	false	"Period start, RFC 3339"
//	@Param			end				query	string	false	"Period end, RFC 3339"
//	@Param			next_txn_date	query	string	false	"Cursor date"
//	@Param			next_txn_id		query	int		false	"Cursor transaction id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.HistoryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid parameters"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		429	{object}	utils.Response	"Wallet API rate limit"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/history [get]
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := qiwi.HistoryOptions{
		Operation: qiwi.TransactionType(strings.ToUpper(q.Get("operation"))),
		Sources:   sources(q.Get("sources")),
	}
	var err error
	if opts.Rows, err = intParam(q.Get("rows")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid rows")
		return
	}
	if opts.StartDate, opts.EndDate, err = period(q.Get("start"), q.Get("end")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid period")
		return
	}
	if opts.NextTxnDate, err = dateParam(q.Get("next_txn_date")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid next_txn_date")
		return
	}
	if raw := q.Get("next_txn_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid next_txn_id")
			return
		}
		opts.NextTxnID = &id
	}

	page, err := h.historyService.History(r.Context(), opts)
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := dto.HistoryResponseDTO{Transactions: make([]dto.TransactionResponseDTO, 0, len(page.Transactions))}
	for _, t := range page.Transactions {
		response.Transactions = append(response.Transactions, transactionDTO(t))
	}
	if date, id, ok := page.Cursor(); ok {
		response.NextTxnDate = date.Format(time.RFC3339)
		response.NextTxnID = id
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetArchive godoc
//
//	@Summary		Get archived history
//	@Description	Entries copied into the local archive by the history sync, newest first
//	@Tags			History
//	@Produce		json
//	@Param			limit	query	int	false	"At most this many entries"	default(500)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		503	{object}	utils.Response	"Archive is disabled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/archive [get]
func (h *HistoryHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r.URL.Query().Get("limit"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	txns, err := h.historyService.Archive(r.Context(), limit)
	if errors.Is(err, historyservice.ErrArchiveDisabled) {
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		zap.L().Error("can't read archive", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, 0, len(txns))
	for _, t := range txns {
		response = append(response, dto.TransactionResponseDTO{
			TxnID:      t.TxnID,
			Date:       t.Date.Format(time.RFC3339),
			Type:       t.Type,
			Status:     t.Status,
			StatusText: deref(t.StatusText),
			Account:    deref(t.Account),
			Provider:   deref(t.ProviderName),
			Amount:     t.Amount,
			Commission: t.Commission,
			Total:      t.Total,
			Currency:   t.Currency,
			Comment:    deref(t.Comment),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransaction godoc
//
//	@Summary		Get one transaction
//	@Tags			History
//	@Produce		json
//	@Param			id		path	int		true	"Transaction id"
//	@Param			type	query	string	false	"IN or OUT"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid transaction id"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/transactions/{id} [get]
func (h *HistoryHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	txnID, typ, ok := transactionRef(w, r)
	if !ok {
		return
	}

	t, err := h.historyService.Transaction(r.Context(), txnID, typ)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionDTO(*t))
}

// GetCheque godoc
//
//	@Summary		Download a transaction receipt
//	@Tags			History
//	@Produce		application/pdf
//	@Produce		image/jpeg
//	@Param			id		path	int		true	"Transaction id"
//	@Param			type	query	string	false	"IN or OUT"
//	@Param			format	query	string	false	"PDF or JPEG"	default(PDF)
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	utils.Response	"Invalid parameters"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/transactions/{id}/cheque [get]
func (h *HistoryHandler) GetCheque(w http.ResponseWriter, r *http.Request) {
	txnID, typ, ok := transactionRef(w, r)
	if !ok {
		return
	}
	format := strings.ToUpper(r.URL.Query().Get("format"))
	if format == "" {
		format = "PDF"
	}
	contentType, known := chequeTypes[format]
	if !known {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid format")
		return
	}

	file, err := h.historyService.Cheque(r.Context(), txnID, typ, format)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file); err != nil {
		zap.L().Error("can't write cheque", zap.Error(err))
	}
}

// SendCheque godoc
//
//	@Summary		Email a transaction receipt
//	@Tags			History
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int						true	"Transaction id"
//	@Param			type	query	string					false	"IN or OUT"
//	@Param			request	body	dto.ChequeSendRequestDTO	true	"Recipient email"
//	@Security		BearerAuth
//	@Success		202	{object}	utils.Response	"Cheque sent"
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/transactions/{id}/cheque [post]
func (h *HistoryHandler) SendCheque(w http.ResponseWriter, r *http.Request) {
	txnID, typ, ok := transactionRef(w, r)
	if !ok {
		return
	}
	var req dto.ChequeSendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.historyService.SendCheque(r.Context(), txnID, typ, req.Email); err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithError(w, http.StatusAccepted, "Cheque sent")
}

// GetStat godoc
//
//	@Summary		Get payment totals
//	@Description	Incoming and outgoing totals per currency. The period defaults to the current month.
//	@Tags			History
//	@Produce		json
//	@Param			start		query	string	false	"Period start, RFC 3339"
//	@Param			end			query	string	false	"Period end, RFC 3339"
//	@Param			operation	query	string	false	"IN, OUT, QIWI_CARD or ALL"
//	@Param			sources		query	string	false	"Comma separated funding sources"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid parameters"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/stat [get]
func (h *HistoryHandler) GetStat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := qiwi.StatOptions{
		Operation: qiwi.TransactionType(strings.ToUpper(q.Get("operation"))),
		Sources:   sources(q.Get("sources")),
	}
	var err error
	if opts.StartDate, err = dateParam(q.Get("start")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid start")
		return
	}
	if opts.EndDate, err = dateParam(q.Get("end")); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end")
		return
	}

	stat, err := h.historyService.Stat(r.Context(), opts)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatResponseDTO{
		Incoming: sums(stat.IncomingTotal),
		Outgoing: sums(stat.OutgoingTotal),
	})
}

func transactionRef(w http.ResponseWriter, r *http.Request) (int64, qiwi.TransactionType, bool) {
	txnID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || txnID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return 0, "", false
	}
	typ := qiwi.TransactionType(strings.ToUpper(r.URL.Query().Get("type")))
	if typ == "" {
		typ = qiwi.TypeOut
	}
	return txnID, typ, true
}

func transactionDTO(t qiwi.Transaction) dto.TransactionResponseDTO {
	res := dto.TransactionResponseDTO{
		TxnID:      t.TxnID,
		Type:       string(t.Type),
		Status:     string(t.Status),
		StatusText: deref(t.StatusText),
		Account:    deref(t.Account),
		Amount:     t.Sum.Amount,
		Commission: t.Commission.Amount,
		Total:      t.Total.Amount,
		Currency:   t.Sum.Currency,
		Comment:    deref(t.Comment),
	}
	if t.Date != nil {
		res.Date = t.Date.Format(time.RFC3339)
	}
	if t.Provider != nil {
		res.Provider = deref(t.Provider.ShortName)
	}
	return res
}

func sums(in []qiwi.TransactionSum) []dto.SumDTO {
	out := make([]dto.SumDTO, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SumDTO{Amount: s.Amount, Currency: s.Currency})
	}
	return out
}

func sources(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func dateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := qiwi.DecodeDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func period(start, end string) (*time.Time, *time.Time, error) {
	s, err := dateParam(start)
	if err != nil {
		return nil, nil, err
	}
	e, err := dateParam(end)
	if err != nil {
		return nil, nil, err
	}
	return s, e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
