package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/qiwi/internal/dto"
	"github.com/GlebRadaev/qiwi/internal/handlers/errmap"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
	"github.com/GlebRadaev/qiwi/pkg/utils"
)

type Service interface {
	Balance(ctx context.Context, currency int64) (decimal.Decimal, error)
	Accounts(ctx context.Context) ([]qiwi.Account, error)
	OfferedAccounts(ctx context.Context) ([]qiwi.OfferedAccount, error)
	CreateAccount(ctx context.Context, alias string) error
	Profile(ctx context.Context) (*qiwi.Profile, error)
	CrossRates(ctx context.Context) ([]qiwi.Rate, error)
	FormLink(pid, account string, amount decimal.Decimal, comment string) (string, error)
	Commission(ctx context.Context, pid, recipient string, amount decimal.Decimal) (*qiwi.OnlineCommission, error)
	LocalCommission(ctx context.Context, pid string) (*qiwi.Commission, error)
	Pay(ctx context.Context, p qiwi.PaymentRequest) (*qiwi.Payment, error)
	PayMobile(ctx context.Context, phone string, amount decimal.Decimal) (*qiwi.Payment, error)
	PayCard(ctx context.Context, card string, amount decimal.Decimal) (*qiwi.Payment, error)
	Identify(ctx context.Context, r qiwi.IdentificationRequest) (*qiwi.Identity, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Balance of the first account in the requested currency, rubles by default
//	@Tags			Wallet
//	@Produce		json
//	@Param			currency	query	int	false	"ISO-4217 numeric currency code"	default(643)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid currency"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"No account with a balance in this currency"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	var currency int64 = qiwi.RubleCode
	if raw := r.URL.Query().Get("currency"); raw != "" {
		c, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || c <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid currency")
			return
		}
		currency = c
	}

	amount, err := h.walletService.Balance(r.Context(), currency)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Amount: amount, Currency: currency})
}

// GetAccounts godoc
//
//	@Summary		List wallet accounts
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/accounts [get]
func (h *WalletHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.walletService.Accounts(r.Context())
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := make([]dto.AccountResponseDTO, 0, len(accounts))
	for _, a := range accounts {
		item := dto.AccountResponseDTO{
			Alias:    a.Alias,
			Title:    deref(a.Title),
			Currency: a.Currency,
		}
		if a.Type != nil {
			item.Type = a.Type.ID
		}
		if a.Balance != nil {
			amount := a.Balance.Amount
			item.Balance = &amount
		}
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOfferedAccounts godoc
//
//	@Summary		List accounts that can be opened
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OfferedAccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/accounts/offer [get]
func (h *WalletHandler) GetOfferedAccounts(w http.ResponseWriter, r *http.Request) {
	offered, err := h.walletService.OfferedAccounts(r.Context())
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := make([]dto.OfferedAccountResponseDTO, 0, len(offered))
	for _, o := range offered {
		response = append(response, dto.OfferedAccountResponseDTO{Alias: o.Alias, Currency: o.Currency})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateAccount godoc
//
//	@Summary		Open a new account
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateAccountRequestDTO	true	"Account alias"
//	@Security		BearerAuth
//	@Success		201	{object}	utils.Response	"Account created"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/accounts [post]
func (h *WalletHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.walletService.CreateAccount(r.Context(), req.Alias); err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithError(w, http.StatusCreated, "Account created")
}

// GetProfile godoc
//
//	@Summary		Get wallet owner profile
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/profile [get]
func (h *WalletHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.walletService.Profile(r.Context())
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	var response dto.ProfileResponseDTO
	if a := p.AuthInfo; a != nil {
		response.PersonID = a.PersonID
		response.Email = deref(a.BoundEmail)
		if a.RegistrationDate != nil {
			response.RegisteredAt = a.RegistrationDate.Format(time.RFC3339)
		}
	}
	if c := p.ContractInfo; c != nil {
		response.ContractID = c.ContractID
		response.Blocked = c.Blocked
		for _, info := range c.IdentificationInfo {
			response.Identification = append(response.Identification, info.BankAlias+":"+string(info.IdentificationLevel))
		}
	}
	if u := p.UserInfo; u != nil {
		response.Operator = deref(u.Operator)
		if response.Email == "" {
			response.Email = deref(u.Email)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRates godoc
//
//	@Summary		Get currency cross rates
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RateResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/rates [get]
func (h *WalletHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.walletService.CrossRates(r.Context())
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := make([]dto.RateResponseDTO, 0, len(rates))
	for _, rate := range rates {
		response = append(response, dto.RateResponseDTO{From: rate.From, To: rate.To, Rate: rate.Rate})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetFormLink godoc
//
//	@Summary		Build a payment form link
//	@Tags			Wallet
//	@Produce		json
//	@Param			pid		query	string	true	"Provider id"
//	@Param			amount	query	string	true	"Amount in rubles, at most two fractional digits"
//	@Param			account	query	string	false	"Recipient account"
//	@Param			comment	query	string	false	"Payment comment"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.FormLinkResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid parameters"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/wallet/form-link [get]
func (h *WalletHandler) GetFormLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	link, err := h.walletService.FormLink(q.Get("pid"), q.Get("account"), amount, q.Get("comment"))
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FormLinkResponseDTO{URL: link})
}

// GetCommission godoc
//
//	@Summary		Get standard commission schedule of a provider
//	@Tags			Commission
//	@Produce		json
//	@Param			pid	path	string	true	"Provider id"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.CommissionRangeDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/commission/{pid} [get]
func (h *WalletHandler) GetCommission(w http.ResponseWriter, r *http.Request) {
	c, err := h.walletService.LocalCommission(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := make([]dto.CommissionRangeDTO, 0, len(c.Ranges))
	for _, rg := range c.Ranges {
		response = append(response, dto.CommissionRangeDTO{
			Bound: rg.Bound,
			Rate:  rg.Rate,
			Min:   rg.Min,
			Max:   rg.Max,
			Fixed: rg.Fixed,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CalculateCommission godoc
//
//	@Summary		Calculate the commission of a payment
//	@Tags			Commission
//	@Accept			json
//	@Produce		json
//	@Param			pid		path	string						true	"Provider id"
//	@Param			request	body	dto.CommissionRequestDTO	true	"Recipient and amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OnlineCommissionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/commission/{pid} [post]
func (h *WalletHandler) CalculateCommission(w http.ResponseWriter, r *http.Request) {
	var req dto.CommissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.walletService.Commission(r.Context(), chi.URLParam(r, "pid"), req.Recipient, req.Amount)
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OnlineCommissionResponseDTO{
		ProviderID: c.ProviderID,
		Withdraw:   c.WithdrawSum.Amount,
		Enrollment: c.EnrollmentSum.Amount,
		Commission: c.QwCommission.Amount,
		Currency:   c.WithdrawSum.Currency,
		Rate:       c.WithdrawToEnrollmentRate,
	})
}

// Pay godoc
//
//	@Summary		Pay a provider
//	@Description	Send money to any provider. Without fields the recipient is used as the account.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PaymentRequestDTO	true	"Payment"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/payments [post]
func (h *WalletHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p := qiwi.PaymentRequest{
		ProviderID: req.ProviderID,
		Recipient:  req.Recipient,
		Amount:     req.Amount,
		Comment:    req.Comment,
	}
	if len(req.Fields) > 0 {
		p.Fields = make(map[string]any, len(req.Fields)+1)
		for k, v := range req.Fields {
			p.Fields[k] = v
		}
		if _, ok := p.Fields["account"]; !ok {
			p.Fields["account"] = req.Recipient
		}
	}

	h.respondPayment(w, func() (*qiwi.Payment, error) { return h.walletService.Pay(r.Context(), p) })
}

// PayMobile godoc
//
//	@Summary		Top up a mobile phone
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.MobilePaymentRequestDTO	true	"Phone and amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		422	{object}	utils.Response	"Operator not detected"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/payments/mobile [post]
func (h *WalletHandler) PayMobile(w http.ResponseWriter, r *http.Request) {
	var req dto.MobilePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respondPayment(w, func() (*qiwi.Payment, error) { return h.walletService.PayMobile(r.Context(), req.Phone, req.Amount) })
}

// PayCard godoc
//
//	@Summary		Transfer to a bank card
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CardPaymentRequestDTO	true	"Card number and amount"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid card number or amount"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		422	{object}	utils.Response	"Card issuer not detected"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/payments/card [post]
func (h *WalletHandler) PayCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CardPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Card == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respondPayment(w, func() (*qiwi.Payment, error) { return h.walletService.PayCard(r.Context(), req.Card, req.Amount) })
}

func (h *WalletHandler) respondPayment(w http.ResponseWriter, pay func() (*qiwi.Payment, error)) {
	p, err := pay()
	if err != nil {
		errmap.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{
		ID:            p.ID,
		TransactionID: p.Transaction.ID,
		State:         p.Transaction.State,
		Account:       p.Fields.Account(),
		Amount:        p.Sum.Amount,
		Currency:      p.Sum.Currency,
		Comment:       deref(p.Comment),
	})
}

// Identify godoc
//
//	@Summary		Submit identification data
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.IdentificationRequestDTO	true	"Personal data"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.IdentityResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		502	{object}	utils.Response	"Wallet API error"
//	@Router			/api/wallet/identification [post]
func (h *WalletHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req dto.IdentificationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := h.walletService.Identify(r.Context(), qiwi.IdentificationRequest{
		BirthDate:  req.BirthDate,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Passport:   req.Passport,
		INN:        req.INN,
		Snils:      req.Snils,
		Oms:        req.Oms,
	})
	if err != nil {
		errmap.Respond(w, err)
		return
	}

	response := dto.IdentityResponseDTO{
		Type:       string(identity.Type),
		FirstName:  deref(identity.FirstName),
		MiddleName: deref(identity.MiddleName),
		LastName:   deref(identity.LastName),
		Verified:   identity.Verified(),
	}
	if identity.ID != nil {
		response.ID = *identity.ID
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
