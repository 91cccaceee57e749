package dto

import "github.com/shopspring/decimal"

type BalanceResponseDTO struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"1250.50"`
	Currency int64           `json:"currency" example:"643"`
}

type AccountResponseDTO struct {
	Alias    string           `json:"alias" example:"qw_wallet_rub"`
	Title    string           `json:"title,omitempty" example:"Qiwi Account"`
	Type     string           `json:"type,omitempty" example:"WALLET"`
	Currency int64            `json:"currency" example:"643"`
	Balance  *decimal.Decimal `json:"balance,omitempty" swaggertype:"string" example:"1250.50"`
}

type OfferedAccountResponseDTO struct {
	Alias    string `json:"alias" example:"qw_wallet_usd"`
	Currency int64  `json:"currency" example:"840"`
}

type CreateAccountRequestDTO struct {
	Alias string `json:"alias" example:"qw_wallet_usd"`
}

type ProfileResponseDTO struct {
	PersonID       int64    `json:"person_id,omitempty" example:"79112223344"`
	ContractID     int64    `json:"contract_id,omitempty" example:"79112223344"`
	Blocked        bool     `json:"blocked" example:"false"`
	Email          string   `json:"email,omitempty" example:"user@example.com"`
	Operator       string   `json:"operator,omitempty" example:"Beeline"`
	Identification []string `json:"identification,omitempty" example:"QIWI:SIMPLE"`
	RegisteredAt   string   `json:"registered_at,omitempty" example:"2017-01-07T16:51:06+03:00"`
}

type CommissionRequestDTO struct {
	Recipient string          `json:"recipient" example:"79112223344"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100.50"`
}

type OnlineCommissionResponseDTO struct {
	ProviderID int64           `json:"provider_id" example:"99"`
	Withdraw   decimal.Decimal `json:"withdraw" swaggertype:"string" example:"101.50"`
	Enrollment decimal.Decimal `json:"enrollment" swaggertype:"string" example:"100.50"`
	Commission decimal.Decimal `json:"commission" swaggertype:"string" example:"1"`
	Currency   int64           `json:"currency" example:"643"`
	Rate       decimal.Decimal `json:"rate" swaggertype:"string" example:"1"`
}

type CommissionRangeDTO struct {
	Bound *decimal.Decimal `json:"bound,omitempty" swaggertype:"string" example:"0"`
	Rate  *decimal.Decimal `json:"rate,omitempty" swaggertype:"string" example:"0.02"`
	Min   *decimal.Decimal `json:"min,omitempty" swaggertype:"string" example:"50"`
	Max   *decimal.Decimal `json:"max,omitempty" swaggertype:"string"`
	Fixed *decimal.Decimal `json:"fixed,omitempty" swaggertype:"string" example:"0"`
}

type PaymentRequestDTO struct {
	ProviderID string            `json:"provider_id" example:"99"`
	Recipient  string            `json:"recipient" example:"79112223344"`
	Amount     decimal.Decimal   `json:"amount" swaggertype:"string" example:"100.50"`
	Comment    string            `json:"comment,omitempty" example:"thanks"`
	Fields     map[string]string `json:"fields,omitempty"`
}

type MobilePaymentRequestDTO struct {
	Phone  string          `json:"phone" example:"79112223344"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

type CardPaymentRequestDTO struct {
	Card   string          `json:"card" example:"4276 3800 1234 5678"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
}

type PaymentResponseDTO struct {
	ID            string          `json:"id" example:"1512146237000"`
	TransactionID string          `json:"transaction_id" example:"11181101215"`
	State         string          `json:"state" example:"Accepted"`
	Account       string          `json:"account" example:"79112223344"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"100.50"`
	Currency      int64           `json:"currency" example:"643"`
	Comment       string          `json:"comment,omitempty" example:"thanks"`
}

type IdentificationRequestDTO struct {
	BirthDate  string `json:"birth_date" example:"1998-02-11"`
	FirstName  string `json:"first_name" example:"Иван"`
	MiddleName string `json:"middle_name" example:"Иванович"`
	LastName   string `json:"last_name" example:"Иванов"`
	Passport   string `json:"passport" example:"4400111222"`
	INN        string `json:"inn,omitempty" example:"771234567890"`
	Snils      string `json:"snils,omitempty"`
	Oms        string `json:"oms,omitempty"`
}

type IdentityResponseDTO struct {
	ID         int64  `json:"id,omitempty" example:"79112223344"`
	Type       string `json:"type" example:"SIMPLE"`
	FirstName  string `json:"first_name,omitempty" example:"Иван"`
	MiddleName string `json:"middle_name,omitempty" example:"Иванович"`
	LastName   string `json:"last_name,omitempty" example:"Иванов"`
	Verified   bool   `json:"verified" example:"false"`
}

type RateResponseDTO struct {
	From string          `json:"from" example:"643"`
	To   string          `json:"to" example:"840"`
	Rate decimal.Decimal `json:"rate" swaggertype:"string" example:"0.0156"`
}

type FormLinkResponseDTO struct {
	URL string `json:"url" example:"https://qiwi.com/payment/form/99?currency=643&amountInteger=100&amountFraction=5"`
}
