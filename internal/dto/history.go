package dto

import "github.com/shopspring/decimal"

type TransactionResponseDTO struct {
	TxnID      int64           `json:"txn_id" example:"11181101215"`
	Date       string          `json:"date,omitempty" example:"2018-04-02T23:11:04+03:00"`
	Type       string          `json:"type" example:"OUT"`
	Status     string          `json:"status" example:"SUCCESS"`
	StatusText string          `json:"status_text,omitempty" example:"Успешно"`
	Account    string          `json:"account,omitempty" example:"+79112223344"`
	Provider   string          `json:"provider,omitempty" example:"QIWI Wallet"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"70"`
	Commission decimal.Decimal `json:"commission" swaggertype:"string" example:"0"`
	Total      decimal.Decimal `json:"total" swaggertype:"string" example:"70"`
	Currency   int64           `json:"currency" example:"643"`
	Comment    string          `json:"comment,omitempty"`
}

type HistoryResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	NextTxnDate  string                   `json:"next_txn_date,omitempty" example:"2018-04-01T12:00:00+03:00"`
	NextTxnID    int64                    `json:"next_txn_id,omitempty" example:"11181101200"`
}

type SumDTO struct {
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"70"`
	Currency int64           `json:"currency" example:"643"`
}

type StatResponseDTO struct {
	Incoming []SumDTO `json:"incoming"`
	Outgoing []SumDTO `json:"outgoing"`
}

type ChequeSendRequestDTO struct {
	Email string `json:"email" example:"user@example.com"`
}
