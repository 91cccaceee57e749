package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

// ArchivedTransaction is a wallet history entry as stored in the archive.
type ArchivedTransaction struct {
	TxnID        int64           `db:"txn_id"`
	Wallet       string          `db:"wallet"`
	Date         time.Time       `db:"txn_date"`
	Type         string          `db:"txn_type"`
	Status       string          `db:"status"`
	StatusText   *string         `db:"status_text"`
	Account      *string         `db:"account"`
	ProviderID   *int64          `db:"provider_id"`
	ProviderName *string         `db:"provider_name"`
	Amount       decimal.Decimal `db:"amount"`
	Currency     int64           `db:"currency"`
	Commission   decimal.Decimal `db:"commission"`
	Total        decimal.Decimal `db:"total"`
	Comment      *string         `db:"comment"`
	ArchivedAt   time.Time       `db:"archived_at"`
}

type SyncCursor struct {
	Wallet    string     `db:"wallet"`
	LastTxnID int64      `db:"last_txn_id"`
	LastDate  *time.Time `db:"last_date"`
	// PendingTxnID is the oldest entry that was still WAITING when the last
	// walk finished. Later passes re-read the history down to it.
	PendingTxnID *int64    `db:"pending_txn_id"`
	Walk         *SyncWalk `db:"-"`
	SyncedAt     time.Time `db:"synced_at"`
}

// SyncWalk is a walk cut short by the page limit. The next pass continues
// from NextTxnDate/NextTxnID instead of the newest entry.
type SyncWalk struct {
	NextTxnID    int64      `db:"walk_next_txn_id"`
	NextTxnDate  time.Time  `db:"walk_next_txn_date"`
	NewestTxnID  int64      `db:"walk_newest_txn_id"`
	NewestDate   *time.Time `db:"walk_newest_date"`
	PendingTxnID *int64     `db:"walk_pending_txn_id"`
}

// Observe records rec in the walk. Only entries with trackPending set count
// towards PendingTxnID.
func (w *SyncWalk) Observe(rec ArchivedTransaction, trackPending bool) {
	if rec.TxnID > w.NewestTxnID {
		date := rec.Date
		w.NewestTxnID, w.NewestDate = rec.TxnID, &date
	}
	if trackPending && rec.Status == string(qiwi.StatusWaiting) && (w.PendingTxnID == nil || rec.TxnID < *w.PendingTxnID) {
		id := rec.TxnID
		w.PendingTxnID = &id
	}
}

// Archive converts a history entry. Entries without a date get fallback.
func Archive(wallet string, t qiwi.Transaction, fallback time.Time) ArchivedTransaction {
	rec := ArchivedTransaction{
		TxnID:      t.TxnID,
		Wallet:     wallet,
		Date:       fallback,
		Type:       string(t.Type),
		Status:     string(t.Status),
		StatusText: t.StatusText,
		Account:    t.Account,
		Amount:     t.Sum.Amount,
		Currency:   t.Sum.Currency,
		Commission: t.Commission.Amount,
		Total:      t.Total.Amount,
		Comment:    t.Comment,
	}
	if t.Date != nil {
		rec.Date = *t.Date
	}
	if t.Provider != nil {
		id := t.Provider.ID
		rec.ProviderID = &id
		rec.ProviderName = t.Provider.ShortName
	}
	return rec
}
