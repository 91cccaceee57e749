package txnrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save inserts the entry or refreshes the mutable fields of an archived one.
func (r *Repository) Save(ctx context.Context, txn *domain.ArchivedTransaction) error {
	query := `
        INSERT INTO transactions (txn_id, wallet, txn_date, txn_type, status, status_text, account,
            provider_id, provider_name, amount, currency, commission, total, comment)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (wallet, txn_id) DO UPDATE
        SET status = EXCLUDED.status, status_text = EXCLUDED.status_text, archived_at = NOW()
    `
	_, err := r.db.Exec(ctx, query,
		txn.TxnID, txn.Wallet, txn.Date, txn.Type, txn.Status, txn.StatusText, txn.Account,
		txn.ProviderID, txn.ProviderName, txn.Amount, txn.Currency, txn.Commission, txn.Total, txn.Comment,
	)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Int64("txnID", txn.TxnID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByWallet(ctx context.Context, wallet string, limit int) ([]domain.ArchivedTransaction, error) {
	query := `
        SELECT txn_id, wallet, txn_date, txn_type, status, status_text, account,
            provider_id, provider_name, amount, currency, commission, total, comment, archived_at
        FROM transactions
        WHERE wallet = $1
        ORDER BY txn_date DESC, txn_id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, wallet, limit)
	if err != nil {
		zap.L().Error("can't get archived transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.ArchivedTransaction
	for rows.Next() {
		var txn domain.ArchivedTransaction
		err := rows.Scan(&txn.TxnID, &txn.Wallet, &txn.Date, &txn.Type, &txn.Status, &txn.StatusText, &txn.Account,
			&txn.ProviderID, &txn.ProviderName, &txn.Amount, &txn.Currency, &txn.Commission, &txn.Total, &txn.Comment,
			&txn.ArchivedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't read transaction rows", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
