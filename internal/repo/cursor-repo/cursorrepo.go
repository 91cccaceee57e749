package cursorrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Get returns nil when the wallet was never synced.
func (r *Repository) Get(ctx context.Context, wallet string) (*domain.SyncCursor, error) {
	query := `
        SELECT wallet, last_txn_id, last_date, pending_txn_id,
               walk_next_txn_id, walk_next_txn_date, walk_newest_txn_id, walk_newest_date, walk_pending_txn_id,
               synced_at
        FROM sync_cursors
        WHERE wallet = $1
    `
	var (
		cursor     domain.SyncCursor
		walkNextID *int64
		walkNext   *time.Time
		walkNewest *int64
		walk       domain.SyncWalk
	)
	err := r.db.QueryRow(ctx, query, wallet).Scan(
		&cursor.Wallet, &cursor.LastTxnID, &cursor.LastDate, &cursor.PendingTxnID,
		&walkNextID, &walkNext, &walkNewest, &walk.NewestDate, &walk.PendingTxnID,
		&cursor.SyncedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get sync cursor", zap.Error(err))
		return nil, err
	}
	if walkNextID != nil && walkNext != nil && walkNewest != nil {
		walk.NextTxnID, walk.NextTxnDate, walk.NewestTxnID = *walkNextID, *walkNext, *walkNewest
		cursor.Walk = &walk
	}
	return &cursor, nil
}

// Advance stores the cursor unless another pass already moved the watermark
// past it, in which case only synced_at is refreshed.
func (r *Repository) Advance(ctx context.Context, cursor *domain.SyncCursor) error {
	selectQuery := `
        SELECT last_txn_id
        FROM sync_cursors
        WHERE wallet = $1
        FOR UPDATE
    `
	upsertQuery := `
        INSERT INTO sync_cursors (wallet, last_txn_id, last_date, pending_txn_id,
            walk_next_txn_id, walk_next_txn_date, walk_newest_txn_id, walk_newest_date, walk_pending_txn_id,
            synced_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (wallet) DO UPDATE
        SET last_txn_id = EXCLUDED.last_txn_id, last_date = EXCLUDED.last_date,
            pending_txn_id = EXCLUDED.pending_txn_id,
            walk_next_txn_id = EXCLUDED.walk_next_txn_id, walk_next_txn_date = EXCLUDED.walk_next_txn_date,
            walk_newest_txn_id = EXCLUDED.walk_newest_txn_id, walk_newest_date = EXCLUDED.walk_newest_date,
            walk_pending_txn_id = EXCLUDED.walk_pending_txn_id,
            synced_at = EXCLUDED.synced_at
    `
	touchQuery := `
        UPDATE sync_cursors
        SET synced_at = $2
        WHERE wallet = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var stored int64
		err := r.db.QueryRow(ctx, selectQuery, cursor.Wallet).Scan(&stored)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			zap.L().Error("can't lock sync cursor", zap.Error(err))
			return err
		case stored > cursor.LastTxnID:
			if _, err := r.db.Exec(ctx, touchQuery, cursor.Wallet, cursor.SyncedAt); err != nil {
				zap.L().Error("can't touch sync cursor", zap.Error(err))
				return err
			}
			return nil
		}

		if _, err := r.db.Exec(ctx, upsertQuery, upsertArgs(cursor)...); err != nil {
			zap.L().Error("can't save sync cursor", zap.Error(err))
			return err
		}
		return nil
	})
}

func upsertArgs(c *domain.SyncCursor) []any {
	var (
		nextID, newestID, pending *int64
		next, newest              *time.Time
	)
	if w := c.Walk; w != nil {
		nextID, next, newestID, newest, pending = &w.NextTxnID, &w.NextTxnDate, &w.NewestTxnID, w.NewestDate, w.PendingTxnID
	}
	return []any{c.Wallet, c.LastTxnID, c.LastDate, c.PendingTxnID, nextID, next, newestID, newest, pending, c.SyncedAt}
}
