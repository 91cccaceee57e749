package syncer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/qiwi/internal/config"
	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

const (
	maxRetries    = 3
	maxPages      = 10
	saveWorkers   = 10
	retryInterval = time.Second * 5
	pendingWindow = time.Hour * 72

	defaultInterval = time.Minute
)

var ErrRateLimited = errors.New("history rate limit exceeded")

type Client interface {
	Number() string
	History(ctx context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error)
}

type TxnRepo interface {
	Save(ctx context.Context, txn *domain.ArchivedTransaction) error
}

type CursorRepo interface {
	Get(ctx context.Context, wallet string) (*domain.SyncCursor, error)
	Advance(ctx context.Context, cursor *domain.SyncCursor) error
}

// Service copies the wallet history into the archive.
type Service struct {
	client         Client
	txnRepo        TxnRepo
	cursorRepo     CursorRepo
	rows           int
	updateInterval time.Duration
	retryInterval  time.Duration
	now            func() time.Time
}

func New(cfg *config.Config, client Client, txnRepo TxnRepo, cursorRepo CursorRepo) *Service {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		client:         client,
		txnRepo:        txnRepo,
		cursorRepo:     cursorRepo,
		rows:           cfg.SyncRows,
		updateInterval: interval,
		retryInterval:  retryInterval,
		now:            time.Now,
	}
}

// Start blocks until ctx is done.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("history sync started", zap.String("wallet", s.client.Number()), zap.Duration("interval", s.updateInterval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		if _, err := s.Sync(ctx); err != nil && ctx.Err() == nil {
			zap.L().Error("history sync failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping history sync")
			return
		case <-ticker.C:
		}
	}
}

// Sync runs one pass and reports how many entries were saved. A pass walks
// down to the watermark, or to the oldest entry still WAITING if that is
// older. A walk stopped by the page limit is kept in the cursor and resumed
// by the next pass; the watermark moves only once a walk is complete.
func (s *Service) Sync(ctx context.Context) (int, error) {
	wallet := s.client.Number()
	cursor, err := s.cursorRepo.Get(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("can't read sync cursor: %w", err)
	}
	if cursor == nil {
		cursor = &domain.SyncCursor{Wallet: wallet}
	}

	floor := cursor.LastTxnID
	if cursor.PendingTxnID != nil && *cursor.PendingTxnID <= floor {
		floor = *cursor.PendingTxnID - 1
	}

	opts := qiwi.HistoryOptions{Rows: s.rows}
	walk := domain.SyncWalk{NewestTxnID: cursor.LastTxnID, NewestDate: cursor.LastDate}
	if cursor.Walk != nil {
		walk = *cursor.Walk
		date, txnID := walk.NextTxnDate, walk.NextTxnID
		opts.NextTxnDate, opts.NextTxnID = &date, &txnID
	}

	pendingSince := s.now().Add(-pendingWindow)
	archived, finished := 0, false
	for page := 0; page < maxPages; page++ {
		hp, err := s.fetch(ctx, opts)
		if err != nil {
			return archived, err
		}

		fresh := make([]domain.ArchivedTransaction, 0, len(hp.Transactions))
		for _, t := range hp.Transactions {
			if t.TxnID <= floor {
				continue
			}
			rec := domain.Archive(wallet, t, s.now())
			fresh = append(fresh, rec)
			walk.Observe(rec, rec.Date.After(pendingSince))
		}

		if err := s.save(ctx, fresh); err != nil {
			return archived, err
		}
		archived += len(fresh)

		date, txnID, ok := hp.Cursor()
		if !ok || len(fresh) < len(hp.Transactions) {
			finished = true
			break
		}
		opts.NextTxnDate, opts.NextTxnID = &date, &txnID
	}

	next := &domain.SyncCursor{
		Wallet:       wallet,
		LastTxnID:    cursor.LastTxnID,
		LastDate:     cursor.LastDate,
		PendingTxnID: cursor.PendingTxnID,
		SyncedAt:     s.now(),
	}
	if finished {
		next.LastTxnID, next.LastDate, next.PendingTxnID = walk.NewestTxnID, walk.NewestDate, walk.PendingTxnID
	} else {
		walk.NextTxnDate, walk.NextTxnID = *opts.NextTxnDate, *opts.NextTxnID
		next.Walk = &walk
		zap.L().Warn("history sync hit the page limit, resuming on the next pass",
			zap.String("wallet", wallet), zap.Int64("nextTxnId", walk.NextTxnID))
	}

	if err := s.cursorRepo.Advance(ctx, next); err != nil {
		return archived, fmt.Errorf("can't advance sync cursor: %w", err)
	}
	zap.L().Info("history synced", zap.String("wallet", wallet), zap.Int("archived", archived), zap.Int64("watermark", next.LastTxnID))
	return archived, nil
}

func (s *Service) fetch(ctx context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
	for attempt := 1; ; attempt++ {
		hp, err := s.client.History(ctx, opts)
		var apiErr *qiwi.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusLocked {
			return hp, err
		}
		if attempt == maxRetries {
			return nil, fmt.Errorf("%w after %d attempts: %s", ErrRateLimited, attempt, apiErr.Description)
		}

		retryAfter := s.retryInterval * time.Duration(attempt)
		zap.L().Warn("history rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryAfter):
		}
	}
}

func (s *Service) save(ctx context.Context, txns []domain.ArchivedTransaction) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(saveWorkers)
	for i := range txns {
		txn := &txns[i]
		g.Go(func() error {
			if err := s.txnRepo.Save(ctx, txn); err != nil {
				return fmt.Errorf("can't archive transaction %d: %w", txn.TxnID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
