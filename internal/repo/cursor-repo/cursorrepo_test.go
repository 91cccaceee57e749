package cursorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

var cursorColumns = []string{
	"wallet", "last_txn_id", "last_date", "pending_txn_id",
	"walk_next_txn_id", "walk_next_txn_date", "walk_newest_txn_id", "walk_newest_date", "walk_pending_txn_id",
	"synced_at",
}

func ptr[T any](v T) *T {
	return &v
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	noID, noDate := (*int64)(nil), (*time.Time)(nil)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.SyncCursor
	}{
		{
			name: "Cursor exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(cursorColumns).
					AddRow("79112223344", int64(11181101215), &now, noID, noID, noDate, noID, noDate, noID, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM sync_cursors WHERE wallet = $1")).
					WithArgs("79112223344").
					WillReturnRows(rows)
			},
			result: &domain.SyncCursor{Wallet: "79112223344", LastTxnID: 11181101215, LastDate: &now, SyncedAt: now},
		},
		{
			name: "Unfinished walk",
			mockSetup: func() {
				rows := pgxmock.NewRows(cursorColumns).
					AddRow("79112223344", int64(100), &now, ptr(int64(90)), ptr(int64(150)), &now, ptr(int64(300)), &now, ptr(int64(200)), now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM sync_cursors WHERE wallet = $1")).
					WithArgs("79112223344").
					WillReturnRows(rows)
			},
			result: &domain.SyncCursor{
				Wallet:       "79112223344",
				LastTxnID:    100,
				LastDate:     &now,
				PendingTxnID: ptr(int64(90)),
				Walk: &domain.SyncWalk{
					NextTxnID:    150,
					NextTxnDate:  now,
					NewestTxnID:  300,
					NewestDate:   &now,
					PendingTxnID: ptr(int64(200)),
				},
				SyncedAt: now,
			},
		},
		{
			name: "Never synced",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM sync_cursors WHERE wallet = $1")).
					WithArgs("79112223344").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM sync_cursors WHERE wallet = $1")).
					WithArgs("79112223344").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), "79112223344")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Advance(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	cursor := &domain.SyncCursor{Wallet: "79112223344", LastTxnID: 200, LastDate: &now, SyncedAt: now}
	noID, noDate := (*int64)(nil), (*time.Time)(nil)
	upsertArgs := []any{"79112223344", int64(200), &now, noID, noID, noDate, noID, noDate, noID, now}

	lockQuery := regexp.QuoteMeta("SELECT last_txn_id FROM sync_cursors WHERE wallet = $1 FOR UPDATE")
	upsertQuery := regexp.QuoteMeta("INSERT INTO sync_cursors")
	touchQuery := regexp.QuoteMeta("UPDATE sync_cursors SET synced_at = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "First cursor",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(lockQuery).WithArgs("79112223344").WillReturnError(pgx.ErrNoRows)
					mock.ExpectExec(upsertQuery).
						WithArgs(upsertArgs...).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Watermark moves forward",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(lockQuery).WithArgs("79112223344").
						WillReturnRows(pgxmock.NewRows([]string{"last_txn_id"}).AddRow(int64(100)))
					mock.ExpectExec(upsertQuery).
						WithArgs(upsertArgs...).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Stale cursor only touches sync time",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(lockQuery).WithArgs("79112223344").
						WillReturnRows(pgxmock.NewRows([]string{"last_txn_id"}).AddRow(int64(300)))
					mock.ExpectExec(touchQuery).
						WithArgs("79112223344", now).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Same watermark stores the walk state",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(lockQuery).WithArgs("79112223344").
						WillReturnRows(pgxmock.NewRows([]string{"last_txn_id"}).AddRow(int64(200)))
					mock.ExpectExec(upsertQuery).
						WithArgs(upsertArgs...).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Lock error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(lockQuery).WithArgs("79112223344").WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Upsert error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(lockQuery).WithArgs("79112223344").WillReturnError(pgx.ErrNoRows)
					mock.ExpectExec(upsertQuery).
						WithArgs(upsertArgs...).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Advance(context.Background(), cursor)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Advance_UnfinishedWalk(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	cursor := &domain.SyncCursor{
		Wallet:    "79112223344",
		LastTxnID: 5,
		Walk:      &domain.SyncWalk{NextTxnID: 989, NextTxnDate: now, NewestTxnID: 999, NewestDate: &now},
		SyncedAt:  now,
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT last_txn_id FROM sync_cursors WHERE wallet = $1 FOR UPDATE")).
			WithArgs("79112223344").
			WillReturnRows(pgxmock.NewRows([]string{"last_txn_id"}).AddRow(int64(5)))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_cursors")).
			WithArgs("79112223344", int64(5), (*time.Time)(nil), (*int64)(nil),
				ptr(int64(989)), &now, ptr(int64(999)), &now, (*int64)(nil), now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})

	assert.NoError(t, repo.Advance(context.Background(), cursor))
	assert.NoError(t, mock.ExpectationsWereMet())
}
