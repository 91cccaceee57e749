package syncer

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/qiwi/internal/config"
	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

const wallet = "79112223344"

var syncTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	client  *MockClient
	txns    *MockTxnRepo
	cursors *MockCursorRepo
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		client:  NewMockClient(ctrl),
		txns:    NewMockTxnRepo(ctrl),
		cursors: NewMockCursorRepo(ctrl),
	}
	m.client.EXPECT().Number().Return(wallet).AnyTimes()

	s := New(&config.Config{SyncRows: 50, SyncInterval: time.Minute}, m.client, m.txns, m.cursors)
	s.retryInterval = time.Millisecond
	s.now = func() time.Time { return syncTime }
	return s, m
}

func txn(id int64) qiwi.Transaction {
	date := syncTime.Add(-time.Duration(id) * time.Minute)
	return qiwi.Transaction{
		TxnID:  id,
		Date:   &date,
		Status: qiwi.StatusSuccess,
		Type:   qiwi.TypeOut,
		Sum:    qiwi.TransactionSum{Amount: decimal.NewFromInt(id), Currency: 643},
		Total:  qiwi.TransactionSum{Amount: decimal.NewFromInt(id), Currency: 643},
	}
}

func page(next int64, ids ...int64) *qiwi.HistoryPage {
	hp := &qiwi.HistoryPage{}
	for _, id := range ids {
		hp.Transactions = append(hp.Transactions, txn(id))
	}
	if next != 0 {
		date := syncTime.Add(-time.Duration(next) * time.Minute)
		hp.NextTxnDate, hp.NextTxnID = &date, &next
	}
	return hp
}

// collect records saved ids; saves run concurrently.
func collect(m mocks, times int) *[]int64 {
	var mu sync.Mutex
	saved := []int64{}
	m.txns.EXPECT().Save(gomock.Any(), gomock.Any()).Times(times).
		DoAndReturn(func(_ context.Context, rec *domain.ArchivedTransaction) error {
			mu.Lock()
			defer mu.Unlock()
			saved = append(saved, rec.TxnID)
			return nil
		})
	return &saved
}

func TestService_Sync_FirstPass(t *testing.T) {
	s, m := NewMock(t)

	m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
	m.client.EXPECT().History(gomock.Any(), qiwi.HistoryOptions{Rows: 50}).Return(page(0, 20, 10), nil)
	saved := collect(m, 2)
	m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
			assert.Equal(t, wallet, c.Wallet)
			assert.Equal(t, int64(20), c.LastTxnID)
			require.NotNil(t, c.LastDate)
			assert.Equal(t, *txn(20).Date, *c.LastDate)
			assert.Equal(t, syncTime, c.SyncedAt)
			return nil
		})

	archived, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, archived)
	sort.Slice(*saved, func(i, j int) bool { return (*saved)[i] < (*saved)[j] })
	assert.Equal(t, []int64{10, 20}, *saved)
}

func TestService_Sync_StopsAtWatermark(t *testing.T) {
	s, m := NewMock(t)

	m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(&domain.SyncCursor{Wallet: wallet, LastTxnID: 10}, nil)
	gomock.InOrder(
		m.client.EXPECT().History(gomock.Any(), qiwi.HistoryOptions{Rows: 50}).Return(page(25, 40, 30), nil),
		m.client.EXPECT().History(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
				require.NotNil(t, opts.NextTxnID)
				assert.Equal(t, int64(25), *opts.NextTxnID)
				require.NotNil(t, opts.NextTxnDate)
				return page(5, 20, 10), nil
			}),
	)
	saved := collect(m, 3)
	m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
			assert.Equal(t, int64(40), c.LastTxnID)
			return nil
		})

	archived, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, archived)
	assert.ElementsMatch(t, []int64{40, 30, 20}, *saved)
}

func TestService_Sync_NothingNew(t *testing.T) {
	s, m := NewMock(t)
	last := syncTime.Add(-time.Hour)

	m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(&domain.SyncCursor{Wallet: wallet, LastTxnID: 20, LastDate: &last}, nil)
	m.client.EXPECT().History(gomock.Any(), gomock.Any()).Return(page(5, 20, 10), nil)
	m.cursors.EXPECT().Advance(gomock.Any(), &domain.SyncCursor{
		Wallet: wallet, LastTxnID: 20, LastDate: &last, SyncedAt: syncTime,
	}).Return(nil)

	archived, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Zero(t, archived)
}

func TestService_Sync_PageLimit(t *testing.T) {
	s, m := NewMock(t)

	m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(&domain.SyncCursor{Wallet: wallet, LastTxnID: 5}, nil)
	next := int64(1000)
	m.client.EXPECT().History(gomock.Any(), gomock.Any()).Times(maxPages).
		DoAndReturn(func(_ context.Context, _ qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
			next--
			return page(next-1, next), nil
		})
	collect(m, maxPages)
	m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
			assert.Equal(t, int64(5), c.LastTxnID)
			require.NotNil(t, c.Walk)
			assert.Equal(t, int64(989), c.Walk.NextTxnID)
			assert.Equal(t, *txn(989).Date, c.Walk.NextTxnDate)
			assert.Equal(t, int64(999), c.Walk.NewestTxnID)
			return nil
		})

	archived, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, maxPages, archived)
}

func TestService_Sync_ResumesWalk(t *testing.T) {
	s, m := NewMock(t)
	newest := *txn(999).Date

	m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(&domain.SyncCursor{
		Wallet:    wallet,
		LastTxnID: 5,
		Walk:      &domain.SyncWalk{NextTxnID: 989, NextTxnDate: *txn(989).Date, NewestTxnID: 999, NewestDate: &newest},
	}, nil)
	m.client.EXPECT().History(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
			require.NotNil(t, opts.NextTxnID)
			assert.Equal(t, int64(989), *opts.NextTxnID)
			return page(3, 989, 6, 5, 4), nil
		})
	saved := collect(m, 2)
	m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
			assert.Equal(t, int64(999), c.LastTxnID)
			assert.Equal(t, &newest, c.LastDate)
			assert.Nil(t, c.Walk)
			return nil
		})

	archived, err := s.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, archived)
	assert.ElementsMatch(t, []int64{989, 6}, *saved)
}

func TestService_Sync_RefreshesWaiting(t *testing.T) {
	waiting := func(id int64) qiwi.Transaction {
		t := txn(id)
		t.Status = qiwi.StatusWaiting
		return t
	}

	t.Run("Waiting entry is remembered", func(t *testing.T) {
		s, m := NewMock(t)
		m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(&domain.SyncCursor{Wallet: wallet, LastTxnID: 10}, nil)
		m.client.EXPECT().History(gomock.Any(), gomock.Any()).
			Return(&qiwi.HistoryPage{Transactions: []qiwi.Transaction{txn(30), waiting(20), waiting(15), txn(10)}}, nil)
		collect(m, 3)
		m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
				assert.Equal(t, int64(30), c.LastTxnID)
				require.NotNil(t, c.PendingTxnID)
				assert.Equal(t, int64(15), *c.PendingTxnID)
				return nil
			})

		_, err := s.Sync(context.Background())
		require.NoError(t, err)
	})

	t.Run("Settled status is saved again", func(t *testing.T) {
		s, m := NewMock(t)
		pending := int64(15)
		m.cursors.EXPECT().Get(gomock.Any(), wallet).
			Return(&domain.SyncCursor{Wallet: wallet, LastTxnID: 30, PendingTxnID: &pending}, nil)
		m.client.EXPECT().History(gomock.Any(), gomock.Any()).
			Return(&qiwi.HistoryPage{Transactions: []qiwi.Transaction{txn(30), txn(20), txn(15), txn(10)}}, nil)

		var mu sync.Mutex
		statuses := map[int64]string{}
		m.txns.EXPECT().Save(gomock.Any(), gomock.Any()).Times(3).
			DoAndReturn(func(_ context.Context, rec *domain.ArchivedTransaction) error {
				mu.Lock()
				defer mu.Unlock()
				statuses[rec.TxnID] = rec.Status
				return nil
			})
		m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
				assert.Equal(t, int64(30), c.LastTxnID)
				assert.Nil(t, c.PendingTxnID)
				return nil
			})

		_, err := s.Sync(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[int64]string{30: "SUCCESS", 20: "SUCCESS", 15: "SUCCESS"}, statuses)
	})

	t.Run("Old waiting entry is dropped", func(t *testing.T) {
		s, m := NewMock(t)
		old := waiting(20)
		date := syncTime.Add(-pendingWindow - time.Hour)
		old.Date = &date
		m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
		m.client.EXPECT().History(gomock.Any(), gomock.Any()).
			Return(&qiwi.HistoryPage{Transactions: []qiwi.Transaction{txn(30), old}}, nil)
		collect(m, 2)
		m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.SyncCursor) error {
				assert.Nil(t, c.PendingTxnID)
				return nil
			})

		_, err := s.Sync(context.Background())
		require.NoError(t, err)
	})
}

func TestService_Sync_RateLimit(t *testing.T) {
	locked := &qiwi.APIError{StatusCode: 423, Category: qiwi.CategoryPaymentHistory, Description: "Too many requests"}

	t.Run("Retried", func(t *testing.T) {
		s, m := NewMock(t)
		m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
		gomock.InOrder(
			m.client.EXPECT().History(gomock.Any(), gomock.Any()).Return(nil, locked),
			m.client.EXPECT().History(gomock.Any(), gomock.Any()).Return(page(0, 1), nil),
		)
		collect(m, 1)
		m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).Return(nil)

		archived, err := s.Sync(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, archived)
	})

	t.Run("Exhausted", func(t *testing.T) {
		s, m := NewMock(t)
		m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
		m.client.EXPECT().History(gomock.Any(), gomock.Any()).Times(maxRetries).Return(nil, locked)

		_, err := s.Sync(context.Background())
		assert.ErrorIs(t, err, ErrRateLimited)
	})
}

func TestService_Sync_Errors(t *testing.T) {
	dbErr := errors.New("database error")
	apiErr := &qiwi.APIError{StatusCode: 401, Category: qiwi.CategoryPaymentHistory}

	tests := []struct {
		name      string
		mockSetup func(m mocks)
		expectErr error
	}{
		{
			name: "Cursor read fails",
			mockSetup: func(m mocks) {
				m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, dbErr)
			},
			expectErr: dbErr,
		},
		{
			name: "Api error is not retried",
			mockSetup: func(m mocks) {
				m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
				m.client.EXPECT().History(gomock.Any(), gomock.Any()).Return(nil, apiErr)
			},
			expectErr: apiErr,
		},
		{
			name: "Save fails keeps the cursor",
			mockSetup: func(m mocks) {
				m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
				m.client.EXPECT().History(gomock.Any(), gomock.Any()).Return(page(0, 1), nil)
				m.txns.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectErr: dbErr,
		},
		{
			name: "Cursor write fails",
			mockSetup: func(m mocks) {
				m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, nil)
				m.client.EXPECT().History(gomock.Any(), gomock.Any()).Return(page(0), nil)
				m.cursors.EXPECT().Advance(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.mockSetup(m)
			_, err := s.Sync(context.Background())
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestService_Start_StopsOnCancel(t *testing.T) {
	s, m := NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.cursors.EXPECT().Get(gomock.Any(), wallet).Return(nil, context.Canceled)

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sync loop did not stop")
	}
}

func TestNew_DefaultInterval(t *testing.T) {
	s := New(&config.Config{SyncRows: 50}, nil, nil, nil)
	assert.Equal(t, defaultInterval, s.updateInterval)
}
