package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

func TestArchive(t *testing.T) {
	date := time.Date(2018, 4, 2, 23, 11, 4, 0, time.FixedZone("", 3*60*60))
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	name := "QIWI Wallet"

	tests := []struct {
		name     string
		txn      qiwi.Transaction
		expected ArchivedTransaction
	}{
		{
			name: "Full entry",
			txn: qiwi.Transaction{
				TxnID:      11181101215,
				Date:       &date,
				Status:     qiwi.StatusSuccess,
				Type:       qiwi.TypeOut,
				Sum:        qiwi.TransactionSum{Amount: decimal.RequireFromString("70"), Currency: 643},
				Commission: qiwi.TransactionSum{Amount: decimal.Zero, Currency: 643},
				Total:      qiwi.TransactionSum{Amount: decimal.RequireFromString("70"), Currency: 643},
				Provider:   &qiwi.TransactionProvider{ID: 99, ShortName: &name},
			},
			expected: ArchivedTransaction{
				TxnID:        11181101215,
				Wallet:       "79112223344",
				Date:         date,
				Type:         "OUT",
				Status:       "SUCCESS",
				ProviderID:   func() *int64 { v := int64(99); return &v }(),
				ProviderName: &name,
				Amount:       decimal.RequireFromString("70"),
				Currency:     643,
				Commission:   decimal.Zero,
				Total:        decimal.RequireFromString("70"),
			},
		},
		{
			name: "Missing date uses fallback",
			txn: qiwi.Transaction{
				TxnID:  1,
				Status: qiwi.StatusWaiting,
				Type:   qiwi.TypeIn,
				Sum:    qiwi.TransactionSum{Amount: decimal.NewFromInt(1), Currency: 643},
				Total:  qiwi.TransactionSum{Amount: decimal.NewFromInt(1), Currency: 643},
			},
			expected: ArchivedTransaction{
				TxnID:    1,
				Wallet:   "79112223344",
				Date:     fallback,
				Type:     "IN",
				Status:   "WAITING",
				Amount:   decimal.NewFromInt(1),
				Currency: 643,
				Total:    decimal.NewFromInt(1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Archive("79112223344", tt.txn, fallback))
		})
	}
}

func TestSyncWalk_Observe(t *testing.T) {
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	walk := SyncWalk{NewestTxnID: 10}

	walk.Observe(ArchivedTransaction{TxnID: 30, Date: date, Status: "WAITING"}, true)
	walk.Observe(ArchivedTransaction{TxnID: 20, Date: date, Status: "SUCCESS"}, true)
	walk.Observe(ArchivedTransaction{TxnID: 15, Date: date, Status: "WAITING"}, true)
	walk.Observe(ArchivedTransaction{TxnID: 12, Date: date, Status: "WAITING"}, false)

	assert.Equal(t, int64(30), walk.NewestTxnID)
	assert.Equal(t, &date, walk.NewestDate)
	if assert.NotNil(t, walk.PendingTxnID) {
		assert.Equal(t, int64(15), *walk.PendingTxnID)
	}
}
