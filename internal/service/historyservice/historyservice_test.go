package historyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

func NewMock(t *testing.T) (*Service, *MockClient, *MockArchiveRepo) {
	ctrl := gomock.NewController(t)
	client := NewMockClient(ctrl)
	archive := NewMockArchiveRepo(ctrl)
	return New(client, archive), client, archive
}

func TestService_Archive(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
		repoErr       error
	}{
		{name: "Explicit limit", limit: 20, expectedLimit: 20},
		{name: "Zero limit", limit: 0, expectedLimit: 500},
		{name: "Limit too large", limit: 10000, expectedLimit: 500},
		{name: "Repo error", limit: 20, expectedLimit: 20, repoErr: errors.New("database error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client, archive := NewMock(t)
			rows := []domain.ArchivedTransaction{{TxnID: 1, Wallet: "79112223344"}}

			client.EXPECT().Number().Return("79112223344")
			if tt.repoErr != nil {
				archive.EXPECT().FindByWallet(gomock.Any(), "79112223344", tt.expectedLimit).Return(nil, tt.repoErr)
			} else {
				archive.EXPECT().FindByWallet(gomock.Any(), "79112223344", tt.expectedLimit).Return(rows, nil)
			}

			result, err := service.Archive(context.Background(), tt.limit)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rows, result)
		})
	}
}

func TestService_Archive_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := New(NewMockClient(ctrl), nil)

	_, err := service.Archive(context.Background(), 10)
	assert.ErrorIs(t, err, ErrArchiveDisabled)
}

func TestService_Delegates(t *testing.T) {
	service, client, _ := NewMock(t)
	ctx := context.Background()
	apiErr := &qiwi.APIError{StatusCode: 404, Category: qiwi.CategoryPaymentHistory}

	page := &qiwi.HistoryPage{Transactions: []qiwi.Transaction{{TxnID: 1}}}
	client.EXPECT().History(ctx, qiwi.HistoryOptions{Rows: 10}).Return(page, nil)
	hp, err := service.History(ctx, qiwi.HistoryOptions{Rows: 10})
	require.NoError(t, err)
	assert.Same(t, page, hp)

	client.EXPECT().Transaction(ctx, int64(7), qiwi.TypeOut).Return(nil, apiErr)
	_, err = service.Transaction(ctx, 7, qiwi.TypeOut)
	assert.ErrorAs(t, err, &apiErr)

	stat := &qiwi.Statistics{}
	client.EXPECT().Stat(ctx, qiwi.StatOptions{}).Return(stat, nil)
	st, err := service.Stat(ctx, qiwi.StatOptions{})
	require.NoError(t, err)
	assert.Same(t, stat, st)

	client.EXPECT().Cheque(ctx, int64(7), qiwi.TypeOut, "PDF").Return([]byte("%PDF"), nil)
	file, err := service.Cheque(ctx, 7, qiwi.TypeOut, "PDF")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), file)

	client.EXPECT().SendCheque(ctx, int64(7), qiwi.TypeOut, "user@example.com").Return(nil)
	assert.NoError(t, service.SendCheque(ctx, 7, qiwi.TypeOut, "user@example.com"))

	client.EXPECT().SendCheque(ctx, int64(8), qiwi.TypeOut, "user@example.com").Return(apiErr)
	assert.Error(t, service.SendCheque(ctx, 8, qiwi.TypeOut, "user@example.com"))
}
