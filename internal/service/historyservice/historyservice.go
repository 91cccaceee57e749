package historyservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/internal/domain"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

const maxArchiveRows = 500

var ErrArchiveDisabled = errors.New("history archive is disabled")

type Client interface {
	Number() string
	History(ctx context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error)
	Transaction(ctx context.Context, txnID int64, typ qiwi.TransactionType) (*qiwi.Transaction, error)
	Stat(ctx context.Context, opts qiwi.StatOptions) (*qiwi.Statistics, error)
	Cheque(ctx context.Context, txnID int64, typ qiwi.TransactionType, format string) ([]byte, error)
	SendCheque(ctx context.Context, txnID int64, typ qiwi.TransactionType, email string) error
}

type ArchiveRepo interface {
	FindByWallet(ctx context.Context, wallet string, limit int) ([]domain.ArchivedTransaction, error)
}

type Service struct {
	client  Client
	archive ArchiveRepo
}

// New accepts a nil archive when no database is configured.
func New(client Client, archive ArchiveRepo) *Service {
	return &Service{
		client:  client,
		archive: archive,
	}
}

func (s *Service) History(ctx context.Context, opts qiwi.HistoryOptions) (*qiwi.HistoryPage, error) {
	return s.client.History(ctx, opts)
}

func (s *Service) Transaction(ctx context.Context, txnID int64, typ qiwi.TransactionType) (*qiwi.Transaction, error) {
	return s.client.Transaction(ctx, txnID, typ)
}

func (s *Service) Stat(ctx context.Context, opts qiwi.StatOptions) (*qiwi.Statistics, error) {
	return s.client.Stat(ctx, opts)
}

func (s *Service) Cheque(ctx context.Context, txnID int64, typ qiwi.TransactionType, format string) ([]byte, error) {
	return s.client.Cheque(ctx, txnID, typ, format)
}

func (s *Service) SendCheque(ctx context.Context, txnID int64, typ qiwi.TransactionType, email string) error {
	if err := s.client.SendCheque(ctx, txnID, typ, email); err != nil {
		zap.L().Error("can't send cheque", zap.Int64("txnID", txnID), zap.Error(err))
		return err
	}
	zap.L().Info("cheque sent", zap.Int64("txnID", txnID))
	return nil
}

// Archive lists the newest archived entries, at most limit of them.
func (s *Service) Archive(ctx context.Context, limit int) ([]domain.ArchivedTransaction, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 || limit > maxArchiveRows {
		limit = maxArchiveRows
	}
	return s.archive.FindByWallet(ctx, s.client.Number(), limit)
}
