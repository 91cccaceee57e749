package walletservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

type Client interface {
	Accounts(ctx context.Context) ([]qiwi.Account, error)
	Balance(ctx context.Context, currency int64) (decimal.Decimal, error)
	Profile(ctx context.Context) (*qiwi.Profile, error)
	OfferedAccounts(ctx context.Context) ([]qiwi.OfferedAccount, error)
	CreateAccount(ctx context.Context, alias string) error
	CrossRates(ctx context.Context) ([]qiwi.Rate, error)
	Commission(ctx context.Context, pid, recipient string, amount decimal.Decimal) (*qiwi.OnlineCommission, error)
	LocalCommission(ctx context.Context, pid string) (*qiwi.Commission, error)
	Send(ctx context.Context, p qiwi.PaymentRequest) (*qiwi.Payment, error)
	Mobile(ctx context.Context, phone string, amount decimal.Decimal) (*qiwi.Payment, error)
	CardTransfer(ctx context.Context, card string, amount decimal.Decimal) (*qiwi.Payment, error)
	Identification(ctx context.Context, r qiwi.IdentificationRequest) (*qiwi.Identity, error)
}

type Service struct {
	client Client
}

func New(client Client) *Service {
	return &Service{
		client: client,
	}
}

// Balance falls back to rubles when currency is zero.
func (s *Service) Balance(ctx context.Context, currency int64) (decimal.Decimal, error) {
	if currency == 0 {
		currency = qiwi.RubleCode
	}
	return s.client.Balance(ctx, currency)
}

func (s *Service) Accounts(ctx context.Context) ([]qiwi.Account, error) {
	return s.client.Accounts(ctx)
}

func (s *Service) OfferedAccounts(ctx context.Context) ([]qiwi.OfferedAccount, error) {
	return s.client.OfferedAccounts(ctx)
}

func (s *Service) CreateAccount(ctx context.Context, alias string) error {
	if err := s.client.CreateAccount(ctx, alias); err != nil {
		zap.L().Error("can't create account", zap.String("alias", alias), zap.Error(err))
		return err
	}
	zap.L().Info("account created", zap.String("alias", alias))
	return nil
}

func (s *Service) Profile(ctx context.Context) (*qiwi.Profile, error) {
	return s.client.Profile(ctx)
}

func (s *Service) CrossRates(ctx context.Context) ([]qiwi.Rate, error) {
	return s.client.CrossRates(ctx)
}

func (s *Service) FormLink(pid, account string, amount decimal.Decimal, comment string) (string, error) {
	return qiwi.GenerateFormLink(pid, account, amount, comment)
}

func (s *Service) Commission(ctx context.Context, pid, recipient string, amount decimal.Decimal) (*qiwi.OnlineCommission, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	return s.client.Commission(ctx, pid, recipient, amount)
}

func (s *Service) LocalCommission(ctx context.Context, pid string) (*qiwi.Commission, error) {
	return s.client.LocalCommission(ctx, pid)
}

func (s *Service) Pay(ctx context.Context, p qiwi.PaymentRequest) (*qiwi.Payment, error) {
	if err := checkAmount(p.Amount); err != nil {
		return nil, err
	}
	return logPayment(s.client.Send(ctx, p))
}

func (s *Service) PayMobile(ctx context.Context, phone string, amount decimal.Decimal) (*qiwi.Payment, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	return logPayment(s.client.Mobile(ctx, phone, amount))
}

func (s *Service) PayCard(ctx context.Context, card string, amount decimal.Decimal) (*qiwi.Payment, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	return logPayment(s.client.CardTransfer(ctx, card, amount))
}

func (s *Service) Identify(ctx context.Context, r qiwi.IdentificationRequest) (*qiwi.Identity, error) {
	identity, err := s.client.Identification(ctx, r)
	if err != nil {
		zap.L().Error("identification failed", zap.Error(err))
		return nil, err
	}
	zap.L().Info("identification submitted", zap.String("type", string(identity.Type)), zap.Bool("verified", identity.Verified()))
	return identity, nil
}

func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", qiwi.ErrInvalidArgument, amount)
	}
	return nil
}

func logPayment(p *qiwi.Payment, err error) (*qiwi.Payment, error) {
	if err != nil {
		zap.L().Error("payment failed", zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment accepted",
		zap.String("id", p.ID),
		zap.String("transactionID", p.Transaction.ID),
		zap.String("state", p.Transaction.State),
		zap.String("amount", p.Sum.Amount.String()),
	)
	return p, nil
}
