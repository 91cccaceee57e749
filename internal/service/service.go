package service

import (
	"github.com/GlebRadaev/qiwi/internal/config"
	"github.com/GlebRadaev/qiwi/internal/handlers/auth"
	"github.com/GlebRadaev/qiwi/internal/handlers/history"
	"github.com/GlebRadaev/qiwi/internal/handlers/wallet"

	pkgauth "github.com/GlebRadaev/qiwi/pkg/auth"

	"github.com/GlebRadaev/qiwi/internal/repo"
	authservice "github.com/GlebRadaev/qiwi/internal/service/authservice"
	historyservice "github.com/GlebRadaev/qiwi/internal/service/historyservice"
	walletservice "github.com/GlebRadaev/qiwi/internal/service/walletservice"
)

// Client is the part of the wallet the gateway exposes.
type Client interface {
	walletservice.Client
	historyservice.Client
}

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	HistoryService history.Service
}

// New builds the services. repo is nil when the history archive is disabled.
func New(cfg *config.Config, client Client, repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	var archive historyservice.ArchiveRepo
	if repo != nil {
		archive = repo.TxnRepo
	}

	return &Services{
		AuthService:    authservice.New(cfg.PasswordHash, &pkgauth.HashService{}, jwtService),
		WalletService:  walletservice.New(client),
		HistoryService: historyservice.New(client, archive),
	}
}
