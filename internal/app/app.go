package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/internal/config"
	"github.com/GlebRadaev/qiwi/internal/handlers"
	"github.com/GlebRadaev/qiwi/internal/pg"
	"github.com/GlebRadaev/qiwi/internal/repo"
	"github.com/GlebRadaev/qiwi/internal/service"
	"github.com/GlebRadaev/qiwi/internal/syncer"
	"github.com/GlebRadaev/qiwi/pkg/auth"
	"github.com/GlebRadaev/qiwi/pkg/clients"
	"github.com/GlebRadaev/qiwi/pkg/logger"
	"github.com/GlebRadaev/qiwi/pkg/qiwi"
)

var ErrNoToken = errors.New("qiwi api token is not set")

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	wallet *qiwi.Wallet
	sync   *syncer.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	wallet, err := connectWallet(ctx, cfg)
	if err != nil {
		zap.L().Error("wallet connection failed: ", zap.Error(err))
		return fmt.Errorf("can't connect wallet: %w", err)
	}
	a.wallet = wallet

	if cfg.Database != "" {
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
		txManager := pg.NewTXManager(pool)

		conn := pg.New(pool)
		a.repo = repo.New(conn, txManager)
		a.sync = syncer.New(cfg, wallet, a.repo.TxnRepo, a.repo.CursorRepo)
	} else {
		zap.L().Info("database is not configured, history archive is disabled")
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(cfg, wallet, a.repo, jwtService)
	a.api = handlers.New(a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSyncer(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("wallet", wallet.Number()))
	return nil
}

func connectWallet(ctx context.Context, cfg *config.Config) (*qiwi.Wallet, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}

	opts := []qiwi.Option{
		qiwi.WithBaseURL(cfg.APIAddress),
		qiwi.WithAdvertising(cfg.Advertising),
		qiwi.WithHTTPClient(clients.NewHTTPClient(
			clients.WithTimeouts(cfg.ConnectTimeout, cfg.ReadTimeout),
		)),
		qiwi.WithLogger(zap.L().Named("qiwi")),
	}
	if cfg.Number != "" {
		opts = append(opts, qiwi.WithNumber(cfg.Number))
	}
	return qiwi.Connect(ctx, cfg.Token, opts...)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSyncer(ctx context.Context) {
	if a.sync == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sync.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
