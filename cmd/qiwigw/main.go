package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/internal/app"
	"github.com/GlebRadaev/qiwi/pkg/auth"
)

//	@title			QIWI Wallet Gateway API
//	@version		1.0
//	@description	HTTP gateway to a QIWI wallet: balances, payments, history and receipts

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	// qiwigw hash <password> prints the value for GATEWAY_PASSWORD_HASH.
	if len(os.Args) == 3 && os.Args[1] == "hash" {
		hash, err := (&auth.HashService{}).HashPassword(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("Can't hash password")
		}
		fmt.Println(hash)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	err := app.Start(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Can't start application")
		zap.L().Fatal("Can't start application: ", zap.Error(err))
	}

	err = app.Wait(ctx, cancel)
	if err != nil {
		zap.L().Fatal("All systems closed with errors. LastError:", zap.Error(err))
	}

	zap.L().Info("All systems closed without errors")
}
