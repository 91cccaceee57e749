package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/qiwi/docs"
	authhandlers "github.com/GlebRadaev/qiwi/internal/handlers/auth"
	historyhandlers "github.com/GlebRadaev/qiwi/internal/handlers/history"
	wallethandlers "github.com/GlebRadaev/qiwi/internal/handlers/wallet"
	"github.com/GlebRadaev/qiwi/internal/service"
	"github.com/GlebRadaev/qiwi/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
	GetOfferedAccounts(w http.ResponseWriter, r *http.Request)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetRates(w http.ResponseWriter, r *http.Request)
	GetFormLink(w http.ResponseWriter, r *http.Request)
	GetCommission(w http.ResponseWriter, r *http.Request)
	CalculateCommission(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	PayMobile(w http.ResponseWriter, r *http.Request)
	PayCard(w http.ResponseWriter, r *http.Request)
	Identify(w http.ResponseWriter, r *http.Request)
}

type HistoryHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetArchive(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	GetCheque(w http.ResponseWriter, r *http.Request)
	SendCheque(w http.ResponseWriter, r *http.Request)
	GetStat(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	HistoryHandler HistoryHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		HistoryHandler: historyhandlers.New(s.HistoryService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Route("/wallet", func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Get("/profile", h.WalletHandler.GetProfile)
			r.Get("/rates", h.WalletHandler.GetRates)
			r.Get("/form-link", h.WalletHandler.GetFormLink)
			r.Post("/identification", h.WalletHandler.Identify)
			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetAccounts)
				r.Post("/", h.WalletHandler.CreateAccount)
				r.Get("/offer", h.WalletHandler.GetOfferedAccounts)
			})
			r.Route("/commission/{pid}", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetCommission)
				r.Post("/", h.WalletHandler.CalculateCommission)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.WalletHandler.Pay)
				r.Post("/mobile", h.WalletHandler.PayMobile)
				r.Post("/card", h.WalletHandler.PayCard)
			})

			r.Get("/history", h.HistoryHandler.GetHistory)
			r.Get("/archive", h.HistoryHandler.GetArchive)
			r.Get("/stat", h.HistoryHandler.GetStat)
			r.Route("/transactions/{id}", func(r chi.Router) {
				r.Get("/", h.HistoryHandler.GetTransaction)
				r.Get("/cheque", h.HistoryHandler.GetCheque)
				r.Post("/cheque", h.HistoryHandler.SendCheque)
			})
		})
	})

	return r
}
