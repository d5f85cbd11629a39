package http

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombook/config"
	_ "roombook/docs"
	"roombook/transport/http/middleware"
	"roombook/transport/http/response"
	"roombook/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState
	mux    *chi.Mux

	appMiddleware  middleware.AppMiddleware
	authMiddleware middleware.AuthRole
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:         cfg,
		Router:         r,
		appMiddleware:  appMiddleware,
		authMiddleware: authMiddleware,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := http.ListenAndServe(net.JoinHostPort("0.0.0.0", h.Config.Server.Port), h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// Handler exposes the configured mux, mainly for tests.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.mux
}

func (h *HTTP) setup() {
	if h.mux != nil {
		return
	}

	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.appMiddleware.Tracing)
	h.mux.Use(h.appMiddleware.CORS)
	h.mux.Use(h.appMiddleware.RateLimit())
	h.mux.Use(h.authMiddleware.APIKey)
	h.mux.Use(h.authMiddleware.Auth)
	h.mux.Use(h.authMiddleware.RBAC)

	h.mux.Get("/health", h.HealthCheck)

	if h.Config.IsDevelopment() {
		h.mux.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	h.Router.SetupRoutes(h.mux)
}

// HealthCheck performs a server health check.
// @Summary Health check
// @Description Reports whether the server accepts traffic.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.IsDevelopment() {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
