// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Harshdalal22/ssktrucker/internal/ai"
	"github.com/Harshdalal22/ssktrucker/internal/config"
	httptransport "github.com/Harshdalal22/ssktrucker/internal/http"
	"github.com/Harshdalal22/ssktrucker/internal/http/handlers"
	"github.com/Harshdalal22/ssktrucker/internal/infra"
	"github.com/Harshdalal22/ssktrucker/internal/maps"
	"github.com/Harshdalal22/ssktrucker/internal/modules/booking"
	"github.com/Harshdalal22/ssktrucker/internal/modules/chat"
	"github.com/Harshdalal22/ssktrucker/internal/modules/fleet"
	"github.com/Harshdalal22/ssktrucker/internal/modules/pricing"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		bookingStore booking.Store
		fleetStore   fleet.Store
	)
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("postgres init", zap.Error(err))
		}
		defer pool.Close()
		bookingStore = booking.NewPGStore(pool)
		fleetStore = fleet.NewPGStore(pool)
		logger.Info("using postgres stores")
	} else {
		bookingStore = booking.NewMemStore()
		fleetStore = fleet.NewMemStore()
		logger.Info("TRUCKER_DB_DSN not set, using in-memory stores")
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	presence := fleet.NewPresenceStore(redisClient)

	bookingSvc := booking.NewService(bookingStore)
	fleetSvc := fleet.NewService(fleetStore, presence, logger)
	pricingSvc := pricing.NewService()

	hub := chat.NewHub(logger)
	chatSvc := chat.NewService(chat.NewStore(redisClient, cfg.Chat.HistoryLimit), hub, logger)

	var advisor ai.Advisor
	if cfg.Advisory.GeminiKey != "" {
		gemini, err := ai.NewGeminiAdvisor(ctx, cfg.Advisory.GeminiKey)
		if err != nil {
			logger.Warn("gemini init failed, advisory disabled", zap.Error(err))
		} else {
			advisor = gemini
			defer gemini.Close()
		}
	}
	advisorySvc := ai.NewService(advisor, cfg.Advisory.Timeout, logger)

	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logger.Warn("maps init failed, route estimates disabled", zap.Error(err))
		}
	}

	srv := &httptransport.Server{
		Bookings: handlers.NewBookingHandler(bookingSvc),
		Fleet:    handlers.NewFleetHandler(fleetSvc),
		Chat:     handlers.NewChatHandler(chatSvc, hub, logger),
		AI:       handlers.NewAIHandler(advisorySvc, routeSvc),
		Pricing:  handlers.NewPricingHandler(pricingSvc),
		Logger:   logger,
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: srv.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
