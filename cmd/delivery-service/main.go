// @title                       Delivery Service API
// @version                     1.0
// @description                 Orders, rider dispatch and the delivery ledger.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/ordenes-delivery/internal/config"
	"github.com/MikeMC777/ordenes-delivery/internal/db"
	"github.com/MikeMC777/ordenes-delivery/internal/delivery"
	"github.com/MikeMC777/ordenes-delivery/internal/dispatch"
	"github.com/MikeMC777/ordenes-delivery/internal/events"
	"github.com/MikeMC777/ordenes-delivery/internal/identity"
	"github.com/MikeMC777/ordenes-delivery/internal/order"
	"github.com/MikeMC777/ordenes-delivery/internal/rider"
	"github.com/MikeMC777/ordenes-delivery/internal/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		orderRepo    order.Repository
		riderRepo    rider.Repository
		deliveryRepo delivery.Repository
	)
	if cfg.PostgresDSN != "" {
		pool, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("[db] %v", err)
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("[db] migrate: %v", err)
		}
		orderRepo, riderRepo, deliveryRepo = order.NewPGRepo(pool), rider.NewPGRepo(pool), delivery.NewPGRepo(pool)
	} else {
		mem := memory.New()
		orderRepo, riderRepo, deliveryRepo = mem.Orders(), mem.Riders(), mem.Deliveries()
	}

	var accounts rider.AccountValidator
	if cfg.IdentitySvcAddr != "" {
		cl, err := identity.NewClient(cfg.IdentitySvcAddr)
		if err != nil {
			log.Fatalf("[identity] %v", err)
		}
		accounts = cl
	} else {
		log.Printf("[identity] IDENTITY_SERVICE_ADDR not set, rider accounts are not validated")
	}
	riders := rider.NewService(riderRepo, accounts)

	var (
		pubs   events.Multi
		stream eventStream
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		bus := events.NewRedisBus(rdb)
		pubs = append(pubs, bus)
		stream = bus
	}
	if cfg.TelegramToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			log.Printf("[events] telegram disabled: %v", err)
		} else {
			log.Printf("[events] telegram offers via @%s", bot.Self.UserName)
			tg := events.NewTelegramNotifier(bot, riders)
			go tg.Run(ctx)
			pubs = append(pubs, tg)
		}
	}

	ledger := delivery.NewService(deliveryRepo, riders, pubs)
	orders := order.NewService(orderRepo, order.NewExt(cfg.CatalogBaseURL))
	disp := dispatch.New(ledger, orders, cfg.CommissionRate, cfg.AutoOffer)

	sched, err := dispatch.StartSweeper(disp, cfg.SweepInterval)
	if err != nil {
		log.Fatalf("[dispatch] %v", err)
	}
	defer func() { _ = sched.Shutdown() }()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("[grpc] listen %s: %v", cfg.GRPCAddr, err)
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("delivery", healthpb.HealthCheckResponse_SERVING)
	go func() {
		log.Printf("[grpc] health listening on %s", cfg.GRPCAddr)
		if err := gs.Serve(lis); err != nil {
			log.Printf("[grpc] %v", err)
		}
	}()

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: newRouter(deps{
			verifier:           identity.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer),
			orders:             orders,
			riders:             riders,
			ledger:             ledger,
			dispatch:           disp,
			stream:             stream,
			integrationKeyHash: cfg.IntegrationKeyHash,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("delivery-service listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	hs.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown: %v", err)
	}
	gs.GracefulStop()
}
