package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	schedulehandler "github.com/ccandelora/randomment/internal/api/handlers/schedule"
	tokenhandler "github.com/ccandelora/randomment/internal/api/handlers/token"
	"github.com/ccandelora/randomment/internal/api/router"
	"github.com/ccandelora/randomment/internal/api/server"
	"github.com/ccandelora/randomment/internal/config"
	"github.com/ccandelora/randomment/internal/rabbitmq/handlers/dispatch"
	"github.com/ccandelora/randomment/internal/rabbitmq/queue"
	devicetokenrepo "github.com/ccandelora/randomment/internal/repository/devicetoken"
	schedulerepo "github.com/ccandelora/randomment/internal/repository/schedule"
	schedulesvc "github.com/ccandelora/randomment/internal/service/schedule"
	tokensvc "github.com/ccandelora/randomment/internal/service/token"
	"github.com/ccandelora/randomment/internal/worker"
	"github.com/ccandelora/randomment/pkg/push"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDispatchQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create dispatch queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))

	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	scheduleRepo := schedulerepo.NewRepository(db)
	tokenRepo := devicetokenrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	gateway := push.NewClient(cfg.Push.URL, cfg.Push.ServerKey, cfg.Push.Timeout)

	scheduleService := schedulesvc.NewService(scheduleRepo, rdb)
	tokenService := tokensvc.NewService(tokenRepo)

	scheduleHandler := schedulehandler.NewHandler(scheduleService, val, cfg)
	tokenHandler := tokenhandler.NewHandler(tokenService, val)
	messageHandler := dispatch.NewHandler(tokenService, gateway)

	dispatcher := worker.NewDispatcher(scheduleService, q, cfg.Dispatcher.Tick, cfg.Dispatcher.BatchLimit)
	deliverer := worker.NewDeliverer(q, messageHandler)

	go dispatcher.Run(ctx, cfg.Retry)
	go deliverer.Run(ctx, cfg.Retry, cfg.Dispatcher.WorkerCount)

	r := router.New(scheduleHandler, tokenHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
