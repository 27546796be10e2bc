package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/vogiaan1904/smartq-queue/config"
	"github.com/vogiaan1904/smartq-queue/internal/catalog"
	httpDelivery "github.com/vogiaan1904/smartq-queue/internal/delivery/http"
	"github.com/vogiaan1904/smartq-queue/internal/delivery/kafka/consumer"
	"github.com/vogiaan1904/smartq-queue/internal/delivery/kafka/producer"
	"github.com/vogiaan1904/smartq-queue/internal/infra/redis"
	"github.com/vogiaan1904/smartq-queue/internal/queue"
	repo "github.com/vogiaan1904/smartq-queue/internal/repository/redis"
	"github.com/vogiaan1904/smartq-queue/internal/service"
	"github.com/vogiaan1904/smartq-queue/internal/worker"
	pkgKafka "github.com/vogiaan1904/smartq-queue/pkg/kafka"
	pkgLog "github.com/vogiaan1904/smartq-queue/pkg/logger"
	"github.com/vogiaan1904/smartq-queue/pkg/notify"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	l := pkgLog.New(cfg.Log.Level, cfg.Log.Encoding)
	defer l.Sync()

	redisCli, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		l.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redis.Disconnect(redisCli)

	bkRepo := repo.NewRedisBookingRepository(redisCli, l, cfg.Queue.HistoryLimit)
	store := queue.NewStore()
	cat := catalog.New()

	// Kafka producer and consumer, skipped when the broker is not available
	var prod producer.Producer
	var kafkaConsGr sarama.ConsumerGroup
	if cfg.Kafka.Enabled {
		kafkaSyncProd, err := pkgKafka.NewProducer(pkgKafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			RetryMax:     cfg.Kafka.ProducerRetryMax,
			RequiredAcks: cfg.Kafka.ProducerRequiredAcks,
		})
		if err != nil {
			l.Fatal("Failed to initialize Kafka producer", "error", err)
		}
		prod = producer.NewProducer(kafkaSyncProd, l)
		defer prod.Close()

		kafkaConsGr, err = pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			GroupID: cfg.Kafka.ConsumerGroupID,
		})
		if err != nil {
			l.Fatal("Failed to initialize Kafka consumer", "error", err)
		}
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	sched := worker.NewScheduler(redisOpt, l)
	defer sched.Close()

	var notifier notify.Notifier
	if cfg.PubNub.Enabled {
		notifier, err = notify.NewPubNubNotifier(cfg.PubNub, l)
		if err != nil {
			l.Fatal("Failed to initialize PubNub", "error", err)
		}
	} else {
		notifier = notify.NewLogNotifier(l)
	}
	defer notifier.Close()

	bkSvc := service.NewBookingService(store, cat, bkRepo, prod, sched, l, cfg.JWT)

	// Rehydrate state so a restart does not lose the active booking
	if err := bkSvc.Restore(ctx); err != nil {
		l.Error("Failed to restore booking state", "error", err)
	}

	var sim service.Simulator
	if cfg.Queue.SimulatorEnabled {
		sim = service.NewSimulator(bkSvc, store, cfg.Queue.SimulatorInterval, l)
		if err := sim.Start(ctx); err != nil {
			l.Fatal("Failed to start simulator", "error", err)
		}
		defer sim.Stop()
	}

	if kafkaConsGr != nil {
		cons := consumer.NewConsumer(kafkaConsGr, bkSvc, l)
		if err := cons.Start(ctx); err != nil {
			l.Fatal("Failed to start Kafka consumer", "error", err)
		}
		defer cons.Close()
	}

	// Background worker for departure reminders
	workerHandlers := worker.NewHandlers(notifier, l)
	asynqSrv, mux := worker.NewServer(redisOpt, workerHandlers, l)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(httpDelivery.RequestLogger(l))
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	h := httpDelivery.NewHandler(bkSvc, sim, l)
	h.RegisterRoutes(e)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := asynqSrv.Run(mux); err != nil {
			return fmt.Errorf("worker server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		l.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.HTTPPort)); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			l.Info("Shutdown signal received", "signal", sig.String())
		case <-gctx.Done():
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()

		if err := e.Shutdown(shutdownCtx); err != nil {
			l.Error("HTTP server shutdown failed", "error", err)
		}
		asynqSrv.Shutdown()
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		l.Error("Server exited with error", "error", err)
	}

	l.Info("Server exited")
}
