package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/application"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/clock"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/config"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/infrastructure/memory"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/infrastructure/payment"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/infrastructure/rabbitmq"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/pkg/metrics"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/router"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/worker"
)

func main() {
	// .env は任意
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Set(logger.NewLogger(cfg.Log.Env, cfg.Log.Level))
	defer func() { _ = logger.Sync() }()

	store, err := memory.NewStore(play.DefaultSeed())
	if err != nil {
		logger.Fatal("シードデータの読み込みに失敗しました", zap.Error(err))
	}
	txManager := memory.NewTxManager(store)
	playRepo := memory.NewPlayRepository(store)
	seatLedger := memory.NewSeatLedger(store)
	ticketRepo := memory.NewTicketRepository(store)

	clk := clock.NewSystem()
	gateway := payment.NewSimulatedGateway(cfg.Booking.CardDeclineRate)
	m := metrics.Init()

	opts := []application.BookingOption{application.WithMetrics(m)}

	// Redis（任意）
	var redisClient *goredis.Client
	var mirror application.SeatCountMirror
	if cfg.Redis.Enabled() {
		redisClient, err = redis.NewClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Redis設定が不正です", zap.Error(err))
		}
		if err := redis.Ping(context.Background(), redisClient); err != nil {
			logger.Warn("Redisに接続できません。空席数のミラーは無効です", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		} else {
			cache := redis.NewSeatCountCache(redisClient, 2*cfg.Worker.SeatSyncInterval)
			mirror = cache
			opts = append(opts, application.WithSeatCountMirror(cache))
			logger.Info("Redisに接続しました", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// RabbitMQ（任意）
	var publisher *rabbitmq.Publisher
	if cfg.AMQP.Enabled() {
		publisher, err = rabbitmq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			logger.Warn("RabbitMQに接続できません。販売イベントは配信しません", zap.Error(err))
		} else {
			opts = append(opts, application.WithEventPublisher(publisher))
			logger.Info("RabbitMQに接続しました", zap.String("queue", cfg.AMQP.Queue))
		}
	}

	bookingService := application.NewBookingService(
		txManager, playRepo, seatLedger, ticketRepo, gateway, clk,
		application.BookingConfig{
			Prices: ticket.PriceTable{
				MainHall:      cfg.Booking.MainHall,
				MainHallPrice: cfg.Booking.MainHallPrice,
				StandardPrice: cfg.Booking.StandardPrice,
			},
			QRBaseURL:       cfg.Booking.QRBaseURL,
			SeatCountPolicy: play.ParsePolicy(cfg.Booking.SeatCountPolicy),
		},
		opts...,
	)
	playService := application.NewPlayService(playRepo, mirror)

	var syncer *worker.SeatCountSyncer
	if mirror != nil {
		syncer = worker.NewSeatCountSyncer(playService, cfg.Worker.SeatSyncInterval)
		go syncer.Start(context.Background())
	}

	e := router.New(router.Deps{
		PlayService:    playService,
		BookingService: bookingService,
		Clock:          clk,
		Metrics:        m,
		MetricsAuth:    cfg.Metrics,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	for _, r := range e.Routes() {
		logger.Debug("ルートを登録しました", zap.String("method", r.Method), zap.String("path", r.Path))
	}

	go func() {
		logger.Info("サーバーを起動します", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("サーバーシャットダウンエラー", zap.Error(err))
	}
	if syncer != nil {
		syncer.Stop()
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Warn("RabbitMQの切断に失敗しました", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Redisの切断に失敗しました", zap.Error(err))
		}
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
