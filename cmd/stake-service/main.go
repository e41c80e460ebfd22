package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	sharedcache "github.com/radieske/stake-service/internal/shared/cache"
	"github.com/radieske/stake-service/internal/shared/config"
	"github.com/radieske/stake-service/internal/shared/db"
	"github.com/radieske/stake-service/internal/shared/kafka"
	"github.com/radieske/stake-service/internal/shared/logger"
	"github.com/radieske/stake-service/internal/shared/metrics"
	hcache "github.com/radieske/stake-service/internal/stake-service/cache"
	shttp "github.com/radieske/stake-service/internal/stake-service/http"
	kpub "github.com/radieske/stake-service/internal/stake-service/producer"
	"github.com/radieske/stake-service/internal/stake-service/repo"
	"github.com/radieske/stake-service/internal/stake-service/service"
	"github.com/radieske/stake-service/internal/stake-service/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Inicializa logger estruturado
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Postgres: persistência dos stakes
	pg, err := db.ConnectPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis: sessões e cache de high stakes
	rdb, err := sharedcache.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writer (tópico stake_recorded)
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicStakeRecorded)
	defer writer.Close()

	// Métricas Prometheus
	m := metrics.NewStakeMetrics(prometheus.DefaultRegisterer)

	// deps
	repository := repo.NewPostgres(pg)
	highStakes := hcache.NewHighStakesCache(rdb, cfg.HighStakesTTL)
	sessions := session.NewRedisStore(rdb)
	recorder := &service.Recorder{
		Log:       log,
		Repo:      repository,
		Cache:     highStakes,
		Publ:      kpub.NewKafkaPublisher(writer, cfg.TopicStakeRecorded),
		OnPublish: m.ObservePublish,
	}

	// HTTP público
	api := shttp.NewServer(log, sessions, recorder, repository, highStakes)
	api.OnRequest = m.ObserveRequest
	apiSrv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// metrics/health
	metricsSrv := metrics.NewMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return sessions.Ping(ctx)
	})

	go func() {
		log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics srv", zap.Error(err))
		}
	}()

	go func() {
		log.Info("stake-service listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api srv", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("api shutdown", zap.Error(err))
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics shutdown", zap.Error(err))
	}
	log.Info("stake-service stopped")
}
