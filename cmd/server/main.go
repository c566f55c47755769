package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rollcall/internal/attendance/challenger"
	"rollcall/internal/attendance/handler"
	"rollcall/internal/attendance/inflight"
	"rollcall/internal/attendance/location"
	"rollcall/internal/attendance/models"
	"rollcall/internal/attendance/operator"
	"rollcall/internal/attendance/policy"
	"rollcall/internal/attendance/remote"
	"rollcall/internal/audit"
	jwttoken "rollcall/internal/jwt_token"
	"rollcall/internal/platform/config"
	"rollcall/internal/platform/httpserver"
	"rollcall/internal/platform/logger"
	"rollcall/internal/platform/metrics"
	platformredis "rollcall/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// In-flight guard store: shared through Redis when configured, otherwise
	// process-local.
	var guardStore inflight.Store = inflight.NewMemoryStore()
	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		guardStore = inflight.NewRedisStore(redisClient.Client)
		log.Info("in-flight guard backed by redis")
	}
	guard := inflight.NewGuard(guardStore)

	auditStore, cleanupAudit, err := buildAuditStore(cfg)
	if err != nil {
		log.Error("audit sink setup failed", "sink", cfg.AuditSink, "error", err)
		os.Exit(1)
	}
	defer cleanupAudit()

	// Events flow through a buffered channel so emission never blocks the
	// request path.
	inbox := make(chan audit.Event, 256)
	auditor := audit.NewPublisher(audit.NewChannelStore(inbox))
	worker := audit.NewWorker(auditStore, inbox)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	api := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteToken)

	// Stand-in device signal until a per-request location source lands. The
	// reported coordinate sits at the fence center so local check-ins pass
	// the gate.
	center := models.Coordinate{Latitude: cfg.FenceCenterLat, Longitude: cfg.FenceCenterLng}
	loc := location.NewStaticProvider(center, center, cfg.GeofenceRadiusMeters, cfg.FenceAddress)

	attendancePolicy := policy.Policy{
		OnTimeThreshold: cfg.OnTimeThreshold,
		LateThreshold:   cfg.LateThreshold,
	}
	expiry := policy.ExpiryPolicyBlock
	if cfg.AllowExpiredCheckIn {
		expiry = policy.ExpiryPolicyAllow
	}

	challengerSvc := challenger.NewService(api, loc,
		challenger.WithLogger(log),
		challenger.WithMetrics(m),
		challenger.WithAuditor(auditor),
		challenger.WithPolicy(attendancePolicy),
		challenger.WithExpiryPolicy(expiry),
	)
	operatorSvc := operator.NewService(api,
		operator.WithLogger(log),
		operator.WithMetrics(m),
		operator.WithAuditor(auditor),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "rollcall", "rollcall-api")
	validator := jwttoken.NewJWTServiceAdapter(jwtService)

	h := handler.New(challengerSvc, operatorSvc, guard, log, m, validator)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	h.Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting rollcall", "addr", cfg.Addr, "audit_sink", cfg.AuditSink)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	loc.StopAllGeofenceMonitoring()
}

// buildAuditStore selects the audit trail sink. The returned cleanup is safe
// to call even when the sink holds no resources.
func buildAuditStore(cfg config.Config) (audit.Store, func(), error) {
	switch cfg.AuditSink {
	case "postgres":
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return audit.NewPostgresStore(db), func() { db.Close() }, nil
	case "kafka":
		sink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		return sink, sink.Close, nil
	default:
		return audit.NewInMemoryStore(), func() {}, nil
	}
}
