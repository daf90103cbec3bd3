package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tracechain-gateway/internal/auth"
	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger/fabric"
	"github.com/goodnatureofminers/tracechain-gateway/internal/live"
	"github.com/goodnatureofminers/tracechain-gateway/internal/metrics"
	"github.com/goodnatureofminers/tracechain-gateway/internal/repository/clickhouse"
	"github.com/goodnatureofminers/tracechain-gateway/internal/service"
	"github.com/goodnatureofminers/tracechain-gateway/internal/session"
	"github.com/goodnatureofminers/tracechain-gateway/internal/transport"
)

const (
	probeTimeout    = 15 * time.Second
	janitorInterval = time.Minute
	shutdownTimeout = 10 * time.Second
)

var nameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

type config struct {
	Port    int    `long:"port" env:"PORT" default:"3000" description:"HTTP listen port"`
	Channel string `long:"channel" env:"CHANNEL" default:"tracechannel" description:"Ledger channel"`
	CCName  string `long:"cc-name" env:"CC_NAME" default:"tracecc" description:"Chaincode name"`
	Network string `long:"network" env:"NETWORK_NAME" default:"fabric" description:"Network name shown in provenance proofs"`

	PeerEndpoint string `long:"peer-endpoint" env:"PEER_ENDPOINT" default:"localhost:7051" description:"Gateway peer gRPC endpoint"`
	GatewayPeer  string `long:"gateway-peer" env:"GATEWAY_PEER" default:"peer0.org1.example.com" description:"TLS server name override for the peer"`
	MSPID        string `long:"msp-id" env:"MSP_ID" default:"Org1MSP" description:"Client MSP id"`
	CertPath     string `long:"cert-path" env:"CERT_PATH" required:"true" description:"Client certificate file or directory"`
	KeyPath      string `long:"key-path" env:"KEY_PATH" required:"true" description:"Client private key file or keystore directory"`
	TLSCertPath  string `long:"tls-cert-path" env:"TLS_CERT_PATH" required:"true" description:"Peer TLS CA certificate"`

	ConnectTimeout time.Duration `long:"ledger-connect-timeout" env:"LEDGER_CONNECT_TIMEOUT" default:"10s" description:"Ledger connection acquire timeout"`
	InvokeTimeout  time.Duration `long:"ledger-invoke-timeout" env:"LEDGER_INVOKE_TIMEOUT" default:"30s" description:"Per-call ledger timeout"`
	PoolSize       int           `long:"ledger-pool-size" env:"LEDGER_POOL_SIZE" default:"8" description:"Connections per channel and chaincode"`

	SessionTTL       time.Duration `long:"session-ttl" env:"SESSION_TTL" default:"12h" description:"Session lifetime"`
	SessionRedisAddr string        `long:"session-redis-addr" env:"SESSION_REDIS_ADDR" description:"Redis address for shared sessions (in-memory when empty)"`

	LiveRetryBackoff   time.Duration `long:"live-retry-backoff" env:"LIVE_RETRY_BACKOFF" default:"5s" description:"Delay before reconnecting the block stream"`
	ArchiveDSN         string        `long:"archive-clickhouse-dsn" env:"ARCHIVE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the block archive (disabled when empty)"`
	LoginRatePerMinute int           `long:"login-rate-per-minute" env:"LOGIN_RATE_PER_MINUTE" default:"30" description:"Login attempts allowed per client per minute"`
	WSOrigins          []string      `long:"ws-origin" env:"WS_ORIGINS" env-delim:"," description:"Cross-origin hosts allowed on the WebSocket stream"`
}

func (c config) validate() error {
	if !nameRE.MatchString(c.Channel) {
		return fmt.Errorf("invalid channel name %q: use lowercase letters, digits and hyphens", c.Channel)
	}
	if !nameRE.MatchString(c.CCName) {
		return fmt.Errorf("invalid chaincode name %q: use lowercase letters, digits and hyphens", c.CCName)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func (c config) key() ledger.Key {
	return ledger.Key{Channel: c.Channel, Chaincode: c.CCName}
}

type prober interface {
	Health(ctx context.Context) error
}

// probeLedger checks the ledger answers before the gateway starts listening.
func probeLedger(ctx context.Context, p prober, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.Health(ctx); err != nil {
		return fmt.Errorf("ledger startup probe: %w", err)
	}
	return nil
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := cfg.validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Gateway stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	key := cfg.key()

	dialer, err := fabric.NewDialer(fabric.Config{
		PeerEndpoint:  cfg.PeerEndpoint,
		GatewayPeer:   cfg.GatewayPeer,
		MSPID:         cfg.MSPID,
		CertPath:      cfg.CertPath,
		KeyPath:       cfg.KeyPath,
		TLSCertPath:   cfg.TLSCertPath,
		InvokeTimeout: cfg.InvokeTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("ledger identity: %w", err)
	}
	pool, err := ledger.NewPool(dialer, cfg.PoolSize, cfg.ConnectTimeout, metrics.NewLedgerPool(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("Close ledger pool", zap.Error(err))
		}
	}()

	invoker, err := service.NewContractInvoker(pool, key, cfg.InvokeTimeout, metrics.NewContractInvoker(), logger)
	if err != nil {
		return err
	}
	records := service.NewRecords(invoker, logger)

	if err := probeLedger(ctx, records, probeTimeout); err != nil {
		return err
	}
	logger.Info("Ledger reachable", zap.Stringer("key", key))

	store, err := sessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	gate, err := auth.NewGate(records, store, cfg.SessionTTL, logger)
	if err != nil {
		return err
	}
	provenance := service.NewProvenanceAggregator(invoker, cfg.Network, key, logger)

	var (
		archive  transport.Archive
		observer live.Observer
	)
	if cfg.ArchiveDSN != "" {
		repo, err := openRepository(ctx, cfg.ArchiveDSN)
		if err != nil {
			return err
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("Close block archive", zap.Error(err))
			}
		}()
		blockArchive, err := service.NewBlockArchive(repo, key, metrics.NewArchiveWriter(), logger)
		if err != nil {
			return err
		}
		blockArchive.Start(ctx)
		defer blockArchive.Stop()
		logger.Info("Block archive enabled")
		archive, observer = blockArchive, blockArchive
	}

	broadcaster, err := live.NewBroadcaster(live.NewPoolSource(pool), observer, metrics.NewBroadcaster(), cfg.LiveRetryBackoff, logger)
	if err != nil {
		return err
	}
	defer broadcaster.Close()
	if archive != nil {
		if err := broadcaster.Watch(key); err != nil {
			return err
		}
	}

	server, err := transport.NewServer(records, provenance, gate, broadcaster, archive, metrics.NewHTTP(), transport.Config{
		Key:                key,
		Network:            cfg.Network,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		WSOriginPatterns:   cfg.WSOrigins,
	}, logger)
	if err != nil {
		return err
	}

	s := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           server.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.InvokeTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// Streams never finish on their own; ending the feeds unblocks them.
		broadcaster.Close()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", s.Addr), zap.Stringer("key", key))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func sessionStore(ctx context.Context, cfg config, logger *zap.Logger) (auth.SessionStore, error) {
	if cfg.SessionRedisAddr == "" {
		store := session.NewMemoryStore(logger)
		go func() {
			if err := store.RunJanitor(ctx, janitorInterval); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Session janitor stopped", zap.Error(err))
			}
		}()
		return store, nil
	}
	client, err := session.NewRedisClient(ctx, cfg.SessionRedisAddr)
	if err != nil {
		return nil, fmt.Errorf("session redis: %w", err)
	}
	logger.Info("Using redis session store", zap.String("addr", cfg.SessionRedisAddr))
	return session.NewRedisStore(client, logger), nil
}

func openRepository(ctx context.Context, dsn string) (*clickhouse.Repository, error) {
	repo, err := clickhouse.NewRepository(dsn, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, fmt.Errorf("block archive: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := repo.Ping(pingCtx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("block archive ping: %w", err)
	}
	return repo, nil
}
