// Package fabric connects to Hyperledger Fabric gateway peers.
package fabric

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/hyperledger/fabric-gateway/pkg/client"
	"github.com/hyperledger/fabric-gateway/pkg/identity"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"

	"github.com/goodnatureofminers/tracechain-gateway/internal/ledger"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

// Config locates the peer and the client identity used to sign transactions.
type Config struct {
	PeerEndpoint  string
	GatewayPeer   string
	MSPID         string
	CertPath      string
	KeyPath       string
	TLSCertPath   string
	InvokeTimeout time.Duration
}

// Dialer opens gateway connections with a fixed client identity.
type Dialer struct {
	cfg    Config
	id     identity.Identity
	sign   identity.Sign
	creds  credentials.TransportCredentials
	logger *zap.Logger
}

// NewDialer loads the identity, signing key and TLS root from cfg.
func NewDialer(cfg Config, logger *zap.Logger) (*Dialer, error) {
	if cfg.PeerEndpoint == "" {
		return nil, errors.New("peer endpoint is required")
	}
	if cfg.MSPID == "" {
		return nil, errors.New("msp id is required")
	}

	certPEM, err := readPEM(cfg.CertPath)
	if err != nil {
		return nil, fmt.Errorf("read client certificate: %w", err)
	}
	cert, err := identity.CertificateFromPEM(certPEM)
	if err != nil {
		return nil, fmt.Errorf("parse client certificate: %w", err)
	}
	id, err := identity.NewX509Identity(cfg.MSPID, cert)
	if err != nil {
		return nil, fmt.Errorf("build client identity: %w", err)
	}

	keyPEM, err := readPEM(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	privateKey, err := identity.PrivateKeyFromPEM(keyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	sign, err := identity.NewPrivateKeySign(privateKey)
	if err != nil {
		return nil, fmt.Errorf("build signer: %w", err)
	}

	tlsPEM, err := readPEM(cfg.TLSCertPath)
	if err != nil {
		return nil, fmt.Errorf("read tls certificate: %w", err)
	}
	tlsCert, err := identity.CertificateFromPEM(tlsPEM)
	if err != nil {
		return nil, fmt.Errorf("parse tls certificate: %w", err)
	}
	roots := x509.NewCertPool()
	roots.AddCert(tlsCert)

	grpcPrometheus.EnableClientHandlingTimeHistogram()

	return &Dialer{
		cfg:    cfg,
		id:     id,
		sign:   sign,
		creds:  credentials.NewClientTLSFromCert(roots, cfg.GatewayPeer),
		logger: logger.Named("fabric"),
	}, nil
}

// Dial opens a connection and waits until the peer is reachable or ctx ends.
func (d *Dialer) Dial(ctx context.Context, key ledger.Key) (ledger.Conn, error) {
	conn, err := grpc.NewClient(d.cfg.PeerEndpoint,
		grpc.WithTransportCredentials(d.creds),
		grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(
			grpcPrometheus.UnaryClientInterceptor,
			grpcZap.UnaryClientInterceptor(d.logger),
		)),
		grpc.WithStreamInterceptor(grpcMiddleware.ChainStreamClient(
			grpcPrometheus.StreamClientInterceptor,
			grpcZap.StreamClientInterceptor(d.logger),
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create grpc client: %w", model.ErrConnectivity, err)
	}

	if err := waitReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	options := []client.ConnectOption{
		client.WithSign(d.sign),
		client.WithClientConnection(conn),
	}
	if t := d.cfg.InvokeTimeout; t > 0 {
		options = append(options,
			client.WithEvaluateTimeout(t),
			client.WithEndorseTimeout(t),
			client.WithSubmitTimeout(t),
			client.WithCommitStatusTimeout(t),
		)
	}
	gw, err := client.Connect(d.id, options...)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: connect gateway: %w", model.ErrConnectivity, err)
	}

	network := gw.GetNetwork(key.Channel)
	return &Conn{
		grpcConn: conn,
		gateway:  gw,
		network:  network,
		contract: network.GetContract(key.Chaincode),
		logger:   d.logger.With(zap.Stringer("key", key)),
	}, nil
}

func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if state == connectivity.Shutdown {
			return fmt.Errorf("%w: connection shut down", model.ErrConnectivity)
		}
		if !conn.WaitForStateChange(ctx, state) {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: peer not ready (last state %s)", model.ErrConnectivity, state)
			}
			return ctx.Err()
		}
	}
}

// readPEM reads path, or the first file inside path when it is a directory
// (the layout of an MSP keystore).
func readPEM(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return os.ReadFile(filepath.Clean(path))
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			return os.ReadFile(filepath.Join(path, entry.Name()))
		}
	}
	return nil, fmt.Errorf("no files in %s", path)
}
