// Package grpc exposes the match and session services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/logging"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
	"github.com/dmitrijs2005/gophmatch/internal/server/auth"
	"github.com/dmitrijs2005/gophmatch/internal/server/media"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/dmitrijs2005/gophmatch/internal/server/services"
	"google.golang.org/grpc"
)

// AuthService is the part of services.AuthService used by the transport.
type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password, deviceID string) (*models.User, *services.TokenPair, error)
	Refresh(ctx context.Context, raw string) (*services.TokenPair, error)
	Logout(ctx context.Context, raw string) error
	RevokeOwned(ctx context.Context, userID, sessionID string) error
	Authenticate(token string) (auth.Identity, error)
}

// MatchService is the part of services.MatchService used by the transport.
type MatchService interface {
	Like(ctx context.Context, actorID, targetID string) (*models.LikeResult, error)
	ListMatches(ctx context.Context, userID string) ([]*models.Match, error)
	ListLikes(ctx context.Context, userID string) ([]*models.Like, error)
}

type AvatarService interface {
	AvatarUploadURL(ctx context.Context, userID string) (*media.UploadURL, error)
}

type GRPCServer struct {
	pb.UnimplementedMatchServiceServer
	address string
	auth    AuthService
	matches MatchService
	avatars AvatarService
	logger  logging.Logger
}

var _ pb.MatchServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, as AuthService, ms MatchService, av AvatarService) *GRPCServer {
	if l == nil {
		l = logging.Nop()
	}
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		matches: ms,
		avatars: av,
	}
}

// newGRPC builds the grpc.Server with the interceptor chain and the service
// registered.
func (s *GRPCServer) newGRPC() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterMatchServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newGRPC()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	<-stopped
	return nil
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Warn(ctx, "rpc failed", "method", info.FullMethod, "duration", time.Since(start), "error", err)
		return resp, err
	}
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "duration", time.Since(start))
	return resp, nil
}
