package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
	"github.com/dmitrijs2005/gophmatch/internal/server/auth"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/dmitrijs2005/gophmatch/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.TokenPairResponse, error) {
	user, pair, err := s.auth.Register(ctx, services.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		Skills:       req.Skills,
		Availability: req.Availability,
		DeviceID:     req.DeviceId,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPairResponse(user.ID, pair), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPairResponse, error) {
	user, pair, err := s.auth.Login(ctx, req.Email, req.Password, req.DeviceId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPairResponse(user.ID, pair), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenPairResponse, error) {
	pair, err := s.auth.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPairResponse("", pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	if err := s.auth.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) RevokeSession(ctx context.Context, req *pb.RevokeSessionRequest) (*pb.RevokeSessionResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.RevokeOwned(ctx, id.UserID, req.SessionId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RevokeSessionResponse{}, nil
}

func (s *GRPCServer) Like(ctx context.Context, req *pb.LikeRequest) (*pb.LikeResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.matches.Like(ctx, id.UserID, req.TargetId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.LikeResponse{Outcome: res.Outcome.String()}
	if res.Match != nil {
		resp.Match = toMatch(id.UserID, res.Match)
	}
	return resp, nil
}

func (s *GRPCServer) ListMatches(ctx context.Context, _ *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.matches.ListMatches(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListMatchesResponse{Matches: make([]*pb.Match, 0, len(list))}
	for _, m := range list {
		resp.Matches = append(resp.Matches, toMatch(id.UserID, m))
	}
	return resp, nil
}

func (s *GRPCServer) ListLikes(ctx context.Context, _ *pb.ListLikesRequest) (*pb.ListLikesResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.matches.ListLikes(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListLikesResponse{Likes: make([]*pb.Like, 0, len(list))}
	for _, l := range list {
		resp.Likes = append(resp.Likes, &pb.Like{LikeeId: l.LikeeID, CreatedAt: timestamppb.New(l.CreatedAt)})
	}
	return resp, nil
}

func (s *GRPCServer) AvatarUploadURL(ctx context.Context, _ *pb.AvatarUploadURLRequest) (*pb.AvatarUploadURLResponse, error) {
	id, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.avatars.AvatarUploadURL(ctx, id.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AvatarUploadURLResponse{Key: u.Key, Url: u.URL, ExpiresAt: timestamppb.New(u.ExpiresAt)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// --- helpers below ---

func identity(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func tokenPairResponse(userID string, p *services.TokenPair) *pb.TokenPairResponse {
	return &pb.TokenPairResponse{
		UserId:           userID,
		SessionId:        p.SessionID,
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  timestamppb.New(p.AccessExpiresAt),
		RefreshExpiresAt: timestamppb.New(p.RefreshExpiresAt),
	}
}

func toMatch(viewer string, m *models.Match) *pb.Match {
	other, _ := m.OtherUser(viewer)
	return &pb.Match{Id: m.ID, OtherUserId: other, CreatedAt: timestamppb.New(m.CreatedAt)}
}

// toStatus maps service errors to gRPC status codes. Only sentinel texts
// reach the client; wrapped causes are logged.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidLikeTarget):
		return status.Error(codes.InvalidArgument, common.ErrInvalidLikeTarget.Error())
	case errors.Is(err, common.ErrUnknownUser):
		return status.Error(codes.NotFound, common.ErrUnknownUser.Error())
	case errors.Is(err, common.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, common.ErrEmailTaken.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrExpiredSession),
		errors.Is(err, common.ErrUnknownSession),
		errors.Is(err, common.ErrRevokedSession),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, sessionMessage(err))
	case errors.Is(err, common.ErrStorageUnavailable):
		s.logger.Warn(ctx, "storage unavailable", "error", err)
		return status.Error(codes.Unavailable, common.ErrStorageUnavailable.Error())
	default:
		s.logger.Error(ctx, "internal error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func sessionMessage(err error) string {
	for _, e := range []error{
		common.ErrExpiredSession,
		common.ErrUnknownSession,
		common.ErrRevokedSession,
		common.ErrTokenExpired,
	} {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return common.ErrInvalidToken.Error()
}
