package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
	"github.com/dmitrijs2005/gophmatch/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods require a valid access token.
var protectedMethods = map[string]struct{}{
	pb.MatchService_RevokeSession_FullMethodName:   {},
	pb.MatchService_Like_FullMethodName:            {},
	pb.MatchService_ListMatches_FullMethodName:     {},
	pb.MatchService_ListLikes_FullMethodName:       {},
	pb.MatchService_AvatarUploadURL_FullMethodName: {},
}

// accessTokenInterceptor authenticates protected methods and puts the
// caller's auth.Identity into the handler context.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	accessToken := tokenFromMetadata(ctx)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.auth.Authenticate(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(auth.WithIdentity(ctx, id), req)
}

// tokenFromMetadata reads "authorization: Bearer <jwt>", falling back to
// "access_token: <jwt>".
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(common.AuthorizationHeaderName) {
		if len(v) > len(common.BearerPrefix) && strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
			return strings.TrimSpace(v[len(common.BearerPrefix):])
		}
	}
	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}
