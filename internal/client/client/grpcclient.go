// Package client talks to the gophmatch server and keeps the caller's
// access/refresh token pair, refreshing the access token transparently when
// the server reports it expired.
package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Session is what the client remembers about the logged-in user.
type Session struct {
	UserID       string
	SessionID    string
	AccessToken  string
	RefreshToken string
}

type GRPCClient struct {
	endpointURL string
	deviceID    string
	conn        *grpc.ClientConn
	api         pb.MatchServiceClient

	mu      sync.Mutex
	session Session
}

// NewGRPCClient prepares a lazily connecting client for endpointURL.
func NewGRPCClient(endpointURL, deviceID string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, deviceID: deviceID}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("grpc client error: %w", err)
	}

	c.conn = conn
	c.api = pb.NewMatchServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Session returns a copy of the current session.
func (c *GRPCClient) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *GRPCClient) LoggedIn() bool {
	return c.Session().RefreshToken != ""
}

func (c *GRPCClient) setSession(userID string, r *pb.TokenPairResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if userID == "" {
		userID = c.session.UserID
	}
	c.session = Session{
		UserID:       userID,
		SessionID:    r.SessionId,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
	}
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	if token != "" {
		md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token and, when the server says
// it expired, rotates the pair once and retries the call.
func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if method == pb.MatchService_Refresh_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	sess := c.Session()
	err := invoker(withAccessToken(ctx, sess.AccessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if sess.RefreshToken == "" {
		return err
	}

	resp, rerr := c.api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: sess.RefreshToken})
	if rerr != nil {
		return rerr
	}
	c.setSession("", resp)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// mapError turns transport failures into the client's error set. Other
// statuses are returned with the server's message.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	default:
		return fmt.Errorf("%s", st.Message())
	}
}

func (c *GRPCClient) Register(ctx context.Context, email string, password []byte) error {
	resp, err := c.api.Register(ctx, &pb.RegisterRequest{
		Email:    email,
		Password: string(password),
		DeviceId: c.deviceID,
	})
	if err != nil {
		return mapError(err)
	}
	c.setSession(resp.UserId, resp)
	return nil
}

func (c *GRPCClient) Login(ctx context.Context, email string, password []byte) error {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{
		Email:    email,
		Password: string(password),
		DeviceId: c.deviceID,
	})
	if err != nil {
		return mapError(err)
	}
	c.setSession(resp.UserId, resp)
	return nil
}

// Refresh rotates the token pair explicitly.
func (c *GRPCClient) Refresh(ctx context.Context) error {
	sess := c.Session()
	if sess.RefreshToken == "" {
		return ErrNotLoggedIn
	}
	resp, err := c.api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: sess.RefreshToken})
	if err != nil {
		return mapError(err)
	}
	c.setSession("", resp)
	return nil
}

// Logout revokes the server session and forgets the local one, even if the
// server could not be reached.
func (c *GRPCClient) Logout(ctx context.Context) error {
	sess := c.Session()

	c.mu.Lock()
	c.session = Session{}
	c.mu.Unlock()

	if sess.RefreshToken == "" {
		return nil
	}
	_, err := c.api.Logout(ctx, &pb.LogoutRequest{RefreshToken: sess.RefreshToken})
	return mapError(err)
}

func (c *GRPCClient) Like(ctx context.Context, targetID string) (*pb.LikeResponse, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.api.Like(ctx, &pb.LikeRequest{TargetId: targetID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) ListMatches(ctx context.Context) ([]*pb.Match, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.api.ListMatches(ctx, &pb.ListMatchesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Matches, nil
}

func (c *GRPCClient) ListLikes(ctx context.Context) ([]*pb.Like, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.api.ListLikes(ctx, &pb.ListLikesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Likes, nil
}

func (c *GRPCClient) AvatarUploadURL(ctx context.Context) (*pb.AvatarUploadURLResponse, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.api.AvatarUploadURL(ctx, &pb.AvatarUploadURLRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.api.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}
