package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeAPI struct {
	lastRegister *pb.RegisterRequest
	lastLogin    *pb.LoginRequest
	lastRefresh  *pb.RefreshRequest
	lastLogout   *pb.LogoutRequest
	lastLike     *pb.LikeRequest

	pairResp   *pb.TokenPairResponse
	pairErr    error
	refreshErr error
	likeResp   *pb.LikeResponse
	err        error
}

var _ pb.MatchServiceClient = (*fakeAPI)(nil)

func (f *fakeAPI) Register(ctx context.Context, in *pb.RegisterRequest, _ ...grpc.CallOption) (*pb.TokenPairResponse, error) {
	f.lastRegister = in
	return f.pairResp, f.pairErr
}

func (f *fakeAPI) Login(ctx context.Context, in *pb.LoginRequest, _ ...grpc.CallOption) (*pb.TokenPairResponse, error) {
	f.lastLogin = in
	return f.pairResp, f.pairErr
}

func (f *fakeAPI) Refresh(ctx context.Context, in *pb.RefreshRequest, _ ...grpc.CallOption) (*pb.TokenPairResponse, error) {
	f.lastRefresh = in
	return f.pairResp, f.refreshErr
}

func (f *fakeAPI) Logout(ctx context.Context, in *pb.LogoutRequest, _ ...grpc.CallOption) (*pb.LogoutResponse, error) {
	f.lastLogout = in
	return &pb.LogoutResponse{}, f.err
}

func (f *fakeAPI) RevokeSession(ctx context.Context, in *pb.RevokeSessionRequest, _ ...grpc.CallOption) (*pb.RevokeSessionResponse, error) {
	return &pb.RevokeSessionResponse{}, f.err
}

func (f *fakeAPI) Like(ctx context.Context, in *pb.LikeRequest, _ ...grpc.CallOption) (*pb.LikeResponse, error) {
	f.lastLike = in
	return f.likeResp, f.err
}

func (f *fakeAPI) ListMatches(ctx context.Context, _ *pb.ListMatchesRequest, _ ...grpc.CallOption) (*pb.ListMatchesResponse, error) {
	return &pb.ListMatchesResponse{Matches: []*pb.Match{{Id: "m1", OtherUserId: "u2"}}}, f.err
}

func (f *fakeAPI) ListLikes(ctx context.Context, _ *pb.ListLikesRequest, _ ...grpc.CallOption) (*pb.ListLikesResponse, error) {
	return &pb.ListLikesResponse{Likes: []*pb.Like{{LikeeId: "u2"}}}, f.err
}

func (f *fakeAPI) AvatarUploadURL(ctx context.Context, _ *pb.AvatarUploadURLRequest, _ ...grpc.CallOption) (*pb.AvatarUploadURLResponse, error) {
	return &pb.AvatarUploadURLResponse{Key: "avatars/u1/x", Url: "http://s3/x"}, f.err
}

func (f *fakeAPI) Ping(ctx context.Context, _ *pb.PingRequest, _ ...grpc.CallOption) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, f.err
}

func newTestClient(api *fakeAPI) *GRPCClient {
	return &GRPCClient{api: api, deviceID: "laptop"}
}

func loggedIn(api *fakeAPI) *GRPCClient {
	c := newTestClient(api)
	c.session = Session{UserID: "u1", SessionID: "s1", AccessToken: "at1", RefreshToken: "rt1"}
	return c
}

func TestLogin_StoresSession(t *testing.T) {
	api := &fakeAPI{pairResp: &pb.TokenPairResponse{UserId: "u1", SessionId: "s1", AccessToken: "at", RefreshToken: "rt"}}
	c := newTestClient(api)

	require.NoError(t, c.Login(context.Background(), "a@x.io", []byte("password")))
	assert.Equal(t, "laptop", api.lastLogin.DeviceId)
	assert.Equal(t, Session{UserID: "u1", SessionID: "s1", AccessToken: "at", RefreshToken: "rt"}, c.Session())
	assert.True(t, c.LoggedIn())
}

func TestLogin_Unauthenticated(t *testing.T) {
	api := &fakeAPI{pairErr: status.Error(codes.Unauthenticated, "unauthorized")}
	c := newTestClient(api)

	err := c.Login(context.Background(), "a@x.io", []byte("nope"))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, c.LoggedIn())
}

func TestRegister_Unavailable(t *testing.T) {
	api := &fakeAPI{pairErr: status.Error(codes.Unavailable, "storage unavailable")}
	c := newTestClient(api)

	err := c.Register(context.Background(), "a@x.io", []byte("password"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "a@x.io", api.lastRegister.Email)
}

func TestRefresh_KeepsUserID(t *testing.T) {
	api := &fakeAPI{pairResp: &pb.TokenPairResponse{SessionId: "s1", AccessToken: "at2", RefreshToken: "rt2"}}
	c := loggedIn(api)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, "rt1", api.lastRefresh.RefreshToken)
	assert.Equal(t, "u1", c.Session().UserID)
	assert.Equal(t, "rt2", c.Session().RefreshToken)
}

func TestRequiresLogin(t *testing.T) {
	c := newTestClient(&fakeAPI{})
	ctx := context.Background()

	_, err := c.Like(ctx, "u2")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.ListMatches(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.ListLikes(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.AvatarUploadURL(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, c.Refresh(ctx), ErrNotLoggedIn)
	assert.NoError(t, c.Logout(ctx))
}

func TestLikeAndLists(t *testing.T) {
	api := &fakeAPI{likeResp: &pb.LikeResponse{Outcome: "new_match", Match: &pb.Match{Id: "m1"}}}
	c := loggedIn(api)
	ctx := context.Background()

	res, err := c.Like(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "new_match", res.Outcome)
	assert.Equal(t, "u2", api.lastLike.TargetId)

	ms, err := c.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, ms, 1)

	ls, err := c.ListLikes(ctx)
	require.NoError(t, err)
	assert.Len(t, ls, 1)

	u, err := c.AvatarUploadURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "avatars/u1/x", u.Key)

	assert.NoError(t, c.Ping(ctx))
}

func TestLike_ErrorMessagePassesThrough(t *testing.T) {
	api := &fakeAPI{err: status.Error(codes.InvalidArgument, "invalid like target")}
	c := loggedIn(api)

	_, err := c.Like(context.Background(), "u1")
	assert.EqualError(t, err, "invalid like target")
}

func TestLogout_ClearsSession(t *testing.T) {
	api := &fakeAPI{err: status.Error(codes.Unavailable, "down")}
	c := loggedIn(api)

	err := c.Logout(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "rt1", api.lastLogout.RefreshToken)
	assert.False(t, c.LoggedIn())
}

func TestAccessTokenInterceptor(t *testing.T) {
	t.Run("attaches bearer token", func(t *testing.T) {
		c := loggedIn(&fakeAPI{})
		var got []string
		invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			md, _ := metadata.FromOutgoingContext(ctx)
			got = md.Get(common.AuthorizationHeaderName)
			return nil
		}
		require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.MatchService_Like_FullMethodName, nil, nil, nil, invoker))
		assert.Equal(t, []string{"Bearer at1"}, got)
	})

	t.Run("refreshes once on expired token", func(t *testing.T) {
		api := &fakeAPI{pairResp: &pb.TokenPairResponse{SessionId: "s1", AccessToken: "at2", RefreshToken: "rt2"}}
		c := loggedIn(api)

		var seen []string
		invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			md, _ := metadata.FromOutgoingContext(ctx)
			tok := md.Get(common.AuthorizationHeaderName)[0]
			seen = append(seen, tok)
			if tok == "Bearer at1" {
				return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil
		}
		require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.MatchService_ListMatches_FullMethodName, nil, nil, nil, invoker))
		assert.Equal(t, []string{"Bearer at1", "Bearer at2"}, seen)
		assert.Equal(t, "rt1", api.lastRefresh.RefreshToken)
		assert.Equal(t, "rt2", c.Session().RefreshToken)
	})

	t.Run("other auth errors are returned", func(t *testing.T) {
		api := &fakeAPI{}
		c := loggedIn(api)
		invoker := func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return status.Error(codes.Unauthenticated, "invalid token")
		}
		err := c.accessTokenInterceptor(context.Background(), pb.MatchService_Like_FullMethodName, nil, nil, nil, invoker)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Nil(t, api.lastRefresh)
	})

	t.Run("refresh failure is returned", func(t *testing.T) {
		api := &fakeAPI{refreshErr: errors.New("revoked")}
		c := loggedIn(api)
		invoker := func(context.Context, string, any, any, *grpc.ClientConn, ...grpc.CallOption) error {
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		err := c.accessTokenInterceptor(context.Background(), pb.MatchService_Like_FullMethodName, nil, nil, nil, invoker)
		assert.EqualError(t, err, "revoked")
	})

	t.Run("refresh call itself is not intercepted", func(t *testing.T) {
		c := loggedIn(&fakeAPI{})
		var md metadata.MD
		invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			md, _ = metadata.FromOutgoingContext(ctx)
			return nil
		}
		require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.MatchService_Refresh_FullMethodName, nil, nil, nil, invoker))
		assert.Empty(t, md.Get(common.AuthorizationHeaderName))
	})
}
