package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/common"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
	"github.com/dmitrijs2005/gophmatch/internal/server/config"
	"github.com/dmitrijs2005/gophmatch/internal/server/credentials"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophmatch/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nil, &fakeAuth{}, &fakeMatches{}, &fakeAvatars{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nil, &fakeAuth{}, &fakeMatches{}, &fakeAvatars{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := srv.Run(ctx)
	require.Error(t, err)
}

// startBufServer serves real services over an in-memory listener.
func startBufServer(t *testing.T, store *memory.Manager) pb.MatchServiceClient {
	t.Helper()

	cfg := &config.Config{
		SecretKey:                    "secret",
		RefreshTokenPepper:           "pepper",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
		StorageTimeout:               time.Second,
		BcryptCost:                   4,
	}
	as := services.NewAuthService(nil, store, nil, cfg)
	ms := services.NewMatchService(nil, store, nil, nil, cfg)
	srv := NewGRPCServer("bufnet", nil, as, ms, &fakeAvatars{})

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
		ms.Wait()
	})
	return pb.NewMatchServiceClient(conn)
}

func seedUser(t *testing.T, store *memory.Manager, email, password string) string {
	t.Helper()
	hash, err := credentials.NewStore(4).Hash(password)
	require.NoError(t, err)
	u, err := store.Users(nil).Create(context.Background(), &models.User{Email: email, PasswordHash: hash, Role: common.DefaultRole})
	require.NoError(t, err)
	return u.ID
}

func bearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AuthorizationHeaderName, common.BearerPrefix+token)
}

func TestEndToEnd_MutualLike(t *testing.T) {
	store := memory.NewManager(nil)
	client := startBufServer(t, store)
	ctx := context.Background()

	annID := seedUser(t, store, "ann@x.io", "ann password")
	bobID := seedUser(t, store, "bob@x.io", "bob password")

	ping, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = client.Like(ctx, &pb.LikeRequest{TargetId: bobID})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ann, err := client.Login(ctx, &pb.LoginRequest{Email: "ann@x.io", Password: "ann password"})
	require.NoError(t, err)
	bob, err := client.Login(ctx, &pb.LoginRequest{Email: "bob@x.io", Password: "bob password"})
	require.NoError(t, err)

	res, err := client.Like(bearer(ctx, ann.AccessToken), &pb.LikeRequest{TargetId: bobID})
	require.NoError(t, err)
	assert.Equal(t, "no_match", res.Outcome)

	res, err = client.Like(bearer(ctx, bob.AccessToken), &pb.LikeRequest{TargetId: annID})
	require.NoError(t, err)
	require.Equal(t, "new_match", res.Outcome)
	require.NotNil(t, res.Match)
	assert.Equal(t, annID, res.Match.OtherUserId)
	matchID := res.Match.Id

	res, err = client.Like(bearer(ctx, bob.AccessToken), &pb.LikeRequest{TargetId: annID})
	require.NoError(t, err)
	assert.Equal(t, "already_matched", res.Outcome)
	assert.Equal(t, matchID, res.Match.Id)

	list, err := client.ListMatches(bearer(ctx, ann.AccessToken), &pb.ListMatchesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Matches, 1)
	assert.Equal(t, bobID, list.Matches[0].OtherUserId)

	_, err = client.Like(bearer(ctx, ann.AccessToken), &pb.LikeRequest{TargetId: annID})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Like(bearer(ctx, ann.AccessToken), &pb.LikeRequest{TargetId: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEndToEnd_SessionLifecycle(t *testing.T) {
	store := memory.NewManager(nil)
	client := startBufServer(t, store)
	ctx := context.Background()
	seedUser(t, store, "ann@x.io", "ann password")

	_, err := client.Login(ctx, &pb.LoginRequest{Email: "ann@x.io", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	v1, err := client.Login(ctx, &pb.LoginRequest{Email: "ann@x.io", Password: "ann password"})
	require.NoError(t, err)

	v2, err := client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: v1.RefreshToken})
	require.NoError(t, err)

	_, err = client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: v1.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "unknown session", status.Convert(err).Message())

	_, err = client.RevokeSession(bearer(ctx, v2.AccessToken), &pb.RevokeSessionRequest{SessionId: v2.SessionId})
	require.NoError(t, err)

	_, err = client.Refresh(ctx, &pb.RefreshRequest{RefreshToken: v2.RefreshToken})
	assert.Equal(t, "session revoked", status.Convert(err).Message())

	_, err = client.Logout(ctx, &pb.LogoutRequest{RefreshToken: "whatever"})
	require.NoError(t, err)
}
