package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/client/client"
	"github.com/dmitrijs2005/gophmatch/internal/client/config"
	pb "github.com/dmitrijs2005/gophmatch/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// API is the part of client.GRPCClient the REPL drives.
type API interface {
	Register(ctx context.Context, email string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	Like(ctx context.Context, targetID string) (*pb.LikeResponse, error)
	ListMatches(ctx context.Context) ([]*pb.Match, error)
	ListLikes(ctx context.Context) ([]*pb.Like, error)
	AvatarUploadURL(ctx context.Context) (*pb.AvatarUploadURLResponse, error)
	Ping(ctx context.Context) error
	Session() client.Session
	LoggedIn() bool
	Close() error
}

type App struct {
	config *config.Config
	api    API
	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	Mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.DeviceID)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api API, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.api.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}
	a.Root(ctx)
}

// requestContext bounds a single server call by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
