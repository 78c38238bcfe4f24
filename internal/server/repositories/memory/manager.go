package memory

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/likes"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/matches"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/users"
)

// Manager serves every repository from one Store. The DBTX argument is
// ignored, so writes made inside dbx.WithTx are not rolled back.
type Manager struct {
	store *Store
}

var _ repomanager.RepositoryManager = (*Manager)(nil)

func NewManager(store *Store) *Manager {
	if store == nil {
		store = NewStore()
	}
	return &Manager{store: store}
}

func (m *Manager) Store() *Store { return m.store }

func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *Manager) Users(dbx.DBTX) users.Repository { return &UserRepository{m.store} }

func (m *Manager) Sessions(dbx.DBTX) sessions.Repository { return &SessionRepository{m.store} }

func (m *Manager) Likes(dbx.DBTX) likes.Repository { return &LikeRepository{m.store} }

func (m *Manager) Matches(dbx.DBTX) matches.Repository { return &MatchRepository{m.store} }
