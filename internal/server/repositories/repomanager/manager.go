package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophmatch/internal/dbx"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/likes"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/matches"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gophmatch/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same service
// code runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Likes(db dbx.DBTX) likes.Repository
	Matches(db dbx.DBTX) matches.Repository
}
