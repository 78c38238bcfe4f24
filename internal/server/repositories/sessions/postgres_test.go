package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophmatch/internal/common"
	"github.com/dmitrijs2005/gophmatch/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	sid   = "6f1c2a9e-3b7d-4c1e-9a51-2f8d0b7c4e11"
	ghost = "0b3e8f52-7c1a-4d6b-8e2f-5a9c1d3b7f60"
)

var (
	insertQ = `(?s)^INSERT\s+INTO\s+sessions\s*\(id,\s*user_id,\s*device_id,\s*fingerprint,\s*issued_at,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
	byFPQ   = `(?s)^SELECT\s+id,\s*user_id,.*FROM\s+sessions\s+WHERE\s+fingerprint\s*=\s*\$1\s*$`
	byIDQ   = `(?s)^SELECT\s+id,\s*user_id,.*FROM\s+sessions\s+WHERE\s+id\s*=\s*\$1\s*$`
	rotateQ = `(?s)^UPDATE\s+sessions\s+SET\s+fingerprint\s*=\s*\$3,\s*expires_at\s*=\s*\$4,\s*rotated_at\s*=\s*\$5\s+WHERE\s+id\s*=\s*\$1\s+AND\s+fingerprint\s*=\s*\$2\s+AND\s+revoked_at\s+IS\s+NULL\s*$`
	revokeQ = `(?s)^UPDATE\s+sessions\s+SET\s+revoked_at\s*=\s*COALESCE\(revoked_at,\s*\$2\)\s+WHERE\s+id\s*=\s*\$1\s*$`
	cols    = []string{"id", "user_id", "device_id", "fingerprint", "issued_at", "expires_at", "rotated_at", "revoked_at"}
)

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	s := &models.Session{ID: "s1", UserID: "u1", DeviceID: "phone", Fingerprint: "fp", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}

	mock.ExpectExec(insertQ).
		WithArgs("s1", "u1", "phone", "fp", now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), s))

	mock.ExpectExec(insertQ).WillReturnError(errors.New("db down"))
	assert.ErrorContains(t, repo.Create(context.Background(), s), "db error: db down")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByFingerprint(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(byFPQ).
		WithArgs("fp").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("s1", "u1", "phone", "fp", now, now.Add(time.Hour), nil, now))

	got, err := repo.FindByFingerprint(context.Background(), "fp")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "phone", got.DeviceID)
	assert.Nil(t, got.RotatedAt)
	require.NotNil(t, got.RevokedAt)
	assert.True(t, got.Revoked())
}

func TestFindByFingerprint_NotFoundAndError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(byFPQ).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, err := repo.FindByFingerprint(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(byFPQ).WithArgs("fp").WillReturnError(errors.New("db err"))
	_, err = repo.FindByFingerprint(context.Background(), "fp")
	assert.ErrorContains(t, err, "db error: db err")
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(byIDQ).
		WithArgs(sid).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(sid, "u1", "", "fp", now, now.Add(time.Hour), now, nil))

	got, err := repo.Get(context.Background(), sid)
	require.NoError(t, err)
	require.NotNil(t, got.RotatedAt)
	assert.False(t, got.Revoked())
}

func TestRotate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	exp := now.Add(time.Hour)

	mock.ExpectExec(rotateQ).
		WithArgs("s1", "old", "new", exp, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	won, err := repo.Rotate(context.Background(), "s1", "old", "new", exp, now)
	require.NoError(t, err)
	assert.True(t, won)

	mock.ExpectExec(rotateQ).
		WithArgs("s1", "old", "newer", exp, now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	won, err = repo.Rotate(context.Background(), "s1", "old", "newer", exp, now)
	require.NoError(t, err)
	assert.False(t, won, "second rotation of the same fingerprint must lose")

	mock.ExpectExec(rotateQ).WillReturnError(errors.New("db err"))
	_, err = repo.Rotate(context.Background(), "s1", "old", "x", exp, now)
	assert.ErrorContains(t, err, "db error")
}

func TestRevoke(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectExec(revokeQ).WithArgs(sid, now).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Revoke(context.Background(), sid, now))

	mock.ExpectExec(revokeQ).WithArgs(ghost, now).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Revoke(context.Background(), ghost, now), common.ErrorNotFound)

	mock.ExpectExec(revokeQ).WithArgs(sid, now).WillReturnError(errors.New("db err"))
	assert.ErrorContains(t, repo.Revoke(context.Background(), sid, now), "db error")
}

func TestRevokeAllForUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	q := `(?s)^UPDATE\s+sessions\s+SET\s+revoked_at\s*=\s*\$2\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+revoked_at\s+IS\s+NULL\s*$`
	mock.ExpectExec(q).WithArgs("u1", now).WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.RevokeAllForUser(context.Background(), "u1", now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestDeleteExpired(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	q := `(?s)^DELETE\s+FROM\s+sessions\s+WHERE\s+expires_at\s*<\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	mock.ExpectExec(q).WithArgs(now).WillReturnError(errors.New("db err"))
	_, err = repo.DeleteExpired(context.Background(), now)
	assert.ErrorContains(t, err, "db error")
}

func TestNonUUIDIDIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = repo.Revoke(context.Background(), "abc", time.Now())
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
