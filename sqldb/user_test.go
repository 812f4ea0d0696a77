package sqldb

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1) // every connection would get its own in-memory database
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertAndGet(t *testing.T) {
	users := NewUserDB(openTestDB(t))

	u, err := users.InsertUser("  Alice@Example.org ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.org", u.Name())

	byID, err := users.GetUser(u.ID())
	require.NoError(t, err)
	assert.Equal(t, u.Name(), byID.Name())

	byName, err := users.GetUserByName("ALICE@example.org")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), byName.ID())

	_, err = users.GetUser(u.ID() + 1)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsertDuplicate(t *testing.T) {
	users := NewUserDB(openTestDB(t))

	_, err := users.InsertUser("bob@example.org")
	require.NoError(t, err)
	_, err = users.InsertUser("Bob@example.org")
	assert.Error(t, err)

	_, err = users.InsertUser("   ")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	users := NewUserDB(openTestDB(t))

	u, err := users.InsertUser("carol@example.org")
	require.NoError(t, err)

	// no password set yet
	_, err = users.LoginUser("carol@example.org", "")
	assert.ErrorIs(t, err, ErrAuth)

	require.NoError(t, users.SetPassword(u, "secret"))

	got, err := users.LoginUser(" Carol@Example.org", "secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
	assert.Equal(t, "carol@example.org", got.Name())

	_, err = users.LoginUser("carol@example.org", "wrong")
	assert.ErrorIs(t, err, ErrAuth)

	_, err = users.LoginUser("nobody@example.org", "secret")
	assert.ErrorIs(t, err, ErrAuth)
}

func TestSetPasswordRejects(t *testing.T) {
	users := NewUserDB(openTestDB(t))

	u, err := users.InsertUser("dave@example.org")
	require.NoError(t, err)

	assert.Error(t, users.SetPassword(u, ""))
	assert.Error(t, users.SetPassword(&user{}, "secret"))
}

func TestDelete(t *testing.T) {
	users := NewUserDB(openTestDB(t))

	u, err := users.InsertUser("eve@example.org")
	require.NoError(t, err)
	require.NoError(t, users.SetPassword(u, "secret"))
	require.NoError(t, users.Delete(u))

	_, err = users.LoginUser("eve@example.org", "secret")
	assert.ErrorIs(t, err, ErrAuth)
}
