package main

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shelteraid/shelteraid/core"
	"github.com/shelteraid/shelteraid/sqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLandingPageToLogin(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	var site = &core.Site{
		UserDB: sqldb.NewUserDB(db),
		Log:    zap.NewNop(),
	}
	site.Init(nil, "")

	srv := httptest.NewServer(newMux(site, &sync.WaitGroup{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `value="login"`)

	// the client follows the redirect to the login form
	resp, err = http.PostForm(srv.URL+"/", url.Values{"action": {"login"}})
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, string(body), `name="password"`)
}

func TestRunExport(t *testing.T) {
	t.Setenv("SHELTERAID_CONFIG", filepath.Join(t.TempDir(), "missing.ini"))
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, run([]string{"export", "-out", dir}))

	_, err := os.Stat(filepath.Join(dir, "index.html"))
	assert.NoError(t, err)
}

func TestRunBadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(filename, []byte("[unclosed\n"), 0644))
	t.Setenv("SHELTERAID_CONFIG", filename)

	assert.Error(t, run([]string{"export"}))
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	assert.NoError(t, err)
	_, err = newLogger("loud")
	assert.Error(t, err)
}
