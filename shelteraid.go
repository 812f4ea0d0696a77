package main

import (
	"bytes"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shelteraid/shelteraid/backend"
	"github.com/shelteraid/shelteraid/core"
	"github.com/shelteraid/shelteraid/export"
	"github.com/shelteraid/shelteraid/frontend"
	"github.com/shelteraid/shelteraid/page"
	"github.com/shelteraid/shelteraid/sqldb"
	"github.com/shelteraid/shelteraid/sqldb/mysql"
	"github.com/shelteraid/shelteraid/sqldb/sqlite3"
	"github.com/shelteraid/shelteraid/util"
	"github.com/xo/dburl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const defaultDB = "sqlite3:shelteraid.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {

	var configFile = os.Getenv("SHELTERAID_CONFIG")
	if configFile == "" {
		configFile = "config/shelteraid.ini"
	}

	defaults, err := util.Ini(configFile)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	var withDefault = func(key, value string) string {
		if v, ok := defaults[key]; ok && v != "" {
			return v
		}
		return value
	}

	var dbArg string       // is in several FlagSets
	var logLevelArg string // too

	// serve FlagSet

	var serveFlags = flag.NewFlagSet("shelteraid", flag.ContinueOnError)
	serveFlags.StringVar(&dbArg, "db", withDefault("db", defaultDB), "sql database url, see github.com/xo/dburl")
	serveFlags.StringVar(&logLevelArg, "log-level", withDefault("log-level", "info"), "log `level` (debug, info, warn, error)")
	var listenAddr = serveFlags.String("listen", withDefault("listen", "127.0.0.1:8080"), "serve HTTP content at this `ip:port`")

	// init FlagSet

	var initFlags = flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.StringVar(&dbArg, "db", withDefault("db", defaultDB), "sql database url, see github.com/xo/dburl")
	initFlags.StringVar(&logLevelArg, "log-level", withDefault("log-level", "info"), "log `level` (debug, info, warn, error)")
	var username = initFlags.String("user", "", "creates a user with this `name` and asks for a password")

	// export FlagSet

	var exportFlags = flag.NewFlagSet("export", flag.ContinueOnError)
	var exportDir = exportFlags.String("out", "public", "write the landing page into this `directory`")

	var command = "serve"
	if len(args) > 0 && (args[0] == "init" || args[0] == "export") {
		command, args = args[0], args[1:]
	}

	switch command {
	case "export":
		if err := exportFlags.Parse(args); err != nil {
			return err
		}
		return export.Export(*exportDir, page.NewHome())
	case "init":
		if err := initFlags.Parse(args); err != nil {
			return err
		}
	default:
		if err := serveFlags.Parse(args); err != nil {
			return err
		}
	}

	// logger

	logger, err := newLogger(logLevelArg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// database

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		return fmt.Errorf("could not parse database url: %w", err)
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		return fmt.Errorf("could not open sql database: %w", err)
	}

	defer func() {
		logger.Info("closing database")
		sqlDB.Close()
	}()

	if err = sqlDB.Ping(); err != nil {
		return fmt.Errorf("could not ping sql database: %w", err)
	}

	logger.Info("using database", zap.String("driver", dbURL.Driver), zap.String("url", dbURL.Redacted()))

	// assemble stuff

	var sessionStore scs.Store
	switch dbURL.Driver {
	case "mysql":
		sessionStore, err = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		sessionStore, err = sqlite3.NewSessionStore(sqlDB)
	default:
		err = fmt.Errorf("unknown database backend: %s", dbURL.Driver)
	}
	if err != nil {
		return err
	}

	var site = &core.Site{
		UserDB: sqldb.NewUserDB(sqlDB),
		Log:    logger,
	}
	site.Init(sessionStore, "")

	if command == "init" {
		if *username == "" {
			return errors.New("init: no -user given")
		}
		return insertUser(site, *username)
	}

	return listen(site, *listenAddr)
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func insertUser(site *core.Site, name string) error {

	fmt.Printf("password for user %s: ", name)
	pass1, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}

	fmt.Printf("repeat password: ")
	pass2, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}

	if !bytes.Equal(pass1, pass2) {
		return errors.New("passwords don't match")
	}

	user, err := site.InsertUser(name)
	if err != nil {
		return fmt.Errorf("error creating user %s: %w", name, err)
	}

	if err := site.SetPassword(user, string(pass1)); err != nil {
		return fmt.Errorf("error setting password: %w", err)
	}

	site.Log.Info("created user", zap.String("user", user.Name()))
	return nil
}

// newMux dispatches the backend paths to the backend router and everything else to the landing page.
func newMux(site *core.Site, waiting *sync.WaitGroup) http.Handler {

	var mux = http.NewServeMux()

	var backendRouter = backend.NewBackendRouter(site)
	for _, path := range backend.Paths {
		mux.Handle(path, backendRouter)
	}
	mux.Handle("/", frontend.NewRouter(site, page.NewHome(), waiting))

	return site.SessionManager.LoadAndSave(mux)
}

func listen(site *core.Site, addr string) error {

	// golang mux recovers from panics, so the program won't crash

	var waitingControllers sync.WaitGroup

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	site.Log.Info("listening", zap.String("addr", addr))

	httpSrv := &http.Server{
		Handler:      newMux(site, &waitingControllers),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				site.Log.Error("error listening", zap.Error(err))
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	site.Log.Info("shutting down")
	httpSrv.Close()

	waitingControllers.Wait()
	return nil
}
