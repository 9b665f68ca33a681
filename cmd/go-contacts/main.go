package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"syscall"

	"github.com/tartampluch/go-contacts/internal/cli"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/store"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	dbPath := flag.String(config.FlagDB, "", config.FlagDescDB)
	lang := flag.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// Structured logs go to a file in the user cache dir, keeping stdout free
	// for the interactive prompt. Debug mode mirrors them to stderr.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, *dbPath, *lang); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads the address book, drives the command loop, and saves on the way
// out regardless of how the loop ended.
func run(ctx context.Context, dbPath, lang string) error {
	path, err := resolveSnapshotPath(dbPath)
	if err != nil {
		return err
	}

	if !slices.Contains(config.SupportedLanguages, lang) {
		lang = config.DefaultLanguage
	}

	// Dependency Injection.
	st := store.NewVCardStore(path)
	gen := &engine.Generator{Clock: engine.RealClock{}}

	b, err := st.Load(ctx)
	if err != nil {
		return err
	}

	app := cli.New(b, st, gen, lang, os.Stdin, os.Stdout)

	runErr := app.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		runErr = nil
	}

	// The shutdown save runs on its own context: the root one may already be
	// cancelled by the signal that ended the loop.
	saveCtx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()
	if err := st.Save(saveCtx, b); err != nil {
		return err
	}

	return runErr
}

// resolveSnapshotPath picks the explicit -db path or falls back to the
// per-user config directory, creating it if needed.
func resolveSnapshotPath(dbPath string) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}

	appDir := filepath.Join(configDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.SnapshotFileName), nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	// 1. Attempt to set up a file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	// 2. Mirror to stderr in debug mode. Stdout stays clean for the prompt.
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
