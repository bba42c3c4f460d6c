package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fitness-planner/internal/adapter"
	"fitness-planner/internal/adapter/localstore"
	"fitness-planner/internal/adapter/remote"
	"fitness-planner/internal/config"
	"fitness-planner/internal/session"
	"fitness-planner/internal/state"
)

var (
	backendName string
	dbPath      string
	serverURL   string
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "planner manages a weekly workout schedule from your terminal",
	Long: "planner is a headless client for the fitness planner: users, weekly\n" +
		"schedules and attached photos/videos, persisted either in a local\n" +
		"store or through the API server.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "local", "Persistence backend: local or remote")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "Path to the local store (backend=local)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "API server base URL (backend=remote)")

	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(mediaCmd)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "planner.db"
	}
	return filepath.Join(home, ".fitness-planner", "planner.db")
}

func sessionTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fitness-planner-session"
	}
	return filepath.Join(home, ".fitness-planner", "session")
}

// requireSession checks that a valid session token exists from a previous
// `planner unlock`. The gate is a lock on the tool, not a security boundary.
func requireSession() error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	raw, err := os.ReadFile(sessionTokenPath())
	if err != nil {
		return errors.New("locked: run `planner unlock` first")
	}
	issuer := session.NewTokenIssuer(cfg.Session.TokenSecret, cfg.Session.TokenTTL)
	if !issuer.Check(string(raw)) {
		return errors.New("session expired: run `planner unlock` again")
	}
	return nil
}

// withStore opens the selected backend, loads the state store, and runs fn.
func withStore(fn func(ctx context.Context, st *state.Store) error) error {
	if err := requireSession(); err != nil {
		return err
	}

	ctx := context.Background()

	var backend adapter.Store
	switch backendName {
	case "local":
		local, err := localstore.Open(dbPath)
		if err != nil {
			return err
		}
		defer local.Close()
		backend = local
	case "remote":
		backend = remote.New(serverURL)
	default:
		return fmt.Errorf("unknown backend %q (want local or remote)", backendName)
	}

	st := state.New(backend)
	if err := st.Load(ctx); err != nil {
		return fmt.Errorf("loading state: %w", err)
	}
	return fn(ctx, st)
}
