package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskdesk/internal/api"
	"github.com/sandeepkv93/taskdesk/internal/config"
	"github.com/sandeepkv93/taskdesk/internal/logger"
	"github.com/sandeepkv93/taskdesk/internal/service"
	"github.com/sandeepkv93/taskdesk/internal/state"
	"github.com/sandeepkv93/taskdesk/internal/storage"
	"github.com/sandeepkv93/taskdesk/internal/update"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "taskdesk",
		Short:        "taskdesk - terminal client for a REST task backend",
		Version:      Version,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(doneCmd())
	rootCmd.AddCommand(undoCmd())
	rootCmd.AddCommand(rmCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds everything one invocation needs.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *storage.SQLiteStore
	session *state.Session
	items   *state.Tasks
	auth    *service.Auth
	tasks   *service.Tasks
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	session := state.NewSession()
	items := state.NewTasks()

	client, err := api.New(cfg.API.URL, log,
		api.WithTimeout(cfg.API.Timeout),
		api.WithIdentity(session),
	)
	if err != nil {
		_ = store.Close()
		_ = log.Close()
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		session: session,
		items:   items,
		auth:    service.NewAuth(client, session, store, log),
		tasks:   service.NewTasks(client, items, session, log),
	}
	a.auth.Restore(ctx)

	log.Info("taskdesk started",
		"version", Version,
		"api_url", cfg.API.URL,
		"db_path", cfg.DBPath)
	return a, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close local store",
			"error", err.Error())
	}
	_ = a.log.Close()
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	program := tea.NewProgram(update.NewModel(update.Deps{
		Auth:    a.auth,
		Tasks:   a.tasks,
		Session: a.session,
		Items:   a.items,
		Logger:  a.log,
	}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("taskdesk failed: %w", err)
	}
	return nil
}
