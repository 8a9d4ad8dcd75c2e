// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"stylepins/internal/auth"
	"stylepins/internal/catalog"
	"stylepins/internal/config"
	"stylepins/internal/database"
	"stylepins/internal/persistence"
	"stylepins/internal/storage"
	"stylepins/internal/valkey"
)

// app carries what every command needs. Tests fill store directly and
// skip configuration.
type app struct {
	out      io.Writer
	errOut   io.Writer
	format   string
	username string
	password string

	cfg       *config.Config
	persister *persistence.Adapter
	store     *catalog.Store
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "stylepins",
		Short:        "Browse and administer the StylePins catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := parseFormat(a.format); err != nil {
				return err
			}
			if a.store != nil {
				return nil
			}
			return a.open(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	pf := root.PersistentFlags()
	pf.StringVarP(&a.format, "format", "o", string(formatTable), "output format: table, json or yaml")
	pf.StringVar(&a.username, "username", auth.AdminUsername, "admin login name (or STYLEPINS_ADMIN_USERNAME)")
	pf.StringVar(&a.password, "password", "", "admin password (or STYLEPINS_ADMIN_PASSWORD)")

	root.AddCommand(
		newCategoriesCmd(a),
		newImagesCmd(a),
		newSettingsCmd(a),
		newLoginCmd(a),
		newDashboardCmd(a),
	)
	return root
}

// open loads configuration, installs the logger and hydrates the catalog.
func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg
	slog.SetDefault(newLogger(a.errOut, cfg))

	backend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	slog.Debug("storage backend ready", "backend", cfg.Backend, "key", cfg.RecordKey)

	a.persister = persistence.New(backend, cfg.RecordKey)

	var opts []catalog.Option
	if cfg.HashPasswords {
		opts = append(opts, catalog.WithPasswordHasher(auth.BcryptHasher{}))
	}
	a.store, err = catalog.Open(cmd.Context(), a.persister, opts...)
	if err != nil {
		_ = a.persister.Close()
		return fmt.Errorf("open catalog: %w", err)
	}
	return nil
}

// credentials returns the admin login for cmd. Flags win over the
// environment.
func (a *app) credentials(cmd *cobra.Command) (string, string) {
	username, password := a.username, a.password
	if a.cfg == nil {
		return username, password
	}
	flags := cmd.Flags()
	if !flags.Changed("username") {
		username = a.cfg.AdminUsername
	}
	if !flags.Changed("password") {
		password = a.cfg.AdminPassword
	}
	return username, password
}

// requireAdmin is the PreRunE of every command that changes the catalog or
// shows admin-only figures.
func (a *app) requireAdmin(cmd *cobra.Command, _ []string) error {
	username, password := a.credentials(cmd)
	if !a.store.Authenticate(username, password) {
		slog.Warn("admin authentication failed", "command", cmd.CommandPath(), "username", username)
		return errInvalidCredentials
	}
	return nil
}

func (a *app) close() error {
	if a.persister == nil {
		return nil
	}
	err := a.persister.Close()
	a.persister = nil
	return err
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openBackend connects to the storage medium named by cfg.Backend.
func openBackend(cfg *config.Config) (persistence.Backend, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return persistence.NewFileBackend(cfg.DataDir), nil

	case config.BackendSQLite:
		return openSQL(database.DriverSQLite, cfg.SQLitePath)

	case config.BackendPostgres:
		return openSQL(database.DriverPostgres, cfg.DSN())

	case config.BackendValkey:
		client, err := valkey.Connect(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			return nil, fmt.Errorf("connect valkey: %w", err)
		}
		return persistence.NewValkeyBackend(client), nil

	case config.BackendS3:
		client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
		if err != nil {
			return nil, fmt.Errorf("connect s3: %w", err)
		}
		if client == nil {
			return nil, errors.New("connect s3: storage is not configured")
		}
		slog.Debug("object storage ready", "bucket", client.Bucket())
		return persistence.NewS3Backend(client), nil

	case config.BackendMemory:
		slog.Warn("memory backend selected, changes are lost on exit")
		return persistence.NewMemoryBackend(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func openSQL(driver, dsn string) (persistence.Backend, error) {
	db, err := database.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return persistence.NewSQLBackend(db), nil
}
