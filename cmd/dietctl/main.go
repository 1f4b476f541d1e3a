// dietctl is the operator CLI for the diet tracker database.
//
//	dietctl migrate [--dir db]
//	dietctl create-user [--username u] [--email e]
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// cliConfig is the part of the server environment dietctl needs.
type cliConfig struct {
	DBURL string `env:"DB_URL,required,notEmpty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dietctl",
		Short:         "Manage the diet tracker database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newCreateUserCmd())
	return root
}

// connect loads .env (if present) and opens a single connection to DB_URL.
func connect(ctx context.Context) (*pgx.Conn, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	var cfg cliConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	conn, err := pgx.Connect(ctx, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return conn, nil
}
