// Command hockeyfed maintains the federation's local store.
//
// Usage:
//
//	hockeyfed seed
//	hockeyfed list players
//	hockeyfed register --username sam --email sam@example.com --password secret
//	hockeyfed login admin123 --password 12345
//	hockeyfed announce --title "Fixtures out" --content "See the events page"
//	hockeyfed list events --open
//	hockeyfed register-team --event <event id> --team <team id> --accept-terms
//	hockeyfed delete-user <user id>
//	hockeyfed export backup.json
//	hockeyfed import backup.json --overwrite
//	hockeyfed reset --yes
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcdev12/hockeyfed/go/internal/federation"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hockeyfed",
		Short:        "Hockey federation local store maintenance",
		SilenceUsage: true,
	}

	root.AddCommand(seedCmd())
	root.AddCommand(resetCmd())
	root.AddCommand(listCmd())
	root.AddCommand(registerCmd())
	root.AddCommand(loginCmd())
	root.AddCommand(whoamiCmd())
	root.AddCommand(logoutCmd())
	root.AddCommand(deleteUserCmd())
	root.AddCommand(announceCmd())
	root.AddCommand(registerTeamCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(importCmd())
	return root
}

// withServices loads the config, opens the store and builds the services
// for the duration of fn.
func withServices(ctx context.Context, fn func(ctx context.Context, svc *federation.Services) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.level())

	store, closeStore, err := setupStore(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}()

	svc := federation.New(store, federation.Options{
		KeyPrefix:       cfg.KeyPrefix,
		SerializeWrites: cfg.SerializeWrites,
	})
	return fn(ctx, svc)
}
