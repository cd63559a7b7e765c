package main

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rogerio-castellano/paintchain/internal/auth"
	"github.com/rogerio-castellano/paintchain/internal/config"
	"github.com/rogerio-castellano/paintchain/internal/db"
	"github.com/rogerio-castellano/paintchain/internal/logging"
	"github.com/rogerio-castellano/paintchain/internal/repo"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "paintchain",
		Short:         "Paint supply-chain analytics service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./config.yaml or /etc/paintchain/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("storage", "", "storage backend (file, memory, postgres)")
	root.PersistentFlags().String("data-dir", "", "directory holding the JSON collections")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("storage.backend", root.PersistentFlags().Lookup("storage"))
	_ = a.v.BindPFlag("storage.data_dir", root.PersistentFlags().Lookup("data-dir"))

	root.AddCommand(newServeCmd(a), newAnalyzeCmd(a), newHashPasswordCmd())
	return root
}

// openStore returns the configured store and a func releasing its resources.
func (a *app) openStore(ctx context.Context) (repo.Store, func(), error) {
	switch a.cfg.Storage.Backend {
	case config.BackendMemory:
		return repo.NewInMemoryStore(), func() {}, nil
	case config.BackendPostgres:
		database, err := db.Connect(a.cfg.Database.URL)
		if err != nil {
			return repo.Store{}, nil, err
		}
		if a.cfg.Database.Migrate {
			if err := db.Migrate(ctx, database); err != nil {
				database.Close()
				return repo.Store{}, nil, err
			}
		}
		return repo.NewPostgresStore(database), func() { database.Close() }, nil
	default:
		log.Info().Str("dir", a.cfg.Storage.DataDir).Msg("using JSON collections")
		return repo.NewJSONStore(a.cfg.Storage.DataDir), func() {}, nil
	}
}

func (a *app) newEngine() *analytics.Engine {
	return analytics.NewEngine()
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for auth.admin_password_hash",
		Args:  cobra.ExactArgs(1),
		// config is not needed here
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
