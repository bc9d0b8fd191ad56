package commands

import (
	"github.com/spf13/cobra"

	"contas/internal/config"
	"contas/internal/store"
)

var (
	dbPath string
	db     *store.Store
)

func Execute() error {
	root := &cobra.Command{
		Use:           "contas",
		Short:         "Manage user accounts for the ecommerce backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			path := dbPath
			if path == "" {
				if path, err = config.DBPath(); err != nil {
					return err
				}
			}

			var opts []store.Option
			if cfg.ReloadOnRead != nil && !*cfg.ReloadOnRead {
				opts = append(opts, store.WithoutReloadOnRead())
			}

			db, err = store.Open(path, opts...)
			return err
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "account database file (default from config)")

	root.AddCommand(addCmd(), removeCmd(), listCmd(), showCmd(), passwdCmd(), backupCmd())
	return root.Execute()
}
