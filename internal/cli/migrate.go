package cli

import (
	"github.com/spf13/cobra"

	"recharge-portal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.DBURL)
			if err != nil {
				return err
			}
			defer closeDB(db)
			return database.Migrate(db)
		},
	}
}
