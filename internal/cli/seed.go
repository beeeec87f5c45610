package cli

import (
	"github.com/spf13/cobra"

	"recharge-portal/database"
	"recharge-portal/internal/storage"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the plan catalog into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := database.InitDB(cfg.DBURL)
			if err != nil {
				return err
			}
			defer closeDB(db)

			seeded, err := storage.New(db).SeedIfEmpty(cmd.Context())
			if err != nil {
				return wrap("seed", err)
			}
			log.Info("seed finished", "inserted", seeded)
			return nil
		},
	}
}
