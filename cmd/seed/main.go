// Command seed fills an empty snack store with the embedded catalogue.
package main

import (
	"context"
	"os"
	"time"

	"github.com/alex-pricope/snackify/api"
	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/seed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Populate the snack store with the default catalogue",
		Long:         "Inserts the embedded snack catalogue. A store that already holds snacks is left untouched.",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := api.LoadSettings(); err != nil {
				return err
			}
			for flag, key := range map[string]string{"driver": "storage.driver", "dsn": "storage.dsn", "migrate": "storage.migrate"} {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			logging.BoostrapLogger(viper.GetString("log.level"))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return run(ctx, api.ReadConfig().StorageConfig)
		},
	}

	cmd.Flags().String("driver", api.DriverDynamo, "storage driver: dynamo, postgres or memory")
	cmd.Flags().String("dsn", "", "Postgres connection string")
	cmd.Flags().Bool("migrate", true, "apply Postgres migrations before seeding")
	cmd.Flags().Duration("timeout", 2*time.Minute, "give up after this long")
	return cmd
}

func run(ctx context.Context, conf api.StorageConfig) error {
	stores, err := api.OpenStores(ctx, conf)
	if err != nil {
		return err
	}
	defer stores.Close()

	// The memory driver seeds itself on open.
	if conf.Driver == api.DriverMemory {
		count, err := stores.Snacks.Count(ctx)
		if err != nil {
			return err
		}
		logging.Log.Infof("Memory store holds %d snacks", count)
		return nil
	}

	inserted, err := seed.Populate(ctx, stores.Snacks)
	if err != nil {
		logging.Log.Errorf("Seeding failed after %d snacks: %v", inserted, err)
		return err
	}
	logging.Log.Infof("Seeding complete, %d snacks inserted", inserted)
	return nil
}
