package main

import (
	"fmt"
	"os"

	"paysecure-gateway/config"
	"paysecure-gateway/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var Version = "dev"

// cli carries state shared by every subcommand.
type cli struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "paysecurectl",
		Short:         "Operate a PaySecure gateway deployment",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.cfg = cfg
			c.log = logger.New(cfg.Log.Level, cfg.Log.Pretty)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a config file")

	rootCmd.AddCommand(c.migrateCmd())
	rootCmd.AddCommand(c.keysCmd())
	rootCmd.AddCommand(c.auditCmd())
	rootCmd.AddCommand(c.seedCmd())

	return rootCmd
}

// requirePostgres rejects commands that would act on a throwaway memory store.
func (c *cli) requirePostgres() error {
	if c.cfg.Storage.Driver != "postgres" {
		return fmt.Errorf("storage.driver is %q; this command needs postgres", c.cfg.Storage.Driver)
	}
	return nil
}
