package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"paysecure-gateway/internal/adapter/metrics"
	pgStorage "paysecure-gateway/internal/adapter/storage/postgres"
	"paysecure-gateway/internal/app"
	"paysecure-gateway/internal/service"

	"github.com/spf13/cobra"
)

func (c *cli) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	run := func(apply func(*pgStorage.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if err := c.requirePostgres(); err != nil {
				return err
			}
			mg, err := pgStorage.NewMigrator(c.cfg.Database.DSN())
			if err != nil {
				return err
			}
			defer mg.Close()

			if err := apply(mg); err != nil {
				return err
			}
			version, dirty, err := mg.Version()
			if err != nil {
				return fmt.Errorf("read schema version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
			return nil
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE:  run((*pgStorage.Migrator).Up),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE:  run((*pgStorage.Migrator).Down),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE:  run(func(*pgStorage.Migrator) error { return nil }),
	})
	return cmd
}

func (c *cli) keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the transaction signing key pair",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Load the signing key pair, generating it if none exists, and print the public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, generated, err := service.LoadOrCreateKeyPair(c.cfg.Integrity.KeyDir)
			if err != nil {
				return err
			}
			if generated {
				fmt.Fprintf(cmd.ErrOrStderr(), "generated a new key pair in %s\n", c.cfg.Integrity.KeyDir)
			}
			fmt.Fprint(cmd.OutOrStdout(), keys.PublicKeyPEM())
			return nil
		},
	})
	return cmd
}

func (c *cli) auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Inspect the audit chain",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Walk the audit chain and report the first broken entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePostgres(); err != nil {
				return err
			}
			st, err := app.OpenDatabase(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer st.Close()

			chain := service.NewAuditChainService(st.Audit, st.Transactor, metrics.Noop{}, c.log)
			result, err := chain.VerifyChain(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if !result.Valid {
				return errors.New("audit chain is broken")
			}
			return nil
		},
	})
	return cmd
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo users with a funded wallet and a linked bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePostgres(); err != nil {
				return err
			}
			st, err := app.OpenDatabase(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			defer st.Close()

			seeded, err := app.Seed(cmd.Context(), st.Users, st.Accounts, service.NewArgon2HashService(), app.DemoUsers(), time.Now().UTC())
			if err != nil {
				return err
			}
			if len(seeded) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "demo users already present")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EMAIL\tUSER ID\tWALLET\tBANK")
			for _, s := range seeded {
				bank := "-"
				if s.Bank != nil {
					bank = fmt.Sprintf("%s (%d)", s.Bank.BankUsername, s.Bank.Balance)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.User.Email, s.User.ID, s.Wallet.Balance, bank)
			}
			return tw.Flush()
		},
	}
}
