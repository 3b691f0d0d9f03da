package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"probe/src/vault"
)

var (
	flagDB   string
	flagTime string
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Store credentials and look them up with the secret redacted",
	Long:  "The vault stores credential records in a SQLite database. Lookups match the secret exactly but only ever print the redacted entry; the secret never appears in any output.",
}

func init() {
	vaultCmd.PersistentFlags().StringVar(&flagDB, "db", "probe-vault.db", "vault database path")
	vaultCmd.PersistentFlags().StringVar(&flagTime, "time-format", "", "strftime format for created timestamps")

	vaultCmd.AddCommand(vaultAddCmd)
	vaultCmd.AddCommand(vaultGetCmd)
	vaultCmd.AddCommand(vaultListCmd)
}

var vaultAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Store a credential, reading the secret from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := readSecret()
		if err != nil {
			return err
		}
		store, err := vault.Open(flagDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		entry, err := store.Put(args[0], secret)
		if err != nil {
			return err
		}
		logger.Debug("stored credential", zap.String("id", entry.ID))
		return printEntry(entry)
	},
}

var vaultGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up the entry matching the secret read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := readSecret()
		if err != nil {
			return err
		}
		store, err := vault.Open(flagDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		entry, found, err := store.LookupSecret(secret)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no matching credential")
		}
		return printEntry(entry)
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored entry in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := vault.Open(flagDB)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		entries, err := store.All()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := printEntry(entry); err != nil {
				return err
			}
		}
		return nil
	},
}

func readSecret() (string, error) {
	rdr := bufio.NewReader(os.Stdin)
	line, err := rdr.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printEntry(entry vault.Entry) error {
	created, err := entry.CreatedAtString(flagTime)
	if err != nil {
		return err
	}
	if flagFormat == "json" {
		return printJSON(map[string]string{
			"id":      entry.ID,
			"name":    entry.Name,
			"created": created,
		})
	}
	fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", entry.ID, entry.Name, created)
	return nil
}
