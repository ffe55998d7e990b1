package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-custody/vault/store"
	"github.com/open-custody/vault/x/custody"
	"github.com/open-custody/vault/x/ledger"
)

var configPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wallet state from a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		signers, err := conf.signerAddresses()
		if err != nil {
			return err
		}

		db, err := store.NewLevelStore(conf.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		wallet, err := custody.NewWallet(db, signers)
		if err != nil {
			return err
		}
		fmt.Printf("wallet: %s\n", renderAddress(wallet.Address(), conf.AddressPrefix))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the state of a local wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		db, err := store.NewLevelStore(conf.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		wallet, err := custody.LoadWallet(db)
		if err != nil {
			return err
		}
		fmt.Printf("wallet:        %s\n", renderAddress(wallet.Address(), conf.AddressPrefix))
		fmt.Printf("balance:       %d\n", ledger.Balance(db, wallet.Address()))
		fmt.Printf("next sequence: %d\n", wallet.NextSequenceID())
		fmt.Printf("safe mode:     %v\n", wallet.SafeModeActive())
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{initCmd, showCmd} {
		cmd.Flags().StringVar(&configPath, "config", "wallet.toml", "path to the wallet config file")
	}
	rootCmd.AddCommand(initCmd, showCmd)
}
