package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-custody/vault/crypto"
	"github.com/open-custody/vault/errors"
)

var keygenHrp string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a fresh co-signer key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		priv := crypto.GenPrivateKey()
		pub := priv.PublicKey()
		fmt.Printf("private: %X\n", priv.Bytes())
		fmt.Printf("public:  %X\n", pub.Bytes())
		fmt.Printf("address: %s\n", renderAddress(pub.Address(), keygenHrp))
		return nil
	},
}

var addrHrp string

var addrCmd = &cobra.Command{
	Use:   "addr <hex public key>",
	Short: "Derive the identity address of a public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrap(errors.ErrInput, "public key is not hex")
		}
		pub, err := crypto.PublicKeyFromBytes(raw)
		if err != nil {
			return err
		}
		fmt.Println(renderAddress(pub.Address(), addrHrp))
		return nil
	},
}

var signKey string

var signCmd = &cobra.Command{
	Use:   "sign <hex digest>",
	Short: "Approve an operation digest with a compact signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		digest, err := hex.DecodeString(args[0])
		if err != nil {
			return errors.Wrap(errors.ErrInput, "digest is not hex")
		}
		rawKey, err := hex.DecodeString(signKey)
		if err != nil {
			return errors.Wrap(errors.ErrInput, "key is not hex")
		}
		priv, err := crypto.PrivateKeyFromBytes(rawKey)
		if err != nil {
			return err
		}
		sig, err := priv.Sign(digest)
		if err != nil {
			return err
		}
		fmt.Printf("%X\n", sig)
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenHrp, "hrp", "vault", "bech32 prefix for the printed address")
	addrCmd.Flags().StringVar(&addrHrp, "hrp", "vault", "bech32 prefix for the printed address")
	signCmd.Flags().StringVar(&signKey, "key", "", "hex private key of the approving signer")
	signCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(keygenCmd, addrCmd, signCmd)
}
