package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-custody/vault/errors"
	"github.com/open-custody/vault/x/custody"
)

var (
	digestDest    string
	digestValue   uint64
	digestPayload string
	digestToken   string
	digestExpiry  string
	digestSeq     uint64
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Compute the canonical digest a co-signer must approve",
	Long: `Compute the canonical digest of a proposed operation. Pass --token
for a token transfer; the digest is domain-tagged so approvals for one
operation kind can never be replayed as the other.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest, err := parseAddress(digestDest)
		if err != nil {
			return errors.Wrap(err, "destination")
		}
		expiry, err := time.Parse(time.RFC3339, digestExpiry)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "expiry: %v", err)
		}

		var digest []byte
		if digestToken != "" {
			token, err := parseAddress(digestToken)
			if err != nil {
				return errors.Wrap(err, "token")
			}
			digest = custody.TokenTransferDigest(token, dest, digestValue, expiry, digestSeq)
		} else {
			payload, err := hex.DecodeString(digestPayload)
			if err != nil {
				return errors.Wrap(errors.ErrInput, "payload is not hex")
			}
			digest = custody.TransferDigest(dest, digestValue, payload, expiry, digestSeq)
		}
		fmt.Printf("%X\n", digest)
		return nil
	},
}

func init() {
	digestCmd.Flags().StringVar(&digestDest, "dest", "", "destination address")
	digestCmd.Flags().Uint64Var(&digestValue, "value", 0, "amount to move")
	digestCmd.Flags().StringVar(&digestPayload, "payload", "", "hex payload attached to a native transfer")
	digestCmd.Flags().StringVar(&digestToken, "token", "", "token reference, makes this a token transfer")
	digestCmd.Flags().StringVar(&digestExpiry, "expiry", "", "operation deadline, RFC3339")
	digestCmd.Flags().Uint64Var(&digestSeq, "seq", 0, "sequence id")
	digestCmd.MarkFlagRequired("dest")
	digestCmd.MarkFlagRequired("expiry")
	digestCmd.MarkFlagRequired("seq")
	rootCmd.AddCommand(digestCmd)
}
