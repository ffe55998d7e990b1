package main

import (
	"encoding/hex"

	"github.com/BurntSushi/toml"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/crypto/bech32"
	"github.com/open-custody/vault/errors"
)

// Config describes a local wallet: where its state lives and who may sign.
type Config struct {
	// DBPath is the directory of the wallet state database.
	DBPath string `toml:"db_path"`
	// AddressPrefix is the bech32 human readable part used for rendering
	// and parsing addresses.
	AddressPrefix string `toml:"address_prefix"`
	// Signers are the three co-signer addresses, bech32 or hex encoded.
	Signers []string `toml:"signers"`
}

func loadConfig(path string) (*Config, error) {
	conf := Config{
		AddressPrefix: "vault",
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "config %s: %v", path, err)
	}
	if conf.DBPath == "" {
		return nil, errors.Wrap(errors.ErrInput, "config: db_path is required")
	}
	return &conf, nil
}

func (c *Config) signerAddresses() ([]vault.Address, error) {
	addrs := make([]vault.Address, len(c.Signers))
	for i, s := range c.Signers {
		addr, err := parseAddress(s)
		if err != nil {
			return nil, errors.Wrapf(err, "signer %d", i)
		}
		addrs[i] = addr
	}
	return addrs, nil
}

// parseAddress accepts both the bech32 and the raw hex rendering.
func parseAddress(raw string) (vault.Address, error) {
	if _, payload, err := bech32.Decode(raw); err == nil {
		addr := vault.Address(payload)
		return addr, addr.Validate()
	}
	payload, err := hex.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "address %q is neither bech32 nor hex", raw)
	}
	addr := vault.Address(payload)
	return addr, addr.Validate()
}

func renderAddress(addr vault.Address, hrp string) string {
	enc, err := bech32.Encode(hrp, addr)
	if err != nil {
		return addr.String()
	}
	return enc
}
