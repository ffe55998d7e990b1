package ledger

import (
	"encoding/binary"
	"math"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// bucketPrefix is where we store the balances.
const bucketPrefix = "ledger:"

// Book is the balance controller. It contains no state of its own; all
// balances live in the store it is handed.
type Book struct{}

// NewBook returns a balance controller.
func NewBook() Book {
	return Book{}
}

// Move moves the given amount of the native value from src to dest.
// If src doesn't have sufficient balance, it fails.
func (Book) Move(db vault.KVStore, src, dest vault.Address, amount uint64) error {
	return move(db, nativeKey(src), nativeKey(dest), amount)
}

// MoveToken moves the given amount of a token balance from src to dest.
func (Book) MoveToken(db vault.KVStore, token, src, dest vault.Address, amount uint64) error {
	return move(db, tokenKey(token, src), tokenKey(token, dest), amount)
}

// Credit adds the given amount to the destination's native balance.
// Fails if the balance would overflow.
func (Book) Credit(db vault.KVStore, dest vault.Address, amount uint64) error {
	return credit(db, nativeKey(dest), amount)
}

// CreditToken adds the given amount to the destination's token balance.
func (Book) CreditToken(db vault.KVStore, token, dest vault.Address, amount uint64) error {
	return credit(db, tokenKey(token, dest), amount)
}

// Balance returns the native balance of an address.
func Balance(db vault.KVStore, addr vault.Address) uint64 {
	return load(db, nativeKey(addr))
}

// TokenBalance returns the token balance of an address.
func TokenBalance(db vault.KVStore, token, addr vault.Address) uint64 {
	return load(db, tokenKey(token, addr))
}

func move(db vault.KVStore, srcKey, destKey []byte, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(ErrEmptyAmount, "move")
	}
	from := load(db, srcKey)
	if from < amount {
		return errors.Wrapf(ErrInsufficientFunds, "have %d, need %d", from, amount)
	}
	// debit before reading the destination, so a self-transfer nets to zero
	save(db, srcKey, from-amount)
	to := load(db, destKey)
	if to > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}
	save(db, destKey, to+amount)
	return nil
}

func credit(db vault.KVStore, destKey []byte, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(ErrEmptyAmount, "credit")
	}
	to := load(db, destKey)
	if to > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}
	save(db, destKey, to+amount)
	return nil
}

func load(db vault.KVStore, key []byte) uint64 {
	raw := db.Get(key)
	if raw == nil {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}

func save(db vault.KVStore, key []byte, amount uint64) {
	if amount == 0 {
		// an empty account and a zero balance are the same thing
		db.Delete(key)
		return
	}
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, amount)
	db.Set(key, raw)
}

func nativeKey(addr vault.Address) []byte {
	return append([]byte(bucketPrefix), addr...)
}

func tokenKey(token, addr vault.Address) []byte {
	key := append([]byte(bucketPrefix), token...)
	key = append(key, '/')
	return append(key, addr...)
}
