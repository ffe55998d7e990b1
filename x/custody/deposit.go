package custody

import (
	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// ReceiveDeposit records unsolicited incoming value. It carries no
// authorization logic: any sender may deposit. A zero amount is a no-op
// and emits nothing.
func (w *Wallet) ReceiveDeposit(ctx vault.Context, sender vault.Address, amount uint64, data []byte) (res *Result, err error) {
	defer errors.Recover(&err)

	if amount == 0 {
		return &Result{Log: "empty deposit ignored"}, nil
	}

	cache := w.db.CacheWrap()
	if err := w.mover.Credit(cache, w.addr, amount); err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()

	w.logger.Info("deposit received", "sender", sender, "amount", amount)
	return &Result{
		Log:    "deposited",
		Events: []Event{Deposited{Sender: sender, Amount: amount, Data: data}},
	}, nil
}
