/*
Package ledger keeps a simple balance book: one native balance and any
number of per-token balances for each address.

It provides the default implementation of the transfer capability that the
custody engine is parameterized over. Host environments that settle value
elsewhere can ignore this package and inject their own mover.
*/
package ledger
