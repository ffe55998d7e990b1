/*
Package custody implements a custodial multi-party authorization engine for
moving value out of a shared account.

Every outgoing transfer must be initiated by one registered co-signer and
approved by a second, distinct co-signer, whose identity is recovered from a
signature over a canonical digest of the operation. A fixed window of
recently accepted sequence ids prevents replay of approved instructions,
and an irrevocable safe mode restricts destinations to the co-signers
themselves.

The Wallet aggregate owns the whole state: the immutable signer registry,
the safe mode gate, and the sequence window. Every submitted operation runs
against a cache-wrapped store and is flushed in one atomic unit, so a
failure at any gate leaves no trace.
*/
package custody
