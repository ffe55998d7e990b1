/*
Package vault defines the common interfaces that tie the custodial
authorization engine together: addresses, persistence, key-value storage,
and the ambient operation context.

The engine itself lives in x/custody. The root package intentionally holds
only the glue that every other package needs, so that extensions can depend
on vault without pulling in each other.
*/
package vault
