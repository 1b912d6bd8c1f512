/*
Package vault implements the time-locked escrow registry.

A sponsor deposits a fungible amount for a recipient together with an
absolute unlock time. The amount leaves the sponsor's wallet immediately and
is held on a registry account derived from the sponsor and the asset kind.
Once the unlock time is reached the recipient can claim the amount, exactly
once. Every successful claim is recorded in an append-only claim log that
external indexers can consume.

For every (sponsor, asset kind, recipient) there can be at most one active
lock at any time. A second deposit for the same recipient fails until the
first lock is claimed.

Both operations are all-or-nothing: they run against a cache-wrap of the
supplied store that is written back only when every step succeeded. In
particular a claim whose credit is refused leaves the lock in place.
*/
package vault
