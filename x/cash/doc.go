/*
Package cash is the asset custody host of this repository. It defines
wallets that keep a set of ticker-tagged coins per address and a Controller
that moves value between wallets.

Every move is checked against the source balance, and optionally against a
Guard that decides whether the destination may hold the given asset kind.
All mutations go through the KVStore passed to each call, so a caller can
wrap a whole sequence of moves into a single cache-wrap transaction.
*/
package cash
