/*
Package timevault defines the common interfaces and primitive types that tie
the packages of this repository together.

The repository implements a time-locked escrow registry: a sponsor places a
fungible amount in escrow for a recipient, claimable exactly once after an
absolute unlock time. The x/vault package holds the registry logic, with
x/cash providing asset custody, x/roles providing holder eligibility flags
and coin providing the ticker-tagged amount type.

State is kept in a key-value store. All interfaces for interacting with
stores are declared here, with the in-memory implementation living in the
store package. Operations that are expected to be all-or-nothing run against
a cache-wrapped store that is either written back or discarded as a whole.
*/
package timevault
