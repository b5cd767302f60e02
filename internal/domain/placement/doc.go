// Package placement is the lifecycle and consistency engine of the placement
// cell. It owns the five entity collections (students, companies, drives,
// applications and offer letters) and is the only code allowed to mutate them.
//
// Every mutation runs inside one critical section: scalar validation,
// referential checks, status transition checks, the optional write-through
// Persister, and finally the in-memory apply. Either all of it happens or none
// of it does. Aggregate reads take the read lock and always observe a state
// between two complete mutations.
package placement
