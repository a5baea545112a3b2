// Package barrier provides a completion barrier over a fixed set of
// indexed work units.
//
// A Barrier is created for a known unit count. Workers call MarkDone
// with their unit index; the orchestrator blocks in WaitAll until every
// index has been marked. The done-set and the all-done predicate share
// one lock, and waiters re-check the predicate after every wake, so a
// mark can never be lost between the final flag set and a waiter's
// check.
//
// The all-done predicate is monotonic: once WaitAll would return, it
// returns forever for that instance. Indices are never reset.
package barrier
