// Package pipeline distributes per-row raster transforms across a
// fixed pool of worker goroutines.
//
// One Run is one pool lifecycle:
//
//	Stage 1: spawn K workers blocked on the shared task queue
//	Stage 2: load the image into one shared raster buffer
//	Stage 3: enqueue one row task per scanline
//	Stage 4: block on the completion barrier until every row is done
//	Stage 5: enqueue exactly K shutdown tasks and join the pool
//	Stage 6: persist the transformed buffer
//
// Workers mutate the shared buffer in place without locking it: each
// row task carries a distinct row index, and distinct rows occupy
// disjoint byte ranges, so no two workers ever write the same byte.
// Shutdown tasks flow through the same queue as row tasks (the poison
// pill pattern); the orchestrator owns the invariant that exactly K of
// them are sent per run, including on the load-failure path, so no
// worker is ever left blocked on the queue.
//
// The queue and barrier block without timeout. A run that loses a
// worker before its shutdown task is consumed will hang; pool size and
// shutdown count are coupled by construction so this cannot happen.
// Workers are released only after the current image completes; the
// pool is deliberately not reused across images.
package pipeline
