// Package monitoring collects pipeline metrics with Prometheus
// primitives.
//
// Every Metrics instance owns its registry, so tests and repeated runs
// never collide on metric registration. The process exposes no network
// endpoint; at the end of a run the registry is gathered into a
// summary that the CLI logs. Per-row latencies additionally feed a
// Recorder whose Summary reports mean, standard deviation and p99.
package monitoring
