// Package id provides ULID generation for pipeline runs.
//
// Every invocation of the pipeline gets a JobID ("job_" + ULID) that
// tags all log lines of that run, so interleaved runs in aggregated
// logs stay separable. ULIDs are lexicographically sortable by
// creation time, which keeps log queries over job IDs time-ordered
// for free.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// JobID identifies one pipeline run.
type JobID string

// JobPrefix tags job IDs in logs.
const JobPrefix = "job"

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator with cryptographically secure entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy
// source. Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewJobID generates a new pipeline run ID.
func NewJobID() JobID {
	return JobID(Default().GenerateWithPrefix(JobPrefix))
}

// String returns the ID as a plain string.
func (id JobID) String() string {
	return string(id)
}
