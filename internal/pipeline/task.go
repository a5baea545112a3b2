package pipeline

import (
	"github.com/sklinak/rowpipe/internal/barrier"
	"github.com/sklinak/rowpipe/internal/raster"
)

// TaskKind discriminates the two task variants flowing through the
// work queue.
type TaskKind int

const (
	// KindRow instructs a worker to transform one scanline.
	KindRow TaskKind = iota
	// KindShutdown instructs a worker to exit its loop.
	KindShutdown
)

// Task is one unit of work. Row tasks reference the run's shared
// buffer and barrier; shutdown tasks carry nothing.
type Task struct {
	Kind    TaskKind
	Row     int
	Buf     *raster.Buffer
	Barrier *barrier.Barrier
}

func rowTask(row int, buf *raster.Buffer, bar *barrier.Barrier) Task {
	return Task{Kind: KindRow, Row: row, Buf: buf, Barrier: bar}
}

func shutdownTask() Task {
	return Task{Kind: KindShutdown}
}
