package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/sklinak/rowpipe/internal/monitoring"
	"github.com/sklinak/rowpipe/internal/queue"
)

// worker is the consumer loop: pop a task, transform its row, mark
// the barrier, repeat until a shutdown task arrives. Each shutdown
// task terminates exactly one worker.
//
// The only shared state a worker mutates is the byte range of the row
// it was handed; completion reporting goes through the barrier's own
// lock. That is the whole soundness argument for running K workers on
// one buffer without a buffer lock.
func (p *Pipeline) worker(idx int, tasks *queue.Queue[Task], rec *monitoring.Recorder, log *zap.Logger) {
	defer p.wg.Done()

	p.metrics.WorkersActive.Inc()
	defer p.metrics.WorkersActive.Dec()

	for {
		task := tasks.Pop()
		p.metrics.QueueDepth.Dec()

		if task.Kind == KindShutdown {
			log.Debug("worker terminated", zap.Int("worker", idx))
			return
		}

		start := time.Now()
		task.Buf.ApplyRow(task.Row, p.transform)
		elapsed := time.Since(start)

		task.Barrier.MarkDone(task.Row)

		p.metrics.RecordRow(elapsed)
		rec.Record(elapsed)
	}
}
