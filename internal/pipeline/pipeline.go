package pipeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sklinak/rowpipe/internal/barrier"
	"github.com/sklinak/rowpipe/internal/codec"
	"github.com/sklinak/rowpipe/internal/logging"
	"github.com/sklinak/rowpipe/internal/monitoring"
	"github.com/sklinak/rowpipe/internal/queue"
	"github.com/sklinak/rowpipe/internal/raster"
	"github.com/sklinak/rowpipe/internal/shared/id"
)

// Error taxonomy: callers distinguish a failed decode of the input
// from a failed write of the output with errors.Is.
var (
	ErrLoad = errors.New("image load failed")
	ErrSave = errors.New("image save failed")
)

// Codec abstracts the image codec collaborator so tests can inject
// failures and observers.
type Codec interface {
	Load(path string) (*raster.Buffer, error)
	Save(path string, buf *raster.Buffer) error
}

// diskCodec is the production codec, backed by the codec package.
type diskCodec struct{}

func (diskCodec) Load(path string) (*raster.Buffer, error)   { return codec.Load(path) }
func (diskCodec) Save(path string, buf *raster.Buffer) error { return codec.Save(path, buf) }

// Options configures a Pipeline. Zero-value fields fall back to the
// documented defaults.
type Options struct {
	Workers   int              // pool size; must be >= 1
	Transform raster.PixelFunc // defaults to raster.Invert
	Suffix    string           // output name suffix; defaults to "_inverted"
	Codec     Codec            // defaults to the on-disk codec
	Logger    *logging.Logger  // defaults to a no-op logger
	Metrics   *monitoring.Metrics
}

// Pipeline owns a worker pool configuration. Each Run spins up a
// fresh pool, processes one image through it and tears it down.
// Runs on one Pipeline must be sequential; images are never
// pipelined across a shared pool.
type Pipeline struct {
	workers   int
	transform raster.PixelFunc
	suffix    string
	codec     Codec
	logger    *logging.Logger
	metrics   *monitoring.Metrics
	wg        sync.WaitGroup
}

// Result reports one successful run.
type Result struct {
	JobID      id.JobID
	OutputPath string
	Width      int
	Height     int
	Channels   int
	Elapsed    time.Duration
	RowStats   monitoring.Summary
}

// New creates a pipeline from opts.
func New(opts Options) (*Pipeline, error) {
	if opts.Workers < 1 {
		return nil, fmt.Errorf("pipeline: workers must be >= 1, got %d", opts.Workers)
	}
	if opts.Transform == nil {
		opts.Transform = raster.Invert
	}
	if opts.Suffix == "" {
		opts.Suffix = "_inverted"
	}
	if opts.Codec == nil {
		opts.Codec = diskCodec{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = monitoring.NewMetrics()
	}

	return &Pipeline{
		workers:   opts.Workers,
		transform: opts.Transform,
		suffix:    opts.Suffix,
		codec:     opts.Codec,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}, nil
}

// Run processes one image: every row of the decoded raster is
// transformed in place by the pool, then the result is written next to
// the input. The pool is fully joined before Run returns, on the error
// paths too.
func (p *Pipeline) Run(inputPath string) (*Result, error) {
	jobID := id.NewJobID()
	log := p.logger.With(
		zap.String("job", jobID.String()),
		zap.String("input", inputPath),
	)
	start := time.Now()

	tasks := queue.New[Task]()
	rec := monitoring.NewRecorder()

	// Workers start before the load so the pool layout matches every
	// run, including ones that fail to load.
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker(i, tasks, rec, log)
	}

	buf, err := p.codec.Load(inputPath)
	if err != nil {
		// Workers must be released even on a failed load: send the
		// full shutdown volley before reporting the error.
		p.shutdown(tasks)
		p.metrics.RecordImage("load_error", time.Since(start))
		log.Error("load failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	log.Info("image loaded",
		zap.Int("width", buf.Width),
		zap.Int("height", buf.Height),
		zap.Int("channels", buf.Channels),
	)

	bar := barrier.New(buf.Height)
	for row := 0; row < buf.Height; row++ {
		tasks.Push(rowTask(row, buf, bar))
		p.metrics.QueueDepth.Inc()
	}

	bar.WaitAll()

	// All rows are transformed; release the pool before touching disk
	// so no worker can outlive the buffer's processing window.
	p.shutdown(tasks)

	outputPath := codec.OutputPath(inputPath, p.suffix)
	if err := p.codec.Save(outputPath, buf); err != nil {
		p.metrics.RecordImage("save_error", time.Since(start))
		log.Error("save failed", zap.String("output", outputPath), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSave, err)
	}

	elapsed := time.Since(start)
	p.metrics.RecordImage("ok", elapsed)

	stats := rec.Summarize()
	log.Info("image saved",
		zap.String("output", outputPath),
		zap.Int("rows", buf.Height),
		zap.Duration("elapsed", elapsed),
		zap.Duration("row_mean", stats.Mean),
		zap.Duration("row_stddev", stats.StdDev),
		zap.Duration("row_p99", stats.P99),
	)

	return &Result{
		JobID:      jobID,
		OutputPath: outputPath,
		Width:      buf.Width,
		Height:     buf.Height,
		Channels:   buf.Channels,
		Elapsed:    elapsed,
		RowStats:   stats,
	}, nil
}

// shutdown sends exactly one poison task per worker and joins the
// pool. This is the single place shutdown tasks are produced; the
// count matching the pool size is what guarantees every worker
// terminates exactly once.
func (p *Pipeline) shutdown(tasks *queue.Queue[Task]) {
	for i := 0; i < p.workers; i++ {
		tasks.Push(shutdownTask())
		p.metrics.QueueDepth.Inc()
	}
	p.wg.Wait()
}
