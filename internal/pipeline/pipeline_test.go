package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sklinak/rowpipe/internal/monitoring"
	"github.com/sklinak/rowpipe/internal/raster"
)

// fakeCodec keeps everything in memory and records what the pipeline
// asked it to persist.
type fakeCodec struct {
	buf       *raster.Buffer
	loadErr   error
	saveErr   error
	loadCalls int
	saveCalls int
	savedPath string
	saved     *raster.Buffer
}

func (f *fakeCodec) Load(path string) (*raster.Buffer, error) {
	f.loadCalls++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.buf.Clone(), nil
}

func (f *fakeCodec) Save(path string, buf *raster.Buffer) error {
	f.saveCalls++
	f.savedPath = path
	f.saved = buf.Clone()
	return f.saveErr
}

func gradientBuffer(t *testing.T, w, h, ch int) *raster.Buffer {
	t.Helper()
	buf, err := raster.NewBuffer(w, h, ch)
	require.NoError(t, err)
	for i := range buf.Pix {
		buf.Pix[i] = byte(i * 7)
	}
	return buf
}

func gaugeValue(t *testing.T, m *monitoring.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	return 0
}

func counterValue(t *testing.T, m *monitoring.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			var total float64
			for _, metric := range f.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
			return total
		}
	}
	return 0
}

func TestRunInvertsEveryRow(t *testing.T) {
	src := gradientBuffer(t, 9, 33, 3)
	fc := &fakeCodec{buf: src}

	p, err := New(Options{Workers: 4, Codec: fc})
	require.NoError(t, err)

	res, err := p.Run("photo.png")
	require.NoError(t, err)

	assert.Equal(t, "photo_inverted.png", res.OutputPath)
	assert.Equal(t, "photo_inverted.png", fc.savedPath)
	assert.Equal(t, 33, res.Height)
	assert.Equal(t, 33, res.RowStats.Count)

	require.NotNil(t, fc.saved)
	require.Len(t, fc.saved.Pix, len(src.Pix))
	for i, v := range src.Pix {
		require.Equal(t, raster.Invert(v), fc.saved.Pix[i], "byte %d", i)
	}
}

func TestRunOrderIndependence(t *testing.T) {
	src := gradientBuffer(t, 17, 64, 4)

	outputs := make([]*raster.Buffer, 0, 3)
	for _, workers := range []int{1, 4, 16} {
		fc := &fakeCodec{buf: src}
		p, err := New(Options{Workers: workers, Codec: fc})
		require.NoError(t, err)

		_, err = p.Run("in.png")
		require.NoError(t, err)
		outputs = append(outputs, fc.saved)
	}

	// Any worker interleaving yields byte-identical results.
	assert.Equal(t, outputs[0].Pix, outputs[1].Pix)
	assert.Equal(t, outputs[0].Pix, outputs[2].Pix)
}

func TestRunShutdownTerminatesAllWorkers(t *testing.T) {
	const workers = 8
	m := monitoring.NewMetrics()
	fc := &fakeCodec{buf: gradientBuffer(t, 4, 4, 1)}

	p, err := New(Options{Workers: workers, Codec: fc, Metrics: m})
	require.NoError(t, err)

	_, err = p.Run("in.png")
	require.NoError(t, err)

	// Run joins the pool before returning, so no worker is still live
	// and the queue is fully drained.
	assert.Zero(t, gaugeValue(t, m, "rowpipe_workers_active"))
	assert.Zero(t, gaugeValue(t, m, "rowpipe_queue_depth"))
}

func TestRunLoadFailureStillReleasesWorkers(t *testing.T) {
	m := monitoring.NewMetrics()
	fc := &fakeCodec{loadErr: errors.New("corrupt header")}

	p, err := New(Options{Workers: 6, Codec: fc, Metrics: m})
	require.NoError(t, err)

	_, err = p.Run("missing.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)

	// No row work was ever enqueued and nothing was saved.
	assert.Zero(t, fc.saveCalls)
	assert.Zero(t, counterValue(t, m, "rowpipe_rows_processed_total"))

	// Every worker consumed its shutdown task and exited.
	assert.Zero(t, gaugeValue(t, m, "rowpipe_workers_active"))
	assert.Zero(t, gaugeValue(t, m, "rowpipe_queue_depth"))
}

func TestRunSaveFailure(t *testing.T) {
	fc := &fakeCodec{
		buf:     gradientBuffer(t, 3, 3, 3),
		saveErr: errors.New("disk full"),
	}

	p, err := New(Options{Workers: 2, Codec: fc})
	require.NoError(t, err)

	_, err = p.Run("in.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSave)
	assert.NotErrorIs(t, err, ErrLoad)
}

func TestRunCustomTransform(t *testing.T) {
	fc := &fakeCodec{buf: gradientBuffer(t, 2, 2, 1)}

	double := func(v byte) byte { return v * 2 }
	p, err := New(Options{Workers: 2, Codec: fc, Transform: double, Suffix: "_doubled"})
	require.NoError(t, err)

	res, err := p.Run("x.png")
	require.NoError(t, err)

	assert.Equal(t, "x_doubled.png", res.OutputPath)
	for i, v := range fc.buf.Pix {
		assert.Equal(t, v*2, fc.saved.Pix[i])
	}
}

func TestRunSequentialReuse(t *testing.T) {
	fc := &fakeCodec{buf: gradientBuffer(t, 4, 8, 3)}

	p, err := New(Options{Workers: 3, Codec: fc})
	require.NoError(t, err)

	_, err = p.Run("a.png")
	require.NoError(t, err)
	first := fc.saved

	_, err = p.Run("b.png")
	require.NoError(t, err)

	assert.Equal(t, 2, fc.loadCalls)
	assert.Equal(t, first.Pix, fc.saved.Pix)
}

func TestNewRejectsInvalidWorkerCount(t *testing.T) {
	_, err := New(Options{Workers: 0})
	assert.Error(t, err)

	_, err = New(Options{Workers: -2})
	assert.Error(t, err)
}

func TestRunSingleRowImage(t *testing.T) {
	fc := &fakeCodec{buf: gradientBuffer(t, 16, 1, 3)}

	p, err := New(Options{Workers: 4, Codec: fc})
	require.NoError(t, err)

	res, err := p.Run("strip.png")
	require.NoError(t, err)
	assert.Equal(t, 1, res.RowStats.Count)
}
