package ui

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/repolabel/internal/util"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// MPBProgressManager renders one bar per batch of README fetches.
type MPBProgressManager struct {
	p *mpb.Progress
}

func NewProgressManager() *MPBProgressManager {
	return NewProgressManagerTo(os.Stdout)
}

func NewProgressManagerTo(w io.Writer) *MPBProgressManager {
	return &MPBProgressManager{
		p: mpb.New(
			mpb.WithWidth(40),
			mpb.WithOutput(w),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
	}
}

// Close waits for every registered bar to finish rendering.
func (pm *MPBProgressManager) Close() {
	pm.p.Wait()
}

func (pm *MPBProgressManager) Register(prefix string) *ProgressHandle {
	h := &ProgressHandle{}

	h.bar = pm.p.New(0,
		mpb.BarStyle().Lbound("[").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(prefix, decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d repos", decor.WCSyncWidth),
			decor.Any(func(decor.Statistics) string {
				return " | " + util.Human(h.bytes.Load())
			}),
			decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 6}), " done"),
		),
	)

	return h
}

// ProgressHandle tracks README fetches for one batch of repos. A nil handle
// ignores every call.
type ProgressHandle struct {
	bar   *mpb.Bar
	total atomic.Int64
	bytes atomic.Int64
	final atomic.Bool
}

func (h *ProgressHandle) SetTotal(total int) {
	if h == nil || h.final.Load() {
		return
	}

	h.total.Store(int64(total))
	h.bar.SetTotal(int64(total), false)
}

// Update reports done repos and the README bytes read so far.
func (h *ProgressHandle) Update(done, total int, bytes int64) {
	if h == nil || h.final.Load() {
		return
	}

	if total > 0 {
		h.SetTotal(total)
	}

	h.bytes.Store(bytes)
	h.bar.SetCurrent(int64(done))
}

func (h *ProgressHandle) MarkDone() {
	if h == nil || h.final.Swap(true) {
		return
	}

	total := h.total.Load()
	h.bar.SetCurrent(total)
	h.bar.SetTotal(total, true)
}
