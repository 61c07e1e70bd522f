package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docstruct/internal/loader"
	"github.com/dgallion1/docstruct/internal/processor"
)

// Worker processes a single document job: load to lines, run the
// structure engine, attach the result.
type Worker struct {
	proc  *processor.Processor
	stats *processor.EngineStats
	log   *slog.Logger

	pdfFallback bool
}

func NewWorker(proc *processor.Processor, stats *processor.EngineStats, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		proc:        proc,
		stats:       stats,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full structuring pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 1: Load
	job.SetStatus(StatusLoading, "loading")
	ld, err := loader.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "loading")
		return
	}
	if pdf, ok := ld.(*loader.PDFLoader); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	data := job.FileData()
	lines, err := ld.Load(bytes.NewReader(data), job.Filename)
	if err != nil {
		log.Error("load failed", "error", err)
		job.AddError(fmt.Sprintf("load: %s", err))
		job.SetStatus(StatusFailed, "loading")
		return
	}
	job.ContentHash = ContentHashHex(data)

	if len(lines) == 0 {
		job.AddError("no extractable content")
		job.SetStatus(StatusFailed, "loading")
		return
	}

	// Phase 2: Classify and structure. The engine builds all per-document
	// state itself, so one Processor serves every worker.
	job.SetStatus(StatusClassifying, "classifying")
	start := time.Now()
	res := w.proc.Process(lines)
	w.stats.Record(time.Since(start).Milliseconds())

	job.SetStatus(StatusStructuring, "structuring")
	job.SetResult(res)

	log.Info("structuring complete",
		"lines", res.Stats.Lines,
		"headings", res.Stats.Headings,
		"renumbered", res.Stats.Renumbered,
		"caption_issues", len(res.Issues),
		"duration_ms", time.Since(start).Milliseconds())

	job.SetStatus(StatusCompleted, "done")
}
