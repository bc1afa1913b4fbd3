package transfer

import (
	"context"

	"github.com/iamdhiraj69/mongo-copy/pkg/models"
)

// Orchestrator drives one transfer job from plan resolution through
// guaranteed handle cleanup.
type Orchestrator struct {
	source   Store
	dest     Store // nil when the mode never writes to a store
	job      models.TransferJob
	reporter Reporter
	sink     Sink
	importer *Importer
}

// NewOrchestrator wires a job to its store handles. The sink is selected once
// from the job's mode. A nil reporter discards all events.
func NewOrchestrator(source, dest Store, job models.TransferJob, reporter Reporter) *Orchestrator {
	if reporter == nil {
		reporter = NopReporter{}
	}
	o := &Orchestrator{source: source, dest: dest, job: job, reporter: reporter}
	switch job.Mode {
	case models.ModeExportJSON:
		o.sink = NewExportSink(job.OutputDir)
	case models.ModeImportJSON:
		o.importer = NewImporter(dest, job.OutputDir, job.BatchSize)
	default:
		o.sink = NewLiveSink(dest)
	}
	return o
}

// Run executes the job: resolve the plan, then process each collection in
// order, one batch in flight at a time. The first failure aborts the whole
// job; collections after the failing one are left untouched. Both handles
// are closed exactly once before Run returns, on every exit path.
func (o *Orchestrator) Run(ctx context.Context) (models.TransferReport, error) {
	defer o.closeAll(ctx)

	var report models.TransferReport
	plan, err := ResolvePlan(ctx, o.source, o.job.Collections)
	if err != nil {
		o.reporter.JobFailed("enumerate", "", err)
		return report, err
	}
	o.reporter.JobStarted(plan, o.job.DryRun)

	for _, collection := range plan {
		if o.job.DryRun {
			// Log-only: no cursor is opened, no sink is touched.
			o.reporter.CollectionSkipped(collection, "dry run")
			report.CollectionResults = append(report.CollectionResults, models.CollectionResult{
				CollectionName: collection,
				Skipped:        true,
			})
			continue
		}

		result, err := o.transferOne(ctx, collection)
		report.CollectionResults = append(report.CollectionResults, result)
		report.TotalDocuments += result.ProcessedDocs
		if err != nil {
			phase := "stream"
			if o.job.Mode == models.ModeImportJSON {
				phase = "import"
			}
			o.reporter.JobFailed(phase, collection, err)
			return report, err
		}
	}

	o.reporter.JobDone(report)
	return report, nil
}

func (o *Orchestrator) transferOne(ctx context.Context, collection string) (models.CollectionResult, error) {
	result := models.CollectionResult{CollectionName: collection}

	if o.job.Mode == models.ModeImportJSON {
		inserted, found, err := o.importer.Import(ctx, collection)
		result.ProcessedDocs = inserted
		if err != nil {
			return result, err
		}
		if !found {
			result.Skipped = true
			o.reporter.CollectionSkipped(collection, "no export file")
			return result, nil
		}
		o.reporter.CollectionDone(collection, inserted)
		return result, nil
	}

	total, err := o.source.Count(ctx, collection)
	if err != nil {
		return result, &BatchReadError{Collection: collection, Err: err}
	}
	result.TotalDocs = total
	o.reporter.CollectionStarted(collection, total)

	cursor, err := o.source.Scan(ctx, collection, o.job.BatchSize)
	if err != nil {
		return result, &BatchReadError{Collection: collection, Err: err}
	}
	defer cursor.Close(ctx)

	if err := o.sink.Begin(ctx, collection); err != nil {
		return result, err
	}
	reader := newBatchReader(cursor, o.job.BatchSize)
	for reader.Next(ctx) {
		batch := reader.Batch()
		if err := o.sink.Write(ctx, batch); err != nil {
			return result, err
		}
		result.ProcessedDocs += int64(len(batch))
		o.reporter.Progress(collection, result.ProcessedDocs, total)
	}
	if err := reader.Err(); err != nil {
		return result, &BatchReadError{Collection: collection, Err: err}
	}
	if err := o.sink.End(ctx); err != nil {
		return result, err
	}

	o.reporter.CollectionDone(collection, result.ProcessedDocs)
	return result, nil
}

// closeAll closes both handles best-effort. Close failures happen during
// cleanup and are never escalated. A handle may be nil, and source and
// destination may be the same store, which is closed once.
func (o *Orchestrator) closeAll(ctx context.Context) {
	if o.source != nil {
		_ = o.source.Close(ctx)
	}
	if o.dest != nil && o.dest != o.source {
		_ = o.dest.Close(ctx)
	}
}
