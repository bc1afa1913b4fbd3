// Package report contains the production Reporter: transfer lifecycle events
// rendered through a zap logger.
package report

import (
	"go.uber.org/zap"

	"github.com/iamdhiraj69/mongo-copy/pkg/models"
)

type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (r *Logger) JobStarted(plan []string, dryRun bool) {
	r.log.Info("transfer started",
		zap.Strings("collections", plan),
		zap.Bool("dryRun", dryRun))
}

func (r *Logger) CollectionStarted(collection string, total int64) {
	r.log.Info("collection started",
		zap.String("collection", collection),
		zap.Int64("totalDocs", total))
}

func (r *Logger) Progress(collection string, processed, total int64) {
	r.log.Info("progress",
		zap.String("collection", collection),
		zap.Int64("processed", processed),
		zap.Int64("total", total))
}

func (r *Logger) CollectionDone(collection string, processed int64) {
	r.log.Info("collection done",
		zap.String("collection", collection),
		zap.Int64("processed", processed))
}

func (r *Logger) CollectionSkipped(collection, reason string) {
	r.log.Info("collection skipped",
		zap.String("collection", collection),
		zap.String("reason", reason))
}

func (r *Logger) JobDone(report models.TransferReport) {
	r.log.Info("transfer completed",
		zap.Int("collections", len(report.CollectionResults)),
		zap.Int64("totalDocuments", report.TotalDocuments))
}

func (r *Logger) JobFailed(phase, collection string, err error) {
	r.log.Error("transfer aborted",
		zap.String("phase", phase),
		zap.String("collection", collection),
		zap.Error(err))
}
