package transfer

import "github.com/iamdhiraj69/mongo-copy/pkg/models"

// Reporter receives transfer lifecycle events. Implementations format and
// route them; the engine itself never writes output.
type Reporter interface {
	// JobStarted is emitted once the collection plan has been resolved.
	JobStarted(plan []string, dryRun bool)

	// CollectionStarted is emitted with the point-in-time document count
	// before the first batch of the collection is read.
	CollectionStarted(collection string, total int64)

	// Progress is emitted after each batch is written.
	Progress(collection string, processed, total int64)

	// CollectionDone is emitted when a collection finished streaming.
	CollectionDone(collection string, processed int64)

	// CollectionSkipped is emitted when a collection is passed over without
	// any I/O, for a dry run or a missing import file.
	CollectionSkipped(collection, reason string)

	// JobDone is emitted when the whole plan completed without error.
	JobDone(report models.TransferReport)

	// JobFailed is emitted before the job aborts. Collection is empty when
	// the failure happened outside a per-collection phase.
	JobFailed(phase, collection string, err error)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) JobStarted([]string, bool)        {}
func (NopReporter) CollectionStarted(string, int64)  {}
func (NopReporter) Progress(string, int64, int64)    {}
func (NopReporter) CollectionDone(string, int64)     {}
func (NopReporter) CollectionSkipped(string, string) {}
func (NopReporter) JobDone(models.TransferReport)    {}
func (NopReporter) JobFailed(string, string, error)  {}
