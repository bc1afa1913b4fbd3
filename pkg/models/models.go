package models

// Mode selects the write target for a transfer run.
type Mode string

const (
	// ModeLive inserts documents into the destination deployment.
	ModeLive Mode = "live"
	// ModeExportJSON writes one JSON file per collection to the output directory.
	ModeExportJSON Mode = "export-json"
	// ModeImportJSON inserts previously exported JSON files into the destination.
	ModeImportJSON Mode = "import-json"
)

// TransferJob describes one transfer run. It is built once from the resolved
// configuration and never modified afterwards.
type TransferJob struct {
	Collections []string `json:"collections,omitempty"` // empty means all source collections
	BatchSize   int      `json:"batchSize"`
	Mode        Mode     `json:"mode"`
	DryRun      bool     `json:"dryRun,omitempty"`
	OutputDir   string   `json:"outputDir,omitempty"`
}

// CollectionResult is the per-collection bookkeeping for a transfer.
// TotalDocs is a point-in-time count taken before the first batch is read;
// writes hitting the source mid-transfer can leave ProcessedDocs above or
// below it, which is accepted rather than corrected.
type CollectionResult struct {
	CollectionName string `json:"collectionName"`
	TotalDocs      int64  `json:"totalDocs"`
	ProcessedDocs  int64  `json:"processedDocs"`
	Skipped        bool   `json:"skipped,omitempty"` // dry run, or import file absent
}

// TransferReport is the overall outcome of a run.
type TransferReport struct {
	CollectionResults []CollectionResult `json:"collectionResults"`
	TotalDocuments    int64              `json:"totalDocuments"`
}
