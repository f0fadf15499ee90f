package domain

import "time"

// InstallPlan is the advisory outcome of a dry run.
type InstallPlan struct {
	Collisions int `json:"collisions"`
}

// InstallResult reports what happened to one requested snippet.
type InstallResult struct {
	Name       string   `json:"name"`
	Written    int      `json:"written"`
	Skipped    int      `json:"skipped"`
	Collisions []string `json:"collisions"`
}

// NewInstallResult returns a zeroed result with a non-nil collision list.
func NewInstallResult(name string) InstallResult {
	return InstallResult{Name: name, Collisions: []string{}}
}

// RecordWrite counts a written file.
func (r *InstallResult) RecordWrite() {
	r.Written++
}

// RecordSkip counts a skipped file and remembers its output path.
func (r *InstallResult) RecordSkip(outRel string) {
	r.Skipped++
	r.Collisions = append(r.Collisions, outRel)
}

// InstallRun is one install invocation as kept in the journal.
type InstallRun struct {
	ID        int64
	StartedAt time.Time
	Registry  string
	DestRoot  string
	Overwrite bool
	Results   []InstallResult
	Error     string
}

// Totals sums written and skipped files across all results.
func (r InstallRun) Totals() (written, skipped int) {
	for _, res := range r.Results {
		written += res.Written
		skipped += res.Skipped
	}
	return written, skipped
}
