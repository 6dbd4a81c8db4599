// Package export writes resolved particle results to CSV files or a SQLite
// history database.
package export

import "github.com/samber/lo"

// Status describes how an entry was handled.
type Status string

const (
	// StatusResolved means the particle was recognized and a form chosen.
	StatusResolved Status = "resolved"
	// StatusPassthrough means the particle was not recognized and was appended unchanged.
	StatusPassthrough Status = "passthrough"
	// StatusInvalid means verification or template parsing failed.
	StatusInvalid Status = "invalid"
)

// Result is one processed entry.
type Result struct {
	Line     int
	Word     string
	Particle string
	Surface  string // chosen particle form
	Output   string // word+surface, or the modified sentence
	Kind     string
	Batchim  string
	Status   Status
	Error    string
}

// Summary counts results by status.
type Summary struct {
	Total       int
	Resolved    int
	Passthrough int
	Invalid     int
}

// Summarize counts the results by status.
func Summarize(results []Result) Summary {
	counts := lo.CountValuesBy(results, func(r Result) Status { return r.Status })
	return Summary{
		Total:       len(results),
		Resolved:    counts[StatusResolved],
		Passthrough: counts[StatusPassthrough],
		Invalid:     counts[StatusInvalid],
	}
}

var csvHeaders = []string{"Line", "Word", "Particle", "Surface", "Output", "Kind", "Batchim", "Status", "Error"}
