package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSVOptions configures the CSV export
type CSVOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultCSVOptions returns sensible defaults
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		OutputPath:     "tossicat.csv",
		IncludeHeaders: true,
	}
}

// CSVWriter collects results and writes them as CSV
type CSVWriter struct {
	options *CSVOptions
	results []Result
}

// NewCSVWriter creates a new CSV writer
func NewCSVWriter(options *CSVOptions) *CSVWriter {
	if options == nil {
		options = DefaultCSVOptions()
	}
	return &CSVWriter{
		options: options,
		results: make([]Result, 0),
	}
}

// Add appends results to the collection
func (w *CSVWriter) Add(results ...Result) {
	w.results = append(w.results, results...)
}

// Results returns the collected results
func (w *CSVWriter) Results() []Result {
	return w.results
}

// WriteCSV creates the CSV file
func (w *CSVWriter) WriteCSV() error {
	file, err := os.Create(w.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if w.options.IncludeHeaders {
		if err := writer.Write(csvHeaders); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, r := range w.results {
		if err := writer.Write(record(r)); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

func record(r Result) []string {
	return []string{
		strconv.Itoa(r.Line),
		r.Word,
		r.Particle,
		r.Surface,
		r.Output,
		r.Kind,
		r.Batchim,
		string(r.Status),
		r.Error,
	}
}

// Stats returns statistics about the collected results
func (w *CSVWriter) Stats() Summary {
	return Summarize(w.results)
}
