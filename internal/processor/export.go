package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/tossicat/internal"
	"codeberg.org/snonux/tossicat/internal/archive"
	"codeberg.org/snonux/tossicat/internal/cli"
	"codeberg.org/snonux/tossicat/internal/export"
	"codeberg.org/snonux/tossicat/internal/number"
	"codeberg.org/snonux/tossicat/internal/tossi"
	"codeberg.org/snonux/tossicat/internal/verifier"
)

// Export writes the collected results to the export path and returns the
// file written. source names the input in file names and run history.
func (p *Processor) Export(ctx context.Context, source string) (string, error) {
	if len(p.results) == 0 {
		return "", fmt.Errorf("nothing to export")
	}

	path, err := p.exportPath(source)
	if err != nil {
		return "", err
	}

	switch p.flags.ExportFormat {
	case cli.FormatSQLite:
		return path, p.exportSQLite(ctx, path, source)
	default:
		return path, p.exportCSV(path)
	}
}

// exportPath resolves a directory export path to a file inside it.
func (p *Processor) exportPath(source string) (string, error) {
	path := p.flags.ExportPath
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return path, nil
	}

	ext := ".csv"
	if p.flags.ExportFormat == cli.FormatSQLite {
		ext = ".db"
	}
	return filepath.Join(path, internal.ExportName(source, ext)), nil
}

func (p *Processor) exportCSV(path string) error {
	archived, err := archive.ArchiveFile(path)
	if err != nil {
		return fmt.Errorf("failed to archive previous export: %w", err)
	}
	if archived != "" {
		p.log.Info("archived previous export", "path", archived)
	}

	writer := export.NewCSVWriter(&export.CSVOptions{OutputPath: path, IncludeHeaders: true})
	writer.Add(p.results...)
	if err := writer.WriteCSV(); err != nil {
		return err
	}

	p.log.Debug("wrote CSV export", "path", path, "rows", len(p.results))
	return nil
}

func (p *Processor) exportSQLite(ctx context.Context, path, source string) error {
	store, err := export.OpenStore(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.SaveRun(ctx, source, p.results)
	if err != nil {
		return err
	}

	p.log.Info("stored run", "path", path, "run", runID, "results", len(p.results))
	return nil
}

// PrintHistory lists the runs stored in the export database.
func (p *Processor) PrintHistory(ctx context.Context) error {
	store, err := export.OpenStore(ctx, p.flags.ExportPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(p.out, "No runs stored in %s\n", p.flags.ExportPath)
		return nil
	}

	for _, run := range runs {
		results, err := store.Results(ctx, run.ID)
		if err != nil {
			return err
		}
		s := export.Summarize(results)
		fmt.Fprintf(p.out, "%s  %s  %-20s total=%d resolved=%d passthrough=%d invalid=%d\n",
			run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04:05"), run.Source,
			run.Total, s.Resolved, s.Passthrough, s.Invalid)
	}
	return nil
}

// ListParticles prints the particles accepted in strict mode with their kind.
func (p *Processor) ListParticles() {
	for _, particle := range verifier.Particles() {
		fmt.Fprintf(p.out, "%s\t%s\n", particle, tossi.Classify(particle).Kind)
	}
}

// ReadNumber prints the Korean reading of a string of ASCII digits.
func (p *Processor) ReadNumber(digits string) error {
	digits = strings.TrimSpace(digits)
	if digits == "" {
		return fmt.Errorf("no digits given")
	}
	for _, r := range digits {
		if !number.IsDigit(r) {
			return fmt.Errorf("not a number: %q", digits)
		}
	}

	if len(strings.TrimLeft(digits, "0")) > number.MaxDigits {
		p.log.Warn("number too long for place values, reading digit by digit", "digits", len(digits), "max", number.MaxDigits)
	}
	fmt.Fprintln(p.out, number.ToHangul(digits))
	return nil
}
