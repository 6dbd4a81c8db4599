package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/tossicat/internal/batch"
	"codeberg.org/snonux/tossicat/internal/cli"
	"codeberg.org/snonux/tossicat/internal/export"
	"codeberg.org/snonux/tossicat/internal/filter"
	"codeberg.org/snonux/tossicat/internal/sentence"
	"codeberg.org/snonux/tossicat/internal/tossi"
	"codeberg.org/snonux/tossicat/internal/verifier"
)

// Processor handles the main resolution logic
type Processor struct {
	flags    *cli.Flags
	verifier verifier.Verifier
	log      *slog.Logger
	out      io.Writer
	errOut   io.Writer
	results  []export.Result
}

// NewProcessor creates a new processor. A nil logger uses slog.Default.
func NewProcessor(flags *cli.Flags, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		flags:    flags,
		verifier: verifier.Verifier{MaxWordLength: flags.MaxLength},
		log:      logger,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// Results returns everything processed so far, in processing order.
func (p *Processor) Results() []export.Result {
	return p.results
}

// ProcessSingle resolves one word/particle pair and prints it.
func (p *Processor) ProcessSingle(word, particle string) (export.Result, error) {
	r := p.resolvePair(0, word, particle)
	p.results = append(p.results, r)

	if r.Status == export.StatusInvalid {
		return r, fmt.Errorf("invalid entry %s %s: %s", word, particle, r.Error)
	}
	fmt.Fprintln(p.out, p.format(r))
	return r, nil
}

// ProcessSentence fills a sentence template and prints it.
func (p *Processor) ProcessSentence(template string) (export.Result, error) {
	r := p.resolveSentence(0, template)
	p.results = append(p.results, r)

	if r.Status == export.StatusInvalid {
		return r, fmt.Errorf("invalid sentence: %s", r.Error)
	}
	fmt.Fprintln(p.out, r.Output)
	return r, nil
}

// ProcessBatch processes all entries of the batch file. Entries are resolved
// concurrently and printed in file order, followed by a summary.
func (p *Processor) ProcessBatch(ctx context.Context) (export.Summary, error) {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return export.Summary{}, err
	}
	p.log.Debug("read batch file", "path", p.flags.BatchFile, "entries", len(entries), "workers", p.flags.Workers)

	results := make([]export.Result, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.flags.Workers, 1))

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.resolve(entry)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return export.Summary{}, fmt.Errorf("batch processing interrupted: %w", err)
	}

	for _, r := range results {
		if r.Status == export.StatusInvalid {
			fmt.Fprintf(p.errOut, "Error on line %d: %s\n", r.Line, r.Error)
			continue
		}
		if r.Particle == "" {
			fmt.Fprintln(p.out, r.Output)
		} else {
			fmt.Fprintln(p.out, p.format(r))
		}
	}
	p.results = append(p.results, results...)

	summary := export.Summarize(results)
	p.printSummary(summary)
	return summary, nil
}

func (p *Processor) printSummary(s export.Summary) {
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total entries: %d\n", s.Total)
	fmt.Fprintf(p.out, "Resolved: %d\n", s.Resolved)
	fmt.Fprintf(p.out, "Passed through (unknown particle): %d\n", s.Passthrough)
	if s.Invalid > 0 {
		fmt.Fprintf(p.out, "Invalid: %d\n", s.Invalid)
	}
	fmt.Fprintf(p.out, "================================\n")
}

func (p *Processor) resolve(e batch.Entry) export.Result {
	if e.IsSentence() {
		return p.resolveSentence(e.Line, e.Sentence)
	}
	return p.resolvePair(e.Line, e.Word, e.Particle)
}

func (p *Processor) resolvePair(line int, word, particle string) export.Result {
	r := export.Result{Line: line, Word: word, Particle: particle}

	if p.flags.Strict {
		if err := p.verifier.Verify(word, particle); err != nil {
			r.Status = export.StatusInvalid
			r.Error = err.Error()
			return r
		}
	}

	tp := tossi.Classify(particle)
	r.Surface = tossi.Transform(word, tp)
	r.Output = word + r.Surface
	r.Kind = tp.Kind.String()
	r.Batchim = filter.Classify(word).String()
	r.Status = export.StatusResolved
	if tp.Kind == tossi.Other {
		r.Status = export.StatusPassthrough
	}

	p.log.Debug("resolved", "word", word, "particle", particle, "kind", r.Kind, "batchim", r.Batchim, "surface", r.Surface)
	return r
}

func (p *Processor) resolveSentence(line int, template string) export.Result {
	r := export.Result{Line: line, Word: template}

	placeholders, err := sentence.Placeholders(template)
	if err != nil {
		r.Status = export.StatusInvalid
		r.Error = err.Error()
		return r
	}

	r.Status = export.StatusResolved
	for _, ph := range placeholders {
		if p.flags.Strict {
			if err := p.verifier.Verify(ph.Word, ph.Particle); err != nil {
				r.Status = export.StatusInvalid
				r.Error = fmt.Sprintf("{%s, %s}: %v", ph.Word, ph.Particle, err)
				return r
			}
		}
		if tossi.Classify(ph.Particle).Kind == tossi.Other {
			r.Status = export.StatusPassthrough
		}
	}

	// Placeholders already parsed the template, so Modify cannot fail here.
	r.Output, _ = sentence.Modify(template)
	p.log.Debug("filled sentence", "template", template, "placeholders", len(placeholders))
	return r
}

// format renders a pair result in the selected output mode.
func (p *Processor) format(r export.Result) string {
	switch p.flags.Mode() {
	case cli.ModePick:
		return r.Surface
	case cli.ModeTransform:
		return r.Word + "\t" + r.Surface
	default:
		return r.Output
	}
}
