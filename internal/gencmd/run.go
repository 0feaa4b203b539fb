// Package gencmd implements the refmatch CLI commands on top of the
// loading, matching, and record generation packages.
package gencmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/simssa-lab/refmatch/internal/bib"
	"github.com/simssa-lab/refmatch/internal/htmlref"
	"github.com/simssa-lab/refmatch/internal/match"
	"github.com/simssa-lab/refmatch/internal/report"
	"github.com/simssa-lab/refmatch/internal/statamic"
)

// defaultSiteAuthor is recorded in generated front matter when
// REFMATCH_AUTHOR is unset.
const defaultSiteAuthor = "ehopkins"

func executeMatch(htmlPath, bibPath, reportPath string) error {
	outcomes, err := runPipeline(htmlPath, bibPath)
	if err != nil {
		return err
	}

	printSummary(outcomes)

	if reportPath != "" {
		r := report.Build(htmlPath, bibPath, outcomes)
		if err := report.Save(r, reportPath); err != nil {
			return err
		}
		fmt.Printf("\nReport saved to: %s\n", reportPath)
	}

	return nil
}

func executeGenerate(kind statamic.Kind, htmlPath, bibPath, outputDir string) error {
	outcomes, err := runPipeline(htmlPath, bibPath)
	if err != nil {
		return err
	}

	siteAuthor := os.Getenv("REFMATCH_AUTHOR")
	if siteAuthor == "" {
		siteAuthor = defaultSiteAuthor
	}

	generator := statamic.NewGenerator(kind, siteAuthor, outputDir)

	written := 0
	for _, outcome := range outcomes {
		if !outcome.Matched() {
			continue
		}
		path, err := generator.Write(outcome)
		if err != nil {
			return fmt.Errorf("failed to generate record for %s: %w", outcome.Entry.ID, err)
		}
		slog.Info("generated record", "id", outcome.Entry.ID, "path", path)
		written++
	}

	printSummary(outcomes)
	fmt.Printf("\n%d record(s) written to: %s\n", written, outputDir)

	return nil
}

func runPipeline(htmlPath, bibPath string) ([]match.Outcome, error) {
	slog.Info("loading citation export", "path", htmlPath)
	citations, err := htmlref.LoadFile(htmlPath)
	if err != nil {
		return nil, err
	}

	slog.Info("loading bibliography", "path", bibPath)
	entries, err := bib.LoadFile(bibPath)
	if err != nil {
		return nil, err
	}

	slog.Info("matching citations", "citations", len(citations), "entries", len(entries))

	return match.Run(citations, entries), nil
}

func printSummary(outcomes []match.Outcome) {
	matched := 0
	failures := make([]match.Outcome, 0)
	for _, o := range outcomes {
		if o.Matched() {
			matched++
		} else {
			failures = append(failures, o)
		}
	}

	fmt.Println("\n========================================")
	fmt.Println("Match Summary")
	fmt.Println("========================================")
	fmt.Printf("Total Citations:    %d\n", len(outcomes))
	fmt.Printf("Matched:            %d\n", matched)
	fmt.Printf("Failed:             %d\n", len(failures))

	if len(failures) > 0 {
		fmt.Println("\nFailures (manual review needed):")
		for _, o := range failures {
			label := o.Record.FirstAuthor
			if label == "" {
				label = "(extraction failed)"
			}
			fmt.Printf("  [%d] %s %s: %s (%v)\n", o.Index, label, o.Record.Year, o.FailureKind(), o.Err)
		}
	}
	fmt.Println("========================================")
}
