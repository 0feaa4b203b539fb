// Package report serializes match run results to YAML so operators can
// review failures and re-run only the citations that need fixing.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/simssa-lab/refmatch/internal/match"
	"gopkg.in/yaml.v3"
)

// Config records the inputs a report was produced from.
type Config struct {
	CitationExport string `yaml:"citationexport"`
	Bibliography   string `yaml:"bibliography"`
	Timestamp      string `yaml:"timestamp"`
}

// Result is one citation's outcome in the report.
type Result struct {
	Index   int    `yaml:"index"`
	Status  string `yaml:"status"`
	EntryID string `yaml:"entryid,omitempty"`
	Author  string `yaml:"author,omitempty"`
	Year    string `yaml:"year,omitempty"`
	Title   string `yaml:"title,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

// Summary counts outcomes per class.
type Summary struct {
	Total      int `yaml:"total"`
	Matched    int `yaml:"matched"`
	Extraction int `yaml:"extraction_failures"`
	NoMatch    int `yaml:"no_match_failures"`
	Ambiguous  int `yaml:"ambiguous_failures"`
}

// Report is the complete YAML document for one match run.
type Report struct {
	Config  Config   `yaml:"config"`
	Summary Summary  `yaml:"summary"`
	Results []Result `yaml:"results"`
}

// Build assembles a Report from a match run.
func Build(citationExport, bibliography string, outcomes []match.Outcome) Report {
	r := Report{
		Config: Config{
			CitationExport: citationExport,
			Bibliography:   bibliography,
			Timestamp:      time.Now().Format("2006-01-02_15-04-05"),
		},
		Results: make([]Result, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		result := Result{
			Index:  o.Index,
			Author: o.Record.FirstAuthor,
			Year:   o.Record.Year,
			Title:  o.Record.Title,
		}

		r.Summary.Total++
		if o.Matched() {
			r.Summary.Matched++
			result.Status = "matched"
			result.EntryID = o.Entry.ID
		} else {
			result.Status = o.FailureKind()
			result.Error = o.Err.Error()
			switch o.FailureKind() {
			case "extraction":
				r.Summary.Extraction++
			case "no_match":
				r.Summary.NoMatch++
			case "ambiguous":
				r.Summary.Ambiguous++
			}
		}

		r.Results = append(r.Results, result)
	}

	return r
}

// Save writes the report to path as YAML.
func Save(r Report, path string) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
