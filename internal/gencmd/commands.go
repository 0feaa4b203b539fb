package gencmd

import (
	"fmt"
	"os"

	"github.com/simssa-lab/refmatch/internal/statamic"
	"github.com/spf13/cobra"
)

// NewMatchCmd creates the match command: run the matching pipeline and
// report outcomes without writing content records.
func NewMatchCmd() *cobra.Command {
	var htmlPath string
	var bibPath string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a citation export against a bibliography",
		Long: `Match every citation in an HTML citation export against a BibTeX
bibliography and report the outcome per citation.

Extraction failures, citations with no matching entry, and ambiguous matches
are listed individually so the source data can be fixed and the run repeated.`,
		Example: `  # Summarize matches on stdout
  refmatch match --html publications.html --bib publications.bib

  # Also write a per-citation YAML report
  refmatch match --html publications.html --bib publications.bib --report results.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(htmlPath, bibPath); err != nil {
				return err
			}
			return executeMatch(htmlPath, bibPath, reportPath)
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "Path to the HTML citation export (required)")
	cmd.Flags().StringVar(&bibPath, "bib", "", "Path to the BibTeX bibliography (required)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML report of per-citation outcomes")

	_ = cmd.MarkFlagRequired("html")
	_ = cmd.MarkFlagRequired("bib")

	return cmd
}

// NewGenerateCmd creates the generate command: match and write one
// markdown content record per matched citation.
func NewGenerateCmd() *cobra.Command {
	var htmlPath string
	var bibPath string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "generate [presentations|publications|media]",
		Short: "Generate content record markdown files from matched citations",
		Long: `Match every citation in an HTML citation export against a BibTeX
bibliography and write one markdown content record per matched pair.

The record kind decides the front matter template. The site author recorded in
each file comes from the REFMATCH_AUTHOR environment variable (a .env file in
the working directory is honored).`,
		Example: `  # Generate presentation records
  refmatch generate presentations --html presentations.html --bib presentations.bib --output ./content/

  # Generate publication records
  refmatch generate publications --html publications.html --bib publications.bib --output ./content/`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"presentations", "publications", "media"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := statamic.ParseKind(singular(args[0]))
			if err != nil {
				return err
			}
			if err := checkInputs(htmlPath, bibPath); err != nil {
				return err
			}
			return executeGenerate(kind, htmlPath, bibPath, outputDir)
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "Path to the HTML citation export (required)")
	cmd.Flags().StringVar(&bibPath, "bib", "", "Path to the BibTeX bibliography (required)")
	cmd.Flags().StringVar(&outputDir, "output", "./output", "Directory for generated markdown files")

	_ = cmd.MarkFlagRequired("html")
	_ = cmd.MarkFlagRequired("bib")

	return cmd
}

func checkInputs(htmlPath, bibPath string) error {
	if _, err := os.Stat(htmlPath); os.IsNotExist(err) {
		return fmt.Errorf("citation export not found: %s", htmlPath)
	}
	if _, err := os.Stat(bibPath); os.IsNotExist(err) {
		return fmt.Errorf("bibliography not found: %s", bibPath)
	}
	return nil
}

// singular maps the plural CLI argument onto the record kind name. Media
// is already uninflected.
func singular(arg string) string {
	switch arg {
	case "presentations":
		return "presentation"
	case "publications":
		return "publication"
	default:
		return arg
	}
}
