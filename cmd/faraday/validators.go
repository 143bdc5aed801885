package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"voltaic-hq/faraday/pkg/cli"
	"voltaic-hq/faraday/pkg/validator"
)

var validatorsFlags struct {
	category string
	format   string
}

var validatorsCmd = &cobra.Command{
	Use:   "validators",
	Short: "List registered validators",
	Long: `List the validators registered in the default registry, with their
categories, in execution order.

Examples:
  # All validators
  faraday validators

  # Only one category
  faraday validators --category core

  # JSON output
  faraday validators --format json`,
	RunE: listValidators,
}

func init() {
	rootCmd.AddCommand(validatorsCmd)

	validatorsCmd.Flags().StringVar(&validatorsFlags.category, "category", "", "only list validators in this category")
	validatorsCmd.Flags().StringVar(&validatorsFlags.format, "format", "text", "output format: text, json")
}

// ValidatorInfo describes one registered validator.
type ValidatorInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (i ValidatorInfo) String() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Category)
}

func listValidators(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(validatorsFlags.format)
	if err != nil {
		return err
	}

	reg := validator.NewDefaultRegistry()

	var infos []ValidatorInfo
	for _, v := range reg.All() {
		if validatorsFlags.category != "" && v.Category() != validator.Category(validatorsFlags.category) {
			continue
		}
		infos = append(infos, ValidatorInfo{
			Name:     v.Name(),
			Category: string(v.Category()),
		})
	}

	return renderValidators(os.Stdout, infos, format)
}

func renderValidators(w io.Writer, infos []ValidatorInfo, format cli.OutputFormat) error {
	formatter := cli.NewFormatter(format)

	if format == cli.FormatJSON {
		return formatter.FormatTo(w, infos)
	}

	for _, info := range infos {
		if err := formatter.FormatTo(w, info); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "%d validator(s)\n", len(infos))
	return nil
}
