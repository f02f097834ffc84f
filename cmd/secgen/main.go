package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/mmrzaf/secgen/internal/config"
	"github.com/mmrzaf/secgen/internal/domain"
	"github.com/mmrzaf/secgen/internal/export"
	"github.com/mmrzaf/secgen/internal/generators"
	"github.com/mmrzaf/secgen/internal/logging"
	"github.com/mmrzaf/secgen/internal/registry"
	"github.com/mmrzaf/secgen/internal/schema"
	"github.com/spf13/cobra"
)

var logLevel string

// mode presets for the penetration injection probability.
var modeProbabilities = map[string]float64{
	"standard":      0.4,
	"vulnerability": 0.7,
	"penetration":   1.0,
}

var sqlTables = map[string]string{
	domain.KindUser:          "users",
	domain.KindVulnerability: "vulnerabilities",
	domain.KindSensitiveData: "sensitive_records",
	domain.KindPenetration:   "penetration_tests",
}

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "secgen",
		Short: "Security-test fixture generator",
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(listGeneratorsCmd(cfg))
	rootCmd.AddCommand(testCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		kind         string
		format       string
		rows         int
		output       string
		mode         string
		locale       string
		mask         bool
		templatePath string
		seed         int64
		hasSeed      bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fixture data in the chosen format",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)

			probability, ok := modeProbabilities[strings.ToLower(mode)]
			if !ok {
				fmt.Printf("Unknown mode: %s\n", mode)
				return nil
			}

			var tpl *domain.Template
			if templatePath != "" {
				loaded, err := schema.LoadTemplate(templatePath)
				if err != nil {
					fmt.Printf("Template error: %v\n", err)
					return nil
				}
				tpl = loaded
				fmt.Printf("Using template: %s\n", tpl.Name)
			}

			opts := generators.Options{
				Locale:               locale,
				InjectionProbability: &probability,
				Logger:               logger,
			}
			if hasSeed {
				opts.Seed = &seed
			}

			gen, err := registry.Default().Create(kind, opts)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return nil
			}

			fmt.Printf("Generating %d rows of type %q...\n", rows, kind)
			batch, stats := generators.GenerateBatch(gen, rows, logger)
			if stats.FailedRows > 0 || stats.InvalidRows > 0 {
				fmt.Printf("Dropped rows: %d failed, %d invalid\n", stats.FailedRows, stats.InvalidRows)
			}
			if len(batch) == 0 {
				fmt.Println("No rows generated")
				return nil
			}

			exportOpts := export.Options{
				Format: strings.ToLower(format),
				Output: output,
				Mask:   mask,
				Table:  sqlTables[kind],
			}
			if tpl != nil {
				batch = schema.FilterAll(batch, tpl)
				exportOpts.Columns = tpl.Fields
			}

			if err := export.Export(batch, exportOpts); err != nil {
				fmt.Printf("Export error: %v\n", err)
				return nil
			}

			if output != "" {
				fmt.Printf("Wrote %d rows to %s\n", len(batch), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", domain.KindUser, "Generator type (user|vulnerability|sensitive_data|penetration)")
	cmd.Flags().StringVarP(&format, "format", "f", cfg.DefaultFormat, "Output format (json|csv|sql)")
	cmd.Flags().IntVarP(&rows, "rows", "r", cfg.DefaultRows, "Number of rows to generate")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default stdout)")
	cmd.Flags().StringVar(&mode, "mode", "standard", "Generation mode (standard|vulnerability|penetration)")
	cmd.Flags().StringVar(&locale, "locale", cfg.Locale, "Locale for generated values")
	cmd.Flags().BoolVar(&mask, "mask", false, "Mask sensitive values on export")
	cmd.Flags().StringVarP(&templatePath, "template", "T", "", "Path to a JSON/YAML field template")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")
	cmd.Flags().Lookup("seed").NoOptDefVal = "0"
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}

	return cmd
}

func listGeneratorsCmd(cfg *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list-generators",
		Short: "List available generator types",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			opts := generators.Options{Locale: cfg.Locale, Logger: logging.NewLogger(logLevel)}

			if format == "json" {
				out := make(map[string][]string)
				for _, kind := range reg.Kinds() {
					gen, err := reg.Create(kind, opts)
					if err != nil {
						continue
					}
					out[kind] = gen.SupportedFields()
				}
				data, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tFIELDS")
			for _, kind := range reg.Kinds() {
				gen, err := reg.Create(kind, opts)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\n", kind, len(gen.SupportedFields()))
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	return cmd
}

func testCmd(cfg *config.Config) *cobra.Command {
	var (
		kind string
		rows int
	)

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Generate a few sample rows and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logLevel)
			gen, err := registry.Default().Create(kind, generators.Options{Locale: cfg.Locale, Logger: logger})
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return nil
			}

			batch, _ := generators.GenerateBatch(gen, rows, logger)
			for i, row := range batch {
				fmt.Printf("\nRow %d:\n", i+1)
				keys := make([]string, 0, len(row))
				for key := range row {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Printf("  %s: %v\n", key, row[key])
				}
			}
			fmt.Printf("\nGenerated %d rows\n", len(batch))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Generator type to test")
	cmd.Flags().IntVarP(&rows, "rows", "r", 3, "Number of sample rows")
	cmd.MarkFlagRequired("type")
	return cmd
}
