package main

import (
	"fmt"
	"os"

	"github.com/ngtax/nta-calculator/internal/calculation"
	"github.com/ngtax/nta-calculator/internal/config"
	"github.com/ngtax/nta-calculator/internal/domain"
	"github.com/ngtax/nta-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// Global flags
	verbose      bool
	statutesFile string

	// calculate flags
	category           string
	grossIncome        string
	deductions         string
	capitalGains       string
	withholdingCredits string
	smallCompany       bool
	profitBeforeTax    string
	format             string
	outputFile         string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ntacalc",
	Short: "Nigeria Tax Act 2025 statutory tax calculator",
	Long: `ntacalc computes statutory tax liabilities under the Nigeria Tax Act 2025.

It covers progressive Personal Income Tax, capital gains, Company Income
Tax with the small-company exemption, the Development Levy and the
minimum-effective-tax top-up, and breaks every liability into line items
tied to statutory citations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute a tax assessment for an individual or company",
	RunE: func(cmd *cobra.Command, args []string) error {
		statutes, err := loadStatutes()
		if err != nil {
			return err
		}

		cat, err := domain.ParseCategory(category)
		if err != nil {
			return err
		}

		inputs, err := parseInputs()
		if err != nil {
			return err
		}

		engine := calculation.NewEngine(statutes)
		engine.SetLogger(calculation.NewZapLogger(logger))

		result, err := engine.Compute(cat, inputs)
		if err != nil {
			return err
		}

		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unknown output format %q", format)
		}
		assessment := output.NewAssessment(statutes.TaxYear, result)
		return output.WriteFormatted(f, assessment, outputFile)
	},
}

var statutesCmd = &cobra.Command{
	Use:   "statutes",
	Short: "Print the statutory rate table in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		statutes, err := loadStatutes()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(statutes)
		if err != nil {
			return fmt.Errorf("failed to render statute table: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [file]",
	Short: "Write the default statute table as a YAML starting point",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "statutes.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		data, err := yaml.Marshal(config.DefaultStatutes())
		if err != nil {
			return fmt.Errorf("failed to render statute table: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		logger.Info("wrote example statute table", zap.String("file", filename))
		return nil
	},
}

// loadStatutes returns the default NTA 2025 table, or a validated
// replacement table when --statutes names a file. A table that fails
// validation is fatal before any computation is served.
func loadStatutes() (*domain.Statutes, error) {
	if statutesFile == "" {
		return config.DefaultStatutes(), nil
	}
	return config.NewStatuteParser().LoadFromFile(statutesFile)
}

// parseInputs converts the flag strings into exact decimal inputs.
// Parsing is strict: a malformed amount is an error, never a zero.
func parseInputs() (domain.CalculatorInputs, error) {
	var inputs domain.CalculatorInputs
	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"gross-income", grossIncome, &inputs.GrossIncome},
		{"deductions", deductions, &inputs.Deductions},
		{"capital-gains", capitalGains, &inputs.CapitalGains},
		{"withholding-credits", withholdingCredits, &inputs.WithholdingCredits},
		{"profit-before-tax", profitBeforeTax, &inputs.ProfitBeforeTax},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return domain.CalculatorInputs{}, fmt.Errorf("invalid --%s value %q: %w", f.name, f.value, err)
		}
		*f.dst = d
	}
	inputs.IsSmallCompany = smallCompany
	return inputs, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&statutesFile, "statutes", "", "YAML statute table overriding the built-in NTA 2025 schedule")

	calculateCmd.Flags().StringVarP(&category, "category", "c", "", "taxpayer category: Individual or Company")
	calculateCmd.Flags().StringVar(&grossIncome, "gross-income", "0", "gross income (individuals)")
	calculateCmd.Flags().StringVar(&deductions, "deductions", "0", "allowable deductions (individuals)")
	calculateCmd.Flags().StringVar(&capitalGains, "capital-gains", "0", "chargeable capital gains")
	calculateCmd.Flags().StringVar(&withholdingCredits, "withholding-credits", "0", "withholding tax already collected")
	calculateCmd.Flags().BoolVar(&smallCompany, "small-company", false, "company qualifies for the small-company CIT exemption")
	calculateCmd.Flags().StringVar(&profitBeforeTax, "profit-before-tax", "0", "profit before tax (companies)")
	calculateCmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json or csv")
	calculateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	_ = calculateCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(statutesCmd)
	rootCmd.AddCommand(exampleConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
