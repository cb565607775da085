package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	truthtable "github.com/nbugaenco/truthtable-go"
)

var (
	cfgFile    string
	noColor    bool
	resultOnly bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "truthtable [expression]",
	Short: "Generate truth tables for propositional-logic expressions",
	Long: `truthtable evaluates a propositional-logic expression under every
assignment of its variables and prints the full derivation as a table:
one column per variable and per intermediate sub-expression.

Operators (tightest-binding first):
  !   NOT            &   AND           /   NAND
  |   OR             ^   XOR           \   NOR
  ->  implication    <-> equivalence

Variables are single uppercase letters. Run without an argument for an
interactive prompt.`,
	Example: `  truthtable "(A -> B) & (!B | A)"
  truthtable --result-only "A ^ B"
  truthtable`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file for table presentation")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&resultOnly, "result-only", false, "show only variable columns and the final result")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := renderOptions()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return runInteractive(opts, logger)
	}

	out, err := generate(args[0], opts, logger)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

func renderOptions() (truthtable.RenderOptions, error) {
	cfg, err := truthtable.LoadConfig(cfgFile)
	if err != nil {
		return truthtable.RenderOptions{}, err
	}
	opts := cfg.RenderOptions()
	if noColor {
		opts.Color = false
	}
	if resultOnly {
		opts.ResultOnly = true
	}
	return opts, nil
}

// generate parses the expression, evaluates every assignment and renders the
// resulting table.
func generate(expression string, opts truthtable.RenderOptions, logger *zap.Logger) (string, error) {
	start := time.Now()

	gen, err := truthtable.NewGenerator(expression)
	if err != nil {
		return "", err
	}
	tbl, err := gen.Generate()
	if err != nil {
		return "", err
	}

	logger.Debug("generated truth table",
		zap.String("expression", expression),
		zap.Strings("variables", tbl.Variables),
		zap.Int("columns", len(tbl.Headers)),
		zap.Int("rows", len(tbl.Rows)),
		zap.Duration("elapsed", time.Since(start)))

	return tbl.Render(opts), nil
}
