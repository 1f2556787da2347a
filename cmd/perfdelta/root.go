// cmd/perfdelta/root.go
package perfdelta

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchkit/perfdelta/perf"
)

// runOptions carries the resolved flag values for one invocation.
type runOptions struct {
	Verbose       bool
	Latency       bool
	Throughput    bool
	Concurrency   int
	BaselineName  string
	Baseline      string
	UndertestName string
	Undertest     string
}

// rootCmd is the base Cobra command for the perfdelta application. The tool
// has a single flat flag surface, so all behavior hangs off the root.
var rootCmd = &cobra.Command{
	Use:   "perfdelta",
	Short: "Compare two sets of performance-test results",
	Long: `perfdelta compares a baseline run against an under-test run of
performance-test result files and reports the percentage delta per platform
and per metric at a chosen concurrency level.`,
	RunE: runRoot,
}

// runRoot resolves the viper-bound flags and dispatches the requested
// analysis. Only --latency is wired to behavior; --throughput is reserved.
func runRoot(cmd *cobra.Command, args []string) error {
	opts := runOptions{
		Verbose:       viper.GetBool("verbose"),
		Latency:       viper.GetBool("latency"),
		Throughput:    viper.GetBool("throughput"),
		Concurrency:   viper.GetInt("concurrency"),
		BaselineName:  viper.GetString("baseline-name"),
		Baseline:      viper.GetString("baseline"),
		UndertestName: viper.GetString("undertest-name"),
		Undertest:     viper.GetString("undertest"),
	}
	if opts.Verbose {
		pp.Fprintln(cmd.ErrOrStderr(), opts)
	}
	if !opts.Latency {
		return nil
	}

	analyzer, err := perf.NewAnalyzer(opts.Concurrency,
		perf.WithStdout(cmd.OutOrStdout()),
		perf.WithStderr(cmd.ErrOrStderr()),
	)
	if err != nil {
		return err
	}
	baseline, err := analyzer.ReadResults(opts.Baseline)
	if err != nil {
		return err
	}
	undertest, err := analyzer.ReadResults(opts.Undertest)
	if err != nil {
		return err
	}
	analyzer.LatencyAnalysis(opts.BaselineName, opts.UndertestName, baseline, undertest)
	return nil
}

// Execute runs the root Cobra command. It prints any returned error and
// exits the process with a non-zero status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("verbose", "v", false, "Enable verbose output.")
	flags.Bool("latency", false, "Perform latency analysis.")
	flags.Bool("throughput", false, "Perform throughput analysis.")
	flags.Int("concurrency", 1, "Concurrency level to extract from each result file.")
	flags.String("baseline-name", "", "Descriptive name of the baseline being compared against.")
	flags.String("baseline", "", "Path to the directory containing baseline results.")
	flags.String("undertest-name", "", "Descriptive name of the results being analyzed.")
	flags.String("undertest", "", "Path to the directory containing results being analyzed.")

	for _, name := range []string{"baseline-name", "baseline", "undertest-name", "undertest"} {
		rootCmd.MarkFlagRequired(name)
	}
	for _, name := range []string{
		"verbose", "latency", "throughput", "concurrency",
		"baseline-name", "baseline", "undertest-name", "undertest",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}
