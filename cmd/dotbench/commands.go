package main

import (
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dot/bench"
	"github.com/cwbudde/algo-dot/dot"
	"github.com/cwbudde/algo-dot/internal/config"
)

// verifySize is the vector length `dotbench verify` uses unless -n is given.
const verifySize = 1000

type options struct {
	cfgFile      string
	size         int
	seed         uint64
	backends     []string
	repeat       int
	format       string
	tolerance    float64
	forceGeneric bool
	verbose      bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dotbench",
		Short: "Compare dot product backends",
		Long: `dotbench generates two random vectors with values in [0, 1), computes
their dot product with every selected backend and prints the result and the
wall-clock time of each call.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, opts)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().BoolVar(&opts.forceGeneric, "force-generic", false, "disable SIMD kernels for default selection")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	addRunFlags(root, opts)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, opts)
		},
	}
	addRunFlags(runCmd, opts)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that all backends agree on the same input",
		Long: `verify runs every registered backend (or the ones given with -b) on one
pair of random vectors and fails if any result differs from the first by more
than the relative tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts)
		},
	}
	addRunFlags(verifyCmd, opts)
	verifyCmd.Flags().Float64Var(&opts.tolerance, "tolerance", config.DefaultTolerance, "relative tolerance")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyForceGeneric(opts.forceGeneric)
			return printBackends(cmd.OutOrStdout())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dotbench %s\n", version)
		},
	}

	root.AddCommand(runCmd, verifyCmd, listCmd, versionCmd)
	return root
}

func addRunFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.IntVarP(&opts.size, "size", "n", bench.DefaultN, "vector length")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 draws a fresh seed)")
	f.StringSliceVarP(&opts.backends, "backend", "b", nil, "backend to time (repeatable)")
	f.IntVar(&opts.repeat, "repeat", 1, "time each backend this many times and keep the fastest")
	f.StringVar(&opts.format, "format", string(bench.FormatText), "output format: text, json or yaml")
}

func newLogger(cmd *cobra.Command, opts *options) *log.Logger {
	w := io.Discard
	if opts.verbose {
		w = cmd.ErrOrStderr()
	}
	return log.New(w, "dotbench: ", 0)
}

// loadConfig reads the config file, if any, and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts *options, logger *log.Logger) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		loaded, err := config.Load(opts.cfgFile)
		if err != nil {
			return nil, err
		}
		logger.Printf("loaded config %s", opts.cfgFile)
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.N = opts.size
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("backend") {
		cfg.Backends = opts.backends
	}
	if flags.Changed("repeat") {
		cfg.Repeat = opts.repeat
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = opts.tolerance
	}
	if flags.Changed("force-generic") {
		cfg.ForceGeneric = opts.forceGeneric
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	applyForceGeneric(cfg.ForceGeneric)
	return cfg, nil
}

// applyForceGeneric must run before the first dot product call, which fixes
// the default kernel.
func applyForceGeneric(force bool) {
	if !force {
		return
	}
	f := cpu.DetectFeatures()
	f.ForceGeneric = true
	cpu.SetForcedFeatures(f)
}

func runBenchmark(cmd *cobra.Command, opts *options) error {
	logger := newLogger(cmd, opts)

	cfg, err := loadConfig(cmd, opts, logger)
	if err != nil {
		return err
	}

	format, err := bench.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	d, err := bench.New(cfg.BenchConfig())
	if err != nil {
		return err
	}

	logger.Printf("n=%d backends=%v repeat=%d default=%s", cfg.N, cfg.Backends, cfg.Repeat, dot.Default())

	report, err := d.RunRandom()
	if err != nil {
		return err
	}
	logger.Printf("seed=%d", report.Seed)

	return report.Write(cmd.OutOrStdout(), format)
}

func runVerify(cmd *cobra.Command, opts *options) error {
	logger := newLogger(cmd, opts)

	cfg, err := loadConfig(cmd, opts, logger)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("size") {
		cfg.N = verifySize
	}
	if !flags.Changed("backend") {
		all := dot.Backends()
		cfg.Backends = make([]string, len(all))
		for i, b := range all {
			cfg.Backends[i] = b.Name
		}
	}

	d, err := bench.New(cfg.BenchConfig())
	if err != nil {
		return err
	}

	report, err := d.RunRandom()
	if err != nil {
		return err
	}
	logger.Printf("seed=%d tolerance=%g", report.Seed, cfg.Tolerance)

	if err := report.WriteText(cmd.OutOrStdout()); err != nil {
		return err
	}
	if err := bench.Verify(report.Results, cfg.Tolerance); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d backends agree (n=%d, seed=%d)\n", len(report.Results), report.N, report.Seed)
	return nil
}

func printBackends(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIMD\tPRIORITY\tDEFAULT")
	for _, b := range dot.Backends() {
		def := ""
		if b.Default {
			def = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", b.Name, b.SIMDLevel, b.Priority, def)
	}
	return tw.Flush()
}
