package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/experiment"
	"github.com/san-kum/zetalab/internal/logging"
	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/storage"
	"github.com/san-kum/zetalab/internal/viz"
	"github.com/san-kum/zetalab/internal/zeros"
)

var (
	iterations int
	steps      int
	tStart     float64
	tEnd       float64
	sigmaMin   float64
	sigmaMax   float64
	sigma      float64
	base       int
	sExp       float64
	terms      int
	xLimit     float64
	harmonics  int
	active     []int
	uMin       float64
	uMax       float64
	samples    int
	psiAt      float64

	width   int
	height  int
	save    bool
	surface bool

	configFile string
	preset     string

	defaultMix = []int{0, 1, 2}
)

func addStripFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "terms of the eta series")
	cmd.Flags().Float64Var(&tStart, "t-start", config.DefaultTStart, "first t")
	cmd.Flags().Float64Var(&tEnd, "t-end", config.DefaultTEnd, "last t")
}

func addPrimeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&xLimit, "x-limit", config.DefaultXLimit, "largest x")
}

func addHarmonicFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&harmonics, "harmonics", config.DefaultHarmonics, "number of zeros (0-50)")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "grid intervals")
	cmd.Flags().IntVar(&width, "width", 80, "chart width")
	cmd.Flags().IntVar(&height, "height", 15, "chart height")
	cmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")
}

// viewCommands builds one command per view that renders straight to the
// terminal.
func viewCommands() []*cobra.Command {
	zetaCmd := &cobra.Command{
		Use:   "zeta",
		Short: "|ζ(1/2+it)| along the critical line",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("zeta"),
	}
	addStripFlags(zetaCmd)
	addOutputFlags(zetaCmd)

	landscapeCmd := &cobra.Command{
		Use:   "landscape",
		Short: "|ζ| over the critical strip",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("landscape"),
	}
	addStripFlags(landscapeCmd)
	addOutputFlags(landscapeCmd)
	landscapeCmd.Flags().Float64Var(&sigmaMin, "sigma-min", config.DefaultSigmaMin, "smallest σ")
	landscapeCmd.Flags().Float64Var(&sigmaMax, "sigma-max", config.DefaultSigmaMax, "largest σ")
	landscapeCmd.Flags().BoolVar(&surface, "3d", false, "wireframe instead of heat map")

	twistCmd := &cobra.Command{
		Use:   "twist",
		Short: "spiral of n^(σ+iτ)",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("twist"),
	}
	addOutputFlags(twistCmd)
	twistCmd.Flags().IntVar(&base, "n", config.DefaultBase, "base n")
	twistCmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "real part σ")
	twistCmd.Flags().Float64Var(&tEnd, "t", config.DefaultTEnd, "largest τ")

	eulerCmd := &cobra.Command{
		Use:   "euler",
		Short: "golden key: Dirichlet sum against Euler product",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("euler"),
	}
	addOutputFlags(eulerCmd)
	eulerCmd.Flags().Float64Var(&sExp, "s", config.DefaultS, "real exponent s")
	eulerCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "terms of the sum")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "primes on a square grid",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("grid"),
	}
	addPrimeFlags(gridCmd)
	addOutputFlags(gridCmd)

	primesCmd := &cobra.Command{
		Use:   "primes",
		Short: "π(x) against x/ln x and Li(x)",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("primes"),
	}
	addPrimeFlags(primesCmd)
	addOutputFlags(primesCmd)

	psiCmd := &cobra.Command{
		Use:   "psi",
		Short: "Chebyshev ψ(x)",
		Args:  cobra.NoArgs,
		RunE:  runPsi,
	}
	addPrimeFlags(psiCmd)
	addOutputFlags(psiCmd)
	psiCmd.Flags().Float64Var(&psiAt, "x", 0, "print ψ at a single x")

	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "rebuild ψ(x) from zeros",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("synth"),
	}
	addPrimeFlags(synthCmd)
	addHarmonicFlags(synthCmd)
	addOutputFlags(synthCmd)

	pulseCmd := &cobra.Command{
		Use:   "pulse",
		Short: "prime density pulse",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("pulse"),
	}
	addPrimeFlags(pulseCmd)
	addHarmonicFlags(pulseCmd)
	addOutputFlags(pulseCmd)

	mixCmd := &cobra.Command{
		Use:   "mix",
		Short: "mixing board over chosen zeros",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("mix"),
	}
	addPrimeFlags(mixCmd)
	addOutputFlags(mixCmd)
	mixCmd.Flags().IntSliceVar(&active, "active", defaultMix, "zero indices, 0-based")

	errorCmd := &cobra.Command{
		Use:   "error",
		Short: "π(x) − Li(x) with correction and RH bounds",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("error"),
	}
	addPrimeFlags(errorCmd)
	addOutputFlags(errorCmd)
	errorCmd.Flags().IntVar(&harmonics, "zeros", config.DefaultHarmonics, "number of zeros (0-50)")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "spectrum of the pulse in ln x",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("spectrum"),
	}
	addHarmonicFlags(spectrumCmd)
	addOutputFlags(spectrumCmd)
	addLogSpaceFlags(spectrumCmd)
	spectrumCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples in u = ln x")

	waveCmd := &cobra.Command{
		Use:   "wave",
		Short: "sin(γu) per zero",
		Args:  cobra.NoArgs,
		RunE:  viewRunner("wave"),
	}
	addHarmonicFlags(waveCmd)
	addOutputFlags(waveCmd)
	addLogSpaceFlags(waveCmd)

	formulaCmd := &cobra.Command{
		Use:   "formula [expr]",
		Short: "plot a formula in x against π(x)",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormula,
	}
	addPrimeFlags(formulaCmd)
	addOutputFlags(formulaCmd)

	zerosCmd := &cobra.Command{
		Use:   "zeros",
		Short: "print the table of zeta zeros",
		Args:  cobra.NoArgs,
		RunE:  printZeros,
	}

	return []*cobra.Command{
		zetaCmd, landscapeCmd, twistCmd, eulerCmd, gridCmd, primesCmd, psiCmd,
		synthCmd, pulseCmd, mixCmd, errorCmd, spectrumCmd, waveCmd, formulaCmd, zerosCmd,
	}
}

func addLogSpaceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&uMin, "u-min", 0.5, "smallest u = ln x")
	cmd.Flags().Float64Var(&uMax, "u-max", 8, "largest u = ln x")
}

func viewRunner(view string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		cfg.View = view
		if view == "mix" {
			cfg.Harmonics.Active = append([]int(nil), defaultMix...)
		}
		applyFlags(cmd, cfg)
		return computeAndShow(cmd, cfg, save)
	}
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if f.Changed("steps") {
		cfg.Steps = steps
	}
	if f.Changed("t-start") {
		cfg.Strip.TStart = tStart
	}
	if f.Changed("t-end") || f.Changed("t") {
		cfg.Strip.TEnd = tEnd
	}
	if f.Changed("sigma-min") {
		cfg.Strip.SigmaMin = sigmaMin
	}
	if f.Changed("sigma-max") {
		cfg.Strip.SigmaMax = sigmaMax
	}
	if f.Changed("sigma") {
		cfg.Strip.Sigma = sigma
	}
	if f.Changed("n") {
		cfg.Strip.Base = base
	}
	if f.Changed("s") {
		cfg.Strip.S = sExp
	}
	if f.Changed("terms") {
		cfg.Strip.Terms = terms
	}
	if f.Changed("x-limit") {
		cfg.Primes.XLimit = xLimit
	}
	if f.Changed("harmonics") || f.Changed("zeros") {
		cfg.Harmonics.Count = harmonics
	}
	if f.Changed("active") {
		cfg.Harmonics.Active = append([]int(nil), active...)
	}
	if f.Changed("u-min") {
		cfg.Harmonics.UMin = uMin
	}
	if f.Changed("u-max") {
		cfg.Harmonics.UMax = uMax
	}
	if f.Changed("samples") {
		cfg.Harmonics.Samples = samples
	}
}

// interruptible returns a context canceled by ctrl+c.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func computeAndShow(cmd *cobra.Command, cfg *config.Config, store bool) error {
	exp, err := experiment.New(experiment.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	start := time.Now()
	set, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Render(cfg.View, set, width, height, surface, nil))
	for _, w := range set.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), viz.ErrorText.Render("warning: "+w))
	}
	logging.L().Info("view.rendered", "view", cfg.View, "elapsed", elapsed)

	if !store {
		return nil
	}
	st := storage.New(dataDir)
	runID, err := st.Save(cfg.View, cfg.Formula, cfg.Params(), set)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	logging.L().Info("run.saved", "id", runID, "view", cfg.View)
	fmt.Fprintf(out, "run id: %s (%v)\n", runID, elapsed.Round(time.Millisecond))
	return nil
}

func runPsi(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("x") {
		return viewRunner("psi")(cmd, args)
	}
	if !(psiAt <= primes.MaxLimit) {
		return series.InvalidParam("x", psiAt)
	}
	ctx, cancel := interruptible()
	defer cancel()

	v, err := primes.ChebyshevPsiContext(ctx, psiAt)
	if err != nil {
		return fmt.Errorf("%w: %w", series.ErrCanceled, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ψ(%g) = %.6f\n", psiAt, v)
	return nil
}

func runFormula(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.View = "formula"
	cfg.Formula = args[0]
	applyFlags(cmd, cfg)
	return computeAndShow(cmd, cfg, save)
}

func printZeros(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tγ\tγ/2π")
	for i, g := range zeros.Known {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", i+1, g, g/(2*math.Pi))
	}
	return w.Flush()
}
