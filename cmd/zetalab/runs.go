package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/experiment"
	"github.com/san-kum/zetalab/internal/export"
	"github.com/san-kum/zetalab/internal/storage"
	"github.com/san-kum/zetalab/internal/viz"
)

var (
	outPath   string
	braille   bool
	svgWidth  int
	svgHeight int
)

func runCommands() []*cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [view]",
		Short: "compute a view from config or preset and store it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runView,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	addStripFlags(runCmd)
	addPrimeFlags(runCmd)
	addHarmonicFlags(runCmd)
	addOutputFlags(runCmd)
	addLogSpaceFlags(runCmd)
	runCmd.Flags().IntSliceVar(&active, "active", nil, "zero indices, 0-based")
	runCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples in u = ln x")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&width, "width", 80, "chart width")
	plotCmd.Flags().IntVar(&height, "height", 15, "chart height")
	plotCmd.Flags().BoolVar(&surface, "3d", false, "wireframe for landscape runs")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportMsgpackCmd := &cobra.Command{
		Use:   "export-msgpack [run_id]",
		Short: "export run data to gzip-compressed MessagePack",
		Args:  cobra.ExactArgs(1),
		RunE:  exportMsgpack,
	}
	exportMsgpackCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.msgpack.gz)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.svg)")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "draw the braille scatter instead of vector paths")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 80, "braille width in cells")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 24, "braille height in cells")

	presetsCmd := &cobra.Command{
		Use:   "presets [view]",
		Short: "list available presets for a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for view: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "list views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := experiment.NewRegistry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range reg.ListViews() {
				v, _ := reg.Get(name)
				fmt.Fprintf(w, "%s\t%s\n", name, v.Description)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("refusing to overwrite %s", args[0])
			}
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	return []*cobra.Command{runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportMsgpackCmd, exportSVGCmd, presetsCmd, viewsCmd, initCmd}
}

// runView resolves the config in order default, preset, config file, flags.
func runView(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	view := ""
	if len(args) == 1 {
		view = args[0]
	}

	if preset != "" {
		if view == "" {
			return fmt.Errorf("--preset needs a view")
		}
		p := config.GetPreset(view, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(view))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if view != "" {
		cfg.View = view
	}
	applyFlags(cmd, cfg)

	fmt.Fprintf(cmd.OutOrStdout(), "running %s...\n", cfg.View)
	return computeAndShow(cmd, cfg, true)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVIEW\tTIME\tSAMPLES\tSERIES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.View,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			strings.Join(run.Series, ", "),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadSet(args[0])
	if err != nil {
		return err
	}
	if len(set.Series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("view: %s\n", meta.View)
	fmt.Printf("samples: %d\n\n", meta.Samples)
	fmt.Println(viz.Render(meta.View, set, width, height, surface, nil))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	set, err := st.LoadSet(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.WriteCSV(os.Stdout, set)
	}
	return storage.ExportCSV(outPath, set)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadSet(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.WriteJSON(os.Stdout, *meta, set)
	}
	return storage.ExportJSON(outPath, *meta, set)
}

func exportMsgpack(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadSet(args[0])
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = meta.ID + ".msgpack.gz"
	}
	if err := storage.ExportMsgpack(path, *meta, set); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	set, err := st.LoadSet(args[0])
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = meta.ID + ".svg"
	}

	theme := viz.CurrentTheme
	if braille {
		canvas := viz.ScatterCanvas(set, viz.ScatterOptions{Width: svgWidth, Height: svgHeight, Joined: meta.View != "grid", Equal: meta.View == "twist"})
		if canvas == nil {
			return fmt.Errorf("no finite samples in %s", meta.ID)
		}
		err = os.WriteFile(path, []byte(export.CanvasToSVG(canvas, 4, string(theme.Primary), "#0a0a0a")), 0644)
	} else {
		err = export.ExportSVG(path, set, export.OptionsFor(meta.View, theme))
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
