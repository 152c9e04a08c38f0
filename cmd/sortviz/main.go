package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	asset      string
	seed       int64
	verbose    bool
	mute       bool
	theme      string
	hud        bool
	// bench
	runs   int
	format string
	// contour
	plotHeight int
	plotWidth  int
	svgPath    string
	// record
	outPath string
	every   int
	scale   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "sorting algorithm visualizer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use pacing preset")
	rootCmd.PersistentFlags().StringVar(&asset, "asset", config.DefaultAsset, "tone sample (wav)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "shuffle seed (0 = time based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "disable audio output")
	rootCmd.Flags().BoolVar(&hud, "hud", true, "show run statistics")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the bar chart window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&hud, "hud", true, "show run statistics")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the visualizer in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare algorithms on the same shuffles",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&runs, "runs", 10, "shuffles per algorithm")
	benchCmd.Flags().StringVar(&format, "format", "table", "output format: table, json, csv")

	contourCmd := &cobra.Command{
		Use:   "contour [algorithm]",
		Short: "plot the tone contour of one run",
		Args:  cobra.ExactArgs(1),
		RunE:  runContour,
	}
	contourCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")
	contourCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	contourCmd.Flags().StringVar(&svgPath, "svg", "", "also write the contour as svg")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm]",
		Short: "record one run as an animated gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "", "gif path (default <algorithm>.gif)")
	recordCmd.Flags().IntVar(&every, "every", 4, "keep every n-th frame")
	recordCmd.Flags().IntVar(&scale, "scale", 2, "downscale factor")
	recordCmd.Flags().StringVar(&svgPath, "svg", "", "also write the sorted frame as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms and their keys",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list pacing presets",
		Run:   listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config to a new yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, benchCmd, contourCmd, recordCmd, listCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig layers the config file, the preset and explicitly set flags,
// in that order, and picks a time based seed when none was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := layerConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	slog.Debug("config", "asset", cfg.Asset, "audio", cfg.Audio, "seed", cfg.Seed, "pacing", cfg.Pacing)
	return cfg, nil
}

func layerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("asset") {
		cfg.Asset = asset
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("mute") {
		cfg.Audio = !mute
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRegistry(cfg *config.Config) *experiment.Registry {
	return experiment.NewRegistry(experiment.Pacing{Step: cfg.StepDelay(), Bubble: cfg.BubbleDelay()})
}

func engineConfig(cfg *config.Config) engine.Config {
	return engine.Config{
		Seed:        cfg.Seed,
		RedrawDelay: cfg.RedrawDelay(),
		DebugDelay:  cfg.DebugDelay(),
	}
}

// openTone loads the tone sample and starts audio output. A sample that
// cannot be loaded ends the process with status 0 before any window opens.
// Audio output failures only disable sound.
func openTone(cfg *config.Config) (engine.Tone, float64, func()) {
	sample, err := audio.LoadSample(cfg.Asset)
	if err != nil {
		slog.Debug("tone sample unavailable, exiting", "asset", cfg.Asset, "err", err)
		os.Exit(0)
	}
	hz := sample.Fundamental()

	if !cfg.Audio {
		return nil, hz, func() {}
	}
	proc := audio.NewProcessor(sample)
	if err := proc.Start(); err != nil {
		slog.Warn("audio output unavailable, continuing muted", "err", err)
		return nil, hz, func() {}
	}
	proc.Cue()
	return proc, hz, proc.Stop
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tone, hz, stop := openTone(cfg)
	defer stop()

	gui.Run(newRegistry(cfg), gui.Options{
		Engine:  engineConfig(cfg),
		Tone:    tone,
		ToneHz:  hz,
		ShowHUD: hud,
	})
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tone, hz, stop := openTone(cfg)
	defer stop()

	return viz.RunInteractive(newRegistry(cfg), viz.Options{
		Engine: engineConfig(cfg),
		Tone:   tone,
		Theme:  cfg.Theme,
		ToneHz: hz,
	})
}

// offline returns a registry and session config that never sleep.
func offline(s int64) (*experiment.Registry, engine.Config) {
	return experiment.NewRegistry(experiment.Pacing{}), engine.Config{
		Seed:  s,
		Sleep: func(time.Duration) {},
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	names := experiment.NewRegistry(experiment.DefaultPacing()).Names()
	ensemble := &engine.Ensemble{
		Runs:      runs,
		SeedStart: cfg.Seed,
		Metrics:   func() []metrics.Metric { return metrics.Defaults(sorting.Size) },
	}
	trials, err := ensemble.Run(cmd.Context(), names)
	if err != nil {
		return err
	}

	report := export.Report{Size: sorting.Size}
	for _, tr := range trials {
		report.Runs = append(report.Runs, export.RunReport{
			Algorithm:   tr.Result.Algorithm,
			Seed:        tr.Seed,
			Comparisons: tr.Result.Stats.Comparisons,
			Swaps:       tr.Result.Stats.Swaps,
			Writes:      tr.Result.Stats.Writes,
			Metrics:     tr.Result.Metrics,
		})
	}

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, report)
	case "csv":
		return export.WriteCSV(os.Stdout, report)
	case "table":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	fmt.Printf("benchmarking %d algorithms over %d shuffles of %d bars\n\n", len(names), runs, sorting.Size)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCOMPARISONS\tSWAPS\tWRITES\tSTEPS\tTONES")
	for _, name := range names {
		var cmp, swp, wr, steps, tones float64
		for _, r := range report.Runs {
			if r.Algorithm != name {
				continue
			}
			cmp += float64(r.Comparisons)
			swp += float64(r.Swaps)
			wr += float64(r.Writes)
			steps += r.Metrics["steps"]
			tones += r.Metrics["tones"]
		}
		n := float64(runs)
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n", name, cmp/n, swp/n, wr/n, steps/n, tones/n)
	}
	return w.Flush()
}

func runContour(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	reg, ecfg := offline(cfg.Seed)
	session := engine.New(reg, nil, nil, ecfg)
	contour := metrics.NewContour()
	session.AddMetric(contour)

	result, err := session.Run(args[0])
	if err != nil {
		return err
	}
	if len(contour.Indices) == 0 {
		fmt.Printf("%s played no tones\n", result.Algorithm)
		return nil
	}

	pitches := make([]float64, len(contour.Indices))
	for i, idx := range contour.Indices {
		pitches[i] = engine.PitchForIndex(idx)
	}
	fmt.Println(asciigraph.Plot(pitches,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("%s: pitch of %d tones (seed %d)", result.Algorithm, len(pitches), cfg.Seed))))

	if svgPath != "" {
		svg := export.ContourSVG(contour.Indices, sorting.Size, 800, 300, "#00ff00")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("contour written to %s\n", svgPath)
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rec := export.NewRecorder(every, scale)
	reg, ecfg := offline(cfg.Seed)
	session := engine.New(reg, rec, nil, ecfg)
	result, err := session.Run(args[0])
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = result.Algorithm + ".gif"
	}
	if err := rec.Save(path); err != nil {
		return err
	}
	fmt.Printf("%d frames of %s written to %s\n", rec.Len(), result.Algorithm, path)

	if svgPath != "" {
		svg := export.FrameSVG(session.Array().Snapshot(0))
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("sorted frame written to %s\n", svgPath)
	}
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tALGORITHM\tFINAL DELAY")
	for _, e := range newRegistry(cfg).List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Name, e.FinalDelay)
	}
	fmt.Fprintf(w, "%s\t%s\t\n", engine.KeyShuffle, "shuffle")
	fmt.Fprintf(w, "%s\t%s\t\n", engine.KeyRedraw, "redraw")
	if err := w.Flush(); err != nil {
		return err
	}

	sample, err := audio.LoadSample(cfg.Asset)
	if err != nil {
		fmt.Printf("\ntone sample %s: unavailable\n", cfg.Asset)
		return nil
	}
	fmt.Printf("\ntone sample %s: %.2fs, %.0f Hz fundamental\n", cfg.Asset, sample.Duration(), sample.Fundamental())
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := layerConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Init(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("config written to %s\n", args[0])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) {
	fmt.Println("available presets:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tSTEP\tBUBBLE\tREDRAW\tDEBUG")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "  %s\t%dms\t%dms\t%dms\t%dms\n", name, p.StepMs, p.BubbleMs, p.RedrawMs, p.DebugMs)
	}
	w.Flush()
}
