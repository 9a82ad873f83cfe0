package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/axwes/Paint-Replica/internal/config"
	"github.com/axwes/Paint-Replica/internal/export"
	"github.com/axwes/Paint-Replica/internal/grid"
	"github.com/axwes/Paint-Replica/internal/render"
	"github.com/axwes/Paint-Replica/internal/replay"
	"github.com/axwes/Paint-Replica/internal/session"
	"github.com/axwes/Paint-Replica/internal/tui"
	"github.com/axwes/Paint-Replica/internal/visuals"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool
	// export geometry
	cellSize int
	outFile  string
	// replay pacing
	frameDelay int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05.00",
})

// main registers commands and flags and launches the interactive painter when
// no subcommand is given. It exits with status 1 if execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "paint",
		Short: "layered grid painting in the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPainter(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".paint", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "start an interactive painting session",
		RunE:  runPainter,
	}

	visualsCmd := &cobra.Command{
		Use:   "visuals [scene]",
		Short: "render a scripted demo scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVisuals,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [session_id]",
		Short: "play a saved session back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  replaySession,
	}
	replayCmd.Flags().IntVar(&frameDelay, "delay", 200, "milliseconds between frames")

	statsCmd := &cobra.Command{
		Use:   "stats [session_id]",
		Short: "plot brightness and coverage over a session",
		Args:  cobra.ExactArgs(1),
		RunE:  sessionStats,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export session metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [session_id]",
		Short: "export the final canvas as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&cellSize, "cell", export.DefaultCellSize, "pixels per square")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <id>.svg)")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [session_id]",
		Short: "export the final canvas as png",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().IntVar(&cellSize, "cell", export.DefaultCellSize, "pixels per square")
	exportPNGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <id>.png)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVarP(&outFile, "out", "o", "", "write config to file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTYLE\tSIZE\tBRUSH\tTHEME")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\n",
					name, cfg.Style, cfg.Width, cfg.Height, cfg.Brush, cfg.Theme)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, visualsCmd, listCmd, replayCmd, statsCmd,
		exportCmd, exportSVGCmd, exportPNGCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then preset, then config file.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		logger.Debug("applied preset", "preset", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}

	return cfg, cfg.Validate()
}

func runPainter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := session.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}

	return tui.Run(cfg, store)
}

// showConfig resolves defaults + preset + config file and emits the result,
// so a tuned preset can be saved as a starting config file.
func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		logger.Info("wrote config", "path", outFile)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runVisuals(cmd *cobra.Command, args []string) error {
	scene := "basic"
	if len(args) > 0 {
		scene = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := visuals.Scene(scene, render.GetTheme(cfg.Theme))
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, visuals.Names)
	}
	fmt.Println(out)
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	store := session.New(dataDir)
	sessions, err := store.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTYLE\tSIZE\tTHEME\tACTIONS\tCREATED")

	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%d\t%s\n",
			s.ID,
			s.Style,
			s.Width, s.Height,
			s.Theme,
			s.Actions,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}

// rebuild loads a session and returns a fresh grid plus its recorded actions.
func rebuild(id string) (*grid.Grid, *session.Metadata, []replay.Entry, error) {
	store := session.New(dataDir)

	meta, err := store.Load(id)
	if err != nil {
		return nil, nil, nil, err
	}
	entries, err := store.LoadActions(id)
	if err != nil {
		return nil, nil, nil, err
	}

	g, err := grid.New(grid.DrawStyle(meta.Style), meta.Width, meta.Height)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Debug("loaded session", "id", id, "actions", len(entries))
	return g, meta, entries, nil
}

func replaySession(cmd *cobra.Command, args []string) error {
	g, meta, entries, err := rebuild(args[0])
	if err != nil {
		return err
	}

	theme := render.GetTheme(meta.Theme)
	tracker := replay.NewReplayTracker()
	tracker.Preload(entries)
	tracker.StartReplay()

	fmt.Printf("replaying %s (%s, %d actions)\n\n", meta.ID, meta.Style, len(entries))
	fmt.Println(render.Frame(g, 0, theme, render.Options{}))

	var t int64
	for !tracker.PlayNext(g) {
		t++
		time.Sleep(time.Duration(frameDelay) * time.Millisecond)
		fmt.Printf("action %d/%d\n", tracker.Played(), tracker.Len())
		fmt.Println(render.Frame(g, t, theme, render.Options{}))
	}

	return nil
}

func sessionStats(cmd *cobra.Command, args []string) error {
	g, meta, entries, err := rebuild(args[0])
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return fmt.Errorf("no actions to analyze")
	}

	theme := render.GetTheme(meta.Theme)
	tracker := replay.NewReplayTracker()
	tracker.Preload(entries)
	tracker.StartReplay()

	brightness := []float64{render.Brightness(g, theme.Background, 0)}
	coverage := []float64{render.Coverage(g, theme.Background, 0)}
	for !tracker.PlayNext(g) {
		brightness = append(brightness, render.Brightness(g, theme.Background, 0))
		coverage = append(coverage, render.Coverage(g, theme.Background, 0)*100)
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("style: %s\n", meta.Style)
	fmt.Printf("actions: %d\n\n", len(entries))

	fmt.Println(asciigraph.Plot(brightness,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("mean brightness per action"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(coverage,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("canvas coverage % per action"),
	))

	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	store := session.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// replayAll plays every recorded action so the grid reaches its final state.
func replayAll(g *grid.Grid, entries []replay.Entry) {
	tracker := replay.NewReplayTracker()
	tracker.Preload(entries)
	tracker.StartReplay()
	for !tracker.PlayNext(g) {
	}
}

func exportSVG(cmd *cobra.Command, args []string) error {
	g, meta, entries, err := rebuild(args[0])
	if err != nil {
		return err
	}
	replayAll(g, entries)

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}

	theme := render.GetTheme(meta.Theme)
	if err := export.WriteSVG(path, g, theme.Background, 0, cellSize); err != nil {
		return err
	}
	logger.Info("exported", "path", path)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	g, meta, entries, err := rebuild(args[0])
	if err != nil {
		return err
	}
	replayAll(g, entries)

	path := outFile
	if path == "" {
		path = meta.ID + ".png"
	}

	theme := render.GetTheme(meta.Theme)
	if err := export.WritePNG(path, g, theme.Background, 0, cellSize); err != nil {
		return err
	}
	logger.Info("exported", "path", path)
	return nil
}
