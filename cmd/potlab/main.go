package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/potlab/internal/calc"
	"github.com/san-kum/potlab/internal/config"
	"github.com/san-kum/potlab/internal/pot"
	"github.com/san-kum/potlab/internal/scan"
	"github.com/san-kum/potlab/internal/store"
	"github.com/san-kum/potlab/internal/tui"
	"github.com/san-kum/potlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	mode       string
	rmin       float64
	rmax       float64
	points     int
	distance   float64
	step       float64
	csvOut     string
	jsonOut    string
	save       bool
	saved      string
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "potlab",
		Short: "interatomic potential composition lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".potlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset potential")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate the potential at one separation",
		RunE:  runEval,
	}
	evalCmd.Flags().Float64Var(&distance, "r", 1.0, "pair separation")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sample the potential over a distance grid",
		RunE:  runScan,
	}
	scanCmd.Flags().Float64Var(&rmin, "rmin", 0, "grid lower bound (0 = from config)")
	scanCmd.Flags().Float64Var(&rmax, "rmax", 0, "grid upper bound (0 = from config)")
	scanCmd.Flags().IntVar(&points, "points", 0, "grid points (0 = from config)")
	scanCmd.Flags().StringVar(&mode, "mode", "", "evaluation mode (value|first|second)")
	scanCmd.Flags().StringVar(&csvOut, "csv", "", "write curve to csv file")
	scanCmd.Flags().StringVar(&jsonOut, "json", "", "write curve to json file")
	scanCmd.Flags().BoolVar(&save, "save", false, "save curve into the data directory")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the potential curve in the terminal",
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&rmin, "rmin", 0, "grid lower bound (0 = from config)")
	plotCmd.Flags().Float64Var(&rmax, "rmax", 0, "grid upper bound (0 = from config)")
	plotCmd.Flags().IntVar(&points, "points", 0, "grid points (0 = from config)")
	plotCmd.Flags().StringVar(&mode, "mode", "", "evaluation mode (value|first|second)")
	plotCmd.Flags().StringVar(&saved, "saved", "", "plot a saved scan by id")
	plotCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 16, "plot height")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "verify analytic derivatives against finite differences",
		RunE:  runCheck,
	}
	checkCmd.Flags().Float64Var(&distance, "r", 1.1, "pair separation")
	checkCmd.Flags().Float64Var(&step, "h", 1e-5, "finite-difference step")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved scans",
		RunE:  listScans,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive curve explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(evalCmd, scanCmd, plotCmd, checkCmd, presetsCmd, listCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func loadPotential() (pot.Potential, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := cfg.Potential.Build()
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

func gridFromConfig(cfg *config.Config) scan.Grid {
	g := scan.Grid{Rmin: cfg.Scan.Rmin, Rmax: cfg.Scan.Rmax, Points: cfg.Scan.Points}
	if rmin != 0 {
		g.Rmin = rmin
	}
	if rmax != 0 {
		g.Rmax = rmax
	}
	if points != 0 {
		g.Points = points
	}
	return g
}

func modeFromConfig(cfg *config.Config) (pot.Mode, error) {
	if mode != "" {
		return pot.ParseMode(mode)
	}
	return pot.ParseMode(cfg.Mode)
}

func runEval(cmd *cobra.Command, args []string) error {
	p, _, err := loadPotential()
	if err != nil {
		return err
	}

	fmt.Printf("%s (cutoff %.3f) at r = %g\n\n", p, p.Cutoff(), distance)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range []pot.Mode{pot.Value, pot.First, pot.Second} {
		res, err := pot.Call(p, m, pot.Args{R: distance})
		if err != nil {
			fmt.Fprintf(w, "%s\t%v\n", m, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%.8g\n", m, res.Scalar)
	}
	g, err := pot.Grad(p, pot.Vector{distance, 0, 0})
	if err != nil {
		fmt.Fprintf(w, "%s\t%v\n", pot.Gradient, err)
	} else {
		fmt.Fprintf(w, "%s\t%v\n", pot.Gradient, []float64(g))
	}
	return w.Flush()
}

func runScan(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadPotential()
	if err != nil {
		return err
	}
	m, err := modeFromConfig(cfg)
	if err != nil {
		return err
	}
	g := gridFromConfig(cfg)

	series, err := scan.Sample(p, m, g)
	if err != nil {
		return err
	}

	if csvOut != "" || jsonOut != "" || save {
		return exportSeries(p, m, g, series)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "r\t%s\n", m)
	for i := range series.R {
		fmt.Fprintf(w, "%.4f\t%.8g\n", series.R[i], series.V[i])
	}
	return w.Flush()
}

func exportSeries(p pot.Potential, m pot.Mode, g scan.Grid, series *scan.Series) error {
	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		fmt.Fprintln(f, "r,v")
		for i := range series.R {
			fmt.Fprintf(f, "%g,%g\n", series.R[i], series.V[i])
		}
		fmt.Printf("wrote %s\n", csvOut)
	}
	if jsonOut != "" {
		f, err := os.Create(jsonOut)
		if err != nil {
			return err
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(series); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}
	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(store.ScanMetadata{
			Expression: p.String(),
			Mode:       m.String(),
			Rmin:       g.Rmin,
			Rmax:       g.Rmax,
			Cutoff:     p.Cutoff(),
		}, series)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s\n", id)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	if saved != "" {
		st := store.New(dataDir)
		meta, series, err := st.Load(saved)
		if err != nil {
			return err
		}
		fmt.Println(viz.Plot(series, meta.Expression, meta.Mode, plotWidth, plotHeight))
		return nil
	}

	p, cfg, err := loadPotential()
	if err != nil {
		return err
	}
	m, err := modeFromConfig(cfg)
	if err != nil {
		return err
	}
	series, err := scan.Sample(p, m, gridFromConfig(cfg))
	if err != nil {
		return err
	}
	fmt.Println(viz.Plot(series, p.String(), m.String(), plotWidth, plotHeight))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, _, err := loadPotential()
	if err != nil {
		return err
	}

	analytic1, err := p.Deriv(distance)
	if err != nil {
		return err
	}
	numeric1, err := calc.Deriv(p.Eval, distance, step)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "quantity\tanalytic\tfinite-diff\tabs error\n")
	fmt.Fprintf(w, "first\t%.8g\t%.8g\t%.2e\n", analytic1, numeric1, abs(analytic1-numeric1))

	analytic2, err := pot.Deriv2(p, distance)
	if err != nil {
		fmt.Fprintf(w, "second\t%v\n", err)
		return w.Flush()
	}
	numeric2, err := calc.Deriv2(p.Eval, distance, step)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "second\t%.8g\t%.8g\t%.2e\n", analytic2, numeric2, abs(analytic2-numeric2))
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "name\texpression\tcutoff\tgrid\n")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		p, err := cfg.Potential.Build()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t[%.2f, %.2f]\n",
			name, p, p.Cutoff(), cfg.Scan.Rmin, cfg.Scan.Rmax)
	}
	return w.Flush()
}

func listScans(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("no saved scans")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\texpression\tmode\tgrid\tpoints\n")
	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%.2f, %.2f]\t%d\n",
			m.ID, m.Expression, m.Mode, m.Rmin, m.Rmax, m.Points)
	}
	return w.Flush()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
