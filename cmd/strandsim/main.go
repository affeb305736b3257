package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/strandsim/internal/config"
	"github.com/san-kum/strandsim/internal/sim"
	"github.com/san-kum/strandsim/internal/storage"
	"github.com/san-kum/strandsim/internal/viz"
)

var (
	dataDir string

	monomers    int
	dt          float64
	steps       int
	tau         float64
	temp        float64
	seed        uint64
	reportEvery int
	strict      bool

	configFile string
	preset     string

	numRuns   int
	seedStart uint64

	stepsPerFrame int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strandsim",
		Short: "coarse-grained strand dynamics simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".strandsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run seed-varied replicas concurrently",
		RunE:  runEnsemble,
	}
	addConfigFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 4, "number of replicas")
	ensembleCmd.Flags().Uint64Var(&seedStart, "seed-start", 1, "seed of the first replica")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the energy series to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with a live terminal view",
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 50, "integration steps per frame")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, ensembleCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&monomers, "monomers", config.DefaultMonomers, "strand length in monomers")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultTimeStep, "integration time step (s)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	cmd.Flags().Float64Var(&tau, "tau", 0, "thermostat coupling time (s), 0 disables")
	cmd.Flags().Float64Var(&temp, "temp", config.DefaultTemp, "thermostat target temperature (K)")
	cmd.Flags().Uint64Var(&seed, "seed", config.DefaultSeed, "random seed for the initial layout")
	cmd.Flags().IntVar(&reportEvery, "report-every", config.DefaultReportInt, "sampling interval in steps")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail the run on momentum drift")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, and flags. Flags set on the
// command line override the file; the file overrides the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("monomers") {
		cfg.Monomers = monomers
	}
	if cmd.Flags().Changed("dt") {
		cfg.TimeStep = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("tau") {
		cfg.ThermostatTau = tau
	}
	if cmd.Flags().Changed("temp") {
		cfg.ThermostatTemp = temp
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("report-every") {
		cfg.ReportEvery = reportEvery
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = strict
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %d monomers for %d steps...\n", cfg.Monomers, cfg.Steps)
	start := time.Now()

	result, err := sim.Run(context.Background(), cfg.SimConfig(), cfg.Steps, cfg.ReportEvery)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.SimConfig(), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}
	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns < 1 {
		return fmt.Errorf("runs must be positive, got %d", numRuns)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %d replicas of %d monomers for %d steps...\n", numRuns, cfg.Monomers, cfg.Steps)
	start := time.Now()

	ens := sim.NewEnsemble(cfg.SimConfig(), numRuns, seedStart)
	results, err := ens.Run(context.Background(), cfg.Steps, cfg.ReportEvery)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tRUN ID\tTEMP AVG (K)\tENERGY DRIFT\tMOMENTUM DRIFT")
	for i, result := range results {
		replica := cfg.SimConfig()
		replica.Seed = seedStart + uint64(i)

		runID, err := st.Save(replica, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.3e\t%.3e\n",
			replica.Seed,
			runID,
			result.Metrics["temperature_avg"],
			result.Metrics["energy_drift"],
			result.Metrics["momentum_per_monomer"],
		)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tTIME\tMONOMERS\tSTEPS\tDT\tTHERMOSTAT\tSEED")
	for _, run := range runs {
		thermostat := "off"
		if run.ThermostatTau > 0 {
			thermostat = fmt.Sprintf("%.0f K", run.ThermostatTemp)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2e\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Monomers,
			run.Steps,
			run.TimeStep,
			thermostat,
			run.Seed,
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
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.PlotRun(meta, samples))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "total", "kinetic", "bond", "angle", "dihedral", "stack", "temperature"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatFloat(smp.Time, 'e', 6, 64),
			strconv.FormatFloat(smp.Total, 'e', 6, 64),
			strconv.FormatFloat(smp.Kinetic, 'e', 6, 64),
			strconv.FormatFloat(smp.Bond, 'e', 6, 64),
			strconv.FormatFloat(smp.Angle, 'e', 6, 64),
			strconv.FormatFloat(smp.Dihedral, 'e', 6, 64),
			strconv.FormatFloat(smp.Stack, 'e', 6, 64),
			strconv.FormatFloat(smp.Temperature, 'e', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg.SimConfig(), stepsPerFrame)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	defer m.Close()
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	if len(names) == 0 {
		fmt.Println("no presets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMONOMERS\tSTEPS\tDT\tTHERMOSTAT")
	for _, name := range names {
		p := config.GetPreset(name)
		thermostat := "off"
		if p.ThermostatTau > 0 {
			thermostat = fmt.Sprintf("%.0f K", p.ThermostatTemp)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2e\t%s\n", name, p.Monomers, p.Steps, p.TimeStep, thermostat)
	}
	return w.Flush()
}
