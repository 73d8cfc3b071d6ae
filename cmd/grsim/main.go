package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/tobiasosborne/generalrelativity/internal/config"
	"github.com/tobiasosborne/generalrelativity/internal/report"
	"github.com/tobiasosborne/generalrelativity/internal/scenario"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	outputDir  string
	absTol     float64
	relTol     float64
	// Plot options
	plotCol    int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "grsim",
		Short: "differential-geometry figure engine for the lecture notes",
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run one scenario (or all) and emit its data files",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenarios,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&outputDir, "out", config.DefaultOutputDir, "output directory")
	runCmd.Flags().Float64Var(&absTol, "abs-tol", config.DefaultAbsTol, "integrator absolute tolerance")
	runCmd.Flags().Float64Var(&relTol, "rel-tol", config.DefaultRelTol, "integrator relative tolerance")

	selftestCmd := &cobra.Command{
		Use:   "selftest [scenario]",
		Short: "cross-check analytic vs finite-difference connection coefficients",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSelfTest,
	}
	selftestCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "render a column of an emitted data file as an ascii chart",
		Args:  cobra.ExactArgs(1),
		RunE:  plotFile,
	}
	plotCmd.Flags().IntVar(&plotCol, "col", 2, "1-based column to plot")
	plotCmd.Flags().IntVar(&plotHeight, "height", 16, "chart height")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "print the default config, or write it to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return config.Save(args[0], config.DefaultConfig())
			}
			data, err := yaml.Marshal(config.DefaultConfig())
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, selftestCmd, listCmd, plotCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("abs-tol") {
		cfg.Integrator.AbsTol = absTol
	}
	if cmd.Flags().Changed("rel-tol") {
		cfg.Integrator.RelTol = relTol
	}
	return cfg, nil
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registry := scenario.NewRegistry()
	names := registry.List()
	if len(args) == 1 && args[0] != "all" {
		names = []string{args[0]}
	}
	return registry.Run(cfg, names)
}

func runSelfTest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registry := scenario.NewRegistry()
	names := registry.List()
	if len(args) == 1 {
		names = []string{args[0]}
	}
	for _, name := range names {
		residual, err := registry.SelfTest(cfg, name)
		if err != nil {
			return err
		}
		report.Scenario(name)
		report.SelfTest(residual)
	}
	return nil
}

// plotFile reads one numeric column of an emitted file, skipping the
// header, blank group separators and nan sentinels.
func plotFile(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if plotCol < 1 || plotCol > len(fields) {
			return fmt.Errorf("column %d out of range (file has %d columns)", plotCol, len(fields))
		}
		v, err := strconv.ParseFloat(fields[plotCol-1], 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no numeric data in column %d of %s", plotCol, args[0])
	}

	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(plotHeight),
		asciigraph.Caption(fmt.Sprintf("%s (column %d)", args[0], plotCol))))
	return nil
}
