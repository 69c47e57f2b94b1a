package main

import (
	"github.com/dangerclosesec/ninjaparse/internal/fixture"
	"github.com/spf13/cobra"
)

var (
	fixtureOutput string
	fixtureEdges  int
	fixtureSleep  int
)

func init() {
	fdtestCmd.Flags().StringVarP(&fixtureOutput, "output", "o", "", "Output build file")
	fdtestCmd.Flags().IntVar(&fixtureEdges, "edges", 0, "Number of parallel edges")
	fdtestCmd.Flags().IntVar(&fixtureSleep, "sleep", -1, "Seconds each command sleeps")
}

var fdtestCmd = &cobra.Command{
	Use:   "fdtest",
	Short: "Write a build file that runs many commands in parallel",
	Long: `Write a build file with a large number of independent, long-running edges
and an explicit default listing all of them. Building it with high parallelism
shows whether file descriptors leak into subprocesses.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("edges") {
			cfg.Fixture.Edges = fixtureEdges
		}
		if cmd.Flags().Changed("sleep") {
			cfg.Fixture.Sleep = fixtureSleep
		}
		if fixtureOutput != "" {
			cfg.Fixture.Output = fixtureOutput
		}
		if err := cfg.ValidateFixture(); err != nil {
			return err
		}
		path := cfg.Fixture.Output
		opts := fixture.Options{Edges: cfg.Fixture.Edges, Sleep: cfg.Fixture.Sleep}

		if err := fixture.WriteFile(path, opts); err != nil {
			return err
		}
		logger.Info("wrote fixture", "path", path, "edges", opts.Edges, "sleep", opts.Sleep)
		return nil
	},
}
