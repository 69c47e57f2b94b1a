package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dangerclosesec/ninjaparse"
	"github.com/dangerclosesec/ninjaparse/manifest"
	"github.com/spf13/cobra"
)

var followIncludes bool

func init() {
	parseCmd.Flags().BoolVarP(&followIncludes, "follow", "f", false, "Also parse included and subninja files")
}

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse build files",
	Long:  `Parse one or more build files concurrently and report what they contain.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pc := ninjaparse.NewConfig(cmd.Context())
		pc.SetLogger(logger)
		pc.SetJobs(cfg.Jobs)
		pc.FollowIncludes = followIncludes

		results, err := pc.ParseAll(args...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, files := range results {
			fmt.Fprintf(out, "Successfully parsed %s\n", args[i])
			for _, m := range files {
				if len(files) > 1 {
					fmt.Fprintf(out, "  %s:\n", m.Source)
				}
				fmt.Fprintf(out, "    %s\n", summarize(m))
				if verbose {
					for _, name := range slices.Sorted(maps.Keys(m.Vars)) {
						fmt.Fprintf(out, "      %s = %s\n", name, m.Vars[name])
					}
				}
			}
		}
		return nil
	},
}

func summarize(m *manifest.Manifest) string {
	kinds := []manifest.StatementKind{
		manifest.KindRule,
		manifest.KindBuild,
		manifest.KindDefault,
		manifest.KindPool,
		manifest.KindInclude,
		manifest.KindSubninja,
	}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", m.Count(k), k))
	}
	return strings.Join(parts, ", ")
}
