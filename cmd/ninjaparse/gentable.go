package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dangerclosesec/ninjaparse/charclass"
	"github.com/spf13/cobra"
)

var (
	tableOutput  string
	tablePackage string
	tableFormat  string
)

func init() {
	gentableCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "Write to file instead of stdout")
	gentableCmd.Flags().StringVar(&tablePackage, "package", "", "Package name of the generated file")
	gentableCmd.Flags().StringVar(&tableFormat, "format", "", "Output format: go or hex")
}

var gentableCmd = &cobra.Command{
	Use:   "gentable",
	Short: "Generate the byte-class lookup tables",
	Long: `Build the path and identifier byte-class tables from their specs and print
them as a Go source file, or as one hex word per line with --format=hex.
Nothing is written if a spec is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tablePackage != "" {
			cfg.Table.Package = tablePackage
		}
		if tableFormat != "" {
			cfg.Table.Format = tableFormat
		}
		if err := cfg.ValidateTable(); err != nil {
			return err
		}
		pkg, format := cfg.Table.Package, cfg.Table.Format

		var buf bytes.Buffer
		switch format {
		case "go":
			if err := charclass.Generate(&buf, pkg, charclass.DefaultTables...); err != nil {
				return err
			}
		case "hex":
			if err := charclass.WriteHex(&buf, charclass.DefaultTables...); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q", format)
		}

		if tableOutput == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(tableOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write tables: %w", err)
		}
		logger.Info("wrote tables", "path", tableOutput, "format", format, "tables", len(charclass.DefaultTables))
		return nil
	},
}
