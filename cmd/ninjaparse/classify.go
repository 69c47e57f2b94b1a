package main

import (
	"fmt"

	"github.com/dangerclosesec/ninjaparse/charclass"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Show the bare token at the start of each argument",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, arg := range args {
			in := []byte(arg)
			n := charclass.Span(in)
			fmt.Fprintf(out, "%q: path %q", arg, arg[:n])
			if n < len(in) {
				fmt.Fprintf(out, " stops at %q (offset %d)", rune(in[n]), n)
			}
			fmt.Fprintf(out, ", ident %q\n", arg[:charclass.IdentSpan(in)])
		}
	},
}
