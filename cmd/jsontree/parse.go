package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/martinemde/jsontree/jsonparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.json>",
	Short: "Parse a JSON document and print its structure",
	Long:  "Parse a JSON document from a file (or stdin when the argument is '-') and print the resulting value tree. Exits non-zero with a located error message on malformed input.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("quiet", false, "Suppress the tree printout, only report errors")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose := viper.GetBool("verbose")
	maxDepth := viper.GetInt("max_depth")

	name := args[0]
	src, err := readInput(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	v, err := jsonparser.ParseWithMaxDepth(src, maxDepth)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed %s (%d bytes)\n", name, len(src))
	}

	if !quiet {
		printValue(os.Stdout, v, 0)
	}
	return nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// printValue renders a value tree with two-space indentation per level.
func printValue(w io.Writer, v jsonparser.Value, indent int) {
	pad := strings.Repeat("  ", indent)
	switch v.Kind {
	case jsonparser.ValueObject:
		fmt.Fprintf(w, "%sobject (%d members)\n", pad, v.Obj.Len())
		for _, key := range v.Obj.Keys() {
			member, _ := v.Obj.Get(key)
			fmt.Fprintf(w, "%s  %q:\n", pad, key)
			printValue(w, member, indent+2)
		}
	case jsonparser.ValueArray:
		fmt.Fprintf(w, "%sarray (%d elements)\n", pad, len(v.Arr))
		for _, elem := range v.Arr {
			printValue(w, elem, indent+1)
		}
	case jsonparser.ValueString:
		fmt.Fprintf(w, "%sstring %q\n", pad, v.Str)
	case jsonparser.ValueInt:
		fmt.Fprintf(w, "%sint %d\n", pad, v.Int)
	case jsonparser.ValueFloat:
		fmt.Fprintf(w, "%sfloat %g\n", pad, v.Float)
	case jsonparser.ValueBool:
		fmt.Fprintf(w, "%sbool %t\n", pad, v.Bool)
	case jsonparser.ValueNull:
		fmt.Fprintf(w, "%snull\n", pad)
	}
}
