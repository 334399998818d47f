/*
Elemparse parses element markup and prints the resulting trees as YAML.

Usage:

   elemparse [flags] [markup ...]

Every argument is parsed as a single element. Without arguments, the
complete standard input is parsed as one element.

   elemparse '<a href="x"><img src="y"/></a>'

Flags:

   --trace   trace parsing at debug level
   --count   print the number of elements only
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/pcomb/element"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var trace, count bool
	cmd := &cobra.Command{
		Use:          "elemparse [markup ...]",
		Short:        "Parse element markup and print it as YAML",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gtrace.CoreTracer = gologadapter.New()
			if trace {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
			inputs := args
			if len(inputs) == 0 {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading standard input: %w", err)
				}
				inputs = []string{string(in)}
			}
			return run(cmd.OutOrStdout(), inputs, count)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "trace parsing at debug level")
	cmd.Flags().BoolVar(&count, "count", false, "print the number of elements only")
	return cmd
}

func run(w io.Writer, inputs []string, count bool) error {
	trees := make([]*element.Element, 0, len(inputs))
	for i, input := range inputs {
		el, err := element.Parse(input)
		if err != nil {
			return fmt.Errorf("input #%d: %w", i+1, err)
		}
		trees = append(trees, el)
	}
	if count {
		for _, el := range trees {
			fmt.Fprintln(w, el.Count())
		}
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, el := range trees {
		if err := enc.Encode(el); err != nil {
			return err
		}
	}
	return enc.Close()
}
