package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/djtokey/plugins/internal/script"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exported script objects and types",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := startSession(cmd)
	if err != nil {
		return err
	}
	reg := s.registry()
	defer s.close(reg)
	defer s.recoverPanic()

	return printRegistry(cmd.OutOrStdout(), reg)
}

// printRegistry writes one line per object and type with its methods
func printRegistry(w io.Writer, reg *script.Registry) error {
	heading := color.New(color.Bold)
	missing := color.New(color.FgYellow)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	heading.Fprintln(tw, "Objects:")
	for _, o := range reg.Objects() {
		v := o.Object()
		if v == nil {
			fmt.Fprintf(tw, "  %s\t%s\n", o.Name(), missing.Sprint("(unavailable)"))
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", o.Name(), strings.Join(methodsOf(v), ", "))
	}

	heading.Fprintln(tw, "Types:")
	for _, t := range reg.Types() {
		fmt.Fprintf(tw, "  %s\t%s\n", t.Name(), strings.Join(script.MethodNames(t.Type()), ", "))
	}

	return tw.Flush()
}

func methodsOf(v any) []string {
	return script.MethodNames(reflect.TypeOf(v))
}
