package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/djtokey/plugins/internal/script"
)

var callCmd = &cobra.Command{
	Use:   "call <object> <method> [args...]",
	Short: "Invoke a method on a script object or type",
	Example: `  djtokey call DjControl TurnOn PitchASync
  djtokey call Clipboard SetText "Now playing"
  djtokey call File ReadAllText C:\setlist.txt`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	s, err := startSession(cmd)
	if err != nil {
		return err
	}
	reg := s.registry()
	defer s.close(reg)
	defer s.recoverPanic()

	name, method, rest := args[0], args[1], args[2:]
	s.log.Debug("Invoking", slog.String("name", name), slog.String("method", method), slog.Any("args", rest))

	result, err := invoke(cmd, reg, name, method, rest)
	if err != nil {
		s.log.Error("Invocation failed", slog.Any("error", err))
		return err
	}

	printResults(cmd.OutOrStdout(), result)
	return nil
}

// invoke calls an object method, falling back to a type of the same name
func invoke(cmd *cobra.Command, reg *script.Registry, name, method string, args []string) ([]any, error) {
	result, err := reg.Invoke(commandContext(cmd), name, method, args)
	if !errors.Is(err, script.ErrUnknownObject) {
		return result, err
	}

	result, typeErr := reg.InvokeType(commandContext(cmd), name, method, args)
	if errors.Is(typeErr, script.ErrUnknownType) {
		return nil, err
	}

	return result, typeErr
}

// printResults writes one result per line; slices are expanded
func printResults(w io.Writer, result []any) {
	for _, r := range result {
		rv := reflect.ValueOf(r)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				fmt.Fprintln(w, rv.Index(i).Interface())
			}
			continue
		}

		fmt.Fprintln(w, r)
	}
}
