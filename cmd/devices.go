package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/djtokey/plugins/internal/midi"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the installed MIDI output devices",
	Long:  "List the installed MIDI output devices. The one matching the configured DJ console name is marked with *.",
	Args:  cobra.NoArgs,
	RunE:  runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	s, err := startSession(cmd)
	if err != nil {
		return err
	}
	defer s.close(nil)
	defer s.recoverPanic()

	printDevices(cmd.OutOrStdout(), midi.InstalledDevices(), s.settings.MIDIDevice)
	return nil
}

func printDevices(w io.Writer, devices []*midi.OutputDevice, console string) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No MIDI output devices found")
		return
	}

	// Mirror FindDevice: the last device with the console's name is used
	match := -1
	for _, d := range devices {
		if d.Name() == console {
			match = d.ID()
		}
	}

	for _, d := range devices {
		if d.ID() == match {
			color.New(color.FgGreen).Fprintf(w, "* %s\n", d)
			continue
		}
		fmt.Fprintf(w, "  %s\n", d)
	}
}
