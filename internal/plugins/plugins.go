// Package plugins exports every djtokey script object and type into a
// registry.
package plugins

import (
	"errors"
	"log/slog"

	"github.com/djtokey/plugins/internal/djcontrol"
	"github.com/djtokey/plugins/internal/interfaces"
	"github.com/djtokey/plugins/internal/interop"
	"github.com/djtokey/plugins/internal/logger"
	"github.com/djtokey/plugins/internal/script"
	"github.com/djtokey/plugins/internal/windows"
)

// Options selects the backends behind the exported objects. Nil backends
// use the operating system.
type Options struct {
	// MIDIDevice overrides the DJ console's MIDI output name
	MIDIDevice string

	Clipboard   interfaces.ClipboardBackend
	Launcher    interfaces.ProcessLauncher
	Windows     interfaces.WindowReader
	Environment interfaces.EnvironmentReader
}

func (o Options) withDefaults(log logger.LoggerInterface) Options {
	var client *windows.Client
	shell := func() *windows.Client {
		if client == nil {
			client = windows.NewClient(log)
		}
		return client
	}

	if o.Clipboard == nil {
		o.Clipboard = interop.NewSystemClipboard()
	}
	if o.Launcher == nil {
		o.Launcher = shell()
	}
	if o.Windows == nil {
		o.Windows = shell()
	}
	if o.Environment == nil {
		o.Environment = interop.NewOSEnvironment()
	}

	return o
}

// RegisterAll exports DjControl, Clipboard, Process, Environment and Windows
// objects plus the DjButton, File and Directory types. A failing export is
// logged and does not stop the others; all failures are returned joined.
func RegisterAll(reg *script.Registry, log logger.LoggerInterface, opts Options) error {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	opts = opts.withDefaults(log)

	objects := []script.Object{
		djcontrol.NewScriptObject(
			djcontrol.WithDeviceName(opts.MIDIDevice),
			djcontrol.WithLogger(log),
		),
		script.NewObject(interop.ClipboardName, interop.NewClipboard(opts.Clipboard, log)),
		script.NewObject(interop.ProcessName, interop.NewProcess(opts.Launcher)),
		script.NewObject(interop.EnvironmentName, interop.NewEnvironment(opts.Environment)),
		script.NewObject(interop.WindowsName, interop.NewWindows(opts.Windows)),
	}

	types := []script.Type{
		djcontrol.NewButtonType(),
		script.NewType[interop.File](interop.FileTypeName),
		script.NewType[interop.Directory](interop.DirectoryTypeName),
	}

	var errs []error
	for _, o := range objects {
		if err := reg.ExportObject(o); err != nil {
			log.Error("Export failed", slog.String("object", o.Name()), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		log.Debug("Exported object", slog.String("object", o.Name()), slog.Bool("available", o.Object() != nil))
	}

	for _, t := range types {
		if err := reg.ExportType(t); err != nil {
			log.Error("Export failed", slog.String("type", t.Name()), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		log.Debug("Exported type", slog.String("type", t.Name()))
	}

	return errors.Join(errs...)
}
