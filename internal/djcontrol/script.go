package djcontrol

import (
	"log/slog"

	"github.com/djtokey/plugins/internal/script"
)

const (
	ObjectName = "DjControl"
	TypeName   = "DjButton"
)

type scriptObject struct {
	ctrl *Controller
}

// NewScriptObject opens the console and exposes it to scripts. When the
// console is missing the failure is logged and the object's value is nil.
func NewScriptObject(opts ...Option) script.Object {
	ctrl, err := Open(opts...)
	if err != nil {
		applyOptions(opts).Logger.Warn("DJ console unavailable", slog.Any("error", err))
		return scriptObject{}
	}

	return scriptObject{ctrl: ctrl}
}

func (o scriptObject) Name() string { return ObjectName }

func (o scriptObject) Object() any {
	if o.ctrl == nil {
		return nil
	}

	return o.ctrl
}

// NewButtonType exposes the Button enum to scripts.
func NewButtonType() script.Type {
	return script.NewType[Button](TypeName)
}
