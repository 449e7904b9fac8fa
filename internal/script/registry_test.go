package script_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djtokey/plugins/internal/script"
)

type level int

func (l *level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return fmt.Errorf("unknown level %q", b)
	}
	return nil
}

type widget struct {
	calls  []string
	closed int
}

func (w *widget) Echo(s string) string { return s }

func (w *widget) Add(a int, b uint8) int { return a + int(b) }

func (w *widget) Scale(f float64, on bool) float64 {
	if !on {
		return 0
	}
	return f * 2
}

func (w *widget) Set(l level) int { return int(l) }

func (w *widget) Fail() error { return errors.New("boom") }

func (w *widget) Pair() (string, error) { return "ok", nil }

func (w *widget) Join(sep string, parts ...string) string { return strings.Join(parts, sep) }

func (w *widget) Deadline(ctx context.Context, s string) string {
	w.calls = append(w.calls, s)
	_, has := ctx.Deadline()
	return fmt.Sprint(has)
}

func (w *widget) Close() error {
	w.closed++
	return nil
}

type helpers struct{}

func (helpers) Upper(s string) string { return strings.ToUpper(s) }

func newRegistry(t *testing.T, w *widget) *script.Registry {
	t.Helper()

	reg := script.NewRegistry()
	require.NoError(t, reg.ExportObject(script.NewObject("Widget", w)))
	require.NoError(t, reg.ExportType(script.NewType[helpers]("Helpers")))
	return reg
}

func TestRegistry_ExportDuplicate(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, &widget{})

	err := reg.ExportObject(script.NewObject("Widget", &widget{}))
	assert.ErrorIs(t, err, script.ErrDuplicateName)

	err = reg.ExportType(script.NewType[helpers]("Helpers"))
	assert.ErrorIs(t, err, script.ErrDuplicateName)

	// Objects and types live in separate namespaces
	assert.NoError(t, reg.ExportType(script.NewType[widget]("Widget")))
}

func TestRegistry_ListingIsSorted(t *testing.T) {
	t.Parallel()

	reg := script.NewRegistry()
	for _, name := range []string{"Windows", "Clipboard", "Process"} {
		require.NoError(t, reg.ExportObject(script.NewObject(name, nil)))
	}
	require.NoError(t, reg.ExportType(script.NewType[int]("Zed")))
	require.NoError(t, reg.ExportType(script.NewType[string]("Alpha")))

	var names []string
	for _, o := range reg.Objects() {
		names = append(names, o.Name())
	}
	assert.Equal(t, []string{"Clipboard", "Process", "Windows"}, names)

	types := reg.Types()
	require.Len(t, types, 2)
	assert.Equal(t, "Alpha", types[0].Name())
	assert.Equal(t, reflect.TypeFor[int](), types[1].Type())
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, &widget{})

	_, err := reg.LookupObject("Widget")
	assert.NoError(t, err)

	_, err = reg.LookupObject("Gadget")
	assert.ErrorIs(t, err, script.ErrUnknownObject)
	assert.Contains(t, err.Error(), "unknown script object: Gadget")

	_, err = reg.LookupType("Nope")
	assert.ErrorIs(t, err, script.ErrUnknownType)
}

func TestRegistry_Invoke(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, &widget{})
	ctx := context.Background()

	tests := []struct {
		name   string
		method string
		args   []string
		want   []any
	}{
		{name: "string", method: "Echo", args: []string{"hi"}, want: []any{"hi"}},
		{name: "ints", method: "Add", args: []string{"-2", "0x10"}, want: []any{14}},
		{name: "float and bool", method: "Scale", args: []string{"1.5", "true"}, want: []any{3.0}},
		{name: "text unmarshaler", method: "Set", args: []string{"high"}, want: []any{2}},
		{name: "nil error dropped", method: "Pair", want: []any{"ok"}},
		{name: "variadic", method: "Join", args: []string{"-", "a", "b", "c"}, want: []any{"a-b-c"}},
		{name: "variadic empty", method: "Join", args: []string{"-"}, want: []any{""}},
		{name: "context injected", method: "Deadline", args: []string{"x"}, want: []any{"false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Invoke(ctx, "Widget", tt.method, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_InvokeErrors(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, &widget{})
	require.NoError(t, reg.ExportObject(script.NewObject("Missing", (*widget)(nil))))
	require.NoError(t, reg.ExportObject(script.NewObject("Absent", nil)))
	ctx := context.Background()

	tests := []struct {
		name    string
		object  string
		method  string
		args    []string
		wantErr error
	}{
		{name: "unknown object", object: "Gadget", method: "Echo", wantErr: script.ErrUnknownObject},
		{name: "typed nil value", object: "Missing", method: "Echo", args: []string{"x"}, wantErr: script.ErrUnavailable},
		{name: "nil value", object: "Absent", method: "Echo", args: []string{"x"}, wantErr: script.ErrUnavailable},
		{name: "unknown method", object: "Widget", method: "Explode", wantErr: script.ErrUnknownMethod},
		{name: "too few args", object: "Widget", method: "Add", args: []string{"1"}, wantErr: script.ErrBadArguments},
		{name: "too many args", object: "Widget", method: "Echo", args: []string{"a", "b"}, wantErr: script.ErrBadArguments},
		{name: "bad int", object: "Widget", method: "Add", args: []string{"one", "2"}, wantErr: script.ErrBadArguments},
		{name: "uint overflow", object: "Widget", method: "Add", args: []string{"1", "300"}, wantErr: script.ErrBadArguments},
		{name: "bad enum", object: "Widget", method: "Set", args: []string{"medium"}, wantErr: script.ErrBadArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Invoke(ctx, tt.object, tt.method, tt.args)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_InvokeReturnsMethodError(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, &widget{})

	out, err := reg.Invoke(context.Background(), "Widget", "Fail", nil)
	assert.EqualError(t, err, "boom")
	assert.Empty(t, out)
}

func TestRegistry_InvokeCancelledContext(t *testing.T) {
	t.Parallel()

	w := &widget{}
	reg := newRegistry(t, w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reg.Invoke(ctx, "Widget", "Deadline", []string{"x"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, w.calls, "Method must not run after cancellation")
}

func TestRegistry_InvokeType(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, &widget{})

	got, err := reg.InvokeType(context.Background(), "Helpers", "Upper", []string{"cue"})
	require.NoError(t, err)
	assert.Equal(t, []any{"CUE"}, got)

	_, err = reg.InvokeType(context.Background(), "Helpers", "Lower", []string{"cue"})
	assert.ErrorIs(t, err, script.ErrUnknownMethod)
}

func TestRegistry_Close(t *testing.T) {
	t.Parallel()

	w := &widget{}
	reg := newRegistry(t, w)
	require.NoError(t, reg.ExportObject(script.NewObject("Missing", (*widget)(nil))))

	require.NoError(t, reg.Close())
	assert.Equal(t, 1, w.closed)
}

func TestMethodNames(t *testing.T) {
	t.Parallel()

	names := script.MethodNames(reflect.TypeFor[helpers]())
	assert.Equal(t, []string{"Upper"}, names)
}
