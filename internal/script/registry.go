package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"sync"
)

var (
	ErrUnknownObject = errors.New("unknown script object")
	ErrUnknownType   = errors.New("unknown script type")
	ErrUnknownMethod = errors.New("unknown method")
	ErrBadArguments  = errors.New("bad arguments")
)

// Registry holds the objects and types exported by plugins.
type Registry struct {
	mu      sync.RWMutex
	objects map[string]Object
	types   map[string]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[string]Object),
		types:   make(map[string]Type),
	}
}

// ExportObject makes o available to scripts under o.Name().
func (r *Registry) ExportObject(o Object) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.objects[o.Name()]; ok {
		return fmt.Errorf("%w: object %s", ErrDuplicateName, o.Name())
	}

	r.objects[o.Name()] = o
	return nil
}

// ExportType makes t available to scripts under t.Name().
func (r *Registry) ExportType(t Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[t.Name()]; ok {
		return fmt.Errorf("%w: type %s", ErrDuplicateName, t.Name())
	}

	r.types[t.Name()] = t
	return nil
}

// Objects returns the exported objects sorted by name.
func (r *Registry) Objects() []Object {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Object, 0, len(r.objects))
	for _, o := range r.objects {
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Types returns the exported types sorted by name.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func (r *Registry) LookupObject(name string) (Object, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, name)
	}

	return o, nil
}

func (r *Registry) LookupType(name string) (Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	return t, nil
}

// Invoke calls method on the named object's value, converting args from
// their string form to the method's parameter types.
func (r *Registry) Invoke(ctx context.Context, object, method string, args []string) ([]any, error) {
	o, err := r.LookupObject(object)
	if err != nil {
		return nil, err
	}

	v := o.Object()
	if isNil(v) {
		return nil, fmt.Errorf("%s: %w", object, ErrUnavailable)
	}

	return call(ctx, reflect.ValueOf(v), object, method, args)
}

// InvokeType calls method on the zero value of the named type. Helper types
// such as File expose their operations this way.
func (r *Registry) InvokeType(ctx context.Context, typeName, method string, args []string) ([]any, error) {
	t, err := r.LookupType(typeName)
	if err != nil {
		return nil, err
	}

	return call(ctx, reflect.Zero(t.Type()), typeName, method, args)
}

// Close closes every object value implementing io.Closer.
func (r *Registry) Close() error {
	var errs []error
	for _, o := range r.Objects() {
		v := o.Object()
		if isNil(v) {
			continue
		}

		if c, ok := v.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("closing %s: %w", o.Name(), err))
			}
		}
	}

	return errors.Join(errs...)
}

// MethodNames lists the exported methods callable on a value of type t.
func MethodNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		names = append(names, t.Method(i).Name)
	}

	return names
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
