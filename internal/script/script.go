// Package script defines the contract between plugin adapters and the
// scripting host, and a registry the host uses to discover and call them.
package script

import (
	"errors"
	"reflect"
)

var (
	// ErrUnavailable is returned when calling an object whose backing
	// implementation could not be created.
	ErrUnavailable = errors.New("script object unavailable")

	// ErrDuplicateName is returned when exporting a name twice.
	ErrDuplicateName = errors.New("duplicate script name")
)

// Object is a named value exposed to scripts. Object may return nil when the
// implementation is not available on this machine.
type Object interface {
	Name() string
	Object() any
}

// Type is a named type exposed to scripts, such as an enum of buttons.
type Type interface {
	Name() string
	Type() reflect.Type
}

// NewObject returns an Object with a fixed name and value.
func NewObject(name string, value any) Object {
	return staticObject{name: name, value: value}
}

// NewType returns a Type with a fixed name for the type of T.
func NewType[T any](name string) Type {
	return staticType{name: name, typ: reflect.TypeFor[T]()}
}

type staticObject struct {
	name  string
	value any
}

func (o staticObject) Name() string { return o.name }
func (o staticObject) Object() any  { return o.value }

type staticType struct {
	name string
	typ  reflect.Type
}

func (t staticType) Name() string       { return t.name }
func (t staticType) Type() reflect.Type { return t.typ }
