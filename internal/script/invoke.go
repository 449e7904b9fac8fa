package script

import (
	"context"
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

var (
	contextType         = reflect.TypeFor[context.Context]()
	errorType           = reflect.TypeFor[error]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

func call(ctx context.Context, recv reflect.Value, owner, method string, args []string) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := recv.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, owner, method)
	}

	in, err := buildArgs(ctx, m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", owner, method, err)
	}

	var out []reflect.Value
	if m.Type().IsVariadic() {
		out = m.CallSlice(in)
	} else {
		out = m.Call(in)
	}

	return splitResults(m.Type(), out)
}

func buildArgs(ctx context.Context, mt reflect.Type, args []string) ([]reflect.Value, error) {
	params := make([]reflect.Type, 0, mt.NumIn())
	for i := 0; i < mt.NumIn(); i++ {
		params = append(params, mt.In(i))
	}

	var in []reflect.Value
	if len(params) > 0 && params[0] == contextType {
		in = append(in, reflect.ValueOf(ctx))
		params = params[1:]
	}

	fixed := params
	var variadic reflect.Type
	if mt.IsVariadic() {
		fixed = params[:len(params)-1]
		variadic = params[len(params)-1].Elem()
	}

	if len(args) < len(fixed) || (variadic == nil && len(args) > len(fixed)) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrBadArguments, len(fixed), len(args))
	}

	for i, p := range fixed {
		v, err := convertArg(args[i], p)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %v", ErrBadArguments, i+1, err)
		}
		in = append(in, v)
	}

	if variadic != nil {
		rest := reflect.MakeSlice(reflect.SliceOf(variadic), 0, len(args)-len(fixed))
		for i := len(fixed); i < len(args); i++ {
			v, err := convertArg(args[i], variadic)
			if err != nil {
				return nil, fmt.Errorf("%w: argument %d: %v", ErrBadArguments, i+1, err)
			}
			rest = reflect.Append(rest, v)
		}
		in = append(in, rest)
	}

	return in, nil
}

// convertArg parses s into a value of type t. Types implementing
// encoding.TextUnmarshaler take precedence over the basic kinds.
func convertArg(s string, t reflect.Type) (reflect.Value, error) {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		v := reflect.New(t)
		if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return reflect.Value{}, err
		}
		return v.Elem(), nil
	}

	v := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)
	case reflect.Interface:
		if !reflect.TypeOf(s).AssignableTo(t) {
			return reflect.Value{}, fmt.Errorf("unsupported parameter type %s", t)
		}
		v.Set(reflect.ValueOf(s))
	default:
		return reflect.Value{}, fmt.Errorf("unsupported parameter type %s", t)
	}

	return v, nil
}

// splitResults drops a trailing error result and returns it as the call error.
func splitResults(mt reflect.Type, out []reflect.Value) ([]any, error) {
	var err error
	if n := mt.NumOut(); n > 0 && mt.Out(n-1) == errorType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}

	results := make([]any, 0, len(out))
	for _, v := range out {
		results = append(results, v.Interface())
	}

	return results, err
}
