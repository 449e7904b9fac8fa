package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/djtokey/plugins/internal/script"
	"github.com/djtokey/plugins/internal/version"
)

// maxBodyBytes caps invocation request bodies
const maxBodyBytes = 64 << 10

// ObjectInfo describes one exported object
type ObjectInfo struct {
	Name      string   `json:"name"`
	Available bool     `json:"available"`
	Methods   []string `json:"methods"`
}

// TypeInfo describes one exported type
type TypeInfo struct {
	Name    string   `json:"name"`
	GoType  string   `json:"goType"`
	Methods []string `json:"methods"`
}

// InvokeRequest is the body of an invocation
type InvokeRequest struct {
	Args []any `json:"args"`
}

// InvokeResponse carries either the results or the error of an invocation
type InvokeResponse struct {
	Result []any  `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// resultResponse always carries the result key, empty for void methods
type resultResponse struct {
	Result []any `json:"result"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) versionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.GetInfo())
}

func (s *Server) objectsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.listObjects())
}

func (s *Server) typesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.listTypes())
}

func (s *Server) listObjects() []ObjectInfo {
	objects := s.reg.Objects()
	out := make([]ObjectInfo, 0, len(objects))

	for _, o := range objects {
		info := ObjectInfo{Name: o.Name(), Methods: []string{}}
		if v := o.Object(); v != nil {
			info.Available = true
			info.Methods = script.MethodNames(reflect.TypeOf(v))
		}
		out = append(out, info)
	}

	return out
}

func (s *Server) listTypes() []TypeInfo {
	types := s.reg.Types()
	out := make([]TypeInfo, 0, len(types))

	for _, t := range types {
		out = append(out, TypeInfo{
			Name:    t.Name(),
			GoType:  t.Type().String(),
			Methods: script.MethodNames(t.Type()),
		})
	}

	return out
}

func (s *Server) invokeObjectHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.serveInvoke(w, r, vars["object"], vars["method"], s.reg.Invoke)
}

func (s *Server) invokeTypeHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.serveInvoke(w, r, vars["type"], vars["method"], s.reg.InvokeType)
}

type invokeFunc func(ctx context.Context, name, method string, args []string) ([]any, error)

func (s *Server) serveInvoke(w http.ResponseWriter, r *http.Request, name, method string, invoke invokeFunc) {
	// An empty body means no arguments
	var req InvokeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, InvokeResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	args, err := stringArgs(req.Args)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, InvokeResponse{Error: err.Error()})
		return
	}

	result, err := s.invoke(r.Context(), name, method, args, invoke)
	if err != nil {
		writeJSON(w, statusFor(err), InvokeResponse{Error: err.Error()})
		return
	}

	if result == nil {
		result = []any{}
	}
	writeJSON(w, http.StatusOK, resultResponse{Result: result})
}

// invoke calls into the registry, timing and logging the call
func (s *Server) invoke(ctx context.Context, name, method string, args []string, invoke invokeFunc) ([]any, error) {
	start := time.Now()
	result, err := invoke(ctx, name, method, args)
	if resolved(err) {
		s.stats.RecInvoke(name, method, err, time.Since(start))
	}

	if err != nil {
		s.log.Debug("Invocation failed",
			slog.String("object", name),
			slog.String("method", method),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.log.Trace("Invoked", slog.String("object", name), slog.String("method", method))
	return result, nil
}

// stringArgs brings JSON arguments to the string form the registry converts
// from. Numbers keep their literal text.
func stringArgs(in []any) ([]string, error) {
	out := make([]string, 0, len(in))

	for i, a := range in {
		switch v := a.(type) {
		case string:
			out = append(out, v)
		case json.Number:
			out = append(out, v.String())
		case bool:
			out = append(out, strconv.FormatBool(v))
		default:
			return nil, fmt.Errorf("%w: argument %d must be a string, number or boolean", script.ErrBadArguments, i+1)
		}
	}

	return out, nil
}

// resolved reports whether err leaves the object and method names known to
// the registry, so they are safe to use as metric labels
func resolved(err error) bool {
	return !errors.Is(err, script.ErrUnknownObject) &&
		!errors.Is(err, script.ErrUnknownType) &&
		!errors.Is(err, script.ErrUnknownMethod)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, script.ErrUnknownObject),
		errors.Is(err, script.ErrUnknownType),
		errors.Is(err, script.ErrUnknownMethod):
		return http.StatusNotFound
	case errors.Is(err, script.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, script.ErrBadArguments):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
