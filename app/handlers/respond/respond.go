// Package respond holds the response and request-body plumbing shared by the
// public and admin handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/hitechrobotics/catalog-api/app/services"
	"github.com/unrolled/render"
)

const maxBodyBytes = 1 << 20

var (
	InternalError = map[string]string{"detail": "Internal server error."}
	NotFound      = map[string]string{"detail": "Not found."}
)

// Error maps a service error onto its status code. Validation failures become
// 400 with the per-field map; a missing row becomes notFound (or the generic
// 404 body when notFound is nil); anything else is logged and becomes 500.
func Error(rnd *render.Render, logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFound interface{}) {
	if verrs, ok := services.AsValidation(err); ok {
		logger.Info("request rejected",
			slog.String("path", r.URL.Path),
			slog.Any("errors", map[string][]string(verrs)),
		)
		_ = rnd.JSON(w, http.StatusBadRequest, verrs)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		if notFound == nil {
			notFound = NotFound
		}
		_ = rnd.JSON(w, http.StatusNotFound, notFound)
		return
	}
	var bad *BadRequestError
	if errors.As(err, &bad) {
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]string{"detail": bad.Msg})
		return
	}

	logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	_ = rnd.JSON(w, http.StatusInternalServerError, InternalError)
}

// BadRequestError is a body that could not be parsed at all.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string {
	return e.Msg
}

func isJSON(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "application/json"
}

// Fields flattens a JSON object or a form body into string values. JSON
// numbers and booleans keep their literal spelling.
func Fields(r *http.Request) (map[string]string, error) {
	out := map[string]string{}

	if isJSON(r) {
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		dec.UseNumber()
		var raw map[string]interface{}
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, &BadRequestError{Msg: fmt.Sprintf("JSON parse error - %v", err)}
		}
		for k, v := range raw {
			switch val := v.(type) {
			case nil:
			case string:
				out[k] = val
			case json.Number:
				out[k] = val.String()
			case bool:
				out[k] = strconv.FormatBool(val)
			default:
				encoded, _ := json.Marshal(val)
				out[k] = string(encoded)
			}
		}
		return out, nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, &BadRequestError{Msg: fmt.Sprintf("Malformed form data - %v", err)}
	}
	for k, vals := range r.PostForm {
		if len(vals) > 0 {
			out[k] = vals[0]
		}
	}
	return out, nil
}

// DecodeJSON reads a JSON body into dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &BadRequestError{Msg: fmt.Sprintf("JSON parse error - %v", err)}
	}
	return nil
}
