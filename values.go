package formkit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Request binding errors.
var (
	// ErrMissingContentType indicates the request carries no Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType indicates the request body is not form-encoded.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidForm indicates the form body could not be parsed.
	ErrInvalidForm = errors.New("invalid form data")
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing.
const maxMultipartMemory = 10 << 20 // 10 MB

// RequestValues parses a form-encoded HTTP request body into the
// map[string]any value snapshot the validation engine consumes.
// Single-valued fields become strings, repeated fields (checkbox groups and
// the like) become []string.
//
// Supported content types: application/x-www-form-urlencoded and
// multipart/form-data.
func RequestValues(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected form-encoded body", ErrMissingContentType)
	}

	// Media type without parameters like boundary or charset.
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data",
			ErrUnsupportedMediaType, mediaType)
	}

	values := make(map[string]any, len(r.Form))
	for field, fieldValues := range r.Form {
		if len(fieldValues) == 1 {
			values[field] = fieldValues[0]
		} else {
			values[field] = fieldValues
		}
	}
	return values, nil
}
