package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const defaultListLimit = 100

// decodeJSON strictly decodes the request body into dst, rejecting unknown
// fields and mistyped values.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// listParams reads skip/limit pagination query parameters with defaults.
func listParams(r *http.Request) (skip, limit int) {
	skip = queryInt(r, "skip", 0)
	limit = queryInt(r, "limit", defaultListLimit)
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 1000 {
		limit = defaultListLimit
	}
	return skip, limit
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
