package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
)

// decodeList accepts a bare JSON array or an object wrapping the array under
// one of keys.
func decodeList[T any](resp domain.Response, keys ...string) ([]T, error) {
	if !resp.IsJSON() {
		return nil, domain.ErrResponseNotJSON
	}

	raw := bytes.TrimSpace(resp.JSON)
	if bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	if len(raw) > 0 && raw[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	for _, key := range keys {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		trimmed := bytes.TrimSpace(inner)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			continue
		}
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	return []T{}, nil
}

// decodeItem decodes a single entity that may be wrapped under one of keys.
func decodeItem[T any](resp domain.Response, keys ...string) (T, error) {
	var zero T
	if !resp.IsJSON() {
		return zero, domain.ErrResponseNotJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.JSON, &envelope); err == nil {
		for _, key := range keys {
			inner, ok := envelope[key]
			if !ok || !isJSONObject(inner) {
				continue
			}
			var item T
			if err := json.Unmarshal(inner, &item); err != nil {
				return zero, err
			}
			return item, nil
		}
	}

	var item T
	if err := json.Unmarshal(resp.JSON, &item); err != nil {
		return zero, err
	}
	return item, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func resourcePath(collection string, id string, suffix ...string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.ErrMissingID
	}

	parts := append([]string{strings.TrimRight(collection, "/"), url.PathEscape(id)}, suffix...)
	path := strings.Join(parts, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path, nil
}

func jsonField(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode form field: %w", err)
	}
	return string(encoded), nil
}
