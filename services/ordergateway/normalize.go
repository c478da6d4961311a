package ordergateway

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The backend is duck-typed: the same operation answers with a bare id, an
// {id} object or a {data:{id}} wrapper depending on the code path, and errors
// come back in just as many shapes. Normalization happens here once, so the
// workflow logic never branches on response shape.

// extractOrderID checks, in order: a bare number or string, `.id`, `.data.id`.
func extractOrderID(body []byte) (string, bool) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", false
	}

	var bare any
	if err := json.Unmarshal(body, &bare); err != nil {
		return "", false
	}

	if id, ok := asIDValue(bare); ok {
		return id, true
	}

	obj, ok := bare.(map[string]any)
	if !ok {
		return "", false
	}

	if id, ok := asIDValue(obj["id"]); ok {
		return id, true
	}

	if data, ok := obj["data"].(map[string]any); ok {
		if id, ok := asIDValue(data["id"]); ok {
			return id, true
		}
	}

	return "", false
}

func asIDValue(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		if value == "" {
			return "", false
		}
		return value, true
	case float64:
		// JSON numbers arrive as float64; order ids are integral
		return strconv.FormatInt(int64(value), 10), true
	default:
		return "", false
	}
}

// extractErrorMessage mines a human-readable message out of whatever the
// backend sent along: `.data.message`, `.message`, a numeric `.code`/`.status`
// of 400 or above, or the raw body.
func extractErrorMessage(httpStatus int, body []byte) string {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		if data, ok := obj["data"].(map[string]any); ok {
			if msg, ok := data["message"].(string); ok && msg != "" {
				return msg
			}
		}
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
		for _, field := range []string{"code", "status"} {
			if code, ok := obj[field].(float64); ok && code >= 400 {
				return fmt.Sprintf("backend replied with code %d", int(code))
			}
		}
	}

	var raw string
	if err := json.Unmarshal(body, &raw); err == nil && raw != "" {
		return raw
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" && len(trimmed) <= 200 {
		return trimmed
	}

	return fmt.Sprintf("backend replied with http status %d", httpStatus)
}
