package remoteapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// number accepts a JSON number, a numeric string or null. Anything that is
// not a number decodes as an absent value.
type number struct {
	value kernel.Value
}

func numberOf(v kernel.Value) number {
	return number{value: v}
}

func (n *number) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		n.value = kernel.ParseValue(s)
		return nil
	}
	n.value = kernel.ParseValue(string(raw))
	return nil
}

func (n number) MarshalJSON() ([]byte, error) {
	if !n.value.Present() {
		return []byte("null"), nil
	}
	return []byte(n.value.Decimal().String()), nil
}

// text accepts a JSON string, a bare scalar such as a numeric id, or null.
type text string

func (t *text) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || string(raw) == "null":
		*t = ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*t = text(s)
	case raw[0] == '{' || raw[0] == '[':
		*t = ""
	default:
		*t = text(raw)
	}
	return nil
}

func (t text) String() string {
	return strings.TrimSpace(string(t))
}

// first returns the first non-blank value.
func first(values ...text) string {
	for _, v := range values {
		if s := v.String(); s != "" {
			return s
		}
	}
	return ""
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// timestamp parses the layouts the service is known to send. Anything else
// is treated as no time at all.
func timestamp(t text) time.Time {
	s := t.String()
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// parseStatus treats a missing status as fallback. The service leaves it out
// on records nobody has touched yet.
func parseStatus[S any](t text, fallback S, parse func(string) (S, error)) (S, error) {
	if t.String() == "" {
		return fallback, nil
	}
	return parse(t.String())
}
