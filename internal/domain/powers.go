package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// PowersSeparator joins powers in their storage form.
const PowersSeparator = ", "

// PowerList is a list of powers that decodes from either a JSON array
// of strings or a single comma-separated string.
type PowerList []string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PowerList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = SplitPowers(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("powers must be a list of strings")
	}
	*p = list
	return nil
}

// JoinPowers converts powers to their storage form.
func JoinPowers(powers []string) string {
	return strings.Join(NormalizePowers(powers), PowersSeparator)
}

// SplitPowers expands the storage form into a list. Elements are trimmed
// and empty elements are dropped.
func SplitPowers(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return NormalizePowers(strings.Split(stored, ","))
}

// NormalizePowers trims each power and drops empty ones, keeping order.
func NormalizePowers(powers []string) []string {
	out := make([]string, 0, len(powers))
	for _, p := range powers {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
