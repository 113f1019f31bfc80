package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"bmsjsoncheck/jsonval"
)

// PrefixReport is the outcome of a prefixed-line check.
type PrefixReport struct {
	Payload   string
	Device    string
	DataFound bool
}

// checkPrefixedLine strips prefix from line and parses the remainder as a
// JSON payload. Returns ErrPrefixMissing without attempting a parse when
// the line does not start with prefix.
func checkPrefixedLine(line, prefix string) (*PrefixReport, error) {
	if !strings.HasPrefix(line, prefix) {
		return nil, fmt.Errorf("%w: want %q", ErrPrefixMissing, prefix)
	}

	payload := line[len(prefix):]
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("payload after prefix is not valid JSON: %w", err)
	}

	report := PrefixReport{Payload: payload}
	report.Device, _ = jsonval.String(data, "device")
	report.DataFound, _ = jsonval.Bool(data, "data_found")
	return &report, nil
}
