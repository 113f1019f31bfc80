package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// StreamReport summarizes a scan of a producer console capture.
type StreamReport struct {
	Lines    int
	Payloads int
	Valid    int
	Invalid  int
}

func (r *StreamReport) Passed() bool { return r.Invalid == 0 }

// scanStream reads a console capture line by line and validates every
// payload line against prefix. Lines without the prefix are producer log
// chatter and are skipped. A bad payload is counted and the scan
// continues.
func scanStream(r io.Reader, prefix string) (*StreamReport, error) {
	var report StreamReport

	scanner := bufio.NewScanner(r)
	// a full 16-cell report runs a few KB compact; keep headroom
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		report.Lines++
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		report.Payloads++
		prefixed, err := checkPrefixedLine(line, prefix)
		if err != nil {
			report.Invalid++
			log.Warnf("invalid payload on line %d: %v", report.Lines, err)
			continue
		}
		report.Valid++
		log.Debugf("line %d: device [%s] data_found [%t]", report.Lines, prefixed.Device, prefixed.DataFound)
	}
	if err := scanner.Err(); err != nil {
		return &report, fmt.Errorf("failed to read capture: %w", err)
	}
	return &report, nil
}
