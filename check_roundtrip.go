package main

import (
	"encoding/json"
	"fmt"

	"bmsjsoncheck/jsonval"

	"github.com/charmbracelet/log"
)

// RoundTripReport carries the outcome of each stage of the status report
// check. Encoding lengths and field extracts are informational.
type RoundTripReport struct {
	Parsed      bool
	FieldsRead  bool
	Serialized  bool
	RoundTripOK bool

	IndentedLen int
	CompactLen  int

	CellCount        int
	SensorCount      int
	FirstCellNumber  int64
	FirstCellVoltage float64
	FirstSensor      string
	FirstTemperature float64
}

func (r *RoundTripReport) Passed() bool {
	return r.Parsed && r.FieldsRead && r.Serialized && r.RoundTripOK
}

// checkRoundTrip parses a status report document, reads the expected
// fields out of it, re-encodes it indented and compact, reparses the
// compact form and verifies that the identifying fields survived the
// cycle unchanged. Missing fields default rather than fail; only invalid
// JSON is an error.
func checkRoundTrip(doc string) (*RoundTripReport, error) {
	var report RoundTripReport

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		return &report, fmt.Errorf("report is not valid JSON: %w", err)
	}
	report.Parsed = true

	timestamp, _ := jsonval.Int64(data, "timestamp")
	device, _ := jsonval.String(data, "device")
	mac, _ := jsonval.String(data, "mac_address")
	dataFound, _ := jsonval.Bool(data, "data_found")
	log.Infof("report from device [%s] mac [%s] timestamp [%d] data_found [%t]", device, mac, timestamp, dataFound)

	proto := jsonval.Map(data, "daly_protocol")
	status, _ := jsonval.String(proto, "status")
	log.Infof("protocol status: %s", status)

	parsed := jsonval.Descend(proto, "commands", "main_info", "parsed_data")
	if len(parsed) > 0 {
		packVoltage, _ := jsonval.Float(parsed, "packVoltage")
		current, _ := jsonval.Float(parsed, "current")
		soc, _ := jsonval.Float(parsed, "soc")
		log.Infof("pack voltage: %.3fV, current: %.1fA, soc: %.1f%%", packVoltage, current, soc)

		cells := jsonval.Slice(parsed, "cellVoltages")
		temps := jsonval.Slice(parsed, "temperatures")
		report.CellCount = len(cells)
		report.SensorCount = len(temps)

		if len(cells) > 0 {
			first := jsonval.AsMap(cells[0])
			report.FirstCellNumber, _ = jsonval.Int64(first, "cellNumber")
			report.FirstCellVoltage, _ = jsonval.Float(first, "voltage")
			log.Infof("%d cells, first cell: #%d = %.3fV", len(cells), report.FirstCellNumber, report.FirstCellVoltage)
		}
		if len(temps) > 0 {
			first := jsonval.AsMap(temps[0])
			report.FirstSensor, _ = jsonval.String(first, "sensor")
			report.FirstTemperature, _ = jsonval.Float(first, "temperature")
			log.Infof("%d temperature sensors, first: %s = %.1fC", len(temps), report.FirstSensor, report.FirstTemperature)
		}
	}
	report.FieldsRead = true

	indented, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &report, fmt.Errorf("indented re-encode failed: %w", err)
	}
	compact, err := json.Marshal(data)
	if err != nil {
		return &report, fmt.Errorf("compact re-encode failed: %w", err)
	}
	report.Serialized = true
	report.IndentedLen = len(indented)
	report.CompactLen = len(compact)
	log.Infof("re-encoded: %d bytes indented, %d bytes compact", report.IndentedLen, report.CompactLen)

	var reparsed map[string]interface{}
	if err := json.Unmarshal(compact, &reparsed); err != nil {
		return &report, fmt.Errorf("reparse of compact encoding failed: %w", err)
	}

	report.RoundTripOK = fieldSubsetEqual(data, reparsed)
	if !report.RoundTripOK {
		log.Warn("round trip changed timestamp, device or data_found")
	}
	return &report, nil
}

// fieldSubsetEqual reports whether timestamp, device and data_found
// survived the encode/decode cycle unchanged. A field absent on both
// sides counts as unchanged.
func fieldSubsetEqual(orig, reparsed map[string]interface{}) bool {
	origTS, origTSOK := jsonval.Int64(orig, "timestamp")
	repTS, repTSOK := jsonval.Int64(reparsed, "timestamp")
	if origTSOK != repTSOK || origTS != repTS {
		return false
	}

	origDev, origDevOK := jsonval.String(orig, "device")
	repDev, repDevOK := jsonval.String(reparsed, "device")
	if origDevOK != repDevOK || origDev != repDev {
		return false
	}

	origFound, origFoundOK := jsonval.Bool(orig, "data_found")
	repFound, repFoundOK := jsonval.Bool(reparsed, "data_found")
	if origFoundOK != repFoundOK || origFound != repFound {
		return false
	}

	return true
}
