package daly

import (
	"encoding/json"
	"testing"
)

func TestStatusReportDecode(t *testing.T) {
	doc := `{
		"timestamp": 42,
		"device": "DL-1",
		"mac_address": "41:18:12:01:18:9f",
		"daly_protocol": {
			"status": "characteristics_found",
			"commands": {
				"main_info": {
					"response_received": true,
					"parsed_data": {
						"cellVoltages": [{"cellNumber": 1, "voltage": 3.318}],
						"packVoltage": 53.08,
						"soc": 90.4,
						"temperatures": [{"sensor": "T1", "temperature": 30}]
					}
				}
			}
		},
		"data_found": true
	}`

	var sr StatusReport
	if err := json.Unmarshal([]byte(doc), &sr); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	info := sr.MainInfo()
	if info == nil {
		t.Fatal("MainInfo() = nil, want parsed data")
	}
	if len(info.CellVoltages) != 1 || info.CellVoltages[0].Voltage != 3.318 {
		t.Errorf("CellVoltages = %+v", info.CellVoltages)
	}
	if info.Temperatures[0].Sensor != "T1" {
		t.Errorf("Sensor = %q, want T1", info.Temperatures[0].Sensor)
	}
	if info.PackVoltage != 53.08 {
		t.Errorf("PackVoltage = %v, want 53.08", info.PackVoltage)
	}
}

func TestMainInfoAbsent(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty report", `{}`},
		{"no commands", `{"daly_protocol":{"status":"scanning"}}`},
		{"no main_info", `{"daly_protocol":{"commands":{}}}`},
		{"no parsed_data", `{"daly_protocol":{"commands":{"main_info":{"response_received":false}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sr StatusReport
			if err := json.Unmarshal([]byte(tt.doc), &sr); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if sr.MainInfo() != nil {
				t.Error("MainInfo() should be nil when no parsed data is present")
			}
		})
	}
}
