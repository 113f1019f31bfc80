package daly

import "errors"

var (
	ErrHandleStatusReport = errors.New("failed to handle BMS status report")
)

// BMSDataPrefix marks a payload line on the producer's console stream,
// distinguishing it from free-form log output.
const BMSDataPrefix = "BMS_DATA:"

type CellVoltage struct {
	CellNumber int     `json:"cellNumber"`
	Voltage    float64 `json:"voltage"`
}

type TemperatureReading struct {
	Sensor      string  `json:"sensor"`
	Temperature float64 `json:"temperature"`
}

type FrameHeader struct {
	StartByte  string `json:"startByte"`
	CommandID  string `json:"commandId"`
	DataLength int    `json:"dataLength"`
}

type MosStatus struct {
	ChargingMos    bool `json:"chargingMos"`
	DischargingMos bool `json:"dischargingMos"`
	Balancing      bool `json:"balancing"`
}

// MainInfo is the decoded 0x03 main-info frame as the producer reports it.
type MainInfo struct {
	Header            FrameHeader          `json:"header"`
	CellVoltages      []CellVoltage        `json:"cellVoltages"`
	PackVoltage       float64              `json:"packVoltage"`
	Current           float64              `json:"current"`
	SOC               float64              `json:"soc"`
	RemainingCapacity float64              `json:"remainingCapacity"`
	TotalCapacity     float64              `json:"totalCapacity"`
	Cycles            int                  `json:"cycles"`
	Temperatures      []TemperatureReading `json:"temperatures"`
	MosStatus         MosStatus            `json:"mosStatus"`
	Checksum          string               `json:"checksum"`
	Timestamp         string               `json:"timestamp"`
}

type CommandResult struct {
	CommandSent      string    `json:"command_sent"`
	ResponseReceived bool      `json:"response_received"`
	ResponseData     string    `json:"response_data"`
	ParsedData       *MainInfo `json:"parsed_data,omitempty"`
}

type ProtocolStatus struct {
	Status        string                   `json:"status"`
	Notifications string                   `json:"notifications"`
	Commands      map[string]CommandResult `json:"commands"`
}

// StatusReport is the periodic status snapshot the producer emits.
type StatusReport struct {
	Timestamp  int64          `json:"timestamp"`
	Device     string         `json:"device"`
	MACAddress string         `json:"mac_address"`
	Daly       ProtocolStatus `json:"daly_protocol"`
	DataFound  bool           `json:"data_found"`
}

// MainInfo returns the parsed main_info block, or nil when the report
// carries none.
func (r *StatusReport) MainInfo() *MainInfo {
	cmd, ok := r.Daly.Commands["main_info"]
	if !ok {
		return nil
	}
	return cmd.ParsedData
}
