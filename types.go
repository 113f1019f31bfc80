package main

import "errors"

var (
	ErrPrefixMissing = errors.New("line lacks expected payload prefix")

	outcomeChannel = make(chan CheckOutcome)
)

// CheckOutcome is the per-message verdict pushed to the metrics publisher
// in live mode.
type CheckOutcome struct {
	Topic     string
	Device    string
	DataFound bool
	Cells     int
	Passed    bool
}

// Application Config (live mode only; the self-check needs none)
type Config struct {
	Broker      string `json:"broker"`
	Topic       string `json:"topic"`
	QoS         byte   `json:"qos"`
	ClientID    string `json:"clientID"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Prefix      string `json:"prefix"`
	TelegrafURL string `json:"telegrafURL"`
}
