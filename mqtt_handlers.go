package main

import (
	"encoding/json"
	"strings"

	"bmsjsoncheck/daly"

	"github.com/charmbracelet/log"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// topicHandler validates one message received from the bridge topic.
type topicHandler func(topic string, payload []byte) error

func makeHandler(handlers map[string]topicHandler) mqtt.MessageHandler {
	return func(client mqtt.Client, msg mqtt.Message) {

		topic := msg.Topic()
		log.Infof("Received MQTT message from topic: \x1b[33m%s\x1b[0m", topic)

		for pattern, handler := range handlers {
			if topicMatches(pattern, topic) {
				err := handler(topic, msg.Payload())
				if err != nil {
					log.Errorf("failed to process [%s] with handler [%s] error: [%s]", topic, pattern, err)
				} else {
					log.Infof("Dispatched [%s] => [%s]", topic, pattern)
				}
				return
			}
		}
		log.Warnf("no handler matches topic [%s]", topic)
	}
}

// handleBridgeMessage validates one republished console line. The bridge
// forwards lines verbatim, so a message may carry the console prefix, a
// bare JSON report, or plain log chatter. outcomes may be nil when no
// metrics sink is configured.
func handleBridgeMessage(prefix string, outcomes chan<- CheckOutcome) topicHandler {
	return func(topic string, payload []byte) error {
		line := strings.TrimRight(string(payload), "\r\n")

		var doc string
		switch {
		case strings.HasPrefix(line, prefix):
			doc = line[len(prefix):]
		case isLikelyJSON(payload):
			doc = line
		default:
			log.Debugf("skipping non-payload line on [%s]", topic)
			return nil
		}

		var sr daly.StatusReport
		if err := json.Unmarshal([]byte(doc), &sr); err != nil {
			log.Warnf("Error unmarshaling JSON: payload: [%s]  %v", doc, err)
			if outcomes != nil {
				outcomes <- CheckOutcome{Topic: topic, Passed: false}
			}
			return daly.ErrHandleStatusReport
		}

		cells := 0
		if info := sr.MainInfo(); info != nil {
			cells = len(info.CellVoltages)
			log.Infof("device [%s]: %d cells, pack %.3fV, soc %.1f%%", sr.Device, cells, info.PackVoltage, info.SOC)
		} else {
			log.Infof("device [%s]: no parsed data", sr.Device)
		}

		if outcomes != nil {
			outcomes <- CheckOutcome{
				Topic:     topic,
				Device:    sr.Device,
				DataFound: sr.DataFound,
				Cells:     cells,
				Passed:    true,
			}
		}
		return nil
	}
}
