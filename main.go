package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/charmbracelet/log"

	"bmsjsoncheck/daly"
)

func main() {

	var level string
	var configPath string
	var input string
	var broker string
	flag.StringVar(&level, "level", "info", "Log level")
	flag.StringVar(&configPath, "config", "", "Live mode config file (JSON)")
	flag.StringVar(&input, "input", "", "Console capture to scan ('-' for stdin)")
	flag.StringVar(&broker, "broker", "", "MQTT broker URL for live mode")
	flag.Parse()

	// setup logging
	if lvl, err := log.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Fatal("failed to parse log level", "level", level, "err", err)
	}

	switch {
	case configPath != "" || broker != "":
		os.Exit(runLive(configPath, broker))
	case input != "":
		os.Exit(runScan(input))
	default:
		os.Exit(runSelfCheck())
	}
}

// runSelfCheck runs both embedded-sample checks in sequence and ANDs
// their outcomes. A failure in one never stops the other.
func runSelfCheck() int {
	success := true

	log.Info("checking status report round trip")
	report, err := checkRoundTrip(sampleReport)
	switch {
	case err != nil:
		log.Errorf("round-trip check errored: %v", err)
		success = false
	case !report.Passed():
		log.Error("round-trip check failed",
			"parsed", report.Parsed, "fields", report.FieldsRead,
			"serialized", report.Serialized, "roundtrip", report.RoundTripOK)
		success = false
	default:
		log.Info("round-trip check passed", "indented", report.IndentedLen, "compact", report.CompactLen)
	}

	log.Info("checking payload line prefix")
	if prefixed, err := checkPrefixedLine(samplePrefixedLine, daly.BMSDataPrefix); err != nil {
		log.Errorf("prefix check failed: %v", err)
		success = false
	} else {
		log.Info("prefix check passed", "device", prefixed.Device, "dataFound", prefixed.DataFound)
	}

	if !success {
		log.Error("some checks FAILED")
		return 1
	}
	log.Info("all checks passed")
	return 0
}

// runScan validates every payload line in a console capture.
func runScan(input string) int {
	var r io.Reader
	if input == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(input)
		if err != nil {
			log.Errorf("Failed to open capture: %s", err)
			return 1
		}
		defer func() {
			err = file.Close()
			if err != nil {
				log.Warnf("failed to close capture file")
			}
		}()
		r = file
	}

	report, err := scanStream(r, daly.BMSDataPrefix)
	if err != nil {
		log.Errorf("scan errored: %v", err)
		return 1
	}
	log.Infof("scanned %d lines: %d payloads, %d valid, %d invalid",
		report.Lines, report.Payloads, report.Valid, report.Invalid)
	if !report.Passed() {
		return 1
	}
	return 0
}

// runLive subscribes to the bridge topic and validates each republished
// console line as it arrives, until interrupted.
func runLive(configPath, brokerOverride string) int {
	cfg := &Config{}
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			log.Errorf("Failed to load config: %s", err)
			return 1
		}
		cfg = loaded
	}
	if brokerOverride != "" {
		cfg.Broker = brokerOverride
	}
	if cfg.Broker == "" {
		log.Error("no broker configured")
		return 1
	}
	if cfg.Topic == "" {
		cfg.Topic = "bms/console/#"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = daly.BMSDataPrefix
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "bmsjsoncheck"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup

	// Create signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Received interrupt. Cancelling...")
		cancel()
	}()

	// outcomes go to the telegraf publisher only when a sink is configured
	var outcomes chan CheckOutcome
	if cfg.TelegrafURL != "" {
		outcomes = outcomeChannel
		wg.Add(1)
		log.Info("starting telegraf publisher")
		go startPublisher(ctx, &wg, cfg.TelegrafURL, outcomes)
	}

	// setup MQTT connection
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)

	handlers := map[string]topicHandler{
		cfg.Topic: handleBridgeMessage(cfg.Prefix, outcomes),
	}
	opts.SetDefaultPublishHandler(makeHandler(handlers))

	client := mqtt.NewClient(opts)

	// connect to MQTT broker
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Errorf("Error connecting to MQTT broker: %v", token.Error())
		return 1
	}
	log.Info("connected to MQTT broker")

	if token := client.Subscribe(cfg.Topic, cfg.QoS, nil); token.Wait() && token.Error() != nil {
		log.Errorf("Subscription error: %v", token.Error())
		return 1
	}
	log.Infof("subscribed to topic: ['%s'] with Qos: [%d]", cfg.Topic, cfg.QoS)

	// idle until interrupted
	<-ctx.Done()
	wg.Wait()
	log.Info("All routines complete. Exiting.")

	log.Info("Disconnecting from MQTT broker")
	client.Disconnect(250)

	log.Info("shutdown complete, exitting")
	return 0
}
