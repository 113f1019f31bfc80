package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

func loadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = file.Close()
		if err != nil {
			log.Warnf("failed to close config file")
		}
	}()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// topicMatches returns true if the received topic matches the subscription topic
func topicMatches(subscription, received string) bool {
	// Case 1: No wildcard, exact match only
	if !strings.HasSuffix(subscription, "#") {
		return subscription == received
	}

	// Case 2: Wildcard '#'
	if subscription == "#" {
		return true // Matches everything
	}

	if strings.HasSuffix(subscription, "/#") {
		prefix := strings.TrimSuffix(subscription, "/#")
		return received == prefix || strings.HasPrefix(received, prefix+"/")
	}

	// Unsupported wildcard usage (e.g., '#' not at end)
	return false
}

// examine the payload and heuristically determine if it's a json document
func isLikelyJSON(payload []byte) bool {
	// Trim leading whitespace and check if the first non-space char is '{'
	for _, b := range payload {
		if b == ' ' || b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		return (b == '{')
	}
	return false
}
