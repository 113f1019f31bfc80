package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// receive check outcomes on the channel and publish to the Telegraf server
func startPublisher(ctx context.Context, wg *sync.WaitGroup, telegrafURL string, outcomes chan CheckOutcome) {
	defer wg.Done()

	for {

		select {
		case outcome := <-outcomes:
			timestamp := time.Now().UnixNano()

			device := outcome.Device
			if device == "" {
				device = "unknown"
			}
			passed := 0
			if outcome.Passed {
				passed = 1
			}

			line := fmt.Sprintf("bms_check,topic=%s,device=%s "+
				"passed=%di,data_found=%t,cells=%di %d",
				outcome.Topic, device, passed, outcome.DataFound, outcome.Cells, timestamp)

			// create and send request to the telegraf server
			req, err := http.NewRequest("POST", telegrafURL, bytes.NewBuffer([]byte(line)))
			if err != nil {
				log.Error("Error creating request:", err)
				continue
			}
			req.Header.Set("Content-Type", "text/plain")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				log.Error("Error posting to Telegraf:", err)
				continue
			}
			err = resp.Body.Close()
			if err != nil {
				log.Error("Error failed to close Request Body:", err)
			}

			if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK {
				log.Infof("metric published to Telegraf: %s", line)
			} else {
				log.Warnf("FAILED metric published to Telegraf Line: [%s], StatusCode: %d, Status: %s", line, resp.StatusCode, resp.Status)
			}

		case <-ctx.Done():
			log.Info("Publisher received shutdown signal (cancelled).")
			return
		}
	}
}
