// Command simulate-desk plays the clinic staff desk: it publishes serving
// token updates to Kafka so a locally running server can be driven end to end
// without the real desk software.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/sarama"
)

type tokenAdvancedEvent struct {
	ClinicID     string    `json:"clinic_id"`
	ServingToken int       `json:"serving_token"`
	Timestamp    time.Time `json:"timestamp"`
}

var (
	brokers    = flag.String("brokers", "localhost:9092", "Kafka brokers (comma separated)")
	clinicID   = flag.String("clinic", "1", "Clinic ID to advance")
	startToken = flag.Int("start", 1, "Serving token to start from")
	interval   = flag.Duration("interval", 5*time.Second, "Delay between ticks")
	maxTicks   = flag.Int("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
)

func main() {
	flag.Parse()

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	prod, err := sarama.NewSyncProducer(strings.Split(*brokers, ","), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to Kafka: %v\n", err)
		os.Exit(1)
	}
	defer prod.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	token := *startToken
	ticks := 0

	fmt.Printf("Advancing serving token for clinic %s every %s, starting at %d\n", *clinicID, *interval, token)

	for {
		select {
		case <-quit:
			fmt.Println("Interrupted, stopping")
			return
		case <-ticker.C:
			if err := publish(prod, *clinicID, token); err != nil {
				fmt.Fprintf(os.Stderr, "Publish failed: %v\n", err)
			} else {
				fmt.Printf("Now serving token %d\n", token)
			}

			token++
			ticks++
			if *maxTicks > 0 && ticks >= *maxTicks {
				fmt.Println("Done")
				return
			}
		}
	}
}

func publish(prod sarama.SyncProducer, clinicID string, token int) error {
	val, err := json.Marshal(tokenAdvancedEvent{
		ClinicID:     clinicID,
		ServingToken: token,
		Timestamp:    time.Now(),
	})
	if err != nil {
		return err
	}

	_, _, err = prod.SendMessage(&sarama.ProducerMessage{
		Topic: "token.advanced",
		Key:   sarama.StringEncoder(clinicID),
		Value: sarama.ByteEncoder(val),
	})
	return err
}
