// The agent is the courier-side tracking process. It reads GPS samples from
// stdin (one "lat,lng" line per reading, the way the gps pipe emits them),
// throttles them, and reports the accepted ones to the delivery service while
// the courier has active deliveries.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"yega/cmd"
	httpin "yega/internal/adapters/in/http"
	"yega/internal/core/domain/model/kernel"
	"yega/internal/core/domain/model/order"
	"yega/internal/jobs"
	"yega/internal/tracking"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	courierID, err := kernel.UUIDFromString(configs.CourierID)
	if err != nil {
		log.Fatalf("Invalid COURIER_ID: %v", err)
	}

	client := newAPIClient(configs.ServerBaseURL, courierID)

	throttle, err := tracking.NewThrottle(tracking.DefaultConfig())
	if err != nil {
		log.Fatalf("Invalid throttle config: %v", err)
	}
	reporter := tracking.NewReporter(throttle, client, logger)

	feed := make(chan tracking.Sample)
	go readSamples(os.Stdin, feed, logger)

	manager := jobs.NewJobManager(client, &reporterRunner{reporter: reporter, feed: feed}, logger)
	if err := manager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer manager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Agent shutting down")
}

func getConfigs() cmd.AgentConfig {
	return cmd.AgentConfig{
		ServerBaseURL: goDotEnvVariable("SERVER_BASE_URL"),
		CourierID:     goDotEnvVariable("COURIER_ID"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// reporterRunner adapts the tracking reporter to the jobs.ReporterRunner
// contract. Sessions share the process-wide sample feed.
type reporterRunner struct {
	reporter *tracking.Reporter
	feed     chan tracking.Sample
}

func (r *reporterRunner) Run(ctx context.Context) error {
	return r.reporter.Run(ctx, r.feed)
}

// readSamples parses "lat,lng" lines into timestamped samples. Malformed
// lines are logged and skipped; the feed closes when stdin does.
func readSamples(input *os.File, feed chan<- tracking.Sample, logger *slog.Logger) {
	defer close(feed)

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sample, err := parseSample(line)
		if err != nil {
			logger.Warn("Skipping malformed GPS line", "line", line, "error", err)
			continue
		}

		feed <- sample
	}
}

func parseSample(line string) (tracking.Sample, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return tracking.Sample{}, fmt.Errorf("expected lat,lng, got %q", line)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return tracking.Sample{}, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return tracking.Sample{}, err
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return tracking.Sample{}, err
	}

	return tracking.Sample{Point: point, At: time.Now()}, nil
}

// apiClient talks to the delivery service as the courier principal. It is
// both the tracking.LocationPusher and the jobs.EligibilityChecker.
type apiClient struct {
	baseURL   string
	courierID kernel.UUID
	http      *http.Client
}

func newAPIClient(baseURL string, courierID kernel.UUID) *apiClient {
	return &apiClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		courierID: courierID,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Push reports one accepted sample via PUT /api/v1/location.
func (c *apiClient) Push(ctx context.Context, sample tracking.Sample) error {
	reportedAt := sample.At
	payload := httpin.ReportLocationRequest{
		Latitude:   sample.Point.Latitude(),
		Longitude:  sample.Point.Longitude(),
		ReportedAt: &reportedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/v1/location", bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setIdentity(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("location push rejected with status %d", resp.StatusCode)
	}
	return nil
}

// Check reports whether the courier currently has at least one active
// assigned delivery.
func (c *apiClient) Check(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/orders", nil)
	if err != nil {
		return false, err
	}
	c.setIdentity(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("order listing failed with status %d", resp.StatusCode)
	}

	var summaries []httpin.OrderSummary
	if err = json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return false, err
	}

	mine := c.courierID.Bytes()
	for _, summary := range summaries {
		if summary.CourierID == nil || *summary.CourierID != mine {
			continue
		}

		status, statusErr := order.ParseStatus(summary.Status)
		if statusErr != nil {
			continue
		}
		if !status.IsTerminal() {
			return true, nil
		}
	}

	return false, nil
}

func (c *apiClient) setIdentity(req *http.Request) {
	req.Header.Set(httpin.HeaderUserID, c.courierID.String())
	req.Header.Set(httpin.HeaderUserRole, kernel.RoleCourier.String())
}
