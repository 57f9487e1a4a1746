package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	entriesPerFile = 5000
	fileCount      = 4
)

var (
	customers = []string{"cus-axon", "cus-borealis", "cus-cinder"}
	paths     = []string{"/", "/api/items", "/api/orders", "/health"}
	statuses  = []int{200, 200, 200, 201, 204, 301, 404, 500}
)

// ### End - fixed configs

type submitResponse struct {
	JobID string `json:"jobId"`
}

type ingestionReport struct {
	JobID     string `json:"jobId"`
	Status    string `json:"status"`
	Accepted  int64  `json:"accepted"`
	Rejected  int64  `json:"rejected"`
	Persisted int64  `json:"persisted"`
}

type customerStats struct {
	TotalRequests      int64   `json:"total_requests"`
	SuccessfulRequests int64   `json:"successful_requests"`
	FailedRequests     int64   `json:"failed_requests"`
	Uptime             string  `json:"uptime"`
	AvgLatency         *string `json:"avg_latency"`
	MedianLatency      *string `json:"median_latency"`
	P99Latency         *string `json:"p99_latency"`
}

type sample struct {
	customerID string
	day        string
	statusCode int
	durationMs float64
}

// main runs the e2e scenario: 001_customer_stats
//
// It generates fileCount access logs, uploads them through POST /ingestion-jobs (every
// other file gzip-compressed), waits for every job report to become final and compares
// GET /customers/{id}/stats against statistics computed locally from the same data.
//
// Expected results:
//   - every job completes with accepted = persisted = entriesPerFile and one rejected line
//   - stats for every customer and from_date match the locally computed values
//   - an unknown customer returns 404 and a malformed from_date returns 400
//
// Run it against a freshly migrated, empty database.
func main() {
	baseURL := "http://localhost:8080"
	dateUTC := "2025-12-28"
	parallel := 2
	pollTimeout := 2 * time.Minute

	fmt.Println("Starting e2e scenario: 001_customer_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("FILE_COUNT: %d\n", fileCount)
	fmt.Printf("ENTRIES_PER_FILE: %d\n", entriesPerFile)
	fmt.Println()

	start, err := time.Parse("2006-01-02", dateUTC)
	if err != nil {
		fail("invalid date %q: %v", dateUTC, err)
	}

	var allSamples []sample
	bodies := make([][]byte, fileCount)
	for fileIndex := 0; fileIndex < fileCount; fileIndex++ {
		body, samples := generateFile(fileIndex, start)
		allSamples = append(allSamples, samples...)
		if fileIndex%2 == 1 {
			body = gzipBytes(body)
		}
		bodies[fileIndex] = body
	}

	jobIDs := make([]string, fileCount)
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error
	for fileIndex, body := range bodies {
		wg.Add(1)
		workerChan <- struct{}{}
		go func(fileIndex int, body []byte) {
			defer wg.Done()
			defer func() { <-workerChan }()

			jobID, err := submitJob(baseURL, body)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("file %d: %w", fileIndex, err))
				return
			}
			jobIDs[fileIndex] = jobID
			fmt.Printf("File %d submitted as job %s\n", fileIndex, jobID)
		}(fileIndex, body)
	}
	wg.Wait()
	if len(errs) > 0 {
		fail("%d submissions failed: %v", len(errs), errs)
	}

	for fileIndex, jobID := range jobIDs {
		report, err := waitForReport(baseURL, jobID, pollTimeout)
		if err != nil {
			fail("job %s: %v", jobID, err)
		}
		if report.Status != "completed" || report.Accepted != entriesPerFile ||
			report.Persisted != entriesPerFile || report.Rejected != 1 {
			fail("file %d: unexpected report %+v", fileIndex, report)
		}
		fmt.Printf("Job %s completed (accepted=%d, rejected=%d, persisted=%d)\n",
			jobID, report.Accepted, report.Rejected, report.Persisted)
	}
	fmt.Println()

	mismatches := 0
	for _, customerID := range customers {
		for dayOffset := 0; dayOffset < fileCount; dayOffset++ {
			fromDate := start.AddDate(0, 0, dayOffset).Format("2006-01-02")
			want := expectedStats(allSamples, customerID, fromDate)

			got, status, err := getStats(baseURL, customerID, fromDate)
			if err != nil {
				fail("stats %s %s: %v", customerID, fromDate, err)
			}
			if status != http.StatusOK || !equalStats(want, got) {
				mismatches++
				fmt.Fprintf(os.Stderr, "MISMATCH %s from %s: status=%d want=%s got=%s\n",
					customerID, fromDate, status, describe(want), describe(got))
				continue
			}
			fmt.Printf("Stats %s from %s OK (%s)\n", customerID, fromDate, describe(got))
		}
	}

	if _, status, err := getStats(baseURL, "cus-unknown", dateUTC); err != nil || status != http.StatusNotFound {
		mismatches++
		fmt.Fprintf(os.Stderr, "MISMATCH unknown customer: status=%d err=%v\n", status, err)
	}
	if _, status, err := getStats(baseURL, customers[0], "28-12-2025"); err != nil || status != http.StatusBadRequest {
		mismatches++
		fmt.Fprintf(os.Stderr, "MISMATCH malformed date: status=%d err=%v\n", status, err)
	}

	fmt.Println()
	if mismatches > 0 {
		fail("%d mismatches", mismatches)
	}
	fmt.Println("Scenario completed successfully")
}

// generateFile returns one log file: one line per day of fileIndex, plus one malformed line.
func generateFile(fileIndex int, start time.Time) ([]byte, []sample) {
	var buf bytes.Buffer
	samples := make([]sample, 0, entriesPerFile)
	day := start.AddDate(0, 0, fileIndex)

	for i := 0; i < entriesPerFile; i++ {
		if i == entriesPerFile/2 {
			buf.WriteString("this line is not an access log entry\n")
		}
		s := sample{
			customerID: customers[(i+fileIndex)%len(customers)],
			day:        day.Format("2006-01-02"),
			statusCode: statuses[(i*7+fileIndex)%len(statuses)],
			durationMs: float64((i*37+fileIndex*11)%2000) / 100,
		}
		timestamp := day.Add(time.Duration(i) * time.Second).Format("2006-01-02 15:04:05")
		fmt.Fprintf(&buf, "%s %s %s %d %.2f\n", timestamp, s.customerID, paths[i%len(paths)], s.statusCode, s.durationMs)
		samples = append(samples, s)
	}
	return buf.Bytes(), samples
}

func gzipBytes(data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func submitJob(baseURL string, body []byte) (string, error) {
	resp, err := http.Post(baseURL+"/ingestion-jobs", "application/octet-stream", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	var submitted submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitted); err != nil {
		return "", err
	}
	return submitted.JobID, nil
}

func waitForReport(baseURL, jobID string, timeout time.Duration) (*ingestionReport, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/ingestion-jobs/" + jobID)
		if err != nil {
			return nil, err
		}
		var report ingestionReport
		decodeErr := json.NewDecoder(resp.Body).Decode(&report)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		if decodeErr != nil {
			return nil, decodeErr
		}
		if report.Status != "pending" {
			return &report, nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return nil, fmt.Errorf("report still pending after %s", timeout)
}

func getStats(baseURL, customerID, fromDate string) (*customerStats, int, error) {
	resp, err := http.Get(fmt.Sprintf("%s/customers/%s/stats?from_date=%s", baseURL, customerID, fromDate))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}
	var stats customerStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, resp.StatusCode, err
	}
	return &stats, resp.StatusCode, nil
}

func expectedStats(samples []sample, customerID, fromDate string) *customerStats {
	var durations []float64
	var successful int64
	for _, s := range samples {
		if s.customerID != customerID || s.day < fromDate {
			continue
		}
		durations = append(durations, s.durationMs)
		if s.statusCode < 400 {
			successful++
		}
	}

	total := int64(len(durations))
	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	sort.Float64s(durations)

	return &customerStats{
		TotalRequests:      total,
		SuccessfulRequests: successful,
		FailedRequests:     total - successful,
		Uptime:             fmt.Sprintf("%.2f%%", float64(successful)/float64(total)*100),
		AvgLatency:         latency(sum / float64(total)),
		MedianLatency:      latency(percentile(durations, 0.5)),
		P99Latency:         latency(percentile(durations, 0.99)),
	}
}

func percentile(sorted []float64, p float64) float64 {
	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower] + (rank-float64(lower))*(sorted[lower+1]-sorted[lower])
}

func latency(ms float64) *string {
	s := fmt.Sprintf("%.2fms", ms)
	return &s
}

func equalStats(want, got *customerStats) bool {
	return describe(want) == describe(got)
}

func describe(s *customerStats) string {
	if s == nil {
		return "<nil>"
	}
	deref := func(p *string) string {
		if p == nil {
			return "null"
		}
		return *p
	}
	return fmt.Sprintf("total=%d ok=%d failed=%d uptime=%s avg=%s median=%s p99=%s",
		s.TotalRequests, s.SuccessfulRequests, s.FailedRequests, s.Uptime,
		deref(s.AvgLatency), deref(s.MedianLatency), deref(s.P99Latency))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
