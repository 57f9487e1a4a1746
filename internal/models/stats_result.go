package models

// StatsResult aggregates the log entries of one customer since a point in time.
// SuccessfulRequests + FailedRequests always equals TotalRequests. A latency is nil
// when it cannot be computed.
type StatsResult struct {
	TotalRequests      int64
	SuccessfulRequests int64
	FailedRequests     int64
	AvgLatencyMs       *float64
	MedianLatencyMs    *float64
	P99LatencyMs       *float64
}

// CustomerStats is the rendered form of a StatsResult.
//
// Example JSON:
//
//	{
//	  "total_requests": 100,
//	  "successful_requests": 90,
//	  "failed_requests": 10,
//	  "uptime": "90.00%",
//	  "avg_latency": "0.25ms",
//	  "median_latency": "0.20ms",
//	  "p99_latency": "1.93ms"
//	}
type CustomerStats struct {
	TotalRequests      int64   `json:"total_requests"`
	SuccessfulRequests int64   `json:"successful_requests"`
	FailedRequests     int64   `json:"failed_requests"`
	Uptime             string  `json:"uptime"`
	AvgLatency         *string `json:"avg_latency"`
	MedianLatency      *string `json:"median_latency"`
	P99Latency         *string `json:"p99_latency"`
}
