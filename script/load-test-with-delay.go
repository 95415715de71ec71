package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// Scenario is one kind of dashboard read
type Scenario struct {
	Name  string
	Path  string
	Query func(term string) url.Values
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	RateLimited        int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioTimes      map[string][]time.Duration
	Lock               sync.Mutex
}

func scenarios() []Scenario {
	none := func(string) url.Values { return url.Values{} }
	return []Scenario{
		{"First page", "/api/v1/transactions", none},
		{"Search", "/api/v1/transactions", func(term string) url.Values {
			return url.Values{"search": {term}}
		}},
		{"Remote search", "/api/v1/transactions", func(term string) url.Values {
			return url.Values{"search": {term}, "remote": {"true"}}
		}},
		{"Scroll window", "/api/v1/transactions", func(string) url.Values {
			return url.Values{
				"scrollTop":       {fmt.Sprint(rand.Intn(400) * 48)},
				"containerHeight": {"600"},
			}
		}},
		{"Orders only", "/api/v1/transactions", func(string) url.Values {
			return url.Values{"type": {"ORDER"}, "sign": {"debit"}}
		}},
		{"Balance sheet", "/api/v1/transactions/balance-sheet", none},
		{"Sales summary", "/api/v1/transactions/sales-summary", none},
		{"Pending orders", "/api/v1/orders/queue", func(term string) url.Values {
			return url.Values{"status": {"PENDING"}, "search": {term}}
		}},
	}
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	termsStr := flag.String("terms", "alice,bob,024", "Comma-separated search terms to spread across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var terms []string
	for _, term := range strings.Split(*termsStr, ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		terms = []string{"a"}
	}

	all := scenarios()
	fmt.Printf("Load testing %s with %d scenarios and search terms %v\n", *baseURL, len(all), terms)
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioTimes: make(map[string][]time.Duration),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, terms, all, jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.StatusCode == http.StatusTooManyRequests:
				stats.FailedRequests++
				stats.RateLimited++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.ScenarioTimes[result.Scenario] = append(stats.ScenarioTimes[result.Scenario], result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(baseURL string, delayMs int, terms []string, all []Scenario, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := all[rand.Intn(len(all))]
		term := terms[rand.Intn(len(terms))]
		target := baseURL + scenario.Path
		if q := scenario.Query(term).Encode(); q != "" {
			target += "?" + q
		}

		start := time.Now()
		resp, err := client.Get(target)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start)}

		if err != nil {
			result.Error = err
		} else {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
		}

		results <- result
	}
}

// percentiles returns p50, p90, p95 and p99 of times
func percentiles(times []time.Duration) [4]time.Duration {
	var out [4]time.Duration
	if len(times) == 0 {
		return out
	}
	sorted := append([]time.Duration(nil), times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, p := range []int{50, 90, 95, 99} {
		out[i] = sorted[len(sorted)*p/100]
	}
	return out
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	p := percentiles(stats.ResponseTimes)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (rate limited: %d)\n", stats.FailedRequests, stats.RateLimited)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/second\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50: %v  P90: %v  P95: %v  P99: %v\n", p[0], p[1], p[2], p[3])

	fmt.Println("\n----------------- PER SCENARIO -----------------")
	names := make([]string, 0, len(stats.ScenarioTimes))
	for name := range stats.ScenarioTimes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		times := stats.ScenarioTimes[name]
		sp := percentiles(times)
		fmt.Printf("%-15s: %4d requests, p50 %v, p95 %v\n", name, len(times), sp[0], sp[2])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
