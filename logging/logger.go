// Package logging collects service usage statistics: unique visitors,
// per-endpoint request counts, grade distribution of analyzed pages, and
// processing times. The full breakdown is only exposed in dev mode.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Environment variable controlling statistics visibility
const ENV_DEV_MODE = "DEV_MODE"

// Statistics represents the collected service statistics
type Statistics struct {
	UniqueVisitors    map[string]time.Time `json:"uniqueVisitors"` // IP -> last visit time
	AnalysisRequests  int                  `json:"analysisRequests"`
	ErrorCount        int                  `json:"errorCount"`
	EndpointCounts    map[string]int       `json:"endpointCounts"` // endpoint name -> count
	GradeCounts       map[string]int       `json:"gradeCounts"`    // A-F -> count
	LanguageCounts    map[string]int       `json:"languageCounts"` // language code -> count
	AverageLoadTime   float64              `json:"averageLoadTime"` // milliseconds
	TotalLoadTime     float64              `json:"-"`
	RequestCount      int                  `json:"-"`
	LastPersisted     time.Time            `json:"lastPersisted"`
	filePath          string
	mutex             sync.RWMutex
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics, persisted under dataDir.
func Initialize(dataDir string) *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors: make(map[string]time.Time),
			EndpointCounts: make(map[string]int),
			GradeCounts:    make(map[string]int),
			LanguageCounts: make(map[string]int),
			LastPersisted:  time.Now(),
			filePath:       filepath.Join(dataDir, "statistics.json"),
		}

		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// TrackRequest records one request against an endpoint name.
func (s *Statistics) TrackRequest(endpoint string, loadTime float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.AnalysisRequests++
	s.EndpointCounts[endpoint]++

	if hasError {
		s.ErrorCount++
	}

	s.TotalLoadTime += loadTime
	s.RequestCount++
	s.AverageLoadTime = s.TotalLoadTime / float64(s.RequestCount)
}

// TrackPanic records a request that died in a handler panic. The stats
// middleware never observes these requests, so the counters are updated here.
func (s *Statistics) TrackPanic(endpoint string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if endpoint == "" {
		endpoint = "unknown"
	}
	s.AnalysisRequests++
	s.ErrorCount++
	s.EndpointCounts[endpoint]++
}

// TrackAnalysis records the outcome of one full page analysis.
func (s *Statistics) TrackAnalysis(grade, language string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if grade != "" {
		s.GradeCounts[grade]++
	}
	if language != "" {
		s.LanguageCounts[language]++
	}
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.uniqueVisitorsLocked()
}

func (s *Statistics) uniqueVisitorsLocked() int {
	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}
	return count
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.errorRateLocked()
}

func (s *Statistics) errorRateLocked() float64 {
	if s.AnalysisRequests == 0 {
		return 0
	}
	return (float64(s.ErrorCount) / float64(s.AnalysisRequests)) * 100
}

// Save persists the statistics to disk
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create(s.filePath)
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}

	return nil
}

// Load reads the statistics from disk
func (s *Statistics) Load() error {
	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no file yet
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}

	return nil
}

// GetStatistics returns the current statistics. Outside dev mode only the
// aggregate numbers are exposed; the per-endpoint and per-grade breakdowns
// need DEV_MODE=true.
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	base := map[string]interface{}{
		"uniqueVisitors24h": s.uniqueVisitorsLocked(),
		"totalRequests":     s.AnalysisRequests,
		"errorRate":         s.errorRateLocked(),
		"averageLoadTime":   s.AverageLoadTime,
	}

	if os.Getenv(ENV_DEV_MODE) != "true" {
		return base
	}

	base["endpointCounts"] = copyCounts(s.EndpointCounts)
	base["gradeCounts"] = copyCounts(s.GradeCounts)
	base["languageCounts"] = copyCounts(s.LanguageCounts)
	return base
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
