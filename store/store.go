// Package store persists recommendation sets keyed by analysis ID. It is
// the external persistence collaborator: the engine hands it recommendation
// arrays to keep verbatim, and only this package ever mutates a
// recommendation's status.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pagegrade/backend/recommend"
)

// Status values a stored recommendation can hold.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusDismissed  = "dismissed"
)

var (
	// ErrNotFound is returned when an analysis or recommendation ID is unknown.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus is returned for status values outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status")
)

// StoredRecommendation is a recommendation row plus its store-owned status.
type StoredRecommendation struct {
	recommend.Recommendation
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// analysisRecord groups the rows of one analysis.
type analysisRecord struct {
	AnalysisID      string                 `json:"analysisId"`
	Recommendations []StoredRecommendation `json:"recommendations"`
	SavedAt         time.Time              `json:"savedAt"`
}

// Store handles persistent storage of recommendation sets. Writes go to a
// temporary file first and are renamed into place, so the file on disk is
// always a complete JSON document.
type Store struct {
	mutex       sync.RWMutex
	records     map[string]*analysisRecord
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
}

// New creates a recommendation store backed by dataDir/recommendations.json.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		records:     make(map[string]*analysisRecord),
		filePath:    filepath.Join(dataDir, "recommendations.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}

	go s.backgroundWriter()
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	return json.Unmarshal(data, &s.records)
}

func (s *Store) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.records)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

func (s *Store) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		case <-s.done:
			return
		}
	}
}

// requestWrite coalesces pending write requests.
func (s *Store) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
	}
}

// SaveSet stores the recommendations of one analysis verbatim, initializing
// every row's status to pending. An existing record for the same analysis ID
// is replaced.
func (s *Store) SaveSet(analysisID string, recommendations []recommend.Recommendation) error {
	if analysisID == "" {
		return fmt.Errorf("empty analysis id")
	}
	now := time.Now()
	rows := make([]StoredRecommendation, 0, len(recommendations))
	for _, rec := range recommendations {
		rows = append(rows, StoredRecommendation{
			Recommendation: rec,
			Status:         StatusPending,
			UpdatedAt:      now,
		})
	}

	s.mutex.Lock()
	s.records[analysisID] = &analysisRecord{
		AnalysisID:      analysisID,
		Recommendations: rows,
		SavedAt:         now,
	}
	s.mutex.Unlock()

	s.requestWrite()
	return nil
}

// Get returns the stored rows for one analysis.
func (s *Store) Get(analysisID string) ([]StoredRecommendation, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, ok := s.records[analysisID]
	if !ok {
		return nil, fmt.Errorf("analysis %s: %w", analysisID, ErrNotFound)
	}
	rows := make([]StoredRecommendation, len(record.Recommendations))
	copy(rows, record.Recommendations)
	return rows, nil
}

// UpdateStatus toggles one recommendation's status. The engine never calls
// this; status is purely a store concern.
func (s *Store) UpdateStatus(analysisID, recommendationID, status string) error {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDismissed:
	default:
		return fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.records[analysisID]
	if !ok {
		return fmt.Errorf("analysis %s: %w", analysisID, ErrNotFound)
	}
	for i := range record.Recommendations {
		if record.Recommendations[i].ID == recommendationID {
			record.Recommendations[i].Status = status
			record.Recommendations[i].UpdatedAt = time.Now()
			s.requestWrite()
			return nil
		}
	}
	return fmt.Errorf("recommendation %s: %w", recommendationID, ErrNotFound)
}

// Cleanup drops records older than maxAge.
func (s *Store) Cleanup(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)

	s.mutex.Lock()
	for id, record := range s.records {
		if record.SavedAt.Before(cutoff) {
			delete(s.records, id)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
}

// Shutdown stops the background writer after a final save.
func (s *Store) Shutdown() error {
	close(s.done)
	return s.save()
}
