package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// RefreshRecord captures one end-to-end market refresh for audit and
// debugging. Origins name where each dataset came from (cache, live,
// fallback); reasons are only set when the origin is fallback.
type RefreshRecord struct {
	Timestamp    time.Time      `json:"timestamp"`
	CycleID      string         `json:"cycle_id"`
	CycleNumber  int            `json:"cycle_number"`
	Trigger      string         `json:"trigger,omitempty"`
	PricesOrigin string         `json:"prices_origin"`
	PricesReason string         `json:"prices_reason,omitempty"`
	GlobalOrigin string         `json:"global_origin"`
	GlobalReason string         `json:"global_reason,omitempty"`
	RecordCount  int            `json:"record_count"`
	PairCount    int            `json:"pair_count"`
	ElapsedMS    int64          `json:"elapsed_ms"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// Writer persists refresh records to a directory as JSON files.
type Writer struct {
	dir   string
	mu    sync.Mutex
	seq   int
	nowFn func() time.Time
}

// NewWriter constructs a journal writer.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "journal"
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Writer{dir: dir, nowFn: time.Now}
}

// WriteRefresh writes a refresh record to a timestamped JSON file and
// returns its path.
func (w *Writer) WriteRefresh(rec *RefreshRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("journal: nil record")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}
	w.mu.Lock()
	w.seq++
	rec.CycleNumber = w.seq
	w.mu.Unlock()
	name := fmt.Sprintf("refresh_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), rec.CycleNumber)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
