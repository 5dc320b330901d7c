package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// InvocationEvent records usage for a single model invocation.
type InvocationEvent struct {
	Timestamp    string  `json:"ts"`
	InvocationID string  `json:"invocation"`
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	InputTokens  int     `json:"in"`
	OutputTokens int     `json:"out"`
	CostUSD      float64 `json:"cost"`
	Attachments  int     `json:"attachments,omitempty"`
	StopReason   string  `json:"stop_reason,omitempty"`
}

// Tracker appends invocation events to a JSONL file.
type Tracker struct {
	filePath string
	mu       sync.Mutex
}

// DefaultDir is the global config dir, ~/.bedrockclaw. Falls back to the
// working directory when the home dir cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".bedrockclaw")
}

// NewTracker creates a tracker that writes to <dir>/metrics/invocations.jsonl.
func NewTracker(dir string) *Tracker {
	metricsDir := filepath.Join(dir, "metrics")
	os.MkdirAll(metricsDir, 0755)
	return &Tracker{
		filePath: filepath.Join(metricsDir, "invocations.jsonl"),
	}
}

// Record appends an invocation event. Recording is best-effort: a failed
// append never fails the invocation that produced it.
func (t *Tracker) Record(event InvocationEvent) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().Format(time.RFC3339)
	}
	event.CostUSD = calculateCost(event.Model, event.InputTokens, event.OutputTokens)

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(t.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	f.Write(data)
	f.Write([]byte("\n"))
}

// Model pricing per million tokens (input, output), Bedrock on-demand rates.
type modelPricing struct {
	inputPerM  float64
	outputPerM float64
}

var pricing = map[string]modelPricing{
	"claude-opus-4-5":   {15.0, 75.0},
	"claude-sonnet-4-5": {3.0, 15.0},
	"claude-3-7-sonnet": {3.0, 15.0},
	"claude-3-5-sonnet": {3.0, 15.0},
	"claude-3-5-haiku":  {0.8, 4.0},
	"claude-3-opus":     {15.0, 75.0},
}

func calculateCost(model string, input, output int) float64 {
	p, ok := pricing[model]
	if !ok {
		// Default to Sonnet pricing
		p = modelPricing{3.0, 15.0}
	}

	return float64(input)*p.inputPerM/1e6 + float64(output)*p.outputPerM/1e6
}
