package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// JobsUpdatedEvent tells connected clients a fresh batch landed and the
// feed should be refetched.
type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	BatchID   string `json:"batch_id"`
	Jobs      int    `json:"jobs"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyJobsUpdated(batchID string, jobs int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		BatchID:   batchID,
		Jobs:      jobs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
