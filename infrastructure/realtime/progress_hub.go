package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"yt-uploader/domain/dto"
	"yt-uploader/domain/model"

	"github.com/gin-gonic/gin"
)

// Event types sent on the progress stream.
const (
	EventUploadProgress = "upload_progress"
	EventJobStatus      = "job_status"
)

// ProgressEvent is an SSE payload for upload progress and bulk job status.
type ProgressEvent struct {
	Type       string          `json:"type"`
	JobID      string          `json:"jobId,omitempty"`
	Progress   int             `json:"progress"`
	BytesRead  int64           `json:"bytesRead,omitempty"`
	TotalBytes int64           `json:"totalBytes,omitempty"`
	Status     model.JobStatus `json:"status,omitempty"`
	Error      string          `json:"error,omitempty"`
	VideoURL   string          `json:"videoUrl,omitempty"`
}

// Hub fans progress events out to every connected session.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan ProgressEvent]struct{}
}

func NewProgressHub() *Hub {
	return &Hub{subs: make(map[chan ProgressEvent]struct{})}
}

// Serve registers an SSE stream for the authenticated session (session_id set by middleware).
func (h *Hub) Serve(c *gin.Context) {
	if c.GetString("session_id") == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ch := make(chan ProgressEvent, 32)
	h.addSubscriber(ch)
	defer h.removeSubscriber(ch)

	c.Writer.Write([]byte(":ok\n\n"))
	c.Writer.Flush()

	for {
		select {
		case evt := <-ch:
			data, _ := json.Marshal(evt)
			_, _ = c.Writer.Write([]byte("event: " + evt.Type + "\n"))
			_, _ = c.Writer.Write([]byte("data: "))
			_, _ = c.Writer.Write(data)
			_, _ = c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// Subscribers returns the number of open streams.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) addSubscriber(ch chan ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[ch] = struct{}{}
}

func (h *Hub) removeSubscriber(ch chan ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// PublishProgress sends an upload progress update. Slow subscribers miss
// updates rather than stall the upload.
func (h *Hub) PublishProgress(p dto.UploadProgress) {
	h.broadcast(ProgressEvent{
		Type:       EventUploadProgress,
		JobID:      p.JobID,
		Progress:   p.Progress,
		BytesRead:  p.BytesRead,
		TotalBytes: p.TotalBytes,
	})
}

// PublishJob sends the current status of a bulk job.
func (h *Hub) PublishJob(job *model.UploadJob) {
	if job == nil {
		return
	}
	evt := ProgressEvent{
		Type:     EventJobStatus,
		JobID:    job.ID,
		Status:   job.Status,
		Error:    job.Error,
		VideoURL: job.VideoURL,
	}
	if job.Status == model.JobSuccess {
		evt.Progress = 100
	}
	h.broadcast(evt)
}

func (h *Hub) broadcast(evt ProgressEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select { // non-blocking
		case ch <- evt:
		default:
		}
	}
}
