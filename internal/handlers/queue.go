package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cambix/currency-conversion-api/internal/models"
)

// QueueInspector defines the status read the queue must implement.
type QueueInspector interface {
	Status(ctx context.Context) models.QueueStatus
}

// QueuePublisher defines the raw publish the queue must implement.
type QueuePublisher interface {
	Publish(ctx context.Context, body []byte) error
}

// QueuePurger defines the purge operation the queue must implement.
type QueuePurger interface {
	Purge(ctx context.Context) (int, error)
}

// PublishMessageRequest represents the JSON body for a custom queue message
// swagger:model PublishMessageRequest
type PublishMessageRequest struct {
	// Arbitrary payload wrapped into a custom event
	// required: true
	Message json.RawMessage `json:"message"`
}

// PublishMessageResponse represents a successful publish response
// swagger:model PublishMessageResponse
type PublishMessageResponse struct {
	// Success message
	// default: Message published
	Message string `json:"message"`
}

// PurgeQueueResponse represents a successful purge response
// swagger:model PurgeQueueResponse
type PurgeQueueResponse struct {
	// Success message
	// default: Queue purged
	Message string `json:"message"`

	// Number of messages dropped
	// default: 3
	Purged int `json:"purged"`
}

// NewQueueStatusHandler returns an HTTP handler reporting queue health.
// @Summary Queue status
// @Description Reports broker connectivity, queue depth and consumer count. A broken connection is reported in the body, not as an error status.
// @Tags queue
// @Produce json
// @Success 200 {object} models.QueueStatus "Queue status"
// @Router /queue [get]
func NewQueueStatusHandler(inspector QueueInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, inspector.Status(r.Context()))
	}
}

// NewQueuePublishHandler returns an HTTP handler publishing a custom event.
// @Summary Publish a custom message
// @Description Wraps the payload into a custom event envelope and publishes it to the durable queue.
// @Tags queue
// @Accept json
// @Produce json
// @Param request body handlers.PublishMessageRequest true "Payload"
// @Success 200 {object} handlers.PublishMessageResponse "Published"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 503 {object} handlers.ErrorResponse "Broker unreachable"
// @Router /queue [post]
func NewQueuePublishHandler(publisher QueuePublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PublishMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Message) == 0 {
			writeError(w, http.StatusBadRequest, "Invalid request body, expected {\"message\": ...}")
			return
		}

		event := models.NewEvent(models.EventTypeCustom, req.Message)
		body, err := json.Marshal(event)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid message payload")
			return
		}

		if err := publisher.Publish(r.Context(), body); err != nil {
			writeError(w, http.StatusServiceUnavailable, "Queue unavailable")
			return
		}
		writeJSON(w, http.StatusOK, PublishMessageResponse{Message: "Message published"})
	}
}

// NewQueuePurgeHandler returns an HTTP handler dropping all pending messages.
// @Summary Purge the queue
// @Description Removes every pending message from the durable queue and reports how many were dropped.
// @Tags queue
// @Produce json
// @Success 200 {object} handlers.PurgeQueueResponse "Purged"
// @Failure 503 {object} handlers.ErrorResponse "Broker unreachable"
// @Router /queue/purge [post]
func NewQueuePurgeHandler(purger QueuePurger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purged, err := purger.Purge(r.Context())
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "Queue unavailable")
			return
		}
		writeJSON(w, http.StatusOK, PurgeQueueResponse{Message: "Queue purged", Purged: purged})
	}
}
