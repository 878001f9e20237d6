package live

import (
	"time"

	"marketboard/pkg/models"
)

const (
	EventCreated = "exhibitor.created"
	EventUpdated = "exhibitor.updated"
	EventDeleted = "exhibitor.deleted"
)

// Event announces one store mutation. Consumers reload the ordered
// catalog on receipt, so what they observe is always a full snapshot.
type Event struct {
	Type      string            `json:"type"`
	ID        string            `json:"id"`
	Exhibitor *models.Exhibitor `json:"exhibitor,omitempty"`
	At        time.Time         `json:"at"`
}
