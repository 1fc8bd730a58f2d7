package db_models

import (
	"time"

	"github.com/google/uuid"
)

// SavedItinerary is a generated plan a signed-in user chose to keep. The
// plan itself is stored as the serialized Itinerary JSON, same encoding as
// the key-value store uses, so saving is a copy rather than a re-shape.
type SavedItinerary struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:uuid;index"`
	Title             string
	DepartureLocation string
	Destination       string
	StartDate         time.Time
	EndDate           time.Time
	Itinerary         string `gorm:"type:text"`
}
