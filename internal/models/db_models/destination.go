package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Destination is a suggestible place. The embedding is computed from name,
// description and tags when the row is created; suggestion queries order by
// vector distance to an embedding of the user's interests.
type Destination struct {
	BaseModel
	Name        string
	Country     string
	Description string
	ImageURL    string
	Rating      float64
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(768)"`
}
