package product

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Stock       int64
	CreateTime  time.Time
	UpdateTime  time.Time
	IsActive    bool
}
