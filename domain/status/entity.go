package status

import (
	"time"

	"github.com/uptrace/bun"
)

// StatusCheck records a client announcing itself to the API
type StatusCheck struct {
	bun.BaseModel `bun:"table:status_checks,alias:sc"`

	ID         string    `bun:"id,pk" json:"id"`
	ClientName string    `bun:"client_name,notnull" json:"client_name"`
	Timestamp  time.Time `bun:"timestamp,notnull" json:"timestamp"`
}

// CreateStatusCheckRequest is the body of POST /api/status
type CreateStatusCheckRequest struct {
	ClientName *string `json:"client_name"`
}

// RootResponse is returned by GET /api/
type RootResponse struct {
	Message string `json:"message"`
}

const rootMessage = "Lotaya AI API - All-in-One Generative AI Platform"

// maxListed caps GET /api/status
const maxListed = 1000
