package audit

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"recipecost-backend/internal/models"
)

// Recorder writes one audit row per successful mutation. Failures are
// reported to the caller but mutations are never rolled back over them.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

type LogOptions struct {
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func (r *Recorder) Write(opts LogOptions) error {
	// jsonb columns need the JSON string "null" rather than an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := r.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log could not be written: %w", err)
	}
	return nil
}
