package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/labarberiamataro/booking-api/internal/models"
)

// Sink recibe los eventos ya fuera del camino de la petición.
type Sink interface {
	Write(ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityRef: ev.EntityRef,
		Metadata:  metaJSON,
	}

	return l.db.Create(&entry).Error
}
