package models

import "time"

// Booking es el registro local de una reserva aceptada. El calendario
// sigue siendo la fuente de verdad para los conflictos; esto alimenta el
// panel de administración y la auditoría.
type Booking struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Ref string `gorm:"size:36;uniqueIndex" json:"ref"`

	BarberID  string `gorm:"size:50;index" json:"barber_id"`
	ServiceID string `gorm:"size:50" json:"service_id"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:30" json:"customer_phone"`
	Notes         string `gorm:"size:255" json:"notes"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	CalendarEventID string `gorm:"size:255" json:"calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
}
