package dto

import "time"

type BookingListDTO struct {
	Ref          string    `json:"ref"`
	BarberID     string    `json:"barber_id"`
	ServiceID    string    `json:"service_id"`
	CustomerName string    `json:"customer_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}
