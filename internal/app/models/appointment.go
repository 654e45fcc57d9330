package models

import "time"

type Appointment struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Doctor    Doctor    `json:"doctor"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

type AppointmentBookedEvent struct {
	Event         string    `json:"event"`
	AppointmentID string    `json:"appointmentId"`
	OwnerID       string    `json:"ownerId"`
	DoctorID      string    `json:"doctorId"`
	DoctorName    string    `json:"doctorName"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	BookedAt      time.Time `json:"bookedAt"`
}
