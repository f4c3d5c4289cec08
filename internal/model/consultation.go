package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationStatus enumerates the lifecycle states of a consultation.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
	ConsultationStatusCompleted ConsultationStatus = "completed"
)

// Doctor represents a practitioner available for consultations.
type Doctor struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Specialization  string    `json:"specialization" db:"specialization"`
	City            string    `json:"city" db:"city"`
	Phone           string    `json:"phone" db:"phone"`
	Rating          float64   `json:"rating" db:"rating"`
	ConsultationFee float64   `json:"consultationFee" db:"consultation_fee"`
}

// Consultation represents a booked appointment with a doctor.
type Consultation struct {
	ID              uuid.UUID          `json:"id" db:"id"`
	UserID          uuid.UUID          `json:"userId" db:"user_id"`
	DoctorID        uuid.UUID          `json:"doctorId" db:"doctor_id"`
	AppointmentDate time.Time          `json:"appointmentDate" db:"appointment_date"`
	AppointmentTime string             `json:"appointmentTime" db:"appointment_time"`
	Symptoms        string             `json:"symptoms" db:"symptoms"`
	ConsultationFee float64            `json:"consultationFee" db:"consultation_fee"`
	Status          ConsultationStatus `json:"status" db:"status"`
	CreatedAt       time.Time          `json:"createdAt" db:"created_at"`
}

// ConsultationDetail is a consultation annotated with doctor details.
type ConsultationDetail struct {
	Consultation
	DoctorName     string `json:"doctorName" db:"doctor_name"`
	Specialization string `json:"specialization" db:"specialization"`
	DoctorPhone    string `json:"doctorPhone" db:"doctor_phone"`
}

// RescheduleConsultationRequest carries the new slot for an existing
// consultation.
type RescheduleConsultationRequest struct {
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// BookConsultationRequest represents the booking payload.
type BookConsultationRequest struct {
	DoctorID        uuid.UUID `json:"doctorId"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	Symptoms        string    `json:"symptoms"`
	ConsultationFee float64   `json:"consultationFee"`
}
