// Package notification provides a fire-and-forget SMS dispatch
// capability. Senders never return an error: delivery failure is
// reported in the Result for logging only and must never abort the
// calling operation.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result reports the outcome of a dispatch attempt.
type Result struct {
	Success bool
	Detail  string
}

// Sender dispatches a message to a destination address. Implementations
// must swallow delivery failures and report them via the Result.
type Sender interface {
	Send(ctx context.Context, destination, message string) Result
}

// logSender writes messages to the log instead of an SMS gateway.
type logSender struct {
	logger zerolog.Logger
}

// NewLogSender creates a Sender that records messages in the log. It
// stands in for a real SMS gateway integration.
func NewLogSender(logger zerolog.Logger) Sender {
	return &logSender{
		logger: logger.With().Str("component", "sms-sender").Logger(),
	}
}

// Send logs the message. An empty destination is reported as a failed
// dispatch rather than an error.
func (s *logSender) Send(ctx context.Context, destination, message string) Result {
	if destination == "" {
		s.logger.Warn().Msg("dropping notification with empty destination")
		return Result{Success: false, Detail: "empty destination"}
	}

	s.logger.Info().
		Str("to", destination).
		Str("message", message).
		Msg("SMS notification")

	return Result{Success: true, Detail: "notification sent"}
}

// OrderPlacedMessage builds the SMS body for a freshly placed order.
func OrderPlacedMessage(orderID uuid.UUID, totalAmount float64, placedAt time.Time) string {
	return fmt.Sprintf(
		"Order placed successfully!\nOrder ID: %s\nAmount: %.2f\nTime: %s\nThank you for ordering from MediMart!",
		orderID, totalAmount, placedAt.Format(time.RFC1123))
}

// OrderCancelledMessage builds the SMS body for a cancelled order.
func OrderCancelledMessage(orderID uuid.UUID) string {
	return fmt.Sprintf(
		"Order cancelled\nOrder ID: %s\nYour order has been cancelled successfully.",
		orderID)
}

// AppointmentBookedMessage builds the patient-facing SMS body for a
// booked consultation.
func AppointmentBookedMessage(doctorName, date, timeSlot string) string {
	return fmt.Sprintf(
		"Appointment confirmed!\nDoctor: %s\nDate: %s\nTime: %s\nPlease be on time.",
		doctorName, date, timeSlot)
}

// DoctorAppointmentMessage builds the doctor-facing SMS body for a new
// consultation.
func DoctorAppointmentMessage(patientID uuid.UUID, date, timeSlot, symptoms string) string {
	return fmt.Sprintf(
		"New appointment!\nPatient: %s\nDate: %s\nTime: %s\nSymptoms: %s",
		patientID, date, timeSlot, symptoms)
}

// AppointmentUpdatedMessage builds the SMS body for a rescheduled
// consultation. Both the patient and the doctor receive it.
func AppointmentUpdatedMessage(consultationID uuid.UUID, doctorName, date, timeSlot string) string {
	return fmt.Sprintf(
		"Appointment updated!\nAppointment ID: %s\nDoctor: %s\nNew Date: %s\nNew Time: %s",
		consultationID, doctorName, date, timeSlot)
}

// AppointmentCancelledMessage builds the SMS body for a cancelled
// consultation.
func AppointmentCancelledMessage(consultationID uuid.UUID) string {
	return fmt.Sprintf(
		"Appointment cancelled\nAppointment ID: %s",
		consultationID)
}
