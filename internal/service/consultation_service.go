package service

import (
	"context"
	"fmt"
	"time"

	"medimart/internal/model"
	"medimart/internal/notification"
	"medimart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// consultationService implements ConsultationService.
type consultationService struct {
	consultRepo repository.ConsultationRepository
	doctorRepo  repository.DoctorRepository
	sender      notification.Sender
	logger      zerolog.Logger
}

// NewConsultationService creates a new consultation service.
func NewConsultationService(
	consultRepo repository.ConsultationRepository,
	doctorRepo repository.DoctorRepository,
	sender notification.Sender,
	logger zerolog.Logger,
) ConsultationService {
	return &consultationService{
		consultRepo: consultRepo,
		doctorRepo:  doctorRepo,
		sender:      sender,
		logger:      logger.With().Str("service", "consultation").Logger(),
	}
}

// ListDoctors retrieves doctors, optionally filtered by city and
// specialization.
func (s *consultationService) ListDoctors(ctx context.Context, city, specialization string) ([]model.Doctor, error) {
	doctors, err := s.doctorRepo.List(ctx, city, specialization)
	if err != nil {
		s.logger.Error().Err(err).Str("city", city).Msg("failed to list doctors")
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// Book creates a consultation and notifies both the patient and the
// doctor. Notifications go out after the booking is stored and never
// fail it.
func (s *consultationService) Book(ctx context.Context, userID uuid.UUID, req *model.BookConsultationRequest) (uuid.UUID, error) {
	if req == nil || req.DoctorID == uuid.Nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Doctor ID is required")
	}
	if req.AppointmentTime == "" {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Appointment time is required")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Appointment date must be YYYY-MM-DD")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		s.logger.Error().Err(err).Str("doctor_id", req.DoctorID.String()).Msg("failed to look up doctor")
		return uuid.Nil, fmt.Errorf("failed to book consultation: %w", err)
	}
	if doctor == nil {
		return uuid.Nil, model.ErrDoctorNotFound
	}

	fee := req.ConsultationFee
	if fee <= 0 {
		fee = doctor.ConsultationFee
	}

	consult := &model.Consultation{
		ID:              uuid.New(),
		UserID:          userID,
		DoctorID:        doctor.ID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Symptoms:        req.Symptoms,
		ConsultationFee: fee,
		Status:          model.ConsultationStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.consultRepo.Create(ctx, consult); err != nil {
		s.logger.Error().Err(err).Str("doctor_id", doctor.ID.String()).Msg("failed to create consultation")
		return uuid.Nil, fmt.Errorf("failed to book consultation: %w", err)
	}

	// Patient destination is unknown at this layer; the log sender
	// records the message keyed by user ID.
	s.notify(ctx, consult.UserID.String(),
		notification.AppointmentBookedMessage(doctor.Name, req.AppointmentDate, req.AppointmentTime),
		"booking confirmation")
	s.notify(ctx, doctor.Phone,
		notification.DoctorAppointmentMessage(consult.UserID, req.AppointmentDate, req.AppointmentTime, req.Symptoms),
		"doctor appointment")

	s.logger.Info().
		Str("consultation_id", consult.ID.String()).
		Str("doctor_id", doctor.ID.String()).
		Str("user_id", userID.String()).
		Msg("consultation booked")

	return consult.ID, nil
}

// ListConsultations retrieves the user's consultations, newest first.
func (s *consultationService) ListConsultations(ctx context.Context, userID uuid.UUID) ([]model.ConsultationDetail, error) {
	consults, err := s.consultRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list consultations")
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consults, nil
}

// Reschedule moves a consultation owned by the user to a new slot and
// tells both the patient and the doctor. Notifications go out after the
// update is stored and never fail it.
func (s *consultationService) Reschedule(ctx context.Context, consultationID, userID uuid.UUID, req *model.RescheduleConsultationRequest) error {
	if req == nil || req.AppointmentTime == "" {
		return model.NewDomainError(model.ErrCodeValidation, "Appointment time is required")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return model.NewDomainError(model.ErrCodeValidation, "Appointment date must be YYYY-MM-DD")
	}

	consult, err := s.consultRepo.GetByID(ctx, consultationID)
	if err != nil {
		s.logger.Error().Err(err).Str("consultation_id", consultationID.String()).Msg("failed to load consultation")
		return fmt.Errorf("failed to reschedule consultation: %w", err)
	}
	if consult == nil || consult.UserID != userID {
		return model.ErrConsultNotFound
	}

	updated, err := s.consultRepo.Reschedule(ctx, consultationID, userID, date, req.AppointmentTime)
	if err != nil {
		s.logger.Error().Err(err).Str("consultation_id", consultationID.String()).Msg("failed to reschedule consultation")
		return fmt.Errorf("failed to reschedule consultation: %w", err)
	}
	if !updated {
		return model.ErrConsultNotFound
	}

	doctor := s.doctorForNotification(ctx, consult.DoctorID)
	doctorName := ""
	if doctor != nil {
		doctorName = doctor.Name
	}
	msg := notification.AppointmentUpdatedMessage(consultationID, doctorName, req.AppointmentDate, req.AppointmentTime)
	s.notify(ctx, userID.String(), msg, "reschedule")
	if doctor != nil {
		s.notify(ctx, doctor.Phone, msg, "reschedule")
	}

	s.logger.Info().
		Str("consultation_id", consultationID.String()).
		Str("user_id", userID.String()).
		Str("appointment_date", req.AppointmentDate).
		Str("appointment_time", req.AppointmentTime).
		Msg("consultation rescheduled")

	return nil
}

// Cancel cancels a pending consultation owned by the user. Repeat
// cancels succeed quietly, matching order cancellation.
func (s *consultationService) Cancel(ctx context.Context, consultationID, userID uuid.UUID) error {
	consult, err := s.consultRepo.GetByID(ctx, consultationID)
	if err != nil {
		s.logger.Error().Err(err).Str("consultation_id", consultationID.String()).Msg("failed to load consultation")
		return fmt.Errorf("failed to cancel consultation: %w", err)
	}
	if consult == nil || consult.UserID != userID {
		return model.ErrConsultNotFound
	}

	cancelled, err := s.consultRepo.MarkCancelled(ctx, consultationID, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("consultation_id", consultationID.String()).Msg("failed to cancel consultation")
		return fmt.Errorf("failed to cancel consultation: %w", err)
	}
	if !cancelled {
		// Already cancelled or completed; nothing changed, so nobody
		// is told again.
		return nil
	}

	msg := notification.AppointmentCancelledMessage(consultationID)
	s.notify(ctx, userID.String(), msg, "cancellation")
	if doctor := s.doctorForNotification(ctx, consult.DoctorID); doctor != nil {
		s.notify(ctx, doctor.Phone, msg, "cancellation")
	}

	s.logger.Info().
		Str("consultation_id", consultationID.String()).
		Str("user_id", userID.String()).
		Msg("consultation cancelled")

	return nil
}

// notify dispatches one SMS and records failed deliveries in the log.
func (s *consultationService) notify(ctx context.Context, destination, message, kind string) {
	res := s.sender.Send(ctx, destination, message)
	if !res.Success {
		s.logger.Warn().
			Str("destination", destination).
			Str("detail", res.Detail).
			Msg(kind + " SMS not delivered")
	}
}

// doctorForNotification resolves a doctor for a post-update SMS. Lookup
// failures are logged and swallowed; the triggering operation has
// already been stored.
func (s *consultationService) doctorForNotification(ctx context.Context, doctorID uuid.UUID) *model.Doctor {
	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		s.logger.Warn().Err(err).Str("doctor_id", doctorID.String()).Msg("doctor lookup for notification failed")
		return nil
	}
	return doctor
}
