package repository

import (
	"context"
	"fmt"
	"time"

	"medimart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// doctorRepository implements the DoctorRepository interface using PostgreSQL.
type doctorRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDoctorRepository creates a new PostgreSQL-backed doctor repository.
func NewDoctorRepository(pool *pgxpool.Pool, logger zerolog.Logger) DoctorRepository {
	return &doctorRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "doctor").Logger(),
	}
}

// List retrieves doctors ordered by rating, best first.
func (r *doctorRepository) List(ctx context.Context, city, specialization string) ([]model.Doctor, error) {
	query := `
		SELECT id, name, specialization, city, phone, rating, consultation_fee
		FROM doctors
		WHERE ($1 = '' OR city = $1)
		  AND ($2 = '' OR specialization LIKE '%' || $2 || '%')
		ORDER BY rating DESC
	`

	rows, err := r.pool.Query(ctx, query, city, specialization)
	if err != nil {
		r.logger.Error().Err(err).Str("city", city).Msg("failed to query doctors")
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []model.Doctor
	for rows.Next() {
		var d model.Doctor
		err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.City, &d.Phone, &d.Rating, &d.ConsultationFee)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan doctor row")
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating doctor rows")
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, nil
}

// GetByID retrieves a single doctor, or nil when absent.
func (r *doctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, name, specialization, city, phone, rating, consultation_fee
		FROM doctors
		WHERE id = $1
	`

	var d model.Doctor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Specialization, &d.City, &d.Phone, &d.Rating, &d.ConsultationFee)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("doctor_id", id.String()).Msg("failed to query doctor")
		return nil, fmt.Errorf("failed to query doctor: %w", err)
	}

	return &d, nil
}

// consultationRepository implements the ConsultationRepository interface
// using PostgreSQL.
type consultationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewConsultationRepository creates a new PostgreSQL-backed consultation repository.
func NewConsultationRepository(pool *pgxpool.Pool, logger zerolog.Logger) ConsultationRepository {
	return &consultationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "consultation").Logger(),
	}
}

// Create inserts a new consultation.
func (r *consultationRepository) Create(ctx context.Context, c *model.Consultation) error {
	query := `
		INSERT INTO consultations (id, user_id, doctor_id, appointment_date, appointment_time,
		                           symptoms, consultation_fee, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.UserID, c.DoctorID, c.AppointmentDate, c.AppointmentTime,
		c.Symptoms, c.ConsultationFee, c.Status, c.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("doctor_id", c.DoctorID.String()).
			Msg("failed to create consultation")
		return fmt.Errorf("failed to create consultation: %w", err)
	}

	r.logger.Debug().Str("consultation_id", c.ID.String()).Msg("consultation created")

	return nil
}

// GetByID retrieves a single consultation, or nil when absent.
func (r *consultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	query := `
		SELECT id, user_id, doctor_id, appointment_date, appointment_time,
		       symptoms, consultation_fee, status, created_at
		FROM consultations
		WHERE id = $1
	`

	var c model.Consultation
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.DoctorID, &c.AppointmentDate, &c.AppointmentTime,
		&c.Symptoms, &c.ConsultationFee, &c.Status, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("consultation_id", id.String()).Msg("failed to query consultation")
		return nil, fmt.Errorf("failed to query consultation: %w", err)
	}

	return &c, nil
}

// ListByUser retrieves a user's consultations, newest first.
func (r *consultationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ConsultationDetail, error) {
	query := `
		SELECT c.id, c.user_id, c.doctor_id, c.appointment_date, c.appointment_time,
		       c.symptoms, c.consultation_fee, c.status, c.created_at,
		       d.name, d.specialization, d.phone
		FROM consultations c
		JOIN doctors d ON c.doctor_id = d.id
		WHERE c.user_id = $1
		ORDER BY c.appointment_date DESC, c.appointment_time DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query consultations")
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}
	defer rows.Close()

	var consultations []model.ConsultationDetail
	for rows.Next() {
		var c model.ConsultationDetail
		err := rows.Scan(&c.ID, &c.UserID, &c.DoctorID, &c.AppointmentDate, &c.AppointmentTime,
			&c.Symptoms, &c.ConsultationFee, &c.Status, &c.CreatedAt,
			&c.DoctorName, &c.Specialization, &c.DoctorPhone)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan consultation row")
			return nil, fmt.Errorf("failed to scan consultation: %w", err)
		}
		consultations = append(consultations, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating consultation rows")
		return nil, fmt.Errorf("error iterating consultations: %w", err)
	}

	return consultations, nil
}

// Reschedule moves a consultation owned by the given user to a new date
// and time slot.
func (r *consultationRepository) Reschedule(ctx context.Context, consultationID, userID uuid.UUID, date time.Time, timeSlot string) (bool, error) {
	query := `
		UPDATE consultations
		SET appointment_date = $1, appointment_time = $2
		WHERE id = $3 AND user_id = $4
	`

	tag, err := r.pool.Exec(ctx, query, date, timeSlot, consultationID, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("consultation_id", consultationID.String()).Msg("failed to reschedule consultation")
		return false, fmt.Errorf("failed to reschedule consultation: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkCancelled flips a pending consultation owned by the given user to
// cancelled.
func (r *consultationRepository) MarkCancelled(ctx context.Context, consultationID, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE consultations
		SET status = $1
		WHERE id = $2 AND user_id = $3 AND status = $4
	`

	tag, err := r.pool.Exec(ctx, query,
		model.ConsultationStatusCancelled, consultationID, userID, model.ConsultationStatusPending)
	if err != nil {
		r.logger.Error().Err(err).Str("consultation_id", consultationID.String()).Msg("failed to cancel consultation")
		return false, fmt.Errorf("failed to cancel consultation: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
