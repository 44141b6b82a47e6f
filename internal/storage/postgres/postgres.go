package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitnessBooker/internal/config"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	constraintUsersEmail       = "users_email_key"
	constraintBookingUserClass = "bookings_user_class_key"
)

type Storage struct {
	DB *sqlx.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintUsersEmail) {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	if err := s.DB.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1`

	var user models.User
	if err := s.DB.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateClass(ctx context.Context, name, instructor string, dateTime time.Time, totalSlots int) (*models.FitnessClass, error) {
	class := &models.FitnessClass{
		ID:             uuid.New(),
		Name:           name,
		Instructor:     instructor,
		DateTime:       dateTime,
		TotalSlots:     totalSlots,
		AvailableSlots: totalSlots,
		CreatedAt:      time.Now().UTC(),
	}

	query := `
		INSERT INTO classes (id, name, instructor, date_time, total_slots, available_slots, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.ExecContext(ctx, query,
		class.ID, class.Name, class.Instructor, class.DateTime,
		class.TotalSlots, class.AvailableSlots, class.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	return class, nil
}

func (s *Storage) GetClass(ctx context.Context, id uuid.UUID) (*models.FitnessClass, error) {
	query := `
		SELECT id, name, instructor, date_time, total_slots, available_slots, created_at
		FROM classes
		WHERE id = $1`

	var class models.FitnessClass
	if err := s.DB.GetContext(ctx, &class, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	return &class, nil
}

func (s *Storage) GetAllClasses(ctx context.Context) ([]models.FitnessClass, error) {
	query := `
		SELECT id, name, instructor, date_time, total_slots, available_slots, created_at
		FROM classes
		ORDER BY date_time ASC`

	var classes []models.FitnessClass
	if err := s.DB.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("failed to get classes: %w", err)
	}

	return classes, nil
}

// CreateBooking reserves one slot and records the booking in a single
// transaction. The conditional UPDATE is the capacity guard: two concurrent
// bookings of a class with one slot left race on the row update, and the
// loser sees zero affected rows.
func (s *Storage) CreateBooking(ctx context.Context, userID, classID uuid.UUID, clientName, clientEmail string) (*models.Booking, error) {
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reserveQuery := `
		UPDATE classes
		SET available_slots = available_slots - 1
		WHERE id = $1 AND available_slots > 0`

	res, err := tx.ExecContext(ctx, reserveQuery, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check reserved rows: %w", err)
	}

	if affected == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`

		if err = tx.GetContext(ctx, &exists, checkQuery, classID); err != nil {
			return nil, fmt.Errorf("failed to check class existence: %w", err)
		}
		if !exists {
			return nil, storage.ErrClassNotFound
		}

		return nil, storage.ErrSlotsExhausted
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		ClassID:     classID,
		ClientName:  clientName,
		ClientEmail: clientEmail,
		CreatedAt:   time.Now().UTC(),
	}

	insertQuery := `
		INSERT INTO bookings (id, user_id, class_id, client_name, client_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.ExecContext(ctx, insertQuery,
		booking.ID, booking.UserID, booking.ClassID,
		booking.ClientName, booking.ClientEmail, booking.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, constraintBookingUserClass) {
			return nil, storage.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booking, nil
}

func (s *Storage) BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, class_id, client_name, client_email, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at ASC`

	var bookings []models.Booking
	if err := s.DB.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation
// (23505) on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}
