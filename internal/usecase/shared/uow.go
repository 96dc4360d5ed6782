package shared

import (
	"context"

	"reservation-management/internal/domain/customer"
	"reservation-management/internal/domain/reservation"
	"reservation-management/internal/domain/room"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Customers() CustomerRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, db infra.DBTX, c *customer.Customer, stamp audit.Stamp) (uuid.UUID, error)
	Update(ctx context.Context, db infra.DBTX, c *customer.Customer, stamp audit.Stamp) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, db infra.DBTX, r *room.Room, stamp audit.Stamp) (uuid.UUID, error)
	Update(ctx context.Context, db infra.DBTX, r *room.Room, stamp audit.Stamp) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	// ClaimIfFree is the atomic check-and-set on the busy flag: true and the
	// room is claimed, false and nothing changed.
	ClaimIfFree(ctx context.Context, db infra.DBTX, id uuid.UUID) (bool, error)
	Release(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation, stamp audit.Stamp) (uuid.UUID, error)
	Update(ctx context.Context, db infra.DBTX, res *reservation.Reservation, stamp audit.Stamp) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	ExistsByCustomer(ctx context.Context, db infra.DBTX, customerID uuid.UUID) (bool, error)
	ExistsByRoom(ctx context.Context, db infra.DBTX, roomID uuid.UUID) (bool, error)
}
