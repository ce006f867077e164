package shared

import (
	"context"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/catalog"
	"gaming-zone-booking/internal/domain/user"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Venues() VenueRepository
	Games() GameRepository
	CafeItems() CafeItemRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads load write-side entities. Inside a Tx they read through the
// transaction, so ActiveSlots sees rows inserted earlier in it.
type CommandReads interface {
	GameByID(ctx context.Context, id uuid.UUID) (*catalog.Game, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*catalog.Venue, error)
	CafeItemByID(ctx context.Context, id uuid.UUID) (*catalog.CafeItem, error)
	CafeItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.CafeItem, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveSlots(ctx context.Context, gameID uuid.UUID, date booking.Date) ([]string, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// UpdateStatus persists b only if the stored row still carries guardVersion.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, guardVersion int) error
	ListRemindable(ctx context.Context, tx sqlc.DBTX, date booking.Date, limit int32) ([]*booking.Booking, error)
	MarkReminderQueued(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type VenueRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *catalog.Venue) (*catalog.Venue, error)
	Update(ctx context.Context, tx sqlc.DBTX, v *catalog.Venue) (*catalog.Venue, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type GameRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, g *catalog.Game) (*catalog.Game, error)
	Update(ctx context.Context, tx sqlc.DBTX, g *catalog.Game) (*catalog.Game, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CafeItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, item *catalog.CafeItem) (*catalog.CafeItem, error)
	Update(ctx context.Context, tx sqlc.DBTX, item *catalog.CafeItem) (*catalog.CafeItem, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
	UpdateRole(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
}
