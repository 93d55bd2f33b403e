package shared

import (
	"context"
	"time"

	"rental-core/internal/domain/booking"
	"rental-core/internal/domain/contract"
	"rental-core/internal/domain/deal"
	"rental-core/internal/domain/payment"
	"rental-core/internal/domain/property"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction with retry on serialization errors.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: serializable isolation for check-then-act sequences
	// (conflict detection + booking insert).
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes per-transaction repositories, all bound to the same database
// transaction.
type Tx interface {
	Properties() PropertyRepository
	Bookings() BookingRepository
	Contracts() ContractRepository
	Deals() DealRepository
	Payments() PaymentRepository
	Clients() ClientRepository
}

// Status updates take the status the decision was made against; the
// implementation must apply the change only where the row still holds it and
// report affected rows, so a lost-update race surfaces as 0 instead of a
// silent overwrite.

type PropertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	// FindByIDForUpdate locks the property row, serializing all booking
	// writes for one property behind it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status property.Status) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// BlockingWindows returns the date ranges of pending/confirmed bookings
	// for one property.
	BlockingWindows(ctx context.Context, propertyID uuid.UUID) ([]booking.Window, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) (int64, error)
}

type ContractRepository interface {
	Create(ctx context.Context, c *contract.Contract) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ContractSnapshot, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ContractSnapshot, error)
	// UpdateStatus stamps signedAt only when the row has none yet (set-once).
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to contract.Status, signedAt *time.Time) (int64, error)
	IDsByDealIDs(ctx context.Context, dealIDs []uuid.UUID) ([]uuid.UUID, error)
	IDsByProperty(ctx context.Context, propertyID uuid.UUID) ([]uuid.UUID, error)
	// IDsByParty lists contracts where the client is landlord or tenant.
	IDsByParty(ctx context.Context, partyID uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	TerminateByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	// ExpireDue moves active contracts whose period ended by now to expired.
	ExpireDue(ctx context.Context, now time.Time) (int64, error)
}

type DealRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DealSnapshot, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*DealSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to deal.Status) (int64, error)
	IDsByProperty(ctx context.Context, propertyID uuid.UUID) ([]uuid.UUID, error)
	// IDsByClient matches deals where the client is tenant or landlord.
	IDsByClient(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	CancelByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type PaymentRepository interface {
	BulkCreate(ctx context.Context, drafts []payment.Draft) ([]uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	// UpdateStatus stamps paidAt only when the row has none yet (set-once).
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to payment.Status, paidAt *time.Time) (int64, error)
	// DeleteByParents removes payments referencing any of the deals or any of
	// the contracts; overlapping rows are counted once.
	DeleteByParents(ctx context.Context, dealIDs, contractIDs []uuid.UUID) (int64, error)
	CancelByParents(ctx context.Context, dealIDs, contractIDs []uuid.UUID) (int64, error)
}

type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
