package readstore

import (
	"rental-core/internal/infra"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

// Scan targets for the view queries. Field names line up with the view
// structs so copier moves the plain columns; nullable columns are converted
// by hand afterwards.

type propertyRow struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Title            string
	MonthlyRentCents int64
	DepositCents     int64
	Status           string
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func (r propertyRow) toView() (*queries.PropertyView, error) {
	var view queries.PropertyView
	if err := copier.Copy(&view, &r); err != nil {
		return nil, infra.WrapRepoErr("failed to convert property row", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(r.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(r.UpdatedAt)
	return &view, nil
}

type bookingRow struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	PropertyTitle string
	TenantID      uuid.UUID
	StartsAt      pgtype.Timestamptz
	EndsAt        pgtype.Timestamptz
	TotalCents    int64
	Status        string
	Message       pgtype.Text
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (r bookingRow) toView() (*queries.BookingView, error) {
	var view queries.BookingView
	if err := copier.Copy(&view, &r); err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err)
	}
	view.StartsAt = pgconv.TimeFromPgtype(r.StartsAt)
	view.EndsAt = pgconv.TimeFromPgtype(r.EndsAt)
	view.Message = pgconv.StringPtrFromPgtype(r.Message)
	view.CreatedAt = pgconv.TimeFromPgtype(r.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(r.UpdatedAt)
	return &view, nil
}

type dealRow struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	PropertyTitle string
	LandlordID    uuid.UUID
	TenantID      uuid.UUID
	Status        string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (r dealRow) toView() (*queries.DealView, error) {
	var view queries.DealView
	if err := copier.Copy(&view, &r); err != nil {
		return nil, infra.WrapRepoErr("failed to convert deal row", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(r.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(r.UpdatedAt)
	return &view, nil
}

type contractRow struct {
	ID               uuid.UUID
	DealID           pgtype.UUID
	PropertyID       uuid.UUID
	PropertyTitle    string
	LandlordID       uuid.UUID
	TenantID         uuid.UUID
	StartsAt         pgtype.Timestamptz
	EndsAt           pgtype.Timestamptz
	MonthlyRentCents int64
	DepositCents     int64
	Status           string
	SignedAt         pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func (r contractRow) toView() (*queries.ContractView, error) {
	var view queries.ContractView
	if err := copier.Copy(&view, &r); err != nil {
		return nil, infra.WrapRepoErr("failed to convert contract row", err)
	}
	view.DealID = pgconv.UUIDPtrFromPgtype(r.DealID)
	view.StartsAt = pgconv.TimeFromPgtype(r.StartsAt)
	view.EndsAt = pgconv.TimeFromPgtype(r.EndsAt)
	view.SignedAt = pgconv.TimePtrFromPgtype(r.SignedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(r.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(r.UpdatedAt)
	return &view, nil
}

type paymentRow struct {
	ID          uuid.UUID
	DealID      pgtype.UUID
	ContractID  pgtype.UUID
	PropertyID  uuid.UUID
	Type        string
	AmountCents int64
	Status      string
	DueDate     pgtype.Timestamptz
	PaidAt      pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (r paymentRow) toView() (*queries.PaymentView, error) {
	var view queries.PaymentView
	if err := copier.Copy(&view, &r); err != nil {
		return nil, infra.WrapRepoErr("failed to convert payment row", err)
	}
	view.DealID = pgconv.UUIDPtrFromPgtype(r.DealID)
	view.ContractID = pgconv.UUIDPtrFromPgtype(r.ContractID)
	view.DueDate = pgconv.TimePtrFromPgtype(r.DueDate)
	view.PaidAt = pgconv.TimePtrFromPgtype(r.PaidAt)
	view.CreatedAt = pgconv.TimeFromPgtype(r.CreatedAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(r.UpdatedAt)
	return &view, nil
}
