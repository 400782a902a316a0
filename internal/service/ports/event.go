package ports

import (
	"context"

	"github.com/stpnv0/VenueBooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Categories(ctx context.Context) ([]string, error)
}
