package services

import (
	"context"
	"time"

	"desawisata/internal/models/db_models"
	"desawisata/internal/models/request_models"
	"desawisata/internal/models/response_models"
	"desawisata/internal/repositories"
	mem "desawisata/pkg/memcache"
	"desawisata/pkg/utils"
)

// Catalog reads are cached briefly; bookings always read the repository
// directly so price snapshots never come from a stale entry.
const destinationCacheTTL = 60 * time.Second

type DestinationServiceInterface interface {
	List(ctx context.Context, page, pageSize int) ([]response_models.DestinationResponse, error)
	GetByID(ctx context.Context, id string) (*response_models.DestinationResponse, error)
	Create(ctx context.Context, req request_models.UpsertDestinationRequest) (string, error)
	Update(ctx context.Context, id string, req request_models.UpsertDestinationRequest) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	cache           mem.DestinationCache
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, cache mem.DestinationCache) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		cache:           cache,
	}
}

func (d *DestinationService) List(ctx context.Context, page, pageSize int) ([]response_models.DestinationResponse, error) {
	destinations, err := d.destinationRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, destinationResponse(&destinations[i]))
	}
	return out, nil
}

func (d *DestinationService) GetByID(ctx context.Context, id string) (*response_models.DestinationResponse, error) {
	destination := d.cache.Get(id)

	if destination == nil {
		var err error
		destination, err = d.destinationRepo.GetByID(ctx, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if destination == nil {
			return nil, utils.ErrDestinationNotFound
		}
		d.cache.Set(id, destination, destinationCacheTTL)
	}

	resp := destinationResponse(destination)
	return &resp, nil
}

func (d *DestinationService) Create(ctx context.Context, req request_models.UpsertDestinationRequest) (string, error) {
	destination := &db_models.Destination{
		Name:        req.Name,
		Village:     req.Village,
		Description: req.Description,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
		TicketPrice: req.TicketPrice,
		IsOpen:      true,
	}
	if req.IsOpen != nil {
		destination.IsOpen = *req.IsOpen
	}

	id, err := d.destinationRepo.Create(ctx, destination)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (d *DestinationService) Update(ctx context.Context, id string, req request_models.UpsertDestinationRequest) error {
	destination, err := d.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}

	destination.Name = req.Name
	destination.Village = req.Village
	destination.Description = req.Description
	destination.Address = req.Address
	destination.ContactInfo = req.ContactInfo
	destination.TicketPrice = req.TicketPrice
	if req.IsOpen != nil {
		destination.IsOpen = *req.IsOpen
	}

	if err := d.destinationRepo.Update(ctx, destination); err != nil {
		return utils.ErrDatabaseError
	}

	d.cache.Invalidate(id)
	return nil
}

func destinationResponse(destination *db_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:          destination.ID.String(),
		Name:        destination.Name,
		Village:     destination.Village,
		Description: destination.Description,
		Address:     destination.Address,
		ContactInfo: destination.ContactInfo,
		TicketPrice: destination.TicketPrice,
		IsOpen:      destination.IsOpen,
	}
}
