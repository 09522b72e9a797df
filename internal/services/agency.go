package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
)

type AgencyService interface {
	CreateAgency(ctx context.Context, req *models.CreateAgencyRequest) (*models.DeliveryAgency, error)
	GetAgencyByID(ctx context.Context, id int64) (*models.DeliveryAgency, error)
	ListAgencies(ctx context.Context, page, size int) ([]models.DeliveryAgency, int, error)
	UpdateAgency(ctx context.Context, id int64, req *models.UpdateAgencyRequest) (*models.DeliveryAgency, error)
	DeleteAgency(ctx context.Context, id int64) error
	WhatsAppContact(ctx context.Context, id int64) (*models.AgencyContactResponse, error)
}

type agencyService struct {
	repo repository.AgencyRepository
}

func NewAgencyService(repo repository.AgencyRepository) AgencyService {
	return &agencyService{repo: repo}
}

func (s *agencyService) CreateAgency(ctx context.Context, req *models.CreateAgencyRequest) (*models.DeliveryAgency, error) {
	agency := &models.DeliveryAgency{
		Name:     req.Name,
		Phone:    req.Phone,
		Locality: req.Locality,
		Email:    req.Email,
	}

	if err := s.repo.CreateAgency(ctx, agency); err != nil {
		return nil, errors.DatabaseError("Failed to create agency").WithError(err)
	}

	return agency, nil
}

func (s *agencyService) GetAgencyByID(ctx context.Context, id int64) (*models.DeliveryAgency, error) {
	agency, err := s.repo.GetAgencyByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Agency not found").WithError(err)
	}

	return agency, nil
}

func (s *agencyService) ListAgencies(ctx context.Context, page, size int) ([]models.DeliveryAgency, int, error) {
	agencies, total, err := s.repo.ListAgencies(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list agencies").WithError(err)
	}

	return agencies, total, nil
}

func (s *agencyService) UpdateAgency(ctx context.Context, id int64, req *models.UpdateAgencyRequest) (*models.DeliveryAgency, error) {
	agency, err := s.repo.GetAgencyByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Agency not found").WithError(err)
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}

	if req.Phone != nil {
		agency.Phone = *req.Phone
	}

	if req.Locality != nil {
		agency.Locality = *req.Locality
	}

	if req.Email != nil {
		agency.Email = *req.Email
	}

	if err := s.repo.UpdateAgency(ctx, agency); err != nil {
		return nil, errors.DatabaseError("Failed to update agency").WithError(err)
	}

	return agency, nil
}

func (s *agencyService) DeleteAgency(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAgency(ctx, id); err != nil {
		return errors.NotFoundError("Agency not found").WithError(err)
	}

	return nil
}

// WhatsAppContact builds a click-to-chat link from the agency phone number.
func (s *agencyService) WhatsAppContact(ctx context.Context, id int64) (*models.AgencyContactResponse, error) {
	agency, err := s.repo.GetAgencyByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Agency not found").WithError(err)
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, agency.Phone)

	return &models.AgencyContactResponse{
		Message:      fmt.Sprintf("Contact %s via WhatsApp", agency.Name),
		WhatsAppLink: fmt.Sprintf("https://wa.me/%s", digits),
	}, nil
}
