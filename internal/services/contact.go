package service

import (
	"context"
	"fmt"

	"github.com/kieran237-code/Terrabia/internal/errors"
	"github.com/kieran237-code/Terrabia/internal/models"
	repository "github.com/kieran237-code/Terrabia/internal/repositories"
)

type ContactService interface {
	Contact(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
}

type contactService struct {
	userRepo repository.UserRepository
}

func NewContactService(userRepo repository.UserRepository) ContactService {
	return &contactService{userRepo: userRepo}
}

// Contact resolves the target user and produces an instruction for reaching
// them over the requested channel.
func (s *contactService) Contact(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	target, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	switch req.Mode {
	case models.ContactModeCall:
		return &models.ContactResponse{
			Message: fmt.Sprintf("Call %s by phone", target.Email),
		}, nil
	case models.ContactModeWhatsApp:
		return &models.ContactResponse{
			Message: fmt.Sprintf("Contact %s via WhatsApp", target.Email),
		}, nil
	default:
		return nil, errors.BadRequestError("Invalid contact mode")
	}
}
