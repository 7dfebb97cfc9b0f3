package service

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
)

type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error)
	Get(ctx context.Context, id uint) (*dto.ContactResponse, error)
	List(ctx context.Context, filter dto.ContactFilter) ([]dto.ContactResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateContactRequest) (*dto.ContactResponse, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo    repository.ContactRepository
	vendors repository.VendorRepository
}

func NewContactService(repo repository.ContactRepository, vendors repository.VendorRepository) ContactService {
	return &contactService{repo: repo, vendors: vendors}
}

func mapContact(c model.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        c.ID,
		VendorID:  c.VendorID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Title:     c.Title,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
	}
}

// vendorRef validates an optional vendor id; 0 detaches the contact.
func (s *contactService) vendorRef(ctx context.Context, id *uint) (*uint, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}
	if _, err := s.vendors.FindByID(ctx, *id); err != nil {
		return nil, refErr("vendor", *id, err)
	}
	return id, nil
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	vendorID, err := s.vendorRef(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	c := &model.Contact{
		VendorID:  vendorID,
		FirstName: textcase.Title(req.FirstName),
		LastName:  textcase.Ptr(req.LastName, textcase.Title),
		Title:     textcase.Ptr(req.Title, textcase.Title),
		Phone:     textcase.Ptr(req.Phone, textcase.Upper),
		Email:     textcase.Ptr(req.Email, textcase.Email),
		Notes:     textcase.Ptr(req.Notes, textcase.Sentence),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := mapContact(*c)
	return &resp, nil
}

func (s *contactService) Get(ctx context.Context, id uint) (*dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("contact", id, err)
	}
	resp := mapContact(*c)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context, filter dto.ContactFilter) ([]dto.ContactResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, mapContact(c))
	}
	return out, nil
}

func (s *contactService) Update(ctx context.Context, id uint, req dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("contact", id, err)
	}
	if req.VendorID != nil {
		if c.VendorID, err = s.vendorRef(ctx, req.VendorID); err != nil {
			return nil, err
		}
	}
	if req.FirstName != nil {
		c.FirstName = textcase.Title(*req.FirstName)
	}
	if req.LastName != nil {
		c.LastName = textcase.Ptr(req.LastName, textcase.Title)
	}
	if req.Title != nil {
		c.Title = textcase.Ptr(req.Title, textcase.Title)
	}
	if req.Phone != nil {
		c.Phone = textcase.Ptr(req.Phone, textcase.Upper)
	}
	if req.Email != nil {
		c.Email = textcase.Ptr(req.Email, textcase.Email)
	}
	if req.Notes != nil {
		c.Notes = textcase.Ptr(req.Notes, textcase.Sentence)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := mapContact(*c)
	return &resp, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	return lookupErr("contact", id, s.repo.Delete(ctx, id))
}
