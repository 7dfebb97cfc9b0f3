package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/worker"

	"github.com/rs/zerolog/log"
)

// EmailQueue is satisfied by worker.Dispatcher.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, job worker.EmailJob) error
}

type NoticeService interface {
	Create(ctx context.Context, req dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	Get(ctx context.Context, id uint) (*dto.NoticeResponse, error)
	List(ctx context.Context, filter dto.ActiveFilter) ([]dto.NoticeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateNoticeRequest) (*dto.NoticeResponse, error)
	Delete(ctx context.Context, id uint) error
	// Broadcast queues one email per contact with an address.
	Broadcast(ctx context.Context, id uint) (*dto.BroadcastResponse, error)
}

type noticeService struct {
	repo     repository.NoticeRepository
	contacts repository.ContactRepository
	queue    EmailQueue
	now      func() time.Time
}

func NewNoticeService(repo repository.NoticeRepository, contacts repository.ContactRepository, queue EmailQueue) NoticeService {
	return &noticeService{repo: repo, contacts: contacts, queue: queue, now: time.Now}
}

func mapNotice(n model.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		IsActive:  n.IsActive,
		ExpiresAt: n.ExpiresAt,
		CreatedAt: n.CreatedAt,
	}
}

func (s *noticeService) Create(ctx context.Context, req dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if req.ExpiresAt != nil && !req.ExpiresAt.After(s.now()) {
		return nil, fmt.Errorf("%w: expires_at must be in the future", ErrInvalidInput)
	}
	n := &model.Notice{
		Title:     textcase.Title(req.Title),
		Body:      textcase.Sentence(req.Body),
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	resp := mapNotice(*n)
	return &resp, nil
}

func (s *noticeService) Get(ctx context.Context, id uint) (*dto.NoticeResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("notice", id, err)
	}
	resp := mapNotice(*n)
	return &resp, nil
}

func (s *noticeService) List(ctx context.Context, filter dto.ActiveFilter) ([]dto.NoticeResponse, error) {
	list, err := s.repo.List(ctx, filter.Active, s.now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoticeResponse, 0, len(list))
	for _, n := range list {
		out = append(out, mapNotice(n))
	}
	return out, nil
}

func (s *noticeService) Update(ctx context.Context, id uint, req dto.UpdateNoticeRequest) (*dto.NoticeResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("notice", id, err)
	}
	if req.Title != nil {
		n.Title = textcase.Title(*req.Title)
	}
	if req.Body != nil {
		n.Body = textcase.Sentence(*req.Body)
	}
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		n.ExpiresAt = req.ExpiresAt
	}
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	resp := mapNotice(*n)
	return &resp, nil
}

func (s *noticeService) Delete(ctx context.Context, id uint) error {
	return lookupErr("notice", id, s.repo.Delete(ctx, id))
}

func (s *noticeService) Broadcast(ctx context.Context, id uint) (*dto.BroadcastResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("notice", id, err)
	}
	if !n.IsActive || (n.ExpiresAt != nil && !n.ExpiresAt.After(s.now())) {
		return nil, fmt.Errorf("%w: notice %d is not active", ErrInvalidInput, id)
	}
	contacts, err := s.contacts.ListEmailable(ctx)
	if err != nil {
		return nil, err
	}

	sent := 0
	for _, c := range contacts {
		job := worker.EmailJob{NoticeID: n.ID, To: *c.Email, Subject: n.Title, Body: n.Body}
		if err := s.queue.EnqueueEmail(ctx, job); err != nil {
			log.Error().Err(err).Uint("notice_id", n.ID).Int("queued", sent).Msg("broadcast interrupted")
			return nil, fmt.Errorf("enqueue notice %d: %w", n.ID, err)
		}
		sent++
	}
	log.Info().Uint("notice_id", n.ID).Int("recipients", sent).Msg("notice broadcast queued")
	return &dto.BroadcastResponse{NoticeID: n.ID, Recipients: sent}, nil
}
