package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/infra"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxHours = decimal.NewFromInt(24)

type WorkdayService interface {
	Create(ctx context.Context, req dto.CreateWorkdayRequest) (*dto.WorkdayResponse, error)
	Get(ctx context.Context, id uint) (*dto.WorkdayResponse, error)
	List(ctx context.Context, filter dto.WorkdayFilter) ([]dto.WorkdayResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateWorkdayRequest) (*dto.WorkdayResponse, error)
	Delete(ctx context.Context, id uint) error
	// WriteHaulSheet renders the workday's haul sheet as PDF into w.
	WriteHaulSheet(ctx context.Context, id uint, w io.Writer) error
	// ArchiveHaulSheet renders the haul sheet into the PDF storage directory
	// and returns the file path.
	ArchiveHaulSheet(ctx context.Context, id uint) (string, error)
}

type workdayService struct {
	repo           repository.WorkdayRepository
	drivers        repository.DriverRepository
	pdfStoragePath string
}

func NewWorkdayService(repo repository.WorkdayRepository, drivers repository.DriverRepository, pdfStoragePath string) WorkdayService {
	return &workdayService{repo: repo, drivers: drivers, pdfStoragePath: pdfStoragePath}
}

func mapWorkday(w model.Workday, hauls int) dto.WorkdayResponse {
	return dto.WorkdayResponse{
		ID:        w.ID,
		DriverID:  w.DriverID,
		Date:      w.Date.Format(dateLayout),
		CHHours:   w.CHHours,
		NCHours:   w.NCHours,
		Notes:     w.Notes,
		HaulCount: hauls,
		CreatedAt: w.CreatedAt,
	}
}

func checkHours(field string, h decimal.Decimal) error {
	if h.IsNegative() || h.GreaterThan(maxHours) {
		return fmt.Errorf("%w: %s must be between 0 and 24", ErrInvalidInput, field)
	}
	return nil
}

// checkDay rejects a second workday for the same driver and date.
func (s *workdayService) checkDay(ctx context.Context, w *model.Workday) error {
	existing, err := s.repo.FindByDriverAndDate(ctx, w.DriverID, w.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && existing.ID != w.ID {
		return fmt.Errorf("workday for driver %d on %s %w", w.DriverID, w.Date.Format(dateLayout), ErrConflict)
	}
	return nil
}

func (s *workdayService) Create(ctx context.Context, req dto.CreateWorkdayRequest) (*dto.WorkdayResponse, error) {
	if _, err := s.drivers.FindByID(ctx, req.DriverID); err != nil {
		return nil, refErr("driver", req.DriverID, err)
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if err := checkHours("ch_hours", req.CHHours); err != nil {
		return nil, err
	}
	if err := checkHours("nc_hours", req.NCHours); err != nil {
		return nil, err
	}
	w := &model.Workday{
		DriverID: req.DriverID,
		Date:     date,
		CHHours:  req.CHHours.Round(2),
		NCHours:  req.NCHours.Round(2),
		Notes:    textcase.Ptr(req.Notes, textcase.Sentence),
	}
	if err := s.checkDay(ctx, w); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	resp := mapWorkday(*w, 0)
	return &resp, nil
}

func (s *workdayService) Get(ctx context.Context, id uint) (*dto.WorkdayResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("workday", id, err)
	}
	counts, err := s.repo.CountHauls(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	resp := mapWorkday(*w, counts[id])
	return &resp, nil
}

func (s *workdayService) List(ctx context.Context, filter dto.WorkdayFilter) ([]dto.WorkdayResponse, error) {
	q := repository.WorkdayQuery{DriverID: filter.DriverID}
	var err error
	if filter.From != "" {
		if q.From, err = parseOptionalDate("from", &filter.From); err != nil {
			return nil, err
		}
	}
	if filter.To != "" {
		if q.To, err = parseOptionalDate("to", &filter.To); err != nil {
			return nil, err
		}
	}
	list, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.ID)
	}
	counts, err := s.repo.CountHauls(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkdayResponse, 0, len(list))
	for _, w := range list {
		out = append(out, mapWorkday(w, counts[w.ID]))
	}
	return out, nil
}

func (s *workdayService) Update(ctx context.Context, id uint, req dto.UpdateWorkdayRequest) (*dto.WorkdayResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("workday", id, err)
	}
	if req.Date != nil {
		if w.Date, err = parseDate("date", *req.Date); err != nil {
			return nil, err
		}
		if err := s.checkDay(ctx, w); err != nil {
			return nil, err
		}
	}
	if req.CHHours != nil {
		if err := checkHours("ch_hours", *req.CHHours); err != nil {
			return nil, err
		}
		w.CHHours = req.CHHours.Round(2)
	}
	if req.NCHours != nil {
		if err := checkHours("nc_hours", *req.NCHours); err != nil {
			return nil, err
		}
		w.NCHours = req.NCHours.Round(2)
	}
	if req.Notes != nil {
		w.Notes = textcase.Ptr(req.Notes, textcase.Sentence)
	}
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	counts, err := s.repo.CountHauls(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	resp := mapWorkday(*w, counts[id])
	return &resp, nil
}

func (s *workdayService) Delete(ctx context.Context, id uint) error {
	return lookupErr("workday", id, s.repo.Delete(ctx, id))
}

func (s *workdayService) WriteHaulSheet(ctx context.Context, id uint, w io.Writer) error {
	wd, err := s.repo.FindSheet(ctx, id)
	if err != nil {
		return lookupErr("workday", id, err)
	}
	return infra.WriteHaulSheetPDF(w, wd)
}

func (s *workdayService) ArchiveHaulSheet(ctx context.Context, id uint) (string, error) {
	wd, err := s.repo.FindSheet(ctx, id)
	if err != nil {
		return "", lookupErr("workday", id, err)
	}
	if err := os.MkdirAll(s.pdfStoragePath, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.pdfStoragePath, fmt.Sprintf("haul-sheet-%d-%s.pdf", wd.ID, wd.Date.Format(dateLayout)))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := infra.WriteHaulSheetPDF(f, wd); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	log.Info().Uint("workday_id", wd.ID).Str("path", path).Msg("haul sheet archived")
	return path, nil
}
