package repository

import (
	"context"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

// WorkdayQuery is the parsed form of dto.WorkdayFilter.
type WorkdayQuery struct {
	DriverID uint
	From     *time.Time
	To       *time.Time
}

type WorkdayRepository interface {
	Create(ctx context.Context, w *model.Workday) error
	FindByID(ctx context.Context, id uint) (*model.Workday, error)
	// FindSheet loads the workday with its driver and hauls (ordered by time).
	FindSheet(ctx context.Context, id uint) (*model.Workday, error)
	FindByDriverAndDate(ctx context.Context, driverID uint, date time.Time) (*model.Workday, error)
	List(ctx context.Context, q WorkdayQuery) ([]model.Workday, error)
	CountHauls(ctx context.Context, workdayIDs []uint) (map[uint]int, error)
	Update(ctx context.Context, w *model.Workday) error
	Delete(ctx context.Context, id uint) error
}

type workdayRepo struct{ crud[model.Workday] }

func NewWorkdayRepository(db *gorm.DB) WorkdayRepository {
	return &workdayRepo{crud[model.Workday]{db: db}}
}

func (r *workdayRepo) FindSheet(ctx context.Context, id uint) (*model.Workday, error) {
	var w model.Workday
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Hauls", func(db *gorm.DB) *gorm.DB { return db.Order("date_time ASC") }).
		First(&w, id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workdayRepo) FindByDriverAndDate(ctx context.Context, driverID uint, date time.Time) (*model.Workday, error) {
	var w model.Workday
	if err := r.db.WithContext(ctx).Where("driver_id = ? AND date = ?", driverID, date).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *workdayRepo) List(ctx context.Context, q WorkdayQuery) ([]model.Workday, error) {
	db := r.db.WithContext(ctx)
	if q.DriverID != 0 {
		db = db.Where("driver_id = ?", q.DriverID)
	}
	if q.From != nil {
		db = db.Where("date >= ?", *q.From)
	}
	if q.To != nil {
		db = db.Where("date <= ?", *q.To)
	}
	var list []model.Workday
	err := db.Order("date DESC").Find(&list).Error
	return list, err
}

func (r *workdayRepo) CountHauls(ctx context.Context, workdayIDs []uint) (map[uint]int, error) {
	counts := make(map[uint]int, len(workdayIDs))
	if len(workdayIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		WorkdayID uint
		N         int
	}
	err := r.db.WithContext(ctx).Model(&model.Haul{}).
		Select("workday_id, count(*) AS n").
		Where("workday_id IN ?", workdayIDs).
		Group("workday_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.WorkdayID] = row.N
	}
	return counts, nil
}
