package repository

import (
	"context"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type NoteFilter struct {
	Category   string
	ActiveOnly bool
	Offset     int
	Limit      int
}

type NoteRepository interface {
	Create(ctx context.Context, data *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	GetList(ctx context.Context, filter NoteFilter) ([]entity.Note, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Note, error)
	GetByCategory(ctx context.Context, category string) ([]entity.Note, error)
	UpdateByID(ctx context.Context, id string, updateMap map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type noteRepository struct{}

func NewNoteRepository() *noteRepository {
	return &noteRepository{}
}

func (r *noteRepository) Create(ctx context.Context, data *entity.Note) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	var record entity.Note
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *noteRepository) GetList(ctx context.Context, filter NoteFilter) ([]entity.Note, error) {
	tx := xcontext.DB(ctx).Model(&entity.Note{})
	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if filter.ActiveOnly {
		tx = tx.Where("is_active=?", true)
	}

	var records []entity.Note
	err := tx.Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *noteRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Note, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var records []entity.Note
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *noteRepository) GetByCategory(ctx context.Context, category string) ([]entity.Note, error) {
	var records []entity.Note
	err := xcontext.DB(ctx).
		Where("category=? AND is_active=?", category, true).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *noteRepository) UpdateByID(ctx context.Context, id string, updateMap map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Note{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *noteRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Note{}).Error
}
