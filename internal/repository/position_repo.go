package repository

import (
	"context"

	"jhris/internal/model"

	"gorm.io/gorm"
)

type PositionRepository interface {
	Create(ctx context.Context, p *model.Position) error
	FindByID(ctx context.Context, id uint) (*model.Position, error)
	FindByCode(ctx context.Context, code string) (*model.Position, error)
	List(ctx context.Context, skip, limit int) ([]model.Position, error)
	Update(ctx context.Context, p *model.Position) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type positionRepo struct{ db *gorm.DB }

func NewPositionRepository(db *gorm.DB) PositionRepository { return &positionRepo{db: db} }

func (r *positionRepo) Create(ctx context.Context, p *model.Position) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *positionRepo) FindByID(ctx context.Context, id uint) (*model.Position, error) {
	var p model.Position
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *positionRepo) FindByCode(ctx context.Context, code string) (*model.Position, error) {
	var p model.Position
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *positionRepo) List(ctx context.Context, skip, limit int) ([]model.Position, error) {
	var list []model.Position
	err := r.db.WithContext(ctx).Order("id asc").Offset(skip).Limit(limit).Find(&list).Error
	return list, translate(err)
}

func (r *positionRepo) Update(ctx context.Context, p *model.Position) error {
	return updateRow(r.db.WithContext(ctx), p)
}

func (r *positionRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return deleteDetached(r.db.WithContext(ctx), &model.Position{}, id, positionReferences)
}
