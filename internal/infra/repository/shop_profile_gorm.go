package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ShopProfileGormRepository struct {
	db *gorm.DB
}

func NewShopProfileGormRepository(db *gorm.DB) *ShopProfileGormRepository {
	return &ShopProfileGormRepository{db: db}
}

func (r *ShopProfileGormRepository) FindByShopID(ctx context.Context, shopID string) (model.ShopProfile, error) {
	var p model.ShopProfile
	err := r.db.WithContext(ctx).Where("id = ?", shopID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShopProfile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShopProfile{}, err
	}
	return p, nil
}

func (r *ShopProfileGormRepository) Create(ctx context.Context, p model.ShopProfile) error {
	return r.db.WithContext(ctx).Create(&p).Error
}

func (r *ShopProfileGormRepository) Update(ctx context.Context, p model.ShopProfile) error {
	res := r.db.WithContext(ctx).Model(&model.ShopProfile{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":             p.Name,
			"owner_name":       p.OwnerName,
			"email":            p.Email,
			"phone":            p.Phone,
			"pin_code":         p.PinCode,
			"shop_type":        p.ShopType,
			"description":      p.Description,
			"address":          p.Address,
			"logo_url":         p.LogoURL,
			"banner_url":       p.BannerURL,
			"pickup_available": p.PickupAvailable,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
