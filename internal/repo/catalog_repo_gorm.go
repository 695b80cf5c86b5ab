package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"product-portal/internal/domain"
)

type CatalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) *CatalogRepo { return &CatalogRepo{db: db} }

// CreateWithVariants 商品行和全部变体行在同一个事务内写入，
// 任何一条变体插入失败都会连同商品一起回滚，不会留下没有变体的商品。
func (r *CatalogRepo) CreateWithVariants(ctx context.Context, p *domain.Product) error {
	variants := p.Variants
	p.Variants = nil
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Variants", "Owner").Create(p).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ProductID = p.ID
		}
		if err := tx.Create(&variants).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.Variants = variants
	return nil
}

func (r *CatalogRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Owner").
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

func (r *CatalogRepo) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

func (r *CatalogRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Owner").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete 删除商品并级联删除其变体；显式放在一个事务里，
// 不依赖各驱动对外键 CASCADE 的支持程度，部分删除永远不可见。
func (r *CatalogRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&domain.Variant{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
