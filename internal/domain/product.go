package domain

import (
	"context"
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	OwnerID     uint      `gorm:"index;not null" json:"ownerId"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Variants    []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type Variant struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"` // 金额，两位小数
	ProductID uint      `gorm:"index;not null" json:"productId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Variant) TableName() string { return "variants" }

type CatalogRepository interface {
	// CreateWithVariants 在一个事务里写入商品和全部变体，任一失败则整体回滚
	CreateWithVariants(ctx context.Context, p *Product) error
	ListAll(ctx context.Context) ([]Product, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Delete(ctx context.Context, id uint) error
}
