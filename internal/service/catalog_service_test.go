package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"product-portal/internal/domain"
	"product-portal/internal/repo"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Variant{}))
	return NewCatalogService(repo.NewCatalogRepo(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestCatalogGetEnforcesOwnership(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.com", domain.RoleUser)
	bob := seedUser(t, db, "bob@x.com", domain.RoleUser)
	admin := seedUser(t, db, "root@x.com", domain.RoleAdmin)

	p, err := svc.Create(ctx, alice, CreateProductInput{
		Name:     "T-Shirt",
		Variants: []VariantInput{{Name: "S", Amount: 9.99}},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, alice, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.Get(ctx, bob, p.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	// admin 无条件跳过属主检查
	_, err = svc.Get(ctx, admin, p.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, admin, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogDelete(t *testing.T) {
	svc, db := newCatalogService(t)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.com", domain.RoleUser)
	p, err := svc.Create(ctx, alice, CreateProductInput{
		Name:     "Mug",
		Variants: []VariantInput{{Name: "white", Amount: 5}, {Name: "black", Amount: 6}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	require.ErrorIs(t, svc.Delete(ctx, p.ID), domain.ErrNotFound)

	var variants int64
	require.NoError(t, db.Model(&domain.Variant{}).Count(&variants).Error)
	require.EqualValues(t, 0, variants)
}
