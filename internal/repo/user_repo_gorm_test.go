package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"product-portal/internal/domain"
)

func TestUserRepoCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	u := &domain.User{Email: "a@x.com", Name: "A", PasswordHash: "hash", Role: domain.RoleUser}
	require.NoError(t, r.Create(ctx, u))
	require.NotZero(t, u.ID)

	byEmail, err := r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := r.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h1", Role: domain.RoleUser}))
	err := r.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h2", Role: domain.RoleUser})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUserRepoNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	_, err := r.FindByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.FindByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
