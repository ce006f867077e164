//go:build unit

package repository

import (
	"context"
	"testing"

	"gaming-zone-booking/internal/infra"
	sqlc "gaming-zone-booking/internal/infra/sqlc/generated"
	"gaming-zone-booking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestUserRepositoryCreate(t *testing.T) {
	b := builder.NewUserBuilder().WithEmail("player@example.com")
	u, err := b.BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		row      sqlc.Users
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  b.BuildInfra(),
		},
		{
			name:     "email already registered",
			mockErr:  uniqueViolation(),
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "database error",
			mockErr:  assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := new(MockUserWriteQueries)
			db := new(mockDB)
			queries.On("CreateUser", mock.Anything, db, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.Email == "player@example.com"
			})).Return(tt.row, tt.mockErr)

			repo := NewUserRepository(queries, db)
			created, err := repo.Create(context.Background(), db, u)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.row.ID, created.ID())
				assert.Equal(t, "player@example.com", created.Email().Value())
			}
			queries.AssertExpectations(t)
		})
	}
}

func TestUserRepositoryUpdateRole(t *testing.T) {
	u := builder.NewUserBuilder().BuildStored()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "user missing", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := new(MockUserWriteQueries)
			db := new(mockDB)
			queries.On("UpdateUserRole", mock.Anything, db, sqlc.UpdateUserRoleParams{
				ID:   u.ID(),
				Role: u.Role().String(),
			}).Return(tt.affected, tt.mockErr)

			err := NewUserRepository(queries, db).UpdateRole(context.Background(), db, u)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			queries.AssertExpectations(t)
		})
	}
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	b := builder.NewUserBuilder().WithName("Riya Sen").WithPhone("9123456780")
	u := b.BuildStored()

	tests := []struct {
		name     string
		row      sqlc.Users
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: b.BuildInfra()},
		{name: "user missing", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queries := new(MockUserWriteQueries)
			db := new(mockDB)
			queries.On("UpdateUserProfile", mock.Anything, db, sqlc.UpdateUserProfileParams{
				ID:    u.ID(),
				Name:  "Riya Sen",
				Phone: "9123456780",
			}).Return(tt.row, tt.mockErr)

			updated, err := NewUserRepository(queries, db).UpdateProfile(context.Background(), db, u)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Riya Sen", updated.Name())
				assert.Equal(t, "9123456780", updated.Phone())
			}
			queries.AssertExpectations(t)
		})
	}
}
