//go:build unit

package user_test

import (
	"testing"

	"gaming-zone-booking/internal/domain/user"
	"gaming-zone-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("registers a regular account", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.Equal(t, "Test Player", actual.Name())

		want := user.Actor{UserID: actual.ID(), Name: "Test Player", Email: "test@example.com", Role: user.RoleUser}
		if diff := cmp.Diff(want, actual.Actor(), cmpOpts...); diff != "" {
			t.Errorf("Actor mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case is accepted",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Player@Example.COM ") },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrInvalidName,
			},
			{
				name: "too long",
				mutate: func(b *builder.UserBuilder) {
					long := make([]rune, 101)
					for i := range long {
						long[i] = 'a'
					}
					b.WithName(string(long))
				},
				errIs: user.ErrInvalidName,
			},
		})
	})

	t.Run("phone", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "optional",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("") },
			},
			{
				name:   "letters rejected",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("call-me-maybe") },
				errIs:  user.ErrInvalidPhone,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestEmailIsLowerCased(t *testing.T) {
	email, err := user.NewEmail("  Player@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", email.Value())
}

func TestChangeRole(t *testing.T) {
	admin := builder.NewUserBuilder().AsAdmin().BuildActor()

	t.Run("admin promotes another user", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()
		require.NoError(t, u.ChangeRole(admin, user.RoleAdmin))
		assert.Equal(t, user.RoleAdmin, u.Role())
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()
		caller := builder.NewUserBuilder().BuildActor()
		assert.ErrorIs(t, u.ChangeRole(caller, user.RoleAdmin), user.ErrForbidden)
		assert.Equal(t, user.RoleUser, u.Role())
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		b := builder.NewUserBuilder().AsAdmin()
		u := b.BuildStored()
		assert.ErrorIs(t, u.ChangeRole(b.BuildActor(), user.RoleUser), user.ErrSelfRoleChange)
	})

	t.Run("invalid role", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()
		assert.ErrorIs(t, u.ChangeRole(admin, user.Role("owner")), user.ErrInvalidRole)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("trims and stores the new values", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		require.NoError(t, u.UpdateProfile("  Riya Sen ", " 9123456780 "))
		assert.Equal(t, "Riya Sen", u.Name())
		assert.Equal(t, "9123456780", u.Phone())
	})

	t.Run("clears the phone when blank", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		require.NoError(t, u.UpdateProfile("Test Player", ""))
		assert.Empty(t, u.Phone())
	})

	t.Run("rejects a bad phone and keeps the old values", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		err := u.UpdateProfile("Someone Else", "12ab")
		assert.ErrorIs(t, err, user.ErrInvalidPhone)
		assert.Equal(t, "Test Player", u.Name())
		assert.Equal(t, "+91 98765 43210", u.Phone())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()
		assert.ErrorIs(t, u.UpdateProfile("   ", ""), user.ErrInvalidName)
	})
}
