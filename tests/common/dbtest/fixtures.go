//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, name, phone, password_hash, role)
		VALUES ($1, $2, $3, '9876543210', $4, $5)
		ON CONFLICT ((lower(email))) DO NOTHING`,
		userID, email, name, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestVenue(t *testing.T, db DBLike, name, city string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO venues (name, address, area, city, starting_price, rating)
		VALUES ($1, '12 FC Road', 'Shivajinagar', $2, 200, 4.5)
		RETURNING id`, name, city).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestGame(t *testing.T, db DBLike, venueID uuid.UUID, name string, pricePerHour int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO games (venue_id, name, price_per_hour)
		VALUES ($1, $2, $3)
		RETURNING id`, venueID, name, pricePerHour).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCafeItem(t *testing.T, db DBLike, venueID uuid.UUID, name, category string, price int64, available bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `INSERT INTO cafe_items (venue_id, name, category, price, is_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, venueID, name, category, price, available).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateConfirmedBooking inserts a paid online booking without going through the API,
// for states the API cannot reach with a real clock (slots that already started).
func CreateConfirmedBooking(t *testing.T, db DBLike, userID, venueID, gameID uuid.UUID, date, slot string, rate int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings (
			id, user_id, user_name, user_email, game_id, game_name, hourly_rate,
			venue_id, venue_name, venue_address, booking_date, time_slot, duration_hours,
			game_total, cafe_total, total_amount, payment_method, payment_status, status)
		VALUES ($1, $2, 'Fixture User', 'fixture@example.com', $3, 'Fixture Game', $4,
			$5, 'Fixture Venue', '12 FC Road', $6::date, $7, 1,
			$4, 0, $4, 'online', 'paid', 'confirmed')`,
		id, userID, gameID, rate, venueID, date, slot)
	require.NoError(t, err)
	return id
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
