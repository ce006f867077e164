package converter

import (
	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d booking.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) booking.Date {
	return booking.DateOf(pgconv.DateFromPgtype(pd))
}
