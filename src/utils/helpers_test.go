package utils

import (
	"log"
	"sams/src/apperr"
	"sams/src/db"
	"sams/src/models"
	"sams/src/types"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	db.NewDB(gormDB)
	return mock
}

func TestCreateBookingMalformedWindow(t *testing.T) {
	newMockDB(t)

	_, err := CreateBooking(1, &types.CreateBookingRequestBody{
		AmenityID: 2,
		StartTime: "not-a-timestamp",
		EndTime:   "2026-01-02 15:00:00 +00:00",
	})
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = CreateBooking(1, &types.CreateBookingRequestBody{
		AmenityID: 2,
		StartTime: "2026-01-02 15:00:00 +00:00",
		EndTime:   "later",
	})
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateBookingPersistsPending(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	booking, err := CreateBooking(1, &types.CreateBookingRequestBody{
		AmenityID: 2,
		StartTime: "2026-01-02 15:00:00 +00:00",
		EndTime:   "2026-01-02 17:00:00 +00:00",
	})
	assert.Nil(t, err)
	assert.Equal(t, uint(7), booking.ID)
	assert.Equal(t, types.BOOKING_PENDING, booking.Status)
	assert.False(t, booking.DeletedAt.Valid)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetOwnBookingsExcludesDeleted(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE user_id = \$[0-9]+ AND "bookings"\."deleted_at" IS NULL ORDER BY start_time asc`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "amenity_id", "status"}).
			AddRow(4, 1, 2, "APPROVED"))

	bookings, err := GetOwnBookings(1)
	assert.Nil(t, err)
	assert.Len(t, bookings, 1)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetAllBookingsCountsRejected(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bookings" WHERE "bookings"\."deleted_at" IS NULL ORDER BY start_time asc`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "amenity_id", "status"}).
			AddRow(1, 1, 2, "PENDING").
			AddRow(2, 1, 2, "APPROVED"))
	mock.ExpectQuery(`SELECT status, count\(\*\) as count FROM "bookings" GROUP BY`).
		WillReturnRows(sqlmock.
			NewRows([]string{"status", "count"}).
			AddRow("PENDING", 1).
			AddRow("APPROVED", 1).
			AddRow("REJECTED", 5))
	mock.ExpectCommit()

	bookings, counts, err := GetAllBookings()
	assert.Nil(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, int64(1), counts.Pending)
	assert.Equal(t, int64(1), counts.Approved)
	assert.Equal(t, int64(5), counts.Rejected, "soft-deleted rejected rows still count in the summary")
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDecideBookingInvalidDecision(t *testing.T) {
	newMockDB(t)

	_, err := DecideBooking(1, types.BookingStatus("MAYBE"))
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDecideBookingRejectedSetsSoftDelete(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET .*"deleted_at"=.* WHERE id = \$[0-9]+ AND "bookings"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "amenity_id", "start_time", "end_time", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(3, 1, 2, now.Add(time.Hour), now.Add(3*time.Hour), "REJECTED", now, now, now))
	mock.ExpectCommit()

	booking, err := DecideBooking(3, types.BOOKING_REJECTED)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_REJECTED, booking.Status)
	assert.True(t, booking.DeletedAt.Valid, "rejection must set the soft-delete marker")
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDecideBookingApprovedStaysVisible(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET "status"=.* WHERE id = \$[0-9]+ AND "bookings"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "amenity_id", "start_time", "end_time", "status", "created_at", "updated_at", "deleted_at"}).
			AddRow(3, 1, 2, now.Add(time.Hour), now.Add(3*time.Hour), "APPROVED", now, now, nil))
	mock.ExpectCommit()

	booking, err := DecideBooking(3, types.BOOKING_APPROVED)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_APPROVED, booking.Status)
	assert.False(t, booking.DeletedAt.Valid)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDecideBookingNotFound(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET .* WHERE id = \$[0-9]+ AND "bookings"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := DecideBooking(99, types.BOOKING_APPROVED)
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestPublishNoticeValidation(t *testing.T) {
	newMockDB(t)

	_, err := PublishNotice(1, &types.CreateNoticeRequestBody{Title: "   ", Content: "body"})
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = PublishNotice(1, &types.CreateNoticeRequestBody{Title: "water", Content: "  "})
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	past := time.Now().Add(-time.Minute).Format("2006-01-02 15:04:05 -07:00")
	_, err = PublishNotice(1, &types.CreateNoticeRequestBody{
		Title:     "water shutdown",
		Content:   "maintenance on sunday",
		ExpiresAt: &past,
	})
	assert.NotNil(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestPublishNoticeDefaultsPriority(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notices"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	notice, err := PublishNotice(1, &types.CreateNoticeRequestBody{
		Title:   "water shutdown",
		Content: "maintenance on sunday",
	})
	assert.Nil(t, err)
	assert.Equal(t, types.NOTICE_PRIORITY_NORMAL, notice.Priority)
	assert.Nil(t, notice.ExpiresAt)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSortNotices(t *testing.T) {
	now := time.Now()
	expiredAt := now.Add(-time.Hour)
	notices := []models.Notice{
		{Title: "low", Priority: types.NOTICE_PRIORITY_LOW, CreatedAt: now.Add(-3 * time.Hour)},
		{Title: "expired-high", Priority: types.NOTICE_PRIORITY_HIGH, CreatedAt: now.Add(-time.Minute), ExpiresAt: &expiredAt},
		{Title: "high", Priority: types.NOTICE_PRIORITY_HIGH, CreatedAt: now.Add(-2 * time.Hour)},
		{Title: "normal", Priority: types.NOTICE_PRIORITY_NORMAL, CreatedAt: now.Add(-time.Hour)},
	}

	SortNotices(notices, now)

	assert.Equal(t, "high", notices[0].Title)
	assert.Equal(t, "normal", notices[1].Title)
	assert.Equal(t, "low", notices[2].Title)
	assert.Equal(t, "expired-high", notices[3].Title, "expired notices sort after all active ones")
}

func TestSortNoticesNewestFirstWithinPriority(t *testing.T) {
	now := time.Now()
	notices := []models.Notice{
		{Title: "older", Priority: types.NOTICE_PRIORITY_NORMAL, CreatedAt: now.Add(-2 * time.Hour)},
		{Title: "newer", Priority: types.NOTICE_PRIORITY_NORMAL, CreatedAt: now.Add(-time.Hour)},
	}

	SortNotices(notices, now)

	assert.Equal(t, "newer", notices[0].Title)
	assert.Equal(t, "older", notices[1].Title)
}

func TestSweepStaleBookings(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET .*"deleted_at"=.* WHERE status = \$[0-9]+ AND start_time < \$[0-9]+ AND "bookings"\."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	rows, err := SweepStaleBookings(now)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), rows)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSweepStaleBookingsIdempotent(t *testing.T) {
	mock := newMockDB(t)

	sweepUpdate := `UPDATE "bookings" SET .*"deleted_at"=.* WHERE status = \$[0-9]+ AND start_time < \$[0-9]+ AND "bookings"\."deleted_at" IS NULL`
	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(sweepUpdate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(sweepUpdate).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	first, err := SweepStaleBookings(now)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), first)

	second, err := SweepStaleBookings(now)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), second, "second run in succession must change nothing")
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSweepExpiredNotices(t *testing.T) {
	mock := newMockDB(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "notices" WHERE expires_at IS NOT NULL AND expires_at < \$[0-9]+`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	rows, err := SweepExpiredNotices(now)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), rows)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("resident1", 42)
	assert.Nil(t, err)
	assert.NotEmpty(t, token)
}
