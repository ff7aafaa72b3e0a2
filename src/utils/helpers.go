package utils

import (
	"log"
	"os"
	"sams/src/apperr"
	"sams/src/config"
	"sams/src/db"
	"sams/src/lib"
	"sams/src/models"
	"sams/src/models/scopes"
	"sams/src/types"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

const NoticesCacheKey = "notices:active"

func IsProd() bool {
	return config.API_ENV == "production"
}

func GenerateJWT(username string, userId uint) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userId)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// CreateBooking validates the requested window and persists a new PENDING
// booking owned by userId. Overlapping bookings on the same amenity are not
// checked here; see DecideBooking for the only other status mutator.
func CreateBooking(userId uint, params *types.CreateBookingRequestBody) (*models.Booking, error) {
	startTime, err := time.Parse(config.TIME_PARSE_FORMAT, params.StartTime)
	if err != nil {
		log.Printf("Error parsing start_time: %s\n", err.Error())
		return nil, apperr.Validation("start_time is not a valid timestamp")
	}
	endTime, err := time.Parse(config.TIME_PARSE_FORMAT, params.EndTime)
	if err != nil {
		log.Printf("Error parsing end_time: %s\n", err.Error())
		return nil, apperr.Validation("end_time is not a valid timestamp")
	}

	booking := models.Booking{
		UserID:    userId,
		AmenityID: params.AmenityID,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    types.BOOKING_PENDING,
	}
	dbi := db.GetDb()
	if err := dbi.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		log.Printf("Error creating booking: %s\n", err.Error())
		return nil, apperr.Storage(err)
	}
	return &booking, nil
}

// GetOwnBookings lists the caller's visible bookings ordered by start time.
// Soft-deleted rows never appear.
func GetOwnBookings(userId uint) ([]models.Booking, error) {
	dbi := db.GetDb()
	var bookings []models.Booking
	if err := dbi.
		Model(&models.Booking{}).
		Scopes(scopes.WithOwner(userId)).
		Order("start_time asc").
		Find(&bookings).
		Error; err != nil {
		log.Printf("Error retrieving bookings for user %d: %s\n", userId, err.Error())
		return nil, apperr.Storage(err)
	}
	return bookings, nil
}

// GetAllBookings lists every visible booking plus per-status counts for the
// admin dashboard summary.
func GetAllBookings() ([]models.Booking, *types.BookingStatusCounts, error) {
	dbi := db.GetDb()
	var bookings []models.Booking
	var counts types.BookingStatusCounts
	err := dbi.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Booking{}).
			Order("start_time asc").
			Find(&bookings).
			Error; err != nil {
			return err
		}
		var rows []struct {
			Status string
			Count  int64
		}
		// Unscoped: REJECTED rows are soft-deleted and would otherwise never
		// show up in the summary.
		if err := tx.
			Unscoped().
			Model(&models.Booking{}).
			Select("status, count(*) as count").
			Group("status").
			Find(&rows).
			Error; err != nil {
			return err
		}
		for _, row := range rows {
			switch types.BookingStatus(row.Status) {
			case types.BOOKING_PENDING:
				counts.Pending = row.Count
			case types.BOOKING_APPROVED:
				counts.Approved = row.Count
			case types.BOOKING_REJECTED:
				counts.Rejected = row.Count
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error retrieving bookings: %s\n", err.Error())
		return nil, nil, apperr.Storage(err)
	}
	return bookings, &counts, nil
}

// DecideBooking applies an admin decision. APPROVED keeps the row visible;
// REJECTED sets the soft-delete marker in the same UPDATE, so the invariant
// "REJECTED implies deleted" holds even if the process dies right after the
// commit. Rows already swept (soft-deleted) are not found.
func DecideBooking(bookingId uint, decision types.BookingStatus) (*models.Booking, error) {
	if decision != types.BOOKING_APPROVED && decision != types.BOOKING_REJECTED {
		return nil, apperr.Validation("status must be APPROVED or REJECTED")
	}
	now := time.Now()
	values := map[string]any{"status": decision}
	if decision == types.BOOKING_REJECTED {
		values["deleted_at"] = now
	}
	dbi := db.GetDb()
	var booking models.Booking
	err := dbi.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Booking{}).
			Scopes(scopes.WithID(bookingId)).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.
			Unscoped().
			Model(&models.Booking{}).
			Scopes(scopes.WithID(bookingId)).
			First(&booking).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("booking not found")
		}
		log.Printf("Error updating booking %d: %s\n", bookingId, err.Error())
		return nil, apperr.Storage(err)
	}
	return &booking, nil
}

// PublishNotice creates a notice authored by authorId. An expiry, when
// supplied, must still be in the future at the time of the call.
func PublishNotice(authorId uint, params *types.CreateNoticeRequestBody) (*models.Notice, error) {
	title := strings.TrimSpace(params.Title)
	content := strings.TrimSpace(params.Content)
	if title == "" || content == "" {
		return nil, apperr.Validation("title and content are required")
	}
	priority := params.Priority
	if priority == "" {
		priority = types.NOTICE_PRIORITY_NORMAL
	}
	var expiresAt *time.Time
	if params.ExpiresAt != nil {
		parsed, err := time.Parse(config.TIME_PARSE_FORMAT, *params.ExpiresAt)
		if err != nil {
			log.Printf("Error parsing expires_at: %s\n", err.Error())
			return nil, apperr.Validation("expires_at is not a valid timestamp")
		}
		if !parsed.After(time.Now()) {
			return nil, apperr.Validation("expiration date must be in the future")
		}
		expiresAt = &parsed
	}

	notice := models.Notice{
		Title:     title,
		Content:   content,
		Priority:  priority,
		CreatedBy: authorId,
		ExpiresAt: expiresAt,
	}
	dbi := db.GetDb()
	if err := dbi.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&notice).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		log.Printf("Error creating notice: %s\n", err.Error())
		return nil, apperr.Storage(err)
	}
	lib.CacheDel(NoticesCacheKey)
	return &notice, nil
}

// GetNotices returns the notice board. Active notices only by default;
// includeExpired additionally returns expired-but-unpurged ones, which sort
// after every active notice regardless of priority.
func GetNotices(includeExpired bool) ([]models.Notice, error) {
	now := time.Now()
	dbi := db.GetDb()
	query := dbi.Model(&models.Notice{})
	if !includeExpired {
		query = query.Where("expires_at IS NULL OR expires_at >= ?", now)
	}
	var notices []models.Notice
	if err := query.Find(&notices).Error; err != nil {
		log.Printf("Error retrieving notices: %s\n", err.Error())
		return nil, apperr.Storage(err)
	}
	SortNotices(notices, now)
	return notices, nil
}

// SortNotices orders the board in place: expired last, then priority
// HIGH > NORMAL > LOW, then newest first.
func SortNotices(notices []models.Notice, now time.Time) {
	sort.SliceStable(notices, func(i, j int) bool {
		a, b := notices[i], notices[j]
		if a.Expired(now) != b.Expired(now) {
			return !a.Expired(now)
		}
		wa, wb := types.PriorityWeight(a.Priority), types.PriorityWeight(b.Priority)
		if wa != wb {
			return wa > wb
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

// RetractNotice removes a notice immediately. Unlike bookings this is a
// hard delete.
func RetractNotice(noticeId uuid.UUID) error {
	dbi := db.GetDb()
	res := dbi.
		Where("id = ?", noticeId).
		Delete(&models.Notice{})
	if res.Error != nil {
		log.Printf("Error deleting notice %s: %s\n", noticeId.String(), res.Error.Error())
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("notice not found")
	}
	lib.CacheDel(NoticesCacheKey)
	return nil
}

// SweepStaleBookings auto-rejects PENDING bookings whose start time has been
// in the past longer than the grace window. The transition is a single
// conditional UPDATE matched on status, so re-running it touches nothing and
// a crash can never leave a row half-updated.
func SweepStaleBookings(now time.Time) (int64, error) {
	cutoff := now.Add(-config.BookingGraceWindow())
	dbi := db.GetDb()
	res := dbi.
		Model(&models.Booking{}).
		Scopes(scopes.WithPendingStatus, scopes.StartedBefore(cutoff)).
		Updates(map[string]any{
			"status":     types.BOOKING_REJECTED,
			"deleted_at": now,
		})
	if res.Error != nil {
		log.Printf("Error sweeping stale bookings: %s\n", res.Error.Error())
		return 0, apperr.Storage(res.Error)
	}
	return res.RowsAffected, nil
}

// SweepExpiredNotices purges notices that have been expired longer than the
// retention grace. A single conditional DELETE, idempotent by construction.
func SweepExpiredNotices(now time.Time) (int64, error) {
	cutoff := now.Add(-config.NoticeRetentionGrace())
	dbi := db.GetDb()
	res := dbi.
		Scopes(scopes.ExpiredBefore(cutoff)).
		Delete(&models.Notice{})
	if res.Error != nil {
		log.Printf("Error sweeping expired notices: %s\n", res.Error.Error())
		return 0, apperr.Storage(res.Error)
	}
	if res.RowsAffected > 0 {
		lib.CacheDel(NoticesCacheKey)
	}
	return res.RowsAffected, nil
}

// RecordSweep appends the operational trace for one sweep run. Failures here
// only log; a sweep must never crash over its own bookkeeping.
func RecordSweep(job string, rows int64, ranAt time.Time, sweepErr error) {
	entry := models.SweepLog{
		Job:          job,
		RowsAffected: rows,
		RanAt:        ranAt,
	}
	if sweepErr != nil {
		entry.Error = sweepErr.Error()
	}
	dbi := db.GetDb()
	if err := dbi.Create(&entry).Error; err != nil {
		log.Printf("Error recording sweep %s: %s\n", job, err.Error())
	}
}

// GetRecentSweeps lists the latest sweep runs for the admin operations view.
func GetRecentSweeps(limit int) ([]models.SweepLog, error) {
	if limit <= 0 {
		limit = 50
	}
	dbi := db.GetDb()
	var entries []models.SweepLog
	if err := dbi.
		Model(&models.SweepLog{}).
		Order("ran_at desc").
		Limit(limit).
		Find(&entries).
		Error; err != nil {
		log.Printf("Error retrieving sweep logs: %s\n", err.Error())
		return nil, apperr.Storage(err)
	}
	return entries, nil
}
