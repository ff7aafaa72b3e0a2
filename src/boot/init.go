package boot

import (
	"log"
	"sams/src/config"
	"sams/src/db"
	"sams/src/lib"
	"sams/src/models"
	"sams/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Tower{},
		&models.Apartment{},
		&models.Amenity{},
		&models.Booking{},
		&models.Notice{},
		&models.SweepLog{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler registers the two reconciliation sweeps and starts the
// scheduler. The sweeps are independent: one failing never blocks the other,
// and a failed run is simply retried on the next interval.
func InitScheduler() {
	interval := config.SweepInterval()
	if _, err := lib.CreateSweepJob("stale-bookings", interval, RunStaleBookingSweep); err != nil {
		log.Printf("Error scheduling stale-bookings sweep: %s\n", err.Error())
	}
	if _, err := lib.CreateSweepJob("expired-notices", interval, RunExpiredNoticeSweep); err != nil {
		log.Printf("Error scheduling expired-notices sweep: %s\n", err.Error())
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}

func RunStaleBookingSweep() {
	now := lib.Clock().Now()
	rows, err := utils.SweepStaleBookings(now)
	if err != nil {
		log.Printf("Error on stale-bookings sweep: %s\n", err.Error())
	} else {
		log.Printf("Auto-rejected %d stale booking requests\n", rows)
	}
	utils.RecordSweep("stale-bookings", rows, now, err)
}

func RunExpiredNoticeSweep() {
	now := lib.Clock().Now()
	rows, err := utils.SweepExpiredNotices(now)
	if err != nil {
		log.Printf("Error on expired-notices sweep: %s\n", err.Error())
	} else {
		log.Printf("Purged %d expired notices\n", rows)
	}
	utils.RecordSweep("expired-notices", rows, now, err)
}
