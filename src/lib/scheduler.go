package lib

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
)

var scheduler gocron.Scheduler
var schedClock = clockwork.NewRealClock()

// NewClock swaps the scheduler clock. Call before GetScheduler; tests use a
// fake clock to advance time instead of waiting on real timers.
func NewClock(c clockwork.Clock) {
	schedClock = c
}

func Clock() clockwork.Clock {
	return schedClock
}

func NewScheduler(s gocron.Scheduler) {
	scheduler = s
}

func GetScheduler() (gocron.Scheduler, error) {
	if scheduler != nil {
		return scheduler, nil
	}
	sched, err := gocron.NewScheduler(gocron.WithClock(schedClock))
	if err != nil {
		log.Printf("Error initializing Scheduler: %s\n", err.Error())
		return nil, err
	}
	scheduler = sched
	numJobs := len(sched.Jobs())
	log.Printf("Jobs in queue: %d\n", numJobs)
	return sched, nil
}

// CreateSweepJob registers a recurring job in singleton mode so that a run
// that outlasts the interval is never overlapped by the next one.
func CreateSweepJob(name string, interval time.Duration, handler any, args ...any) (*string, error) {
	sched, err := GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return nil, err
	}
	j, err := sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(handler, args...),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	id := j.ID().String()
	log.Printf("Job: %s %s\n", id, j.Name())
	return &id, nil
}
