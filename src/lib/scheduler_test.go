package lib

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestCreateSweepJob(t *testing.T) {
	fakeClock := clockwork.NewFakeClock()
	NewClock(fakeClock)
	defer NewScheduler(nil)

	id, err := CreateSweepJob("test-sweep", time.Hour, func() {})
	assert.Nil(t, err)
	assert.NotNil(t, id)

	sched, err := GetScheduler()
	assert.Nil(t, err)
	assert.Len(t, sched.Jobs(), 1)
	assert.Equal(t, "test-sweep", sched.Jobs()[0].Name())

	assert.Nil(t, sched.Shutdown())
}
