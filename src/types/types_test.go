package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityWeight(t *testing.T) {
	assert.Greater(t, PriorityWeight(NOTICE_PRIORITY_HIGH), PriorityWeight(NOTICE_PRIORITY_NORMAL))
	assert.Greater(t, PriorityWeight(NOTICE_PRIORITY_NORMAL), PriorityWeight(NOTICE_PRIORITY_LOW))
	assert.Greater(t, PriorityWeight(NOTICE_PRIORITY_LOW), PriorityWeight(NoticePriority("URGENT")))
}
