package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"Road", "Water", "Sanitation", "Electricity", "Other"} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("road"))
	assert.False(t, ValidCategory("Potholes"))
	assert.False(t, ValidCategory(""))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"reported", "acknowledged", "in-progress", "resolved"} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus("closed"))
	assert.False(t, ValidStatus(""))
}

func TestCanTransition_Forward(t *testing.T) {
	assert.True(t, CanTransition(Reported, Acknowledged))
	assert.True(t, CanTransition(Reported, InProgress))
	assert.True(t, CanTransition(Reported, Resolved))
	assert.True(t, CanTransition(Acknowledged, InProgress))
	assert.True(t, CanTransition(Acknowledged, Resolved))
	assert.True(t, CanTransition(InProgress, Resolved))
}

func TestCanTransition_Backward(t *testing.T) {
	assert.False(t, CanTransition(Acknowledged, Reported))
	assert.False(t, CanTransition(InProgress, Acknowledged))
	assert.False(t, CanTransition(Resolved, Reported))
	assert.False(t, CanTransition(Resolved, Acknowledged))
}

func TestCanTransition_Reopen(t *testing.T) {
	// resolved issues may be sent back to the field
	assert.True(t, CanTransition(Resolved, InProgress))
}

func TestCanTransition_Same(t *testing.T) {
	assert.False(t, CanTransition(Reported, Reported))
	assert.False(t, CanTransition(Resolved, Resolved))
}
