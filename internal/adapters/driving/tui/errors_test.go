package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingReservationService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingReservationService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingReservationService.Error(), "reservation service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
