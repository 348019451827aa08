package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceDuration(t *testing.T) {
	assert.Equal(t, 10, ServiceDuration(ServiceShave))
	assert.Equal(t, 15, ServiceDuration(ServiceHaircut))
	assert.Equal(t, 20, ServiceDuration(ServiceFade))
	assert.Equal(t, 30, ServiceDuration(ServiceCutAndShave))

	// Неизвестный код услуги получает длительность по умолчанию
	assert.Equal(t, DefaultServiceDurationMinutes, ServiceDuration(ServiceType(99)))
	assert.Equal(t, DefaultServiceDurationMinutes, ServiceDuration(ServiceType(-1)))
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "Brijanje", ServiceName(ServiceShave))
	assert.Equal(t, "Fade + Brijanje", ServiceName(ServiceFadeShave))
	assert.Equal(t, UnknownServiceName, ServiceName(ServiceType(99)))
}

func TestKnownService(t *testing.T) {
	for s := ServiceShave; s <= ServiceFadeShave; s++ {
		assert.True(t, KnownService(s), "service %d", s)
	}
	assert.False(t, KnownService(ServiceType(7)))
	assert.False(t, KnownService(ServiceType(-1)))
}
