package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceProvider_Approve(t *testing.T) {
	tests := []struct {
		name    string
		status  ProviderStatus
		wantErr bool
	}{
		{name: "ready is published", status: ProviderReady},
		{name: "pending cannot publish", status: ProviderPending, wantErr: true},
		{name: "published cannot publish again", status: ProviderPublished, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ServiceProvider{Status: tt.status}
			err := p.Approve()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.status, p.Status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, ProviderPublished, p.Status)
			}
		})
	}
}

func TestServiceProvider_Unpublish(t *testing.T) {
	p := ServiceProvider{Status: ProviderPublished}
	assert.NoError(t, p.Unpublish())
	assert.Equal(t, ProviderPending, p.Status)

	assert.Error(t, p.Unpublish())
	assert.Equal(t, ProviderPending, p.Status)
}

func TestServiceProvider_AvailableSlots(t *testing.T) {
	p := ServiceProvider{
		Availability: []TimeSlot{
			{Date: "2026-09-01", StartTime: "09:00", EndTime: "12:00", Available: true},
			{Date: "2026-09-01", StartTime: "14:00", EndTime: "17:00", Available: false},
			{Date: "2026-09-02", StartTime: "09:00", EndTime: "12:00", Available: true},
		},
	}

	slots := p.AvailableSlots()
	assert.Len(t, slots, 2)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestServiceProvider_AvailableSlotsEmpty(t *testing.T) {
	p := ServiceProvider{}
	assert.Empty(t, p.AvailableSlots())
	assert.NotNil(t, p.AvailableSlots())
}
