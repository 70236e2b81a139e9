package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalProfile_Approve(t *testing.T) {
	p := LocalProfile{Status: ProfilePendingBio}
	assert.NoError(t, p.Approve())
	assert.Equal(t, ProfilePublished, p.Status)

	ready := LocalProfile{Status: ProfileReady}
	assert.NoError(t, ready.Approve())
	assert.Equal(t, ProfilePublished, ready.Status)

	assert.Error(t, p.Approve())
}
