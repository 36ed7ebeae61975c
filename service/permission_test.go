package service

import (
	"testing"

	"Pulse/models"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyPost(t *testing.T) {
	post := &models.Post{Id: 1, UserID: 100}

	assert.True(t, CanModifyPost(100, post))
	assert.False(t, CanModifyPost(101, post))
	assert.False(t, CanModifyPost(0, post))
	assert.False(t, CanModifyPost(100, nil))
}

func TestCanModifyUser(t *testing.T) {
	assert.True(t, CanModifyUser(100, 100))
	assert.False(t, CanModifyUser(100, 101))
}
