package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask("Implementar módulo X", "desc", "Ana")

	assert.Zero(t, task.ID)
	assert.Equal(t, "Implementar módulo X", task.Title)
	assert.Equal(t, "desc", task.Description)
	assert.Equal(t, "Ana", task.Owner)
	assert.Equal(t, StatusPending, task.Status)
	assert.WithinDuration(t, time.Now(), task.CreatedAt, 5*time.Second)
	assert.Nil(t, task.CompletedAt)
}

func TestTaskStatusIsDone(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   bool
	}{
		{StatusDone, true},
		{"concluída", true},
		{"CONCLUÍDA", true},
		{StatusPending, false},
		{StatusInProgress, false},
		{"Cancelada", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.IsDone(), "status %q", tt.status)
	}
}
