package models

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pendente"
	StatusInProgress TaskStatus = "Em Andamento"
	StatusDone       TaskStatus = "Concluída"
)

// IsDone reports whether the status counts as concluded. The comparison
// is case-insensitive so operator-typed variants like "concluída" or
// "CONCLUÍDA" trigger the same completion-timestamp handling.
func (s TaskStatus) IsDone() bool {
	return strings.EqualFold(string(s), string(StatusDone))
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Owner       string     `gorm:"type:varchar(50)" json:"owner"`
	Status      TaskStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TableName keeps the table name the original system used.
func (Task) TableName() string {
	return "tarefas"
}

// NewTask builds an unpersisted task in its initial lifecycle state:
// status Pendente, creation timestamp now, no completion timestamp.
func NewTask(title, description, owner string) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Owner:       owner,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}
}
