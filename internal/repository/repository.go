package repository

import (
	"github.com/jeltsjelts/gerenciador-tarefas/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListAll returns every stored task in ID order
	ListAll() ([]models.Task, error)

	// ListIDs returns the IDs of every stored task in ID order
	ListIDs() ([]uint64, error)

	// Update rewrites the mutable columns of a task keyed by its ID
	Update(task *models.Task) error

	// Delete removes a task by ID
	Delete(id uint64) error
}
