package repository

import (
	"github.com/jeltsjelts/gerenciador-tarefas/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListAll returns every stored task in ID order
func (r *GormTaskRepository) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// ListIDs returns the IDs of every stored task in ID order
func (r *GormTaskRepository) ListIDs() ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&models.Task{}).Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// Update rewrites the mutable columns keyed by the task's ID. The
// creation timestamp is deliberately not in the column list: it is set
// once at insert time and never touched again.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", task.ID).
		Select("title", "description", "owner", "status", "completed_at").
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"owner":        task.Owner,
			"status":       task.Status,
			"completed_at": task.CompletedAt,
		}).Error
}

// Delete removes a task by ID
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
