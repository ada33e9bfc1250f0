package services

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jeltsjelts/gerenciador-tarefas/internal/models"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/repository"
	"gorm.io/gorm"
)

// TitleMinLength is the minimum title length in characters, not bytes.
const TitleMinLength = 12

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleTooShort = fmt.Errorf("title must be at least %d characters", TitleMinLength)
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Owner       string
}

// UpdateTaskInput represents input for updating a task. Nil fields keep
// the stored value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Owner       *string
	Status      *models.TaskStatus
}

// CreateTask validates the title and inserts a new pending task
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if utf8.RuneCountInString(input.Title) < TitleMinLength {
		return nil, ErrTitleTooShort
	}

	task := models.NewTask(input.Title, input.Description, input.Owner)

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns every stored task
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// ListTaskIDs returns the IDs of every stored task
func (s *TaskService) ListTaskIDs() ([]uint64, error) {
	ids, err := s.taskRepo.ListIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list task IDs: %w", err)
	}

	return ids, nil
}

// GetTask returns a single task by ID
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// UpdateTask applies the given changes to an existing task. The
// completion timestamp follows the status: entering Concluída stamps
// it with the current time, leaving Concluída clears it, and any other
// transition leaves it untouched.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	oldStatus := task.Status

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Owner != nil {
		task.Owner = *input.Owner
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	task.CompletedAt = nextCompletedAt(oldStatus, task.Status, task.CompletedAt)

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task by ID. Existence is verified first so a
// missing ID never reaches the storage delete.
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// nextCompletedAt implements the completion-timestamp transition rule.
func nextCompletedAt(oldStatus, newStatus models.TaskStatus, current *time.Time) *time.Time {
	switch {
	case newStatus.IsDone() && !oldStatus.IsDone():
		now := time.Now()
		return &now
	case !newStatus.IsDone() && oldStatus.IsDone():
		return nil
	default:
		return current
	}
}
