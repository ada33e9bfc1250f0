package services

import (
	"testing"
	"time"

	"github.com/jeltsjelts/gerenciador-tarefas/internal/models"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/repository"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *TaskService
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Task{})
	suite.Require().NoError(err)

	suite.svc = NewTaskService(repository.NewTaskRepository(suite.db))
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) createTestTask(status models.TaskStatus, completedAt *time.Time) *models.Task {
	task := models.NewTask("Implementar módulo X", "desc", "Ana")
	task.Status = status
	task.CompletedAt = completedAt
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *TaskServiceTestSuite) countTasks() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	return count
}

func (suite *TaskServiceTestSuite) TestCreateTaskDefaults() {
	task, err := suite.svc.CreateTask(CreateTaskInput{
		Title:       "Implementar módulo X",
		Description: "desc",
		Owner:       "Ana",
	})

	suite.NoError(err)
	suite.NotZero(task.ID)
	suite.Equal(models.StatusPending, task.Status)
	suite.Nil(task.CompletedAt)
	suite.WithinDuration(time.Now(), task.CreatedAt, 5*time.Second)

	var stored models.Task
	suite.NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal("Implementar módulo X", stored.Title)
	suite.Equal(models.StatusPending, stored.Status)
	suite.Nil(stored.CompletedAt)
}

func (suite *TaskServiceTestSuite) TestCreateTaskRejectsShortTitle() {
	_, err := suite.svc.CreateTask(CreateTaskInput{Title: "Curta demais"})
	suite.NoError(err) // exactly 12 characters

	_, err = suite.svc.CreateTask(CreateTaskInput{Title: "Curta"})
	suite.ErrorIs(err, ErrTitleTooShort)
	suite.EqualValues(1, suite.countTasks())
}

func (suite *TaskServiceTestSuite) TestCreateTaskCountsCharactersNotBytes() {
	// 12 characters, more than 12 bytes.
	_, err := suite.svc.CreateTask(CreateTaskInput{Title: "çãoçãoçãoção"})
	suite.NoError(err)
}

func (suite *TaskServiceTestSuite) TestUpdateTaskCompletionRule() {
	earlier := time.Now().Add(-time.Hour)

	tests := []struct {
		name        string
		oldStatus   models.TaskStatus
		completedAt *time.Time
		newStatus   models.TaskStatus
		wantSet     bool
		wantCleared bool
	}{
		{"pending to done sets timestamp", models.StatusPending, nil, models.StatusDone, true, false},
		{"in progress to lowercase done sets timestamp", models.StatusInProgress, nil, "concluída", true, false},
		{"done to pending clears timestamp", models.StatusDone, &earlier, models.StatusPending, false, true},
		{"uppercase done to custom status clears timestamp", "CONCLUÍDA", &earlier, "Cancelada", false, true},
		{"done to done keeps timestamp", models.StatusDone, &earlier, "concluída", false, false},
		{"pending to in progress stays empty", models.StatusPending, nil, models.StatusInProgress, false, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			task := suite.createTestTask(tt.oldStatus, tt.completedAt)

			updated, err := suite.svc.UpdateTask(task.ID, UpdateTaskInput{Status: &tt.newStatus})
			suite.NoError(err)

			var stored models.Task
			suite.NoError(suite.db.First(&stored, task.ID).Error)
			suite.Equal(tt.newStatus, stored.Status)

			switch {
			case tt.wantSet:
				suite.Require().NotNil(stored.CompletedAt)
				suite.WithinDuration(time.Now(), *stored.CompletedAt, 5*time.Second)
			case tt.wantCleared:
				suite.Nil(stored.CompletedAt)
			case tt.completedAt == nil:
				suite.Nil(stored.CompletedAt)
			default:
				suite.Require().NotNil(stored.CompletedAt)
				suite.WithinDuration(*tt.completedAt, *stored.CompletedAt, time.Second)
			}
			suite.Equal(stored.Status, updated.Status)
		})
	}
}

func (suite *TaskServiceTestSuite) TestUpdateTaskKeepsUnsetFields() {
	task := suite.createTestTask(models.StatusPending, nil)

	newOwner := "Bruno"
	_, err := suite.svc.UpdateTask(task.ID, UpdateTaskInput{Owner: &newOwner})
	suite.NoError(err)

	var stored models.Task
	suite.NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal(task.Title, stored.Title)
	suite.Equal(task.Description, stored.Description)
	suite.Equal("Bruno", stored.Owner)
	suite.Equal(models.StatusPending, stored.Status)
	suite.WithinDuration(task.CreatedAt, stored.CreatedAt, time.Second)
}

func (suite *TaskServiceTestSuite) TestUpdateTaskNotFound() {
	title := "Outro título qualquer"
	_, err := suite.svc.UpdateTask(42, UpdateTaskInput{Title: &title})
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestGetTaskNotFound() {
	_, err := suite.svc.GetTask(42)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDeleteTask() {
	task := suite.createTestTask(models.StatusPending, nil)

	suite.NoError(suite.svc.DeleteTask(task.ID))
	suite.EqualValues(0, suite.countTasks())
}

func (suite *TaskServiceTestSuite) TestDeleteTaskNotFound() {
	suite.createTestTask(models.StatusPending, nil)

	err := suite.svc.DeleteTask(42)
	suite.ErrorIs(err, ErrTaskNotFound)
	suite.EqualValues(1, suite.countTasks())
}

func (suite *TaskServiceTestSuite) TestListTasks() {
	suite.createTestTask(models.StatusPending, nil)
	suite.createTestTask(models.StatusInProgress, nil)

	tasks, err := suite.svc.ListTasks()
	suite.NoError(err)
	suite.Len(tasks, 2)
	suite.Less(tasks[0].ID, tasks[1].ID)

	ids, err := suite.svc.ListTaskIDs()
	suite.NoError(err)
	suite.Equal([]uint64{tasks[0].ID, tasks[1].ID}, ids)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
