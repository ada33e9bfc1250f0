package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jeltsjelts/gerenciador-tarefas/internal/database"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/models"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/services"
	"gorm.io/gorm"
)

// LevelCritical marks unrecoverable failures, one step above slog's
// built-in error level.
const LevelCritical = slog.Level(12)

// App drives the interactive menu loop
type App struct {
	svc      *services.TaskService
	db       *gorm.DB
	prompter *Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewApp creates the console application
func NewApp(svc *services.TaskService, db *gorm.DB, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	return &App{
		svc:      svc,
		db:       db,
		prompter: NewPrompter(in, out),
		out:      out,
		logger:   logger,
	}
}

// Run executes the menu loop until the operator exits or input fails.
// Recoverable problems (bad menu choice, validation nudges, storage
// errors) are logged and the loop continues; a dead input stream is the
// only thing that terminates it besides option 5.
func (a *App) Run() error {
	for {
		a.printMenu()

		line, err := a.prompter.Line("Escolha uma opção: ")
		if err != nil {
			a.logger.Log(context.Background(), LevelCritical, "ocorreu um erro inesperado", "error", err)
			a.Shutdown()
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			a.logger.Error("entrada inválida, digite um número inteiro")
			continue
		}

		var opErr error
		switch choice {
		case 1:
			opErr = a.createTask()
		case 2:
			a.listTasks()
		case 3:
			opErr = a.updateTask()
		case 4:
			opErr = a.deleteTask()
		case 5:
			a.Shutdown()
			return nil
		default:
			a.logger.Warn("opção não encontrada, tente novamente")
		}

		if opErr != nil {
			a.logger.Log(context.Background(), LevelCritical, "ocorreu um erro inesperado", "error", opErr)
			a.Shutdown()
			return opErr
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "--- Gestão de Tarefas ---")
	fmt.Fprintln(a.out, "1 - Cadastrar Tarefa")
	fmt.Fprintln(a.out, "2 - Exibir Tarefas")
	fmt.Fprintln(a.out, "3 - Atualizar Tarefa")
	fmt.Fprintln(a.out, "4 - Excluir Tarefa")
	fmt.Fprintln(a.out, "5 - Sair do Sistema")
}

// storageReady is the liveness guard every operation runs first.
func (a *App) storageReady() bool {
	if err := database.Ping(a.db); err != nil {
		a.logger.Error("não há conexão ativa com o banco de dados", "error", err)
		return false
	}
	return true
}

func (a *App) createTask() error {
	if !a.storageReady() {
		return nil
	}

	var title string
	for {
		var err error
		title, err = a.prompter.Line("Título da tarefa: ")
		if err != nil {
			return err
		}
		if utf8.RuneCountInString(title) >= services.TitleMinLength {
			break
		}
		a.logger.Warn("o título da tarefa deve ter pelo menos 12 caracteres")
	}

	description, err := a.prompter.Line("Descrição da tarefa: ")
	if err != nil {
		return err
	}
	owner, err := a.prompter.Line("Responsável: ")
	if err != nil {
		return err
	}

	task, err := a.svc.CreateTask(services.CreateTaskInput{
		Title:       title,
		Description: description,
		Owner:       owner,
	})
	if err != nil {
		a.logger.Error("erro ao cadastrar a tarefa", "error", err)
		return nil
	}

	a.logger.Info("tarefa cadastrada com sucesso", "id", task.ID)
	return nil
}

func (a *App) listTasks() {
	if !a.storageReady() {
		return
	}

	tasks, err := a.svc.ListTasks()
	if err != nil {
		a.logger.Error("erro ao buscar as tarefas", "error", err)
		return
	}

	if len(tasks) == 0 {
		a.logger.Info("nenhuma tarefa cadastrada")
		return
	}

	for _, t := range tasks {
		a.logger.Info("tarefa",
			"id", t.ID,
			"titulo", t.Title,
			"descricao", t.Description,
			"responsavel", t.Owner,
			"status", t.Status,
			"data_criacao", t.CreatedAt,
			"data_conclusao", formatCompletedAt(t.CompletedAt),
		)
	}
}

func (a *App) updateTask() error {
	if !a.storageReady() {
		return nil
	}

	a.listTasks()

	ids, err := a.svc.ListTaskIDs()
	if err != nil {
		a.logger.Error("erro ao buscar as tarefas", "error", err)
		return nil
	}
	if len(ids) == 0 {
		a.logger.Info("nenhuma tarefa cadastrada para atualizar")
		return nil
	}

	rawID, err := a.prompter.Line("Digite o ID da tarefa que deseja atualizar: ")
	if err != nil {
		return err
	}

	taskID, found := matchID(ids, rawID)
	if !found {
		a.logger.Warn("tarefa não encontrada", "id", rawID)
		return nil
	}

	task, err := a.svc.GetTask(taskID)
	if err != nil {
		a.logger.Error("erro ao buscar dados da tarefa para atualização", "error", err)
		return nil
	}

	fmt.Fprintf(a.out, "\n--- Atualizando Tarefa ID: %d ---\n", task.ID)
	fmt.Fprintln(a.out, "Deixe em branco para manter o valor atual.")

	input := services.UpdateTaskInput{}

	title, err := a.prompter.Line(fmt.Sprintf("Novo Título (atual: %s): ", task.Title))
	if err != nil {
		return err
	}
	if title != "" {
		input.Title = &title
	}

	description, err := a.prompter.Line(fmt.Sprintf("Nova Descrição (atual: %s): ", task.Description))
	if err != nil {
		return err
	}
	if description != "" {
		input.Description = &description
	}

	owner, err := a.prompter.Line(fmt.Sprintf("Novo Responsável (atual: %s): ", task.Owner))
	if err != nil {
		return err
	}
	if owner != "" {
		input.Owner = &owner
	}

	rawStatus, err := a.prompter.Line(fmt.Sprintf("Novo Status (atual: %s) (Pendente, Em Andamento, Concluída): ", task.Status))
	if err != nil {
		return err
	}
	if rawStatus != "" {
		status := models.TaskStatus(rawStatus)
		input.Status = &status
	}

	if _, err := a.svc.UpdateTask(taskID, input); err != nil {
		a.logger.Error("erro ao atualizar a tarefa", "error", err)
		return nil
	}

	a.logger.Info("tarefa atualizada com sucesso", "id", taskID)
	return nil
}

func (a *App) deleteTask() error {
	if !a.storageReady() {
		return nil
	}

	a.listTasks()

	ids, err := a.svc.ListTaskIDs()
	if err != nil {
		a.logger.Error("erro ao buscar as tarefas", "error", err)
		return nil
	}
	if len(ids) == 0 {
		a.logger.Info("nenhuma tarefa cadastrada para excluir")
		return nil
	}

	rawID, err := a.prompter.Line("Digite a ID para excluir uma tarefa: ")
	if err != nil {
		return err
	}

	taskID, found := matchID(ids, rawID)
	if !found {
		a.logger.Warn("tarefa não encontrada", "id", rawID)
		return nil
	}

	if err := a.svc.DeleteTask(taskID); err != nil {
		a.logger.Error("erro ao excluir a tarefa", "error", err)
		return nil
	}

	a.logger.Info("tarefa excluída com sucesso", "id", taskID)
	return nil
}

// Shutdown closes the storage connection. Calling it again after a
// previous close is harmless.
func (a *App) Shutdown() {
	if err := database.Close(a.db); err != nil {
		a.logger.Error("erro ao fechar a conexão com o banco de dados", "error", err)
	} else {
		a.logger.Info("conexão com o banco de dados fechada")
	}
	a.logger.Info("sistema encerrado")
}

// matchID compares the operator-typed ID against the stored IDs by
// string equality, the same way the lookup has always behaved.
func matchID(ids []uint64, raw string) (uint64, bool) {
	raw = strings.TrimSpace(raw)
	for _, id := range ids {
		if strconv.FormatUint(id, 10) == raw {
			return id, true
		}
	}
	return 0, false
}

func formatCompletedAt(t *time.Time) string {
	if t == nil {
		return "Não concluída"
	}
	return t.String()
}
