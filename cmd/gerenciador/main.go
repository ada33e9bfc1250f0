package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jeltsjelts/gerenciador-tarefas/internal/config"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/console"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/database"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/repository"
	"github.com/jeltsjelts/gerenciador-tarefas/internal/services"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log(context.Background(), console.LevelCritical,
			"encerrando o programa devido a falha na conexão com o banco de dados", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		logger.Log(context.Background(), console.LevelCritical,
			"falha ao preparar a tabela de tarefas", "error", err)
		database.Close(db)
		os.Exit(1)
	}

	taskRepo := repository.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepo)

	app := console.NewApp(taskService, db, os.Stdin, os.Stdout, logger)
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
