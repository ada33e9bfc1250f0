package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// mysqlErrTableExists is server error 1050 (ER_TABLE_EXISTS_ERROR).
const mysqlErrTableExists = 1050

const createTarefasTable = `
CREATE TABLE IF NOT EXISTS tarefas (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(100) NOT NULL,
	description TEXT,
	owner VARCHAR(50),
	status VARCHAR(20),
	created_at DATETIME,
	completed_at DATETIME NULL
)`

// Migrate ensures the tarefas table exists. A server that still reports
// error 1050 despite IF NOT EXISTS is treated as success, since the
// table being there is exactly the state we want.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(createTarefasTable).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrTableExists {
			return nil
		}
		return fmt.Errorf("failed to create tarefas table: %w", err)
	}

	return nil
}
