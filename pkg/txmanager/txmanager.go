package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schwarztim/CSC425/pkg/dbmetrics"
)

// TransactionManager выполняет функции в рамках транзакции БД
// Транзакция передается вниз по стеку через контекст (dbmetrics.WithTx),
// репозитории получают её через dbmetrics.GetExecutor
type TransactionManager struct {
	beginner dbmetrics.TxBeginner
}

// NewTransactionManager создает менеджер транзакций поверх dbmetrics.TxBeginner
func NewTransactionManager(beginner dbmetrics.TxBeginner) *TransactionManager {
	return &TransactionManager{beginner: beginner}
}

// NewFromSQLDB создает менеджер транзакций поверх чистого *sql.DB (без метрик)
func NewFromSQLDB(db *sql.DB) *TransactionManager {
	return &TransactionManager{beginner: sqlBeginner{db: db}}
}

// sqlBeginner адаптер *sql.DB к интерфейсу dbmetrics.TxBeginner
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// DoSerializable выполняет fn в сериализуемой транзакции
// При ошибке fn транзакция откатывается, при успехе — коммитится
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.beginner.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}
