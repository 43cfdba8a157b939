package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo log append-only de asientos de stock sobre PostgreSQL.
// Usable con pool o tx (Querier). La tabla puede no existir en instalaciones
// viejas: las lecturas mapean 42P01 al sentinel ErrTransactionLogUnavailable
// y el motor degrada a totales solo de pedidos.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador.
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

const txColumns = `id, agent_id, item_code, transaction_type, quantity,
	reference_type, reference_id, stock_before, stock_after, notes, created_by, created_at`

// FetchByAgent devuelve los asientos del agente en orden de creación.
func (r *StockTransactionRepo) FetchByAgent(ctx context.Context, agentID, itemCode string) ([]entity.StockTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM stock_transactions WHERE agent_id = $1`
	args := []any{agentID}
	if itemCode != "" {
		query += " AND item_code = $2"
		args = append(args, itemCode)
	}
	query += " ORDER BY created_at, id"
	return r.fetch(ctx, query, args...)
}

// FetchByReference devuelve los asientos ligados a un documento origen.
func (r *StockTransactionRepo) FetchByReference(ctx context.Context, referenceType, referenceID string) ([]entity.StockTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM stock_transactions
		WHERE reference_type = $1 AND reference_id = $2
		ORDER BY created_at, id`
	return r.fetch(ctx, query, referenceType, referenceID)
}

func (r *StockTransactionRepo) fetch(ctx context.Context, query string, args ...any) ([]entity.StockTransaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrTransactionLogUnavailable
		}
		return nil, fmt.Errorf("fetch stock transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		var refType, refID, notes, createdBy *string
		if err := rows.Scan(&tx.ID, &tx.AgentID, &tx.ItemCode, &tx.TransactionType, &tx.Quantity,
			&refType, &refID, &tx.StockBefore, &tx.StockAfter, &notes, &createdBy, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		if refType != nil {
			tx.ReferenceType = *refType
		}
		if refID != nil {
			tx.ReferenceID = *refID
		}
		if notes != nil {
			tx.Notes = *notes
		}
		if createdBy != nil {
			tx.CreatedBy = *createdBy
		}
		list = append(list, tx)
	}
	return list, rows.Err()
}

// Append persiste un asiento nuevo. Nunca hay UPDATE ni DELETE sobre esta
// tabla: las correcciones entran como asientos compensatorios.
func (r *StockTransactionRepo) Append(ctx context.Context, tx *entity.StockTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.AgentID, tx.ItemCode, tx.TransactionType, tx.Quantity,
		nullable(tx.ReferenceType), nullable(tx.ReferenceID), tx.StockBefore, tx.StockAfter,
		nullable(tx.Notes), nullable(tx.CreatedBy), tx.CreatedAt,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return domain.ErrTransactionLogUnavailable
		}
		return fmt.Errorf("append stock transaction: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
