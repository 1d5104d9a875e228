package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	catalog "caixa/src/catalog/domain/entity"
	"caixa/src/checkout/domain/entity"
	"caixa/src/checkout/domain/port"

	"github.com/google/uuid"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Finalize persiste la venta y descuenta el stock de cada producto dentro de
// UNA transacción. Las líneas se procesan en el orden en que fueron agregadas.
// Para cada línea se relee la fila actual del producto con FOR UPDATE (recheck
// autoritativo, no el snapshot de cuando se agregó la línea) y se aplica el
// descuento vía la invariante de dominio: si alguna línea no tiene stock
// suficiente, o falla cualquier write, se revierte TODO y la venta no queda
// registrada. Política estricta all-or-nothing.
func (r *SalePostgresRepository) Finalize(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if sale.Status != entity.SaleStatusFinalized {
		return nil, entity.ErrSaleNotOpen
	}
	if len(sale.Items) == 0 {
		return nil, entity.ErrEmptySale
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Descontar stock por línea, en orden de agregado
	for _, item := range sale.Items {
		product := &catalog.Product{}
		err := tx.QueryRowContext(ctx, `
			SELECT id, name, price, unit_kind, stock
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, item.ProductID).Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.UnitKind,
			&product.Stock,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("product %s: %w", item.ProductID, catalog.ErrProductNotFound)
			}
			return nil, fmt.Errorf("error locking product %s: %w", item.ProductID, err)
		}

		// La invariante stock >= 0 vive en la entidad, no en el SQL
		newStock, err := product.AdjustStock(item.Quantity.Neg())
		if err != nil {
			return nil, fmt.Errorf("product %q (stock %s, requested %s): %w",
				product.Name, product.Stock, item.Quantity, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE products SET stock = $1 WHERE id = $2`,
			newStock, product.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("error updating stock for product %q: %w", product.Name, err)
		}
	}

	// 2. Insertar la venta (aggregate root). La hora de la venta es la del
	// persist, no la de apertura del carrito
	sale.ID = uuid.New()
	sale.CreatedAt = time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO sales (id, timestamp, total, status, payment_method)
		VALUES ($1, $2, $3, $4, $5)
	`,
		sale.ID,
		sale.CreatedAt,
		sale.Total,
		sale.Status,
		sale.PaymentMethod,
	)
	if err != nil {
		sale.ID = uuid.Nil
		return nil, fmt.Errorf("error creating sale: %w", err)
	}

	// 3. Insertar las líneas
	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID
		item := &sale.Items[i]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sale_line_items (id, sale_id, product_id, quantity, unit_price_at_sale, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			item.ID,
			item.SaleID,
			item.ProductID,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		)
		if err != nil {
			sale.ID = uuid.Nil
			return nil, fmt.Errorf("error creating sale_line_item for product %q: %w", item.ProductName, err)
		}
	}

	if err = tx.Commit(); err != nil {
		sale.ID = uuid.Nil
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return sale, nil
}

// FindByID busca una venta con sus líneas cargadas. El nombre del producto
// sale del JOIN con el catálogo (la eliminación de productos referenciados
// está bloqueada, el JOIN siempre resuelve).
func (r *SalePostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, total, status, payment_method
		FROM sales
		WHERE id = $1
	`, id).Scan(
		&sale.ID,
		&sale.CreatedAt,
		&sale.Total,
		&sale.Status,
		&sale.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("error querying sale: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT li.id, li.sale_id, li.product_id, p.name,
		       li.quantity, li.unit_price_at_sale, li.subtotal
		FROM sale_line_items li
		JOIN products p ON p.id = li.product_id
		WHERE li.sale_id = $1
		ORDER BY li.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_line_items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale_line_item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale_line_items: %w", err)
	}

	sale.Items = items
	return sale, nil
}

// List retorna las ventas más recientes primero, sin líneas (se cargan lazy
// con FindByID). status en nil lista todas.
func (r *SalePostgresRepository) List(ctx context.Context, status *entity.SaleStatus) ([]*entity.Sale, error) {
	query := `
		SELECT id, timestamp, total, status, payment_method
		FROM sales
	`
	var params []interface{}
	if status != nil {
		query += ` WHERE status = $1`
		params = append(params, *status)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.CreatedAt,
			&sale.Total,
			&sale.Status,
			&sale.PaymentMethod,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

// Delete elimina una venta y sus líneas en la misma transacción
func (r *SalePostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Primero las líneas, después la venta
	if _, err = tx.ExecContext(ctx, `DELETE FROM sale_line_items WHERE sale_id = $1`, id); err != nil {
		return false, fmt.Errorf("error deleting sale_line_items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting sale: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error checking delete result: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("error committing transaction: %w", err)
	}

	return affected > 0, nil
}
