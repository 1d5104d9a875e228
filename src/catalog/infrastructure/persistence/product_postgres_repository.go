package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"caixa/src/catalog/domain/entity"
	"caixa/src/catalog/domain/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// Save inserta o actualiza un producto. El ID lo asigna el repositorio
// en el primer insert.
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if product.IsPersisted() {
		query := `
			UPDATE products SET name = $1, price = $2, unit_kind = $3, stock = $4
			WHERE id = $5
		`
		result, err := r.db.ExecContext(ctx, query,
			product.Name,
			product.Price,
			product.UnitKind,
			product.Stock,
			product.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, entity.ErrProductNameTaken
			}
			return nil, fmt.Errorf("error updating product: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("error checking update result: %w", err)
		}
		if affected == 0 {
			return nil, entity.ErrProductNotFound
		}
		return product, nil
	}

	product.ID = uuid.New()
	query := `
		INSERT INTO products (id, name, price, unit_kind, stock)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.UnitKind,
		product.Stock,
	)
	if err != nil {
		product.ID = uuid.Nil
		if isUniqueViolation(err) {
			return nil, entity.ErrProductNameTaken
		}
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return product, nil
}

// FindByID busca un producto por ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, price, unit_kind, stock
		FROM products
		WHERE id = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.UnitKind,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return product, nil
}

// FindByName busca el primer producto cuyo nombre contenga el texto,
// sin distinguir mayúsculas (semántica first-match, orden por nombre)
func (r *ProductPostgresRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, unit_kind, stock
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT 1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.UnitKind,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("error querying product by name: %w", err)
	}

	return product, nil
}

// List retorna todos los productos ordenados por nombre
func (r *ProductPostgresRepository) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, unit_kind, stock
		FROM products
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.UnitKind,
			&product.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Delete elimina un producto por ID. Si el producto está referenciado por
// líneas de venta históricas la eliminación se rechaza con ErrProductInUse
// (integridad referencial del historial de ventas).
func (r *ProductPostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var inUse bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sale_line_items WHERE product_id = $1)`,
		id,
	).Scan(&inUse)
	if err != nil {
		return false, fmt.Errorf("error checking sale references: %w", err)
	}
	if inUse {
		return false, entity.ErrProductInUse
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting product: %w", err)
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

// isUniqueViolation detecta violaciones de constraint UNIQUE de PostgreSQL
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
