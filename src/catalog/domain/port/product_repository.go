package port

import (
	"context"

	"caixa/src/catalog/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository define el contrato de persistencia del catálogo de productos
type ProductRepository interface {
	// Save inserta o actualiza un producto. En el primer insert asigna el ID.
	Save(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// FindByID busca un producto por ID. Retorna entity.ErrProductNotFound si no existe.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByName busca el primer producto cuyo nombre contenga el texto
	// (case-insensitive). Retorna entity.ErrProductNotFound si no hay match.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// List retorna todos los productos ordenados por nombre.
	List(ctx context.Context) ([]*entity.Product, error)

	// Delete elimina un producto por ID. Retorna false si no existe (condición
	// reportada, no fatal) y entity.ErrProductInUse si está referenciado por
	// líneas de venta históricas.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
