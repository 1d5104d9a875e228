package port

import (
	"context"

	"caixa/src/checkout/domain/entity"

	"github.com/google/uuid"
)

// SaleRepository define el contrato de persistencia de ventas finalizadas
type SaleRepository interface {
	// Finalize persiste la venta con sus líneas y descuenta el stock de cada
	// producto referenciado, todo dentro de UNA transacción: si alguna línea
	// no tiene stock suficiente o falla un write, se revierte todo.
	// El recheck de stock contra la fila actual del producto (no contra el
	// snapshot tomado al agregar la línea) es la validación autoritativa.
	// Asigna el ID de la venta y el sale_id de las líneas.
	Finalize(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)

	// FindByID busca una venta con sus líneas cargadas.
	// Retorna entity.ErrSaleNotFound si no existe.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// List retorna las ventas más recientes primero, sin líneas (carga lazy
	// vía FindByID). status en nil lista todas.
	List(ctx context.Context, status *entity.SaleStatus) ([]*entity.Sale, error)

	// Delete elimina una venta y sus líneas en la misma transacción.
	// Retorna false si la venta no existe.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
