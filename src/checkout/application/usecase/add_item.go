package usecase

import (
	"context"
	"fmt"
	"log"

	catalogEntity "caixa/src/catalog/domain/entity"
	catalogPort "caixa/src/catalog/domain/port"
	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/entity"
	"caixa/src/checkout/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemUseCase caso de uso para agregar una línea al carrito.
// Chequeo de stock en dos fases: acá se valida optimista contra el stock
// conocido del catálogo; el chequeo autoritativo ocurre al finalizar, dentro
// de la transacción (otro proceso pudo descontar stock en el medio).
type AddItemUseCase struct {
	carts       *cache.CartStore
	productRepo catalogPort.ProductRepository
}

// NewAddItemUseCase crea una nueva instancia del caso de uso
func NewAddItemUseCase(carts *cache.CartStore, productRepo catalogPort.ProductRepository) *AddItemUseCase {
	return &AddItemUseCase{
		carts:       carts,
		productRepo: productRepo,
	}
}

// Execute agrega una línea al carrito congelando el precio actual del producto
func (uc *AddItemUseCase) Execute(ctx context.Context, cartID, productID uuid.UUID, quantity decimal.Decimal) (*response.CartResponse, error) {
	sale, ok := uc.carts.Get(cartID)
	if !ok {
		return nil, entity.ErrSaleNotFound
	}

	// Releer el producto del catálogo: el precio y el stock conocidos
	// son los del momento de agregar, no los de una consulta vieja
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	// Chequeo optimista contra el stock conocido
	if !product.HasStockFor(quantity) {
		return nil, fmt.Errorf("product %q (stock %s, requested %s): %w",
			product.Name, product.Stock, quantity, catalogEntity.ErrInsufficientStock)
	}

	item, err := sale.AddItem(product, quantity)
	if err != nil {
		return nil, err
	}

	log.Printf("🛒 Línea agregada: cart_id=%s producto=%q qty=%s subtotal=%s total=%s",
		cartID, product.Name, quantity, item.Subtotal, sale.CurrentTotal())

	return response.NewCartResponse(cartID, sale), nil
}
