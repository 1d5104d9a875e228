package usecase

import (
	"context"
	"fmt"
	"log"

	"caixa/src/checkout/application/response"
	"caixa/src/checkout/domain/entity"
	"caixa/src/checkout/domain/port"
	"caixa/src/checkout/infrastructure/cache"

	"github.com/google/uuid"
)

// FinalizeSaleUseCase caso de uso para cerrar la venta en curso.
// Flujo:
//  1. Validar carrito no vacío y forma de pago conocida
//  2. Transicionar ABERTA → FINALIZADA en el aggregate
//  3. Persistir venta + descuento de stock en UNA transacción
//     (recheck autoritativo por producto; si algo falla se revierte todo)
//  4. Reemplazar el carrito por uno vacío para el próximo cliente
type FinalizeSaleUseCase struct {
	carts    *cache.CartStore
	saleRepo port.SaleRepository
}

// NewFinalizeSaleUseCase crea una nueva instancia del caso de uso
func NewFinalizeSaleUseCase(carts *cache.CartStore, saleRepo port.SaleRepository) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{
		carts:    carts,
		saleRepo: saleRepo,
	}
}

// Execute finaliza la venta del carrito con la forma de pago indicada
func (uc *FinalizeSaleUseCase) Execute(ctx context.Context, cartID uuid.UUID, paymentMethod string) (*response.FinalizeSaleResponse, error) {
	sale, ok := uc.carts.Get(cartID)
	if !ok {
		return nil, entity.ErrSaleNotFound
	}

	method := entity.PaymentMethod(paymentMethod)
	if err := sale.Finalize(method); err != nil {
		return nil, err
	}

	log.Printf("💾 Finalizando venta: cart_id=%s items=%d total=%s pago=%s",
		cartID, sale.TotalItems(), sale.Total, method)

	persisted, err := uc.saleRepo.Finalize(ctx, sale)
	if err != nil {
		// La transacción ya revirtió stock y venta; el carrito vuelve a
		// ABERTA para que el operador corrija y reintente
		sale.Status = entity.SaleStatusOpen
		sale.PaymentMethod = ""
		log.Printf("❌ Venta no finalizada: cart_id=%s err=%v", cartID, err)
		return nil, fmt.Errorf("error finalizing sale: %w", err)
	}

	// Carrito nuevo para el próximo cliente
	nextCartID, _ := uc.carts.Replace(cartID)

	log.Printf("✅ Venta finalizada: sale_id=%s total=%s next_cart_id=%s",
		persisted.ID, persisted.Total, nextCartID)

	return &response.FinalizeSaleResponse{
		Sale:       response.NewSaleResponse(persisted),
		NextCartID: nextCartID,
	}, nil
}
