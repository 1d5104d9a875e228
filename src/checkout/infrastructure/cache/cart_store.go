package cache

import (
	"sync"

	"caixa/src/checkout/domain/entity"

	"github.com/google/uuid"
)

// CartStore registro en memoria de las ventas abiertas (carritos).
// Cada carrito es una venta ABERTA identificada por un cart_id de sesión;
// reemplaza el estado global "venta actual" por un handle explícito.
type CartStore struct {
	carts map[uuid.UUID]*entity.Sale
	mu    sync.RWMutex
}

// NewCartStore crea un registro de carritos vacío
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[uuid.UUID]*entity.Sale),
	}
}

// Begin crea una venta vacía ABERTA y retorna su cart_id de sesión
func (s *CartStore) Begin() (uuid.UUID, *entity.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cartID := uuid.New()
	sale := entity.NewSale()
	s.carts[cartID] = sale
	return cartID, sale
}

// Get retorna el carrito asociado al cart_id
func (s *CartStore) Get(cartID uuid.UUID) (*entity.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sale, ok := s.carts[cartID]
	return sale, ok
}

// Replace descarta el carrito finalizado y abre uno nuevo bajo otro cart_id,
// listo para el próximo cliente
func (s *CartStore) Replace(cartID uuid.UUID) (uuid.UUID, *entity.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)
	newID := uuid.New()
	sale := entity.NewSale()
	s.carts[newID] = sale
	return newID, sale
}

// Remove elimina un carrito sin reemplazo (abandono de sesión)
func (s *CartStore) Remove(cartID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[cartID]; !ok {
		return false
	}
	delete(s.carts, cartID)
	return true
}

// Len retorna la cantidad de carritos abiertos
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
