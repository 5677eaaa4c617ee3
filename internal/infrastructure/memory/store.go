// Package memory implementa los puertos de persistencia en memoria.
// Las transacciones se serializan con un mutex y se revierten restaurando una copia del estado.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/hotel-pos/internal/application/order"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
)

var _ order.TxRunner = (*Store)(nil)

type state struct {
	users map[string]entity.User
	items map[string]entity.InventoryItem
	sales []entity.Sale
}

func newState() *state {
	return &state{
		users: make(map[string]entity.User),
		items: make(map[string]entity.InventoryItem),
	}
}

func (s *state) clone() *state {
	c := &state{
		users: make(map[string]entity.User, len(s.users)),
		items: make(map[string]entity.InventoryItem, len(s.items)),
		sales: make([]entity.Sale, len(s.sales)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	copy(c.sales, s.sales)
	return c
}

// Store almacén en memoria compartido por todos los repositorios.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// scope da acceso al estado; fuera de una tx toma el mutex en cada operación.
type scope struct {
	store *Store
	inTx  bool
}

func (sc scope) do(fn func(st *state) error) error {
	if !sc.inTx {
		sc.store.mu.Lock()
		defer sc.store.mu.Unlock()
	}
	return fn(sc.store.st)
}

// Users repositorio de usuarios fuera de transacción.
func (s *Store) Users() *UserRepo { return &UserRepo{sc: scope{store: s}} }

// Inventory repositorio de inventario fuera de transacción.
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{sc: scope{store: s}} }

// Sales repositorio de ventas fuera de transacción.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{sc: scope{store: s}} }

// Reports repositorio de reportes.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{sc: scope{store: s}} }

// Run ejecuta fn con el almacén bloqueado; si fn falla restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	txScope := scope{store: s, inTx: true}
	if err := fn(&InventoryRepo{sc: txScope}, &SaleRepo{sc: txScope}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}
