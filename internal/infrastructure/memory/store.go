// Package memory implementa los puertos de persistencia sobre un almacén en
// memoria. Todo el estado es de vida de proceso: se siembra al arrancar y se
// pierde al reiniciar. Los repositorios entregan y reciben copias profundas,
// de modo que nada fuera del almacén retiene punteros a su estado interno.
package memory

import (
	"fmt"
	"sync"

	"github.com/jdvalencia/almacen-api/internal/domain/entity"
)

// Store es el almacén compartido por todos los repositorios en memoria.
// El mutex protege los mapas frente a peticiones HTTP concurrentes; la
// atomicidad de las mutaciones multi-entidad la da TxRunner.
type Store struct {
	mu sync.RWMutex

	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	transfers  map[string]*entity.Transfer
	remissions map[string]*entity.Remission
	orders     map[string]*entity.PurchaseOrder
	users      map[string]*entity.User

	// Orden de inserción para listados estables (los mapas no lo garantizan).
	productOrder   []string
	warehouseOrder []string
	transferOrder  []string
	remissionOrder []string
	orderOrder     []string
	userOrder      []string

	// Consecutivos de códigos legibles por tipo de documento.
	transferSeq  int
	remissionSeq int
	orderSeq     int
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
		transfers:  make(map[string]*entity.Transfer),
		remissions: make(map[string]*entity.Remission),
		orders:     make(map[string]*entity.PurchaseOrder),
		users:      make(map[string]*entity.User),
	}
}

func (s *Store) nextTransferCode() string {
	s.transferSeq++
	return fmt.Sprintf("TR-%04d", s.transferSeq)
}

func (s *Store) nextRemissionCode() string {
	s.remissionSeq++
	return fmt.Sprintf("RM-%04d", s.remissionSeq)
}

func (s *Store) nextOrderCode() string {
	s.orderSeq++
	return fmt.Sprintf("OC-%04d", s.orderSeq)
}

// ── Copias profundas ──────────────────────────────────────────────────────────

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Lots = make([]entity.Lot, len(p.Lots))
	copy(cp.Lots, p.Lots)
	return &cp
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	if w == nil {
		return nil
	}
	cw := *w
	return &cw
}

func cloneTransfer(t *entity.Transfer) *entity.Transfer {
	if t == nil {
		return nil
	}
	ct := *t
	ct.Items = make([]entity.TransferItem, len(t.Items))
	copy(ct.Items, t.Items)
	return &ct
}

func cloneRemission(r *entity.Remission) *entity.Remission {
	if r == nil {
		return nil
	}
	cr := *r
	cr.Items = make([]entity.RemissionItem, len(r.Items))
	copy(cr.Items, r.Items)
	return &cr
}

func cloneOrder(o *entity.PurchaseOrder) *entity.PurchaseOrder {
	if o == nil {
		return nil
	}
	co := *o
	co.Items = make([]entity.PurchaseOrderItem, len(o.Items))
	copy(co.Items, o.Items)
	return &co
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cu := *u
	return &cu
}

// ── Snapshot para rollback ────────────────────────────────────────────────────

// storeState es la foto completa del almacén que TxRunner retiene antes de
// ejecutar una mutación multi-entidad, para restaurarla si la función falla.
type storeState struct {
	products   map[string]*entity.Product
	transfers  map[string]*entity.Transfer
	remissions map[string]*entity.Remission

	productOrder   []string
	transferOrder  []string
	remissionOrder []string

	transferSeq  int
	remissionSeq int
}

// snapshot copia el estado mutable por las transacciones. Requiere el lock.
func (s *Store) snapshot() storeState {
	st := storeState{
		products:       make(map[string]*entity.Product, len(s.products)),
		transfers:      make(map[string]*entity.Transfer, len(s.transfers)),
		remissions:     make(map[string]*entity.Remission, len(s.remissions)),
		productOrder:   append([]string(nil), s.productOrder...),
		transferOrder:  append([]string(nil), s.transferOrder...),
		remissionOrder: append([]string(nil), s.remissionOrder...),
		transferSeq:    s.transferSeq,
		remissionSeq:   s.remissionSeq,
	}
	for id, p := range s.products {
		st.products[id] = cloneProduct(p)
	}
	for id, t := range s.transfers {
		st.transfers[id] = cloneTransfer(t)
	}
	for id, r := range s.remissions {
		st.remissions[id] = cloneRemission(r)
	}
	return st
}

// restore vuelve al estado de la foto. Requiere el lock.
func (s *Store) restore(st storeState) {
	s.products = st.products
	s.transfers = st.transfers
	s.remissions = st.remissions
	s.productOrder = st.productOrder
	s.transferOrder = st.transferOrder
	s.remissionOrder = st.remissionOrder
	s.transferSeq = st.transferSeq
	s.remissionSeq = st.remissionSeq
}

// pageBounds recorta [offset, offset+limit) al tamaño del listado.
func pageBounds(total, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return offset, end
}
