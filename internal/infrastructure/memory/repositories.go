package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/domain/entity"
	"github.com/jhoicas/hotel-pos/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.UserRepository      = (*UserRepo)(nil)
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
	_ repository.SaleRepository      = (*SaleRepo)(nil)
	_ repository.ReportRepository    = (*ReportRepo)(nil)
)

// UserRepo usuarios en memoria.
type UserRepo struct {
	sc scope
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.sc.do(func(st *state) error {
		for _, u := range st.users {
			if u.Username == user.Username {
				return domain.ErrDuplicateUsername
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.sc.do(func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.sc.do(func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				u := u
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	err := r.sc.do(func(st *state) error {
		out = make([]*entity.User, 0, len(st.users))
		for _, u := range st.users {
			u := u
			out = append(out, &u)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, err
}

// InventoryRepo inventario en memoria.
type InventoryRepo struct {
	sc scope
}

func (r *InventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	if item.Quantity < 0 {
		return fmt.Errorf("memory: cantidad negativa para %s", item.Name)
	}
	return r.sc.do(func(st *state) error {
		for _, it := range st.items {
			if it.Name == item.Name {
				return domain.ErrDuplicate
			}
		}
		st.items[item.ID] = *item
		return nil
	})
}

func (r *InventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	err := r.sc.do(func(st *state) error {
		if it, ok := st.items[id]; ok {
			out = &it
		}
		return nil
	})
	return out, err
}

func (r *InventoryRepo) GetByName(_ context.Context, name string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	err := r.sc.do(func(st *state) error {
		for _, it := range st.items {
			if it.Name == name {
				it := it
				out = &it
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *InventoryRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	err := r.sc.do(func(st *state) error {
		out = make([]*entity.InventoryItem, 0, len(st.items))
		for _, it := range st.items {
			it := it
			out = append(out, &it)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, err
}

func (r *InventoryRepo) DecrementStock(_ context.Context, id string, quantity int64) (bool, error) {
	var ok bool
	err := r.sc.do(func(st *state) error {
		it, found := st.items[id]
		if !found || it.Quantity < quantity {
			return nil
		}
		it.Quantity -= quantity
		st.items[id] = it
		ok = true
		return nil
	})
	return ok, err
}

// SaleRepo ventas en memoria. Verifica las referencias como lo harían las FK.
type SaleRepo struct {
	sc scope
}

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.sc.do(func(st *state) error {
		if _, ok := st.items[sale.ItemID]; !ok {
			return fmt.Errorf("memory: venta con artículo inexistente %s", sale.ItemID)
		}
		if _, ok := st.users[sale.UserID]; !ok {
			return fmt.Errorf("memory: venta con usuario inexistente %s", sale.UserID)
		}
		st.sales = append(st.sales, *sale)
		return nil
	})
}

// Count número de ventas registradas (tests y diagnósticos).
func (r *SaleRepo) Count() int {
	n := 0
	_ = r.sc.do(func(st *state) error {
		n = len(st.sales)
		return nil
	})
	return n
}

// ReportRepo consultas de reportes en memoria.
type ReportRepo struct {
	sc scope
}

func inRange(ts, start, end time.Time) bool {
	return !ts.Before(start) && ts.Before(end)
}

func (r *ReportRepo) SalesByItem(_ context.Context, start, end time.Time) ([]repository.ItemSalesResult, error) {
	out := make([]repository.ItemSalesResult, 0)
	err := r.sc.do(func(st *state) error {
		idx := make(map[string]int)
		for _, s := range st.sales {
			if !inRange(s.Timestamp, start, end) {
				continue
			}
			i, ok := idx[s.ItemID]
			if !ok {
				it := st.items[s.ItemID]
				i = len(out)
				idx[s.ItemID] = i
				out = append(out, repository.ItemSalesResult{ItemID: it.ID, Name: it.Name, Category: it.Category})
			}
			out[i].QuantitySold += s.Quantity
			out[i].Revenue += s.TotalPrice
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, err
}

func (r *ReportRepo) SalesDetail(_ context.Context, start, end time.Time) ([]repository.SaleDetailResult, error) {
	out := make([]repository.SaleDetailResult, 0)
	err := r.sc.do(func(st *state) error {
		for _, s := range st.sales {
			if inRange(s.Timestamp, start, end) {
				out = append(out, detailOf(st, s))
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, err
}

func (r *ReportRepo) Totals(_ context.Context, start, end time.Time) (*repository.SalesTotals, error) {
	t := &repository.SalesTotals{AverageTicket: decimal.Zero}
	err := r.sc.do(func(st *state) error {
		for _, s := range st.sales {
			if !inRange(s.Timestamp, start, end) {
				continue
			}
			t.Transactions++
			t.ItemsSold += s.Quantity
			t.Revenue += s.TotalPrice
		}
		return nil
	})
	if t.Transactions > 0 {
		t.AverageTicket = decimal.NewFromInt(t.Revenue).Div(decimal.NewFromInt(t.Transactions))
	}
	return t, err
}

func (r *ReportRepo) SaleByID(_ context.Context, saleID string) (*repository.SaleDetailResult, error) {
	var out *repository.SaleDetailResult
	err := r.sc.do(func(st *state) error {
		for _, s := range st.sales {
			if s.ID == saleID {
				d := detailOf(st, s)
				out = &d
				return nil
			}
		}
		return nil
	})
	return out, err
}

func detailOf(st *state, s entity.Sale) repository.SaleDetailResult {
	it := st.items[s.ItemID]
	u := st.users[s.UserID]
	return repository.SaleDetailResult{
		SaleID:     s.ID,
		Timestamp:  s.Timestamp,
		ItemName:   it.Name,
		Category:   it.Category,
		UnitPrice:  it.Price,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		Username:   u.Username,
	}
}
