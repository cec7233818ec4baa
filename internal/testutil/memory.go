// Package testutil contiene adaptadores en memoria para pruebas de casos de uso y handlers.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/speed-edit-api/internal/domain"
	"github.com/jhoicas/speed-edit-api/internal/domain/entity"
	"github.com/jhoicas/speed-edit-api/internal/domain/repository"
)

var (
	_ repository.CatalogRepository = (*Catalog)(nil)
	_ repository.EditLogRepository = (*EditLogs)(nil)
	_ repository.UserRepository    = (*Users)(nil)
)

// Catalog catálogo en memoria. Devuelve copias para que los llamadores no alteren el estado guardado.
type Catalog struct {
	mu       sync.Mutex
	products map[int64]*entity.Product
	children map[int64][]int64

	// Errores inyectables por ID de producto.
	GetErr      map[int64]error
	UpdateErr   map[int64]error
	LocationErr map[int64]error

	UpdateCalls   int
	LocationCalls int
}

// NewCatalog crea el catálogo con los productos dados; las variaciones se enlazan a su padre en orden.
func NewCatalog(products ...*entity.Product) *Catalog {
	c := &Catalog{
		products:  make(map[int64]*entity.Product),
		children:  make(map[int64][]int64),
		GetErr:      make(map[int64]error),
		UpdateErr:   make(map[int64]error),
		LocationErr: make(map[int64]error),
	}
	for _, p := range products {
		c.Put(p)
	}
	return c
}

// Put agrega o reemplaza un producto.
func (c *Catalog) Put(p *entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *p
	if _, exists := c.products[p.ID]; !exists && p.ParentID != 0 {
		c.children[p.ParentID] = append(c.children[p.ParentID], p.ID)
	}
	c.products[p.ID] = &cp
}

// LinkChild registra un hijo aunque no exista como producto (variación huérfana).
func (c *Catalog) LinkChild(parentID, childID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children[parentID] = append(c.children[parentID], childID)
}

// Stock devuelve la cantidad guardada de un producto.
func (c *Catalog) Stock(id int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.products[id]; ok {
		return p.StockQuantity
	}
	return 0
}

// Location devuelve la ubicación guardada de un producto.
func (c *Catalog) Location(id int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.products[id]; ok {
		return p.Location
	}
	return ""
}

func (c *Catalog) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.GetErr[id]; err != nil {
		return nil, err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (c *Catalog) GetChildren(_ context.Context, parentID int64) ([]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int64(nil), c.children[parentID]...), nil
}

func (c *Catalog) UpdateStock(_ context.Context, product *entity.Product, quantity int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.UpdateErr[product.ID]; err != nil {
		return 0, err
	}
	p, ok := c.products[product.ID]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	c.UpdateCalls++
	p.StockQuantity = quantity
	return quantity, nil
}

func (c *Catalog) GetLocation(_ context.Context, productID int64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.products[productID]; ok {
		return p.Location, nil
	}
	return "", nil
}

func (c *Catalog) SetLocation(_ context.Context, productID int64, location string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.LocationErr[productID]; err != nil {
		return err
	}
	p, ok := c.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	c.LocationCalls++
	p.Location = location
	return nil
}

// EditLogs historial en memoria con IDs incrementales.
type EditLogs struct {
	mu      sync.Mutex
	rows    []entity.EditLog
	nextID  int64
	FailErr error
}

// NewEditLogs crea un historial vacío.
func NewEditLogs() *EditLogs {
	return &EditLogs{nextID: 1}
}

// All devuelve todas las filas en orden de inserción.
func (r *EditLogs) All() []entity.EditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.EditLog(nil), r.rows...)
}

func (r *EditLogs) Create(_ context.Context, log *entity.EditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailErr != nil {
		return r.FailErr
	}
	log.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *log)
	return nil
}

func (r *EditLogs) ListByProduct(_ context.Context, productID int64, limit int) ([]*entity.EditLog, error) {
	return r.list(func(l entity.EditLog) bool { return l.ProductID == productID }, limit), nil
}

func (r *EditLogs) ListRecent(_ context.Context, limit int) ([]*entity.EditLog, error) {
	return r.list(func(entity.EditLog) bool { return true }, limit), nil
}

func (r *EditLogs) list(match func(entity.EditLog) bool, limit int) []*entity.EditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.EditLog
	for i := range r.rows {
		if match(r.rows[i]) {
			cp := r.rows[i]
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LogTime.Equal(out[j].LogTime) {
			return out[i].LogTime.After(out[j].LogTime)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Users repositorio de operadores en memoria.
type Users struct {
	mu     sync.Mutex
	byID   map[int64]*entity.User
	nextID int64
}

// NewUsers crea el repositorio con los usuarios dados.
func NewUsers(users ...*entity.User) *Users {
	r := &Users{byID: make(map[int64]*entity.User), nextID: 1}
	for _, u := range users {
		_ = r.Create(context.Background(), u)
	}
	return r
}

func (r *Users) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *Users) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
