// Package testutil provides in-memory repositories and a throwaway sqlite
// database for tests. The memory repositories enforce the same unique keys
// as the real schema and return the repository sentinel errors.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jhris/internal/dto"
	"jhris/internal/model"
	"jhris/internal/repository"
)

// Store bundles one memory repository per entity.
type Store struct {
	Users       *MemoryUsers
	Departments *MemoryDepartments
	Positions   *MemoryPositions
	Employees   *MemoryEmployees
}

// NewStore wires the repositories so deleting a row nulls every reference
// to it, as the gorm repositories do.
func NewStore() *Store {
	s := &Store{
		Users:       &MemoryUsers{rows: map[uint]model.User{}},
		Departments: &MemoryDepartments{rows: map[uint]model.Department{}},
		Positions:   &MemoryPositions{rows: map[uint]model.Position{}},
		Employees:   &MemoryEmployees{rows: map[uint]model.Employee{}},
	}
	s.Departments.onDelete = func(id uint) {
		detach(&s.Departments.table, s.Departments.rows, id, func(d *model.Department) **uint { return &d.ParentDepartmentID })
		detach(&s.Positions.table, s.Positions.rows, id, func(p *model.Position) **uint { return &p.DepartmentID })
		detach(&s.Employees.table, s.Employees.rows, id, func(e *model.Employee) **uint { return &e.DepartmentID })
	}
	s.Positions.onDelete = func(id uint) {
		detach(&s.Employees.table, s.Employees.rows, id, func(e *model.Employee) **uint { return &e.PositionID })
	}
	s.Employees.onDelete = func(id uint) {
		detach(&s.Departments.table, s.Departments.rows, id, func(d *model.Department) **uint { return &d.ManagerID })
		detach(&s.Employees.table, s.Employees.rows, id, func(e *model.Employee) **uint { return &e.ManagerID })
	}
	return s
}

// table holds what every memory repository shares.
type table struct {
	mu       sync.Mutex
	nextID   uint
	onDelete func(id uint)
}

func (t *table) allocate() uint {
	t.nextID++
	return t.nextID
}

// remove deletes id and runs the table's onDelete hook outside its lock.
func remove[T any](t *table, rows map[uint]T, id uint) bool {
	t.mu.Lock()
	_, ok := rows[id]
	delete(rows, id)
	t.mu.Unlock()

	if ok && t.onDelete != nil {
		t.onDelete(id)
	}
	return ok
}

// detach nulls the reference picked by field on every row pointing at id.
func detach[T any](t *table, rows map[uint]T, id uint, field func(*T) **uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, row := range rows {
		if ref := field(&row); *ref != nil && **ref == id {
			*ref = nil
			rows[key] = row
		}
	}
}

func page[T any](rows map[uint]T, skip, limit int, keep func(T) bool) []T {
	ids := make([]uint, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := []T{}
	for _, id := range ids {
		if keep != nil && !keep(rows[id]) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, rows[id])
	}
	return out
}

// ── Users ────────────────────────────────────────────────────────────────────

type MemoryUsers struct {
	table
	rows map[uint]model.User
}

var _ repository.UserRepository = (*MemoryUsers)(nil)

func (r *MemoryUsers) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Email == u.Email {
			return repository.ErrDuplicateKey
		}
	}
	u.ID = r.allocate()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.rows[u.ID] = *u
	return nil
}

func (r *MemoryUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryUsers) List(_ context.Context, skip, limit int) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return page(r.rows, skip, limit, nil), nil
}

func (r *MemoryUsers) Update(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.rows {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicateKey
		}
	}
	u.UpdatedAt = time.Now()
	r.rows[u.ID] = *u
	return nil
}

// Count returns the number of stored users.
func (r *MemoryUsers) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// ── Departments ──────────────────────────────────────────────────────────────

type MemoryDepartments struct {
	table
	rows map[uint]model.Department
}

var _ repository.DepartmentRepository = (*MemoryDepartments)(nil)

func (r *MemoryDepartments) Create(_ context.Context, d *model.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Code == d.Code {
			return repository.ErrDuplicateKey
		}
	}
	d.ID = r.allocate()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.rows[d.ID] = *d
	return nil
}

func (r *MemoryDepartments) FindByID(_ context.Context, id uint) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *MemoryDepartments) FindByCode(_ context.Context, code string) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.rows {
		if d.Code == code {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryDepartments) List(_ context.Context, skip, limit int) ([]model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return page(r.rows, skip, limit, nil), nil
}

func (r *MemoryDepartments) Update(_ context.Context, d *model.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[d.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.rows {
		if id != d.ID && existing.Code == d.Code {
			return repository.ErrDuplicateKey
		}
	}
	d.UpdatedAt = time.Now()
	r.rows[d.ID] = *d
	return nil
}

func (r *MemoryDepartments) Delete(_ context.Context, id uint) (bool, error) {
	return remove(&r.table, r.rows, id), nil
}

func (r *MemoryDepartments) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

// ── Positions ────────────────────────────────────────────────────────────────

type MemoryPositions struct {
	table
	rows map[uint]model.Position
}

var _ repository.PositionRepository = (*MemoryPositions)(nil)

func (r *MemoryPositions) Create(_ context.Context, p *model.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Code == p.Code {
			return repository.ErrDuplicateKey
		}
	}
	p.ID = r.allocate()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.rows[p.ID] = *p
	return nil
}

func (r *MemoryPositions) FindByID(_ context.Context, id uint) (*model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *MemoryPositions) FindByCode(_ context.Context, code string) (*model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryPositions) List(_ context.Context, skip, limit int) ([]model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return page(r.rows, skip, limit, nil), nil
}

func (r *MemoryPositions) Update(_ context.Context, p *model.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.rows {
		if id != p.ID && existing.Code == p.Code {
			return repository.ErrDuplicateKey
		}
	}
	p.UpdatedAt = time.Now()
	r.rows[p.ID] = *p
	return nil
}

func (r *MemoryPositions) Delete(_ context.Context, id uint) (bool, error) {
	return remove(&r.table, r.rows, id), nil
}

// ── Employees ────────────────────────────────────────────────────────────────

type MemoryEmployees struct {
	table
	rows map[uint]model.Employee
}

var _ repository.EmployeeRepository = (*MemoryEmployees)(nil)

func (r *MemoryEmployees) Create(_ context.Context, e *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.EmployeeNumber == e.EmployeeNumber {
			return repository.ErrDuplicateKey
		}
	}
	e.ID = r.allocate()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.rows[e.ID] = *e
	return nil
}

func (r *MemoryEmployees) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *MemoryEmployees) FindByNumber(_ context.Context, number string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.EmployeeNumber == number {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryEmployees) List(_ context.Context, filter dto.EmployeeFilter) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	term := strings.ToLower(strings.TrimSpace(filter.Query))
	return page(r.rows, filter.Skip, filter.Limit, func(e model.Employee) bool {
		if filter.DepartmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *filter.DepartmentID) {
			return false
		}
		if filter.EmploymentStatus != "" && string(e.EmploymentStatus) != filter.EmploymentStatus {
			return false
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.FirstName), term) &&
			!strings.Contains(strings.ToLower(e.LastName), term) &&
			!strings.Contains(strings.ToLower(e.Email), term) {
			return false
		}
		return true
	}), nil
}

func (r *MemoryEmployees) ListByManager(_ context.Context, managerID uint) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return page(r.rows, 0, len(r.rows), func(e model.Employee) bool {
		return e.ManagerID != nil && *e.ManagerID == managerID
	}), nil
}

func (r *MemoryEmployees) Update(_ context.Context, e *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[e.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.rows {
		if id != e.ID && existing.EmployeeNumber == e.EmployeeNumber {
			return repository.ErrDuplicateKey
		}
	}
	e.UpdatedAt = time.Now()
	r.rows[e.ID] = *e
	return nil
}

func (r *MemoryEmployees) Delete(_ context.Context, id uint) (bool, error) {
	return remove(&r.table, r.rows, id), nil
}

func (r *MemoryEmployees) CountActiveInDepartment(_ context.Context, departmentID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.rows {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID && e.EmploymentStatus == model.StatusActive {
			n++
		}
	}
	return n, nil
}

func (r *MemoryEmployees) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[model.EmploymentStatus]int64{}
	for _, e := range r.rows {
		counts[e.EmploymentStatus]++
	}
	out := make([]repository.StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

func (r *MemoryEmployees) CountByDepartment(_ context.Context) ([]repository.DepartmentCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[uint]int64{}
	var unassigned int64
	for _, e := range r.rows {
		if e.DepartmentID == nil {
			unassigned++
			continue
		}
		counts[*e.DepartmentID]++
	}
	out := make([]repository.DepartmentCount, 0, len(counts)+1)
	for id, n := range counts {
		id := id
		out = append(out, repository.DepartmentCount{DepartmentID: &id, Count: n})
	}
	if unassigned > 0 {
		out = append(out, repository.DepartmentCount{Count: unassigned})
	}
	return out, nil
}
