package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/logger"
)

type TableEvent struct {
	Type  string       `json:"type"` // created, updated, deleted, status
	Table entity.Table `json:"table"`
}

// TableNotifier receives every change made on the board.
type TableNotifier interface {
	Publish(ev TableEvent)
}

type TableFilter struct {
	Status entity.TableStatus `form:"status"`
	Area   string             `form:"area"`
}

type TableSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
}

// TableBoard owns the tables of an outlet. Status moves freely between
// available, occupied and reserved; there is no transition graph.
type TableBoard struct {
	Backend  TableBackend
	Notifier TableNotifier
	Log      *logger.Logger

	now func() time.Time

	mu     sync.Mutex
	tables []entity.Table
}

func NewTableBoard(backend TableBackend, notifier TableNotifier, log *logger.Logger) *TableBoard {
	return &TableBoard{Backend: backend, Notifier: notifier, Log: log, now: time.Now}
}

// Load replaces the board with the backend's tables. On failure the board is unchanged.
func (b *TableBoard) Load(ctx context.Context) error {
	tables, err := b.Backend.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	b.mu.Lock()
	b.tables = tables
	b.mu.Unlock()
	return nil
}

func validateTable(f TableFields) (TableFields, error) {
	f.TableNumber = strings.TrimSpace(f.TableNumber)
	f.Area = strings.TrimSpace(f.Area)
	if f.TableNumber == "" {
		return f, ErrNameRequired
	}
	if f.Capacity <= 0 {
		return f, ErrInvalidCapacity
	}
	return f, nil
}

func (b *TableBoard) indexOf(id string) int {
	for i := range b.tables {
		if b.tables[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *TableBoard) publish(kind string, t entity.Table) {
	if b.Notifier != nil {
		b.Notifier.Publish(TableEvent{Type: kind, Table: t})
	}
}

// Create adds an available table. Without the backend the table gets a local id.
func (b *TableBoard) Create(ctx context.Context, f TableFields) (entity.Table, Outcome, error) {
	f, err := validateTable(f)
	if err != nil {
		return entity.Table{}, Outcome{}, err
	}

	t := entity.Table{TableNumber: f.TableNumber, Capacity: f.Capacity, Area: f.Area, Status: entity.TableAvailable}
	var outcome Outcome
	id, err := b.Backend.Create(ctx, &t)
	if err != nil {
		b.Log.Warn("table_create", "", "backend create failed, using local id", err)
		outcome = degraded(err)
		id = fmt.Sprintf("local_%d", b.now().UnixNano())
	}
	t.ID = id

	b.mu.Lock()
	b.tables = append(b.tables, t)
	b.mu.Unlock()

	b.publish("created", t)
	return t, outcome, nil
}

// Update touches only number, capacity and area.
func (b *TableBoard) Update(ctx context.Context, id string, f TableFields) (entity.Table, Outcome, error) {
	f, err := validateTable(f)
	if err != nil {
		return entity.Table{}, Outcome{}, err
	}

	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return entity.Table{}, Outcome{}, ErrTableNotFound
	}
	b.tables[i].TableNumber = f.TableNumber
	b.tables[i].Capacity = f.Capacity
	b.tables[i].Area = f.Area
	t := b.tables[i]
	b.mu.Unlock()

	var outcome Outcome
	if err := b.Backend.Update(ctx, id, f); err != nil {
		b.Log.Warn("table_update", id, "backend update failed, kept locally", err)
		outcome = degraded(err)
	}
	b.publish("updated", t)
	return t, outcome, nil
}

func (b *TableBoard) Delete(ctx context.Context, id string) (Outcome, error) {
	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return Outcome{}, ErrTableNotFound
	}
	t := b.tables[i]
	b.tables = append(b.tables[:i], b.tables[i+1:]...)
	b.mu.Unlock()

	var outcome Outcome
	if err := b.Backend.Delete(ctx, id); err != nil {
		b.Log.Warn("table_delete", id, "backend delete failed, removed locally", err)
		outcome = degraded(err)
	}
	b.publish("deleted", t)
	return outcome, nil
}

// SetStatus moves a table to any status, including the one it already has.
func (b *TableBoard) SetStatus(ctx context.Context, id string, status entity.TableStatus) (entity.Table, Outcome, error) {
	if !status.Valid() {
		return entity.Table{}, Outcome{}, ErrInvalidStatus
	}

	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return entity.Table{}, Outcome{}, ErrTableNotFound
	}
	b.tables[i].Status = status
	t := b.tables[i]
	b.mu.Unlock()

	var outcome Outcome
	if err := b.Backend.UpdateStatus(ctx, id, status); err != nil {
		b.Log.Warn("table_status", id, "backend status update failed, kept locally", err)
		outcome = degraded(err)
	}
	b.publish("status", t)
	return t, outcome, nil
}

func (b *TableBoard) Table(id string) (entity.Table, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.indexOf(id); i >= 0 {
		return b.tables[i], true
	}
	return entity.Table{}, false
}

// Filter is a read-only projection. Empty fields match everything; area
// comparison ignores case.
func (b *TableBoard) Filter(f TableFilter) []entity.Table {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Table, 0, len(b.tables))
	for _, t := range b.tables {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Area != "" && !strings.EqualFold(t.Area, strings.TrimSpace(f.Area)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Areas lists the distinct areas, sorted.
func (b *TableBoard) Areas() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := map[string]bool{}
	out := []string{}
	for _, t := range b.tables {
		if t.Area == "" || seen[t.Area] {
			continue
		}
		seen[t.Area] = true
		out = append(out, t.Area)
	}
	sort.Strings(out)
	return out
}

func (b *TableBoard) Summary() TableSummary {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := TableSummary{Total: len(b.tables)}
	for _, t := range b.tables {
		switch t.Status {
		case entity.TableAvailable:
			s.Available++
		case entity.TableOccupied:
			s.Occupied++
		case entity.TableReserved:
			s.Reserved++
		}
	}
	return s
}
