package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/logger"
)

// PaymentMethodsCacheKey holds the serialized full method list in the durable cache.
const PaymentMethodsCacheKey = "payment_methods_config"

type PaymentMethodConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    MethodCategory    `json:"category"`
	SubCategory string            `json:"subCategory,omitempty"`
	Icon        string            `json:"icon"`
	Color       string            `json:"color"`
	Enabled     bool              `json:"enabled"`
	IsDefault   bool              `json:"isDefault"`
	Fee         decimal.Decimal   `json:"fee"`
	FeeType     FeeType           `json:"feeType"`
	Config      map[string]string `json:"config,omitempty"`
}

// FeeFor applies this method's fee configuration to a transaction total.
func (m PaymentMethodConfig) FeeFor(total decimal.Decimal) decimal.Decimal {
	return ComputeFee(m.FeeType, m.Fee, total)
}

func (m PaymentMethodConfig) clone() PaymentMethodConfig {
	if m.Config != nil {
		cfg := make(map[string]string, len(m.Config))
		for k, v := range m.Config {
			cfg[k] = v
		}
		m.Config = cfg
	}
	return m
}

// ConfigUpdate.Fee is required; a nil fee is rejected like a negative one.
type ConfigUpdate struct {
	Fee     *decimal.Decimal  `json:"fee"`
	FeeType FeeType           `json:"feeType"`
	Config  map[string]string `json:"config"`
}

type LoadSource string

const (
	SourceBackend  LoadSource = "backend"
	SourceCache    LoadSource = "cache"
	SourceDefaults LoadSource = "defaults"
)

// PaymentMethodRegistry is a two-tier store: the backend is primary, the durable
// cache is read only when the backend cannot be reached. Every write lands in
// memory and in the cache even if the backend rejects it.
type PaymentMethodRegistry struct {
	Backend PaymentMethodBackend
	Cache   KeyValueStore
	Log     *logger.Logger

	now func() time.Time

	mu      sync.Mutex
	methods []PaymentMethodConfig
}

func NewPaymentMethodRegistry(backend PaymentMethodBackend, cache KeyValueStore, log *logger.Logger) *PaymentMethodRegistry {
	return &PaymentMethodRegistry{Backend: backend, Cache: cache, Log: log, now: time.Now}
}

// Load fills the registry. It never fails: the worst case is the static defaults.
func (r *PaymentMethodRegistry) Load(ctx context.Context) LoadSource {
	remote, err := r.Backend.GetAll(ctx)
	if err == nil {
		if len(remote) == 0 {
			r.replace(DefaultMethods())
			return SourceDefaults
		}
		stored := make([]PaymentMethodConfig, 0, len(remote))
		for _, rec := range remote {
			stored = append(stored, fromRecord(rec))
		}
		methods := reconcile(DefaultMethods(), stored)
		if werr := r.writeCache(ctx, methods); werr != nil {
			r.Log.Warn("payment_methods_cache", "", "could not mirror methods to cache", werr)
		}
		r.replace(methods)
		return SourceBackend
	}

	r.Log.Warn("payment_methods_load", "", "backend unavailable, reading cache", err)
	cached, ok := r.readCache(ctx)
	if !ok {
		r.replace(DefaultMethods())
		return SourceDefaults
	}
	r.replace(reconcile(DefaultMethods(), cached))
	return SourceCache
}

// reconcile overlays stored entries (backend or cache) on the defaults: stored
// defaults replace the seeded ones with the same id, default ids missing from
// stored keep their seeded values, custom methods are appended.
func reconcile(defaults, cached []PaymentMethodConfig) []PaymentMethodConfig {
	out := defaults
	for _, c := range cached {
		if isDefaultID(c.ID) {
			for i := range out {
				if out[i].ID == c.ID {
					c.IsDefault = true
					v := ResolveVisual(c.ID, c.SubCategory)
					c.Icon, c.Color = v.Icon, v.Color
					out[i] = c
					break
				}
			}
			continue
		}
		if !c.IsDefault {
			out = append(out, c)
		}
	}
	return out
}

func fromRecord(rec entity.PaymentMethod) PaymentMethodConfig {
	v := ResolveVisual(rec.ID, rec.SubCategory)
	m := PaymentMethodConfig{
		ID:          rec.ID,
		Name:        rec.Name,
		Category:    MethodCategory(rec.Category),
		SubCategory: rec.SubCategory,
		Icon:        v.Icon,
		Color:       v.Color,
		Enabled:     rec.Enabled,
		IsDefault:   rec.IsDefault,
		Fee:         rec.Fee,
		FeeType:     FeeType(rec.FeeType),
		Config:      rec.Config,
	}
	return m.clone()
}

func (r *PaymentMethodRegistry) replace(methods []PaymentMethodConfig) {
	r.mu.Lock()
	r.methods = methods
	r.mu.Unlock()
}

// Methods returns a copy of the current list.
func (r *PaymentMethodRegistry) Methods() []PaymentMethodConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *PaymentMethodRegistry) Enabled() []PaymentMethodConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PaymentMethodConfig, 0, len(r.methods))
	for _, m := range r.methods {
		if m.Enabled {
			out = append(out, m.clone())
		}
	}
	return out
}

func (r *PaymentMethodRegistry) Method(id string) (PaymentMethodConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i >= 0 {
		return r.methods[i].clone(), true
	}
	return PaymentMethodConfig{}, false
}

// Reset drops the in-memory list; the durable cache is left alone.
func (r *PaymentMethodRegistry) Reset() {
	r.replace(nil)
}

// snapshot must be called with mu held.
func (r *PaymentMethodRegistry) snapshot() []PaymentMethodConfig {
	out := make([]PaymentMethodConfig, len(r.methods))
	for i, m := range r.methods {
		out[i] = m.clone()
	}
	return out
}

func (r *PaymentMethodRegistry) indexOf(id string) int {
	for i := range r.methods {
		if r.methods[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *PaymentMethodRegistry) Toggle(ctx context.Context, id string) (PaymentMethodConfig, Outcome, error) {
	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return PaymentMethodConfig{}, Outcome{}, ErrMethodNotFound
	}
	r.methods[i].Enabled = !r.methods[i].Enabled
	updated := r.methods[i].clone()
	all := r.snapshot()
	r.mu.Unlock()

	return updated, r.Persist(ctx, all), nil
}

// UpdateConfig replaces fee, fee type and the method-specific config.
// A nil Config keeps the current one.
func (r *PaymentMethodRegistry) UpdateConfig(ctx context.Context, id string, in ConfigUpdate) (PaymentMethodConfig, Outcome, error) {
	fee, err := validateFee(in.Fee)
	if err != nil {
		return PaymentMethodConfig{}, Outcome{}, err
	}
	if !in.FeeType.Valid() {
		return PaymentMethodConfig{}, Outcome{}, ErrInvalidFeeType
	}

	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return PaymentMethodConfig{}, Outcome{}, ErrMethodNotFound
	}
	r.methods[i].Fee = fee
	r.methods[i].FeeType = in.FeeType
	if in.Config != nil {
		r.methods[i].Config = PaymentMethodConfig{Config: in.Config}.clone().Config
	}
	updated := r.methods[i].clone()
	all := r.snapshot()
	r.mu.Unlock()

	return updated, r.Persist(ctx, all), nil
}

// Persist pushes every default method to the backend and writes the whole list to
// the cache. Backend errors never roll anything back; they only degrade the outcome.
func (r *PaymentMethodRegistry) Persist(ctx context.Context, methods []PaymentMethodConfig) Outcome {
	var failed []error
	for _, m := range methods {
		if !m.IsDefault {
			continue
		}
		err := r.Backend.Update(ctx, m.ID, PaymentMethodUpdate{
			Name:     m.Name,
			Category: string(m.Category),
			Enabled:  m.Enabled,
			Fee:      m.Fee,
			FeeType:  string(m.FeeType),
			Config:   m.Config,
		})
		if err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", m.ID, err))
		}
	}

	if err := r.writeCache(ctx, methods); err != nil {
		r.Log.Error("payment_methods_cache", "", "could not write methods to cache", err)
		failed = append(failed, fmt.Errorf("cache: %w", err))
	}

	if len(failed) > 0 {
		err := errors.Join(failed...)
		r.Log.Warn("payment_methods_persist", "", "persisted locally only", err)
		return degraded(err)
	}
	return Outcome{}
}

// CreateCustom adds a user-defined method. If the backend is down the method gets
// a local id and is still usable.
func (r *PaymentMethodRegistry) CreateCustom(ctx context.Context, in CustomMethodIn) (PaymentMethodConfig, Outcome, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return PaymentMethodConfig{}, Outcome{}, ErrNameRequired
	}
	fee, err := validateFee(in.Fee)
	if err != nil {
		return PaymentMethodConfig{}, Outcome{}, err
	}
	if in.Category == "" {
		in.Category = CategoryOffline
	}
	if !in.Category.Valid() {
		return PaymentMethodConfig{}, Outcome{}, ErrInvalidCategory
	}
	if in.FeeType == "" {
		in.FeeType = FeePercentage
	}
	if !in.FeeType.Valid() {
		return PaymentMethodConfig{}, Outcome{}, ErrInvalidFeeType
	}

	var outcome Outcome
	id, err := r.Backend.CreateCustom(ctx, &entity.PaymentMethod{
		Name:     name,
		Category: string(in.Category),
		Enabled:  true,
		Fee:      fee,
		FeeType:  string(in.FeeType),
	})
	if err != nil {
		r.Log.Warn("payment_method_create", "", "backend create failed, using local id", err)
		outcome = degraded(err)
		id = ""
	}

	v := ResolveVisual("", "")
	m := PaymentMethodConfig{
		Name:     name,
		Category: in.Category,
		Icon:     v.Icon,
		Color:    v.Color,
		Enabled:  true,
		Fee:      fee,
		FeeType:  in.FeeType,
	}

	r.mu.Lock()
	if id == "" {
		id = r.localID()
	}
	m.ID = id
	r.methods = append(r.methods, m)
	all := r.snapshot()
	r.mu.Unlock()

	if err := r.writeCache(ctx, all); err != nil {
		r.Log.Error("payment_methods_cache", "", "could not write methods to cache", err)
		if !outcome.Degraded {
			outcome = degraded(err)
		}
	}
	return m.clone(), outcome, nil
}

// localID is timestamp based; must be called with mu held.
func (r *PaymentMethodRegistry) localID() string {
	base := fmt.Sprintf("custom_%d", r.now().UnixMilli())
	id := base
	for n := 1; r.indexOf(id) >= 0; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return id
}

// DeleteCustom removes a custom method locally and from the cache, then from the
// backend. The caller is expected to have confirmed with the user.
func (r *PaymentMethodRegistry) DeleteCustom(ctx context.Context, id string) (Outcome, error) {
	r.mu.Lock()
	i := r.indexOf(id)
	if i < 0 {
		r.mu.Unlock()
		return Outcome{}, ErrMethodNotFound
	}
	if r.methods[i].IsDefault {
		r.mu.Unlock()
		return Outcome{}, ErrDefaultMethodDelete
	}
	r.methods = append(r.methods[:i], r.methods[i+1:]...)
	all := r.snapshot()
	r.mu.Unlock()

	var outcome Outcome
	if err := r.writeCache(ctx, all); err != nil {
		r.Log.Error("payment_methods_cache", "", "could not write methods to cache", err)
		outcome = degraded(err)
	}
	if err := r.Backend.DeleteCustom(ctx, id); err != nil {
		r.Log.Warn("payment_method_delete", "", "backend delete failed, removed locally", err)
		outcome = degraded(err)
	}
	return outcome, nil
}

// FeeFor looks the method up and applies its fee to total.
func (r *PaymentMethodRegistry) FeeFor(id string, total decimal.Decimal) (decimal.Decimal, error) {
	m, ok := r.Method(id)
	if !ok {
		return decimal.Zero, ErrMethodNotFound
	}
	return m.FeeFor(total), nil
}

func (r *PaymentMethodRegistry) writeCache(ctx context.Context, methods []PaymentMethodConfig) error {
	if r.Cache == nil {
		return nil
	}
	b, err := json.Marshal(methods)
	if err != nil {
		return err
	}
	return r.Cache.Set(ctx, PaymentMethodsCacheKey, string(b))
}

func (r *PaymentMethodRegistry) readCache(ctx context.Context) ([]PaymentMethodConfig, bool) {
	if r.Cache == nil {
		return nil, false
	}
	raw, ok, err := r.Cache.Get(ctx, PaymentMethodsCacheKey)
	if err != nil {
		r.Log.Warn("payment_methods_cache", "", "could not read cache", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var methods []PaymentMethodConfig
	if err := json.Unmarshal([]byte(raw), &methods); err != nil {
		r.Log.Warn("payment_methods_cache", "", "cache entry is corrupt", err)
		return nil, false
	}
	return methods, true
}
