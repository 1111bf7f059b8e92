package integration

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("email already exists")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) Update(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *inMemoryUserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

// --- In-Memory Club Repo ---

type inMemoryClubRepo struct {
	mu    sync.RWMutex
	clubs map[uuid.UUID]*domain.Club
}

func newInMemoryClubRepo() *inMemoryClubRepo {
	return &inMemoryClubRepo{clubs: make(map[uuid.UUID]*domain.Club)}
}

func (r *inMemoryClubRepo) Create(ctx context.Context, c *domain.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.clubs[c.ID] = &cp
	return nil
}

func (r *inMemoryClubRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clubs[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryClubRepo) GetByCode(ctx context.Context, code string) (*domain.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clubs {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryClubRepo) Update(ctx context.Context, c *domain.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clubs[c.ID]; !ok {
		return fmt.Errorf("club not found")
	}
	cp := *c
	r.clubs[c.ID] = &cp
	return nil
}

func (r *inMemoryClubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clubs, id)
	return nil
}

func (r *inMemoryClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Club, 0, len(r.clubs))
	for _, c := range r.clubs {
		out = append(out, *c)
	}
	return out, nil
}

// --- In-Memory Player Repo ---

type inMemoryPlayerRepo struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*domain.Player
}

func newInMemoryPlayerRepo() *inMemoryPlayerRepo {
	return &inMemoryPlayerRepo{players: make(map[uuid.UUID]*domain.Player)}
}

func (r *inMemoryPlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *inMemoryPlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPlayerRepo) Update(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[p.ID]; !ok {
		return fmt.Errorf("player not found")
	}
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *inMemoryPlayerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
	return nil
}

func (r *inMemoryPlayerRepo) ListByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Player
	for _, p := range r.players {
		if p.ClubID == clubID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
	return out, nil
}

func (r *inMemoryPlayerRepo) UpdateActiveByClub(ctx context.Context, clubID uuid.UUID, active bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.players {
		if p.ClubID == clubID && p.Active != active {
			p.Active = active
			p.UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

// --- In-Memory Official Repo ---

type inMemoryOfficialRepo struct {
	mu        sync.RWMutex
	officials map[uuid.UUID]*domain.Official
}

func newInMemoryOfficialRepo() *inMemoryOfficialRepo {
	return &inMemoryOfficialRepo{officials: make(map[uuid.UUID]*domain.Official)}
}

func (r *inMemoryOfficialRepo) Create(ctx context.Context, o *domain.Official) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.officials[o.ID] = &cp
	return nil
}

func (r *inMemoryOfficialRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Official, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.officials[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOfficialRepo) Update(ctx context.Context, o *domain.Official) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.officials[o.ID]; !ok {
		return fmt.Errorf("official not found")
	}
	cp := *o
	r.officials[o.ID] = &cp
	return nil
}

func (r *inMemoryOfficialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.officials, id)
	return nil
}

func (r *inMemoryOfficialRepo) List(ctx context.Context) ([]domain.Official, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Official, 0, len(r.officials))
	for _, o := range r.officials {
		out = append(out, *o)
	}
	return out, nil
}

func (r *inMemoryOfficialRepo) DeleteInactive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, o := range r.officials {
		if !o.Active {
			delete(r.officials, id)
			n++
		}
	}
	return n, nil
}

// --- In-Memory Audit Repo ---

// inMemoryAuditRepo optionally fails every Create to exercise the write
// path's failure isolation.
type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	records []domain.AuditLog
	failing bool

	// created is signalled once per successful or failed Create so tests
	// can wait for the detached writer goroutine.
	created chan struct{}
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{created: make(chan struct{}, 64)}
}

func (r *inMemoryAuditRepo) setFailing(failing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing = failing
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, record *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() { r.created <- struct{}{} }()
	if r.failing {
		return fmt.Errorf("audit store down")
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *inMemoryAuditRepo) waitForWrite(timeout time.Duration) bool {
	select {
	case <-r.created:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (r *inMemoryAuditRepo) snapshot() []domain.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AuditLog, len(r.records))
	copy(out, r.records)
	return out
}

func (r *inMemoryAuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.AuditLog
	for _, rec := range r.records {
		if params.EntityType != "" && rec.EntityType != params.EntityType {
			continue
		}
		if params.Action != "" && rec.Action != params.Action {
			continue
		}
		if params.ActorEmail != "" {
			if rec.ActorEmail == nil || !strings.Contains(strings.ToLower(*rec.ActorEmail), strings.ToLower(params.ActorEmail)) {
				continue
			}
		}
		if params.From != nil && rec.CreatedAt.Before(*params.From) {
			continue
		}
		if params.To != nil && rec.CreatedAt.After(*params.To) {
			continue
		}
		matched = append(matched, rec)
	}

	sort.Slice(matched, func(i, j int) bool {
		if params.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryAuditRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []domain.AuditLog
	var n int64
	for _, rec := range r.records {
		if rec.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return n, nil
}
