package impl

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/repository"

	"github.com/pkg/errors"
)

var (
	_ repository.UserRepository     = (*memoryUserRepository)(nil)
	_ repository.PharmacyRepository = (*memoryPharmacyRepository)(nil)
)

// memoryUserRepository keeps users in memory with a unique email constraint.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}
	copied := *user

	return &copied, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, errors.WithStack(repository.ErrUserNotFound)
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errors.WithStack(repository.ErrUserEmailTaken)
		}
	}

	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	stored := *user
	r.users[user.ID] = &stored

	return nil
}

func (r *memoryUserRepository) UpdatePasswordHash(_ context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			user.PasswordHash = passwordHash

			return nil
		}
	}

	return errors.WithStack(repository.ErrUserNotFound)
}

// memoryPharmacyRepository keeps pharmacies in insertion order with a unique
// email constraint and answers queries the way the stores do.
type memoryPharmacyRepository struct {
	mu         sync.Mutex
	nextID     int
	order      []string
	pharmacies map[string]*entity.Pharmacy
}

func newMemoryPharmacyRepository() *memoryPharmacyRepository {
	return &memoryPharmacyRepository{pharmacies: make(map[string]*entity.Pharmacy)}
}

func (r *memoryPharmacyRepository) emailTaken(email, exceptID string) bool {
	for id, pharmacy := range r.pharmacies {
		if id != exceptID && pharmacy.Email == email {
			return true
		}
	}

	return false
}

func (r *memoryPharmacyRepository) Create(_ context.Context, pharmacy *entity.Pharmacy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(pharmacy.Email, "") {
		return errors.WithStack(repository.ErrPharmacyEmailTaken)
	}

	r.nextID++
	pharmacy.ID = "ph-" + strconv.Itoa(r.nextID)
	stored := *pharmacy
	r.pharmacies[pharmacy.ID] = &stored
	r.order = append(r.order, pharmacy.ID)

	return nil
}

func (r *memoryPharmacyRepository) FindAll(_ context.Context) ([]*entity.Pharmacy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pharmacies := make([]*entity.Pharmacy, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.pharmacies[id]
		pharmacies = append(pharmacies, &copied)
	}

	return pharmacies, nil
}

func (r *memoryPharmacyRepository) FindByID(_ context.Context, id string) (*entity.Pharmacy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pharmacy, ok := r.pharmacies[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrPharmacyNotFound)
	}
	copied := *pharmacy

	return &copied, nil
}

func (r *memoryPharmacyRepository) Update(_ context.Context, id string, patch *entity.PharmacyPatch) (*entity.Pharmacy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pharmacy, ok := r.pharmacies[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrPharmacyNotFound)
	}
	if patch.Email != nil && r.emailTaken(*patch.Email, id) {
		return nil, errors.WithStack(repository.ErrPharmacyEmailTaken)
	}

	patch.Apply(pharmacy)
	copied := *pharmacy

	return &copied, nil
}

func (r *memoryPharmacyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pharmacies[id]; !ok {
		return errors.WithStack(repository.ErrPharmacyNotFound)
	}

	delete(r.pharmacies, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

func (r *memoryPharmacyRepository) Aggregate(ctx context.Context, query *repository.PharmacyQuery) ([]*entity.PharmacyMatch, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.PharmacyMatch, 0, len(all))
	for _, pharmacy := range all {
		if query.OnGuardOnly && !pharmacy.IsOnGard {
			continue
		}
		if query.Text != "" && !matchesText(pharmacy, query.Text, query.TextFields) {
			continue
		}

		match := &entity.PharmacyMatch{Pharmacy: pharmacy}
		if query.Near != nil {
			distance := query.Near.DistanceTo(pharmacy.Coordinate())
			if query.MaxDistance > 0 && distance > query.MaxDistance {
				continue
			}
			match.Distance = &distance
		}
		matches = append(matches, match)
	}

	if query.Near != nil {
		sort.SliceStable(matches, func(i, j int) bool {
			return *matches[i].Distance < *matches[j].Distance
		})
	}

	return matches, nil
}

func matchesText(pharmacy *entity.Pharmacy, text string, fields []entity.PharmacyField) bool {
	needle := strings.ToLower(text)
	for _, field := range fields {
		var value string
		switch field {
		case entity.PharmacyFieldName:
			value = pharmacy.Name
		case entity.PharmacyFieldCity:
			value = pharmacy.City
		case entity.PharmacyFieldDetailedAddress:
			value = pharmacy.DetailedAddress
		case entity.PharmacyFieldPhone:
			value = pharmacy.Phone
		case entity.PharmacyFieldEmail:
			value = pharmacy.Email
		case entity.PharmacyFieldDescription:
			value = pharmacy.Description
		}
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}

	return false
}
