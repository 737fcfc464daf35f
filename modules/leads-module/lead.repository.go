package leads_module

import (
	"context"
	"time"

	"gorm.io/gorm"

	"leadcapture/database"
	"leadcapture/database/entities"
)

// Repository is the storage access layer for leads. Every call borrows one
// pooled connection for its duration and is bounded by timeout.
type Repository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewRepository(db *gorm.DB, timeout time.Duration) *Repository {
	return &Repository{db: db, timeout: timeout}
}

func (r *Repository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *Repository) withTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := r.bound(ctx)
	return r.db.WithContext(ctx), cancel
}

// Create inserts a lead and returns its id. gorm runs the insert in its own
// transaction, so a failed write leaves no row behind.
func (r *Repository) Create(ctx context.Context, in LeadPayload) (uint, error) {
	db, cancel := r.withTimeout(ctx)
	defer cancel()
	lead := entities.Lead{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Interest: in.Interest,
	}
	if err := db.Create(&lead).Error; err != nil {
		return 0, translateError(err)
	}
	return lead.ID, nil
}

// GetAll returns every lead, most recent first. A read fault is an error,
// never an empty result.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Lead, error) {
	db, cancel := r.withTimeout(ctx)
	defer cancel()
	var leads []entities.Lead
	if err := db.Order("registered_at DESC").Order("id DESC").Find(&leads).Error; err != nil {
		return nil, translateError(err)
	}
	if leads == nil {
		leads = []entities.Lead{}
	}
	return leads, nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (entities.Lead, error) {
	db, cancel := r.withTimeout(ctx)
	defer cancel()
	var lead entities.Lead
	if err := db.Where("id = ?", id).First(&lead).Error; err != nil {
		return entities.Lead{}, translateError(err)
	}
	return lead, nil
}

// Update replaces the four mutable fields in a single statement.
func (r *Repository) Update(ctx context.Context, id uint, in LeadPayload) error {
	db, cancel := r.withTimeout(ctx)
	defer cancel()
	res := db.Model(&entities.Lead{}).Where("id = ?", id).Updates(map[string]any{
		"full_name": in.FullName,
		"email":     in.Email,
		"phone":     in.Phone,
		"interest":  in.Interest,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	db, cancel := r.withTimeout(ctx)
	defer cancel()
	res := db.Where("id = ?", id).Delete(&entities.Lead{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return translateError(database.Ping(ctx, r.db))
}
