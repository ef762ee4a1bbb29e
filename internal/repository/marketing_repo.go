package repository

import (
	"context"

	"evermore/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Contact{}).Error
}

type PartnerRepository interface {
	ListActive(ctx context.Context) ([]domain.Partner, error)
	ListFeatured(ctx context.Context) ([]domain.Partner, error)
	ListByCategory(ctx context.Context, category domain.PartnerCategory) ([]domain.Partner, error)
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	CreateInquiry(ctx context.Context, inq *domain.PartnershipInquiry) error
}

type partnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) ListActive(ctx context.Context) ([]domain.Partner, error) {
	return r.listPartners(ctx, r.db.WithContext(ctx).Where("is_active = ?", true))
}

func (r *partnerRepository) ListFeatured(ctx context.Context) ([]domain.Partner, error) {
	return r.listPartners(ctx, r.db.WithContext(ctx).Where("is_active = ? AND featured = ?", true, true))
}

func (r *partnerRepository) ListByCategory(ctx context.Context, category domain.PartnerCategory) ([]domain.Partner, error) {
	return r.listPartners(ctx, r.db.WithContext(ctx).Where("is_active = ? AND category = ?", true, category))
}

func (r *partnerRepository) listPartners(_ context.Context, q *gorm.DB) ([]domain.Partner, error) {
	var partners []domain.Partner
	if err := q.Order("display_order ASC").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	var p domain.Partner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepository) CreateInquiry(ctx context.Context, inq *domain.PartnershipInquiry) error {
	return r.db.WithContext(ctx).Create(inq).Error
}

type ShowcaseRepository interface {
	List(ctx context.Context) ([]domain.ShowcaseGallery, error)
	Create(ctx context.Context, g *domain.ShowcaseGallery) error
	Update(ctx context.Context, g *domain.ShowcaseGallery) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ShowcaseGallery, error)
}

type showcaseRepository struct {
	db *gorm.DB
}

func NewShowcaseRepository(db *gorm.DB) ShowcaseRepository {
	return &showcaseRepository{db: db}
}

func (r *showcaseRepository) List(ctx context.Context) ([]domain.ShowcaseGallery, error) {
	var galleries []domain.ShowcaseGallery
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&galleries).Error
	if err != nil {
		return nil, err
	}
	return galleries, nil
}

func (r *showcaseRepository) Create(ctx context.Context, g *domain.ShowcaseGallery) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *showcaseRepository) Update(ctx context.Context, g *domain.ShowcaseGallery) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *showcaseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ShowcaseGallery{}).Error
}

func (r *showcaseRepository) GetByID(ctx context.Context, id string) (*domain.ShowcaseGallery, error) {
	var g domain.ShowcaseGallery
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
