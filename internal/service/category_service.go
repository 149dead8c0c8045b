package service

import (
	"strings"

	"github.com/myseringan/texnokross-bolt-sub000/internal/localstore"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/repository"
)

// CategoryService maintains the category registry. Names are unique
// case-insensitively, and all validation runs before any write so a
// rejected edit leaves both stores untouched.
type CategoryService struct {
	repo  repository.CategoryRepository
	local *localstore.Store
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository, local *localstore.Store) *CategoryService {
	return &CategoryService{repo: repo, local: local}
}

// List returns the categories, preferring remote data and falling back to
// the local registry (seeded with defaults) when the remote read fails or
// comes back empty.
func (s *CategoryService) List() []models.Category {
	remote, err := s.repo.List()
	if err != nil {
		logger.Warnw("category_remote_list_failed", "error", err)
		return s.local.ListCategories()
	}
	if len(remote) == 0 {
		return s.local.ListCategories()
	}
	return remote
}

// Get returns one category by ID from the reconciled view.
func (s *CategoryService) Get(id string) (*models.Category, error) {
	for _, cat := range s.List() {
		if cat.ID == id {
			c := cat
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Create validates and adds a category. The slug is derived from the
// primary name.
func (s *CategoryService) Create(name, nameRu string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	if s.nameTaken(name, "") {
		return nil, ErrCategoryNameExists
	}
	category := models.Category{
		ID:     models.NewCategoryID(),
		Name:   name,
		NameRu: strings.TrimSpace(nameRu),
		Slug:   Slugify(name),
	}
	if err := s.persist(append(s.List(), category)); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&category); err != nil {
		logger.Errorw("category_remote_create_failed", "category_id", category.ID, "error", err)
		return &category, ErrRemoteSyncFailed
	}
	return &category, nil
}

// Update validates and renames a category, regenerating its slug.
func (s *CategoryService) Update(id, name, nameRu string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	if s.nameTaken(name, id) {
		return nil, ErrCategoryNameExists
	}
	categories := s.List()
	var updated *models.Category
	for i := range categories {
		if categories[i].ID == id {
			categories[i].Name = name
			categories[i].NameRu = strings.TrimSpace(nameRu)
			categories[i].Slug = Slugify(name)
			updated = &categories[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	if err := s.persist(categories); err != nil {
		return nil, err
	}
	if err := s.repo.Update(updated); err != nil {
		logger.Errorw("category_remote_update_failed", "category_id", id, "error", err)
		return updated, ErrRemoteSyncFailed
	}
	return updated, nil
}

// Delete removes a category. A category still referenced by products is
// kept and the call rejected.
func (s *CategoryService) Delete(id string) error {
	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	categories := s.List()
	remaining := make([]models.Category, 0, len(categories))
	found := false
	for _, cat := range categories {
		if cat.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, cat)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.persist(remaining); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		logger.Errorw("category_remote_delete_failed", "category_id", id, "error", err)
		return ErrRemoteSyncFailed
	}
	return nil
}

func (s *CategoryService) persist(categories []models.Category) error {
	return s.local.SaveCategories(categories)
}

// nameTaken checks the current registry for a case-insensitive name match,
// ignoring the category being edited.
func (s *CategoryService) nameTaken(name, excludeID string) bool {
	lowered := strings.ToLower(name)
	for _, cat := range s.List() {
		if cat.ID == excludeID {
			continue
		}
		if strings.ToLower(cat.Name) == lowered {
			return true
		}
	}
	return false
}
