package service

import (
	"fmt"
	"strings"

	"github.com/dafibh/budgetly/budgetly-backend/internal/domain"
	"github.com/dafibh/budgetly/budgetly-backend/internal/websocket"
	"github.com/google/uuid"
)

// CategoryService handles category-related business logic
type CategoryService struct {
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *CategoryService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *CategoryService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CategoryInput holds the user-editable fields of a category
type CategoryInput struct {
	ID    string
	Name  string
	Color string
}

func (in CategoryInput) toCategory(id string) domain.Category {
	return domain.Category{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Color: strings.ToUpper(strings.TrimSpace(in.Color)),
	}
}

// CreateCategory validates and stores a new category. A random id is assigned
// when the input has none.
func (s *CategoryService) CreateCategory(input CategoryInput) (domain.Category, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.New().String()
	}
	category := input.toCategory(id)
	if err := category.Validate(); err != nil {
		return domain.Category{}, err
	}

	created, err := s.categoryRepo.Create(category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeCreated, websocket.EntityTypeCategory, created))
	return created, nil
}

// GetCategories returns all categories in insertion order
func (s *CategoryService) GetCategories() []domain.Category {
	return s.categoryRepo.Snapshot()
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(id string) (domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// UpdateCategory replaces the name and color of an existing category
func (s *CategoryService) UpdateCategory(id string, input CategoryInput) (domain.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Category{}, domain.ErrIDRequired
	}
	category := input.toCategory(id)
	if err := category.Validate(); err != nil {
		return domain.Category{}, err
	}

	updated, err := s.categoryRepo.Update(category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("update category %s: %w", id, err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeUpdated, websocket.EntityTypeCategory, updated))
	return updated, nil
}

// DeleteCategory removes a category. Transactions and budgets that reference it
// are left untouched and render with a fallback name.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}

	s.publishEvent(websocket.EntityChanged(websocket.EventTypeDeleted, websocket.EntityTypeCategory, map[string]string{"id": id}))
	return nil
}
