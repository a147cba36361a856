package services

import (
	"context"

	apperrors "verde/internal/errors"
	"verde/internal/events"
	"verde/internal/models"
)

// CategoryView is a category with its display label ("Parent > Child").
type CategoryView struct {
	models.Category
	Label string `json:"label"`
}

// AddCategory creates a category with a fresh id.
func (f *Finance) AddCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	category.ID = f.newID(models.PrefixCategory)

	err := f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		if err := validateCategory(s, category); err != nil {
			return nil, err
		}
		s.Categories = append(s.Categories, category)
		return one(event(events.CollectionCategories, events.ActionCreated, category.ID,
			map[string]any{"name": category.Name, "type": category.Type})), nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory merges patch into the category with id. Unknown ids are
// ignored.
func (f *Finance) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) error {
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.CategoryIndex(id)
		if i < 0 {
			return nil, nil
		}
		updated := s.Categories[i]
		patch.Apply(&updated)
		if err := validateCategory(s, updated); err != nil {
			return nil, err
		}
		if updated.Equal(s.Categories[i]) {
			return nil, nil
		}
		s.Categories[i] = updated
		return one(event(events.CollectionCategories, events.ActionUpdated, id, nil)), nil
	})
}

// DeleteCategory removes the category with id and detaches its children.
// Transactions and budgets that reference it are left as they are.
func (f *Finance) DeleteCategory(ctx context.Context, id string) error {
	if _, ok := models.SystemCategory(id); ok {
		return apperrors.ErrSystemCategory
	}
	return f.commit(ctx, func(s *models.State) ([]events.Event, error) {
		i := s.CategoryIndex(id)
		if i < 0 {
			return nil, nil
		}
		s.Categories = append(s.Categories[:i:i], s.Categories[i+1:]...)

		detached := 0
		for j := range s.Categories {
			if p := s.Categories[j].ParentID; p != nil && *p == id {
				s.Categories[j].ParentID = nil
				detached++
			}
		}
		return one(event(events.CollectionCategories, events.ActionDeleted, id,
			map[string]any{"detached_children": detached})), nil
	})
}

// GetCategory returns the category with id, including system categories.
func (f *Finance) GetCategory(id string) (*models.Category, error) {
	var (
		c  models.Category
		ok bool
	)
	f.view(func(s *models.State) { c, ok = s.Category(id) })
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &c, nil
}

// ListCategories returns user categories, optionally filtered by type, with
// their display labels.
func (f *Finance) ListCategories(categoryType *models.CategoryType) []CategoryView {
	out := []CategoryView{}
	f.view(func(s *models.State) {
		for _, c := range s.Categories {
			if categoryType != nil && c.Type != *categoryType {
				continue
			}
			out = append(out, CategoryView{Category: c, Label: s.CategoryLabel(c.ID)})
		}
	})
	return out
}
