package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipes-api/backend/internal/model"
)

// MockRecipeStore is a mock implementation of the recipe store
type MockRecipeStore struct {
	mock.Mock
}

// FindAll mocks the FindAll method
func (m *MockRecipeStore) FindAll(ctx context.Context) ([]*model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

// FindByID mocks the FindByID method
func (m *MockRecipeStore) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// Create mocks the Create method
func (m *MockRecipeStore) Create(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// Update mocks the Update method
func (m *MockRecipeStore) Update(ctx context.Context, id uint, recipe *model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, id, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockRecipeStore) Delete(ctx context.Context, id uint) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}
