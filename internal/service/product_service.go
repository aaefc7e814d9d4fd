package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_manager/internal/model"
	"inventory_manager/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ValidationError reports which field of a product request was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProductService defines operations for products
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, term string) ([]model.Product, error)
	Create(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id int64, req model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// List returns all products, newest first. Each call re-queries the store.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Search performs a case-insensitive substring match on the product name.
// A blank term is equivalent to List.
func (s *productService) Search(ctx context.Context, term string) ([]model.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.List(ctx)
	}
	products, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func (s *productService) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	name, quantity, err := validateProduct(req)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:      name,
		Price:     req.Price,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, req model.ProductRequest) (*model.Product, error) {
	name, quantity, err := validateProduct(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	existing.Name = name
	existing.Price = req.Price
	existing.Quantity = quantity

	if err := s.repo.Update(ctx, existing); err != nil {
		// The row can vanish between FindByID and the UPDATE; report that
		// the same way as a miss on the initial lookup.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	return existing, nil
}

// Delete removes a product. Deleting an id that no longer exists is a
// success no-op so the operation stays idempotent.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}

func validateProduct(req model.ProductRequest) (string, int, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", 0, &ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if req.Price < 0 {
		return "", 0, &ValidationError{Field: "price", Message: "price must be a non-negative amount"}
	}
	quantity := 0
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return "", 0, &ValidationError{Field: "quantity", Message: "quantity must not be negative"}
		}
		quantity = *req.Quantity
	}
	return name, quantity, nil
}
