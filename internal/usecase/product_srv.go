package usecase

import (
	"context"
	"fmt"

	"organic-store/internal/data/entity"
	"organic-store/internal/data/repository"
	"organic-store/internal/dto/request"

	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, req *request.ProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id int64, req *request.ProductRequest) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (s *productService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.repo.Product.List(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to load products")
	}
	return products, nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to load product")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		Stock:       req.Stock,
		Description: req.Description,
		Image:       req.Image,
		Featured:    req.Featured,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
	)

	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, req *request.ProductRequest) (*entity.Product, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product for update", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to load product")
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	// Full-record update; the admin panel always sends every field
	product.Name = req.Name
	product.Category = req.Category
	product.Price = req.Price
	product.Unit = req.Unit
	product.Stock = req.Stock
	product.Description = req.Description
	product.Image = req.Image
	product.Featured = req.Featured

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to update product")
	}

	s.log.Info("Product updated", zap.Int64("product_id", id))

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product for delete", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to load product")
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to delete product")
	}

	s.log.Info("Product deleted", zap.Int64("product_id", id))

	return nil
}
