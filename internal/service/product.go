package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenledger/backend/config"
	"github.com/ovenledger/backend/internal/models"
	"github.com/ovenledger/backend/internal/types"
)

// ProductService handles sellable products, their recipe bindings and
// packages. The S3 config may be nil, in which case image upload is
// unavailable but everything else works.
type ProductService struct {
	db *gorm.DB
	s3 *config.S3Config
}

func NewProductService(db *gorm.DB, s3cfg *config.S3Config) *ProductService {
	return &ProductService{db: db, s3: s3cfg}
}

func (s *ProductService) Create(ctx context.Context, userID uuid.UUID, req types.ProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		UserID:      userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return s.createOptions(tx, &product, userID, req)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, product.ID)
}

// Update replaces the product's fields and its whole option set atomically.
func (s *ProductService) Update(ctx context.Context, userID, id uuid.UUID, req types.ProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product.Name = req.Name
		product.Description = req.Description
		product.Price = decimal.NewFromFloat(req.Price)
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductOption{}).Error; err != nil {
			return err
		}
		return s.createOptions(tx, &product, userID, req)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, product.ID)
}

func (s *ProductService) createOptions(tx *gorm.DB, product *models.Product, userID uuid.UUID, req types.ProductRequest) error {
	var packageID *uuid.UUID
	if req.PackageID != "" {
		pid, err := uuid.Parse(req.PackageID)
		if err != nil {
			return err
		}
		var pkg models.Package
		if err := tx.First(&pkg, "id = ? AND user_id = ?", pid, userID).Error; err != nil {
			return err
		}
		packageID = &pid
	}

	for _, raw := range req.RecipeIDs {
		recipeID, err := uuid.Parse(raw)
		if err != nil {
			return err
		}
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
			return err
		}
		option := models.ProductOption{
			ProductID: product.ID,
			RecipeID:  recipeID,
			PackageID: packageID,
			UserID:    userID,
		}
		if err := tx.Create(&option).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ProductService) List(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Options").
		Where("user_id = ?", userID).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Preload("Options").
		First(&product, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	product, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(product).Error
	})
}

// UploadImage stores the product image in S3 under a per-product key and
// saves a presigned URL on the product.
func (s *ProductService) UploadImage(ctx context.Context, userID, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (string, error) {
	if s.s3 == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	product, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%s/%s%s", product.ID, uuid.New(), filepath.Ext(header.Filename))
	_, err = s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url, err := s.s3.GeneratePresignedURL(ctx, key, 7*24*time.Hour)
	if err != nil {
		return "", err
	}

	product.ImageURL = url
	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return "", err
	}
	return url, nil
}

// Packages

func (s *ProductService) CreatePackage(ctx context.Context, userID uuid.UUID, name string) (*models.Package, error) {
	pkg := models.Package{Name: name, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *ProductService) ListPackages(ctx context.Context, userID uuid.UUID) ([]models.Package, error) {
	var packages []models.Package
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *ProductService) DeletePackage(ctx context.Context, userID, id uuid.UUID) error {
	var pkg models.Package
	if err := s.db.WithContext(ctx).First(&pkg, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return err
	}

	var refs int64
	if err := s.db.WithContext(ctx).Model(&models.ProductOption{}).
		Where("package_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("package is referenced by product options")
	}
	return s.db.WithContext(ctx).Delete(&pkg).Error
}
