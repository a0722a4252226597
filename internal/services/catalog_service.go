package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/avelara/storefront-be/internal/models"
)

// CatalogServiceProvider defines the interface for catalog services.
type CatalogServiceProvider interface {
	AddCategory(name, description string) (models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(id, name, description string) error
	DeleteCategory(id string) error
	AddProduct(name string, price float64, description, categoryName string) (models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsByCategory(categoryID string) ([]models.Product, error)
}

// CatalogService provides business logic for categories and products.
type CatalogService struct {
	db *sql.DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{db: db}
}

// scanCategory is a helper to scan a category from a row or rows object.
func scanCategory(scanner interface{ Scan(...interface{}) error }) (models.Category, error) {
	var cat models.Category
	var desc sql.NullString

	err := scanner.Scan(&cat.ID, &cat.Name, &desc, &cat.CreatedAt)
	if err != nil {
		return cat, err
	}
	cat.Description = desc.String
	return cat, nil
}

// AddCategory adds a new category. Names are not required to be unique;
// multiple categories may share one.
func (s *CatalogService) AddCategory(name, description string) (models.Category, error) {
	cat := models.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
	}

	stmt, err := s.db.Prepare("INSERT INTO categories(id, name, description) VALUES(?, ?, ?)")
	if err != nil {
		return models.Category{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(cat.ID, cat.Name, toNullString(cat.Description))
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// GetAllCategories retrieves all categories in insertion order.
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query("SELECT id, name, description, created_at FROM categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// UpdateCategory replaces the name and description of the matching category.
// An unknown id is a silent no-op, matching the delete behavior.
func (s *CatalogService) UpdateCategory(id, name, description string) error {
	_, err := s.db.Exec("UPDATE categories SET name = ?, description = ? WHERE id = ?",
		name, toNullString(description), id)
	return err
}

// DeleteCategory removes a category if present. Products referencing it keep
// their now-dangling category id; an unknown id is a silent no-op.
func (s *CatalogService) DeleteCategory(id string) error {
	_, err := s.db.Exec("DELETE FROM categories WHERE id = ?", id)
	return err
}

// resolveCategory maps a category name to a category id, creating the
// category when no exact name match exists. The lookup and the insert are not
// atomic: concurrent calls with the same unseen name can each create their
// own category record.
func (s *CatalogService) resolveCategory(name string) (string, error) {
	var id string
	row := s.db.QueryRow("SELECT id FROM categories WHERE name = ? LIMIT 1", name)
	err := row.Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	id = uuid.New().String()
	_, err = s.db.Exec("INSERT INTO categories(id, name) VALUES(?, ?)", id, name)
	if err != nil {
		return "", fmt.Errorf("failed to create category %q: %w", name, err)
	}
	return id, nil
}

// AddProduct creates a product, resolving the supplied category name to a
// category id first. An empty category name leaves the product uncategorized.
func (s *CatalogService) AddProduct(name string, price float64, description, categoryName string) (models.Product, error) {
	var categoryID string
	if categoryName != "" {
		id, err := s.resolveCategory(categoryName)
		if err != nil {
			return models.Product{}, err
		}
		categoryID = id
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Price:       price,
		Description: description,
		CategoryID:  categoryID,
	}

	stmt, err := s.db.Prepare("INSERT INTO products(id, name, price, description, category_id) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Product{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(product.ID, product.Name, product.Price, product.Description, toNullString(product.CategoryID))
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// scanProduct is a helper to scan a product from a row or rows object.
func scanProduct(scanner interface{ Scan(...interface{}) error }) (models.Product, error) {
	var p models.Product
	var categoryID sql.NullString

	err := scanner.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &categoryID, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	p.CategoryID = categoryID.String
	return p, nil
}

// GetAllProducts retrieves all products unfiltered.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	rows, err := s.db.Query("SELECT id, name, price, description, category_id, created_at FROM products")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// GetProductsByCategory retrieves products whose category reference equals
// the given id. An unknown id yields an empty slice, not an error; the
// category itself is never checked for existence.
func (s *CatalogService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	rows, err := s.db.Query("SELECT id, name, price, description, category_id, created_at FROM products WHERE category_id = ?", categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
