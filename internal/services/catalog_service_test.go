package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avelara/storefront-be/internal/database"
)

// CatalogServiceTestSuite runs the catalog service against an in-memory database.
type CatalogServiceTestSuite struct {
	suite.Suite
	svc *CatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	db, err := database.New(":memory:")
	require.NoError(s.T(), err, "failed to create test database")
	// A pooled :memory: connection would get a fresh empty database
	db.SetMaxOpenConns(1)
	require.NoError(s.T(), database.Migrate(db))
	s.svc = NewCatalogService(db)
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	if s.svc != nil {
		s.svc.db.Close()
	}
}

func (s *CatalogServiceTestSuite) TestAddAndListCategories() {
	cat, err := s.svc.AddCategory("Electronics", "Devices and gadgets")
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), cat.ID)

	categories, err := s.svc.GetAllCategories()
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 1)
	assert.Equal(s.T(), "Electronics", categories[0].Name)
	assert.Equal(s.T(), "Devices and gadgets", categories[0].Description)
}

func (s *CatalogServiceTestSuite) TestDuplicateCategoryNamesAllowed() {
	_, err := s.svc.AddCategory("Books", "")
	require.NoError(s.T(), err)
	_, err = s.svc.AddCategory("Books", "Paperbacks")
	require.NoError(s.T(), err)

	categories, err := s.svc.GetAllCategories()
	require.NoError(s.T(), err)
	assert.Len(s.T(), categories, 2)
}

func (s *CatalogServiceTestSuite) TestUpdateCategory() {
	cat, err := s.svc.AddCategory("Electronics", "old")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.svc.UpdateCategory(cat.ID, "Gadgets", "new"))

	categories, err := s.svc.GetAllCategories()
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 1)
	assert.Equal(s.T(), "Gadgets", categories[0].Name)
	assert.Equal(s.T(), "new", categories[0].Description)
}

func (s *CatalogServiceTestSuite) TestUpdateCategoryUnknownIDIsNoop() {
	assert.NoError(s.T(), s.svc.UpdateCategory("no-such-id", "X", "Y"))
}

func (s *CatalogServiceTestSuite) TestDeleteCategoryUnknownIDIsNoop() {
	assert.NoError(s.T(), s.svc.DeleteCategory("no-such-id"))
}

func (s *CatalogServiceTestSuite) TestDeleteCategoryLeavesDanglingProducts() {
	cat, err := s.svc.AddCategory("Electronics", "Devices")
	require.NoError(s.T(), err)

	product, err := s.svc.AddProduct("Laptop", 1200.99, "Fast", "Electronics")
	require.NoError(s.T(), err)
	require.Equal(s.T(), cat.ID, product.CategoryID)

	require.NoError(s.T(), s.svc.DeleteCategory(cat.ID))

	products, err := s.svc.GetAllProducts()
	require.NoError(s.T(), err)
	require.Len(s.T(), products, 1)
	assert.Equal(s.T(), cat.ID, products[0].CategoryID, "reference survives category deletion")
}

func (s *CatalogServiceTestSuite) TestAddProductCreatesMissingCategory() {
	product, err := s.svc.AddProduct("Laptop", 1200.99, "Fast", "Electronics")
	require.NoError(s.T(), err)

	categories, err := s.svc.GetAllCategories()
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 1, "exactly one category auto-created")
	assert.Equal(s.T(), "Electronics", categories[0].Name)
	assert.Empty(s.T(), categories[0].Description, "auto-created category has no description")
	assert.Equal(s.T(), categories[0].ID, product.CategoryID)
}

func (s *CatalogServiceTestSuite) TestAddProductReusesExistingCategory() {
	cat, err := s.svc.AddCategory("Electronics", "Devices")
	require.NoError(s.T(), err)

	p1, err := s.svc.AddProduct("Laptop", 1200.99, "Fast", "Electronics")
	require.NoError(s.T(), err)
	p2, err := s.svc.AddProduct("Phone", 699.50, "Shiny", "Electronics")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), cat.ID, p1.CategoryID)
	assert.Equal(s.T(), cat.ID, p2.CategoryID)

	categories, err := s.svc.GetAllCategories()
	require.NoError(s.T(), err)
	assert.Len(s.T(), categories, 1, "no duplicate category created")
}

func (s *CatalogServiceTestSuite) TestAddProductWithoutCategory() {
	product, err := s.svc.AddProduct("Mystery box", 9.99, "Who knows", "")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), product.CategoryID)

	categories, err := s.svc.GetAllCategories()
	require.NoError(s.T(), err)
	assert.Empty(s.T(), categories)
}

func (s *CatalogServiceTestSuite) TestGetProductsByCategory() {
	cat, err := s.svc.AddCategory("Electronics", "Devices")
	require.NoError(s.T(), err)

	p1, err := s.svc.AddProduct("Laptop", 1200.99, "Fast", "Electronics")
	require.NoError(s.T(), err)
	_, err = s.svc.AddProduct("Novel", 14.99, "Long", "Books")
	require.NoError(s.T(), err)

	products, err := s.svc.GetProductsByCategory(cat.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), products, 1)
	assert.Equal(s.T(), p1.ID, products[0].ID)
}

func (s *CatalogServiceTestSuite) TestGetProductsByCategoryUnknownID() {
	products, err := s.svc.GetProductsByCategory("no-such-id")
	require.NoError(s.T(), err, "unknown category id is not an error")
	assert.NotNil(s.T(), products)
	assert.Empty(s.T(), products)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
