package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, PaginationParams{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, Paginate(items, PaginationParams{Page: 3, Limit: 2}))
	assert.Empty(t, Paginate(items, PaginationParams{Page: 4, Limit: 2}))

	result := CreatePaginationResult(nil, int64(len(items)), PaginationParams{Page: 1, Limit: 2})
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=0&limit=500", nil)

	params := GetPaginationParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
}

func TestValidationErrorsUseJSONNames(t *testing.T) {
	type request struct {
		Name  string  `json:"name" validate:"required,notblank"`
		SKU   string  `json:"sku" validate:"sku"`
		Price float64 `json:"price" validate:"gt=0"`
	}

	errs := GetValidationErrors(ValidateStruct(&request{Name: " ", SKU: "A\nB"}))
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	assert.Equal(t, "notblank", byField["name"].Tag)
	assert.Equal(t, "sku", byField["sku"].Tag)
	assert.Equal(t, "price must be greater than 0", byField["price"].Message)

	assert.Empty(t, GetValidationErrors(ValidateStruct(&request{Name: "x", SKU: "SKU-1", Price: 1})))
}
