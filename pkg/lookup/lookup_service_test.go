package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kSpets25/expire/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchByBarcodeFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/3017620422003.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"status": 1,
			"product": {
				"code": "3017620422003",
				"product_name": "Nutella",
				"brands": "Ferrero",
				"nutriscore_grade": "e",
				"nutriments": {"energy-kcal_100g": 539},
				"image_small_url": "https://images.example/nutella.jpg"
			}
		}`)
	}))
	defer server.Close()

	svc := NewLookupService(server.URL)

	product, err := svc.SearchByBarcode(context.Background(), "3017620422003")
	require.NoError(t, err)
	assert.Equal(t, "3017620422003", product.Code)
	assert.Equal(t, "Nutella", product.ProductName)
	assert.Equal(t, "Ferrero", product.Brands)
	assert.Equal(t, "e", product.NutriscoreGrade)
	assert.JSONEq(t, `{"energy-kcal_100g": 539}`, string(product.Nutriments))
}

func TestSearchByBarcodeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": 0, "status_verbose": "product not found"}`)
	}))
	defer server.Close()

	svc := NewLookupService(server.URL)

	_, err := svc.SearchByBarcode(context.Background(), "000")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSearchByBarcodeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewLookupService(server.URL)

	_, err := svc.SearchByBarcode(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestSearchByBarcodeUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewLookupService(server.URL)

	_, err := svc.SearchByBarcode(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestSearchByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "peanut butter", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "1", r.URL.Query().Get("search_simple"))
		fmt.Fprint(w, `{
			"products": [
				{"code": "1", "product_name": "Peanut Butter Smooth"},
				{"code": "2", "product_name": "Peanut Butter Crunchy"}
			]
		}`)
	}))
	defer server.Close()

	svc := NewLookupService(server.URL)

	products, err := svc.SearchByName(context.Background(), "peanut butter")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Peanut Butter Smooth", products[0].ProductName)
}

func TestSearchByNameNoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"products": []}`)
	}))
	defer server.Close()

	svc := NewLookupService(server.URL)

	_, err := svc.SearchByName(context.Background(), "zzzz")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
