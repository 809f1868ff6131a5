package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kSpets25/expire/domain"
)

const DefaultBaseURL = "https://world.openfoodfacts.org"

type (
	// LookupService proxies product searches to the Open Food Facts
	// database. Results are display metadata only; nothing is persisted
	// here.
	LookupService interface {
		SearchByBarcode(ctx context.Context, barcode string) (domain.Product, error)
		SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	}

	lookupService struct {
		baseURL string
		client  *http.Client
	}
)

func NewLookupService(baseURL string) LookupService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &lookupService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *lookupService) SearchByBarcode(ctx context.Context, barcode string) (domain.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(barcode))

	var result struct {
		Status  int            `json:"status"`
		Product domain.Product `json:"product"`
	}
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return domain.Product{}, err
	}

	// status 1 means found; anything else is an unknown barcode.
	if result.Status != 1 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if result.Product.Code == "" {
		result.Product.Code = barcode
	}

	return result.Product, nil
}

func (s *lookupService) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	endpoint := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&json=1",
		s.baseURL, url.QueryEscape(name),
	)

	var result struct {
		Products []domain.Product `json:"products"`
	}
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	if len(result.Products) == 0 {
		return nil, domain.ErrProductNotFound
	}

	return result.Products, nil
}

func (s *lookupService) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", domain.ErrLookupFailed, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}

	return nil
}
