package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownItem     = errors.New("menu item not found")
	ErrUnknownLocation = errors.New("location not found")
)

type MenuItemDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type LocationDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Delivers    bool            `json:"delivers"`
}

// Ext talks to the catalog service, which owns menu prices and restaurant
// locations.
type Ext struct {
	HTTP           *http.Client
	CatalogBaseURL string
}

func NewExt(catalogBaseURL string) *Ext {
	return &Ext{
		HTTP:           &http.Client{Timeout: 5 * time.Second},
		CatalogBaseURL: catalogBaseURL,
	}
}

func (e *Ext) FetchMenuItem(ctx context.Context, id string) (*MenuItemDTO, error) {
	var m MenuItemDTO
	if err := e.get(ctx, fmt.Sprintf("%s/menu-items/%s", e.CatalogBaseURL, id), ErrUnknownItem, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (e *Ext) FetchLocation(ctx context.Context, id string) (*LocationDTO, error) {
	var l LocationDTO
	if err := e.get(ctx, fmt.Sprintf("%s/locations/%s", e.CatalogBaseURL, id), ErrUnknownLocation, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (e *Ext) get(ctx context.Context, url string, notFound error, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := e.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(res.Body).Decode(out)
	case http.StatusNotFound:
		return notFound
	default:
		return fmt.Errorf("catalog %s: %s", url, res.Status)
	}
}
