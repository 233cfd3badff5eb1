package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/localvendor/backend/internal/domain/report"
	"github.com/localvendor/backend/internal/domain/shared"
)

// Cache is a best-effort byte cache for report payloads. A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
}

// Cache keys for the three report queries.
const (
	cacheKeyRevenue = "report:revenue"
	cacheKeySales   = "report:sales"
	cacheKeyStock   = "report:stock"
)

// DefaultCacheTTL bounds the staleness of cached report payloads.
const DefaultCacheTTL = 30 * time.Second

// ReportService serves aggregate reports over persisted invoices and stock
type ReportService struct {
	reports report.Repository
	cache   Cache
	ttl     time.Duration
}

// NewReportService creates a new report service. cache may be nil.
func NewReportService(reports report.Repository, cache Cache) *ReportService {
	return &ReportService{
		reports: reports,
		cache:   cache,
		ttl:     DefaultCacheTTL,
	}
}

// WithCacheTTL overrides the cache TTL. Non-positive values keep the default.
func (s *ReportService) WithCacheTTL(ttl time.Duration) *ReportService {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

// TotalRevenue returns the sum of qty*price over all invoice items
func (s *ReportService) TotalRevenue(ctx context.Context) (*RevenueResponse, error) {
	if cached, ok := s.fromCache(ctx, cacheKeyRevenue, &RevenueResponse{}); ok {
		return cached.(*RevenueResponse), nil
	}

	summary, err := s.reports.TotalRevenue(ctx)
	if err != nil {
		return nil, storageError("compute total revenue", err)
	}

	resp := ToRevenueResponse(summary)
	s.toCache(ctx, cacheKeyRevenue, resp)
	return resp, nil
}

// SalesByProduct returns total quantity sold per product
func (s *ReportService) SalesByProduct(ctx context.Context) ([]ProductSalesResponse, error) {
	if cached, ok := s.fromCache(ctx, cacheKeySales, &[]ProductSalesResponse{}); ok {
		return *cached.(*[]ProductSalesResponse), nil
	}

	rows, err := s.reports.SalesByProduct(ctx)
	if err != nil {
		return nil, storageError("compute sales by product", err)
	}

	resp := ToProductSalesResponses(rows)
	s.toCache(ctx, cacheKeySales, &resp)
	return resp, nil
}

// StockSnapshot returns current stock per product
func (s *ReportService) StockSnapshot(ctx context.Context) ([]StockLevelResponse, error) {
	if cached, ok := s.fromCache(ctx, cacheKeyStock, &[]StockLevelResponse{}); ok {
		return *cached.(*[]StockLevelResponse), nil
	}

	rows, err := s.reports.StockSnapshot(ctx)
	if err != nil {
		return nil, storageError("compute stock snapshot", err)
	}

	resp := ToStockLevelResponses(rows)
	s.toCache(ctx, cacheKeyStock, &resp)
	return resp, nil
}

// InvalidateAll drops cached report payloads, called after invoice creation
func (s *ReportService) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, cacheKeyRevenue, cacheKeySales, cacheKeyStock)
}

func (s *ReportService) fromCache(ctx context.Context, key string, target any) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return nil, false
	}
	return target, true
}

func (s *ReportService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, s.ttl)
}

func storageError(op string, err error) error {
	domainErr := &shared.DomainError{}
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return shared.NewStorageError(fmt.Sprintf("Failed to %s: %v", op, err))
}
