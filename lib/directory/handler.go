package directoryhandler

import (
	"context"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	sheetschema "leave-desk-backend/lib/sheet-schema"
	"leave-desk-backend/models"
)

type Provider interface {
	List(ctx context.Context) []models.EmployeeRecord
	GetByEmail(ctx context.Context, email string) *models.EmployeeRecord
}

var Instance Provider

func NewHandler(cache lookupcache.Provider, sheet string) {
	Instance = NewInstance(cache, sheet)
}

func NewInstance(cache lookupcache.Provider, sheet string) Provider {
	return impl{
		cache:  cache,
		ranges: lookupcache.RangeCandidates(sheet, "Z", "H"),
	}
}

type impl struct {
	cache  lookupcache.Provider
	ranges []string
}

func (i impl) List(ctx context.Context) []models.EmployeeRecord {
	grid := i.cache.FetchRange(ctx, lookupcache.DatasetDirectory, i.ranges)
	return sheetschema.ParseDirectory(grid)
}

func (i impl) GetByEmail(ctx context.Context, email string) *models.EmployeeRecord {
	rec, ok := sheetschema.FindEmployee(i.List(ctx), email)
	if !ok {
		return nil
	}
	return &rec
}
