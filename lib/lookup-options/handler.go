package lookupoptions

import (
	"context"

	lookupcache "leave-desk-backend/lib/lookup-cache"
	sheetschema "leave-desk-backend/lib/sheet-schema"
	"leave-desk-backend/models"
)

type Provider interface {
	Get(ctx context.Context) models.LookupOptions
}

var Instance Provider

func NewHandler(cache lookupcache.Provider, sheet string) {
	Instance = NewInstance(cache, sheet)
}

func NewInstance(cache lookupcache.Provider, sheet string) Provider {
	return impl{
		cache:  cache,
		ranges: lookupcache.RangeCandidates(sheet, "B", "Z"),
	}
}

type impl struct {
	cache  lookupcache.Provider
	ranges []string
}

func (i impl) Get(ctx context.Context) models.LookupOptions {
	grid := i.cache.FetchRange(ctx, lookupcache.DatasetLookups, i.ranges)
	return sheetschema.ParseLookupOptions(grid)
}
