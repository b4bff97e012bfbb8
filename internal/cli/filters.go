package cli

import (
	"context"

	"github.com/comunidad/feedquery/internal/logging"
	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/record"
)

// ApplyQuery runs one list query over records and logs the filter pass:
// the active criteria, the size of the collection before filtering and the
// number of matches. A warning is logged when a non-empty collection yields
// no matches.
func ApplyQuery(
	ctx context.Context,
	engine *query.Engine,
	records []record.Record,
	spec query.FilterSpec,
	req pagination.PageRequest,
) query.PageResult {
	log := logging.FromContext(ctx)

	result := engine.FilterAndSort(records, spec, req)

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "apply_query").
		Str("search", spec.SearchTerm).
		Str("category", spec.Category).
		Str("sort_by", string(spec.Key())).
		Str("sort_order", string(spec.EffectiveOrder())).
		Int("before", len(records)).
		Int("after", result.Total).
		Int("page", result.Page).
		Msg("applied query")

	if result.Total == 0 && len(records) > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_query").
			Int("original_count", len(records)).
			Msg("no records match filter criteria")
	}

	return result
}
