package services

import (
	"context"
	"fmt"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
	"routerider/internal/metrics"
	"routerider/internal/repositories"
	"routerider/internal/utils"
)

// PopularLimit is how many routes the popular listing considers. The
// cut happens before category filters run, so a filtered popular list
// can come back shorter than the limit, or empty.
const PopularLimit = 12

type RouteService struct {
	Routes    repositories.RouteStore
	RequestID string
}

// Search returns routes matching the origin/destination query, then
// narrows them by the selected filters. The travel date is accepted
// for forward compatibility but does not narrow results; every route
// runs daily.
func (s RouteService) Search(ctx context.Context, query domain.SearchQuery, filters domain.Filters) ([]models.Route, error) {
	routes, err := s.Routes.Search(ctx, query.Origin, query.Destination)
	if err != nil {
		return nil, err
	}
	routes = domain.ApplyFilters(routes, filters)
	metrics.RouteSearches.Inc()
	utils.LogEvent(s.RequestID, "routes", "search",
		fmt.Sprintf("origin=%q destination=%q results=%d", query.Origin, query.Destination, len(routes)))
	return routes, nil
}

// Popular lists the most available routes, truncated to PopularLimit
// before the filters apply.
func (s RouteService) Popular(ctx context.Context, filters domain.Filters) ([]models.Route, error) {
	routes, err := s.Routes.ListPopular(ctx, PopularLimit)
	if err != nil {
		return nil, err
	}
	return domain.ApplyFilters(routes, filters), nil
}

func (s RouteService) GetByID(ctx context.Context, id int) (models.Route, error) {
	return s.Routes.GetByID(ctx, id)
}
