package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/foodisbae/foodisbae-backend/internal/orders"
	"github.com/foodisbae/foodisbae-backend/internal/reservations"
	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
)

const recentLimit = 5

// Stats is the admin console landing payload.
type Stats struct {
	TotalOrders        int64                         `json:"total_orders"`
	TotalReservations  int64                         `json:"total_reservations"`
	TotalMenuItems     int64                         `json:"total_menu_items"`
	TotalRevenue       decimal.Decimal               `json:"total_revenue"`
	RecentOrders       []orders.OrderDTO             `json:"recent_orders"`
	RecentReservations []reservations.ReservationDTO `json:"recent_reservations"`
}

type orderStats interface {
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
}

type reservationStats interface {
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Reservation, error)
}

type menuStats interface {
	Count(ctx context.Context) (int64, error)
}

// Service aggregates the stats shown on the admin dashboard.
type Service struct {
	orders       orderStats
	reservations reservationStats
	menu         menuStats
}

// NewService constructs a dashboard service over the three domain repos.
func NewService(orderRepo orderStats, reservationRepo reservationStats, menuRepo menuStats) (*Service, error) {
	if orderRepo == nil || reservationRepo == nil || menuRepo == nil {
		return nil, fmt.Errorf("all dashboard repositories are required")
	}
	return &Service{
		orders:       orderRepo,
		reservations: reservationRepo,
		menu:         menuRepo,
	}, nil
}

// Stats gathers the counters and the five most recent orders and reservations.
// Revenue is the sum over every order regardless of status.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count orders")
	}
	totalReservations, err := s.reservations.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count reservations")
	}
	totalMenuItems, err := s.menu.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count menu items")
	}
	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sum revenue")
	}

	recentOrders, err := s.orders.Recent(ctx, recentLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recent orders")
	}
	recentReservations, err := s.reservations.Recent(ctx, recentLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recent reservations")
	}

	stats := &Stats{
		TotalOrders:        totalOrders,
		TotalReservations:  totalReservations,
		TotalMenuItems:     totalMenuItems,
		TotalRevenue:       revenue,
		RecentOrders:       make([]orders.OrderDTO, 0, len(recentOrders)),
		RecentReservations: make([]reservations.ReservationDTO, 0, len(recentReservations)),
	}
	for i := range recentOrders {
		stats.RecentOrders = append(stats.RecentOrders, *orders.FromModel(&recentOrders[i]))
	}
	for i := range recentReservations {
		stats.RecentReservations = append(stats.RecentReservations, *reservations.FromModel(&recentReservations[i]))
	}
	return stats, nil
}
