package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodisbae/foodisbae-backend/internal/cart"
	"github.com/foodisbae/foodisbae-backend/pkg/db/models"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	pkgerrors "github.com/foodisbae/foodisbae-backend/pkg/errors"
	"github.com/foodisbae/foodisbae-backend/pkg/logger"
	"github.com/foodisbae/foodisbae-backend/pkg/metrics"
	"github.com/foodisbae/foodisbae-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies who is calling an order operation.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// Service defines order operations for customers and staff.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	Get(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, params pagination.Params, filters ListFilters) (*OrderList, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*OrderDTO, error)
}

type cartProvider interface {
	Get(ctx context.Context, userID uuid.UUID) (*cart.Summary, error)
	Clear(ctx context.Context, userID uuid.UUID) (*cart.Summary, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo    Repository
	cart    cartProvider
	tx      txRunner
	logg    *logger.Logger
	metrics *metrics.DomainMetrics
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Repo    Repository
	Cart    cartProvider
	Tx      txRunner
	Logger  *logger.Logger
	Metrics *metrics.DomainMetrics
}

// NewService constructs an orders service. Logger and metrics may be nil in tests.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart provider is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{
		repo:    params.Repo,
		cart:    params.Cart,
		tx:      params.Tx,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Checkout turns the user's current cart into a pending order. Only the line
// name, quantity, and add-time price are copied into the snapshot; the total
// is frozen from the cart and never recomputed.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error) {
	summary, err := s.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := make([]models.OrderItem, 0, len(summary.Items))
	for _, line := range summary.Items {
		items = append(items, models.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	var order *models.Order
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		created, createErr := s.repo.WithTx(tx).Create(ctx, &models.Order{
			UserID: userID,
			Total:  summary.TotalPrice,
			Status: enums.OrderStatusPending,
			Items:  items,
		})
		if createErr != nil {
			return createErr
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}

	// The order is committed at this point; a failed clear must not fail
	// the checkout, or a retry would create a second order.
	if _, err := s.cart.Clear(ctx, userID); err != nil {
		if s.logg != nil {
			logCtx := s.logg.WithFields(ctx, map[string]any{
				"order_id": order.ID.String(),
				"user_id":  userID.String(),
			})
			s.logg.Error(logCtx, "orders.checkout.cart_clear_failed", err)
		}
	}

	s.metrics.IncOrderCreated(enums.OrderStatusPending.String())
	return FromModel(order), nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return fromModels(orders), nil
}

func (s *service) Get(ctx context.Context, actor Actor, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && !actor.Role.IsStaff() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user")
	}
	return FromModel(order), nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters ListFilters) (*OrderList, error) {
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return list, nil
}

// UpdateStatus applies a guarded transition: pending orders can move to
// delivered or cancelled, and both of those are terminal.
func (s *service) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*OrderDTO, error) {
	next, err := enums.ParseOrderStatus(strings.TrimSpace(status))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == next {
		return FromModel(order), nil
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", order.Status, next),
		)
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}

	s.metrics.IncOrderTransition(order.Status.String(), next.String())
	order.Status = next
	return FromModel(order), nil
}

func (s *service) findOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup order")
	}
	return order, nil
}
