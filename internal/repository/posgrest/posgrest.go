package posgrest

import (
	"context"
	"errors"

	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"gorm.io/gorm"
)

// OrderRepository is the GORM-backed order store. It owns orders, their
// refunds and their audit notes.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		db,
	}
}

// FindByID retrieves a single order by its ID, or nil when no such order
// exists. Errors are reserved for store failures.
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// FindByTransactionID retrieves the most recent order carrying the given
// SimPay transaction id. A missing match is not an error; refund
// notifications for unknown transactions are ignored upstream.
func (r *OrderRepository) FindByTransactionID(ctx context.Context, transactionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("simpay_transaction_id = ?", transactionID).
		Order("created_at DESC").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Save persists the full order state.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// AddNote appends an audit note to an order.
func (r *OrderRepository) AddNote(ctx context.Context, orderID uint, note string) error {
	return r.db.WithContext(ctx).Create(&models.OrderNote{
		OrderID: orderID,
		Note:    note,
	}).Error
}

// Refunds lists the refunds recorded against an order.
func (r *OrderRepository) Refunds(ctx context.Context, orderID uint) ([]models.Refund, error) {
	var refunds []models.Refund
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&refunds).Error; err != nil {
		return nil, err
	}
	return refunds, nil
}

// CreateRefund inserts a new refund record.
func (r *OrderRepository) CreateRefund(ctx context.Context, refund *models.Refund) error {
	return r.db.WithContext(ctx).Create(refund).Error
}
