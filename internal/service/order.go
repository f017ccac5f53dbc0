package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/database"
	"github.com/bakehouse/api/internal/enum"
	"github.com/bakehouse/api/internal/orderform"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Errors returned by the order gateway.
var (
	ErrProductRequired = errors.New("product is required")
	ErrProductMismatch = errors.New("draft product does not match product")
)

// OrderStore defines the DB methods needed to persist orders.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
}

// OrderGateway writes confirmed drafts to the orders table.
type OrderGateway struct {
	store OrderStore
}

// NewOrderGateway creates a new OrderGateway.
func NewOrderGateway(store OrderStore) *OrderGateway {
	return &OrderGateway{store: store}
}

// Submit inserts one order row for draft and returns the stored record.
// The draft is expected to be validated already; total is the price the
// customer reviewed. Orders are cash on delivery and recorded as completed.
func (g *OrderGateway) Submit(ctx context.Context, draft orderform.Draft, product *catalog.Product, total decimal.Decimal) (*database.Order, error) {
	if product == nil {
		return nil, ErrProductRequired
	}
	if draft.ProductID != product.ID {
		return nil, ErrProductMismatch
	}

	order, err := g.store.CreateOrder(ctx, buildOrderParams(draft, product, total))
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

func buildOrderParams(draft orderform.Draft, product *catalog.Product, total decimal.Decimal) database.CreateOrderParams {
	arg := database.CreateOrderParams{
		ProductID:           product.ID,
		ProductName:         product.Name,
		Size:                draft.Size,
		DeliveryLocation:    draft.DeliveryLocation,
		DeliveryDate:        pgtype.Date{Time: orderform.DateOf(draft.DeliveryDate), Valid: !draft.DeliveryDate.IsZero()},
		DeliveryTime:        draft.DeliveryTime,
		SpecialInstructions: optionalText(draft.SpecialInstructions),
		CustomerName:        draft.CustomerName,
		CustomerEmail:       draft.CustomerEmail,
		CustomerPhone:       draft.CustomerPhone,
		PaymentMethod:       enum.PaymentMethodCOD,
		PaymentStatus:       enum.PaymentStatusCompleted,
		TotalAmount:         decimalToNumeric(total),
	}

	// Cake options are stored only for cakes; other products leave them NULL.
	if product.IsCake() {
		if draft.Layers != nil {
			arg.Layers = pgtype.Int4{Int32: int32(*draft.Layers), Valid: true}
		}
		arg.Flavor = optionalText(draft.Flavor)
		arg.Filling = optionalText(draft.Filling)
		arg.Topping = optionalText(draft.Topping)
		arg.NameOnCake = optionalText(draft.NameOnCake)
	}
	return arg
}

func optionalText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// NumericToDecimal converts a pgtype.Numeric to decimal.Decimal.
func NumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
