package checkout

import (
	"context"
	"fmt"
	"strings"

	"ballisticmarket/domain"
	"ballisticmarket/pkg/logger"
	"ballisticmarket/pkg/metrics"
)

// UserRepository contract interface
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// CartRepository contract interface
type CartRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]domain.CartRow, error)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) (err error)
}

// TxRepos are the repositories rebound to one database transaction. Order
// header, line items, purchase-feed rows and cart clearing commit or roll
// back together.
type TxRepos interface {
	Orders() OrderWriter
	OrderItems() OrderItemWriter
	Cart() CartWriter
	RecentPurchases() RecentPurchaseWriter
}

type OrderWriter interface {
	Create(ctx context.Context, order *domain.Order) error
}

type OrderItemWriter interface {
	Create(ctx context.Context, item *domain.OrderItem) error
}

type CartWriter interface {
	Delete(ctx context.Context, userID, productID uint) error
}

type RecentPurchaseWriter interface {
	Create(ctx context.Context, purchase *domain.RecentPurchase) error
}

// TransactionManager hides transaction begin/commit/rollback from the service.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}

type CheckoutService struct {
	tx         TransactionManager
	userRepo   UserRepository
	cartRepo   CartRepository
	notifRepo  NotificationRepository
	adminEmail string
}

func NewCheckoutService(
	tx TransactionManager,
	userRepo UserRepository,
	cartRepo CartRepository,
	notifRepo NotificationRepository,
	adminEmail string,
) *CheckoutService {
	return &CheckoutService{
		tx:         tx,
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		notifRepo:  notifRepo,
		adminEmail: adminEmail,
	}
}

// PlaceOrder converts the user's cart into an order. Preconditions are
// checked in a fixed sequence and the first failure wins: authentication,
// complete profile, non-empty cart. The total uses each product's price at
// checkout time, not the price when it entered the cart.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, customerNotes string) (domain.Order, error) {
	if userID == 0 {
		return domain.Order{}, domain.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.Order{}, err
	}

	if !user.HasCompleteProfile() {
		return domain.Order{}, fmt.Errorf("%w: please complete your profile before placing an order", domain.ErrPreconditionFailed)
	}

	cartRows, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(cartRows) == 0 {
		return domain.Order{}, fmt.Errorf("%w: cart is empty", domain.ErrPreconditionFailed)
	}

	var total float64
	for _, row := range cartRows {
		total += row.Price * float64(row.Quantity)
	}

	order := domain.Order{
		UserID:        userID,
		TotalAmount:   total,
		Status:        domain.OrderStatusPending,
		CustomerNotes: customerNotes,
	}

	err = s.tx.WithinTx(ctx, func(r TxRepos) error {
		if err := r.Orders().Create(ctx, &order); err != nil {
			return err
		}

		for _, row := range cartRows {
			if err := r.OrderItems().Create(ctx, &domain.OrderItem{
				OrderID:   order.ID,
				ProductID: row.ProductID,
				Quantity:  row.Quantity,
				Price:     row.Price,
			}); err != nil {
				return err
			}

			if err := r.RecentPurchases().Create(ctx, &domain.RecentPurchase{
				ProductName: row.Name,
				BuyerName:   user.BuyerName(),
			}); err != nil {
				return err
			}

			if err := r.Cart().Delete(ctx, userID, row.ProductID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	metrics.OrdersCreated.Inc()

	// Best effort; a failed mail must never fail a committed order.
	s.notifyOperator(order, cartRows, user)

	return order, nil
}

const orderMailTemplate = `<h2>New Order Received</h2>
<p><strong>Order ID:</strong> %d</p>
<p><strong>Customer:</strong> %s</p>
<p><strong>Steam Profile:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Bank:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Total:</strong> $%.2f</p>
<h3>Items:</h3>
<pre>%s</pre>
%s
<p>Login to admin panel to manage this order.</p>`

func (s *CheckoutService) notifyOperator(order domain.Order, rows []domain.CartRow, user domain.User) {
	if s.adminEmail == "" {
		return
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s x%d - $%.2f", row.Name, row.Quantity, row.Price*float64(row.Quantity)))
	}

	contactEmail := user.Email
	if contactEmail == "" {
		contactEmail = "Not provided"
	}

	notesBlock := ""
	if order.CustomerNotes != "" {
		notesBlock = fmt.Sprintf("<p><strong>Customer Notes:</strong> %s</p>", order.CustomerNotes)
	}

	subject := fmt.Sprintf("New Order #%d - BallisticWorks Market", order.ID)
	body := fmt.Sprintf(orderMailTemplate,
		order.ID,
		user.BuyerName(),
		user.ProfileURL,
		user.PhoneNumber,
		user.BankNumber,
		contactEmail,
		order.TotalAmount,
		strings.Join(lines, "\n"),
		notesBlock,
	)

	if err := s.notifRepo.SendEmail("Operator", s.adminEmail, subject, body); err != nil {
		metrics.OrderEmailFailures.Inc()
		logger.Error("Order notification email failed", err, "order_id", order.ID)
	}
}
