package handler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/notify"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Store is the persistence the handlers need; database.Store implements it.
type Store interface {
	Ping(ctx context.Context) error

	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error

	ListMenuItems(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, int64, error)
	GetMenuItem(ctx context.Context, id uint) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *model.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uint) error

	ListEvents(ctx context.Context, p model.Pagination) ([]model.Event, int64, error)
	GetEvent(ctx context.Context, id uint) (*model.Event, error)
	CreateEvent(ctx context.Context, event *model.Event) error
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id uint) error

	CreateRSVP(ctx context.Context, rsvp *model.EventRSVP) error
	ListRSVPs(ctx context.Context, filter model.RSVPFilter) ([]model.EventRSVP, int64, error)
	GetRSVP(ctx context.Context, id uint) (*model.EventRSVP, error)
	UpdateRSVPStatus(ctx context.Context, id uint, status string) (*model.EventRSVP, error)
	DeleteRSVP(ctx context.Context, id uint) error

	ListActivePromotions(ctx context.Context, p model.Pagination) ([]model.Promotion, int64, error)
	GetPromotion(ctx context.Context, id uint) (*model.Promotion, error)
	FindPromotionByCode(ctx context.Context, code string) (*model.Promotion, error)
	CreatePromotion(ctx context.Context, promo *model.Promotion) error
	UpdatePromotion(ctx context.Context, promo *model.Promotion) error
	DeactivatePromotion(ctx context.Context, id uint) (*model.Promotion, error)

	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, int64, error)
	GetReservation(ctx context.Context, id uint) (*model.Reservation, error)
	BookedSlots(ctx context.Context, date utils.CustomDate) ([]string, error)
	CreateReservation(ctx context.Context, reservation *model.Reservation) error
	UpdateReservationStatus(ctx context.Context, id uint, status string) (*model.Reservation, error)

	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, int64, error)
	GetTransaction(ctx context.Context, id uint) (*model.Transaction, error)
	CreateTransaction(ctx context.Context, txn *model.Transaction) error
	UpdateTransactionStatus(ctx context.Context, id uint, status string) (*model.Transaction, error)
}

// FeedSource delivers realtime feed payloads; notify.Redis implements it.
type FeedSource interface {
	Subscribe(ctx context.Context, fn func(payload []byte) error) error
}

type Options struct {
	Store    Store
	Tokens   *helper.TokenIssuer
	Notifier notify.Publisher
	Mailer   utils.Mailer
	Feed     FeedSource
	Log      *slog.Logger
	TaxRate  decimal.Decimal
	Now      func() time.Time
}

type Handler struct {
	store    Store
	tokens   *helper.TokenIssuer
	notifier notify.Publisher
	mailer   utils.Mailer
	feed     FeedSource
	log      *slog.Logger
	taxRate  decimal.Decimal
	now      func() time.Time
}

func New(opts Options) *Handler {
	h := &Handler{
		store:    opts.Store,
		tokens:   opts.Tokens,
		notifier: opts.Notifier,
		mailer:   opts.Mailer,
		feed:     opts.Feed,
		log:      opts.Log,
		taxRate:  opts.TaxRate,
		now:      opts.Now,
	}
	if h.notifier == nil {
		h.notifier = notify.Nop{}
	}
	if h.mailer == nil {
		h.mailer = utils.NopMailer{}
	}
	if h.log == nil {
		h.log = utils.DiscardLogger()
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h *Handler) HasFeed() bool {
	return h.feed != nil
}

func (h *Handler) Health(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unavailable", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

// fail maps store and domain errors to responses; notFound is the 404 message.
func (h *Handler) fail(c *fiber.Ctx, err error, notFound string) error {
	var required *helper.RequiredItemError
	switch {
	case errors.Is(err, database.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound, err)
	case errors.Is(err, database.ErrEventFull):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_AT_CAPACITY, err)
	case errors.Is(err, database.ErrSlotTaken):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SLOT_ALREADY_BOOKED, err)
	case errors.Is(err, database.ErrDuplicateCode):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PROMOTION_CODE_EXISTS, err)
	case errors.Is(err, database.ErrDuplicateEmail):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_ALREADY_EXISTS, err)
	case errors.Is(err, helper.ErrPromotionInvalid):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PROMOTION_INVALID, err)
	case errors.As(err, &required):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, required.Error(), err)
	case errors.Is(err, helper.ErrInvalidDiscount):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DISCOUNT_AMOUNT, err)
	}
	h.log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

// publish sends a feed message; failures are logged and never reach the client.
func (h *Handler) publish(eventType string, data any) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := h.notifier.Publish(ctx, notify.NewMessage(eventType, data)); err != nil {
		h.log.Warn("publish failed", "type", eventType, "error", err)
	}
}

func inputId(c *fiber.Ctx) uint {
	id, _ := c.Locals("inputId").(uint)
	return id
}

func imageUrl(c *fiber.Ctx) (string, bool) {
	url, ok := c.Locals("imageUrl").(string)
	return url, ok && url != ""
}

func listResponse(c *fiber.Ctx, rows any, total int64, p model.Pagination) error {
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      p.Limit,
		Page:       p.Page,
		TotalCount: total,
	})
}

// copyOption converts wire types while copying create inputs into models.
var copyOption = copier.Option{
	IgnoreEmpty: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: model.Amount(""),
			DstType: decimal.Decimal{},
			Fn: func(src interface{}) (interface{}, error) {
				return src.(model.Amount).Decimal()
			},
		},
		{
			SrcType: "",
			DstType: utils.CustomDate{},
			Fn: func(src interface{}) (interface{}, error) {
				return utils.ParseDate(src.(string))
			},
		},
	},
}
