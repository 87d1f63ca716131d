package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hitechrobotics/catalog-api/app/helpers"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/repositories"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	OrderAcknowledgement   = "Your request has been received. We’ll contact you soon."
	ContactAcknowledgement = "Your message has been received. We’ll contact you soon."
)

type OrderInput struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=50"`
	CompanyName string `json:"company_name" validate:"max=300"`
	Email       string `json:"email" validate:"required,max=254,simple_email"`
	Phone       string `json:"phone" validate:"required,phone"`
	OrderType   string `json:"order_type" validate:"required,oneof=buy rent"`
	Product     string `json:"product" validate:"required"`
	Message     string `json:"message" validate:"max=5000"`
}

type ContactInput struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,max=254,simple_email"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	Message     string `json:"message" validate:"required,min=5,max=5000"`
}

var submissionMessages = map[string]string{
	"full_name.min":      "Full name must be at least 3 characters long.",
	"full_name.max":      "Full name cannot exceed 50 characters.",
	"email.simple_email": "Enter a valid email address.",
	"phone.phone":        "Enter a valid phone number (e.g., +998991234567).",
	"phone_number.phone": "Enter a valid phone number (e.g., +998991234567).",
	"order_type.oneof":   "Order type must be 'buy' or 'rent'.",
	"product.required":   "Product must be selected.",
	"message.min":        "Message must be at least 5 characters long.",
	"message.max":        "Message must be 5000 characters or fewer.",
	"company_name.max":   "Company name cannot exceed 300 characters.",
}

type SubmissionService struct {
	productRepo repositories.ProductRepositoryImpl
	orderRepo   repositories.OrderRepository
	contactRepo repositories.ContactRepository
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewSubmissionService wires the order and contact forms. Phone numbers must
// have between minDigits and maxDigits digits, optionally after a leading +.
func NewSubmissionService(
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	contactRepo repositories.ContactRepository,
	minDigits, maxDigits int,
	logger *slog.Logger,
) *SubmissionService {
	return &SubmissionService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		contactRepo: contactRepo,
		validate:    NewValidator(minDigits, maxDigits),
		logger:      logger.With(slog.String("component", "submission_service")),
	}
}

// NewValidator returns a validator that names fields by their json tag and
// knows the "phone" and "simple_email" rules.
func NewValidator(minDigits, maxDigits int) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(helpers.JSONFieldName)

	phoneRegex := regexp.MustCompile(fmt.Sprintf(`^\+?\d{%d,%d}$`, minDigits, maxDigits))
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

func (s *SubmissionService) check(input interface{}) (ValidationErrors, error) {
	verrs := ValidationErrors{}
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("validate %T: %w", input, err)
		}
		verrs.merge(helpers.FormatValidationErrors(fieldErrs, submissionMessages))
	}
	return verrs, nil
}

// SubmitOrder validates an order request and stores it. Every rejected field
// is reported at once; nothing is written unless all checks pass.
func (s *SubmissionService) SubmitOrder(ctx context.Context, in OrderInput) (*models.Order, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.OrderType = strings.TrimSpace(in.OrderType)
	in.Product = strings.TrimSpace(in.Product)
	in.Message = strings.TrimSpace(in.Message)

	verrs, err := s.check(&in)
	if err != nil {
		return nil, err
	}

	var product *models.Product
	if !verrs.Has("product") {
		product, err = s.lookupProduct(ctx, in.Product, verrs)
		if err != nil {
			return nil, err
		}
	}

	if product != nil {
		switch in.OrderType {
		case models.OrderTypeBuy:
			if !product.IsAvailableForSale {
				verrs.Add("product", "This product is not available for sale.")
			}
		case models.OrderTypeRent:
			if !product.IsAvailableForRent {
				verrs.Add("product", "This product is not available for rent.")
			}
		}
	}

	if len(verrs) > 0 {
		s.logger.Info("order rejected", slog.Any("errors", map[string][]string(verrs)))
		return nil, verrs
	}

	order := &models.Order{
		ProductID:   product.ID,
		FullName:    in.FullName,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		OrderType:   in.OrderType,
		Message:     in.Message,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.Product = product

	s.logger.Info("order stored",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.String("product", product.Slug),
		slog.String("order_type", order.OrderType),
	)
	return order, nil
}

func (s *SubmissionService) lookupProduct(ctx context.Context, raw string, verrs ValidationErrors) (*models.Product, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		verrs.Add("product", "Incorrect type. Expected pk value.")
		return nil, nil
	}
	product, err := s.productRepo.GetByID(ctx, uint(id))
	if err != nil {
		return nil, fmt.Errorf("load product %d: %w", id, err)
	}
	if product == nil {
		verrs.Add("product", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
	}
	return product, nil
}

func (s *SubmissionService) SubmitContact(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Message = strings.TrimSpace(in.Message)

	verrs, err := s.check(&in)
	if err != nil {
		return nil, err
	}
	if len(verrs) > 0 {
		s.logger.Info("contact message rejected", slog.Any("errors", map[string][]string(verrs)))
		return nil, verrs
	}

	msg := &models.ContactMessage{
		FullName:    in.FullName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Message:     in.Message,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	s.logger.Info("contact message stored", slog.Uint64("message_id", uint64(msg.ID)))
	return msg, nil
}

func (s *SubmissionService) ListOrders(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	return s.orderRepo.GetAllOrders(ctx, limit, offset)
}

func (s *SubmissionService) ListContactMessages(ctx context.Context, limit, offset int) ([]models.ContactMessage, int64, error) {
	return s.contactRepo.GetAll(ctx, limit, offset)
}
