package views

import (
	"time"

	"github.com/hitechrobotics/catalog-api/app/models"
)

type OrderedProduct struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type OrderView struct {
	FullName    string         `json:"fullName"`
	CompanyName string         `json:"companyName,omitempty"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	OrderType   string         `json:"orderType"`
	Product     OrderedProduct `json:"product"`
	Message     string         `json:"message"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type OrderReceipt struct {
	ID      uint      `json:"id"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Order   OrderView `json:"order"`
}

func Order(c Context, o *models.Order) OrderView {
	v := OrderView{
		FullName:    o.FullName,
		CompanyName: o.CompanyName,
		Email:       o.Email,
		Phone:       o.Phone,
		OrderType:   o.OrderType,
		Product:     OrderedProduct{ID: o.ProductID},
		Message:     o.Message,
		CreatedAt:   o.CreatedAt,
	}
	if o.Product != nil {
		v.Product.Name = c.T(o.Product.Name)
		v.Product.Slug = o.Product.Slug
	}
	return v
}

func OrderAccepted(c Context, o *models.Order, acknowledgement string) OrderReceipt {
	return OrderReceipt{
		ID:      o.ID,
		Status:  "ok",
		Message: acknowledgement,
		Order:   Order(c, o),
	}
}

// InboxOrder is an order as listed to staff.
type InboxOrder struct {
	ID uint `json:"id"`
	OrderView
}

func InboxOrders(c Context, orders []models.Order) []InboxOrder {
	out := make([]InboxOrder, 0, len(orders))
	for i := range orders {
		out = append(out, InboxOrder{ID: orders[i].ID, OrderView: Order(c, &orders[i])})
	}
	return out
}

type ContactView struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ContactReceipt struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    ContactView `json:"data"`
}

func ContactMessage(m *models.ContactMessage) ContactView {
	return ContactView{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
	}
}

func ContactAccepted(m *models.ContactMessage, acknowledgement string) ContactReceipt {
	return ContactReceipt{
		Status:  "ok",
		Message: acknowledgement,
		Data:    ContactMessage(m),
	}
}

func ContactMessages(messages []models.ContactMessage) []ContactView {
	out := make([]ContactView, 0, len(messages))
	for i := range messages {
		out = append(out, ContactMessage(&messages[i]))
	}
	return out
}
