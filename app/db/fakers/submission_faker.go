package fakers

import (
	"math/rand"
	"strconv"

	"github.com/go-faker/faker/v4"
	"github.com/hitechrobotics/catalog-api/app/models"
	"github.com/hitechrobotics/catalog-api/app/services"
)

// fakePhone is a + followed by 12 digits.
func fakePhone() string {
	digits := make([]byte, 12)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	digits[0] = '9'
	return "+" + string(digits)
}

// OrderFaker returns a valid order request for product.
func OrderFaker(product *models.Product) services.OrderInput {
	orderType := models.OrderTypeBuy
	if product.IsAvailableForRent && (!product.IsAvailableForSale || rand.Intn(2) == 0) {
		orderType = models.OrderTypeRent
	}
	return services.OrderInput{
		FullName:    faker.FirstName() + " " + faker.LastName(),
		CompanyName: faker.LastName() + " LLC",
		Email:       faker.Email(),
		Phone:       fakePhone(),
		OrderType:   orderType,
		Product:     strconv.FormatUint(uint64(product.ID), 10),
		Message:     faker.Sentence(),
	}
}

func ContactFaker() services.ContactInput {
	return services.ContactInput{
		FullName:    faker.FirstName() + " " + faker.LastName(),
		Email:       faker.Email(),
		PhoneNumber: fakePhone(),
		Message:     faker.Paragraph(),
	}
}
