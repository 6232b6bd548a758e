package customer

import (
	"errors"
	"strings"
	"time"

	"workshop-admin-api/internal/domain/phone"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("first and last name are required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrUnknownRegion = errors.New("unknown phone region")
)

type Customer struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	email        string
	phone        string
	phoneCountry string
	companyName  string
	address      string
	createdAt    time.Time
}

func NewCustomer(firstName, lastName, email, rawPhone, phoneCountry, companyName, address string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}

	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	if phoneCountry == "" {
		phoneCountry = "PL"
	}
	country, err := phone.CountryByCode(phoneCountry)
	if err != nil {
		return nil, ErrUnknownRegion
	}
	formatted := phone.Format(rawPhone, country)
	if phone.Digits(rawPhone) != "" && formatted == "" {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		phone:        formatted,
		phoneCountry: country.Code,
		companyName:  strings.TrimSpace(companyName),
		address:      strings.TrimSpace(address),
		createdAt:    time.Now(),
	}, nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) PhoneCountry() string { return c.phoneCountry }
func (c *Customer) CompanyName() string  { return c.companyName }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
