package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBrandRequired = errors.New("brand is required")
	ErrModelRequired = errors.New("model is required")
	ErrInvalidPlate  = errors.New("invalid license plate")
	ErrInvalidYear   = errors.New("invalid year of production")
)

const minYearOfProduction = 1950

type Vehicle struct {
	id           uuid.UUID
	customerID   uuid.UUID
	brand        string
	model        string
	licensePlate string
	vin          string
	year         int
	mileage      int
	createdAt    time.Time
}

func NewVehicle(customerID uuid.UUID, brand, model, licensePlate, vin string, year, mileage int) (*Vehicle, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrBrandRequired
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, ErrModelRequired
	}

	plate := normalizePlate(licensePlate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}

	if year != 0 && (year < minYearOfProduction || year > time.Now().Year()+1) {
		return nil, ErrInvalidYear
	}
	if mileage < 0 {
		mileage = 0
	}

	return &Vehicle{
		id:           uuid.New(),
		customerID:   customerID,
		brand:        brand,
		model:        model,
		licensePlate: plate,
		vin:          strings.ToUpper(strings.TrimSpace(vin)),
		year:         year,
		mileage:      mileage,
		createdAt:    time.Now(),
	}, nil
}

// Plates are stored upper-cased without internal whitespace so that search
// and uniqueness checks are canonical.
func normalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.ReplaceAll(plate, " ", "")
}

func (v *Vehicle) ID() uuid.UUID         { return v.id }
func (v *Vehicle) CustomerID() uuid.UUID { return v.customerID }
func (v *Vehicle) Brand() string         { return v.brand }
func (v *Vehicle) Model() string         { return v.model }
func (v *Vehicle) LicensePlate() string  { return v.licensePlate }
func (v *Vehicle) VIN() string           { return v.vin }
func (v *Vehicle) Year() int             { return v.year }
func (v *Vehicle) Mileage() int          { return v.mileage }
func (v *Vehicle) CreatedAt() time.Time  { return v.createdAt }
