package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog entities are simple lookup rows consumed by joins and foreign
// keys. The dashboard counts them; nothing here carries business rules.

// Branch is a physical clinic/laboratory location.
type Branch struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}

// Patient is a registered patient record.
type Patient struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// Doctor is a referring physician.
type Doctor struct {
	ID        string
	Name      string
	Specialty string
	CreatedAt time.Time
}

// Provider is a supplier of lab materials or services.
type Provider struct {
	ID        string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// Service is a study or test offered by the laboratory.
type Service struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}
