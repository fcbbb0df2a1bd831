package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job representa una vacante publicada por una empresa.
// CompanyID es referencia exclusiva: toda vacante pertenece a exactamente una empresa.
type Job struct {
	ID           string
	CompanyID    string
	Title        string
	Requirements JobRequirements
	Closed       bool // true = no acepta nuevas postulaciones (irreversible)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobRequirements detalle de la vacante. Todos los campos son obligatorios al crear.
type JobRequirements struct {
	Type          string // full-time, part-time, contract
	Category      string
	Experience    string
	Location      string
	PostDate      time.Time
	OfferedSalary decimal.Decimal
	Description   string
}

// JobListing vacante con la proyección de la empresa para listados públicos.
type JobListing struct {
	Job
	CompanyName  string
	CompanyEmail string
}
