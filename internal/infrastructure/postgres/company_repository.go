package postgres

import (
	"context"
	"fmt"

	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, email, email_verified, password_hash, phone,
	address_street, address_city, address_state, address_country, description,
	otp_code, otp_expires_at, created_at, updated_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Email, company.EmailVerified, company.PasswordHash,
		company.Phone, company.Address.Street, company.Address.City, company.Address.State,
		company.Address.Country, company.Description, company.OTPCode, company.OTPExpiresAt,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getBy("id", id)
}

// GetByEmail obtiene una empresa por email.
func (r *CompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	return r.getBy("email", email)
}

func (r *CompanyRepo) getBy(field, value string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + field + ` = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.Name, &c.Email, &c.EmailVerified, &c.PasswordHash, &c.Phone,
		&c.Address.Street, &c.Address.City, &c.Address.State, &c.Address.Country,
		&c.Description, &c.OTPCode, &c.OTPExpiresAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by %s: %w", field, err)
	}
	return &c, nil
}

// Update actualiza una empresa existente (incluye OTP y flag de verificación).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, email_verified = $4, password_hash = $5,
			phone = $6, address_street = $7, address_city = $8, address_state = $9,
			address_country = $10, description = $11, otp_code = $12, otp_expires_at = $13,
			updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Email, company.EmailVerified, company.PasswordHash,
		company.Phone, company.Address.Street, company.Address.City, company.Address.State,
		company.Address.Country, company.Description, company.OTPCode, company.OTPExpiresAt,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
