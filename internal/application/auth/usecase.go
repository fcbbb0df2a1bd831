package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
	"github.com/empleolibre/empleo-api/pkg/jwt"
	"github.com/empleolibre/empleo-api/pkg/logger"
	"github.com/empleolibre/empleo-api/pkg/otp"
)

// Mailer es el contrato mínimo para la entrega de códigos OTP por correo.
// Lo implementa mail.GomailSender; la interfaz permite un fake en tests.
type Mailer interface {
	Send(to, subject, body string) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro con OTP, login y restablecimiento de contraseña para
// empresas y postulantes. El hash bcrypt es un paso explícito del registro,
// nunca un hook de persistencia.
type AuthUseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	mailer      Mailer
	jwtCfg      JWTConfig
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(companyRepo repository.CompanyRepository, userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{companyRepo: companyRepo, userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, log: log}
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas
// ──────────────────────────────────────────────────────────────────────────────

// RegisterCompany crea una empresa sin verificar: hashea el password, genera un
// OTP y lo envía por correo. El fallo del correo no falla el registro (el OTP se
// puede reenviar con password-reset-request).
func (uc *AuthUseCase) RegisterCompany(in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	existing, err := uc.companyRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	code, expires, err := uc.newOTP()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		EmailVerified: false,
		PasswordHash:  string(hash),
		Phone:         in.Phone,
		Address: entity.Address{
			Street:  in.Address.Street,
			City:    in.Address.City,
			State:   in.Address.State,
			Country: in.Address.Country,
		},
		Description:  in.Description,
		OTPCode:      code,
		OTPExpiresAt: expires,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	uc.sendOTP(company.Email, code)
	return &dto.RegisterCompanyResponse{
		Message: "empresa registrada, verifique su email con el código enviado",
		Company: *toCompanyResponse(company),
	}, nil
}

// VerifyCompanyOTP verifica el código de registro y marca el email de la empresa.
func (uc *AuthUseCase) VerifyCompanyOTP(in dto.VerifyOTPRequest) error {
	company, err := uc.companyRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := checkOTP(in.Code, company.OTPCode, company.OTPExpiresAt); err != nil {
		return err
	}
	company.EmailVerified = true
	company.OTPCode = ""
	company.OTPExpiresAt = nil
	company.UpdatedAt = time.Now()
	return uc.companyRepo.Update(company)
}

// LoginCompany verifica credenciales y firma un JWT con principal "empresa".
// Requiere email verificado.
func (uc *AuthUseCase) LoginCompany(in dto.LoginRequest) (*dto.LoginResponse, error) {
	company, err := uc.companyRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !company.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, company.ID, jwt.PrincipalEmpresa, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Message: "sesión iniciada", Token: token}, nil
}

// RequestCompanyPasswordReset genera un OTP nuevo y lo envía por correo.
func (uc *AuthUseCase) RequestCompanyPasswordReset(in dto.PasswordResetRequest) error {
	company, err := uc.companyRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	code, expires, err := uc.newOTP()
	if err != nil {
		return err
	}
	company.OTPCode = code
	company.OTPExpiresAt = expires
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return err
	}
	uc.sendOTP(company.Email, code)
	return nil
}

// ResetCompanyPassword verifica el OTP y persiste el nuevo hash.
func (uc *AuthUseCase) ResetCompanyPassword(in dto.ResetPasswordRequest) error {
	company, err := uc.companyRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if err := checkOTP(in.Code, company.OTPCode, company.OTPExpiresAt); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	company.PasswordHash = string(hash)
	company.OTPCode = ""
	company.OTPExpiresAt = nil
	company.UpdatedAt = time.Now()
	return uc.companyRepo.Update(company)
}

// ──────────────────────────────────────────────────────────────────────────────
// Postulantes
// ──────────────────────────────────────────────────────────────────────────────

// RegisterUser crea un postulante sin verificar, con OTP enviado por correo.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterUserRequest) (*dto.RegisterUserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	code, expires, err := uc.newOTP()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		EmailVerified: false,
		PasswordHash:  string(hash),
		Phone:         in.Phone,
		PictureURL:    in.PictureURL,
		ResumeURL:     in.ResumeURL,
		OTPCode:       code,
		OTPExpiresAt:  expires,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.sendOTP(user.Email, code)
	return &dto.RegisterUserResponse{
		Message: "postulante registrado, verifique su email con el código enviado",
		User:    *toUserResponse(user),
	}, nil
}

// VerifyUserOTP verifica el código de registro y marca el email del postulante.
func (uc *AuthUseCase) VerifyUserOTP(in dto.VerifyOTPRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := checkOTP(in.Code, user.OTPCode, user.OTPExpiresAt); err != nil {
		return err
	}
	user.EmailVerified = true
	user.OTPCode = ""
	user.OTPExpiresAt = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// LoginUser verifica credenciales y firma un JWT con principal "postulante".
func (uc *AuthUseCase) LoginUser(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, jwt.PrincipalPostulante, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Message: "sesión iniciada", Token: token}, nil
}

// RequestUserPasswordReset genera un OTP nuevo y lo envía por correo.
func (uc *AuthUseCase) RequestUserPasswordReset(in dto.PasswordResetRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	code, expires, err := uc.newOTP()
	if err != nil {
		return err
	}
	user.OTPCode = code
	user.OTPExpiresAt = expires
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	uc.sendOTP(user.Email, code)
	return nil
}

// ResetUserPassword verifica el OTP y persiste el nuevo hash.
func (uc *AuthUseCase) ResetUserPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := checkOTP(in.Code, user.OTPCode, user.OTPExpiresAt); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.OTPCode = ""
	user.OTPExpiresAt = nil
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers OTP
// ──────────────────────────────────────────────────────────────────────────────

func (uc *AuthUseCase) newOTP() (string, *time.Time, error) {
	code, err := otp.Generate()
	if err != nil {
		return "", nil, err
	}
	expires := time.Now().Add(otp.TTL)
	return code, &expires, nil
}

// sendOTP entrega el código por correo. Es best-effort: el fallo se registra,
// no se propaga (el código se puede reenviar).
func (uc *AuthUseCase) sendOTP(email, code string) {
	body := "Su código de verificación es: " + code +
		"\nVence en " + otp.TTL.String() + "."
	if err := uc.mailer.Send(email, "Código de verificación", body); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("envío de OTP falló")
	}
}

func checkOTP(code, stored string, expiresAt *time.Time) error {
	if stored == "" || code != stored {
		return domain.ErrOTPInvalid
	}
	if otp.Expired(expiresAt, time.Now()) {
		return domain.ErrOTPExpired
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		EmailVerified: c.EmailVerified,
		Phone:         c.Phone,
		Description:   c.Description,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Phone:         u.Phone,
		PictureURL:    u.PictureURL,
		ResumeURL:     u.ResumeURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
