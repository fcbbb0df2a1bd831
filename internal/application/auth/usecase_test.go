package auth_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/empleolibre/empleo-api/internal/application/auth"
	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/pkg/jwt"
	"github.com/empleolibre/empleo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	byEmail map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byEmail: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	if _, dup := r.byEmail[c.Email]; dup {
		return domain.ErrEmailAlreadyExists
	}
	cp := *c
	r.byEmail[c.Email] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range r.byEmail {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.byEmail[c.Email] = &cp
	return nil
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, dup := r.byEmail[u.Email]; dup {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

// fakeMailer registra los correos enviados; con fail simula fallo de SMTP.
type fakeMailer struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp: conexión rechazada")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno
// ──────────────────────────────────────────────────────────────────────────────

type authEnv struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
	mailer    *fakeMailer
	uc        *auth.AuthUseCase
}

func newAuthEnv() *authEnv {
	companies := newFakeCompanyRepo()
	users := newFakeUserRepo()
	mailer := &fakeMailer{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewAuthUseCase(companies, users, mailer, auth.JWTConfig{
		Secret:     "clave-de-prueba",
		ExpMinutes: 60,
		Issuer:     "empleo-api",
	}, log)
	return &authEnv{companies: companies, users: users, mailer: mailer, uc: uc}
}

var otpRe = regexp.MustCompile(`\b(\d{6})\b`)

// otpDe extrae el código del último correo enviado.
func (e *authEnv) otpDe(t *testing.T, email string) string {
	t.Helper()
	for i := len(e.mailer.sent) - 1; i >= 0; i-- {
		if e.mailer.sent[i].to == email {
			m := otpRe.FindStringSubmatch(e.mailer.sent[i].body)
			require.NotNil(t, m, "el correo debe contener un código de 6 dígitos")
			return m[1]
		}
	}
	t.Fatalf("no se envió correo a %s", email)
	return ""
}

func validCompanyRegister() dto.RegisterCompanyRequest {
	return dto.RegisterCompanyRequest{
		Name:     "Acme S.A.S.",
		Email:    "rrhh@acme.co",
		Password: "contraseña-segura",
		Phone:    "+57 300 000 0000",
		Address: dto.AddressRequest{
			Street:  "Cra 7 # 71-21",
			City:    "Bogotá",
			State:   "Cundinamarca",
			Country: "Colombia",
		},
		Description: "Empresa de tecnología",
	}
}

func validUserRegister() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		Name:      "María Gómez",
		Email:     "maria@correo.co",
		Password:  "otra-contraseña",
		Phone:     "+57 310 000 0000",
		ResumeURL: "https://cdn.example/maria.pdf",
	}
}

// registrarEmpresaVerificada deja una empresa lista para login.
func (e *authEnv) registrarEmpresaVerificada(t *testing.T) dto.RegisterCompanyRequest {
	t.Helper()
	in := validCompanyRegister()
	_, err := e.uc.RegisterCompany(in)
	require.NoError(t, err)
	require.NoError(t, e.uc.VerifyCompanyOTP(dto.VerifyOTPRequest{Email: in.Email, Code: e.otpDe(t, in.Email)}))
	return in
}

func (e *authEnv) registrarUsuarioVerificado(t *testing.T) dto.RegisterUserRequest {
	t.Helper()
	in := validUserRegister()
	_, err := e.uc.RegisterUser(in)
	require.NoError(t, err)
	require.NoError(t, e.uc.VerifyUserOTP(dto.VerifyOTPRequest{Email: in.Email, Code: e.otpDe(t, in.Email)}))
	return in
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCompany_HashYOTP(t *testing.T) {
	env := newAuthEnv()
	in := validCompanyRegister()

	out, err := env.uc.RegisterCompany(in)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Company.ID)
	assert.False(t, out.Company.EmailVerified)

	stored := env.companies.byEmail[in.Email]
	require.NotNil(t, stored)
	assert.NotEqual(t, in.Password, stored.PasswordHash, "la contraseña nunca se guarda en texto")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(in.Password)))
	assert.Equal(t, stored.OTPCode, env.otpDe(t, in.Email))
	require.NotNil(t, stored.OTPExpiresAt)
	assert.True(t, stored.OTPExpiresAt.After(time.Now()))
}

func TestRegisterCompany_EmailDuplicado(t *testing.T) {
	env := newAuthEnv()
	_, err := env.uc.RegisterCompany(validCompanyRegister())
	require.NoError(t, err)

	_, err = env.uc.RegisterCompany(validCompanyRegister())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El fallo del correo no falla el registro; el código se puede reenviar.
func TestRegisterUser_FalloDeCorreoNoFallaRegistro(t *testing.T) {
	env := newAuthEnv()
	env.mailer.fail = true

	out, err := env.uc.RegisterUser(validUserRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, out.User.ID)
	assert.NotEmpty(t, env.users.byEmail[out.User.Email].OTPCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación OTP
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyUserOTP_CodigoIncorrecto(t *testing.T) {
	env := newAuthEnv()
	in := validUserRegister()
	_, err := env.uc.RegisterUser(in)
	require.NoError(t, err)

	err = env.uc.VerifyUserOTP(dto.VerifyOTPRequest{Email: in.Email, Code: "000000"})
	if env.users.byEmail[in.Email].OTPCode == "000000" {
		t.Skip("colisión improbable con el código generado")
	}
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)
	assert.False(t, env.users.byEmail[in.Email].EmailVerified)
}

func TestVerifyCompanyOTP_Expirado(t *testing.T) {
	env := newAuthEnv()
	in := validCompanyRegister()
	_, err := env.uc.RegisterCompany(in)
	require.NoError(t, err)

	stored := env.companies.byEmail[in.Email]
	vencido := time.Now().Add(-time.Minute)
	stored.OTPExpiresAt = &vencido

	err = env.uc.VerifyCompanyOTP(dto.VerifyOTPRequest{Email: in.Email, Code: stored.OTPCode})
	assert.ErrorIs(t, err, domain.ErrOTPExpired)
}

func TestVerifyCompanyOTP_MarcaVerificadaYLimpiaCodigo(t *testing.T) {
	env := newAuthEnv()
	in := env.registrarEmpresaVerificada(t)

	stored := env.companies.byEmail[in.Email]
	assert.True(t, stored.EmailVerified)
	assert.Empty(t, stored.OTPCode)
	assert.Nil(t, stored.OTPExpiresAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginCompany_TokenConPrincipalEmpresa(t *testing.T) {
	env := newAuthEnv()
	in := env.registrarEmpresaVerificada(t)

	out, err := env.uc.LoginCompany(dto.LoginRequest{Email: in.Email, Password: in.Password})
	require.NoError(t, err)

	principalID, principalType, err := jwt.Parse("clave-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, env.companies.byEmail[in.Email].ID, principalID)
	assert.Equal(t, jwt.PrincipalEmpresa, principalType)
}

func TestLoginUser_TokenConPrincipalPostulante(t *testing.T) {
	env := newAuthEnv()
	in := env.registrarUsuarioVerificado(t)

	out, err := env.uc.LoginUser(dto.LoginRequest{Email: in.Email, Password: in.Password})
	require.NoError(t, err)

	_, principalType, err := jwt.Parse("clave-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.PrincipalPostulante, principalType)
}

func TestLoginCompany_SinVerificarBloqueado(t *testing.T) {
	env := newAuthEnv()
	in := validCompanyRegister()
	_, err := env.uc.RegisterCompany(in)
	require.NoError(t, err)

	_, err = env.uc.LoginCompany(dto.LoginRequest{Email: in.Email, Password: in.Password})
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)
}

// Credenciales malas y email inexistente responden igual, sin distinguir el caso.
func TestLoginUser_CredencialesInvalidas(t *testing.T) {
	env := newAuthEnv()
	in := env.registrarUsuarioVerificado(t)

	_, err := env.uc.LoginUser(dto.LoginRequest{Email: in.Email, Password: "incorrecta-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = env.uc.LoginUser(dto.LoginRequest{Email: "nadie@correo.co", Password: in.Password})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restablecimiento de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestResetUserPassword_CicloCompleto(t *testing.T) {
	env := newAuthEnv()
	in := env.registrarUsuarioVerificado(t)

	require.NoError(t, env.uc.RequestUserPasswordReset(dto.PasswordResetRequest{Email: in.Email}))
	code := env.otpDe(t, in.Email)

	require.NoError(t, env.uc.ResetUserPassword(dto.ResetPasswordRequest{
		Email:       in.Email,
		Code:        code,
		NewPassword: "contraseña-nueva",
	}))

	// La contraseña anterior deja de servir; la nueva inicia sesión
	_, err := env.uc.LoginUser(dto.LoginRequest{Email: in.Email, Password: in.Password})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := env.uc.LoginUser(dto.LoginRequest{Email: in.Email, Password: "contraseña-nueva"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	// El OTP es de un solo uso
	err = env.uc.ResetUserPassword(dto.ResetPasswordRequest{
		Email:       in.Email,
		Code:        code,
		NewPassword: "tercera-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)
}

func TestRequestCompanyPasswordReset_EmailInexistente(t *testing.T) {
	env := newAuthEnv()
	err := env.uc.RequestCompanyPasswordReset(dto.PasswordResetRequest{Email: "nadie@acme.co"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
