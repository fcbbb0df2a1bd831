package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empleolibre/empleo-api/internal/application/dto"
	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Apply
// ──────────────────────────────────────────────────────────────────────────────

// Postularse dos veces a la misma vacante: la segunda falla y el set no crece.
func TestApply_DuplicadoRechazado(t *testing.T) {
	env := newJobEnv()
	out, err := env.jobUC.Create(empresaID, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, env.appUC.Apply(usuarioID, out.JobID))
	assert.Equal(t, 1, env.apps.countByJob(out.JobID))

	err = env.appUC.Apply(usuarioID, out.JobID)
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	assert.Equal(t, 1, env.apps.countByJob(out.JobID), "el set de postulantes no debe crecer")
}

// Vacante cerrada rechaza postulaciones y el set queda intacto.
func TestApply_VacanteCerradaRechazada(t *testing.T) {
	env := newJobEnv()
	out, err := env.jobUC.Create(empresaID, validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, env.jobUC.Close(empresaID, out.JobID))

	err = env.appUC.Apply(usuarioID, out.JobID)
	assert.ErrorIs(t, err, domain.ErrJobClosed)
	assert.Equal(t, 0, env.apps.countByJob(out.JobID))
}

// Vacante inexistente → ErrNotFound.
func TestApply_VacanteInexistente(t *testing.T) {
	env := newJobEnv()
	assert.ErrorIs(t, env.appUC.Apply(usuarioID, "no-existe"), domain.ErrNotFound)
}

// La postulación queda en ambos lados: postulantes de la vacante y vacantes del usuario.
func TestApply_ConsistenciaBidireccional(t *testing.T) {
	env := newJobEnv()
	out, err := env.jobUC.Create(empresaID, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, env.appUC.Apply(usuarioID, out.JobID))

	postulantes, err := env.appUC.ListApplicants(empresaID, out.JobID)
	require.NoError(t, err)
	require.Len(t, postulantes, 1)
	assert.Equal(t, usuarioID, postulantes[0].ID)

	aplicadas, err := env.appUC.AppliedJobs(usuarioID)
	require.NoError(t, err)
	assert.Contains(t, aplicadas, out.JobID)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListApplicants
// ──────────────────────────────────────────────────────────────────────────────

// Solo la empresa dueña consulta los postulantes; la proyección es el perfil público.
func TestListApplicants_SoloEmpresaDuena(t *testing.T) {
	env := newJobEnv()
	env.apps.users[usuarioID] = &entity.User{
		ID:           usuarioID,
		Name:         "María Gómez",
		Email:        "maria@correo.co",
		PasswordHash: "$2a$10$hash-que-nunca-debe-salir",
		PictureURL:   "https://cdn.example/maria.png",
		ResumeURL:    "https://cdn.example/maria.pdf",
	}
	out, err := env.jobUC.Create(empresaID, validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, env.appUC.Apply(usuarioID, out.JobID))

	_, err = env.appUC.ListApplicants(empresa2ID, out.JobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	postulantes, err := env.appUC.ListApplicants(empresaID, out.JobID)
	require.NoError(t, err)
	require.Len(t, postulantes, 1)
	assert.Equal(t, "María Gómez", postulantes[0].Name)
	assert.Equal(t, "maria@correo.co", postulantes[0].Email)
	assert.Equal(t, "https://cdn.example/maria.pdf", postulantes[0].ResumeURL)
}

func TestListApplicants_VacanteInexistente(t *testing.T) {
	env := newJobEnv()
	_, err := env.appUC.ListApplicants(empresaID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo (crear → postular → revisar → eliminar)
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenario_CicloDeVidaCompleto(t *testing.T) {
	env := newJobEnv()
	env.apps.users[usuarioID] = &entity.User{ID: usuarioID, Name: "María Gómez", Email: "maria@correo.co"}

	// La empresa publica la vacante
	out, err := env.jobUC.Create(empresaID, validCreateRequest())
	require.NoError(t, err)

	// El usuario se postula
	require.NoError(t, env.appUC.Apply(usuarioID, out.JobID))

	// La empresa revisa los postulantes
	postulantes, err := env.appUC.ListApplicants(empresaID, out.JobID)
	require.NoError(t, err)
	require.Len(t, postulantes, 1)
	assert.Equal(t, "María Gómez", postulantes[0].Name)

	// La empresa elimina la vacante: desaparece de getJob y del set del usuario
	require.NoError(t, env.jobUC.Delete(context.Background(), empresaID, out.JobID))

	_, err = env.jobUC.GetByID(out.JobID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	aplicadas, err := env.appUC.AppliedJobs(usuarioID)
	require.NoError(t, err)
	assert.NotContains(t, aplicadas, out.JobID)

	listado, err := env.jobUC.List(dto.JobFilterRequest{CompanyID: empresaID}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, listado)
}
