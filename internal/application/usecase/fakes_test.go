package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/empleolibre/empleo-api/internal/domain"
	"github.com/empleolibre/empleo-api/internal/domain/entity"
	"github.com/empleolibre/empleo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeJobRepo implementa repository.JobRepository sobre un mapa.
// companies permite resolver la proyección (name, email) en los listados.
type fakeJobRepo struct {
	jobs      map[string]*entity.Job
	companies map[string]*entity.Company
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:      map[string]*entity.Job{},
		companies: map[string]*entity.Company{},
	}
}

func (r *fakeJobRepo) Create(job *entity.Job) error {
	copia := *job
	r.jobs[job.ID] = &copia
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	copia := *job
	return &copia, nil
}

func (r *fakeJobRepo) GetListing(id string) (*entity.JobListing, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	return r.toListing(job), nil
}

func (r *fakeJobRepo) List(filter repository.JobFilter, limit, offset int) ([]*entity.JobListing, error) {
	var out []*entity.JobListing
	for _, job := range r.jobs {
		if filter.Type != "" && job.Requirements.Type != filter.Type {
			continue
		}
		if filter.Category != "" && job.Requirements.Category != filter.Category {
			continue
		}
		if filter.Experience != "" && job.Requirements.Experience != filter.Experience {
			continue
		}
		if filter.Location != "" && job.Requirements.Location != filter.Location {
			continue
		}
		if filter.CompanyID != "" && job.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Closed != nil && job.Closed != *filter.Closed {
			continue
		}
		out = append(out, r.toListing(job))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeJobRepo) Update(job *entity.Job) error {
	copia := *job
	r.jobs[job.ID] = &copia
	return nil
}

func (r *fakeJobRepo) SetClosed(id string) error {
	if job, ok := r.jobs[id]; ok {
		job.Closed = true
	}
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) toListing(job *entity.Job) *entity.JobListing {
	l := &entity.JobListing{Job: *job}
	if c, ok := r.companies[job.CompanyID]; ok {
		l.CompanyName = c.Name
		l.CompanyEmail = c.Email
	}
	return l
}

// fakeApplicationRepo implementa repository.ApplicationRepository.
// users permite resolver el perfil público de los postulantes.
type fakeApplicationRepo struct {
	apps  map[string]map[string]time.Time // jobID -> userID -> fecha
	users map[string]*entity.User
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  map[string]map[string]time.Time{},
		users: map[string]*entity.User{},
	}
}

func (r *fakeApplicationRepo) Add(app *entity.Application) error {
	byJob, ok := r.apps[app.JobID]
	if !ok {
		byJob = map[string]time.Time{}
		r.apps[app.JobID] = byJob
	}
	if _, dup := byJob[app.UserID]; dup {
		return domain.ErrAlreadyApplied
	}
	byJob[app.UserID] = app.CreatedAt
	return nil
}

func (r *fakeApplicationRepo) Exists(jobID, userID string) (bool, error) {
	_, ok := r.apps[jobID][userID]
	return ok, nil
}

func (r *fakeApplicationRepo) ListApplicants(jobID string) ([]*entity.ApplicantProfile, error) {
	var out []*entity.ApplicantProfile
	for userID, fecha := range r.apps[jobID] {
		p := &entity.ApplicantProfile{ID: userID, AppliedAt: fecha}
		if u, ok := r.users[userID]; ok {
			p.Name = u.Name
			p.Email = u.Email
			p.PictureURL = u.PictureURL
			p.ResumeURL = u.ResumeURL
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeApplicationRepo) ListJobIDsByUser(userID string) ([]string, error) {
	var ids []string
	for jobID, byJob := range r.apps {
		if _, ok := byJob[userID]; ok {
			ids = append(ids, jobID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeApplicationRepo) DeleteByJob(jobID string) error {
	delete(r.apps, jobID)
	return nil
}

func (r *fakeApplicationRepo) countByJob(jobID string) int {
	return len(r.apps[jobID])
}

// fakeTxRunner ejecuta el callback con los mismos fakes (sin semántica de tx).
type fakeTxRunner struct {
	jobRepo *fakeJobRepo
	appRepo *fakeApplicationRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
) error) error {
	return fn(r.jobRepo, r.appRepo)
}
