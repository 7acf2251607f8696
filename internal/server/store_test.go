package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/1001franck/Linkup-sub000/internal/config"
	"github.com/1001franck/Linkup-sub000/internal/db"
	"github.com/1001franck/Linkup-sub000/internal/matching"
)

// fakeStore is an in-memory Store used by handler tests.
type fakeStore struct {
	users      map[uuid.UUID]*db.User
	candidates map[uuid.UUID]*db.Candidate
	jobs       map[uuid.UUID]*db.Job
	forcedErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[uuid.UUID]*db.User),
		candidates: make(map[uuid.UUID]*db.Candidate),
		jobs:       make(map[uuid.UUID]*db.Job),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, email, passwordHash, role string) (*db.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user := &db.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.users[userID], nil
}

func (f *fakeStore) CreateCandidate(_ context.Context, input db.CandidateInput) (*db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	candidate := candidateFromInput(uuid.New(), input)
	f.candidates[candidate.ID] = candidate
	return candidate, nil
}

func (f *fakeStore) GetCandidateByID(_ context.Context, candidateID uuid.UUID) (*db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.candidates[candidateID], nil
}

func (f *fakeStore) ListCandidates(_ context.Context, opts db.ListCandidatesOptions) ([]db.Candidate, int, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	all, err := f.ListAllCandidates(context.Background())
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	if opts.Offset >= len(all) {
		return nil, total, nil
	}
	all = all[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, total, nil
}

func (f *fakeStore) UpdateCandidate(_ context.Context, candidateID uuid.UUID, input db.CandidateInput) (*db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.candidates[candidateID]; !ok {
		return nil, nil
	}
	candidate := candidateFromInput(candidateID, input)
	f.candidates[candidateID] = candidate
	return candidate, nil
}

func (f *fakeStore) DeleteCandidate(_ context.Context, candidateID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.candidates[candidateID]; !ok {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	delete(f.candidates, candidateID)
	return nil
}

func (f *fakeStore) ListAllCandidates(_ context.Context) ([]db.Candidate, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var candidates []db.Candidate
	for _, candidate := range f.candidates {
		candidates = append(candidates, *candidate)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID.String() < candidates[j].ID.String()
	})
	return candidates, nil
}

func (f *fakeStore) CreateJob(_ context.Context, input db.JobInput) (*db.Job, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	job := jobFromInput(uuid.New(), input)
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeStore) GetJobByID(_ context.Context, jobID uuid.UUID) (*db.Job, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.jobs[jobID], nil
}

func (f *fakeStore) ListJobs(_ context.Context, opts db.ListJobsOptions) ([]db.Job, int, error) {
	if f.forcedErr != nil {
		return nil, 0, f.forcedErr
	}
	all, err := f.ListAllJobs(context.Background())
	if err != nil {
		return nil, 0, err
	}
	total := len(all)
	if opts.Offset >= len(all) {
		return nil, total, nil
	}
	all = all[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, total, nil
}

func (f *fakeStore) UpdateJob(_ context.Context, jobID uuid.UUID, input db.JobInput) (*db.Job, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.jobs[jobID]; !ok {
		return nil, nil
	}
	job := jobFromInput(jobID, input)
	f.jobs[jobID] = job
	return job, nil
}

func (f *fakeStore) DeleteJob(_ context.Context, jobID uuid.UUID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.jobs[jobID]; !ok {
		return fmt.Errorf("job not found: %s", jobID)
	}
	delete(f.jobs, jobID)
	return nil
}

func (f *fakeStore) ListAllJobs(_ context.Context) ([]db.Job, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var jobs []db.Job
	for _, job := range f.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].ID.String() < jobs[j].ID.String()
	})
	return jobs, nil
}

func candidateFromInput(id uuid.UUID, input db.CandidateInput) *db.Candidate {
	return &db.Candidate{
		ID:              id,
		UserID:          input.UserID,
		Skills:          input.Skills,
		JobTitle:        optional(input.JobTitle),
		Bio:             optional(input.Bio),
		City:            optional(input.City),
		Country:         optional(input.Country),
		ExperienceLevel: optional(input.ExperienceLevel),
		Availability:    input.Availability,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func jobFromInput(id uuid.UUID, input db.JobInput) *db.Job {
	return &db.Job{
		ID:                 id,
		CompanyID:          input.CompanyID,
		Title:              input.Title,
		Description:        input.Description,
		Industry:           optional(input.Industry),
		Location:           optional(input.Location),
		RemoteMode:         optional(input.RemoteMode),
		ContractType:       optional(input.ContractType),
		ExperienceRequired: optional(input.ExperienceRequired),
		SalaryMin:          optionalInt(input.SalaryMin),
		SalaryMax:          optionalInt(input.SalaryMax),
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// newTestServer wires a Server around the fake store, skipping the
// database connection.
func newTestServer(t *testing.T, store Store) *Server {
	t.Helper()

	jwtConfig := &config.JWTConfig{Secret: "test-secret-key", ExpirationHours: 1}
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}

	s := &Server{
		store:     store,
		engine:    matching.NewDefaultEngine(),
		validator: validator.New(),
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.userService = NewUserService(store, passwordConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	return s
}

// authHeader returns a valid Authorization header for an arbitrary user.
func authHeader(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken(uuid.New(), db.RoleCompany)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}
