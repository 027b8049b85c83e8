package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
	"github.com/bugtrack/bugtrack-api/internal/core/ports"
)

type stubBugRepo struct {
	bugs   map[string]*domain.Bug
	nextID int
}

func newStubBugRepo() *stubBugRepo {
	return &stubBugRepo{bugs: make(map[string]*domain.Bug), nextID: 1}
}

func (r *stubBugRepo) Create(_ context.Context, bug *domain.Bug) (*domain.Bug, error) {
	copy := *bug
	copy.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.bugs[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubBugRepo) FindByID(_ context.Context, id string) (*domain.Bug, error) {
	bug, ok := r.bugs[id]
	if !ok {
		return nil, domain.ErrBugNotFound
	}
	copy := *bug
	return &copy, nil
}

func (r *stubBugRepo) List(_ context.Context) ([]*domain.Bug, error) {
	out := make([]*domain.Bug, 0, len(r.bugs))
	for _, bug := range r.bugs {
		copy := *bug
		out = append(out, &copy)
	}
	return out, nil
}

func (r *stubBugRepo) Update(_ context.Context, bug *domain.Bug) (*domain.Bug, error) {
	if _, ok := r.bugs[bug.ID]; !ok {
		return nil, domain.ErrBugNotFound
	}
	copy := *bug
	r.bugs[bug.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubBugRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bugs[id]; !ok {
		return domain.ErrBugNotFound
	}
	delete(r.bugs, id)
	return nil
}

type stubDevRepo struct {
	devs map[string]*domain.Developer
}

func newStubDevRepo() *stubDevRepo {
	return &stubDevRepo{devs: make(map[string]*domain.Developer)}
}

func (r *stubDevRepo) Create(_ context.Context, dev *domain.Developer) (*domain.Developer, error) {
	copy := *dev
	if copy.ID == "" {
		copy.ID = dev.Name
	}
	r.devs[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubDevRepo) FindByID(_ context.Context, id string) (*domain.Developer, error) {
	dev, ok := r.devs[id]
	if !ok {
		return nil, domain.ErrDeveloperNotFound
	}
	copy := *dev
	return &copy, nil
}

func (r *stubDevRepo) List(_ context.Context) ([]*domain.Developer, error) {
	out := make([]*domain.Developer, 0, len(r.devs))
	for _, dev := range r.devs {
		copy := *dev
		out = append(out, &copy)
	}
	return out, nil
}

func newTestBugService(bugs *stubBugRepo, devs *stubDevRepo) *BugService {
	return NewBugService(bugs, devs, nil, zerolog.Nop())
}

func TestBugService_Create(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	bug, err := svc.Create(context.Background(), ports.CreateBugInput{
		Title:      "Login page crashes",
		ReportedBy: "qa@example.com",
		Severity:   "high",
		Actor:      "alice",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if bug.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if bug.Severity != domain.SeverityHigh {
		t.Fatalf("unexpected severity: %s", bug.Severity)
	}
}

func TestBugService_Create_Validation(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	if _, err := svc.Create(context.Background(), ports.CreateBugInput{Title: "   "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateBugInput{Title: "x", Severity: "catastrophic"}); !errors.Is(err, domain.ErrInvalidSeverity) {
		t.Fatalf("expected ErrInvalidSeverity, got %v", err)
	}
}

func TestBugService_Create_DefaultSeverity(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	bug, err := svc.Create(context.Background(), ports.CreateBugInput{Title: "x"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if bug.Severity != domain.SeverityMedium {
		t.Fatalf("expected default severity medium, got %s", bug.Severity)
	}
}

func TestBugService_Update_Partial(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	bug, _ := svc.Create(context.Background(), ports.CreateBugInput{
		Title:       "Original title",
		Description: "original description",
		Severity:    "low",
	})

	newSeverity := "critical"
	updated, err := svc.Update(context.Background(), ports.UpdateBugInput{
		ID:       bug.ID,
		Severity: &newSeverity,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Severity != domain.SeverityCritical {
		t.Fatalf("severity not updated: %s", updated.Severity)
	}
	if updated.Title != "Original title" || updated.Description != "original description" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestBugService_Update_NotFound(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	title := "x"
	if _, err := svc.Update(context.Background(), ports.UpdateBugInput{ID: "missing", Title: &title}); !errors.Is(err, domain.ErrBugNotFound) {
		t.Fatalf("expected ErrBugNotFound, got %v", err)
	}
}

func TestBugService_Assign(t *testing.T) {
	bugs := newStubBugRepo()
	devs := newStubDevRepo()
	svc := newTestBugService(bugs, devs)

	dev, _ := devs.Create(context.Background(), &domain.Developer{Name: "jane"})
	bug, _ := svc.Create(context.Background(), ports.CreateBugInput{Title: "x"})

	assigned, err := svc.Assign(context.Background(), bug.ID, dev.ID, "alice")
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if assigned.DeveloperID != dev.ID {
		t.Fatalf("developer not linked: %+v", assigned)
	}
}

func TestBugService_Assign_MissingDeveloper(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	bug, _ := svc.Create(context.Background(), ports.CreateBugInput{Title: "x"})
	if _, err := svc.Assign(context.Background(), bug.ID, "ghost", "alice"); !errors.Is(err, domain.ErrDeveloperNotFound) {
		t.Fatalf("expected ErrDeveloperNotFound, got %v", err)
	}
}

func TestBugService_Delete(t *testing.T) {
	svc := newTestBugService(newStubBugRepo(), newStubDevRepo())

	bug, _ := svc.Create(context.Background(), ports.CreateBugInput{Title: "x"})
	if err := svc.Delete(context.Background(), bug.ID, "alice"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), bug.ID, "alice"); !errors.Is(err, domain.ErrBugNotFound) {
		t.Fatalf("expected ErrBugNotFound on second delete, got %v", err)
	}
}
