package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
)

// ---------------------------------------------------------------------------
// Stub registration store
// ---------------------------------------------------------------------------

type stubRegistrationRepo struct {
	regs    []domain.Registration
	listErr error
}

func (r *stubRegistrationRepo) List(_ context.Context) ([]domain.Registration, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.regs, nil
}

func newStudentFixture(regs *stubRegistrationRepo) (*StudentService, *kv.StudentRepository) {
	mem := kv.NewMemory()
	repo := kv.NewStudentRepository(mem)
	svc := NewStudentService(repo, regs, kv.NewClassRepository(mem), discardLogger)
	return svc, repo
}

// ---------------------------------------------------------------------------
// SyncRegistrations
// ---------------------------------------------------------------------------

func TestStudentService_Sync_ImportsOncePerEmail(t *testing.T) {
	regs := &stubRegistrationRepo{regs: []domain.Registration{
		{Email: "bola@example.com", Name: "Bola"},
		{Email: "ade@example.com"},
	}}
	svc, repo := newStudentFixture(regs)
	ctx := context.Background()

	imported, err := svc.SyncRegistrations(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 imports, got %d", imported)
	}

	// No-name registration falls back to the email local part.
	ade, ok := repo.FindByEmail(ctx, "ade@example.com")
	if !ok || ade.Name != "ade" {
		t.Errorf("expected display-name fallback \"ade\", got %+v", ade)
	}

	// A second sync imports nothing.
	imported, _ = svc.SyncRegistrations(ctx)
	if imported != 0 {
		t.Errorf("re-sync must import nothing, got %d", imported)
	}
	if got := len(svc.ListStudents(ctx)); got != 2 {
		t.Errorf("expected 2 students after re-sync, got %d", got)
	}
}

func TestStudentService_Sync_SkipsExistingEmailCaseInsensitively(t *testing.T) {
	regs := &stubRegistrationRepo{regs: []domain.Registration{
		{Email: "Bola@Example.com", Name: "Duplicate"},
	}}
	svc, repo := newStudentFixture(regs)
	ctx := context.Background()

	repo.Add(ctx, domain.Student{Name: "Bola", Email: "bola@example.com"})

	imported, _ := svc.SyncRegistrations(ctx)
	if imported != 0 {
		t.Errorf("case-variant email must be treated as existing, imported %d", imported)
	}
}

func TestStudentService_Sync_StoreUnavailable(t *testing.T) {
	regs := &stubRegistrationRepo{listErr: errors.New("document store down")}
	svc, _ := newStudentFixture(regs)

	if _, err := svc.SyncRegistrations(context.Background()); err == nil {
		t.Fatal("expected error when the registration store is down")
	}
}

// ---------------------------------------------------------------------------
// Lesson progression
// ---------------------------------------------------------------------------

func TestStudentService_CompleteLesson_Advances(t *testing.T) {
	svc, repo := newStudentFixture(&stubRegistrationRepo{})
	ctx := context.Background()

	stored, _ := repo.Add(ctx, domain.Student{Name: "Bola", Email: "bola@example.com"})

	updated, err := svc.CompleteLesson(ctx, stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CurrentLesson != 2 {
		t.Errorf("expected current lesson 2, got %d", updated.CurrentLesson)
	}
	if len(updated.CompletedLessons) != 1 || updated.CompletedLessons[0] != 1 {
		t.Errorf("expected completed lessons [1], got %v", updated.CompletedLessons)
	}

	updated, _ = svc.CompleteLesson(ctx, stored.ID)
	if updated.CurrentLesson != 3 || len(updated.CompletedLessons) != 2 {
		t.Errorf("second completion wrong: lesson %d, completed %v", updated.CurrentLesson, updated.CompletedLessons)
	}
}

func TestStudentService_CompleteLesson_RejectsExpiredRegistration(t *testing.T) {
	svc, repo := newStudentFixture(&stubRegistrationRepo{})
	ctx := context.Background()

	expired := time.Now().UTC().Add(-time.Hour)
	stored, _ := repo.Add(ctx, domain.Student{Name: "Bola", Email: "bola@example.com", ExpiresAt: &expired})

	_, err := svc.CompleteLesson(ctx, stored.ID)
	if !errors.Is(err, domain.ErrRegistrationExpired) {
		t.Fatalf("expected ErrRegistrationExpired, got %v", err)
	}

	// The record stays; expiry is evaluated at read time, never by deletion.
	if _, ok := repo.FindByEmail(ctx, "bola@example.com"); !ok {
		t.Error("expired student must not be deleted")
	}
}

func TestStudentService_CompleteLesson_UnknownStudent(t *testing.T) {
	svc, _ := newStudentFixture(&stubRegistrationRepo{})

	_, err := svc.CompleteLesson(context.Background(), "missing")
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// CRUD edges
// ---------------------------------------------------------------------------

func TestStudentService_AddExistingEmailReturnsExisting(t *testing.T) {
	svc, _ := newStudentFixture(&stubRegistrationRepo{})
	ctx := context.Background()

	first, _ := svc.AddStudent(ctx, ports.AddStudentInput{Name: "Bola", Email: "bola@example.com"})
	second, err := svc.AddStudent(ctx, ports.AddStudentInput{Name: "Other", Email: "bola@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("duplicate email must return the existing record, got %q vs %q", second.ID, first.ID)
	}
	if got := len(svc.ListStudents(ctx)); got != 1 {
		t.Errorf("expected 1 student, got %d", got)
	}
}

func TestStudentService_ClassCatalog(t *testing.T) {
	svc, _ := newStudentFixture(&stubRegistrationRepo{})
	ctx := context.Background()

	class, err := svc.AddClass(ctx, ports.AddClassInput{Title: "Small Chops Basics", Price: 25000, Lessons: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if class.ID == "" {
		t.Error("class must get a generated id")
	}

	if got := len(svc.ListClasses(ctx)); got != 1 {
		t.Fatalf("expected 1 class, got %d", got)
	}
	if err := svc.DeleteClass(ctx, class.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(svc.ListClasses(ctx)); got != 0 {
		t.Errorf("expected empty catalog, got %d", got)
	}
}

func TestStudentService_AddWriteFailureSurfaces(t *testing.T) {
	mem := kv.NewMemory()
	svc := NewStudentService(kv.NewStudentRepository(mem), &stubRegistrationRepo{}, kv.NewClassRepository(mem), discardLogger)
	ctx := context.Background()

	mem.FailWrites = true
	if _, err := svc.AddStudent(ctx, ports.AddStudentInput{Name: "Bola", Email: "bola@example.com"}); !errors.Is(err, domain.ErrStorageWrite) {
		t.Errorf("AddStudent: expected ErrStorageWrite, got %v", err)
	}
	if _, err := svc.AddClass(ctx, ports.AddClassInput{Title: "Small Chops Basics", Price: 25000, Lessons: 6}); !errors.Is(err, domain.ErrStorageWrite) {
		t.Errorf("AddClass: expected ErrStorageWrite, got %v", err)
	}
}

func TestStudentService_UpdateWriteFailureIsNotNotFound(t *testing.T) {
	mem := kv.NewMemory()
	repo := kv.NewStudentRepository(mem)
	svc := NewStudentService(repo, &stubRegistrationRepo{}, kv.NewClassRepository(mem), discardLogger)
	ctx := context.Background()

	stored, _ := repo.Add(ctx, domain.Student{Name: "Bola", Email: "bola@example.com"})

	mem.FailWrites = true
	name := "Bolanle"
	if _, err := svc.UpdateStudent(ctx, stored.ID, ports.StudentPatch{Name: &name}); !errors.Is(err, domain.ErrStorageWrite) {
		t.Errorf("existing student: expected ErrStorageWrite, got %v", err)
	}
	if _, err := svc.UpdateStudent(ctx, "missing", ports.StudentPatch{Name: &name}); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Errorf("missing student: expected ErrStudentNotFound, got %v", err)
	}
}
