package repo_test

import (
	"errors"
	"testing"

	"govt-appointments-api/internal/model"
	"govt-appointments-api/internal/repo"
	"govt-appointments-api/internal/storage/filestore"
)

func newRepo(t *testing.T) *repo.Repo {
	t.Helper()
	fs, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("filestore: %v", err)
	}
	r, err := repo.New(fs)
	if err != nil {
		t.Fatalf("repo: %v", err)
	}
	return r
}

func TestSeededCollections(t *testing.T) {
	r := newRepo(t)

	users, err := r.Users.List()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 seeded users, got %d", len(users))
	}
	if users[0].Role != model.RoleCitizen || users[1].Role != model.RoleOfficer {
		t.Errorf("unexpected seed roles: %s, %s", users[0].Role, users[1].Role)
	}

	services, err := r.Services.List()
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("expected 3 seeded services, got %d", len(services))
	}

	apts, err := r.Appointments.List()
	if err != nil {
		t.Fatalf("list appointments: %v", err)
	}
	if len(apts) != 0 {
		t.Errorf("expected empty appointments, got %d", len(apts))
	}
}

func TestFindByID(t *testing.T) {
	r := newRepo(t)

	svc, err := r.Services.FindByID(2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if svc.Name != "Driving License" {
		t.Errorf("got %s", svc.Name)
	}

	_, err = r.Services.FindByID(99)
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	r := newRepo(t)

	for _, id := range []string{"a", "b", "c", "d"} {
		dept := "Immigration"
		if id == "b" {
			dept = "Motor Traffic"
		}
		if err := r.Appointments.Append(model.Appointment{ID: id, Department: dept}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := r.Appointments.Filter(func(a model.Appointment) bool {
		return a.Department == "Immigration"
	})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestUpdateAt(t *testing.T) {
	r := newRepo(t)

	if err := r.Appointments.Append(model.Appointment{ID: "x", Status: model.StatusPending}); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := r.Appointments.UpdateAt("x", func(a *model.Appointment) {
		a.Status = model.StatusConfirmed
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != model.StatusConfirmed {
		t.Errorf("status not applied: %s", updated.Status)
	}

	// persisted, not just returned
	back, err := r.Appointments.FindByID("x")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if back.Status != model.StatusConfirmed {
		t.Errorf("status not persisted: %s", back.Status)
	}
}

func TestUpdateAtNotFound(t *testing.T) {
	r := newRepo(t)

	if err := r.Appointments.Append(model.Appointment{ID: "only", Status: model.StatusPending}); err != nil {
		t.Fatalf("append: %v", err)
	}

	_, err := r.Appointments.UpdateAt("missing", func(a *model.Appointment) {
		a.Status = model.StatusCancelled
	})
	if !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// collection untouched
	apts, _ := r.Appointments.List()
	if len(apts) != 1 || apts[0].Status != model.StatusPending {
		t.Errorf("collection changed on failed update: %+v", apts)
	}
}
