package analytics_test

import (
	"encoding/json"
	"testing"

	"govt-appointments-api/internal/analytics"
	"govt-appointments-api/internal/model"
)

func apt(dept, status string) model.Appointment {
	return model.Appointment{Department: dept, Status: status}
}

func TestSummarizeEmpty(t *testing.T) {
	s := analytics.Summarize(nil, nil)
	if s.TotalAppointments != 0 || s.PendingAppointments != 0 || s.CompletedAppointments != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.AvgRating != 0 {
		t.Errorf("expected avg 0 with no feedback, got %v", s.AvgRating)
	}
}

func TestSummarizeCounts(t *testing.T) {
	apts := []model.Appointment{
		apt("Immigration", model.StatusPending),
		apt("Immigration", model.StatusCompleted),
		apt("Motor Traffic", model.StatusConfirmed),
		apt("Immigration", model.StatusPending),
	}
	s := analytics.Summarize(apts, nil)

	if s.TotalAppointments != 4 {
		t.Errorf("total: got %d", s.TotalAppointments)
	}
	if s.PendingAppointments != 2 {
		t.Errorf("pending: got %d", s.PendingAppointments)
	}
	if s.CompletedAppointments != 1 {
		t.Errorf("completed: got %d", s.CompletedAppointments)
	}
	if got := s.DepartmentStats.Get("Immigration"); got != 3 {
		t.Errorf("Immigration: got %d", got)
	}
	if got := s.DepartmentStats.Get("Motor Traffic"); got != 1 {
		t.Errorf("Motor Traffic: got %d", got)
	}
}

func TestAvgRatingRounding(t *testing.T) {
	fb := []model.Feedback{{Rating: 5}, {Rating: 3}, {Rating: 4}}
	s := analytics.Summarize(nil, fb)
	if s.AvgRating != 4.0 {
		t.Errorf("expected 4.0, got %v", s.AvgRating)
	}
	if s.TotalFeedback != 3 {
		t.Errorf("total feedback: got %d", s.TotalFeedback)
	}

	// 2 ratings averaging to a repeating decimal round to one place
	s = analytics.Summarize(nil, []model.Feedback{{Rating: 4}, {Rating: 3}})
	if s.AvgRating != 3.5 {
		t.Errorf("expected 3.5, got %v", s.AvgRating)
	}
	s = analytics.Summarize(nil, []model.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 4}})
	if s.AvgRating != 4.3 {
		t.Errorf("expected 4.3, got %v", s.AvgRating)
	}
}

func TestDepartmentStatsOrder(t *testing.T) {
	apts := []model.Appointment{
		apt("Registrar General", model.StatusPending),
		apt("Immigration", model.StatusPending),
		apt("Registrar General", model.StatusPending),
		apt("Motor Traffic", model.StatusPending),
	}
	s := analytics.Summarize(apts, nil)

	want := []string{"Registrar General", "Immigration", "Motor Traffic"}
	got := s.DepartmentStats.Departments()
	if len(got) != len(want) {
		t.Fatalf("departments: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i], want[i])
		}
	}

	// first-occurrence order survives JSON encoding
	b, err := json.Marshal(s.DepartmentStats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want2 := `{"Registrar General":2,"Immigration":1,"Motor Traffic":1}`
	if string(b) != want2 {
		t.Errorf("json: got %s, want %s", b, want2)
	}
}
