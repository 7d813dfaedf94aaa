// Package analytics derives aggregate counts over the appointment and
// feedback collections. Nothing is persisted; every call recomputes from
// the current collections.
package analytics

import (
	"bytes"
	"encoding/json"
	"math"

	"govt-appointments-api/internal/model"
	"govt-appointments-api/internal/repo"
)

type Summary struct {
	TotalAppointments     int              `json:"totalAppointments"`
	PendingAppointments   int              `json:"pendingAppointments"`
	CompletedAppointments int              `json:"completedAppointments"`
	DepartmentStats       *DepartmentStats `json:"departmentStats"`
	AvgRating             float64          `json:"avgRating"`
	TotalFeedback         int              `json:"totalFeedback"`
}

type Aggregator struct {
	repo *repo.Repo
}

func New(r *repo.Repo) *Aggregator { return &Aggregator{repo: r} }

func (ag *Aggregator) Summary() (*Summary, error) {
	appointments, err := ag.repo.Appointments.List()
	if err != nil {
		return nil, err
	}
	feedback, err := ag.repo.Feedback.List()
	if err != nil {
		return nil, err
	}
	return Summarize(appointments, feedback), nil
}

// Summarize is the pure aggregation over already-loaded collections.
func Summarize(appointments []model.Appointment, feedback []model.Feedback) *Summary {
	s := &Summary{
		TotalAppointments: len(appointments),
		DepartmentStats:   NewDepartmentStats(),
		TotalFeedback:     len(feedback),
	}
	for _, a := range appointments {
		switch a.Status {
		case model.StatusPending:
			s.PendingAppointments++
		case model.StatusCompleted:
			s.CompletedAppointments++
		}
		s.DepartmentStats.Inc(a.Department)
	}
	if len(feedback) > 0 {
		sum := 0
		for _, f := range feedback {
			sum += f.Rating
		}
		avg := float64(sum) / float64(len(feedback))
		s.AvgRating = math.Round(avg*10) / 10
	}
	return s
}

// DepartmentStats counts appointments per department, remembering the
// order in which departments were first seen. encoding/json sorts plain
// map keys, which would lose that order, hence the custom marshaller.
type DepartmentStats struct {
	order  []string
	counts map[string]int
}

func NewDepartmentStats() *DepartmentStats {
	return &DepartmentStats{counts: make(map[string]int)}
}

func (d *DepartmentStats) Inc(department string) {
	if _, seen := d.counts[department]; !seen {
		d.order = append(d.order, department)
	}
	d.counts[department]++
}

func (d *DepartmentStats) Get(department string) int { return d.counts[department] }

func (d *DepartmentStats) Departments() []string {
	return append([]string(nil), d.order...)
}

func (d *DepartmentStats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, dept := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(dept)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(d.counts[dept])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
