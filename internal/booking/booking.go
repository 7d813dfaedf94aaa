// Package booking orchestrates the appointment lifecycle: booking,
// document attachment, status transition and feedback submission.
package booking

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"govt-appointments-api/internal/model"
	"govt-appointments-api/internal/qr"
	"govt-appointments-api/internal/repo"
)

// ErrInvalidRef reports a booking against a service or user that does not
// exist.
var ErrInvalidRef = errors.New("invalid service or user")

type Service struct {
	repo      *repo.Repo
	uploadDir string
	now       func() time.Time
}

func New(r *repo.Repo, uploadDir string) (*Service, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("booking: create upload dir: %w", err)
	}
	return &Service{repo: r, uploadDir: uploadDir, now: time.Now}, nil
}

// Book validates the service and user references, mints an identifier,
// generates the QR code and persists a pending appointment. The returned
// record is the full snapshot stored on disk, QR data URL included.
func (s *Service) Book(serviceID, userID int, date, timeOfDay, notes string) (*model.Appointment, error) {
	svc, err := s.repo.Services.FindByID(serviceID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrInvalidRef, serviceID)
		}
		return nil, err
	}
	user, err := s.repo.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrInvalidRef, userID)
		}
		return nil, err
	}

	id := uuid.New().String()
	code, err := qr.DataURL(qr.Payload(id, date, timeOfDay, svc.Name))
	if err != nil {
		return nil, err
	}

	apt := model.Appointment{
		ID:          id,
		ServiceID:   svc.ID,
		UserID:      user.ID,
		ServiceName: svc.Name,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Department:  svc.Department,
		Date:        date,
		Time:        timeOfDay,
		Notes:       notes,
		Status:      model.StatusPending,
		QRCode:      code,
		CreatedAt:   s.now().UTC(),
		Documents:   []model.Document{},
	}
	if err := s.repo.Appointments.Append(apt); err != nil {
		return nil, err
	}
	return &apt, nil
}

// Upload is one file to attach, already open for reading.
type Upload struct {
	Name string
	Body io.Reader
}

// AttachDocuments stores each upload under the content directory with a
// timestamp-prefixed name and appends the metadata to the appointment's
// document list. Prior documents are preserved. Returns only the records
// added by this call.
func (s *Service) AttachDocuments(appointmentID string, files []Upload) ([]model.Document, error) {
	// fail before touching the filesystem if the appointment is unknown
	if _, err := s.repo.Appointments.FindByID(appointmentID); err != nil {
		return nil, err
	}

	docs := make([]model.Document, 0, len(files))
	for _, f := range files {
		name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filepath.Base(f.Name))
		path := filepath.Join(s.uploadDir, name)
		if err := writeFile(path, f.Body); err != nil {
			return nil, err
		}
		docs = append(docs, model.Document{
			Filename:     name,
			OriginalName: f.Name,
			Path:         path,
			UploadedAt:   s.now().UTC(),
		})
	}

	_, err := s.repo.Appointments.UpdateAt(appointmentID, func(a *model.Appointment) {
		a.Documents = append(a.Documents, docs...)
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateStatus moves the appointment through the lifecycle graph, stamping
// the update time. Unknown states and illegal transitions are rejected
// with ErrBadTransition.
func (s *Service) UpdateStatus(appointmentID, status string) (*model.Appointment, error) {
	current, err := s.repo.Appointments.FindByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := validTransition(current.Status, status); err != nil {
		return nil, err
	}
	updated, err := s.repo.Appointments.UpdateAt(appointmentID, func(a *model.Appointment) {
		a.Status = status
		now := s.now().UTC()
		a.UpdatedAt = &now
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SubmitFeedback records the rating and comment. The appointment is not
// required to exist, belong to the user, or be completed; rating bounds
// are not checked either. The original behaves the same way and the
// leniency is kept deliberately.
func (s *Service) SubmitFeedback(appointmentID string, userID, rating int, comment string) (*model.Feedback, error) {
	fb := model.Feedback{
		ID:            uuid.New().String(),
		AppointmentID: appointmentID,
		UserID:        userID,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Feedback.Append(fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

func writeFile(path string, body io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("booking: store upload: %w", err)
	}
	if _, err := io.Copy(dst, body); err != nil {
		dst.Close()
		return fmt.Errorf("booking: store upload: %w", err)
	}
	return dst.Close()
}
