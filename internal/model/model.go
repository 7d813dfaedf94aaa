package model

import "time"

type User struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	NIC        string `json:"nic,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

type Service struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Duration     int      `json:"duration"`
	RequiredDocs []string `json:"requiredDocs"`
	Description  string   `json:"description"`
}

// Appointment carries snapshots of the service and user taken at booking
// time. Later edits to the catalog or a user record must not change
// historical appointments, so these fields are copies, not references.
type Appointment struct {
	ID          string     `json:"id"`
	ServiceID   int        `json:"serviceId"`
	UserID      int        `json:"userId"`
	ServiceName string     `json:"serviceName"`
	UserName    string     `json:"userName"`
	UserEmail   string     `json:"userEmail"`
	Department  string     `json:"department"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	QRCode      string     `json:"qrCode"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Documents   []Document `json:"documents"`
}

type Document struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Feedback struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	UserID        int       `json:"userId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Appointment lifecycle states.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// User roles.
const (
	RoleCitizen = "citizen"
	RoleOfficer = "officer"
)
