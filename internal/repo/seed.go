package repo

import (
	"govt-appointments-api/internal/model"
	"govt-appointments-api/internal/storage"
)

// seed writes the default catalog and demo accounts on first run only.
func seed(adapter storage.Adapter) error {
	users := []model.User{
		{ID: 1, Name: "John Doe", Email: "john@email.com", NIC: "123456789V", Role: model.RoleCitizen},
		{ID: 2, Name: "Officer Smith", Email: "officer@gov.lk", Role: model.RoleOfficer, Department: "Immigration"},
	}
	services := []model.Service{
		{
			ID: 1, Name: "Passport Application", Department: "Immigration", Duration: 30,
			RequiredDocs: []string{"NIC Copy", "Birth Certificate", "Photos"},
			Description:  "New passport application service",
		},
		{
			ID: 2, Name: "Driving License", Department: "Motor Traffic", Duration: 45,
			RequiredDocs: []string{"NIC Copy", "Medical Certificate", "Photos"},
			Description:  "Driving license application",
		},
		{
			ID: 3, Name: "Birth Certificate", Department: "Registrar General", Duration: 20,
			RequiredDocs: []string{"Hospital Discharge", "Parent NICs"},
			Description:  "Birth certificate issuance",
		},
	}

	if err := adapter.EnsureSeeded("users", users); err != nil {
		return err
	}
	if err := adapter.EnsureSeeded("services", services); err != nil {
		return err
	}
	if err := adapter.EnsureSeeded("appointments", []model.Appointment{}); err != nil {
		return err
	}
	return adapter.EnsureSeeded("feedback", []model.Feedback{})
}
