package storage

import (
	"golang.org/x/crypto/bcrypt"

	"meditrack-http-service/internal/domain/models"
)

// SeedDemoData 写入演示数据，供开发和演示环境使用。
// 只在存储为空时由启动逻辑调用。统计单例不在这里写入，
// 由调用方在种子数据就绪后统一重算。
func SeedDemoData(s Store) error {
	hash := func(plain string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return plain
		}
		return string(hashed)
	}

	demoUser := &models.User{
		Username: "demo_user",
		Password: hash("password123"),
		Email:    "user@example.com",
		Phone:    "(555) 123-4567",
		FullName: "John Smith",
		UserType: models.UserTypeUser,
	}
	if err := s.CreateUser(demoUser); err != nil {
		return err
	}
	admin := &models.User{
		Username: "admin",
		Password: hash("admin123"),
		Email:    "admin@example.com",
		Phone:    "(555) 987-6543",
		FullName: "Admin User",
		UserType: models.UserTypeAdmin,
	}
	if err := s.CreateUser(admin); err != nil {
		return err
	}
	responder := &models.User{
		Username: "responder",
		Password: hash("responder123"),
		Email:    "responder@example.com",
		Phone:    "(555) 456-7890",
		FullName: "Response Team Member",
		UserType: models.UserTypeResponseTeam,
	}
	if err := s.CreateUser(responder); err != nil {
		return err
	}

	teams := []models.ResponseTeam{
		{Name: "Team Alpha", Status: models.TeamStatusAvailable, Latitude: "40.7128", Longitude: "-74.0060"},
		{Name: "Team Bravo", Status: models.TeamStatusBusy, Latitude: "40.7282", Longitude: "-73.9942"},
		{Name: "Team Charlie", Status: models.TeamStatusAvailable, Latitude: "40.7300", Longitude: "-74.0200"},
	}
	teamIDs := make([]uint, 0, len(teams))
	for i := range teams {
		if err := s.CreateResponseTeam(&teams[i]); err != nil {
			return err
		}
		teamIDs = append(teamIDs, teams[i].ID)
	}

	requests := []models.EmergencyRequest{
		{UserID: demoUser.ID, Status: models.RequestStatusCritical, Latitude: "40.7128", Longitude: "-74.0060", Description: "Critical emergency situation", ResponseTeamID: &teamIDs[0]},
		{UserID: demoUser.ID, Status: models.RequestStatusInProgress, Latitude: "40.7282", Longitude: "-73.9942", Description: "In progress emergency", ResponseTeamID: &teamIDs[1]},
		{UserID: demoUser.ID, Status: models.RequestStatusInProgress, Latitude: "40.7300", Longitude: "-74.0200", Description: "Another in progress emergency", ResponseTeamID: &teamIDs[2]},
	}
	for i := range requests {
		if err := s.CreateEmergencyRequest(&requests[i]); err != nil {
			return err
		}
	}

	services := []models.MedicalService{
		{Name: "City General Hospital", Type: "hospital", Address: "123 Main St, New York", Latitude: "40.7128", Longitude: "-74.0060", Rating: "4.5", ReviewCount: 428, Phone: "555-123-4567", OpeningHours: "Open 24/7", Distance: "1.2"},
		{Name: "Wellness Urgent Care", Type: "clinic", Address: "456 Broadway, New York", Latitude: "40.7282", Longitude: "-73.9942", Rating: "4.0", ReviewCount: 156, Phone: "555-234-5678", OpeningHours: "Open until 10 PM", Distance: "0.8"},
		{Name: "HealthPlus Pharmacy", Type: "pharmacy", Address: "789 5th Ave, New York", Latitude: "40.7300", Longitude: "-74.0200", Rating: "4.8", ReviewCount: 312, Phone: "555-345-6789", OpeningHours: "Open until 9 PM", Distance: "0.3"},
	}
	for i := range services {
		if err := s.CreateMedicalService(&services[i]); err != nil {
			return err
		}
	}

	statuses := []models.SystemStatus{
		{Name: "Emergency Response", Status: models.SystemStatusOperational, Icon: "fa-ambulance"},
		{Name: "Location Services", Status: models.SystemStatusOperational, Icon: "fa-location-dot"},
		{Name: "Notifications", Status: models.SystemStatusPartial, Icon: "fa-bell"},
		{Name: "Medical Database", Status: models.SystemStatusOperational, Icon: "fa-database"},
	}
	for i := range statuses {
		if err := s.CreateSystemStatus(&statuses[i]); err != nil {
			return err
		}
	}

	activities := []models.Activity{
		{Title: "System maintenance completed", Description: "Yesterday, 11:30 PM", Icon: "fa-check", IconBg: "bg-primary-100"},
		{Title: "Updated hospital directory", Description: "3 days ago, 9:15 AM", Icon: "fa-hospital", IconBg: "bg-success-50"},
		{Title: "Emergency alert test conducted", Description: "5 days ago, 2:45 PM", Icon: "fa-exclamation-triangle", IconBg: "bg-danger-50"},
	}
	for i := range activities {
		if err := s.CreateActivity(&activities[i]); err != nil {
			return err
		}
	}

	return s.CreateUserSettings(models.DefaultSetting(demoUser.ID))
}
