package seeder

import (
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Sujal2120/DailyFlow/models"
	"github.com/Sujal2120/DailyFlow/pkg/password"
	"github.com/Sujal2120/DailyFlow/repository"
)

// Repositories bundles every store the seeder fills.
type Repositories struct {
	Users         *repository.UserRepository
	Departments   *repository.DepartmentRepository
	Attendance    *repository.AttendanceRepository
	LeaveRequests *repository.LeaveRequestRepository
	Notifications *repository.NotificationRepository
}

// SeedAll loads the demo dataset: three users, their recent attendance,
// two leave requests, and some notification history. Everything lives in
// memory, so this runs on every startup.
func SeedAll(repos Repositories) {
	log.Println("Seeding demo data...")

	seedDepartments(repos.Departments)
	users := seedUsers(repos.Users)
	seedAttendance(repos.Attendance, users)
	seedLeaveRequests(repos.LeaveRequests, users)
	seedNotifications(repos.Notifications, users)

	log.Println("Seeding complete.")
}

func seedDepartments(repo *repository.DepartmentRepository) {
	for _, name := range []string{"Human Resources", "Engineering", "Design"} {
		if _, err := repo.Create(name); err != nil {
			log.Printf("skipping department %q: %v", name, err)
		}
	}
}

type seededUsers struct {
	Admin models.User
	Sujal models.User
	Emily models.User
}

func seedUsers(repo *repository.UserRepository) seededUsers {
	var users seededUsers

	create := func(user models.User, plainPassword string) models.User {
		hashed, err := password.HashPassword(plainPassword)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}
		user.Password = hashed
		if _, err := repo.Create(&user); err != nil {
			log.Fatalf("failed to seed user %s: %v", user.Email, err)
		}
		return user
	}

	users.Admin = create(models.User{
		Name:       "Admin Manager",
		Email:      "admin@dayflow.com",
		Role:       models.RoleAdmin,
		Department: "Human Resources",
		Phone:      "+1 (555) 012-3456",
		Address:    "123 SkyNet Ave, Tech City",
		Salary:     95000,
	}, "admin123")

	users.Sujal = create(models.User{
		Name:       "Sujal",
		Email:      "sujal@dayflow.com",
		Role:       models.RoleEmployee,
		Department: "Engineering",
		Phone:      "+91 98765 43210",
		Address:    "456 Code Lane, Dev Valley",
		Salary:     75000,
		Streak:     15,
	}, "user123")

	users.Emily = create(models.User{
		Name:       "Emily Blunt",
		Email:      "emily@dayflow.com",
		Role:       models.RoleEmployee,
		Department: "Design",
		Phone:      "+1 (555) 111-2222",
		Address:    "789 Art St, Creative Town",
		Salary:     72000,
		Streak:     8,
	}, "user123")

	return users
}

func seedAttendance(repo *repository.AttendanceRepository, users seededUsers) {
	repo.Seed([]models.Attendance{
		{
			ID:       ulid.Make().String(),
			UserID:   users.Sujal.ID,
			Date:     "2023-10-24",
			Status:   models.StatusPresent,
			CheckIn:  "09:00 AM",
			CheckOut: "05:00 PM",
		},
		{
			ID:       ulid.Make().String(),
			UserID:   users.Sujal.ID,
			Date:     "2023-10-25",
			Status:   models.StatusPresent,
			CheckIn:  "09:15 AM",
			CheckOut: "05:10 PM",
		},
		{
			ID:       ulid.Make().String(),
			UserID:   users.Emily.ID,
			Date:     "2023-10-25",
			Status:   models.StatusAbsent,
			CheckIn:  "-",
			CheckOut: "-",
		},
		{
			ID:       ulid.Make().String(),
			UserID:   users.Sujal.ID,
			Date:     "2023-10-26",
			Status:   models.StatusHalfDay,
			CheckIn:  "09:00 AM",
			CheckOut: "01:00 PM",
		},
	})
}

func seedLeaveRequests(repo *repository.LeaveRequestRepository, users seededUsers) {
	now := time.Now()

	repo.Seed([]models.LeaveRequest{
		{
			ID:        ulid.Make().String(),
			UserID:    users.Sujal.ID,
			Type:      "Sick Leave",
			StartDate: "2023-11-01",
			EndDate:   "2023-11-03",
			Reason:    "Flu",
			Status:    models.LeaveApproved,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        ulid.Make().String(),
			UserID:    users.Emily.ID,
			Type:      "Paid Leave",
			StartDate: "2023-12-20",
			EndDate:   "2023-12-25",
			Reason:    "Vacation",
			Status:    models.LeavePending,
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
}

func seedNotifications(repo *repository.NotificationRepository, users seededUsers) {
	now := time.Now()

	repo.Seed([]models.Notification{
		{
			ID:        ulid.Make().String(),
			UserID:    users.Sujal.ID,
			Msg:       "Your leave for Oct 24 was approved.",
			Time:      "2 hours ago",
			Read:      false,
			Type:      models.NotificationSuccess,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        ulid.Make().String(),
			UserID:    users.Sujal.ID,
			Msg:       "Welcome to Dayflow! Please complete your profile.",
			Time:      "1 day ago",
			Read:      true,
			Type:      models.NotificationInfo,
			CreatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID:        ulid.Make().String(),
			UserID:    users.Admin.ID,
			Msg:       "New leave request from Emily Blunt.",
			Time:      "30 mins ago",
			Read:      false,
			Type:      models.NotificationAlert,
			CreatedAt: now.Add(-30 * time.Minute),
		},
	})
}
