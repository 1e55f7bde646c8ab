package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexoptima/ems-backend-go/internal/config"
	"github.com/nexoptima/ems-backend-go/internal/domain/attendance"
	"github.com/nexoptima/ems-backend-go/internal/domain/leave"
	"github.com/nexoptima/ems-backend-go/internal/domain/task"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/domain/worklog"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/pkg/dateutil"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
)

// Seeds a demo organization: one admin, one HR manager, four employees, and
// sample records in every ledger. Existing data is wiped first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.Exec(ctx, `TRUNCATE work_log_items, work_logs, tasks, leave_requests, attendances, users CASCADE`); err != nil {
		log.Fatal("Error clearing existing data: ", err)
	}
	fmt.Println("Cleared existing data")

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)

	mustCreateUser := func(firstName, lastName, email, password string, role user.Role, employeeID, department, position string, managerID *string) user.User {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error hashing password: ", err)
		}
		u, err := userRepo.Create(ctx, user.User{
			FirstName:    firstName,
			LastName:     lastName,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			EmployeeID:   employeeID,
			Department:   department,
			Position:     position,
			ManagerID:    managerID,
			JoiningDate:  time.Now().UTC(),
			IsActive:     true,
		})
		if err != nil {
			log.Fatalf("Error creating user %s: %v", email, err)
		}
		return u
	}

	admin := mustCreateUser("John", "Admin", "admin@nexoptima.com", "admin123", user.RoleAdmin, "EMP001", "Administration", "System Administrator", nil)
	hrManager := mustCreateUser("Sarah", "Wilson", "hr@nexoptima.com", "hr1234", user.RoleHR, "EMP002", "Human Resources", "HR Manager", nil)

	employees := []user.User{
		mustCreateUser("Mike", "Johnson", "mike@nexoptima.com", "employee123", user.RoleEmployee, "EMP003", "Development", "Frontend Developer", &hrManager.ID),
		mustCreateUser("Emily", "Davis", "emily@nexoptima.com", "employee123", user.RoleEmployee, "EMP004", "Development", "Backend Developer", &hrManager.ID),
		mustCreateUser("David", "Brown", "david@nexoptima.com", "employee123", user.RoleEmployee, "EMP005", "Design", "UI/UX Designer", &hrManager.ID),
		mustCreateUser("Lisa", "Garcia", "lisa@nexoptima.com", "employee123", user.RoleEmployee, "EMP006", "Marketing", "Marketing Specialist", &hrManager.ID),
	}
	fmt.Println("Created users")

	authTask, err := taskRepo.Create(ctx, task.Task{
		Title:            "Implement User Authentication",
		Description:      "Create JWT-based authentication system with role-based access control",
		AssignedTo:       employees[0].ID,
		AssignedBy:       hrManager.ID,
		Project:          "NexOptima EMS",
		Priority:         task.PriorityHigh,
		Status:           task.StatusInProgress,
		StartDate:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		DueDate:          time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		EstimatedHours:   40,
		InspectionStatus: task.InspectionPending,
	})
	if err != nil {
		log.Fatal("Error creating task: ", err)
	}

	sampleTasks := []task.Task{
		{
			Title:            "Design Dashboard UI",
			Description:      "Create responsive dashboard designs for different user roles",
			AssignedTo:       employees[2].ID,
			AssignedBy:       hrManager.ID,
			Project:          "NexOptima EMS",
			Priority:         task.PriorityMedium,
			Status:           task.StatusCompleted,
			StartDate:        time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
			DueDate:          time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
			EstimatedHours:   30,
			ActualHours:      28,
			InspectionStatus: task.InspectionPending,
		},
		{
			Title:            "Database Schema Design",
			Description:      "Design and implement relational schemas for all entities",
			AssignedTo:       employees[1].ID,
			AssignedBy:       admin.ID,
			Project:          "NexOptima EMS",
			Priority:         task.PriorityHigh,
			Status:           task.StatusCompleted,
			StartDate:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			DueDate:          time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			EstimatedHours:   35,
			ActualHours:      32,
			InspectionStatus: task.InspectionPending,
		},
		{
			Title:            "Marketing Campaign Analysis",
			Description:      "Analyze current marketing campaigns and prepare performance report",
			AssignedTo:       employees[3].ID,
			AssignedBy:       hrManager.ID,
			Project:          "Q3 Marketing Review",
			Priority:         task.PriorityMedium,
			Status:           task.StatusPending,
			StartDate:        time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			DueDate:          time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			EstimatedHours:   25,
			InspectionStatus: task.InspectionPending,
		},
	}
	for _, t := range sampleTasks {
		created, err := taskRepo.Create(ctx, t)
		if err != nil {
			log.Fatal("Error creating task: ", err)
		}
		if t.Status == task.StatusCompleted {
			completedAt := t.DueDate.AddDate(0, 0, -1)
			if _, err := taskRepo.UpdateStatus(ctx, created.ID, task.StatusCompleted, &t.ActualHours, &completedAt); err != nil {
				log.Fatal("Error completing seeded task: ", err)
			}
		}
	}
	fmt.Println("Created tasks")

	today := dateutil.StartOfDay(time.Now().UTC())
	for i := 0; i < 10; i++ {
		day := today.AddDate(0, 0, -i)
		for _, employee := range employees {
			if rand.Float64() <= 0.1 {
				continue
			}
			checkIn := day.Add(time.Duration(9+rand.Intn(2))*time.Hour + time.Duration(rand.Intn(60))*time.Minute)
			checkOut := checkIn.Add(time.Duration(8+rand.Intn(2)) * time.Hour)

			record, err := attendanceRepo.Create(ctx, attendance.Attendance{
				UserID:  employee.ID,
				Date:    day,
				CheckIn: checkIn,
				Status:  attendance.StatusPresent,
			})
			if err != nil {
				log.Fatal("Error creating attendance record: ", err)
			}
			if _, err := attendanceRepo.SetCheckOut(ctx, record.ID, checkOut, checkOut.Sub(checkIn).Hours()); err != nil {
				log.Fatal("Error setting check-out: ", err)
			}
		}
	}
	fmt.Println("Created attendance records")

	vacationStart := today.AddDate(0, 0, 14)
	approved, err := leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    employees[0].ID,
		LeaveType: "vacation",
		StartDate: vacationStart,
		EndDate:   vacationStart.AddDate(0, 0, 2),
		TotalDays: 3,
		Reason:    "Family vacation",
		Status:    leave.StatusPending,
	})
	if err != nil {
		log.Fatal("Error creating leave request: ", err)
	}
	if _, err := leaveRepo.UpdateStatus(ctx, approved.ID, leave.StatusApproved, hrManager.ID, time.Now().UTC(), nil); err != nil {
		log.Fatal("Error approving leave request: ", err)
	}

	sickStart := today.AddDate(0, 0, -2)
	if _, err := leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    employees[1].ID,
		LeaveType: "sick",
		StartDate: sickStart,
		EndDate:   sickStart.AddDate(0, 0, 1),
		TotalDays: 2,
		Reason:    "Flu symptoms",
		Status:    leave.StatusPending,
	}); err != nil {
		log.Fatal("Error creating leave request: ", err)
	}
	fmt.Println("Created leave applications")

	blockers := "None"
	achievements := "Completed user registration flow"
	tomorrowsPlan := "Work on login functionality"
	for i := 0; i < 5; i++ {
		day := today.AddDate(0, 0, -i)
		for _, employee := range employees[:2] {
			hours := float64(6 + rand.Intn(3))
			if _, err := workLogRepo.Create(ctx, worklog.WorkLog{
				UserID:        employee.ID,
				Date:          day,
				Blockers:      &blockers,
				Achievements:  &achievements,
				TomorrowsPlan: &tomorrowsPlan,
				TotalHours:    8,
				Productivity:  worklog.ProductivityHigh,
				Items: []worklog.WorkLogItem{
					{
						TaskID:      &authTask.ID,
						HoursWorked: hours,
						Description: "Worked on authentication module implementation",
					},
				},
			}); err != nil {
				log.Fatal("Error creating work log: ", err)
			}
		}
	}
	fmt.Println("Created work logs")

	fmt.Println("\n=== SEED DATA CREATED SUCCESSFULLY ===")
	fmt.Println("\nLogin Credentials:")
	fmt.Printf("Admin %s: %s / admin123\n", admin.FullName(), admin.Email)
	fmt.Printf("HR Manager %s: %s / hr1234\n", hrManager.FullName(), hrManager.Email)
	for _, employee := range employees {
		fmt.Printf("Employee %s: %s / employee123\n", employee.FullName(), employee.Email)
	}
}
