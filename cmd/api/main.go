package main

import (
	"fmt"
	"net/http"

	"github.com/nexoptima/ems-backend-go/internal/config"
	appHTTP "github.com/nexoptima/ems-backend-go/internal/handler/http"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
	"github.com/nexoptima/ems-backend-go/internal/pkg/jwt"
	"github.com/nexoptima/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nexoptima/ems-backend-go/internal/service/attendance"
	authService "github.com/nexoptima/ems-backend-go/internal/service/auth"
	dashboardService "github.com/nexoptima/ems-backend-go/internal/service/dashboard"
	leaveService "github.com/nexoptima/ems-backend-go/internal/service/leave"
	taskService "github.com/nexoptima/ems-backend-go/internal/service/task"
	userService "github.com/nexoptima/ems-backend-go/internal/service/user"
	worklogService "github.com/nexoptima/ems-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo)
	taskSvc := taskService.NewTaskService(db, taskRepo, userRepo)
	workLogSvc := worklogService.NewWorkLogService(db, workLogRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		WorkLog:    appHTTP.NewWorkLogHandler(workLogSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
