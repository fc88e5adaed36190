package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dharunlider/erp-shift-backend-go/internal/config"
	appHTTP "github.com/dharunlider/erp-shift-backend-go/internal/handler/http"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/database"
	"github.com/dharunlider/erp-shift-backend-go/internal/repository/postgresql"
	calendarService "github.com/dharunlider/erp-shift-backend-go/internal/service/calendar"
	holidayService "github.com/dharunlider/erp-shift-backend-go/internal/service/holiday"
	masterService "github.com/dharunlider/erp-shift-backend-go/internal/service/master"
	shiftService "github.com/dharunlider/erp-shift-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "erp-shift-backend"),
		slog.String("env", cfg.App.Env),
	)

	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	categoryRepo := postgresql.NewShiftCategoryRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	shiftSvc := shiftService.NewShiftService(assignmentRepo, categoryRepo, staffRepo)
	calendarSvc := calendarService.NewCalendarService(
		staffRepo,
		assignmentRepo,
		categoryRepo,
		attendanceRepo,
		leaveRepo,
		holidayRepo,
		logger,
	)
	staffSvc := masterService.NewStaffService(staffRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)

	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	masterHandler := appHTTP.NewMasterHandler(staffSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(cfg, shiftHandler, calendarHandler, masterHandler, holidayHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}
