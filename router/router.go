package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"ops-backend/config"
	"ops-backend/config/middleware"
	_ "ops-backend/docs"
	"ops-backend/handlers"
	"ops-backend/models"
	"ops-backend/pkg/paseto"
	"ops-backend/pkg/vault"
	"ops-backend/repository"
	"ops-backend/services"
)

type Dependencies struct {
	Config *config.AppConfig
	Log    *zap.Logger
	Tokens *paseto.Maker
	Vault  *vault.Vault
	Clock  services.Clock
	Syncer services.CalendarSyncer
}

func SetupRoutes(app *fiber.App, db *mongo.Database, deps Dependencies) {
	log := deps.Log
	log.Info("registering routes")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)
	kudosRepo := repository.NewKudosRepository(db)
	progressRepo := repository.NewTrainingProgressRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	meetingAttendanceRepo := repository.NewMeetingAttendanceRepository(db)
	calendarRepo := repository.NewRepository[models.CalendarEvent](db, config.CalendarEventCollection)
	courseRepo := repository.NewRepository[models.TrainingCourse](db, config.TrainingCourseCollection)
	subscriptionRepo := repository.NewRepository[models.Subscription](db, config.SubscriptionCollection)

	// Services
	authService := services.NewAuthService(userRepo, deps.Tokens)
	attendanceService := services.NewAttendanceService(attendanceRepo, deps.Clock)
	financeService := services.NewFinanceService(financeRepo, salaryRepo)
	salaryService := services.NewSalaryService(salaryRepo)
	dashboardService := services.NewDashboardService(projectRepo, taskRepo, userRepo, leaveRepo)
	calendarService := services.NewCalendarService(calendarRepo, deps.Syncer, deps.Config.Calendar.Timeout, deps.Clock, log)
	trainingService := services.NewTrainingService(courseRepo, progressRepo, kudosRepo, deps.Clock, log)
	meetingService := services.NewMeetingService(meetingRepo, meetingAttendanceRepo, userRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, deps.Vault)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, log)
	financeHandler := handlers.NewFinanceHandler(financeService, salaryService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)
	calendarHandler := handlers.NewCalendarHandler(calendarService, log)
	leaveHandler := handlers.NewLeaveRequestHandler(leaveRepo, log)
	kudosHandler := handlers.NewKudosHandler(kudosRepo, log)
	trainingHandler := handlers.NewTrainingHandler(trainingService, progressRepo, log)
	meetingHandler := handlers.NewMeetingHandler(meetingService, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, log)
	fileHandler := handlers.NewFileHandler(repository.NewFileRepository(db), log)

	users := handlers.NewResource[models.User, struct{}, struct{}](
		handlers.ResourceConfig{Name: "User", Sort: repository.ListOptions{SortBy: "name"}},
		userRepo, nil, nil, log)
	projects := handlers.NewResource[models.Project, models.ProjectCreatePayload, models.ProjectUpdatePayload](
		handlers.ResourceConfig{Name: "Project"},
		projectRepo, models.ProjectCreatePayload.Build, models.ProjectUpdatePayload.Changes, log)
	tasks := handlers.NewResource[models.Task, models.TaskCreatePayload, models.TaskUpdatePayload](
		handlers.ResourceConfig{Name: "Task", Filters: map[string]string{"project_id": "project_id", "user_id": "assigned_to"}},
		taskRepo, models.TaskCreatePayload.Build, models.TaskUpdatePayload.Changes, log)
	events := handlers.NewResource[models.CalendarEvent, models.CalendarEventCreatePayload, models.CalendarEventUpdatePayload](
		handlers.ResourceConfig{Name: "Event", Sort: repository.ListOptions{SortBy: "start_time"}},
		calendarRepo, models.CalendarEventCreatePayload.Build, models.CalendarEventUpdatePayload.Changes, log)
	content := handlers.NewResource[models.ContentItem, models.ContentItemCreatePayload, models.ContentItemUpdatePayload](
		handlers.ResourceConfig{Name: "Content item"},
		repository.NewRepository[models.ContentItem](db, config.ContentItemCollection),
		models.ContentItemCreatePayload.Build, models.ContentItemUpdatePayload.Changes, log)
	aiProjects := handlers.NewResource[models.AIProject, models.AIProjectCreatePayload, models.AIProjectUpdatePayload](
		handlers.ResourceConfig{Name: "AI project"},
		repository.NewRepository[models.AIProject](db, config.AIProjectCollection),
		models.AIProjectCreatePayload.Build, models.AIProjectUpdatePayload.Changes, log)
	research := handlers.NewResource[models.ResearchNote, models.ResearchNoteCreatePayload, struct{}](
		handlers.ResourceConfig{Name: "Research note"},
		repository.NewRepository[models.ResearchNote](db, config.ResearchNoteCollection),
		models.ResearchNoteCreatePayload.Build, nil, log)
	academy := handlers.NewResource[models.AcademyCourse, models.AcademyCourseCreatePayload, models.AcademyCourseUpdatePayload](
		handlers.ResourceConfig{Name: "Course"},
		repository.NewRepository[models.AcademyCourse](db, config.AcademyCourseCollection),
		models.AcademyCourseCreatePayload.Build, models.AcademyCourseUpdatePayload.Changes, log)
	personal := handlers.NewResource[models.PersonalTask, models.PersonalTaskCreatePayload, models.PersonalTaskUpdatePayload](
		handlers.ResourceConfig{Name: "Personal task", Filters: map[string]string{"user_id": "user_id"}, Required: []string{"user_id"}},
		repository.NewRepository[models.PersonalTask](db, config.PersonalTaskCollection),
		models.PersonalTaskCreatePayload.Build, models.PersonalTaskUpdatePayload.Changes, log)
	cloud := handlers.NewResource[models.CloudService, models.CloudServiceCreatePayload, models.CloudServiceUpdatePayload](
		handlers.ResourceConfig{Name: "Cloud service", Sort: repository.ListOptions{SortBy: "name"}},
		repository.NewRepository[models.CloudService](db, config.CloudServiceCollection),
		models.CloudServiceCreatePayload.Build, models.CloudServiceUpdatePayload.Changes, log)
	kudos := handlers.NewResource[models.KudosTransaction, models.KudosTransactionCreatePayload, struct{}](
		handlers.ResourceConfig{Name: "Kudos transaction", Filters: map[string]string{"user_id": "user_id"}},
		kudosRepo, models.KudosTransactionCreatePayload.Build, nil, log)
	courses := handlers.NewResource[models.TrainingCourse, models.TrainingCourseCreatePayload, models.TrainingCourseUpdatePayload](
		handlers.ResourceConfig{Name: "Training course"},
		courseRepo, models.TrainingCourseCreatePayload.Build, models.TrainingCourseUpdatePayload.Changes, log)
	meetings := handlers.NewResource[models.Meeting, models.MeetingCreatePayload, models.MeetingUpdatePayload](
		handlers.ResourceConfig{Name: "Meeting", Sort: repository.ListOptions{SortBy: "start_time", Desc: true}},
		meetingRepo, models.MeetingCreatePayload.Build, models.MeetingUpdatePayload.Changes, log)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Operations Backend API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", middleware.OptionalAuthMiddleware(deps.Tokens), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Registered after /auth so login and register stay public.
	protected := api.Group("", middleware.AuthMiddleware(deps.Tokens))
	admin := middleware.AdminMiddleware()

	protected.Get("/users", users.List)
	protected.Get("/users/me", userHandler.GetMe)
	protected.Get("/users/:id", users.Get)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", admin, users.Delete)

	protected.Get("/projects", projects.List)
	protected.Post("/projects", projects.Create)
	protected.Get("/projects/:id", projects.Get)
	protected.Put("/projects/:id", projects.Update)
	protected.Delete("/projects/:id", projects.Delete)

	protected.Get("/tasks", tasks.List)
	protected.Post("/tasks", tasks.Create)
	protected.Get("/tasks/:id", tasks.Get)
	protected.Put("/tasks/:id", tasks.Update)
	protected.Delete("/tasks/:id", tasks.Delete)

	protected.Get("/calendar/events", events.List)
	protected.Post("/calendar/events", calendarHandler.CreateEvent)
	protected.Get("/calendar/events/:id", events.Get)
	protected.Get("/calendar/events/:id/occurrences", calendarHandler.GetOccurrences)
	protected.Put("/calendar/events/:id", events.Update)
	protected.Delete("/calendar/events/:id", events.Delete)

	protected.Get("/leave-requests", leaveHandler.GetAllLeaveRequests)
	protected.Post("/leave-requests", leaveHandler.CreateLeaveRequest)
	protected.Put("/leave-requests/:id", leaveHandler.UpdateLeaveRequestStatus)

	protected.Get("/content", content.List)
	protected.Post("/content", content.Create)
	protected.Put("/content/:id", content.Update)

	protected.Get("/ai-projects", aiProjects.List)
	protected.Post("/ai-projects", aiProjects.Create)
	protected.Put("/ai-projects/:id", aiProjects.Update)

	protected.Get("/research/notes", research.List)
	protected.Post("/research/notes", research.Create)
	protected.Delete("/research/notes/:id", research.Delete)

	protected.Get("/academy/courses", academy.List)
	protected.Post("/academy/courses", academy.Create)
	protected.Put("/academy/courses/:id", academy.Update)

	protected.Get("/personal-tasks", personal.List)
	protected.Post("/personal-tasks", personal.Create)
	protected.Put("/personal-tasks/:id", personal.Update)
	protected.Delete("/personal-tasks/:id", personal.Delete)

	protected.Get("/cloud-services", cloud.List)
	protected.Post("/cloud-services", cloud.Create)
	protected.Put("/cloud-services/:id", cloud.Update)

	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	protected.Get("/finance/transactions", financeHandler.GetTransactions)
	protected.Post("/finance/transactions", financeHandler.CreateTransaction)
	protected.Delete("/finance/transactions/:id", financeHandler.DeleteTransaction)
	protected.Get("/finance/summary", financeHandler.GetSummary)
	protected.Get("/finance/salaries", financeHandler.GetSalaries)
	protected.Post("/finance/salaries", admin, financeHandler.CreateSalary)
	protected.Put("/finance/salaries/:id", admin, financeHandler.UpdateSalaryStatus)

	protected.Post("/attendance/check-in", attendanceHandler.CheckIn)
	protected.Post("/attendance/check-out", attendanceHandler.CheckOut)
	protected.Get("/attendance/records", attendanceHandler.GetRecords)
	protected.Get("/attendance/summary", attendanceHandler.GetSummary)

	protected.Get("/kudos", kudos.List)
	protected.Post("/kudos", kudos.Create)
	protected.Get("/kudos/balance/:user_id", kudosHandler.GetBalance)
	protected.Get("/kudos/leaderboard", kudosHandler.GetLeaderboard)

	protected.Get("/training/courses", courses.List)
	protected.Post("/training/courses", courses.Create)
	protected.Put("/training/courses/:id", courses.Update)
	protected.Delete("/training/courses/:id", courses.Delete)
	protected.Put("/training/courses/:id/progress", trainingHandler.UpdateProgress)
	protected.Get("/training/progress", trainingHandler.GetProgress)

	protected.Get("/meetings", meetings.List)
	protected.Post("/meetings", meetings.Create)
	protected.Post("/meetings/attendance", meetingHandler.RecordAttendance)
	protected.Get("/meetings/:id", meetings.Get)
	protected.Put("/meetings/:id", meetings.Update)
	protected.Delete("/meetings/:id", meetings.Delete)
	protected.Get("/meetings/:id/attendance", meetingHandler.GetAttendance)
	protected.Get("/meetings/:id/qr", meetingHandler.GetQRCode)

	protected.Get("/subscriptions", subscriptionHandler.GetAll)
	protected.Post("/subscriptions", subscriptionHandler.Create)
	protected.Put("/subscriptions/:id", subscriptionHandler.Update)
	protected.Delete("/subscriptions/:id", subscriptionHandler.Delete)
	protected.Get("/subscriptions/:id/credentials", subscriptionHandler.GetCredentials)

	protected.Post("/files", fileHandler.UploadFile)
	protected.Get("/files/:id", fileHandler.GetFile)

	log.Info("routes registered", zap.Int("count", len(app.GetRoutes(true))))
}
