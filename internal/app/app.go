package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/workplacehq/workplace/config"
	"github.com/workplacehq/workplace/internal/database"
	"github.com/workplacehq/workplace/internal/domain"
	httpHandler "github.com/workplacehq/workplace/internal/http"
	"github.com/workplacehq/workplace/internal/http/middleware"
	"github.com/workplacehq/workplace/internal/migrations"
	"github.com/workplacehq/workplace/internal/repository"
	"github.com/workplacehq/workplace/internal/service"
	pkgDatabase "github.com/workplacehq/workplace/pkg/database"
	"github.com/workplacehq/workplace/pkg/logger"
	"github.com/workplacehq/workplace/pkg/mailer"
	"github.com/workplacehq/workplace/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer

	// Repository getters for testing
	GetUserRepository() domain.UserRepository
	GetWorkplaceRepository() domain.WorkplaceRepository
	GetProjectRepository() domain.ProjectRepository
	GetBoardRepository() domain.BoardRepository
	GetTaskRepository() domain.TaskRepository

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// Repositories
	userRepo      domain.UserRepository
	authRepo      domain.AuthRepository
	workplaceRepo domain.WorkplaceRepository
	projectRepo   domain.ProjectRepository
	boardRepo     domain.BoardRepository
	taskRepo      domain.TaskRepository

	// Services
	authService      *service.AuthService
	userService      *service.UserService
	workplaceService *service.WorkplaceService
	projectService   *service.ProjectService
	boardService     *service.BoardService
	taskService      *service.TaskService

	// Pending board mutations shared by every board request
	mutationRegistry *domain.PendingMutationRegistry

	// HTTP handlers
	mux    *http.ServeMux
	server *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	// Apply options
	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	tracingConfig := &a.config.Tracing

	if err := tracing.InitTracing(tracingConfig); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if tracingConfig.Enabled {
		a.logger.WithField("service_name", tracingConfig.ServiceName).
			WithField("sampling_rate", tracingConfig.SamplingProbability).
			Info("Tracing initialized successfully")
	}

	return nil
}

// InitDB connects to the system database, creating it and its schema on
// first run, and initializes the shared tenant connection manager.
func (a *App) InitDB() error {
	if err := database.EnsureSystemDatabaseExists(database.GetPostgresDSN(&a.config.Database), a.config.Database.DBName); err != nil {
		a.logger.Error(err.Error())
		return fmt.Errorf("failed to ensure system database exists: %w", err)
	}
	a.logger.Info("System database check completed")

	// If tracing is enabled, wrap the postgres driver
	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to system database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping system database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	// Run migrations separately
	migrationManager := migrations.NewManager(a.logger)
	if err := migrationManager.RunMigrations(context.Background(), a.config, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := pkgDatabase.InitializeConnectionManager(a.config, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize connection manager: %w", err)
	}

	a.db = db
	return nil
}

// InitMailer initializes the mailer service
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() {
		// Use console mailer in development
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer for development")
	} else {
		// Use SMTP mailer in production
		a.mailer = mailer.NewSMTPMailer(&mailer.Config{
			SMTPHost:     a.config.SMTP.Host,
			SMTPPort:     a.config.SMTP.Port,
			SMTPUsername: a.config.SMTP.Username,
			SMTPPassword: a.config.SMTP.Password,
			FromEmail:    a.config.SMTP.FromEmail,
			FromName:     a.config.SMTP.FromName,
			WebEndpoint:  a.config.WebEndpoint,
		})
		a.logger.Info("Using SMTP mailer for production")
	}

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	var provisioner database.Provisioner
	if a.config.NamespaceAPI.Endpoint != "" {
		provisioner = database.NewNamespaceAPIProvisioner(&a.config.NamespaceAPI, &a.config.Database, a.logger)
		a.logger.WithField("endpoint", a.config.NamespaceAPI.Endpoint).Info("Using namespace API for tenant provisioning")
	} else {
		provisioner = database.NewPostgresProvisioner(&a.config.Database, a.logger)
		a.logger.Info("Using local Postgres cluster for tenant provisioning")
	}

	a.userRepo = repository.NewUserRepository(a.db)
	a.authRepo = repository.NewSQLAuthRepository(a.db, a.logger)
	a.workplaceRepo = repository.NewWorkplaceRepository(a.db, &a.config.Database, provisioner)
	a.projectRepo = repository.NewProjectRepository(a.workplaceRepo)
	a.boardRepo = repository.NewBoardRepository(a.workplaceRepo, a.projectRepo)
	a.taskRepo = repository.NewTaskRepository(a.workplaceRepo)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	tracer := tracing.GetTracer()

	a.authService = service.NewAuthService(service.AuthServiceConfig{
		Repository:          a.authRepo,
		WorkplaceRepository: a.workplaceRepo,
		SecretKey:           a.config.Security.SecretKey,
		Logger:              a.logger,
	})

	a.userService = service.NewUserService(service.UserServiceConfig{
		Repository:    a.userRepo,
		AuthService:   a.authService,
		Mailer:        a.mailer,
		SessionExpiry: 30 * 24 * time.Hour,
		SecretKey:     a.config.Security.SecretKey,
		Logger:        a.logger,
		IsProduction:  a.config.IsProduction(),
		Tracer:        tracer,
	})

	a.workplaceService = service.NewWorkplaceService(service.WorkplaceServiceConfig{
		Repository:     a.workplaceRepo,
		UserRepository: a.userRepo,
		AuthService:    a.authService,
		Mailer:         a.mailer,
		Logger:         a.logger,
		Tracer:         tracer,
	})

	a.projectService = service.NewProjectService(service.ProjectServiceConfig{
		Repository:  a.projectRepo,
		AuthService: a.authService,
		Logger:      a.logger,
		Tracer:      tracer,
	})

	// One registry for the whole process so every request sees the same
	// optimistic overlays
	a.mutationRegistry = domain.NewPendingMutationRegistry()

	a.boardService = service.NewBoardService(service.BoardServiceConfig{
		Repository:  a.boardRepo,
		Registry:    a.mutationRegistry,
		AuthService: a.authService,
		Logger:      a.logger,
		Tracer:      tracer,
	})

	a.taskService = service.NewTaskService(service.TaskServiceConfig{
		Repository:  a.taskRepo,
		AuthService: a.authService,
		Logger:      a.logger,
		Tracer:      tracer,
	})

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	authMiddleware := middleware.NewAuthMiddleware(a.authService)

	userHandler := httpHandler.NewUserHandler(a.userService, a.workplaceService, authMiddleware, a.logger)
	workplaceHandler := httpHandler.NewWorkplaceHandler(a.workplaceService, authMiddleware, a.logger)
	projectHandler := httpHandler.NewProjectHandler(a.projectService, authMiddleware, a.logger)
	boardHandler := httpHandler.NewBoardHandler(a.boardService, authMiddleware, a.logger)
	taskHandler := httpHandler.NewTaskHandler(a.taskService, authMiddleware, a.logger)

	// Register routes
	userHandler.RegisterRoutes(a.mux)
	workplaceHandler.RegisterRoutes(a.mux)
	projectHandler.RegisterRoutes(a.mux)
	boardHandler.RegisterRoutes(a.mux)
	taskHandler.RegisterRoutes(a.mux)

	return nil
}

// Start starts the HTTP server
func (a *App) Start() error {
	// Create server with wrapped handler for CORS and tracing
	var handler http.Handler = a.mux

	// Apply graceful shutdown middleware first (outermost)
	handler = a.gracefulShutdownMiddleware(handler)

	// Apply tracing middleware if enabled
	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
		a.logger.Info("OpenCensus tracing middleware enabled")
	}

	// Apply CORS middleware
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info("Server starting")

	// Create a fresh notification channel and update the server
	a.serverMu.Lock()
	// Close the existing channel if it exists
	if a.serverStarted != nil {
		close(a.serverStarted)
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Get a reference to the channel before unlocking
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	// Signal that the server has been created and is about to start
	close(serverStarted)

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// Signal shutdown to all components
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources()
	}

	activeCount := a.getActiveRequestCount()
	a.logger.WithField("active_requests", activeCount).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		// Use the provided context deadline if it's sooner than our default timeout
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	// Wait for active requests to drain alongside the server shutdown
	requestsDone := make(chan struct{})
	go func() {
		defer close(requestsDone)
		a.requestWg.Wait()
	}()

	var shutdownErr error
	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			activeCount := a.getActiveRequestCount()
			if activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources closes the system database and the tenant connection pools
func (a *App) cleanupResources() error {
	a.logger.Info("Cleaning up resources...")

	if manager, err := pkgDatabase.GetConnectionManager(); err == nil {
		if err := manager.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing tenant connection pools")
		}
	}

	if a.db != nil {
		// If tracing is enabled, record final stats
		if a.config.Tracing.Enabled {
			if err := ocsql.RecordStats(a.db, 5*time.Second); err != nil {
				a.logger.WithField("error", err).Error("Failed to record final database stats for tracing")
			}
		}

		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing database connection")
			return err
		}
	}

	a.logger.Info("Resource cleanup completed")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created and initialized.
// Returns true if the server started successfully, false if context expired
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting Workplace application")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

// Repository getters for testing
func (a *App) GetUserRepository() domain.UserRepository {
	return a.userRepo
}

func (a *App) GetWorkplaceRepository() domain.WorkplaceRepository {
	return a.workplaceRepo
}

func (a *App) GetProjectRepository() domain.ProjectRepository {
	return a.projectRepo
}

func (a *App) GetBoardRepository() domain.BoardRepository {
	return a.boardRepo
}

func (a *App) GetTaskRepository() domain.TaskRepository {
	return a.taskRepo
}

// incrementActiveRequests atomically increments the active request counter
func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

// decrementActiveRequests atomically decrements the active request counter
func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

// getActiveRequestCount returns the current number of active requests
func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests (public interface method)
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// GetShutdownContext returns the shutdown context for components that need to watch for shutdown
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

// isShuttingDown returns true if the application is in shutdown mode
func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware rejects new requests once shutdown has begun
// and tracks in-flight requests so Shutdown can wait for them
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
