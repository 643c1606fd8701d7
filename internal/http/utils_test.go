package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/workplacehq/workplace/internal/domain"
	"github.com/workplacehq/workplace/internal/domain/mocks"
	"github.com/workplacehq/workplace/internal/http/middleware"
	"github.com/workplacehq/workplace/internal/service"
	"github.com/workplacehq/workplace/pkg/logger"
)

const testSecretKey = "handler-test-secret"

type handlerMocks struct {
	userService      *mocks.MockUserServiceInterface
	workplaceService *mocks.MockWorkplaceServiceInterface
	projectService   *mocks.MockProjectServiceInterface
	boardService     *mocks.MockBoardServiceInterface
	taskService      *mocks.MockTaskServiceInterface
}

// setupTest wires every handler onto a mux with mocked services and a real
// token verifier, so requests exercise the auth middleware end to end.
func setupTest(t *testing.T, ctrl *gomock.Controller) (*http.ServeMux, *handlerMocks, *service.AuthService) {
	t.Helper()

	m := &handlerMocks{
		userService:      mocks.NewMockUserServiceInterface(ctrl),
		workplaceService: mocks.NewMockWorkplaceServiceInterface(ctrl),
		projectService:   mocks.NewMockProjectServiceInterface(ctrl),
		boardService:     mocks.NewMockBoardServiceInterface(ctrl),
		taskService:      mocks.NewMockTaskServiceInterface(ctrl),
	}

	authService := service.NewAuthService(service.AuthServiceConfig{
		SecretKey: testSecretKey,
		Logger:    logger.NewTestLogger(t),
	})
	authMiddleware := middleware.NewAuthMiddleware(authService)
	log := logger.NewTestLogger(t)

	mux := http.NewServeMux()
	NewUserHandler(m.userService, m.workplaceService, authMiddleware, log).RegisterRoutes(mux)
	NewWorkplaceHandler(m.workplaceService, authMiddleware, log).RegisterRoutes(mux)
	NewProjectHandler(m.projectService, authMiddleware, log).RegisterRoutes(mux)
	NewBoardHandler(m.boardService, authMiddleware, log).RegisterRoutes(mux)
	NewTaskHandler(m.taskService, authMiddleware, log).RegisterRoutes(mux)

	return mux, m, authService
}

func testToken(authService *service.AuthService, userID string) string {
	user := &domain.User{ID: userID, Email: userID + "@example.com"}
	return authService.GenerateAuthToken(user, "test-session", time.Now().Add(24*time.Hour))
}
