package routes

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aegisone/campus/internal/app/controllers"
	"github.com/aegisone/campus/internal/middleware"
)

func TestRegisteredPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRouter(router, &controllers.Controllers{}, middleware.NewAuthMiddleware(nil))

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /health",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/users/bulk-import",
		"GET /api/v1/dashboard",
		"POST /api/v1/grievances",
		"POST /api/v1/internships/:id/apply",
		"POST /api/v1/clubs/:id/join",
		"POST /api/v1/attendance",
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}
