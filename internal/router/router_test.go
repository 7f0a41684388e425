package router

import (
	"net/http"
	"testing"

	"taskdeck/internal/cache"
	"taskdeck/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/users/me",
		http.MethodPost + " /api/tasks",
		http.MethodGet + " /api/tasks",
		http.MethodGet + " /api/tasks/:task_id",
		http.MethodPut + " /api/tasks/:task_id",
		http.MethodPatch + " /api/tasks/:task_id/complete",
		http.MethodDelete + " /api/tasks/:task_id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
