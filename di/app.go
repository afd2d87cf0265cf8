package di

import (
	"hotel/transport/http"
	"hotel/transport/scheduler"
)

// App is the API process: the HTTP server plus the maintenance scheduler.
type App struct {
	HTTP *http.HTTP
	Jobs *scheduler.Jobs
}
