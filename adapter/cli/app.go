package cli

import (
	"github.com/mindstash/mindstash/internal/calendar"
	"github.com/mindstash/mindstash/internal/inbox"
	"github.com/mindstash/mindstash/internal/notes"
	"github.com/mindstash/mindstash/internal/routing"
)

// App bundles the handlers and collections the CLI commands need.
type App struct {
	SubmitThoughtHandler   *routing.SubmitThoughtHandler
	RouteToCalendarHandler *routing.RouteToCalendarHandler
	RouteToNotesHandler    *routing.RouteToNotesHandler

	Inbox    *inbox.Store
	Calendar *calendar.Collection
	Notes    *notes.Collection
}

var app *App

// SetApp installs the application instance for commands to use.
func SetApp(a *App) { app = a }

// GetApp returns the installed application instance.
func GetApp() *App { return app }
