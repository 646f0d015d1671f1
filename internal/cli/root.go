package cli

import (
	"github.com/spf13/cobra"

	"github.com/jchau/itin/internal/config"
	"github.com/jchau/itin/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trips       service.TripService
	Itineraries service.ItineraryService
	Config      *config.Config

	// IsInteractive reports whether stdin is a terminal; forms and the
	// plan TUI are only offered when it is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "itin" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "itin",
		Short: "Travel itinerary planner with back-to-back time sync",
	}

	root.AddCommand(
		newTripCmd(app),
		newItemCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newPlanCmd(app),
	)

	return root
}
