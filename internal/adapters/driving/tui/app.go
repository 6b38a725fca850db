package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/casefetch/internal/adapters/driving/tui/views/lookup"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// keymap holds the key bindings.
	keymap *keymap.KeyMap

	// lookupView is the only screen.
	lookupView *lookup.View

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts lookup.Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	view, err := lookup.NewView(s, km, ports.Board, ports.Workflow, ports.ResultAction, opts)
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		keymap:     km,
		lookupView: view,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.lookupView.WithContext(ctx)
	return a
}

// Init implements tea.Model. The first challenge is requested before any
// user interaction.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("casefetch - Case Lookup"),
		a.lookupView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.lookupView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit
	}

	a.lookupView, cmd = a.lookupView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.lookupView.View()
}

// Run starts the TUI application. Presenter changes made by workflow
// calls running in the background are forwarded to the program.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	a.ports.Board.OnChange(func() {
		p.Send(messages.BoardChanged{})
	})
	defer a.ports.Board.OnChange(nil)

	_, err := p.Run()
	return err
}

// Lookup returns the lookup view.
func (a *App) Lookup() *lookup.View {
	return a.lookupView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.lookupView.SetDimensions(width, height)
}
