// Package gui provides a native desktop driving window using Fyne.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"

	"ackersim/internal/log"
	"ackersim/internal/sim"
	"ackersim/pkg/car"
	"ackersim/pkg/raster"
	"ackersim/pkg/scene"
)

// DefaultDriveStep is how far one key press or button click drives, in
// metres.
const DefaultDriveStep = 0.1

// App is the simulator window.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	session    *sim.Session
	logger     *log.Logger
	driveStep  float64

	// UI components
	viewer    *MapViewer
	toolbar   *Toolbar
	statusBar *StatusBar
}

// NewApp creates the window around an existing session.
func NewApp(session *sim.Session, logger *log.Logger) *App {
	a := &App{
		fyneApp:   app.New(),
		session:   session,
		logger:    logger,
		driveStep: DefaultDriveStep,
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("Ackermann Steering Simulator")
	a.mainWindow.Resize(fyne.NewSize(900, 900))

	return a
}

// SetDriveStep changes the distance of one drive command. Non-positive
// values are ignored.
func (a *App) SetDriveStep(d float64) {
	if d > 0 {
		a.driveStep = d
	}
}

// Run starts the application and blocks until the window closes.
func (a *App) Run() {
	a.buildUI()
	a.refresh()
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.viewer = NewMapViewer()
	a.statusBar = NewStatusBar()

	a.toolbar = NewToolbar(scene.Names())
	a.toolbar.SetMap(a.session.Status().Map)
	a.toolbar.OnSteerLeft = func() { a.apply(car.Left()) }
	a.toolbar.OnSteerRight = func() { a.apply(car.Right()) }
	a.toolbar.OnForward = func() { a.apply(car.Forward(a.driveStep)) }
	a.toolbar.OnBack = func() { a.apply(car.Back(a.driveStep)) }
	a.toolbar.OnReset = a.reset
	a.toolbar.OnSelectMap = a.selectMap
	a.toolbar.OnTurningCenter = a.showTurningCenter
	a.toolbar.OnZoomIn = a.viewer.ZoomIn
	a.toolbar.OnZoomOut = a.viewer.ZoomOut
	a.toolbar.OnFit = a.viewer.FitFrame

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.statusBar.Container(),                     // Bottom
		nil,                                         // Left
		nil,                                         // Right
		a.viewer,                                    // Center
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

// handleKey maps the arrow keys onto driving commands.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyUp:
		a.apply(car.Forward(a.driveStep))
	case fyne.KeyDown:
		a.apply(car.Back(a.driveStep))
	case fyne.KeyLeft:
		a.apply(car.Left())
	case fyne.KeyRight:
		a.apply(car.Right())
	case fyne.KeyR, fyne.KeyHome:
		a.reset()
	case fyne.KeyPlus, fyne.KeyEqual:
		a.viewer.ZoomIn()
	case fyne.KeyMinus:
		a.viewer.ZoomOut()
	}
}

func (a *App) apply(cmd car.Command) {
	if err := a.session.Apply(cmd); err != nil {
		dialog.ShowError(err, a.mainWindow)
	}
	a.refresh()
}

func (a *App) reset() {
	if err := a.session.Reset(); err != nil {
		dialog.ShowError(err, a.mainWindow)
	}
	a.refresh()
}

func (a *App) selectMap(name string) {
	if err := a.session.SelectMap(name); err != nil {
		a.logger.Error("failed to select map", log.String("map", name), log.Err(err))
		dialog.ShowError(err, a.mainWindow)
		a.toolbar.SetMap(a.session.Status().Map)
		return
	}
	a.viewer.ResetView()
	a.refresh()
}

func (a *App) showTurningCenter(show bool) {
	a.session.Renderer().Apply(func(o *raster.RenderOptions) {
		o.ShowTurningCenter = show
	})
	a.refresh()
}

// refresh renders a new frame and updates the status line.
func (a *App) refresh() {
	a.viewer.SetFrame(a.session.Frame())
	a.statusBar.SetStatus(a.session.Status().String())
}
