package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar provides driving, map and view controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnSteerLeft     func()
	OnSteerRight    func()
	OnForward       func()
	OnBack          func()
	OnReset         func()
	OnSelectMap     func(name string)
	OnTurningCenter func(show bool)
	OnZoomIn        func()
	OnZoomOut       func()
	OnFit           func()

	// Components
	mapSelect   *widget.Select
	centerCheck *widget.Check
}

// NewToolbar creates a new toolbar listing the given maps.
func NewToolbar(maps []string) *Toolbar {
	t := &Toolbar{}
	t.build(maps)
	return t
}

func fire(f func()) {
	if f != nil {
		f()
	}
}

func (t *Toolbar) build(maps []string) {
	t.mapSelect = widget.NewSelect(maps, func(name string) {
		if t.OnSelectMap != nil {
			t.OnSelectMap(name)
		}
	})

	resetBtn := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() { fire(t.OnReset) })

	leftBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { fire(t.OnSteerLeft) })
	backBtn := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { fire(t.OnBack) })
	forwardBtn := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { fire(t.OnForward) })
	rightBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { fire(t.OnSteerRight) })

	t.centerCheck = widget.NewCheck("Turning centre", func(show bool) {
		if t.OnTurningCenter != nil {
			t.OnTurningCenter(show)
		}
	})

	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() { fire(t.OnZoomOut) })
	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() { fire(t.OnZoomIn) })
	fitBtn := widget.NewButtonWithIcon("Fit", theme.ViewFullScreenIcon(), func() { fire(t.OnFit) })

	t.container = container.NewHBox(
		t.mapSelect,
		resetBtn,
		widget.NewSeparator(),
		leftBtn,
		backBtn,
		forwardBtn,
		rightBtn,
		widget.NewSeparator(),
		t.centerCheck,
		widget.NewSeparator(),
		zoomOutBtn,
		zoomInBtn,
		fitBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetMap shows name as selected without firing OnSelectMap.
func (t *Toolbar) SetMap(name string) {
	cb := t.OnSelectMap
	t.OnSelectMap = nil
	t.mapSelect.SetSelected(name)
	t.OnSelectMap = cb
}

// StatusBar provides status information.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	hintLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:     widget.NewLabel("Ready"),
		hintLabel: widget.NewLabel("Arrows drive, +/- zoom, R resets"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.hintLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}
