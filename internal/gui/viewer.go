package gui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// MapViewer is a custom widget showing rendered frames with pan/zoom.
type MapViewer struct {
	widget.BaseWidget

	image    *canvas.Image
	frameImg image.Image

	// View state
	zoom    float64
	offsetX float64
	offsetY float64
}

// NewMapViewer creates a new map viewer widget.
func NewMapViewer() *MapViewer {
	v := &MapViewer{
		zoom: 1.0,
	}
	v.ExtendBaseWidget(v)

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillStretch
	v.image.ScaleMode = canvas.ImageScaleSmooth

	return v
}

// SetFrame replaces the displayed frame. Zoom and pan are kept so the view
// stays put while driving.
func (v *MapViewer) SetFrame(img image.Image) {
	v.frameImg = img
	v.image.Image = img
	v.Refresh()
}

// ResetView resets zoom and offset.
func (v *MapViewer) ResetView() {
	v.zoom = 1.0
	v.offsetX = 0
	v.offsetY = 0
	v.Refresh()
}

// CreateRenderer creates the renderer for this widget.
func (v *MapViewer) CreateRenderer() fyne.WidgetRenderer {
	return &mapViewerRenderer{
		viewer: v,
	}
}

// Dragged handles drag events for panning.
func (v *MapViewer) Dragged(event *fyne.DragEvent) {
	v.offsetX += float64(event.Dragged.DX)
	v.offsetY += float64(event.Dragged.DY)
	v.Refresh()
}

// DragEnd handles the end of a drag.
func (v *MapViewer) DragEnd() {}

// Scrolled handles scroll events for zooming.
func (v *MapViewer) Scrolled(event *fyne.ScrollEvent) {
	delta := float64(event.Scrolled.DY) / 100
	v.setZoom(v.zoom * (1 + delta))
}

// ZoomIn increases zoom level.
func (v *MapViewer) ZoomIn() {
	v.setZoom(v.zoom * 1.2)
}

// ZoomOut decreases zoom level.
func (v *MapViewer) ZoomOut() {
	v.setZoom(v.zoom / 1.2)
}

func (v *MapViewer) setZoom(zoom float64) {
	v.zoom = math.Max(0.25, math.Min(5.0, zoom))
	v.Refresh()
}

// FitFrame fits the whole map in the widget.
func (v *MapViewer) FitFrame() {
	if v.frameImg == nil {
		return
	}

	size := v.Size()
	imgW := float64(v.frameImg.Bounds().Dx())
	imgH := float64(v.frameImg.Bounds().Dy())

	v.zoom = math.Min(float64(size.Width)/imgW, float64(size.Height)/imgH)
	v.offsetX = 0
	v.offsetY = 0
	v.Refresh()
}

type mapViewerRenderer struct {
	viewer *MapViewer
}

func (r *mapViewerRenderer) Layout(size fyne.Size) {
	if r.viewer.frameImg == nil {
		return
	}

	imgW := float32(r.viewer.frameImg.Bounds().Dx()) * float32(r.viewer.zoom)
	imgH := float32(r.viewer.frameImg.Bounds().Dy()) * float32(r.viewer.zoom)

	// Center image with offset
	x := (size.Width-imgW)/2 + float32(r.viewer.offsetX)
	y := (size.Height-imgH)/2 + float32(r.viewer.offsetY)

	r.viewer.image.Move(fyne.NewPos(x, y))
	r.viewer.image.Resize(fyne.NewSize(imgW, imgH))
}

func (r *mapViewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *mapViewerRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.viewer.image}
}

func (r *mapViewerRenderer) Refresh() {
	r.Layout(r.viewer.Size())
	r.viewer.image.Refresh()
}

func (r *mapViewerRenderer) Destroy() {}
