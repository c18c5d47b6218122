package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// rowHeight is the vertical space one widget takes.
func (r *Renderer) rowHeight(w WidgetType) int32 {
	switch w {
	case WidgetBar:
		return r.Theme.LineHeight + 2
	case WidgetSpacer:
		return 6
	default:
		return r.Theme.LineHeight
	}
}

// fieldText formats a text field's value.
func fieldText(fd FieldDescriptor, data any) string {
	switch {
	case fd.TextGetter != nil:
		return fd.TextGetter(data)
	case fd.Getter != nil:
		return fmt.Sprintf(fd.Format, fd.Getter(data))
	}
	return ""
}

// DrawField renders one field at (x, y) and returns the next row's y.
func (r *Renderer) DrawField(x, y int32, fd FieldDescriptor, data any, width int32) int32 {
	th := &r.Theme
	valueX := x + th.LabelWidth

	switch fd.Widget {
	case WidgetSection:
		rl.DrawText(fd.Label, x, y, th.HeaderFontSize, th.SectionHeader)

	case WidgetText:
		rl.DrawText(fd.Label+":", x, y, th.FontSize, th.LabelColor)
		rl.DrawText(fieldText(fd, data), valueX, y, th.FontSize, th.ValueColor)

	case WidgetBar:
		v := 0.0
		if fd.Getter != nil {
			v = min(max(fd.Getter(data), 0), 1)
		}
		barW := width - th.LabelWidth - 40
		rl.DrawText(fd.Label+":", x, y, th.FontSize, th.LabelColor)
		rl.DrawRectangle(valueX, y+2, barW, th.BarHeight, th.BarBg)
		rl.DrawRectangle(valueX, y+2, int32(float64(barW)*v), th.BarHeight, th.BarFill)
		rl.DrawText(fmt.Sprintf("%.2f", v), valueX+barW+5, y, th.FontSize, th.ValueColor)
	}

	return y + r.rowHeight(fd.Widget)
}

// DrawSection renders a section with header and fields.
func (r *Renderer) DrawSection(x, y int32, sd SectionDescriptor, data any, width int32) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return y
	}
	if sd.Title != "" {
		y = r.DrawField(x, y, FieldDescriptor{Label: sd.Title, Widget: WidgetSection}, data, width)
	}
	for _, fd := range sd.Fields {
		y = r.DrawField(x, y, fd, data, width)
	}
	return y + 4
}

// SectionHeight returns the vertical space a section will occupy.
func (r *Renderer) SectionHeight(sd SectionDescriptor, data any) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return 0
	}
	h := int32(4)
	if sd.Title != "" {
		h += r.rowHeight(WidgetSection)
	}
	for _, fd := range sd.Fields {
		h += r.rowHeight(fd.Widget)
	}
	return h
}
