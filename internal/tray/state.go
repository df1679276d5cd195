// Package tray implements the system tray icon, its menu and the Num Lock poll loop.
package tray

import "image"

// Renderer produces the icon bitmap for a state.
type Renderer interface {
	Render(active bool) image.Image
}

// Surface is the visible part of the tray icon.
type Surface interface {
	SetIcon(img image.Image)
	SetTooltip(text string)
}
