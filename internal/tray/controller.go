package tray

import (
	"fmt"
	"image"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/watchfire-io/numlocktray/internal/lockstate"
	"github.com/watchfire-io/numlocktray/internal/models"
	"github.com/watchfire-io/numlocktray/internal/notify"
	"github.com/watchfire-io/numlocktray/internal/registrar"
)

// Options configure a Controller.
type Options struct {
	Query     lockstate.Querier
	Renderer  Renderer
	Autostart registrar.Registrar
	Notifier  notify.Notifier
	Interval  time.Duration
}

// Controller owns the tray state. current and the icon are written only by
// the poll goroutine; autostartEnabled only by the menu handler.
type Controller struct {
	query     lockstate.Querier
	renderer  Renderer
	autostart registrar.Registrar
	notifier  notify.Notifier
	interval  time.Duration

	surfaceMu sync.Mutex
	surface   Surface

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
	stopLoop func()

	current          bool
	autostartEnabled bool
}

// NewController creates a controller. Nil collaborators get inert defaults.
func NewController(opts Options) *Controller {
	c := &Controller{
		query:     opts.Query,
		renderer:  opts.Renderer,
		autostart: opts.Autostart,
		notifier:  opts.Notifier,
		interval:  opts.Interval,
		done:      make(chan struct{}),
	}
	if c.query == nil {
		c.query = lockstate.Chain{}
	}
	if c.autostart == nil {
		c.autostart = registrar.Unsupported{}
	}
	if c.notifier == nil {
		c.notifier = notify.Nop{}
	}
	if c.interval <= 0 {
		c.interval = models.DefaultPollInterval
	}
	return c
}

// Start enters the running state: it reads the initial state (Unknown counts
// as off), draws the icon and reads the autostart registration.
func (c *Controller) Start(surface Surface) {
	c.surface = surface
	c.current = c.query.Query() == lockstate.On
	c.autostartEnabled = c.autostart.IsEnabled()
	c.running.Store(true)
	c.show(c.current)
	log.Printf("[tray] Started: Num Lock %s, autostart %v", onOff(c.current), c.autostartEnabled)
}

// Tick runs one poll cycle and reports whether the displayed state changed.
func (c *Controller) Tick() bool {
	state := c.query.Query()
	if !state.Known() {
		return false
	}
	on := state == lockstate.On
	if on == c.current {
		return false
	}
	c.current = on
	c.show(on)
	c.notifier.Notify(on)
	return true
}

// Poll ticks every interval until Quit.
func (c *Controller) Poll() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for c.running.Load() {
		select {
		case <-c.done:
			return
		case <-ticker.C:
		}
		if !c.running.Load() {
			return
		}
		c.Tick()
	}
}

func (c *Controller) show(on bool) {
	var img image.Image
	if c.renderer != nil {
		img = c.renderer.Render(on)
	}

	c.surfaceMu.Lock()
	defer c.surfaceMu.Unlock()
	if c.surface == nil {
		return
	}
	if img != nil {
		c.surface.SetIcon(img)
	}
	c.surface.SetTooltip(Tooltip(on))
}

// ToggleAutostart flips the autostart choice and persists it. When the
// registrar fails, the previous value is kept. It returns the value now in effect.
func (c *Controller) ToggleAutostart() bool {
	want := !c.autostartEnabled
	if err := c.autostart.SetEnabled(want); err != nil {
		log.Printf("[tray] Failed to set autostart to %v: %v", want, err)
		return c.autostartEnabled
	}
	c.autostartEnabled = want
	log.Printf("[tray] Autostart set to %v", want)
	return want
}

// SyncAutostart re-reads the registration, for changes made outside the app.
func (c *Controller) SyncAutostart() bool {
	c.autostartEnabled = c.autostart.IsEnabled()
	return c.autostartEnabled
}

// AutostartEnabled returns the autostart choice shown in the menu.
func (c *Controller) AutostartEnabled() bool {
	return c.autostartEnabled
}

// AutostartSupported reports whether the platform has an autostart registration.
func (c *Controller) AutostartSupported() bool {
	return c.autostart.Supported()
}

// Current returns the displayed Num Lock state.
func (c *Controller) Current() bool {
	return c.current
}

// Running reports whether Quit has not been called yet.
func (c *Controller) Running() bool {
	return c.running.Load()
}

// Done is closed by Quit.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// OnQuit sets the function that stops the tray event loop.
func (c *Controller) OnQuit(stop func()) {
	c.stopLoop = stop
}

// Quit clears the running flag, wakes the poller and stops the event loop.
func (c *Controller) Quit() {
	c.stopOnce.Do(func() {
		c.running.Store(false)
		close(c.done)
		log.Println("[tray] Quit requested")
		if c.stopLoop != nil {
			c.stopLoop()
		}
	})
}

// Tooltip is the hover text for a state.
func Tooltip(on bool) string {
	return fmt.Sprintf("Num Lock: %s", onOff(on))
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
