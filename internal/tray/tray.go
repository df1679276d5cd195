package tray

import (
	"image"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/watchfire-io/numlocktray/internal/buildinfo"
	"github.com/watchfire-io/numlocktray/internal/icon"
	"github.com/watchfire-io/numlocktray/internal/watcher"
)

// Menu labels.
const (
	autostartLabel = "Start with system"
	quitLabel      = "Quit"
)

// Tray binds a Controller to the system tray.
type Tray struct {
	ctrl    *Controller
	watcher *watcher.Watcher

	autostartItem *systray.MenuItem
	quitItem      *systray.MenuItem

	// run and stop drive the event loop; swapped in tests.
	run  func(onReady, onExit func())
	stop func()

	poller    sync.WaitGroup
	startPoll sync.Once
}

// New creates a tray for ctrl. w may be nil; when set, its events resync the
// autostart checkbox.
func New(ctrl *Controller, w *watcher.Watcher) *Tray {
	return &Tray{ctrl: ctrl, watcher: w, run: systray.Run, stop: systray.Quit}
}

// Run starts the system tray. This blocks the calling goroutine (must be main)
// until Quit, then waits for the poll goroutine to exit.
func (t *Tray) Run() {
	t.ctrl.OnQuit(t.stop)

	// Counted before the loop starts; released here if onReady never ran.
	t.poller.Add(1)
	t.run(t.onReady, t.onExit)
	t.startPoll.Do(t.poller.Done)

	t.poller.Wait()
	log.Println("[tray] Stopped")
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	t.ctrl.Quit()
}

func (t *Tray) onReady() {
	t.ctrl.Start(newSystraySurface())

	t.autostartItem = systray.AddMenuItemCheckbox(autostartLabel, "Launch "+buildinfo.DisplayName+" at login", t.ctrl.AutostartEnabled())
	if !t.ctrl.AutostartSupported() {
		t.autostartItem.Disable()
	}
	systray.AddSeparator()
	t.quitItem = systray.AddMenuItem(quitLabel, "Quit "+buildinfo.DisplayName)

	if t.watcher != nil {
		t.watcher.Start()
	}

	t.startPoll.Do(func() {
		go func() {
			defer t.poller.Done()
			t.ctrl.Poll()
		}()
	})

	go t.handleClicks()
}

func (t *Tray) onExit() {
	// The event loop can end without Quit, e.g. when the shell goes away.
	t.ctrl.Quit()
	if t.watcher != nil {
		t.watcher.Stop()
	}
}

func (t *Tray) handleClicks() {
	var events <-chan watcher.Event
	if t.watcher != nil {
		events = t.watcher.Events()
	}

	for {
		select {
		case <-t.autostartItem.ClickedCh:
			t.setChecked(t.ctrl.ToggleAutostart())

		case <-t.quitItem.ClickedCh:
			t.ctrl.Quit()
			return

		case ev := <-events:
			log.Printf("[tray] Registration changed on disk: %s", ev.Path)
			t.setChecked(t.ctrl.SyncAutostart())

		case <-t.ctrl.Done():
			return
		}
	}
}

func (t *Tray) setChecked(checked bool) {
	if checked {
		t.autostartItem.Check()
	} else {
		t.autostartItem.Uncheck()
	}
}

// systraySurface draws on the process-wide systray icon. The tooltip text is
// also set as the title, which shells without tooltips show instead.
type systraySurface struct {
	setIcon    func([]byte)
	setTooltip func(string)
	setTitle   func(string)
}

func newSystraySurface() systraySurface {
	return systraySurface{
		setIcon:    systray.SetIcon,
		setTooltip: systray.SetTooltip,
		setTitle:   systray.SetTitle,
	}
}

func (s systraySurface) SetIcon(img image.Image) {
	data, err := icon.Encode(img)
	if err != nil {
		log.Printf("[tray] Failed to encode icon: %v", err)
		return
	}
	s.setIcon(data)
}

func (s systraySurface) SetTooltip(text string) {
	s.setTooltip(text)
	s.setTitle(text)
}
