package cli

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/watchfire-io/numlocktray/internal/config"
	"github.com/watchfire-io/numlocktray/internal/icon"
	"github.com/watchfire-io/numlocktray/internal/lockstate"
	"github.com/watchfire-io/numlocktray/internal/models"
	"github.com/watchfire-io/numlocktray/internal/notify"
	"github.com/watchfire-io/numlocktray/internal/registrar"
	"github.com/watchfire-io/numlocktray/internal/setup"
	"github.com/watchfire-io/numlocktray/internal/tray"
	"github.com/watchfire-io/numlocktray/internal/watcher"
)

// components are the collaborators shared by the tray and the subcommands.
type components struct {
	settings  *models.Settings
	renderer  *icon.Renderer
	autostart registrar.Registrar
	appMenu   registrar.Registrar
	iconPath  string
}

func loadComponents() *components {
	settings := config.LoadSettingsOrDefault()

	assetPath := settings.Icon.Asset
	if assetPath == "" {
		assetPath = config.IconAssetPath()
	}
	renderer := icon.New(assetPath, settings.Icon.InactiveColor)

	iconPath := ""
	if renderer.HasAsset() {
		iconPath = assetPath
	}

	exe, err := config.Executable()
	if err != nil {
		log.Printf("Failed to resolve executable path: %v", err)
		exe = os.Args[0]
	}
	opts := registrar.Options{Executable: exe, IconPath: iconPath}

	return &components{
		settings:  settings,
		renderer:  renderer,
		autostart: registrar.NewAutostart(opts),
		appMenu:   registrar.NewAppMenu(opts),
		iconPath:  iconPath,
	}
}

// runTray shows the setup dialog unless autostarted, then runs the tray on
// the main goroutine until Quit or a termination signal.
func runTray(autostarted bool) error {
	c := loadComponents()

	if autostarted {
		log.Println("Started by autostart, skipping setup dialog")
	} else {
		setup.New(c.autostart, c.appMenu).Show()
	}

	var notifier notify.Notifier = notify.Nop{}
	if c.settings.Notifications.OnChange {
		notifier = notify.NewDesktop(c.iconPath)
	}

	ctrl := tray.NewController(tray.Options{
		Query:     lockstate.Default(),
		Renderer:  c.renderer,
		Autostart: c.autostart,
		Notifier:  notifier,
		Interval:  c.settings.PollInterval,
	})
	t := tray.New(ctrl, registrationWatcher(c.autostart))

	// Handle OS signals: quit tray on SIGINT/SIGTERM
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			log.Printf("Received signal %v, shutting down...", sig)
			t.Quit()
		case <-ctrl.Done():
		}
	}()

	// This blocks the main goroutine until the tray exits.
	t.Run()
	return nil
}

// registrationWatcher watches the autostart file when it is file-backed. The
// directory is created first so a registration made later is still seen.
func registrationWatcher(r registrar.Registrar) *watcher.Watcher {
	located, ok := r.(registrar.Located)
	if !ok {
		return nil
	}
	dir := filepath.Dir(located.Path())
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Failed to create %s: %v", dir, err)
	}
	w, err := watcher.New()
	if err != nil {
		log.Printf("Failed to create watcher: %v", err)
		return nil
	}
	w.WatchFile(located.Path())
	return w
}
