package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/PixPMusic/gopher-flexi/internal/config"
	"github.com/PixPMusic/gopher-flexi/internal/host/memory"
	"github.com/PixPMusic/gopher-flexi/internal/mapping"
	"github.com/PixPMusic/gopher-flexi/internal/midi"
	"github.com/PixPMusic/gopher-flexi/internal/startup"
	"github.com/PixPMusic/gopher-flexi/internal/surface"
)

// Our own saves show up as watch events too
const selfWriteGrace = time.Second

type options struct {
	configPath string
	list       bool
	in, out    string
	learn      int
	importPath string
	exportPath string
	startup    string
	watch      bool
	tracks     int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "config file (default: user config dir)")
	flag.BoolVar(&opts.list, "list", false, "list MIDI ports and exit")
	flag.StringVar(&opts.in, "in", "", "MIDI input port, saved to the config")
	flag.StringVar(&opts.out, "out", "", "MIDI output port, saved to the config")
	flag.IntVar(&opts.learn, "learn", 0, "learn slot `N` (1-200) from the next message")
	flag.StringVar(&opts.importPath, "import", "", "import a mapping `file` and exit")
	flag.StringVar(&opts.exportPath, "export", "", "export the mapping to `file` and exit")
	flag.StringVar(&opts.startup, "startup", "", "on|off: launch at login")
	flag.BoolVar(&opts.watch, "watch", false, "re-import the mapping file when it changes")
	flag.IntVar(&opts.tracks, "tracks", 16, "number of tracks in the mirrored project")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}

// logNotifier shows engine notifications in the log
type logNotifier struct{}

func (logNotifier) ShowNotification(msg string) {
	log.Printf("%s", msg)
}

// keyTranslation keeps the latest note map for the mirrored note input
type keyTranslation struct {
	table [128]int
}

func (k *keyTranslation) SetKeyTranslationTable(table [128]int) {
	k.table = table
	blocked := 0
	for _, n := range table {
		if n < 0 {
			blocked++
		}
	}
	log.Printf("Key translation updated, %d notes reserved for commands", blocked)
}

func run(opts options) error {
	// Load configuration
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.startup != "" {
		return setStartup(cfg, opts.startup)
	}

	// Initialize MIDI manager
	midiManager := midi.NewManager()
	defer midiManager.Close()

	if opts.list {
		listPorts(midiManager)
		return nil
	}

	if opts.in != "" || opts.out != "" {
		if opts.in != "" {
			cfg.Device.InPort = opts.in
		}
		if opts.out != "" {
			cfg.Device.OutPort = opts.out
		}
		if err := cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.MappingFile), 0755); err != nil {
		return err
	}
	table := mapping.NewTable()
	if err := table.ImportFrom(cfg.MappingFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load mapping: %w", err)
		}
		log.Printf("No mapping at %s yet, starting empty", cfg.MappingFile)
	}

	model := memory.NewModel(opts.tracks)
	notes := &keyTranslation{}
	engineOpts := []surface.Option{
		surface.WithKnob(cfg.Knob.Step, cfg.Knob.Sensitivity, cfg.Knob.Slow),
		surface.WithNotifier(logNotifier{}),
		surface.WithNoteInput(notes),
	}

	// One-shot file operations need no ports
	if opts.importPath != "" || opts.exportPath != "" {
		engine := surface.New(model, table, nil, engineOpts...)
		if opts.importPath != "" {
			if err := engine.ImportMapping(opts.importPath); err != nil {
				return err
			}
			if err := table.ExportTo(cfg.MappingFile); err != nil {
				return fmt.Errorf("failed to save mapping: %w", err)
			}
		}
		if opts.exportPath != "" {
			return engine.ExportMapping(opts.exportPath)
		}
		return nil
	}

	if cfg.Device.InPort == "" {
		return fmt.Errorf("no input port configured, use -in (see -list)")
	}

	out, err := midiManager.Sender(cfg.Device.OutPort)
	if err != nil {
		return err
	}

	var lastSave time.Time
	engineOpts = append(engineOpts, surface.WithLearnHook(func(slot int, s mapping.Slot) {
		lastSave = time.Now()
		if err := table.ExportTo(cfg.MappingFile); err != nil {
			log.Printf("Failed to save mapping: %v", err)
		}
	}))
	engine := surface.New(model, table, out, engineOpts...)

	if opts.learn != 0 {
		if err := engine.StartLearn(opts.learn - 1); err != nil {
			return err
		}
	}

	// The driver calls back on its own goroutine, the engine runs on this one
	events := make(chan midi.Event, 256)
	stop, err := midiManager.Listen(cfg.Device.InPort, func(ev midi.Event) {
		select {
		case events <- ev:
		default:
			log.Printf("Dropped %s, dispatcher is behind", ev)
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	var watchEvents chan fsnotify.Event
	var watchErrors chan error
	if opts.watch || cfg.WatchMappingFile {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to watch mapping: %w", err)
		}
		defer watcher.Close()

		// Watch the directory, atomic saves replace the file
		if err := watcher.Add(filepath.Dir(cfg.MappingFile)); err != nil {
			return fmt.Errorf("failed to watch mapping: %w", err)
		}
		watchEvents, watchErrors = watcher.Events, watcher.Errors
		log.Printf("Watching %s", cfg.MappingFile)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.RefreshIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	log.Printf("Listening on %q, feedback to %q, %d slots bound",
		cfg.Device.InPort, cfg.Device.OutPort, boundSlots(table))

	engine.Flush()
	for {
		select {
		case ev := <-events:
			engine.HandleEvent(ev)

		case <-ticker.C:
			engine.Flush()

		case ev := <-watchEvents:
			if filepath.Clean(ev.Name) != filepath.Clean(cfg.MappingFile) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastSave) < selfWriteGrace {
				continue
			}
			_ = engine.ImportMapping(cfg.MappingFile)

		case err := <-watchErrors:
			log.Printf("Watch error: %v", err)

		case sig := <-sigs:
			log.Printf("Received %v, shutting down", sig)
			return nil
		}
	}
}

func boundSlots(table *mapping.Table) int {
	n := 0
	for _, s := range table.Slots() {
		if s.Bound() {
			n++
		}
	}
	return n
}

func listPorts(m *midi.Manager) {
	fmt.Println("Inputs:")
	for _, name := range m.ListInPorts() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Outputs:")
	for _, name := range m.ListOutPorts() {
		fmt.Printf("  %s\n", name)
	}
}

func setStartup(cfg *config.Config, mode string) error {
	switch mode {
	case "on":
		if err := startup.Enable(cfg.Path()); err != nil {
			return fmt.Errorf("failed to enable startup: %w", err)
		}
		cfg.OpenAtStartup = true
	case "off":
		if err := startup.Disable(); err != nil {
			return fmt.Errorf("failed to disable startup: %w", err)
		}
		cfg.OpenAtStartup = false
	default:
		return fmt.Errorf("invalid -startup %q, want on or off", mode)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	log.Printf("Launch at login: %v", startup.IsEnabled())
	return nil
}
