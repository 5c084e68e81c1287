package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/effectbox/ledmatrix/internal/config"
	"github.com/effectbox/ledmatrix/internal/display"
	"github.com/effectbox/ledmatrix/internal/input"
	"github.com/effectbox/ledmatrix/internal/layout"
	"github.com/effectbox/ledmatrix/internal/pattern"
	"github.com/effectbox/ledmatrix/internal/session"
	"github.com/effectbox/ledmatrix/internal/strip"
	"github.com/effectbox/ledmatrix/internal/ws"
)

func main() {
	// ---- Flags (remain usable; config.yaml can override most) ----
	var (
		rows       = flag.Int("rows", 8, "matrix rows")
		cols       = flag.Int("cols", 32, "matrix columns")
		driver     = flag.String("driver", "spi", "strip driver: spi | term | sim")
		spiDev     = flag.String("spi-dev", "", "SPI port name (empty = first available)")
		speedHz    = flag.Int("speed-hz", 0, "SPI clock (0 = default)")
		serpentine = flag.Bool("serpentine", true, "odd physical rows run right-to-left")
		brightness = flag.Float64("brightness", 1.0, "global brightness 0..1")
		dispDriver = flag.String("display", "oled", "menu display: oled | log")
		i2cBus     = flag.String("i2c-bus", "", "I2C bus name (empty = first available)")
		pinA       = flag.String("pin-a", "GPIO17", "encoder A pin")
		pinB       = flag.String("pin-b", "GPIO27", "encoder B pin")
		pinButton  = flag.String("pin-button", "GPIO22", "encoder button pin")
		debounceMs = flag.Int("debounce-ms", 5, "input debounce (ms)")
		addr       = flag.String("addr", ":8080", "HTTP listen address (preview/control)")
		httpOn     = flag.Bool("http", false, "serve the websocket preview and remote control")
		tickMs     = flag.Int("tick-ms", 1, "scheduler tick period (ms)")
		selftest   = flag.Bool("selftest", false, "run the strip self test on startup")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where available) ----
	eRows, eCols := *rows, *cols
	eDriver, eDev, eSpeed := *driver, *spiDev, *speedHz
	eSerp, eBright := *serpentine, *brightness
	eDisp, eBus := *dispDriver, *i2cBus
	ePinA, ePinB, ePinBtn, eDeb := *pinA, *pinB, *pinButton, *debounceMs
	eHTTP, eAddr := *httpOn, *addr
	eTick, eSelfTest := *tickMs, *selftest

	if cfg != nil {
		if cfg.Grid.Rows > 0 {
			eRows = cfg.Grid.Rows
		}
		if cfg.Grid.Cols > 0 {
			eCols = cfg.Grid.Cols
		}
		if cfg.Strip.Driver != "" {
			eDriver = cfg.Strip.Driver
		}
		if cfg.Strip.Dev != "" {
			eDev = cfg.Strip.Dev
		}
		if cfg.Strip.SpeedHz > 0 {
			eSpeed = cfg.Strip.SpeedHz
		}
		eSerp = cfg.Strip.Serpentine
		if cfg.Strip.Brightness > 0 {
			eBright = cfg.Strip.Brightness
		}
		if cfg.Display.Driver != "" {
			eDisp = cfg.Display.Driver
		}
		if cfg.Display.I2CBus != "" {
			eBus = cfg.Display.I2CBus
		}
		if cfg.Input.PinA != "" {
			ePinA = cfg.Input.PinA
		}
		if cfg.Input.PinB != "" {
			ePinB = cfg.Input.PinB
		}
		if cfg.Input.PinButton != "" {
			ePinBtn = cfg.Input.PinButton
		}
		if cfg.Input.DebounceMs > 0 {
			eDeb = cfg.Input.DebounceMs
		}
		if cfg.HTTP.Enabled {
			eHTTP = true
		}
		if cfg.HTTP.Addr != "" {
			eAddr = cfg.HTTP.Addr
		}
		if cfg.TickMs > 0 {
			eTick = cfg.TickMs
		}
		if cfg.SelfTest {
			eSelfTest = true
		}
	}

	grid := layout.Grid{Rows: eRows, Cols: eCols}
	wiring := layout.Wiring{SerpentineRows: eSerp}

	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("periph host init failed; hardware drivers unavailable")
	}

	// ---- Strip (fall back towards sim rather than exit) ----
	var out strip.Output
	switch eDriver {
	case "spi":
		d, err := strip.OpenSPI(eDev, grid.Count(), physic.Frequency(eSpeed)*physic.Hertz)
		if err != nil {
			log.Warn().Err(err).Msg("spi unavailable; falling back to terminal output")
			out = strip.New(strip.Terminal(grid.Count()), grid, wiring, eBright)
		} else {
			out = strip.New(d, grid, wiring, eBright)
		}
	case "term":
		out = strip.New(strip.Terminal(grid.Count()), grid, wiring, eBright)
	default:
		out = strip.NewMemory(grid)
	}
	log.Info().Str("driver", eDriver).Int("rows", eRows).Int("cols", eCols).Msg("strip ready")

	// ---- Display ----
	var disp display.Display
	switch eDisp {
	case "oled":
		d, err := display.NewOLED(eBus)
		if err != nil {
			log.Warn().Err(err).Msg("oled unavailable; menu output goes to the log")
			disp = display.NewLog(log.Logger)
		} else {
			disp = d
		}
	default:
		disp = display.NewLog(log.Logger)
	}

	// ---- Input sources ----
	var sources []input.Source
	if enc, err := input.NewEncoder(ePinA, ePinB, ePinBtn, time.Duration(eDeb)*time.Millisecond); err != nil {
		log.Warn().Err(err).Msg("encoder unavailable; only remote control input")
	} else {
		sources = append(sources, enc)
	}

	// ---- Preview/control server ----
	var srv *ws.Server
	if eHTTP {
		mirror := strip.NewMemory(grid)
		out = strip.NewTee(out, mirror)
		srv = ws.NewServer(mirror, grid)
		sources = append(sources, srv)

		mux := http.NewServeMux()
		mux.HandleFunc("/ws/frames", srv.HandleFramesWS)
		mux.HandleFunc("/ws/control", srv.HandleControlWS)
		mux.HandleFunc("/healthz", srv.HandleHealth)
		go srv.RunBroadcast(30)
		go func() {
			log.Info().Str("addr", eAddr).Msg("http listening")
			if err := http.ListenAndServe(eAddr, mux); err != nil {
				log.Error().Err(err).Msg("http server stopped")
			}
		}()
	}

	if eSelfTest {
		if err := strip.SelfTest(out, 20*time.Millisecond); err != nil {
			log.Warn().Err(err).Msg("self test failed")
		}
	}

	// ---- Catalog and session ----
	cat, err := pattern.NewCatalog(out, disp, grid)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog init failed")
	}
	ctrl := session.New(cat, disp, log.Logger)
	_ = disp.ShowMessage("Click to select", true)

	fan := input.NewFan(sources...)
	defer fan.Close()

	publishStatus := func() {
		if srv == nil {
			return
		}
		srv.SetStatus(ws.Status{
			State:    ctrl.State().String(),
			Pattern:  cat.Selected().Name(),
			Patterns: cat.Names(),
		})
	}
	publishStatus()

	// ---- Poll loop ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(eTick) * time.Millisecond)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ticker.C:
			ctrl.Tick(time.Since(start))
		case ev := <-fan.Events():
			ctrl.Handle(ev)
			publishStatus()
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			if err := strip.Blackout(out); err != nil {
				log.Warn().Err(err).Msg("blackout failed")
			}
			return
		}
	}
}
