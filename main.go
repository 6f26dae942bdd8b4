package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"serial-radar.klederson.com/internal/app"
	"serial-radar.klederson.com/internal/config"
	"serial-radar.klederson.com/internal/logging"
	"serial-radar.klederson.com/internal/radar"
	"serial-radar.klederson.com/internal/sensor"
	"serial-radar.klederson.com/internal/window"
)

var (
	flagConfig    string
	flagListPorts bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "serial-radar",
		Short: "Serial Radar - Ultrasonic radar display for a servo-mounted range sensor",
		Long: `Serial Radar reads "angle,distance" lines from a microcontroller over a
serial port and draws them as a semicircular radar sweep with fading
detections, range rings and a live readout.

Use --display terminal to render inside the terminal instead of a window.
Use --demo to run without hardware.`,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.String("port", config.DefaultPort, "Serial device to read from")
	f.Int("baud", config.DefaultBaudRate, "Serial baud rate")
	f.Int("width", config.DefaultWidth, "Window width in pixels")
	f.Int("height", config.DefaultHeight, "Window height in pixels")
	f.Int("range", config.DefaultMaxRange, "Maximum radar range in centimeters")
	f.String("display", config.DisplayWindow, "Display mode: window or terminal")
	f.Bool("demo", false, "Run with a simulated sensor (no hardware required)")
	f.Int64("seed", 1, "Seed for particle motion and demo targets")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.String("log-file", "", "Log file (terminal display only logs when set)")
	f.StringVar(&flagConfig, "config", "", "Config file (yaml, json or toml)")
	f.BoolVar(&flagListPorts, "list-ports", false, "List serial ports and exit")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagListPorts {
		return listPorts(cmd.OutOrStdout())
	}

	cfg, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, logOut, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logOut.Close()

	port, source, err := openSource(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open the serial device. Try one of:")
		fmt.Fprintln(os.Stderr, "  serial-radar --list-ports")
		fmt.Fprintln(os.Stderr, "  serial-radar --port /dev/ttyACM0")
		fmt.Fprintln(os.Stderr, "  serial-radar --demo    (demo mode, no hardware needed)")
		return err
	}
	log.Info().Str("source", source).Int("baud", cfg.BaudRate).Msg("Serial source opened")

	if cfg.Display == config.DisplayTerminal {
		return runTerminal(cfg, port, source, log)
	}
	return runWindow(cfg, port, log)
}

func runWindow(cfg config.Config, port io.ReadCloser, log zerolog.Logger) error {
	state := radar.NewState(radar.NewLayout(cfg.Width, cfg.Height, cfg.MaxRange), cfg.Seed)
	loop := app.NewLoop(port, state, radar.Renderer{Text: true}, log)
	defer loop.Stop()

	return window.Run(loop, config.AppName, cfg.Width, cfg.Height)
}

func runTerminal(cfg config.Config, port io.ReadCloser, source string, log zerolog.Logger) error {
	// Replaced on the first WindowSizeMsg.
	state := radar.NewState(radar.CompactLayout(80, 40, cfg.MaxRange), cfg.Seed)
	loop := app.NewLoop(port, state, radar.Renderer{}, log)
	defer loop.Stop()

	p := tea.NewProgram(
		app.New(loop, source, cfg.MaxRange),
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)
	_, err := p.Run()
	return err
}

// newLogger logs to stderr in window mode. The terminal display owns the
// screen, so it logs only to --log-file.
func newLogger(cfg config.Config) (zerolog.Logger, io.Closer, error) {
	if cfg.Display == config.DisplayWindow && cfg.LogFile == "" {
		log, err := logging.New(os.Stderr, cfg.LogLevel, true)
		return log, io.NopCloser(nil), err
	}

	out, err := logging.Open(cfg.LogFile)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	log, err := logging.New(out, cfg.LogLevel, false)
	if err != nil {
		_ = out.Close()
		return zerolog.Nop(), nil, err
	}
	return log, out, nil
}

func openSource(cfg config.Config) (io.ReadCloser, string, error) {
	if cfg.Demo {
		return sensor.NewSimulator(cfg.Seed, cfg.MaxRange, time.Now), "demo", nil
	}
	port, err := sensor.Open(cfg.Port, cfg.BaudRate)
	if err != nil {
		return nil, "", err
	}
	return port, cfg.Port, nil
}

func listPorts(w io.Writer) error {
	ports, err := sensor.ListPorts()
	if err != nil {
		return fmt.Errorf("failed to list serial ports: %w", err)
	}
	if len(ports) == 0 {
		fmt.Fprintln(w, "No serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Fprintln(w, p)
	}
	return nil
}
