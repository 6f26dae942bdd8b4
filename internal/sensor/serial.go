package sensor

import (
	"fmt"

	"go.bug.st/serial"
	"serial-radar.klederson.com/internal/config"
)

// Open opens the serial device in polled mode: reads return after
// config.ReadTimeout even when nothing has arrived.
func Open(name string, baud int) (serial.Port, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}
	if err := port.SetReadTimeout(config.ReadTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to configure serial port %s: %w", name, err)
	}
	return port, nil
}

// ListPorts returns the serial devices the OS currently reports.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}
