package rng

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

const (
	SourceCrypto = "crypto"
	SourceSerial = "serial"
)

// SourceConfig selects the entropy source used for simulated deals.
type SourceConfig struct {
	Kind        string
	Device      string
	BaudRate    int
	ReadTimeout time.Duration
}

// OpenSource opens the configured entropy source and performs an initial
// health check. The returned reader is safe for concurrent use.
func OpenSource(cfg SourceConfig) (io.Reader, *Health, error) {
	var raw io.Reader
	switch cfg.Kind {
	case "", SourceCrypto:
		raw = rand.Reader
	case SourceSerial:
		p, err := openSerial(cfg)
		if err != nil {
			return nil, nil, err
		}
		raw = p
	default:
		return nil, nil, fmt.Errorf("unknown entropy source %q", cfg.Kind)
	}

	r := NewLockedReader(raw)
	h := NewHealth()
	h.source = cfg.Kind
	if h.source == "" {
		h.source = SourceCrypto
	}
	if err := CheckSource(r, h); err != nil {
		h.Set(false, err.Error())
		return nil, h, err
	}
	h.Set(true, "")

	return r, h, nil
}

func openSerial(cfg SourceConfig) (*serial.Port, error) {
	if cfg.Device == "" {
		return nil, errors.New("SERIAL_DEVICE_NAME is required")
	}
	if cfg.BaudRate <= 0 {
		return nil, fmt.Errorf("invalid SERIAL_BAUD_RATE: %d", cfg.BaudRate)
	}
	if cfg.ReadTimeout < 0 {
		return nil, fmt.Errorf("invalid SERIAL_READ_TIMEOUT: %s", cfg.ReadTimeout)
	}

	return serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.BaudRate,
		Size:        8,
		ReadTimeout: cfg.ReadTimeout,
	})
}
