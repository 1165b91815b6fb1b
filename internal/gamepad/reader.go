package gamepad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sstallion/go-hid"
)

const readTimeout = 100 * time.Millisecond

// Device is the part of a HID handle the reader needs.
type Device interface {
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
	Close() error
}

// Reader is the capture path. It blocks on the device and does nothing but
// copy each report into the mailbox, so slow work on the processing side never
// delays device reads.
type Reader struct {
	dev     Device
	mailbox *Mailbox
	log     zerolog.Logger
}

func NewReader(dev Device, mailbox *Mailbox, log zerolog.Logger) *Reader {
	return &Reader{dev: dev, mailbox: mailbox, log: log}
}

// Open initializes hidapi and opens the first device matching vid/pid.
func Open(vid, pid uint16, log zerolog.Logger) (*hid.Device, error) {
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("hidapi init: %w", err)
	}
	dev, err := hid.OpenFirst(vid, pid)
	if err != nil {
		_ = hid.Exit()
		return nil, fmt.Errorf("open controller %04X:%04X: %w", vid, pid, err)
	}
	if info, err := dev.GetDeviceInfo(); err == nil {
		log.Info().
			Str("path", info.Path).
			Str("vendor", fmt.Sprintf("%04X", info.VendorID)).
			Str("product", fmt.Sprintf("%04X", info.ProductID)).
			Str("name", info.ProductStr).
			Msg("controller connected")
	}
	return dev, nil
}

// Run reads reports until ctx is cancelled or the device fails.
func (r *Reader) Run(ctx context.Context) error {
	buf := make([]byte, 64)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := r.dev.ReadWithTimeout(buf, readTimeout)
		if err != nil {
			if errors.Is(err, hid.ErrTimeout) {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}
		if n == 0 {
			continue
		}
		r.mailbox.Put(buf[:n])
	}
}

// Close releases the device.
func (r *Reader) Close() error {
	err := r.dev.Close()
	if _, ok := r.dev.(*hid.Device); ok {
		_ = hid.Exit()
	}
	return err
}
