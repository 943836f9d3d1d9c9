// Package usb implements the wt3000 transport over libusb via gousb.
//
// The WT3000 enumerates with a fixed vendor/product pair and moves data over
// two bulk endpoints: host-to-device on 0x01, device-to-host on 0x83. Open
// resolves all of that to a ready channel; the wt3000 package never touches
// USB itself.
package usb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/moffa90/go-wt3000/protocol"
)

// ErrDeviceNotFound is returned by Open when no WT3000 is on the bus.
var ErrDeviceNotFound = errors.New("usb: no WT3000 found (vid 0x0b21, pid 0x0025)")

// Device is an open USB channel to a WT3000. It implements wt3000.Transport.
//
// Device owns the underlying libusb handles; Close releases them. It is not
// safe for concurrent use, matching the one-command-at-a-time protocol.
type Device struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface
	done func()
	out  *gousb.OutEndpoint
	in   *gousb.InEndpoint
}

// Open finds the first WT3000 on the bus, claims its default interface, and
// opens both bulk endpoints.
func Open() (*Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(protocol.VendorID), gousb.ID(protocol.ProductID))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("usb: open device: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, ErrDeviceNotFound
	}

	// Detach usbtmc or other kernel drivers that may have claimed the
	// instrument.
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb: set auto detach: %w", err)
	}

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb: claim default interface: %w", err)
	}

	out, err := intf.OutEndpoint(protocol.EndpointTransmit & 0x0f)
	if err != nil {
		done()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb: open OUT endpoint 0x%02x: %w", protocol.EndpointTransmit, err)
	}

	in, err := intf.InEndpoint(protocol.EndpointReceive & 0x0f)
	if err != nil {
		done()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb: open IN endpoint 0x%02x: %w", protocol.EndpointReceive, err)
	}

	return &Device{
		ctx:  ctx,
		dev:  dev,
		intf: intf,
		done: done,
		out:  out,
		in:   in,
	}, nil
}

// Write sends p to the instrument over the bulk OUT endpoint.
func (d *Device) Write(p []byte) (int, error) {
	return d.out.Write(p)
}

// Read fills p from the bulk IN endpoint, blocking until data arrives or the
// timeout elapses. A timeout of zero or less falls back to the endpoint's
// default.
func (d *Device) Read(p []byte, timeout time.Duration) (int, error) {
	if timeout <= 0 {
		return d.in.Read(p)
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return d.in.ReadContext(ctx, p)
}

// Close releases the interface and all libusb handles.
func (d *Device) Close() error {
	if d.done != nil {
		d.done()
		d.done = nil
	}
	var err error
	if d.dev != nil {
		err = d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		if cerr := d.ctx.Close(); err == nil {
			err = cerr
		}
		d.ctx = nil
	}
	return err
}

// String describes the open device, e.g. for log output.
func (d *Device) String() string {
	return fmt.Sprintf("WT3000 [%04x:%04x]", protocol.VendorID, protocol.ProductID)
}
