package device

import (
	"context"
	"time"

	"caltrack/internal/domain"
)

// Mock simulates a Bluetooth handshake.
type Mock struct {
	Delay time.Duration
	Now   func() time.Time
}

func (m *Mock) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Mock) wait(ctx context.Context) error {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Connect always succeeds and stamps the first sync time.
func (m *Mock) Connect(ctx context.Context, deviceName, deviceType string) (domain.SmartwatchConnection, error) {
	if err := m.wait(ctx); err != nil {
		return domain.SmartwatchConnection{}, err
	}
	ts := m.now()
	return domain.SmartwatchConnection{
		IsConnected: true,
		DeviceName:  deviceName,
		DeviceType:  deviceType,
		LastSync:    &ts,
	}, nil
}

// Sync refreshes the last-sync timestamp of a connected device.
func (m *Mock) Sync(ctx context.Context, conn domain.SmartwatchConnection) (domain.SmartwatchConnection, error) {
	if !conn.IsConnected {
		return conn, domain.ErrDeviceNotConnected
	}
	if err := m.wait(ctx); err != nil {
		return conn, err
	}
	ts := m.now()
	conn.LastSync = &ts
	return conn, nil
}

var _ Connector = (*Mock)(nil)
