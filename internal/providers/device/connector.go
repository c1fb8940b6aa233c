// Package device defines the smartwatch pairing capability. Bluetooth is an
// integration point; the mock simulates pairing with a fixed handshake delay.
package device

import (
	"context"

	"caltrack/internal/domain"
)

// Connector pairs and syncs a wearable device.
type Connector interface {
	Connect(ctx context.Context, deviceName, deviceType string) (domain.SmartwatchConnection, error)
	Sync(ctx context.Context, conn domain.SmartwatchConnection) (domain.SmartwatchConnection, error)
}
