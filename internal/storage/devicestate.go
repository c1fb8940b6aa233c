// Package storage persists small local-only state files. The smartwatch
// pairing descriptor lives here rather than in the database: it describes
// the client device, not the account.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"caltrack/internal/domain"
)

// deviceStateFile is the fixed key the connection descriptor round-trips
// through, mirroring the single local-storage slot of the reference app.
const deviceStateFile = "smartwatch_connection.json"

// DeviceStateStore reads and writes the smartwatch connection descriptor
// as JSON under a fixed filename inside basePath.
type DeviceStateStore struct {
	basePath string
}

// NewDeviceStateStore ensures basePath exists and returns a store rooted there.
func NewDeviceStateStore(basePath string) (*DeviceStateStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &DeviceStateStore{basePath: basePath}, nil
}

func (s *DeviceStateStore) path() string {
	return filepath.Join(s.basePath, deviceStateFile)
}

// Load returns the stored descriptor. A missing file means no device has
// ever been paired and yields a disconnected descriptor, not an error.
func (s *DeviceStateStore) Load(ctx context.Context) (domain.SmartwatchConnection, error) {
	var conn domain.SmartwatchConnection
	if err := ctx.Err(); err != nil {
		return conn, err
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return conn, nil
		}
		return conn, fmt.Errorf("storage: read device state: %w", err)
	}
	if err := json.Unmarshal(data, &conn); err != nil {
		return conn, fmt.Errorf("storage: decode device state: %w", err)
	}
	return conn, nil
}

// Save overwrites the descriptor.
func (s *DeviceStateStore) Save(ctx context.Context, conn domain.SmartwatchConnection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(conn)
	if err != nil {
		return fmt.Errorf("storage: encode device state: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		return fmt.Errorf("storage: write device state: %w", err)
	}
	return nil
}

// Clear removes the descriptor; clearing an empty store is not an error.
func (s *DeviceStateStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: clear device state: %w", err)
	}
	return nil
}
