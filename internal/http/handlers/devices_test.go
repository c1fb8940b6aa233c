package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"caltrack/internal/providers/device"
	"caltrack/internal/storage"
)

func devicesApp(t *testing.T) *App {
	t.Helper()
	store, err := storage.NewDeviceStateStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating device state store: %v", err)
	}
	return &App{
		Devices:     &device.Mock{Now: handlerFixedNow},
		DeviceState: store,
		Logger:      zerolog.Nop(),
		Now:         handlerFixedNow,
	}
}

func TestSmartwatchLifecycle(t *testing.T) {
	app := devicesApp(t)

	// Unpaired status is disconnected, not an error.
	rr := httptest.NewRecorder()
	app.SmartwatchStatus(rr, authedRequest(http.MethodGet, "/v1/devices/smartwatch/status", "", "u1"))
	var status deviceStatusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if status.IsConnected {
		t.Fatal("expected disconnected before pairing")
	}

	// Connect persists the descriptor.
	rr = httptest.NewRecorder()
	app.SmartwatchConnect(rr, authedRequest(http.MethodPost, "/v1/devices/smartwatch/connect",
		`{"device_name":"Galaxy Watch","device_type":"wearos"}`, "u1"))
	if rr.Code != http.StatusOK {
		t.Fatalf("connect status = %d, body = %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	app.SmartwatchStatus(rr, authedRequest(http.MethodGet, "/v1/devices/smartwatch/status", "", "u1"))
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if !status.IsConnected || status.DeviceName != "Galaxy Watch" {
		t.Fatalf("status after connect = %+v", status)
	}
	if status.LastSync == "" {
		t.Fatal("expected a last_sync timestamp")
	}

	// Disconnect clears the stored pairing.
	rr = httptest.NewRecorder()
	app.SmartwatchDisconnect(rr, authedRequest(http.MethodDelete, "/v1/devices/smartwatch/disconnect", "", "u1"))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("disconnect status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	app.SmartwatchStatus(rr, authedRequest(http.MethodGet, "/v1/devices/smartwatch/status", "", "u1"))
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if status.IsConnected {
		t.Fatal("expected disconnected after clearing the pairing")
	}
}

func TestSmartwatchSyncWithoutDevice(t *testing.T) {
	app := devicesApp(t)

	rr := httptest.NewRecorder()
	app.SmartwatchSync(rr, authedRequest(http.MethodPost, "/v1/devices/smartwatch/sync", "", "u1"))

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
}
