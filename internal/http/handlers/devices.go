package handlers

import (
	"net/http"
	"time"

	"caltrack/internal/domain"
)

type connectDeviceRequest struct {
	DeviceName string `json:"device_name" validate:"omitempty,max=120"`
	DeviceType string `json:"device_type" validate:"omitempty,max=60"`
}

type deviceStatusResponse struct {
	IsConnected bool   `json:"is_connected"`
	DeviceName  string `json:"device_name,omitempty"`
	DeviceType  string `json:"device_type,omitempty"`
	LastSync    string `json:"last_sync,omitempty"`
}

func toDeviceStatusResponse(conn domain.SmartwatchConnection) deviceStatusResponse {
	resp := deviceStatusResponse{
		IsConnected: conn.IsConnected,
		DeviceName:  conn.DeviceName,
		DeviceType:  conn.DeviceType,
	}
	if conn.LastSync != nil {
		resp.LastSync = conn.LastSync.Format(time.RFC3339)
	}
	return resp
}

// SmartwatchConnect pairs a device and persists the connection descriptor.
func (a *App) SmartwatchConnect(w http.ResponseWriter, r *http.Request) {
	var req connectDeviceRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "device fields too long")
		return
	}
	if req.DeviceName == "" {
		req.DeviceName = "Smartwatch"
	}
	if req.DeviceType == "" {
		req.DeviceType = "generic"
	}

	conn, err := a.Devices.Connect(r.Context(), req.DeviceName, req.DeviceType)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	if err := a.DeviceState.Save(r.Context(), conn); err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toDeviceStatusResponse(conn))
}

// SmartwatchDisconnect drops the stored pairing. Disconnecting with nothing
// paired succeeds.
func (a *App) SmartwatchDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := a.DeviceState.Clear(r.Context()); err != nil {
		a.failure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SmartwatchStatus returns the stored pairing state.
func (a *App) SmartwatchStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := a.DeviceState.Load(r.Context())
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toDeviceStatusResponse(conn))
}

// SmartwatchSync refreshes the last-sync timestamp of the paired device.
func (a *App) SmartwatchSync(w http.ResponseWriter, r *http.Request) {
	conn, err := a.DeviceState.Load(r.Context())
	if err != nil {
		a.failure(w, r, err)
		return
	}
	synced, err := a.Devices.Sync(r.Context(), conn)
	if err != nil {
		a.failure(w, r, err)
		return
	}
	if err := a.DeviceState.Save(r.Context(), synced); err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, toDeviceStatusResponse(synced))
}
