package domain

import "time"

// Session is the per-visitor controller state for the vehicles page. It is
// never persisted beyond the process.
type Session struct {
	ID                string      `json:"id"`
	Filters           FilterState `json:"filters"`
	Panel             PanelState  `json:"panel"`
	SelectedVehicleID *int32      `json:"selected_vehicle_id,omitempty"`
	CreatedOn         time.Time   `json:"created_on"`
	LastSeenOn        time.Time   `json:"last_seen_on"`
}
