package systems

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "control", "physics", "visual")
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// System IDs, shared with the perf collector's phase names.
const (
	IDInput      = "input"
	IDDrive      = "drive"
	IDKinematics = "kinematics"
	IDWheels     = "wheels"
	IDTrail      = "trail"
	IDTelemetry  = "telemetry"
)

// registerDefaults adds all known systems to the registry, in frame order.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: IDInput, Name: "Input", Description: "Samples keyboard or script", Category: "control"})
	r.Register(SystemInfo{ID: IDDrive, Name: "Drive", Description: "Maps input to speed and curvature", Category: "control"})

	r.Register(SystemInfo{ID: IDKinematics, Name: "Kinematics", Description: "Integrates motion and wraps the world", Category: "physics"})
	r.Register(SystemInfo{ID: IDWheels, Name: "Wheels", Description: "Derives per-wheel steering angles", Category: "physics"})

	r.Register(SystemInfo{ID: IDTrail, Name: "Trail", Description: "Records the driven path", Category: "visual"})
	r.Register(SystemInfo{ID: IDTelemetry, Name: "Telemetry", Description: "Accumulates window statistics", Category: "internal"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns systems filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns all unique categories.
func (r *SystemRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.systems {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
