package systems

import (
	"math"

	"github.com/automoto/dragonfight/archetypes"
	"github.com/automoto/dragonfight/components"
	cfg "github.com/automoto/dragonfight/config"
	"github.com/yohamta/donburi"
)

func cameraEntry(w donburi.World) *donburi.Entry {
	entry, ok := components.Camera.First(w)
	if !ok {
		entry = archetypes.Camera.Spawn(w)
	}
	return entry
}

// GetOrCreateCamera returns the world's camera.
func GetOrCreateCamera(w donburi.World) *components.CameraData {
	return components.Camera.Get(cameraEntry(w))
}

// CameraTarget is where the camera heads for a view screenWidth wide: a
// little ahead of the lead player, kept inside the stage.
func CameraTarget(w donburi.World, screenWidth float64) float64 {
	half := screenWidth / 2
	lvl := GetOrCreateLevel(w)
	stageWidth := lvl.World.StageWidth(lvl.Stage.Width)

	maxX := math.Max(stageWidth-half, half)
	return clampFloat(LeadX(w)+cfg.Camera.LeadOffset, half, maxX)
}

// UpdateCamera eases the camera toward its target once per rendered frame
// and applies any running shake.
func UpdateCamera(w donburi.World, screenWidth float64) {
	entry := cameraEntry(w)
	camera := components.Camera.Get(entry)

	target := CameraTarget(w, screenWidth)
	if !camera.Placed {
		camera.X = target
		camera.Placed = true
	} else {
		camera.X += (target - camera.X) * cfg.Camera.FollowSmoothing
	}

	camera.Offset = 0
	updateScreenShake(entry, camera)
}

// ResetCamera snaps the camera to its target on the next update.
func ResetCamera(w donburi.World) {
	GetOrCreateCamera(w).Placed = false
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(entry *donburi.Entry, camera *components.CameraData) {
	if !entry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(entry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	camera.Offset = math.Sin(float64(shake.Elapsed)*1.1) * shake.Intensity * progress

	if shake.Elapsed >= shake.Duration {
		entry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never replaces
// a stronger one that is still running.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	if duration <= 0 {
		return
	}
	entry := cameraEntry(w)

	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	entry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(entry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
