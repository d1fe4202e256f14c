package app

import "github.com/calebjsmith7/cue/pkg/store"

// Visuals is the cosmetic configuration for the bucket shelf. It has no
// bearing on ranking; it is stored and served like any other collection.
type Visuals struct {
	Background            string `json:"background"`
	BucketColor           string `json:"bucketColor"`
	RandomizeBucketColors bool   `json:"randomizeBucketColors"`
}

func DefaultVisuals() Visuals {
	return Visuals{
		Background:  "wood_texture",
		BucketColor: "bucket-white",
	}
}

// Settings holds user toggles outside the visual theme.
type Settings struct {
	NotificationsEnabled bool `json:"notificationsEnabled"`
}

func DefaultSettings() Settings {
	return Settings{NotificationsEnabled: true}
}

func (s *Service) Visuals() Visuals {
	return s.visuals
}

func (s *Service) SetVisuals(v Visuals) {
	s.visuals = v
	s.persist(store.KeyVisuals, s.visuals)
}

func (s *Service) NotificationsEnabled() bool {
	return s.settings.NotificationsEnabled
}

func (s *Service) SetNotificationsEnabled(enabled bool) {
	s.settings.NotificationsEnabled = enabled
	s.persist(store.KeySettings, s.settings)
}
