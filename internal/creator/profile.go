// Package creator holds the domain records of the creator backend: profiles,
// generated content items and daily posting plans.
package creator

import "time"

// Profile describes a creator's niche, voice and audience.
type Profile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Niche          string    `json:"niche"`
	Tone           string    `json:"tone"`
	TargetAudience string    `json:"target_audience"`
	Platforms      []string  `json:"platforms"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProfileInput is the caller-supplied part of a profile. Name is the upsert
// key. Niche, tone and audience may be empty.
type ProfileInput struct {
	Name           string   `json:"name" binding:"required"`
	Niche          string   `json:"niche"`
	Tone           string   `json:"tone"`
	TargetAudience string   `json:"target_audience"`
	Platforms      []string `json:"platforms" binding:"required"`
}

// HasPlatform reports whether the profile lists the given platform.
func (p Profile) HasPlatform(platform string) bool {
	for _, pl := range p.Platforms {
		if pl == platform {
			return true
		}
	}

	return false
}

// PrimaryPlatform returns the first listed platform, or fallback when the
// profile has none.
func (p Profile) PrimaryPlatform(fallback string) string {
	if len(p.Platforms) == 0 {
		return fallback
	}

	return p.Platforms[0]
}
