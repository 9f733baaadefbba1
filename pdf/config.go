package pdf

import "time"

// Config holds PDF rendering settings.
type Config struct {
	Title          string
	Author         string
	Subject        string
	Creator        string
	Keywords       string
	UseLayers      bool
	OpenLayerPane  bool
	MaxImagePixels int
	NoCompression  bool
	CreationDate   time.Time
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		Title:          "Flyer reseñas",
		Author:         "Athletic Gym",
		Subject:        "Reseñas de clientes",
		Creator:        "pkt.systems/flyer",
		MaxImagePixels: 2048,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Subject != "" {
		dst.Subject = src.Subject
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
	if src.Keywords != "" {
		dst.Keywords = src.Keywords
	}
	if src.UseLayers {
		dst.UseLayers = true
	}
	if src.OpenLayerPane {
		dst.OpenLayerPane = true
	}
	if src.MaxImagePixels > 0 {
		dst.MaxImagePixels = src.MaxImagePixels
	}
	if src.NoCompression {
		dst.NoCompression = true
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}
