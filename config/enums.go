package config

//go:generate go run github.com/abice/go-enum@v0.9.2 --marshal --names

// MissingFragmentBehavior decides how a missing secondary fragment is handled when several
// fragments are merged into one response.
// ENUM(stop, continue)
type MissingFragmentBehavior int
