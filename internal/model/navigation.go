package model

// ScreenPath is a location inside the app, e.g. "/(auth)/login".
type ScreenPath string

// Navigator is the navigation primitive used by the session gate.
type Navigator interface {
	// Replace swaps the current history entry so back-navigation skips it.
	Replace(path ScreenPath)
	Location() ScreenPath
}
