//go:build !windows

package util

// IsRunFromGUI is always false outside Windows.
func IsRunFromGUI() bool {
	return false
}
