//go:generate go run ../internal/wheregen -o .

package compare
