// Package ui draws the status strip of the preview window. Its contents
// build only with the ebiten tag.
package ui
