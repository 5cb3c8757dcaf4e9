// Package ui provides colorized console output for the llm-client binaries.
// It renders status badges for backend resolution, completion calls and
// cache activity.
package ui

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	// Badge colors
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	warningBadge = color.New(color.FgYellow, color.Bold)
	errorBadge   = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)

	// Text colors
	successText = color.New(color.FgGreen, color.Bold)
	warningText = color.New(color.FgYellow)
	errorText   = color.New(color.FgRed)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
	neonCyan    = color.New(color.FgHiCyan, color.Bold)
)

// PrintResolved logs the backend/model combination a client resolved to.
// Format: [RESOLVED] backend=openai model=gpt-4o-mini
func PrintResolved(backend, model string) {
	infoBadge.Print("[RESOLVED]")
	fmt.Print(" backend=")
	accentText.Print(backend)
	fmt.Print(" model=")
	neonCyan.Println(model)
}

// PrintCompletion logs a successful completion with its latency.
func PrintCompletion(backend string, latency time.Duration) {
	successBadge.Print(" OK ")
	fmt.Print(" ")
	successText.Printf("completion via %s", backend)
	mutedText.Printf(" (%s)\n", latency.Round(time.Millisecond))
}

// PrintUnavailable logs a backend that could not be used.
// Format: ⚠️ [UNAVAILABLE] backend (reason)
func PrintUnavailable(backend, reason string) {
	fmt.Print("⚠️  ")
	warningBadge.Print("[UNAVAILABLE]")
	fmt.Print(" ")
	warningText.Print(backend)
	mutedText.Printf(" (%s)\n", reason)
}

// PrintError logs a failed completion call.
func PrintError(msg string) {
	errorBadge.Print(" ERROR ")
	fmt.Print(" ")
	errorText.Println(msg)
}

// PrintCacheHit logs a gateway cache hit.
func PrintCacheHit(key string, latency time.Duration) {
	fmt.Print("⚡ ")
	infoBadge.Print("[CACHE HIT]")
	fmt.Print(" ")
	mutedText.Printf("%s... (%s)\n", shortKey(key), latency.Round(time.Microsecond))
}

// PrintGatewayInfo logs general gateway information.
func PrintGatewayInfo(msg string) {
	infoBadge.Print("[GATEWAY]")
	fmt.Print(" ")
	fmt.Println(msg)
}

// shortKey truncates a cache key for display.
func shortKey(key string) string {
	if len(key) <= 12 {
		return key
	}
	return key[:12]
}
