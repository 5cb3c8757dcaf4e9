// Package ui provides colorized console output for the llm-client binaries.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// PrintBanner displays the startup banner for the gateway.
func PrintBanner(backend, model string) {
	fmt.Println()

	cyan := color.New(color.FgCyan, color.Bold)
	hiCyan := color.New(color.FgHiCyan)
	magenta := color.New(color.FgMagenta, color.Bold)
	dim := color.New(color.FgHiBlack)

	cyan.Println("╔══════════════════════════════════════════════╗")
	cyan.Print("║  ")
	hiCyan.Print("LLM")
	magenta.Print("-")
	hiCyan.Print("CLIENT")
	dim.Print("  unified chat completion gateway  ")
	cyan.Println("║")
	cyan.Println("╚══════════════════════════════════════════════╝")

	fmt.Print("   backend: ")
	magenta.Println(backend)
	fmt.Print("   model:   ")
	hiCyan.Println(model)
	fmt.Println()
}
