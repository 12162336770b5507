package cmd

import (
	"fmt"
	"io"
)

// Icon semantics shared by every command:
//   ✓  success / healthy
//   ✗  error / failure
//   ⚠  warning
//   ○  skipped / not applicable
//   -  not found / missing
//   ~  neutral info

// printSection prints a top-level section header, e.g. "=== doctor ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// printCheck prints a "[ name ]" check heading.
func printCheck(w io.Writer, name string) {
	fmt.Fprintf(w, "[ %s ]\n", name)
}

func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
		return
	}
	fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
}

func printOK(w io.Writer, name, msg string)   { printLine(w, "✓", name, msg) }
func printErr(w io.Writer, name, msg string)  { printLine(w, "✗", name, msg) }
func printWarn(w io.Writer, name, msg string) { printLine(w, "⚠", name, msg) }
func printSkip(w io.Writer, name, msg string) { printLine(w, "○", name, msg) }
func printMiss(w io.Writer, name, msg string) { printLine(w, "-", name, msg) }
func printInfo(w io.Writer, name, msg string) { printLine(w, "~", name, msg) }
