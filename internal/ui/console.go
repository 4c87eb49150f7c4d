package ui

import (
	"fmt"
	"io"
	"os"
)

// ANSI Color Codes
const (
	Reset   = "\033[0m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
	Yellow  = "\033[33m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Bold    = "\033[1m"
)

// Output is where all console lines go. Tests swap it for a buffer.
var Output io.Writer = os.Stdout

func Println(msg string) {
	fmt.Fprintln(Output, msg)
}

func Info(msg string) {
	fmt.Fprintf(Output, "%s[INFO] %s%s\n", Cyan, Reset, msg)
}

func Success(msg string) {
	fmt.Fprintf(Output, "%s[SUCCESS] %s%s\n", Green, Reset, msg)
}

func Warning(msg string) {
	fmt.Fprintf(Output, "%s[WARNING] %s%s\n", Yellow, Reset, msg)
}

func Error(msg string) {
	fmt.Fprintf(Output, "%s[ERROR] %s%s\n", Red, Reset, msg)
}

func Header(title string) {
	fmt.Fprintf(Output, "\n%s=== %s ===%s\n", Magenta, title, Reset)
}
