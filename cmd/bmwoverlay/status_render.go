package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/preflight"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	checkNameWidth = 20
	checkIndent    = "  "
	optionalSuffix = "(optional)"
)

// checkState is how a doctor line is tagged and colored.
type checkState struct {
	tag   string
	color string
}

var (
	stateOK   = checkState{tag: "OK", color: ansiGreen}
	stateWarn = checkState{tag: "WARN", color: ansiYellow}
	stateFail = checkState{tag: "FAIL", color: ansiRed}
	stateSkip = checkState{tag: "SKIP", color: ansiBlue}
)

// stateFor tags a preflight result. A missing optional binary passes but is
// flagged as a warning since captions still render without it.
func stateFor(result preflight.Result) checkState {
	switch {
	case !result.Passed:
		return stateFail
	case strings.HasSuffix(result.Detail, optionalSuffix):
		return stateWarn
	default:
		return stateOK
	}
}

func renderCheckLine(name string, state checkState, detail string, colorize bool) string {
	line := fmt.Sprintf("%s%-*s [%s]", checkIndent, checkNameWidth, name+":", state.tag)
	if detail != "" {
		line += " " + detail
	}
	if colorize {
		return state.color + line + ansiReset
	}
	return line
}

// renderCheckSummary counts results per state, e.g. "5 ok, 1 warning, 0 failed".
func renderCheckSummary(results []preflight.Result, colorize bool) string {
	var ok, warn, fail int
	for _, result := range results {
		switch stateFor(result) {
		case stateFail:
			fail++
		case stateWarn:
			warn++
		default:
			ok++
		}
	}
	noun := "warnings"
	if warn == 1 {
		noun = "warning"
	}
	summary := fmt.Sprintf("%d ok, %d %s, %d failed", ok, warn, noun, fail)
	if colorize {
		color := ansiGreen
		switch {
		case fail > 0:
			color = ansiRed
		case warn > 0:
			color = ansiYellow
		}
		return color + summary + ansiReset
	}
	return summary
}

func renderDoctorHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
