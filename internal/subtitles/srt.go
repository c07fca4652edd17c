package subtitles

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/fileutil"
)

// Render produces the SRT document for the captions: numbered blocks separated
// by a blank line with a single trailing newline. No captions render as "".
func Render(captions []Caption) string {
	if len(captions) == 0 {
		return ""
	}
	var b strings.Builder
	for i, caption := range captions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strconv.Itoa(caption.Index))
		b.WriteByte('\n')
		b.WriteString(caption.Timing())
		b.WriteByte('\n')
		b.WriteString(caption.Text())
	}
	b.WriteByte('\n')
	return b.String()
}

// WriteSRT renders the captions to path, creating parent directories. The file
// is replaced atomically so readers never observe a partial track.
func WriteSRT(path string, captions []Caption) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("subtitle path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create subtitle directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(Render(captions)), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

func countSRTCues(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read srt: %w", err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return 0, nil
	}
	blocks := strings.Split(content, "\n\n")
	count := 0
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count, nil
}

// lastCueEnd returns the latest end time found in the file.
func lastCueEnd(path string) (float64, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false, fmt.Errorf("read srt: %w", err)
	}
	var last float64
	found := false
	for _, line := range strings.Split(string(data), "\n") {
		startText, endText, ok := strings.Cut(line, "-->")
		if !ok {
			continue
		}
		_, errStart := ParseTimestamp(startText)
		end, errEnd := ParseTimestamp(endText)
		if errStart != nil || errEnd != nil {
			continue
		}
		found = true
		last = math.Max(last, end)
	}
	return last, found, nil
}

// ValidateSRTContent checks a written SRT file for format issues. When the
// video duration is known it also flags captions that run well past the end
// of the video. An empty slice means validation passed.
func ValidateSRTContent(path string, videoSeconds float64) []string {
	var issues []string

	cues, err := countSRTCues(path)
	if err != nil {
		return append(issues, fmt.Sprintf("read_error: %v", err))
	}
	if cues == 0 {
		return append(issues, "empty_subtitle_file")
	}

	last, found, err := lastCueEnd(path)
	switch {
	case err != nil:
		issues = append(issues, fmt.Sprintf("timestamp_parse_error: %v", err))
	case !found:
		issues = append(issues, "no_valid_timestamps")
	case videoSeconds > 0 && last-videoSeconds > subtitleOverrunToleranceSeconds:
		issues = append(issues, fmt.Sprintf("duration_mismatch: captions end at %.1fs, video ends at %.1fs", last, videoSeconds))
	}
	return issues
}
