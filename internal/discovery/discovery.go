// Package discovery locates the driving video and its telemetry log inside a
// recording folder.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
)

// ErrInputFileNotFound marks a missing recording folder, video, or telemetry file.
var ErrInputFileNotFound = errors.New("input file not found")

// Kind names the file a lookup was searching for.
type Kind string

const (
	KindFolder   Kind = "folder"
	KindVideo    Kind = "video"
	KindMetadata Kind = "metadata"
)

// NotFoundError reports which input could not be located.
type NotFoundError struct {
	Kind Kind
	Dir  string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case KindFolder:
		return fmt.Sprintf("provided folder does not exist: %s", e.Dir)
	case KindVideo:
		return "no .mp4 or .ts file found in the provided folder"
	case KindMetadata:
		return "no .json metadata file found in the provided folder"
	default:
		return fmt.Sprintf("%s not found in %s", e.Kind, e.Dir)
	}
}

func (e *NotFoundError) Is(target error) bool { return target == ErrInputFileNotFound }

// Video extensions in preference order: any .mp4 wins over every .ts.
var videoExtensions = []string{".mp4", ".ts"}

const metadataExtension = ".json"

// Inputs pairs the files found in a recording folder.
type Inputs struct {
	Folder   string
	Video    string
	Metadata string
}

// Find resolves both inputs. The video is looked up first.
func Find(dir string) (Inputs, error) {
	video, err := FindVideo(dir)
	if err != nil {
		return Inputs{}, err
	}
	metadata, err := FindMetadata(dir)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{Folder: dir, Video: video, Metadata: metadata}, nil
}

// FindVideo returns the lexicographically first .mp4 file, or the first .ts
// file when the folder has no .mp4.
func FindVideo(dir string) (string, error) {
	names, err := regularFiles(dir)
	if err != nil {
		return "", err
	}
	for _, ext := range videoExtensions {
		if name, ok := firstWithExtension(names, ext); ok {
			return filepath.Join(dir, name), nil
		}
	}
	return "", &NotFoundError{Kind: KindVideo, Dir: dir}
}

// FindMetadata returns the lexicographically first .json file.
func FindMetadata(dir string) (string, error) {
	names, err := regularFiles(dir)
	if err != nil {
		return "", err
	}
	if name, ok := firstWithExtension(names, metadataExtension); ok {
		return filepath.Join(dir, name), nil
	}
	return "", &NotFoundError{Kind: KindMetadata, Dir: dir}
}

func regularFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Kind: KindFolder, Dir: dir}
		}
		return nil, fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Kind: KindFolder, Dir: dir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func firstWithExtension(sortedNames []string, ext string) (string, bool) {
	fold := cases.Fold() // Casers are stateful; one per lookup.
	want := fold.String(ext)
	for _, name := range sortedNames {
		if fold.String(filepath.Ext(name)) == want {
			return name, true
		}
	}
	return "", false
}
