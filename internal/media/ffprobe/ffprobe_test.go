package ffprobe

import (
	"context"
	"errors"
	"testing"
)

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   float64
	}{
		{"container", Result{Format: Format{Duration: "123.45"}}, 123.45},
		{"stream fallback", Result{
			Format: Format{Duration: "N/A"},
			Streams: []Stream{
				{CodecType: "audio", Duration: "300"},
				{CodecType: "video", Duration: "61.5"},
			},
		}, 61.5},
		{"invalid", Result{Format: Format{Duration: "bad"}}, 0},
		{"negative", Result{Format: Format{Duration: "-1"}}, 0},
		{"empty", Result{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.DurationSeconds(); got != tt.want {
				t.Fatalf("DurationSeconds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInspectorInspect(t *testing.T) {
	var gotBinary string
	var gotArgs []string
	inspector := NewInspector("").WithRunner(func(ctx context.Context, binary string, args ...string) ([]byte, error) {
		gotBinary = binary
		gotArgs = args
		return []byte(`{"streams":[{"index":0,"codec_type":"video","codec_name":"h264","width":1920,"height":1080}],"format":{"duration":"42.000000","format_name":"mov,mp4"}}`), nil
	})

	result, err := inspector.Inspect(context.Background(), "/drives/clip.mp4")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if gotBinary != "ffprobe" {
		t.Fatalf("expected default binary, got %q", gotBinary)
	}
	if gotArgs[len(gotArgs)-1] != "/drives/clip.mp4" {
		t.Fatalf("expected path as last argument, got %v", gotArgs)
	}
	if result.DurationSeconds() != 42 {
		t.Fatalf("unexpected duration %v", result.DurationSeconds())
	}
	stream, ok := result.VideoStream()
	if !ok || stream.Width != 1920 {
		t.Fatalf("unexpected video stream %+v (found=%v)", stream, ok)
	}
}

func TestInspectorErrors(t *testing.T) {
	failing := NewInspector("ffprobe").WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})
	if _, err := failing.Inspect(context.Background(), "clip.mp4"); err == nil {
		t.Fatal("expected runner error")
	}

	garbage := NewInspector("ffprobe").WithRunner(func(context.Context, string, ...string) ([]byte, error) {
		return []byte("not json"), nil
	})
	if _, err := garbage.Inspect(context.Background(), "clip.mp4"); err == nil {
		t.Fatal("expected parse error")
	}

	if _, err := NewInspector("").Inspect(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
