package main

import (
	"errors"
	"testing"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/discovery"
)

func TestExitCode(t *testing.T) {
	if exitCode(nil) != 0 {
		t.Fatal("nil error must exit 0")
	}
	if exitCode(errors.New("boom")) != 1 {
		t.Fatal("generic errors exit 1")
	}
	if exitCode(&discovery.NotFoundError{Kind: discovery.KindMetadata, Dir: "/x"}) != 2 {
		t.Fatal("missing inputs exit 2")
	}
}
