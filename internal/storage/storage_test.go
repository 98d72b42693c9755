package storage

import (
	"context"
	"strings"
	"testing"
)

func TestAudioKey(t *testing.T) {
	got := AudioKey("proj-1", "file-1", "track.wav")
	if got != "projects/proj-1/audio/file-1-track.wav" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestAudioKey_EmptyProjectUsesDefault(t *testing.T) {
	got := AudioKey("", "file-1", "track.wav")
	if got != "projects/default/audio/file-1-track.wav" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestLocalRoundTrip(t *testing.T) {
	backend, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	ctx := context.Background()
	key := "projects/p1/audio/f1-song.wav"

	n, err := backend.Write(ctx, key, strings.NewReader("audio bytes"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != int64(len("audio bytes")) {
		t.Errorf("expected %d bytes written, got %d", len("audio bytes"), n)
	}

	exists, err := backend.Exists(ctx, key)
	if err != nil || !exists {
		t.Fatalf("expected blob to exist, got (%v, %v)", exists, err)
	}

	data, err := backend.Read(ctx, key)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "audio bytes" {
		t.Errorf("round trip corrupted data: %q", data)
	}

	if err := backend.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	exists, err = backend.Exists(ctx, key)
	if err != nil || exists {
		t.Errorf("expected blob gone after delete, got (%v, %v)", exists, err)
	}
}

func TestLocalDeleteMissingIsNoop(t *testing.T) {
	backend, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	if err := backend.Delete(context.Background(), "projects/none/audio/missing"); err != nil {
		t.Errorf("deleting a missing blob must not error, got %v", err)
	}
}

func TestLocalRejectsTraversal(t *testing.T) {
	backend, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	ctx := context.Background()

	bad := []string{"../outside", "..", "/etc/passwd", "a/../../b"}
	for _, key := range bad {
		if _, err := backend.Write(ctx, key, strings.NewReader("x")); err == nil {
			t.Errorf("key %q must be rejected", key)
		}
		if _, err := backend.Read(ctx, key); err == nil {
			t.Errorf("key %q must be rejected on read", key)
		}
	}
}
