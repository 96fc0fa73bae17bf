package download

import (
	"strings"
	"testing"

	"github.com/ytget/bitfiles/internal/model"
)

func TestService_OpenAndGet(t *testing.T) {
	service := NewService(false, nil)
	defer service.Close()

	var updates int
	service.SetUpdateCallback(func(*Download) { updates++ })

	path := writeManifest(t, sampleManifest)
	d, err := service.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	got, ok := service.Get(d.ID())
	if !ok || got != d {
		t.Error("Expected Get to return the opened download")
	}
	if len(service.All()) != 1 {
		t.Errorf("Expected 1 download, got %d", len(service.All()))
	}
	if updates == 0 {
		t.Error("Expected an update notification on open")
	}

	again, err := service.Open(path)
	if err != nil || again != d {
		t.Error("Opening the same manifest twice should return the same download")
	}
}

func TestService_PauseResume(t *testing.T) {
	service := NewService(false, nil)
	defer service.Close()

	d, err := service.Open(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := service.Resume(d.ID()); err == nil {
		t.Error("Expected error resuming a running download")
	}
	if err := service.Pause(d.ID()); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if d.State() != model.DownloadStatePaused {
		t.Errorf("Expected Paused, got %s", d.State())
	}
	if err := service.Pause(d.ID()); err == nil {
		t.Error("Expected error pausing a paused download")
	}
	if err := service.Resume(d.ID()); err != nil {
		t.Errorf("Resume failed: %v", err)
	}
}

func TestService_UnknownID(t *testing.T) {
	service := NewService(false, nil)
	for _, op := range []func(string) error{service.Pause, service.Resume, service.Save} {
		err := op("missing")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("Expected not found error, got %v", err)
		}
	}
}

func TestService_WatchAndClose(t *testing.T) {
	service := NewService(true, nil)
	d, err := service.Open(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := service.Save(d.ID()); err != nil {
		t.Errorf("Save failed: %v", err)
	}
	service.Close()
	service.Close()
}
