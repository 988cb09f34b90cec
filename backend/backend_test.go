package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/gfx"
)

// fakeDriver is a minimal Driver for registry tests.
type fakeDriver struct {
	name    string
	openErr error
	opened  int
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) Open() (gfx.Device, error) {
	d.opened++
	if d.openErr != nil {
		return nil, d.openErr
	}
	return nil, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	Register("fake", func() Driver { return &fakeDriver{name: "fake"} })
	defer Unregister("fake")

	if !IsRegistered("fake") {
		t.Error("fake driver should be registered")
	}

	d := Get("fake")
	if d == nil {
		t.Fatal("Get(fake) returned nil")
	}
	if d.Name() != "fake" {
		t.Errorf("Get(fake).Name() = %q, want %q", d.Name(), "fake")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	d := Get("nonexistent")
	if d != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("gone", func() Driver { return &fakeDriver{name: "gone"} })
	Unregister("gone")

	if IsRegistered("gone") {
		t.Error("Unregister() should remove the driver")
	}
	if Get("gone") != nil {
		t.Error("Get() should return nil after Unregister()")
	}
}

func TestRegistryAvailable(t *testing.T) {
	Register("fake", func() Driver { return &fakeDriver{name: "fake"} })
	defer Unregister("fake")

	available := Available()
	found := false
	for _, name := range available {
		if name == "fake" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'fake'")
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	// A driver registered under the priority name wins over others.
	Register(BackendGPU, func() Driver { return &fakeDriver{name: BackendGPU} })
	Register("other", func() Driver { return &fakeDriver{name: "other"} })
	defer Unregister(BackendGPU)
	defer Unregister("other")

	d := Default()
	if d == nil {
		t.Fatal("Default() returned nil")
	}
	if d.Name() != BackendGPU {
		t.Errorf("Default().Name() = %q, want %q", d.Name(), BackendGPU)
	}
}

func TestRegistryDefaultFallback(t *testing.T) {
	// Without a priority driver, any registered driver serves.
	Register("only", func() Driver { return &fakeDriver{name: "only"} })
	defer Unregister("only")

	d := Default()
	if d == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestRegistryMustDefault(t *testing.T) {
	Register("fake", func() Driver { return &fakeDriver{name: "fake"} })
	defer Unregister("fake")

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	d := MustDefault()
	if d == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryOpenDefaultError(t *testing.T) {
	openErr := errors.New("no adapters")
	Register(BackendGPU, func() Driver { return &fakeDriver{name: BackendGPU, openErr: openErr} })
	defer Unregister(BackendGPU)

	if _, err := OpenDefault(); !errors.Is(err, openErr) {
		t.Errorf("OpenDefault() error = %v, want %v", err, openErr)
	}
}
