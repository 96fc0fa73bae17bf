package download

// Manager defines the interface for the download registry.
type Manager interface {
	SetUpdateCallback(func(*Download))
	Open(manifestPath string) (*Download, error)
	Get(id string) (*Download, bool)
	All() []*Download
	Pause(id string) error
	Resume(id string) error
	Save(id string) error
	Close()
}
