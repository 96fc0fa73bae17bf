package config

import (
	"sync"
	"sync/atomic"
)

// Observer mirrors the display flags of the file list and tells subscribers
// when any of them changed. Reads are safe from any goroutine.
type Observer struct {
	settings *Settings

	treeMode    atomic.Bool
	showIcon    atomic.Bool
	bigRows     atomic.Bool
	inplaceEdit atomic.Bool

	mu     sync.Mutex
	subs   map[int]func()
	nextID int
	closed bool
}

// NewObserver loads the current flags and registers a single preferences listener
func NewObserver(settings *Settings) *Observer {
	o := &Observer{
		settings: settings,
		subs:     make(map[int]func()),
	}
	o.load()
	settings.prefs().AddChangeListener(o.onPreferencesChanged)
	return o
}

func (o *Observer) TreeMode() bool    { return o.treeMode.Load() }
func (o *Observer) ShowIcon() bool    { return o.showIcon.Load() }
func (o *Observer) BigRows() bool     { return o.bigRows.Load() }
func (o *Observer) InplaceEdit() bool { return o.inplaceEdit.Load() }

// Subscribe registers fn to run after a flag changed and returns a function that removes it
func (o *Observer) Subscribe(fn func()) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || fn == nil {
		return func() {}
	}
	id := o.nextID
	o.nextID++
	o.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

// Reload re-reads the flags and notifies subscribers if any of them changed
func (o *Observer) Reload() {
	if !o.load() {
		return
	}
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	subs := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		subs = append(subs, fn)
	}
	o.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Close drops all subscribers. Preferences offer no way to remove the
// listener, so it stays registered and becomes a no-op.
func (o *Observer) Close() {
	o.mu.Lock()
	o.closed = true
	o.subs = make(map[int]func())
	o.mu.Unlock()
}

func (o *Observer) onPreferencesChanged() {
	o.Reload()
}

// load stores the current values and reports whether anything changed
func (o *Observer) load() bool {
	changed := false
	set := func(flag *atomic.Bool, value bool) {
		if flag.Swap(value) != value {
			changed = true
		}
	}
	set(&o.treeMode, o.settings.GetUseTree())
	set(&o.showIcon, o.settings.GetShowProgramIcon())
	set(&o.bigRows, o.settings.GetBigRows())
	set(&o.inplaceEdit, o.settings.GetInplaceEdit())
	return changed
}
