// package texture implements the tag-addressed registry of GPU-resident
// textures. Textures are loaded once during scene setup, bound to the texture
// unit matching their load order, and looked up by tag at draw time.
package texture

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/scenecraft/glstage/common"
	"github.com/scenecraft/glstage/internal/logger"
	"go.uber.org/zap"
)

// MaxSlots is the number of concurrently bound texture units the registry
// supports, matching the minimum guaranteed unit count on the target GPU class.
const MaxSlots = 16

var (
	// ErrDecode reports an image file that could not be read or parsed.
	ErrDecode = errors.New("texture: decode error")
	// ErrUnsupportedFormat reports an image whose channel count is neither 3 nor 4.
	ErrUnsupportedFormat = errors.New("texture: unsupported pixel format")
	// ErrCapacity reports a load that would exceed MaxSlots entries.
	ErrCapacity = errors.New("texture: registry capacity exceeded")
)

// Device abstracts the GPU texture operations the registry needs. The GL
// implementation lives in engine/renderer; tests substitute a fake.
type Device interface {
	// CreateTexture uploads decoded pixel data as a 2-D texture with repeat
	// wrapping, linear min/mag filtering, and a full mipmap chain.
	//
	// Parameters:
	//   - img: the decoded RGBA pixel data to upload
	//
	// Returns:
	//   - uint32: the GPU texture handle
	//   - error: error if the texture could not be created
	CreateTexture(img *common.ImageData) (uint32, error)

	// BindTexture binds a texture handle to the given texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index
	//   - handle: the GPU texture handle to bind
	BindTexture(unit int, handle uint32)

	// DeleteTexture releases a GPU texture handle.
	//
	// Parameters:
	//   - handle: the GPU texture handle to delete
	DeleteTexture(handle uint32)
}

// Source names one image file and the tag it registers under, for batch
// loading via Preload.
type Source struct {
	// Path is the image file to load.
	Path string
	// Tag is the lookup tag the texture registers under.
	Tag string
}

// entry is one registered texture. Entries are immutable after creation and
// live until ReleaseAll.
type entry struct {
	slot   int
	tag    string
	handle uint32
}

// registry is the implementation of the Registry interface.
type registry struct {
	device  Device
	entries []entry

	preloadWorkers int
}

// Registry manages the fixed set of scene textures. It is populated during a
// single-threaded setup phase and only read afterward, so no locking is
// provided or required. Slot indices are assigned densely in load order
// starting at 0; tags are not deduplicated, and lookups return the first
// match in load order, so a duplicate tag shadows rather than replaces.
type Registry interface {
	// Load decodes the image file at path and registers it under tag.
	// Only 3- and 4-channel images are accepted. On failure the registry is
	// left unchanged and no GPU resources are allocated.
	//
	// Parameters:
	//   - path: the image file to load
	//   - tag: the lookup tag to register the texture under
	//
	// Returns:
	//   - error: ErrDecode, ErrUnsupportedFormat, or ErrCapacity on failure
	Load(path, tag string) error

	// Preload decodes the given sources concurrently, then registers and
	// uploads them in declaration order on the calling goroutine. Slot
	// assignment therefore matches the order of sources, exactly as if each
	// had been passed to Load sequentially. Individual failures do not abort
	// the batch.
	//
	// Parameters:
	//   - sources: the image files and tags to load
	//
	// Returns:
	//   - error: the joined errors of all failed sources, or nil
	Preload(sources ...Source) error

	// BindAll binds every registered texture to the texture unit matching its
	// slot index. Call once after all loads and before any draw that
	// references a texture by tag.
	BindAll()

	// FindSlot returns the slot index of the first entry registered under
	// tag, in load order, or -1 if no entry matches.
	//
	// Parameters:
	//   - tag: the lookup tag
	//
	// Returns:
	//   - int: the slot index, or -1 if not found
	FindSlot(tag string) int

	// FindHandle returns the GPU handle of the first entry registered under
	// tag, in load order.
	//
	// Parameters:
	//   - tag: the lookup tag
	//
	// Returns:
	//   - uint32: the GPU texture handle, or 0 if not found
	//   - bool: true if an entry matched
	FindHandle(tag string) (uint32, bool)

	// Count returns the number of registered textures.
	//
	// Returns:
	//   - int: the entry count
	Count() int

	// ReleaseAll deletes every GPU texture and clears the registry.
	// Idempotent; safe to call when the registry is already empty.
	ReleaseAll()
}

var _ Registry = &registry{}

// NewRegistry creates a texture Registry backed by the given device.
// The device is required and NewRegistry panics if it is nil.
//
// Parameters:
//   - device: the GPU texture device to upload through (must not be nil)
//   - options: functional options to further configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(device Device, options ...RegistryBuilderOption) Registry {
	if device == nil {
		panic("texture: NewRegistry requires a non-nil Device")
	}
	r := &registry{
		device:         device,
		entries:        make([]entry, 0, MaxSlots),
		preloadWorkers: 4,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *registry) Load(path, tag string) error {
	img, err := common.LoadImage(path)
	if err != nil {
		logger.Log.Warn("texture load failed",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return r.register(img, path, tag)
}

// register validates a decoded image and appends it to the registry. Must be
// called on the goroutine that owns the GPU context.
func (r *registry) register(img *common.ImageData, path, tag string) error {
	if img.Channels != 3 && img.Channels != 4 {
		logger.Log.Warn("texture has unsupported channel count",
			zap.String("path", path),
			zap.Int("channels", img.Channels))
		return fmt.Errorf("%w: %d channels in %s", ErrUnsupportedFormat, img.Channels, path)
	}
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("%w: %d textures already loaded", ErrCapacity, len(r.entries))
	}

	handle, err := r.device.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("texture: upload of %s failed: %w", path, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, entry{slot: slot, tag: tag, handle: handle})

	logger.Log.Info("loaded texture",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("slot", slot),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels))
	return nil
}

func (r *registry) Preload(sources ...Source) error {
	if len(sources) == 0 {
		return nil
	}

	// Decode on the worker pool; upload in declaration order afterward so
	// slot assignment is deterministic regardless of decode completion order.
	type result struct {
		img *common.ImageData
		err error
	}
	results := make([]result, len(sources))

	pool := worker.NewDynamicWorkerPool(r.preloadWorkers, len(sources), time.Second)
	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		idx, s := i, src
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				img, err := common.LoadImage(s.Path)
				results[idx] = result{img: img, err: err}
				return nil, nil
			},
		})
	}
	wg.Wait()

	var errs []error
	for i, src := range sources {
		if results[i].err != nil {
			logger.Log.Warn("texture preload failed",
				zap.String("path", src.Path),
				zap.String("tag", src.Tag),
				zap.Error(results[i].err))
			errs = append(errs, fmt.Errorf("%w: %v", ErrDecode, results[i].err))
			continue
		}
		if err := r.register(results[i].img, src.Path, src.Tag); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *registry) BindAll() {
	for _, e := range r.entries {
		r.device.BindTexture(e.slot, e.handle)
	}
}

func (r *registry) FindSlot(tag string) int {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.slot
		}
	}
	return -1
}

func (r *registry) FindHandle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.tag == tag {
			return e.handle, true
		}
	}
	return 0, false
}

func (r *registry) Count() int {
	return len(r.entries)
}

func (r *registry) ReleaseAll() {
	for _, e := range r.entries {
		r.device.DeleteTexture(e.handle)
	}
	r.entries = r.entries[:0]
}
