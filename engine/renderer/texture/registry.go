package texture

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-desk/common"
)

// MaxTextures is the number of texture units the registry binds, and so the most entries it holds.
const MaxTextures = 16

var (
	// ErrDuplicateTag is returned when a tag is already registered.
	ErrDuplicateTag = errors.New("duplicate texture tag")

	// ErrEmptyTag is returned when a texture is loaded without a tag.
	ErrEmptyTag = errors.New("empty texture tag")

	// ErrRegistryFull is returned when MaxTextures entries are already registered.
	ErrRegistryFull = errors.New("texture registry full")
)

// Source names an image file and the tag it is registered under.
type Source struct {
	Path string `toml:"file"`
	Tag  string `toml:"tag"`
}

// entry is one registered texture. Its slot is its index in registryImpl.entries.
type entry struct {
	tag    string
	handle uint32
}

// registryImpl is the implementation of the Registry interface.
type registryImpl struct {
	device        Device
	capacity      int
	decodeWorkers int
	flip          bool

	entries []entry
	byTag   map[string]int
}

// Registry loads image files into GPU textures, tags them and maps tags to texture unit slots.
// Slot i is the i-th successfully registered texture and is bound to texture unit i.
// Not safe for concurrent use; all calls belong on the thread owning the GL context.
type Registry interface {
	// Load decodes the image at path, flips it vertically, uploads it and registers it under tag.
	// Failures are logged and returned; no entry is added on failure.
	//
	// Parameters:
	//   - path: the image file path
	//   - tag: the unique tag to register the texture under
	//
	// Returns:
	//   - error: decode, channel layout, upload, duplicate tag, empty tag or full registry errors
	Load(path, tag string) error

	// LoadAll decodes every source concurrently and then uploads them on the calling thread in
	// list order, so slots follow the list regardless of decode order. Failed sources are
	// logged and skipped.
	//
	// Parameters:
	//   - sources: the files and tags to load
	//
	// Returns:
	//   - int: the number of textures registered
	LoadAll(sources []Source) int

	// BindAll binds each registered texture to the texture unit equal to its slot.
	BindAll()

	// FindID returns the GPU handle registered under tag, or -1.
	FindID(tag string) int

	// FindSlot returns the slot (texture unit) registered under tag, or -1.
	FindSlot(tag string) int

	// Len returns the number of registered textures.
	Len() int

	// Tags returns the registered tags in slot order.
	Tags() []string

	// Destroy releases every GPU handle exactly once and empties the registry.
	// Calling it again is a no-op.
	Destroy()
}

var _ Registry = &registryImpl{}

// NewRegistry creates an empty registry backed by device.
//
// Parameters:
//   - device: the GPU texture device
//   - options: optional RegistryBuilderOption functions
//
// Returns:
//   - Registry: the registry
func NewRegistry(device Device, options ...RegistryBuilderOption) Registry {
	r := &registryImpl{
		device:        device,
		capacity:      MaxTextures,
		decodeWorkers: 4,
		flip:          true,
		byTag:         make(map[string]int),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// admit checks that tag can be registered.
func (r *registryImpl) admit(tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if _, ok := r.byTag[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	if len(r.entries) >= r.capacity {
		return fmt.Errorf("%w: %d textures", ErrRegistryFull, r.capacity)
	}
	return nil
}

// register uploads a decoded image and appends its entry.
func (r *registryImpl) register(path, tag string, img *common.DecodedImage) error {
	if err := r.admit(tag); err != nil {
		return err
	}
	handle, err := r.device.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("failed to upload texture %s: %w", path, err)
	}
	r.byTag[tag] = len(r.entries)
	r.entries = append(r.entries, entry{tag: tag, handle: handle})
	log.Printf("[Texture] loaded %s as %q (%dx%d, %d channels, slot %d)",
		path, tag, img.Width, img.Height, img.SourceChannels, len(r.entries)-1)
	return nil
}

func (r *registryImpl) Load(path, tag string) error {
	if err := r.admit(tag); err != nil {
		log.Printf("[Texture] skipping %s: %v", path, err)
		return err
	}
	img, err := common.DecodeImageFile(path, r.flip)
	if err != nil {
		err = fmt.Errorf("failed to load texture %s: %w", path, err)
		log.Printf("[Texture] %v", err)
		return err
	}
	if err := r.register(path, tag, img); err != nil {
		log.Printf("[Texture] %v", err)
		return err
	}
	return nil
}

func (r *registryImpl) LoadAll(sources []Source) int {
	if len(sources) == 0 {
		return 0
	}

	type decoded struct {
		img *common.DecodedImage
		err error
	}
	results := make([]decoded, len(sources))

	// Decoding is CPU-only and runs on the pool. GL uploads stay on this thread.
	pool := worker.NewDynamicWorkerPool(min(r.decodeWorkers, len(sources)), len(sources), 1*time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		idx, path := i, src.Path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				img, err := common.DecodeImageFile(path, r.flip)
				results[idx] = decoded{img: img, err: err}
				return nil, nil
			},
		})
	}
	wg.Wait()

	loaded := 0
	for i, src := range sources {
		if err := results[i].err; err != nil {
			log.Printf("[Texture] failed to load texture %s: %v", src.Path, err)
			continue
		}
		if err := r.register(src.Path, src.Tag, results[i].img); err != nil {
			log.Printf("[Texture] %v", err)
			continue
		}
		loaded++
	}
	return loaded
}

func (r *registryImpl) BindAll() {
	for slot, e := range r.entries {
		r.device.BindTexture(slot, e.handle)
	}
}

func (r *registryImpl) FindID(tag string) int {
	slot, ok := r.byTag[tag]
	if !ok {
		return -1
	}
	return int(r.entries[slot].handle)
}

func (r *registryImpl) FindSlot(tag string) int {
	slot, ok := r.byTag[tag]
	if !ok {
		return -1
	}
	return slot
}

func (r *registryImpl) Len() int {
	return len(r.entries)
}

func (r *registryImpl) Tags() []string {
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.tag
	}
	return tags
}

func (r *registryImpl) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.handle
	}
	r.device.DeleteTextures(handles)
	r.entries = nil
	r.byTag = make(map[string]int)
}
