package material

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateTag is returned when a material tag is defined twice.
	ErrDuplicateTag = errors.New("duplicate material tag")

	// ErrEmptyTag is returned when a material has no tag.
	ErrEmptyTag = errors.New("empty material tag")
)

// catalog is the implementation of the Catalog interface.
type catalog struct {
	materials []Material
	byTag     map[string]int
}

// Catalog holds the materials of a scene, looked up by exact tag.
type Catalog interface {
	// Define adds materials to the catalog. Either every material is added or none is.
	//
	// Parameters:
	//   - materials: the materials to add
	//
	// Returns:
	//   - error: ErrEmptyTag or ErrDuplicateTag (wrapped)
	Define(materials ...Material) error

	// Find looks up a material by tag. Unknown tags report false.
	//
	// Parameters:
	//   - tag: the material tag, matched case-sensitively
	//
	// Returns:
	//   - Material: the material, or nil
	//   - bool: whether the tag was found
	Find(tag string) (Material, bool)

	// Len returns the number of defined materials.
	Len() int

	// Tags returns the defined tags in definition order.
	Tags() []string
}

var _ Catalog = &catalog{}

// NewCatalog creates an empty material catalog.
//
// Returns:
//   - Catalog: the catalog
func NewCatalog() Catalog {
	return &catalog{byTag: make(map[string]int)}
}

func (c *catalog) Define(materials ...Material) error {
	seen := make(map[string]struct{}, len(materials))
	for _, m := range materials {
		tag := m.Tag()
		if tag == "" {
			return ErrEmptyTag
		}
		if _, ok := c.byTag[tag]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}
		if _, ok := seen[tag]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}
		seen[tag] = struct{}{}
	}

	for _, m := range materials {
		c.byTag[m.Tag()] = len(c.materials)
		c.materials = append(c.materials, m)
	}
	return nil
}

func (c *catalog) Find(tag string) (Material, bool) {
	if c == nil {
		return nil, false
	}
	idx, ok := c.byTag[tag]
	if !ok {
		return nil, false
	}
	return c.materials[idx], true
}

func (c *catalog) Len() int {
	return len(c.materials)
}

func (c *catalog) Tags() []string {
	tags := make([]string, len(c.materials))
	for i, m := range c.materials {
		tags[i] = m.Tag()
	}
	return tags
}
