package codec

import (
	"fmt"

	"sndconvert/internal/services"
)

// Registry holds the descriptors of one run: the target codec, able to
// encode, and every source codec, able to decode.
type Registry struct {
	target      Descriptor
	descriptors map[Codec]Descriptor
}

// NewRegistry builds and verifies the descriptors for target and sources.
// A source equal to the target shares the target descriptor, since files
// already in the target codec are never decoded.
func NewRegistry(toolDir string, target Codec, sources []Codec) (*Registry, error) {
	if _, ok := formats[target]; !ok {
		return nil, services.Wrap(services.ErrConfiguration, "codec", "build registry",
			fmt.Sprintf("unsupported target codec %q", target), nil)
	}
	targetDesc, err := New(target, toolDir, CapEncode)
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		target:      targetDesc,
		descriptors: map[Codec]Descriptor{target: targetDesc},
	}
	for _, source := range sources {
		if _, ok := reg.descriptors[source]; ok {
			continue
		}
		desc, err := New(source, toolDir, CapDecode)
		if err != nil {
			return nil, err
		}
		reg.descriptors[source] = desc
	}
	return reg, nil
}

// NewRegistryFrom assembles a registry from prebuilt descriptors.
func NewRegistryFrom(target Descriptor, sources ...Descriptor) *Registry {
	reg := &Registry{
		target:      target,
		descriptors: map[Codec]Descriptor{target.Codec(): target},
	}
	for _, desc := range sources {
		reg.descriptors[desc.Codec()] = desc
	}
	return reg
}

// Target returns the descriptor every file is converted to.
func (r *Registry) Target() Descriptor {
	return r.target
}

// Lookup returns the descriptor registered for c.
func (r *Registry) Lookup(c Codec) (Descriptor, bool) {
	desc, ok := r.descriptors[c]
	return desc, ok
}
