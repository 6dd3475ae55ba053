package codec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sndconvert/internal/deps"
	"sndconvert/internal/services"
	"sndconvert/internal/tags"
)

// Capability is a set of operations a descriptor was built for.
type Capability uint8

const (
	CapDecode Capability = 1 << iota
	CapEncode
)

// Has reports whether every capability in other is present.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	var parts []string
	if c.Has(CapDecode) {
		parts = append(parts, "decode")
	}
	if c.Has(CapEncode) {
		parts = append(parts, "encode")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Tag sources reported in DecodeResult.
const (
	TagSourceAnalyzer = "analyzer"
	TagSourceNative   = "native"
	TagSourceNone     = "none"
)

// DecodeResult carries everything a conversion needs from the source side.
type DecodeResult struct {
	Meta       tags.Map
	Invocation Invocation
	TagSource  string
	// TagErr explains why the analyzer listing was not used, if it wasn't.
	TagErr error
}

// Descriptor is the capability set of one codec bound to a tool directory.
type Descriptor interface {
	Codec() Codec
	Capabilities() Capability
	// Decode extracts the tags of path and builds the command that streams
	// its audio to standard output. The boolean is false when the descriptor
	// has no decode capability.
	Decode(ctx context.Context, path string) (DecodeResult, bool)
	// Encode builds the command that reads audio from standard input and
	// writes the destination of path, tagged with meta. The boolean is false
	// when the descriptor has no encode capability.
	Encode(path string, meta tags.Map) (Invocation, bool)
	// IsFile reports whether the destination of path already exists.
	IsFile(path string) bool
}

type descriptor struct {
	format      format
	toolDir     string
	caps        Capability
	hasAnalyzer bool
}

// New builds the descriptor for c with tools from toolDir, verifying the
// binaries needed for the requested capabilities are installed.
func New(c Codec, toolDir string, need Capability) (Descriptor, error) {
	f, ok := formats[c]
	if !ok {
		return nil, services.Wrap(services.ErrSourceUnsupported, "codec", "build descriptor",
			fmt.Sprintf("unknown codec %q", c), nil)
	}

	statuses := deps.CheckBinaries(Requirements(c, toolDir, need))
	if missing := deps.Missing(statuses); len(missing) > 0 {
		details := make([]string, 0, len(missing))
		for _, status := range missing {
			details = append(details, status.Detail)
		}
		return nil, services.Wrap(services.ErrNoSuchCodec, "codec", "verify installed",
			fmt.Sprintf("%s support requires the %s package: %s", c, f.pkg, strings.Join(details, "; ")), nil)
	}

	d := &descriptor{format: f, toolDir: toolDir, caps: need}
	for _, status := range statuses {
		if status.Name == f.analyzer && status.Available {
			d.hasAnalyzer = true
		}
	}
	return d, nil
}

// Requirements lists the binaries c needs in toolDir for the capabilities in
// need. The analyzer is optional: tags are read natively without it.
func Requirements(c Codec, toolDir string, need Capability) []deps.Requirement {
	f, ok := formats[c]
	if !ok {
		return nil
	}
	var reqs []deps.Requirement
	if need.Has(CapDecode) {
		reqs = append(reqs,
			deps.Requirement{
				Name:        f.decoder,
				Command:     filepath.Join(toolDir, f.decoder),
				Description: fmt.Sprintf("%s decoder", c),
				Package:     f.pkg,
			},
			deps.Requirement{
				Name:        f.analyzer,
				Command:     filepath.Join(toolDir, f.analyzer),
				Description: fmt.Sprintf("%s tag analyzer", c),
				Package:     f.analyzerPkg,
				Optional:    true,
			},
		)
	}
	if need.Has(CapEncode) {
		reqs = append(reqs, deps.Requirement{
			Name:        f.encoder,
			Command:     filepath.Join(toolDir, f.encoder),
			Description: fmt.Sprintf("%s encoder", c),
			Package:     f.pkg,
		})
	}
	return reqs
}

func (d *descriptor) Codec() Codec {
	return d.format.codec
}

func (d *descriptor) Capabilities() Capability {
	return d.caps
}

func (d *descriptor) tool(name string) string {
	return filepath.Join(d.toolDir, name)
}

func (d *descriptor) Decode(ctx context.Context, path string) (DecodeResult, bool) {
	if !d.caps.Has(CapDecode) {
		return DecodeResult{}, false
	}

	result := d.readTags(ctx, path)
	result.Invocation = newInvocation(d.tool(d.format.decoder))
	d.format.decodeArgs(&result.Invocation, path)
	return result, true
}

func (d *descriptor) readTags(ctx context.Context, path string) DecodeResult {
	var partial tags.Map
	var tagErr error
	if d.hasAnalyzer {
		meta, err := tags.Analyze(ctx, d.tool(d.format.analyzer), d.format.analyzeArgs(path), d.format.rule)
		if err == nil {
			return DecodeResult{Meta: meta, TagSource: TagSourceAnalyzer}
		}
		partial, tagErr = meta, err
	} else {
		tagErr = fmt.Errorf("analyzer %s not installed", d.format.analyzer)
	}

	if meta, err := tags.ReadNative(path); err == nil {
		return DecodeResult{Meta: meta, TagSource: TagSourceNative, TagErr: tagErr}
	}
	if partial == nil {
		partial = tags.Map{}
	}
	return DecodeResult{Meta: partial, TagSource: TagSourceNone, TagErr: tagErr}
}

func (d *descriptor) Encode(path string, meta tags.Map) (Invocation, bool) {
	if !d.caps.Has(CapEncode) {
		return Invocation{}, false
	}
	out := DestinationPath(path, d.format.codec)
	inv := newInvocation(d.tool(d.format.encoder))
	inv.Output = out
	d.format.encodeArgs(&inv, out, d.format.flags.Render(tags.Fields(meta)))
	return inv, true
}

func (d *descriptor) IsFile(path string) bool {
	info, err := os.Stat(DestinationPath(path, d.format.codec))
	return err == nil && !info.IsDir()
}
