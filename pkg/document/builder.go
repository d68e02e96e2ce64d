package document

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bridges/pkg/errors"
)

// Header limits.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 250
)

// CoordSystem is the coordinate system the renderer lays elements out in.
type CoordSystem string

const (
	Cartesian       CoordSystem = "cartesian"
	AlbersUSA       CoordSystem = "albersusa"
	Equirectangular CoordSystem = "equirectangular"
)

// CoordSystems lists the accepted coordinate systems.
var CoordSystems = []CoordSystem{Cartesian, AlbersUSA, Equirectangular}

// Header is the top-level metadata of a document.
type Header struct {
	Visual      string      `json:"visual"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CoordSystem CoordSystem `json:"coord_system_type"`
	MapOverlay  bool        `json:"map_overlay"`
}

// Document is a header merged with one structure section.
type Document struct {
	Header
	Section Section
}

// MarshalJSON emits the header fields and the section keys as one object.
// Header keys take precedence over section keys of the same name.
func (d Document) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(d.Header)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]json.RawMessage, 5+len(d.Section))
	if err := json.Unmarshal(head, &merged); err != nil {
		return nil, err
	}
	for k, v := range d.Section {
		if _, taken := merged[k]; taken {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode section %q", k)
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}

// Builder assembles a document from header settings and one designated
// structure. The zero value is not usable; call NewBuilder.
type Builder struct {
	header    Header
	structure Structure
	logger    *log.Logger
}

// NewBuilder returns a builder with an empty title and description and the
// cartesian coordinate system. A nil logger discards output.
func NewBuilder(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Builder{
		header: Header{CoordSystem: Cartesian},
		logger: logger,
	}
}

func (b *Builder) Title() string { return b.header.Title }

// SetTitle stores title, truncated to MaxTitleLength runes.
func (b *Builder) SetTitle(title string) {
	b.header.Title = b.truncate("title", title, MaxTitleLength)
}

func (b *Builder) Description() string { return b.header.Description }

// SetDescription stores description, truncated to MaxDescriptionLength runes.
func (b *Builder) SetDescription(description string) {
	b.header.Description = b.truncate("description", description, MaxDescriptionLength)
}

func (b *Builder) truncate(field, s string, limit int) string {
	n := utf8.RuneCountInString(s)
	if n <= limit {
		return s
	}
	b.logger.Warn("truncating "+field, "length", n, "max", limit)
	return string([]rune(s)[:limit])
}

func (b *Builder) CoordSystem() CoordSystem { return b.header.CoordSystem }

// SetCoordSystem rejects names outside CoordSystems, keeping the previous
// value.
func (b *Builder) SetCoordSystem(name string) error {
	cs := CoordSystem(name)
	if !slices.Contains(CoordSystems, cs) {
		return errors.Validation("unknown coordinate system %q (valid: %v)", name, CoordSystems)
	}
	b.header.CoordSystem = cs
	return nil
}

func (b *Builder) MapOverlay() bool { return b.header.MapOverlay }

func (b *Builder) SetMapOverlay(on bool) { b.header.MapOverlay = on }

// Structure returns the designated structure, or nil.
func (b *Builder) Structure() Structure { return b.structure }

// SetStructure designates s for serialization.
func (b *Builder) SetStructure(s Structure) error {
	if s == nil {
		return errors.New(errors.ErrCodeUnrepresentable, "no data structure to serialize")
	}
	b.structure = s
	return nil
}

// Document builds the typed document for the designated structure.
func (b *Builder) Document() (*Document, error) {
	if b.structure == nil {
		return nil, errors.New(errors.ErrCodeUnrepresentable, "no data structure designated for serialization")
	}
	section, err := b.structure.Representation()
	if err != nil {
		return nil, err
	}
	h := b.header
	h.Visual = b.structure.DataStructureType()
	b.logger.Debug("built document", "visual", h.Visual, "sections", len(section))
	return &Document{Header: h, Section: section}, nil
}

// Marshal returns the compact JSON document. Nothing is returned on error.
func (b *Builder) Marshal() ([]byte, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return data, nil
}

// WriteTo writes the indented JSON document to w. Nothing is written if
// the document cannot be built.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := b.Marshal()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "indent document")
	}
	buf.WriteByte('\n')
	return buf.WriteTo(w)
}
