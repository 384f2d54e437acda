// Package gray converts colors of an SVG document to shades of gray while
// preserving all non-color structure: shapes, transforms, gradients and paint
// server references survive conversion byte for byte.
package gray

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Processor converts complete SVG documents. It carries only immutable
// options and a logger, so a single Processor may be used from multiple
// goroutines - every Document call owns its tree and conversion cache.
type Processor struct {
	opts Options
	log  *zap.Logger
}

// NewProcessor creates a document processor for the given conversion options.
func NewProcessor(opts Options, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{opts: opts, log: log.Named("gray")}
}

// Document converts a single SVG document. The only fatal condition is input
// that does not parse as XML - everything past parsing degrades locally
// (unknown color values pass through, embedded stylesheets are reported and
// skipped) so a successful return means best-effort full conversion.
func (p *Processor) Document(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: true,
	}
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse SVG: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	p.ConvertTree(root)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize SVG: %w", err)
	}
	return out, nil
}

// ConvertTree runs the conversion passes over an already parsed element in
// place: stylesheet detection (diagnostic only), inline style expansion and
// the color rewrite with a fresh conversion cache. The caller retains
// ownership of the tree and must not share it across concurrent calls.
func (p *Processor) ConvertTree(root *etree.Element) {
	detectStylesheets(root, p.log)
	expandStyles(root)
	rewriteTree(root, newConverter(p.opts))
}
