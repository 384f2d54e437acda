package gray

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// detectStylesheets scans the element and all its descendants for embedded
// stylesheets. There is no CSS cascade engine here, so colors controlled only
// through style elements stay unconverted - the scan makes that gap visible
// instead of silently under-converting. Read-only, never stops traversal.
func detectStylesheets(el *etree.Element, log *zap.Logger) {
	if el.Tag == "style" {
		log.Warn("Embedded stylesheet found, colors set through CSS rules will not be converted", zap.String("path", el.GetPath()))
	}
	for _, child := range el.ChildElements() {
		detectStylesheets(child, log)
	}
}
