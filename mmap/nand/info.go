package nand

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshuapare/mmapgen/internal/geometry"
	"github.com/joshuapare/mmapgen/pkg/bspconfig"
)

var upper = cases.Upper(language.Und)

// mtdparts builds the kernel command line partition descriptor:
//
//	mtdparts=<device>:<size>k@<offset>k(<NAME>),...
//
// It is empty when no MTD device name is configured.
func (m *Map) mtdparts() string {
	dev, ok := m.cfg.Clean(bspconfig.OptMTDDeviceName)
	if !ok {
		return ""
	}
	items := make([]string, 0, len(m.parts))
	for _, p := range m.parts {
		items = append(items, fmt.Sprintf("%dk@%dk(%s)",
			geometry.BlocksToKiB(p.Size.Units(), m.blockSize),
			geometry.BlocksToKiB(p.Start, m.blockSize),
			upper.String(p.Name)))
	}
	return "mtdparts=" + dev + ":" + strings.Join(items, ",")
}
