package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/mmapgen/pkg/types"
)

const (
	deviceSD   = "sd"
	deviceNAND = "nand"
)

// jsonMap is the JSON form of a memory map.
type jsonMap struct {
	Device     string            `json:"device"`
	Info       types.Info        `json:"info"`
	Partitions []types.Partition `json:"partitions"`
}

func (p *Printer) printJSON(device string, parts []types.Partition, info types.Info) error {
	doc := jsonMap{
		Device:     device,
		Info:       info,
		Partitions: byStart(parts),
	}
	if doc.Partitions == nil {
		doc.Partitions = []types.Partition{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
