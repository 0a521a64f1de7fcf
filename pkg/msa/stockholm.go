// 13 Feb 2025

package msa

import (
	"bytes"
)

// parseStockholm reads stockholm text. Markup lines starting with "#"
// are skipped, "//" ends the alignment, and a line with fewer than
// two fields is quietly dropped. Interleaved blocks repeat a sequence
// name, so lines sharing a name are merged before the alignment is
// anchored on the query, which is the first name seen.
func parseStockholm(buf []byte) (*Alignment, error) {
	var recs []record
	byName := make(map[string]int)

	for len(buf) > 0 {
		var line []byte
		line, buf = nextLine(buf)
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if len(line) >= 2 && line[0] == '/' && line[1] == '/' {
			break
		}
		fields := bytes.Fields(line)
		if len(fields) < 2 {
			continue // malformed, skipped on purpose
		}
		name := string(fields[0])
		ndx, seen := byName[name]
		if !seen {
			ndx = len(recs)
			byName[name] = ndx
			recs = append(recs, record{name: name})
		}
		for _, f := range fields[1:] {
			recs[ndx].res = append(recs[ndx].res, f...)
		}
	}
	return anchorOnQuery(recs)
}
