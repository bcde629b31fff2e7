package parser

import (
	"regexp"
	"strings"

	"github.com/bbsatvik01/manning-sheets-ikes/internal/model"
)

var (
	blockSplitRE = regexp.MustCompile(`\n{2,}`)
	timeRangeRE  = regexp.MustCompile(`(\d{1,2}:\d{2}\s*[AaPp][Mm])\s*-\s*(\d{1,2}:\d{2}\s*[AaPp][Mm])`)
)

// TokenizeCell decodes one schedule cell into assignment records. Cells
// stack staff blocks separated by blank lines:
//
//	Jane Doe
//
//	6:00 AM - 2:00 PM
//
// Blocks are consumed two at a time as (name, time range) in original
// order; a trailing name with no time range is dropped, and candidates
// whose time range or start time does not parse are silently discarded.
// Pure function over the cell text.
func TokenizeCell(text string) []model.Assignment {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var blocks []string
	for _, block := range blockSplitRE.Split(text, -1) {
		if b := strings.TrimSpace(block); b != "" {
			blocks = append(blocks, b)
		}
	}

	var assignments []model.Assignment
	for i := 0; i+1 < len(blocks); i += 2 {
		m := timeRangeRE.FindStringSubmatch(blocks[i+1])
		if m == nil {
			continue
		}
		start, ok := ParseClockTime(m[1])
		if !ok {
			continue
		}
		assignments = append(assignments, model.Assignment{
			Name:      blocks[i],
			TimeRange: m[1] + " - " + m[2],
			StartHour: start,
		})
	}
	return assignments
}
