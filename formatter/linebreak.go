package formatter

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config holds the parameters for line breaking.
type Config struct {
	LineWidth int            // target line length in “en”s, i.e. fixed width positions
	Context   *uax11.Context // context for measuring East Asian width; defaults to uax11.LatinContext
}

var setupGraphemes sync.Once

/*
BreakPoints returns the byte offsets at which text should be wrapped to lines
of at most config.LineWidth fixed width positions. The last break point is
always len(text) for non-empty texts. A fragment too long to fit on a line is
placed on a line of its own.

Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
func BreakPoints(text string, config *Config) []int {
	if text == "" {
		return []int{}
	}
	linewidth, context := 65, uax11.LatinContext
	if config != nil {
		if config.LineWidth > 0 {
			linewidth = config.LineWidth
		}
		if config.Context != nil {
			context = config.Context
		}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	//
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	spaceleft := linewidth
	breaks := make([]int, 0, len(text)/linewidth+1)
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen > spaceleft {
			if linestart { // fragment is too long for a line
				breaks = append(breaks, prevpos+len(frag))
				tracer().Debugf("break @ %d", prevpos+len(frag))
				spaceleft = linewidth
			} else { // fragment overshoots line
				breaks = append(breaks, prevpos)
				tracer().Debugf("break @ %d", prevpos)
				spaceleft = linewidth - fraglen
				linestart = spaceleft <= 0
				if linestart { // overlong fragment gets a line of its own
					breaks = append(breaks, prevpos+len(frag))
					spaceleft = linewidth
				}
			}
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
			linestart = false
		}
		prevpos += len(frag)
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] < len(text) { // partial line left
		breaks = append(breaks, len(text))
		tracer().Debugf("break @ %d", len(text))
	}
	return breaks
}
