package internal

import "strings"

// openTag is a recognized start tag waiting for its matching end tag,
// autoclose, or end-of-input closure. Grounded on the teacher's
// element-stack walk in internal/prompty.parser.go, generalized from a
// tree-building stack to a flat annotation-binding stack per spec §4.6.
type openTag struct {
	name      string
	ann       Annotation
	emitStart int // builder length when this tag was pushed
	strategy  Strategy

	// forward_until_newline bookkeeping (lazily resolved during emit,
	// per spec §4.6's "equivalently, track this lazily during emit").
	newlineTargetRaw   int // raw input offset of the next '\n' after the tag, or len(text) if none
	newlineEmitResolved bool
	newlineEmitOffset  int
}

type engine struct {
	text string
	cfg  EngineConfig
	b    *Builder
	stack []*openTag
}

// Run implements the main recovery loop of spec §4.6 over text, using
// the resolved cfg, and returns the flat emitted text plus its
// annotations and markers.
func Run(text string, cfg EngineConfig) Result {
	e := &engine{text: text, cfg: cfg, b: NewBuilder()}
	n := len(text)
	i := 0

	for i < n {
		idx := strings.IndexByte(text[i:], CharLt)
		if idx < 0 {
			e.emitRaw(i, n)
			i = n
			break
		}
		ltPos := i + idx
		if ltPos > i {
			e.emitRaw(i, ltPos)
		}

		tag, next, ok := TryScan(text, ltPos)
		if !ok {
			// Not a recognizable tag shape at all: '<' is literal text.
			e.emitRaw(ltPos, ltPos+1)
			i = ltPos + 1
			continue
		}

		switch tag.Kind {
		case KindCData:
			e.emitCData(tag)
			i = next

		case KindStart:
			i = e.handleStart(tag, next)

		case KindEnd:
			i = e.handleEnd(tag, next)

		case KindSelfClose:
			i = e.handleSelfClose(tag, next)

		default:
			e.emitRaw(ltPos, ltPos+1)
			i = ltPos + 1
		}
	}

	// End of input: close whatever remains, innermost first.
	for len(e.stack) > 0 {
		e.closeTop()
	}

	text2, segments, markers := e.b.Finish()
	return Result{Text: text2, Segments: segments, Markers: markers}
}

// emitRaw copies text[start:end] verbatim to the builder and resolves
// any pending forward_until_newline lookups whose target falls in or
// before this span. Every byte the engine ever writes to the builder passes through
// either this method or emitCData, which is what lets
// resolvePendingNewlines stay correct regardless of whether the bytes
// came from plain text, a CDATA body, or an unknown tag's passthrough.
func (e *engine) emitRaw(start, end int) {
	if end <= start {
		return
	}
	prevLen := e.b.Len()
	e.b.EmitText(e.text[start:end])
	e.resolvePendingNewlines(start, end, prevLen, true)
}

func (e *engine) emitCData(tag RawTag) {
	prevLen := e.b.Len()
	e.b.EmitText(tag.CDataText)
	// CDATA content is a separate slice from the raw input for bodies
	// containing entities, but here it's always a direct substring of
	// text, so offsets still line up with the raw input.
	bodyStart := tag.Start + len(StrCDataOpen)
	e.resolvePendingNewlines(bodyStart, bodyStart+len(tag.CDataText), prevLen, true)
}

// resolvePendingNewlines snapshots the emit offset for any open tag
// whose forward_until_newline target falls before rawEnd. prevLen is the
// builder length before [rawStart, rawEnd) was emitted, and emitted
// indicates whether this raw span actually produced bytes in the
// builder. A target inside an emitted span maps to its exact emit
// offset. A target that lies in raw bytes the engine skipped without
// calling this method (e.g. a stripped unknown tag's markup) resolves
// to prevLen — what had been emitted before those skipped bytes — since
// no finer-grained offset exists for bytes that were never copied out.
func (e *engine) resolvePendingNewlines(rawStart, rawEnd, prevLen int, emitted bool) {
	for _, ot := range e.stack {
		if ot.strategy != StrategyForwardUntilNewline || ot.newlineEmitResolved {
			continue
		}
		if ot.newlineTargetRaw >= rawEnd {
			continue
		}
		if emitted && ot.newlineTargetRaw >= rawStart {
			ot.newlineEmitOffset = prevLen + (ot.newlineTargetRaw - rawStart)
		} else {
			ot.newlineEmitOffset = prevLen
		}
		ot.newlineEmitResolved = true
	}
}

func (e *engine) handleStart(tag RawTag, next int) int {
	folded := e.cfg.fold(tag.Name)
	if !e.cfg.isRecognized(folded) {
		return e.dispatchUnknown(tag)
	}

	if e.cfg.AutocloseOnAnyTag {
		if len(e.stack) > 0 {
			e.closeTop()
		}
	} else if e.cfg.AutocloseOnSameTag && len(e.stack) > 0 && e.stack[len(e.stack)-1].name == folded {
		e.closeTop()
	}

	ot := &openTag{
		name:      folded,
		ann:       Annotation{Tag: folded, Attrs: attrsFromRaw(tag.Attrs)},
		emitStart: e.b.Len(),
		strategy:  e.cfg.strategyFor(folded),
	}
	if ot.strategy == StrategyForwardUntilNewline {
		ot.newlineTargetRaw = e.nextNewlineRaw(next)
	}
	e.stack = append(e.stack, ot)
	return next
}

func (e *engine) nextNewlineRaw(from int) int {
	idx := strings.IndexByte(e.text[from:], CharNewline)
	if idx < 0 {
		return len(e.text)
	}
	return from + idx
}

func (e *engine) handleEnd(tag RawTag, next int) int {
	folded := e.cfg.fold(tag.Name)
	if !e.cfg.isRecognized(folded) {
		return e.dispatchUnknown(tag)
	}

	if len(e.stack) > 0 && e.stack[len(e.stack)-1].name == folded {
		ot := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		// Closure by an explicit, matching end tag always uses simple
		// inline annotation regardless of strategy (spec §4.6).
		e.b.AnnotateRange(ot.emitStart, e.b.Len(), ot.ann)
		return next
	}

	// Stray recognized end tag: spec §4.7.
	switch e.cfg.StrayEndTagPolicy {
	case StrayPassthrough:
		e.emitRaw(tag.Start, tag.End)
	case StrayDrop:
		// emit nothing
	}
	return next
}

func (e *engine) handleSelfClose(tag RawTag, next int) int {
	folded := e.cfg.fold(tag.Name)
	if !e.cfg.isRecognized(folded) {
		return e.dispatchUnknown(tag)
	}
	e.b.EmitMarker(Annotation{Tag: folded, Attrs: attrsFromRaw(tag.Attrs)})
	return next
}

// dispatchUnknown implements spec §4.5 for Start/End/SelfClose tags
// whose name is not recognized, and spec §4.7's "unrecognized stray end
// tag dispatches via unknown_mode" (the same code path, since an
// unrecognized End tag is by definition never matched against the
// stack).
func (e *engine) dispatchUnknown(tag RawTag) int {
	switch e.cfg.UnknownMode {
	case UnknownStrip:
		return tag.End
	case UnknownPassthrough:
		e.emitRaw(tag.Start, tag.End)
		return tag.End
	case UnknownTreatAsText:
		// Only the '<' is consumed; everything after it is re-examined
		// as plain text (and may itself contain another '<').
		e.emitRaw(tag.Start, tag.Start+1)
		return tag.Start + 1
	default:
		return tag.End
	}
}

// closeTop pops the innermost open tag and annotates according to its
// strategy, per spec §4.6's dispatch table.
func (e *engine) closeTop() {
	ot := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	switch ot.strategy {
	case StrategyNoop:
		// no annotation at all

	case StrategyForwardUntilTag:
		e.b.AnnotateRange(ot.emitStart, e.b.Len(), ot.ann)

	case StrategyForwardUntilNewline:
		end := ot.newlineEmitOffset
		if !ot.newlineEmitResolved {
			end = e.b.Len()
		}
		if end > e.b.Len() {
			end = e.b.Len()
		}
		e.b.AnnotateRange(ot.emitStart, end, ot.ann)

	case StrategyForwardNextToken:
		e.applyForwardNextToken(ot)

	case StrategyRetroLine:
		e.applyRetroLine(ot)

	default:
		e.b.AnnotateRange(ot.emitStart, e.b.Len(), ot.ann)
	}
}

// applyForwardNextToken implements spec §4.6's forward_next_token: the
// annotated span runs from emit_start_byte to the end of the first
// contiguous non-whitespace run emitted after any leading whitespace.
// If no such run has been emitted by the time of close, nothing is
// annotated.
func (e *engine) applyForwardNextToken(ot *openTag) {
	avail := e.b.Snapshot()
	r := len(avail)
	pos := ot.emitStart
	for pos < r && isWhitespace(avail[pos]) {
		pos++
	}
	tokenStart := pos
	for pos < r && !isWhitespace(avail[pos]) {
		pos++
	}
	if pos == tokenStart {
		return
	}
	e.b.AnnotateRange(ot.emitStart, pos, ot.ann)
}

// applyRetroLine implements spec §4.6's retro_line: look backward from
// emit_start_byte to the start of the current line (the byte after the
// nearest preceding '\n', or 0), optionally trimming leading whitespace
// and trailing punctuation/whitespace from that span.
func (e *engine) applyRetroLine(ot *openTag) {
	avail := e.b.Snapshot()
	r := ot.emitStart
	l := 0
	if idx := strings.LastIndexByte(avail[:r], CharNewline); idx >= 0 {
		l = idx + 1
	}

	start, end := l, r
	if e.cfg.TrimPunctuation {
		for start < end && isWhitespace(avail[start]) {
			start++
		}
		for end > start && strings.IndexByte(TrimPunctuationChars, avail[end-1]) >= 0 {
			end--
		}
	}
	e.b.AnnotateRange(start, end, ot.ann)
}
