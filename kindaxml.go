// Package kindaxml parses XML-ish annotation markup emitted by language
// models into plain text plus a flat list of annotations, recovering
// deterministically from the malformed markup LLMs routinely produce
// instead of failing.
//
// # Basic usage
//
//	result, err := kindaxml.Parse(raw, kindaxml.WithRecognizedTags("cite", "note"))
//	if err != nil {
//	    // configuration error only — Parse never fails on malformed input
//	}
//	fmt.Println(result.Text)
//	for _, seg := range result.Segments {
//	    fmt.Println(seg.Text, seg.Annotations)
//	}
//
// # Recovery strategies
//
// Every recognized tag has a recovery strategy applied when it is
// closed implicitly, by autoclose or end of input, rather than by its
// own matching end tag:
//
//	cfg, _ := kindaxml.NewConfig(
//	    kindaxml.WithRecognizedTags("cite", "note", "risk", "todo"),
//	    kindaxml.WithTagStrategy("cite", kindaxml.StrategyRetroLine),
//	    kindaxml.WithDefaultStrategy(kindaxml.StrategyForwardUntilTag),
//	)
//	result := kindaxml.ParseWithConfig(raw, cfg)
//
// # Unknown tags
//
// Tags outside the recognized set are stripped, passed through
// verbatim, or treated as plain text, per WithUnknownMode.
//
// # Caching and persistence
//
// ResultCache provides an in-memory TTL cache keyed on the input text
// and the resolved configuration; when full it evicts the entry stored
// earliest, and lookups do not refresh an entry. PostgresStore persists
// results for reuse across process restarts.
package kindaxml
