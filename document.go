package blaze

// ═══════════════════════════════════════════════════════════════════════════════
// THE FORWARD INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// Where the inverted index answers "which documents contain this token?", the
// forward index answers the opposite question: "what does this document
// contain?". Every document gets exactly one DocumentRecord, built once at
// index time and never mutated afterward.
// ═══════════════════════════════════════════════════════════════════════════════

// DocumentID is the integer identifier extracted from a document's id field.
// It is unique within a corpus, never reused, and is the primary key for
// every posting and every forward-index entry.
type DocumentID int

// DocumentRecord is one forward-index entry: where the document came from
// and how many times each token occurs in it.
//
// Source, Start and End record where the document's text lies in its shard
// file; the record itself holds no document body.
type DocumentRecord struct {
	Source string         // shard file path the document was read from
	Start  int            // first line of the document, inclusive
	End    int            // last line of the document, inclusive
	Counts map[string]int // Token -> occurrence count, every value >= 1
}

// CountTerms tokenizes text and folds the result into a term-frequency map.
// It is equivalent to counting occurrences in Tokenize(text, stopWords).
func CountTerms(text string, stopWords StopWords) map[string]int {
	counts := make(map[string]int)
	for _, token := range Tokenize(text, stopWords) {
		counts[token]++
	}
	return counts
}
