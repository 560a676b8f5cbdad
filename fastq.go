package swiftamr

// fastqRecord is one parsed four-line FASTQ record with quality discarded.
type fastqRecord struct {
	name     string
	sequence []byte
}

// parseFASTQ splits data into four-line records (header/sequence/separator/
// quality) and returns the name and uppercased, whitespace-stripped
// sequence of each. Quality is parsed only far enough to be skipped.
//
// A record starts at an '@' that appears at the start of data or
// immediately after a '\n' (spec.md §9's column-0 rule). The quality line
// is consumed as the fourth line of its record, so a quality line that
// happens to begin with '@' is not mistaken for a new header. The
// read name is the run of non-whitespace bytes after '@', truncated to
// MaxGeneName-1 bytes.
func parseFASTQ(data []byte) ([]fastqRecord, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var records []fastqRecord
	i := 0
	sawRecord := false

	for i < len(data) {
		if data[i] != '@' || !atRecordStart(data, i) {
			i++
			continue
		}
		sawRecord = true

		i++ // skip '@'
		nameStart := i
		for i < len(data) && data[i] != '\n' && data[i] != ' ' && data[i] != '\t' && data[i] != '\r' {
			i++
		}
		name := string(data[nameStart:i])
		if len(name) > MaxGeneName-1 {
			name = name[:MaxGeneName-1]
		}
		i = skipLine(data, i)

		seqStart := i
		i = skipToLineStartingWith(data, i, '+')
		sequence := stripWhitespaceUpper(data[seqStart:i])

		i = skipLine(data, i) // the '+' separator line
		i = skipLine(data, i) // the quality line

		records = append(records, fastqRecord{name: name, sequence: sequence})
	}

	if !sawRecord {
		return nil, ErrNoRecords
	}

	return records, nil
}

// skipLine advances past the remainder of the current line, including its
// terminating newline if present.
func skipLine(data []byte, i int) int {
	for i < len(data) && data[i] != '\n' {
		i++
	}
	if i < len(data) {
		i++
	}
	return i
}

// skipToLineStartingWith advances to the start of the next line beginning
// with sigil, or to end of input if none exists.
func skipToLineStartingWith(data []byte, i int, sigil byte) int {
	for i < len(data) {
		if data[i] == sigil && atRecordStart(data, i) {
			return i
		}
		i++
	}
	return i
}
