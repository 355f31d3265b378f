package taxseq

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	// flat-file records end with a // line
	recordSep = regexp.MustCompile(`(?m)^//`)

	// the sequence block follows the ORIGIN keyword
	originSplit = regexp.MustCompile(`(?m)^ORIGIN`)

	locusRegex     = regexp.MustCompile(`(?m)^LOCUS\s+(\S+)`)
	accessionRegex = regexp.MustCompile(`(?m)^ACCESSION\s+(\S+)`)
	versionRegex   = regexp.MustCompile(`(?m)^VERSION\s+(\S+)`)

	// everything in the ORIGIN block that isn't a base or ambiguity code:
	// position numbers, spaces, newlines
	nonBaseRegex = regexp.MustCompile(`[^A-Z]`)
)

// parseGenbank parses a stream of GenBank flat-file records, e.g. the body
// of a fetch with rettype=gb, to Records. An empty stream parses to zero
// records; a record without a LOCUS or ORIGIN section fails the parse
func parseGenbank(r io.Reader) (records []Record, err error) {
	dat, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the record stream: %v", err)
	}

	records = []Record{}
	for _, entry := range recordSep.Split(string(dat), -1) {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		record, err := parseRecord(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// parseRecord parses a single flat-file entry to a Record
func parseRecord(entry string) (record Record, err error) {
	entrySplit := originSplit.Split(entry, 2)
	if len(entrySplit) != 2 {
		return record, fmt.Errorf("failed to parse record: no ORIGIN section")
	}
	header := entrySplit[0]

	locus := locusRegex.FindStringSubmatch(header)
	if locus == nil {
		return record, fmt.Errorf("failed to parse record: no LOCUS line")
	}

	// prefer the versioned identifier, the form records are cited in
	record.Accession = locus[1]
	if m := accessionRegex.FindStringSubmatch(header); m != nil {
		record.Accession = m[1]
	}
	if m := versionRegex.FindStringSubmatch(header); m != nil {
		record.Accession = m[1]
	}

	record.Definition = parseDefinition(header)

	// keep ambiguity codes, the length has to match the record's
	seq := strings.ToUpper(entrySplit[1])
	record.Seq = nonBaseRegex.ReplaceAllString(seq, "")

	return record, nil
}

// parseDefinition joins a DEFINITION section that may continue over
// multiple indented lines
func parseDefinition(header string) string {
	var parts []string
	inDefinition := false
	for _, line := range strings.Split(header, "\n") {
		if strings.HasPrefix(line, "DEFINITION") {
			parts = append(parts, strings.TrimSpace(strings.TrimPrefix(line, "DEFINITION")))
			inDefinition = true
			continue
		}
		if inDefinition {
			if !strings.HasPrefix(line, " ") {
				break
			}
			parts = append(parts, strings.TrimSpace(line))
		}
	}

	return strings.Join(parts, " ")
}
