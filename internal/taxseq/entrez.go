package taxseq

import (
	"fmt"
	"io"

	"taxseq/config"

	"github.com/biogo/ncbi/entrez"
)

// tool is the application name sent to NCBI with every E-utilities
// request, per their usage policy
const tool = "taxseq"

// search runs an esearch for every nucleotide record under the taxon,
// with the history server enabled. Returns the total number of matches
// and the WebEnv/QueryKey handle the fetch stage retrieves them with.
//
// the handle is only valid for this run: it isn't persisted and a rerun
// searches again
func search(conf config.Config, taxid string) (count int, hist *entrez.History, err error) {
	term := fmt.Sprintf("txid%s[Organism]", taxid)

	hist = &entrez.History{}
	result, err := entrez.DoSearch(conf.Entrez.DB, term, &entrez.Parameters{APIKey: conf.APIKey}, hist, tool, conf.Email)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to search for %s: %v", term, err)
	}

	return result.Count, hist, nil
}

// fetch retrieves up to retMax GenBank flat-file records from the result
// set behind the history handle, in a single bulk request starting at
// offset 0. The caller owns closing the returned body.
func fetch(conf config.Config, retMax int, hist *entrez.History) (io.ReadCloser, error) {
	p := &entrez.Parameters{
		RetMode:  "text",
		RetType:  "gb",
		RetStart: 0,
		RetMax:   retMax,
		APIKey:   conf.APIKey,
	}

	body, err := entrez.Fetch(conf.Entrez.DB, p, tool, conf.Email, hist)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %d records: %v", retMax, err)
	}

	return body, nil
}

// fetchRecords retrieves up to retMax records and parses them
func fetchRecords(conf config.Config, retMax int, hist *entrez.History) ([]Record, error) {
	body, err := fetch(conf, retMax, hist)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseGenbank(body)
}
