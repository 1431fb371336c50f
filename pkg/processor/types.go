package processor

import (
	"github.com/parishledger/bank-importer/pkg/importer"
	"github.com/parishledger/bank-importer/pkg/parser"
)

// Upload is one statement file handed over by the HTTP endpoint or the CLI.
type Upload struct {
	FileName   string
	Data       []byte
	UploadedBy string
}

// ImportSummary ties the parse and import outcomes of one upload batch
// together for reporting.
type ImportSummary struct {
	BatchID  string
	FileName string
	Parse    *parser.ParseResult
	Import   *importer.Result
}
