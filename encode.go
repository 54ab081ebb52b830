package cashcast

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// InstrumentType discriminates the record kind on each book line.
type InstrumentType string

const (
	InstCashAccount InstrumentType = "cash-account"
	InstTransfer    InstrumentType = "transfer"
	InstLoan        InstrumentType = "loan"
	InstCD          InstrumentType = "cd"
	InstBond        InstrumentType = "bond"
	InstFund        InstrumentType = "fund"
)

// structCheck enforces the structural tags on decoded records before
// the domain rules get a look at them.
var structCheck = validator.New()

// DecodeBook reads a book from a stream of JSONL data: one instrument
// record per line, identified by its "instrument" field. Records are
// structurally validated as they are read; domain validation happens
// at projection time.
func DecodeBook(r io.Reader) (*Projection, error) {
	p := NewProjection()
	scanner := bufio.NewScanner(r)

	var lineNo int
	for scanner.Scan() {
		lineNo++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Instrument InstrumentType `json:"instrument"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify instrument on line %d: %w", lineNo, err)
		}

		var rec any
		switch identifier.Instrument {
		case InstCashAccount:
			var c CashAccount
			if err := json.Unmarshal(lineBytes, &c); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.CashAccounts = append(p.CashAccounts, c)
			rec = c
		case InstTransfer:
			var t Transfer
			if err := json.Unmarshal(lineBytes, &t); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.Transfers = append(p.Transfers, t)
			rec = t
		case InstLoan:
			var ln Loan
			if err := json.Unmarshal(lineBytes, &ln); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.Loans = append(p.Loans, ln)
			rec = ln
		case InstCD:
			var c CD
			if err := json.Unmarshal(lineBytes, &c); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.CDs = append(p.CDs, c)
			rec = c
		case InstBond:
			var b Bond
			if err := json.Unmarshal(lineBytes, &b); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.Bonds = append(p.Bonds, b)
			rec = b
		case InstFund:
			var f Fund
			if err := json.Unmarshal(lineBytes, &f); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.Funds = append(p.Funds, f)
			rec = f
		default:
			return nil, fmt.Errorf("unknown instrument %q on line %d", identifier.Instrument, lineNo)
		}

		if err := structCheck.Struct(rec); err != nil {
			return nil, fmt.Errorf("invalid %s record on line %d: %w", identifier.Instrument, lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading book: %w", err)
	}
	return p, nil
}

// encodeRecord writes one record as a JSONL line with the instrument
// discriminator first.
func encodeRecord(w io.Writer, kind InstrumentType, rec any) error {
	line := new(jsonObjectWriter)
	line.Append("instrument", kind).EmbedFrom(rec)
	data, err := line.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s record: %w", kind, err)
	}
	return nil
}

// EncodeBook persists all records of a projection to an io.Writer in
// JSONL format, grouped by instrument kind in processing order.
func EncodeBook(w io.Writer, p *Projection) error {
	for _, c := range p.CashAccounts {
		if err := encodeRecord(w, InstCashAccount, c); err != nil {
			return err
		}
	}
	for _, t := range p.Transfers {
		if err := encodeRecord(w, InstTransfer, t); err != nil {
			return err
		}
	}
	for _, ln := range p.Loans {
		if err := encodeRecord(w, InstLoan, ln); err != nil {
			return err
		}
	}
	for _, c := range p.CDs {
		if err := encodeRecord(w, InstCD, c); err != nil {
			return err
		}
	}
	for _, b := range p.Bonds {
		if err := encodeRecord(w, InstBond, b); err != nil {
			return err
		}
	}
	for _, f := range p.Funds {
		if err := encodeRecord(w, InstFund, f); err != nil {
			return err
		}
	}
	return nil
}
