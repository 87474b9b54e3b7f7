package atena

import (
	"time"

	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/providers"
)

// Record is one disclosure-target entry. Immutable once imported.
type Record struct {
	Category    string
	SourceType  string
	ProductCode string
	Hash        string
	IP          string
	Port        int
	Timestamp   string
	Hostname    string
	ISPName     string
}

// ImportMeta tags every record produced from one import.
type ImportMeta struct {
	Category    string
	SourceType  string
	ProductCode string
}

// Criteria narrows a record set. Empty fields place no restriction;
// present fields combine with AND.
type Criteria struct {
	ISPs         []string
	Categories   []string
	Start        *time.Time
	End          *time.Time
	ProductCodes []string
}

// Recipient is a registered mailing target from the provider master.
type Recipient struct {
	Key        string
	FullName   string
	PostalCode string
	Address    string
	Department string
	Aliases    []string
}

func recordToModel(r Record) model.Record {
	return model.Record{
		Category:    r.Category,
		SourceType:  r.SourceType,
		ProductCode: r.ProductCode,
		Hash:        r.Hash,
		IP:          r.IP,
		Port:        r.Port,
		Timestamp:   r.Timestamp,
		Hostname:    r.Hostname,
		ISPName:     r.ISPName,
	}
}

func recordFromModel(r model.Record) Record {
	return Record{
		Category:    r.Category,
		SourceType:  r.SourceType,
		ProductCode: r.ProductCode,
		Hash:        r.Hash,
		IP:          r.IP,
		Port:        r.Port,
		Timestamp:   r.Timestamp,
		Hostname:    r.Hostname,
		ISPName:     r.ISPName,
	}
}

func recordsToModel(rs []Record) []model.Record {
	out := make([]model.Record, len(rs))
	for i, r := range rs {
		out[i] = recordToModel(r)
	}
	return out
}

func recordsFromModel(rs []model.Record) []Record {
	out := make([]Record, len(rs))
	for i, r := range rs {
		out[i] = recordFromModel(r)
	}
	return out
}

func criteriaToModel(c Criteria) model.Criteria {
	return model.Criteria{
		ISPs:         c.ISPs,
		Categories:   c.Categories,
		Start:        c.Start,
		End:          c.End,
		ProductCodes: c.ProductCodes,
	}
}

func recipientFromProvider(p *providers.Provider) *Recipient {
	if p == nil {
		return nil
	}
	return &Recipient{
		Key:        p.Key,
		FullName:   p.FullName,
		PostalCode: p.PostalCode,
		Address:    p.Address,
		Department: p.Department,
		Aliases:    p.Aliases,
	}
}

func recipientsToProviders(rs []Recipient) []providers.Provider {
	out := make([]providers.Provider, len(rs))
	for i, r := range rs {
		out[i] = providers.Provider{
			Key:        r.Key,
			FullName:   r.FullName,
			PostalCode: r.PostalCode,
			Address:    r.Address,
			Department: r.Department,
			Aliases:    r.Aliases,
		}
	}
	return out
}
