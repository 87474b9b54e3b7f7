package model

// Record is one disclosure-target entry parsed from an upstream export.
// Records are immutable after creation: normalization and filtering are
// read-time functions and never write back into the stored value.
type Record struct {
	Category    string // grouping tag assigned at import time
	SourceType  string // ingestion channel, e.g. "isp" or "direct"
	ProductCode string // originating case or batch identifier
	Hash        string // content digest, opaque
	IP          string // network address, opaque
	Port        int    // 0 when the source field did not parse
	Timestamp   string // "YYYY/MM/DD[ HH:MM:SS]", retained verbatim
	Hostname    string
	ISPName     string // provider label exactly as it appeared upstream
}

// ImportMeta is the per-file metadata attached to every Record produced
// from one import.
type ImportMeta struct {
	Category    string
	SourceType  string
	ProductCode string
}
