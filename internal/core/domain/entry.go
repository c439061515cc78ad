package domain

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
)

// Encoding describes how an entry payload is stored on disk.
type Encoding uint8

const (
	// EncodingRaw stores the transformed output bytes as-is.
	EncodingRaw Encoding = iota
	// EncodingRecord stores a JSON record that carries the output.
	EncodingRecord
)

// Ext returns the file extension for the encoding.
func (e Encoding) Ext() string {
	if e == EncodingRecord {
		return ".json"
	}
	return ".js"
}

// String returns the configuration name of the encoding.
func (e Encoding) String() string {
	if e == EncodingRecord {
		return "record"
	}
	return "raw"
}

// ParseEncoding parses a configuration value. An empty value selects raw.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return EncodingRaw, nil
	case "record":
		return EncodingRecord, nil
	default:
		return EncodingRaw, zerr.With(ErrUnknownEncoding, "encoding", s)
	}
}

// Record is the structured entry payload.
type Record struct {
	Version string `json:"version"`
	Code    string `json:"code"`
}

// EncodeEntry renders the output in the given encoding.
func EncodeEntry(enc Encoding, version, output string) ([]byte, error) {
	if enc != EncodingRecord {
		return []byte(output), nil
	}

	data, err := json.Marshal(Record{Version: version, Code: output})
	if err != nil {
		return nil, zerr.Wrap(err, ErrEntryEncodeFailed.Error())
	}
	return data, nil
}

// DecodeEntry extracts the output from a persisted payload.
func DecodeEntry(enc Encoding, data []byte) (string, error) {
	if enc != EncodingRecord {
		return string(data), nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", zerr.Wrap(err, ErrEntryDecodeFailed.Error())
	}
	return rec.Code, nil
}
