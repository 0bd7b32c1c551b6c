package starkgate

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// CompressProgram serializes a contract program document to canonical JSON,
// compresses it with gzip, and returns the result base64-encoded.
//
// The output is deterministic: object keys are sorted during serialization
// and the gzip header carries no timestamp, so identical programs always
// compress to byte-identical strings. The network may fold the compressed
// program into address derivation, so this is a hard requirement, not a
// nicety.
func CompressProgram(program json.RawMessage) (string, error) {
	canonical, err := canonicalJSON(program)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(canonical); err != nil {
		return "", fmt.Errorf("starkgate: compressing program: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("starkgate: compressing program: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecompressProgram is the inverse of CompressProgram, recovering the
// canonical JSON document from its base64 gzip encoding.
func DecompressProgram(compressed string) (json.RawMessage, error) {
	raw, err := base64.StdEncoding.DecodeString(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64: %v", ErrInvalidProgramFormat, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: not gzip: %v", ErrInvalidProgramFormat, err)
	}
	defer zr.Close()

	doc, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProgramFormat, err)
	}
	return doc, nil
}

// canonicalJSON re-encodes a JSON document with sorted object keys and no
// insignificant whitespace. Numbers pass through as their original literals
// so large integer fields are not rounded on the way.
func canonicalJSON(doc json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProgramFormat, err)
	}
	// Trailing garbage after the document is as malformed as bad syntax.
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidProgramFormat)
	}

	canonical, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProgramFormat, err)
	}
	return canonical, nil
}
