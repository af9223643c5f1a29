// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fbxwriter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Bios-Marcel/wastebasket/v2"
	"github.com/bhsingleton/dcc-sub000/base/fileinfo"
	"golang.org/x/crypto/blake2b"
)

// Encode serializes the document to buf in the given format.
func (d *Document) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatASCII:
		err = d.encodeASCII(&buf)
	default:
		err = d.encodeBinary(&buf)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest returns the BLAKE2b-256 digest of the given encoded bytes, as
// a hex string — what the idempotence check compares across repeated
// exports of the same scene/config, without re-reading and
// re-parsing the whole file.
func Digest(encoded []byte) (string, error) {
	sum := blake2b.Sum256(encoded)
	return fmt.Sprintf("%x", sum), nil
}

// WriteFile encodes the document and writes it to path, returning the
// BLAKE2b digest of the bytes written. If path already exists and
// safeOverwrite is set, the existing file is moved to the OS trash
// (or deleted, where the platform has no trash) before the new one is
// written; otherwise it is truncated in place.
func WriteFile(d *Document, path string, format Format, safeOverwrite bool) (digest string, err error) {
	encoded, err := d.Encode(format)
	if err != nil {
		return "", err
	}
	digest, err = Digest(encoded)
	if err != nil {
		return "", err
	}

	if safeOverwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			if trashErr := wastebasket.Trash(path); trashErr != nil {
				if !errors.Is(trashErr, wastebasket.ErrPlatformNotSupported) {
					return "", fmt.Errorf("fbxwriter.WriteFile: safe overwrite of %s: %w", path, trashErr)
				}
				fi := &fileinfo.FileInfo{Path: path}
				if rmErr := fi.Delete(); rmErr != nil {
					return "", fmt.Errorf("fbxwriter.WriteFile: safe overwrite of %s: %w", path, rmErr)
				}
			}
		}
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", err
	}
	return digest, nil
}
