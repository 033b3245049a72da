// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
)

// An Input names one results file and the branch label stamped on
// every long-form row derived from it.
//
// On the command line an input may be written as label=path to
// override the default label, e.g. "release-1.2=old.json".
type Input struct {
	Label string
	Path  string
}

// ParseInput interprets a command-line argument of the form
// "label=path". Arguments without a label use defaultLabel.
func ParseInput(arg, defaultLabel string) Input {
	if i := strings.Index(arg, "="); i >= 0 {
		return Input{Label: arg[:i], Path: arg[i+1:]}
	}
	return Input{Label: defaultLabel, Path: arg}
}

// Read decodes a Dataset from r. It consumes r to EOF.
func Read(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var d Dataset
	if err := sonic.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	return d, nil
}

// ReadFile decodes the Dataset stored at path. A missing or unreadable
// file and malformed JSON are both fatal; there is no partial recovery.
func ReadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dataset
	if err := sonic.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return d, nil
}
