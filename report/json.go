// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

type jsonFormat struct{}

func (jsonFormat) Extension() string {
	return ".json"
}

func (jsonFormat) Write(w io.Writer, src Source) error {
	stats, err := Snapshot(src)
	if err != nil {
		return err
	}

	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stats)
}
