package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowdag/cmd/flowdag/internal/cliconfig"
	"github.com/katalvlaran/flowdag/wire"
)

func TestReadWriteDocument_RoundTripsThroughFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	doc := wire.Document{
		"x": {Kind: "lit", Data: float64(1)},
		"y": {Kind: "ref", Key: "x"},
	}

	writeCfg := cliconfig.Resolve(cliconfig.WithOutput(path))
	require.NoError(t, writeDocument(writeCfg, doc))

	readCfg := cliconfig.Resolve(cliconfig.WithInput(path))
	got, err := readDocument(readCfg)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
