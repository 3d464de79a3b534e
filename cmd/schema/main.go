// Package main provides the entry point for the wcagcheck schema generation.
package main

import (
	"os"

	"github.com/yeisme/wcagcheck/pkg/utils/schema"
)

//go:generate go run github.com/yeisme/wcagcheck/cmd/schema
func main() {
	if _, err := os.Stat("../../docs"); os.IsNotExist(err) {
		if err := os.Mkdir("../../docs", 0o755); err != nil {
			panic(err)
		}
	}

	pairsSchemaFile, err := os.Create("../../docs/pairs_schema.json")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = pairsSchemaFile.Close()
	}()

	if err = schema.GenPairsSchema(pairsSchemaFile); err != nil {
		panic(err)
	}

	configSchemaFile, err := os.Create("../../docs/config_schema.json")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = configSchemaFile.Close()
	}()

	if err := schema.GenConfigSchema(configSchemaFile); err != nil {
		panic(err)
	}
}
