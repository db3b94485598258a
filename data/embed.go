package data

import (
	_ "embed"
)

// SeedCatalog is the starter catalog loaded when SEED_DATA is set.
//
//go:embed seed.json
var SeedCatalog []byte
