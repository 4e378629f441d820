// Generates the ent client for the audit schema into gen/ent.
// Run from the module root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:   "gen/ent",
			Package:  "github.com/hrunx/es2square/gen/ent",
			Schema:   "github.com/hrunx/es2square/db/ent/schema",
			Features: []gen.Feature{gen.FeatureUpsert},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
