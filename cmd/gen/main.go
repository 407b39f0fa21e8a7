// Command gen writes type-safe gorm/gen query helpers for the content and
// lead tables. Run it from the repository root after changing a model.
package main

import (
	"atelier/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: false,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
