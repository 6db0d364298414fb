package main

import (
	"firetrace/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ScanModel{},
		model.UserModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
